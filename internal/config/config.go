package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	RedisStreams RedisStreamsConfig
	Cache        CacheConfig
	Log          LogConfig
	Worker       WorkerConfig
	Geocoding    GeocodingConfig
	Routing      RoutingConfig
	Estimator    EstimatorConfig
	Planner      PlannerConfig
	Session      SessionConfig
	Metrics      MetricsConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// RedisStreamsConfig - имена стримов событий маршрутов
type RedisStreamsConfig struct {
	RouteEventsStream string
	MaxLen            int64
}

type CacheConfig struct {
	GeocodeCacheTTL time.Duration
	StatsCacheTTL   time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	ConsumerName      string
	StreamReadTimeout time.Duration
	BatchSize         int64
	ShutdownTimeout   time.Duration
}

// GeocodingConfig - настройки Nominatim
type GeocodingConfig struct {
	BaseURL        string
	UserAgent      string
	CountryCodes   string
	RequestTimeout time.Duration
	RateLimit      float64
}

// RoutingConfig - настройки OSRM
type RoutingConfig struct {
	BaseURL        string
	Profile        string
	RequestTimeout time.Duration
}

type EstimatorConfig struct {
	Strategy        string
	AverageSpeedKmh float64
}

type PlannerConfig struct {
	DraftTTL      time.Duration
	SweepInterval time.Duration
}

type SessionConfig struct {
	CookieName string
	HeaderName string
	KeyPrefix  string
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env необязателен: в контейнере все приходит из окружения
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("API_HOST"),
			Port:         viper.GetInt("API_PORT"),
			Env:          viper.GetString("API_ENV"),
			AllowOrigins: viper.GetString("API_ALLOW_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RedisStreams: RedisStreamsConfig{
			RouteEventsStream: viper.GetString("REDIS_STREAM_ROUTE_EVENTS"),
			MaxLen:            viper.GetInt64("REDIS_STREAM_MAX_LEN"),
		},
		Cache: CacheConfig{
			GeocodeCacheTTL: time.Duration(viper.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
			StatsCacheTTL:   time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			ConsumerName:      viper.GetString("WORKER_CONSUMER_NAME"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			BatchSize:         viper.GetInt64("WORKER_BATCH_SIZE"),
			ShutdownTimeout:   time.Duration(viper.GetInt("WORKER_SHUTDOWN_TIMEOUT")) * time.Second,
		},
		Geocoding: GeocodingConfig{
			BaseURL:        viper.GetString("GEOCODING_BASE_URL"),
			UserAgent:      viper.GetString("GEOCODING_USER_AGENT"),
			CountryCodes:   viper.GetString("GEOCODING_COUNTRY_CODES"),
			RequestTimeout: time.Duration(viper.GetInt("GEOCODING_TIMEOUT")) * time.Millisecond,
			RateLimit:      viper.GetFloat64("GEOCODING_RATE_LIMIT"),
		},
		Routing: RoutingConfig{
			BaseURL:        viper.GetString("ROUTING_BASE_URL"),
			Profile:        viper.GetString("ROUTING_PROFILE"),
			RequestTimeout: time.Duration(viper.GetInt("ROUTING_TIMEOUT")) * time.Millisecond,
		},
		Estimator: EstimatorConfig{
			Strategy:        strings.ToLower(viper.GetString("ESTIMATOR_STRATEGY")),
			AverageSpeedKmh: viper.GetFloat64("ESTIMATOR_AVERAGE_SPEED_KMH"),
		},
		Planner: PlannerConfig{
			DraftTTL:      time.Duration(viper.GetInt("PLANNER_DRAFT_TTL")) * time.Second,
			SweepInterval: time.Duration(viper.GetInt("PLANNER_SWEEP_INTERVAL")) * time.Second,
		},
		Session: SessionConfig{
			CookieName: viper.GetString("SESSION_COOKIE_NAME"),
			HeaderName: viper.GetString("SESSION_HEADER_NAME"),
			KeyPrefix:  viper.GetString("SESSION_KEY_PREFIX"),
		},
		Metrics: MetricsConfig{
			Enabled: viper.GetBool("METRICS_ENABLED"),
			Path:    viper.GetString("METRICS_PATH"),
		},
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.AllowOrigins == "" {
		c.Server.AllowOrigins = "*"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.RedisStreams.RouteEventsStream == "" {
		c.RedisStreams.RouteEventsStream = "stream:route:events"
	}
	if c.RedisStreams.MaxLen == 0 {
		c.RedisStreams.MaxLen = 10000
	}
	if c.Cache.GeocodeCacheTTL == 0 {
		c.Cache.GeocodeCacheTTL = 24 * time.Hour
	}
	if c.Cache.StatsCacheTTL == 0 {
		c.Cache.StatsCacheTTL = 5 * time.Minute
	}
	if c.Worker.ConsumerGroup == "" {
		c.Worker.ConsumerGroup = "route-stats-workers"
	}
	if c.Worker.ConsumerName == "" {
		c.Worker.ConsumerName = "route-stats-1"
	}
	if c.Worker.StreamReadTimeout == 0 {
		c.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if c.Worker.BatchSize == 0 {
		c.Worker.BatchSize = 10
	}
	if c.Worker.ShutdownTimeout == 0 {
		c.Worker.ShutdownTimeout = 30 * time.Second
	}
	if c.Geocoding.BaseURL == "" {
		c.Geocoding.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if c.Geocoding.UserAgent == "" {
		c.Geocoding.UserAgent = "Turizm Platformu"
	}
	if c.Geocoding.CountryCodes == "" {
		c.Geocoding.CountryCodes = "tr"
	}
	if c.Geocoding.RequestTimeout == 0 {
		c.Geocoding.RequestTimeout = 5 * time.Second
	}
	if c.Geocoding.RateLimit == 0 {
		c.Geocoding.RateLimit = 1
	}
	if c.Routing.BaseURL == "" {
		c.Routing.BaseURL = "https://router.project-osrm.org"
	}
	if c.Routing.Profile == "" {
		c.Routing.Profile = "driving"
	}
	if c.Routing.RequestTimeout == 0 {
		c.Routing.RequestTimeout = 10 * time.Second
	}
	if c.Estimator.Strategy == "" {
		c.Estimator.Strategy = "routing"
	}
	if c.Estimator.AverageSpeedKmh == 0 {
		c.Estimator.AverageSpeedKmh = 60
	}
	if c.Planner.DraftTTL == 0 {
		c.Planner.DraftTTL = 30 * time.Minute
	}
	if c.Planner.SweepInterval == 0 {
		c.Planner.SweepInterval = time.Minute
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "sid"
	}
	if c.Session.HeaderName == "" {
		c.Session.HeaderName = "X-Session-ID"
	}
	if c.Session.KeyPrefix == "" {
		c.Session.KeyPrefix = "session:"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
