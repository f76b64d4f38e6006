package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.Geocoding.BaseURL)
	assert.Equal(t, "tr", cfg.Geocoding.CountryCodes)
	assert.Equal(t, 1.0, cfg.Geocoding.RateLimit)
	assert.Equal(t, "driving", cfg.Routing.Profile)
	assert.Equal(t, "routing", cfg.Estimator.Strategy)
	assert.Equal(t, 60.0, cfg.Estimator.AverageSpeedKmh)
	assert.Equal(t, 30*time.Minute, cfg.Planner.DraftTTL)
	assert.Equal(t, "sid", cfg.Session.CookieName)
	assert.Equal(t, "stream:route:events", cfg.RedisStreams.RouteEventsStream)
}

func TestLoad_FromEnvFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	env := "API_PORT=9090\nESTIMATOR_STRATEGY=Haversine\nESTIMATOR_AVERAGE_SPEED_KMH=45\nPLANNER_DRAFT_TTL=120\nDB_HOST=db\nDB_PORT=5433\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "haversine", cfg.Estimator.Strategy)
	assert.Equal(t, 45.0, cfg.Estimator.AverageSpeedKmh)
	assert.Equal(t, 2*time.Minute, cfg.Planner.DraftTTL)
	assert.Contains(t, cfg.GetDatabaseDSN(), "host=db port=5433")
	assert.Equal(t, ":9090", cfg.GetServerAddr())
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir for Go < 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
