package route

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tourism-route-service/internal/domain"
	"github.com/tourism-route-service/internal/domain/repository"
	"github.com/tourism-route-service/internal/worker"
)

const (
	errorPause      = time.Second
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
)

// StatsRefresher пересчитывает кеш статистики маршрутов
type StatsRefresher interface {
	RefreshStats(ctx context.Context) (*domain.RouteStats, error)
}

// StatsWorker читает события маршрутов и пересчитывает статистику.
// Одна пачка событий дает один пересчет. При старте и после неудачного
// пересчета сначала дочитываются неподтвержденные сообщения consumer'а.
type StatsWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	stats        StatsRefresher
	stream       string
	consumerName string
	batchSize    int64
	readTimeout  time.Duration

	recoverPending bool // только из цикла Start
}

// StatsWorkerConfig - параметры чтения стрима
type StatsWorkerConfig struct {
	Stream        string
	ConsumerGroup string
	ConsumerName  string
	BatchSize     int64
	ReadTimeout   time.Duration
}

// NewStatsWorker создает новый StatsWorker
func NewStatsWorker(
	streamRepo repository.StreamRepository,
	stats StatsRefresher,
	cfg StatsWorkerConfig,
	logger *zap.Logger,
) *StatsWorker {
	if cfg.Stream == "" {
		cfg.Stream = domain.StreamRouteEvents
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}
	return &StatsWorker{
		BaseWorker:   worker.NewBaseWorker("route-stats", cfg.ConsumerGroup, logger),
		streamRepo:   streamRepo,
		stats:        stats,
		stream:       cfg.Stream,
		consumerName: cfg.ConsumerName,
		batchSize:    cfg.BatchSize,
		readTimeout:  cfg.ReadTimeout,

		recoverPending: true,
	}
}

// Start запускает воркер
func (w *StatsWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting StatsWorker",
		zap.String("stream", w.stream),
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int64("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, w.stream, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		processed, err := w.processBatch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			logger.Error("Failed to process batch", zap.Error(err))
			w.pause(ctx, errorPause)
			continue
		}
		if processed == 0 {
			w.pause(ctx, emptyQueueSleep)
		}
	}
}

// nextBatch отдает неподтвержденные сообщения, пока они есть, затем новые
func (w *StatsWorker) nextBatch(ctx context.Context) ([]domain.StreamMessage, error) {
	if w.recoverPending {
		messages, err := w.streamRepo.ConsumePending(ctx, w.stream, w.ConsumerGroup(), w.consumerName, w.batchSize)
		if err != nil {
			return nil, fmt.Errorf("failed to read pending messages: %w", err)
		}
		if len(messages) > 0 {
			w.Logger().Info("Reprocessing pending route events", zap.Int("messages", len(messages)))
			return messages, nil
		}
		w.recoverPending = false
	}

	messages, err := w.streamRepo.ConsumeBatch(ctx, w.stream, w.ConsumerGroup(), w.consumerName, w.batchSize, w.readTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to consume batch: %w", err)
	}
	return messages, nil
}

// processBatch возвращает количество прочитанных сообщений
func (w *StatsWorker) processBatch(ctx context.Context) (int, error) {
	messages, err := w.nextBatch(ctx)
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(messages))
	mutations := 0
	for _, msg := range messages {
		ids = append(ids, msg.ID)

		event, err := parseEvent(msg)
		if err != nil {
			// битое сообщение подтверждается вместе с пачкой
			w.Logger().Warn("Failed to parse route event, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			continue
		}
		if event.Type.IsMutation() {
			mutations++
		}
	}

	if mutations > 0 {
		// пачка остается в PEL и перечитывается через ConsumePending
		if _, err := w.stats.RefreshStats(ctx); err != nil {
			w.recoverPending = true
			return len(messages), fmt.Errorf("refresh stats: %w", err)
		}
	}

	if err := w.streamRepo.AckMessages(ctx, w.stream, w.ConsumerGroup(), ids...); err != nil {
		w.Logger().Error("Failed to ack messages", zap.Error(err))
	}

	w.Logger().Debug("Route events processed",
		zap.Int("messages", len(messages)),
		zap.Int("mutations", mutations))

	return len(messages), nil
}

func (w *StatsWorker) pause(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-w.StopChan():
	case <-ctx.Done():
	}
}

func parseEvent(msg domain.StreamMessage) (*domain.RouteEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing 'data' field")
	}

	var event domain.RouteEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return &event, nil
}
