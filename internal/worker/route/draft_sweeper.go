package route

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tourism-route-service/internal/worker"
)

// Sweeper удаляет просроченные черновики планировщика
type Sweeper interface {
	Sweep(now time.Time) int
}

// DraftSweeper периодически чистит брошенные сессии планировщика
type DraftSweeper struct {
	*worker.BaseWorker
	sweeper  Sweeper
	interval time.Duration
}

// NewDraftSweeper создает воркер очистки. interval <= 0 заменяется минутой.
func NewDraftSweeper(sweeper Sweeper, interval time.Duration, logger *zap.Logger) *DraftSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &DraftSweeper{
		BaseWorker: worker.NewBaseWorker("draft-sweeper", "", logger),
		sweeper:    sweeper,
		interval:   interval,
	}
}

// Start запускает воркер
func (w *DraftSweeper) Start(ctx context.Context) error {
	w.Logger().Info("Starting DraftSweeper", zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.StopChan():
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := w.sweeper.Sweep(time.Now()); removed > 0 {
				w.Logger().Debug("Draft sweep finished", zap.Int("removed", removed))
			}
		}
	}
}
