package workers

import (
	"context"
	"draw-guess/contract"
	"fmt"
	"log/slog"
	"time"
)

var _ contract.Worker = (*SweeperWorker)(nil)

// SweeperWorker periodically evicts finished rooms.
type SweeperWorker struct {
	log      *slog.Logger
	sweeper  contract.RoomSweeper
	interval time.Duration
	now      func() time.Time
}

func NewSweeperWorker(log *slog.Logger, sweeper contract.RoomSweeper, interval time.Duration, now func() time.Time) *SweeperWorker {
	if now == nil {
		now = time.Now
	}
	return &SweeperWorker{log: log, sweeper: sweeper, interval: interval, now: now}
}

func (w *SweeperWorker) Run(ctx context.Context) error {
	w.log.Info("Starting room sweeper", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if evicted := w.sweeper.Sweep(w.now()); evicted > 0 {
				w.log.Info(fmt.Sprintf("%d finished room(s) evicted", evicted))
			}
		}
	}
}
