package workers

import (
	"context"
	"draw-guess/contract"
	"log/slog"
	"time"
)

var _ contract.Worker = (*DeadlineWorker)(nil)

// DeadlineWorker drives the timeout side of one room.
// It only holds the room id and resolves the room on every tick,
// so an evicted room is never kept alive by its ticker.
type DeadlineWorker struct {
	log      *slog.Logger
	roomID   string
	ticker   contract.RoomTicker
	interval time.Duration
	now      func() time.Time
}

func NewDeadlineWorker(log *slog.Logger, roomID string, ticker contract.RoomTicker, interval time.Duration, now func() time.Time) *DeadlineWorker {
	if now == nil {
		now = time.Now
	}
	return &DeadlineWorker{
		log:      log.With("room_id", roomID),
		roomID:   roomID,
		ticker:   ticker,
		interval: interval,
		now:      now,
	}
}

// Run ticks the room until it reports it is done or the context is canceled.
func (w *DeadlineWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Deadline worker canceled")
			return nil
		case <-ticker.C:
			if !w.ticker.TickRoom(w.roomID, w.now()) {
				w.log.Debug("Room no longer needs ticking")
				return nil
			}
		}
	}
}
