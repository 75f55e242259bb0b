//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"draw-guess/domain/game"
	"draw-guess/eventbus"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type IEventBus interface {
	Subscribe(pattern string, handler eventbus.Handler) string
	Unsubscribe(pattern, id string)
	Publish(channel string, payload any) int
}

// RoomTicker advances one room when its round deadline has passed.
// It reports false once the room no longer needs ticking or is gone.
type RoomTicker interface {
	TickRoom(roomID string, now time.Time) bool
}

// RoomSweeper evicts finished rooms and returns how many were removed.
type RoomSweeper interface {
	Sweep(now time.Time) int
}

type IRoomRegistry interface {
	Create(host game.Player) (game.JoinTicket, error)
	Join(roomID string, player game.Player) (game.JoinTicket, error)
	Leave(roomID, playerID string) error
	Get(roomID string) (game.RoomView, error)
	List() []game.RoomListing
	UpdateConfig(roomID, requesterID string, patch game.ConfigPatch) (game.GameConfig, error)
	Start(roomID, requesterID string, config *game.GameConfig) error
	Submit(roomID, playerID string, submission game.Submission) error
	Unsubmit(roomID, playerID string) error
	Summary(roomID string) ([]game.ResultEntry, error)
	NextResult(roomID, requesterID string, cursor game.Cursor) (game.Cursor, error)
}
