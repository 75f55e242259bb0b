package game

// RoomDelegate observes a GameRoom.
// Callbacks run while the room is locked, implementations must not call back into the same room.
type RoomDelegate interface {
	OnPlayerJoined(roomID string, player Player)
	OnPlayerLeft(roomID string, player Player)
	OnConfigChanged(roomID string, config GameConfig)
	OnStateChanged(roomID string, change StateChange)
	OnPlayerReadiness(roomID string, readiness Readiness)
	OnNextResult(roomID string, page ResultPage)
}

type noopDelegate struct{}

func (noopDelegate) OnPlayerJoined(string, Player) {}
func (noopDelegate) OnPlayerLeft(string, Player) {}
func (noopDelegate) OnConfigChanged(string, GameConfig) {}
func (noopDelegate) OnStateChanged(string, StateChange) {}
func (noopDelegate) OnPlayerReadiness(string, Readiness) {}
func (noopDelegate) OnNextResult(string, ResultPage) {}
