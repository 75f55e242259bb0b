package event

import "fmt"

type Type string

const (
	PlayerJoined     Type = "user_join"
	PlayerLeft       Type = "user_leave"
	ConfigChanged    Type = "config_changed"
	StateChanged     Type = "state_changed"
	ReadinessChanged Type = "user_state_changed"
	NextSummary      Type = "next_summary"
)

// RoomEvent is the envelope delivered to every subscriber of a room channel.
type RoomEvent struct {
	Channel string `json:"channel"`
	Type    Type   `json:"type"`
	Data    any    `json:"data"`
}

// RoomChannel is the public channel of a room.
func RoomChannel(roomID string) string {
	return fmt.Sprintf("room.%s", roomID)
}

// PlayerChannel is the private channel of one player inside a room.
func PlayerChannel(roomID, playerID string) string {
	return fmt.Sprintf("room.%s.user.%s", roomID, playerID)
}
