package game

import "time"

type State int

const (
	Pending State = iota
	Question
	Draw
	Guest
	Summary
)

func (s State) String() string {
	switch s {
	case Pending:
		return "PENDING"
	case Question:
		return "QUESTION"
	case Draw:
		return "DRAW"
	case Guest:
		return "GUEST"
	case Summary:
		return "SUMMARY"
	default:
		return "UNKNOWN"
	}
}

type Kind string

const (
	Text  Kind = "text"
	Image Kind = "image"
)

// Submission is what a player hands in for one round.
// For images the payload is an opaque reference (URL or data URL).
type Submission struct {
	Kind    Kind   `json:"type"`
	Payload string `json:"data"`
}

type GameConfig struct {
	MaxPlayers     int     `json:"maxPlayer"`
	ReviewDuration float64 `json:"reviewDuration"`
	DrawDuration   float64 `json:"drawDuration"`
	GuestDuration  float64 `json:"guestDuration"`
}

func DefaultConfig() GameConfig {
	return GameConfig{
		MaxPlayers:     8,
		ReviewDuration: 10,
		DrawDuration:   60,
		GuestDuration:  30,
	}
}

// ConfigPatch carries a partial update, nil fields are left untouched.
type ConfigPatch struct {
	MaxPlayers     *int     `json:"maxPlayer,omitempty"`
	ReviewDuration *float64 `json:"reviewDuration,omitempty"`
	DrawDuration   *float64 `json:"drawDuration,omitempty"`
	GuestDuration  *float64 `json:"guestDuration,omitempty"`
}

func (c GameConfig) Merge(patch ConfigPatch) GameConfig {
	if patch.MaxPlayers != nil {
		c.MaxPlayers = *patch.MaxPlayers
	}
	if patch.ReviewDuration != nil {
		c.ReviewDuration = *patch.ReviewDuration
	}
	if patch.DrawDuration != nil {
		c.DrawDuration = *patch.DrawDuration
	}
	if patch.GuestDuration != nil {
		c.GuestDuration = *patch.GuestDuration
	}
	return c
}

type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsHost bool   `json:"isHost,omitempty"`
}

// StateChange is emitted on every round transition.
// Handoff is only set for Draw and Guest rounds and maps the new holder to its payload.
type StateChange struct {
	State   State                 `json:"state"`
	Round   int                   `json:"round"`
	Handoff map[string]Submission `json:"userData,omitempty"`
}

// PlayerHandoff is the private view of a StateChange sent to a single player.
type PlayerHandoff struct {
	State    State      `json:"state"`
	Round    int        `json:"round"`
	UserData Submission `json:"userData"`
}

type Readiness struct {
	PlayerID string `json:"userId"`
	Ready    bool   `json:"ready"`
}

type ResultEntry struct {
	GroupOwnerID string      `json:"group"`
	HolderID     string      `json:"user_id"`
	SeatIndex    int         `json:"idx"`
	Submission   *Submission `json:"data,omitempty"`
}

// Cursor addresses one entry of the results: (-1,-1) means there is nothing left.
type Cursor struct {
	GroupIdx int `json:"groupIdx"`
	Round    int `json:"round"`
}

var EndCursor = Cursor{GroupIdx: -1, Round: -1}

type ResultPage struct {
	Result ResultEntry `json:"result"`
	Next   Cursor      `json:"next"`
}

type RoomView struct {
	ID             string     `json:"id"`
	State          State      `json:"state"`
	Round          int        `json:"round"`
	Players        []Player   `json:"users"`
	ShowOrder      []string   `json:"show_order"`
	Config         GameConfig `json:"config"`
	HostID         string     `json:"host_id"`
	StateStartedAt time.Time  `json:"state_started_at"`
	Deadline       *time.Time `json:"deadline,omitempty"`
}

type RoomListing struct {
	ID             string    `json:"id"`
	State          State     `json:"state"`
	StateStartedAt time.Time `json:"start_state_ts"`
}

// JoinTicket is handed back to a player entering a room: the room and where to listen for it.
type JoinTicket struct {
	Room    RoomView `json:"room"`
	Channel string   `json:"channel"`
}
