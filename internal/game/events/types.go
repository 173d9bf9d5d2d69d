package events

import "time"

// Event is anything published on the bus
type Event interface {
	Type() string // dotted name such as "player.moved"
	Timestamp() time.Time
	GameID() string
}

// BaseEvent carries the fields every event shares. Embed it and the event
// satisfies Event.
type BaseEvent struct {
	EventType string    `json:"type"`
	Time      time.Time `json:"timestamp"`
	Game      string    `json:"game_id"`
}

func newBase(eventType, gameID string) BaseEvent {
	return BaseEvent{EventType: eventType, Time: time.Now(), Game: gameID}
}

func (e BaseEvent) Type() string         { return e.EventType }
func (e BaseEvent) Timestamp() time.Time { return e.Time }
func (e BaseEvent) GameID() string       { return e.Game }

type EventHandler func(Event)

// Subscriber receives every event type it reports interest in
type Subscriber interface {
	ID() string
	HandleEvent(Event)
	InterestedIn(eventType string) bool
}

// EventMetadata is the engine's counters at the moment of the event
type EventMetadata struct {
	Turn  int `json:"turn"`
	Moves int `json:"moves,omitempty"`
}
