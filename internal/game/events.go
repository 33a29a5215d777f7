package game

import (
	"time"
)

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeHandStart    EventType = "hand_start"
	EventTypePlayerAction EventType = "player_action"
	EventTypeTurnChange   EventType = "turn_change"
	EventTypeShowdown     EventType = "showdown"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event published by the engine
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// ActionKind names the betting-engine operation behind a PlayerActionEvent
type ActionKind string

const (
	ActionDeal     ActionKind = "deal"
	ActionSee      ActionKind = "see"
	ActionBetBlind ActionKind = "blind"
	ActionBetChaal ActionKind = "chaal"
	ActionPack     ActionKind = "pack"
	ActionShow     ActionKind = "show"
)

// HandStartEvent is published when a new hand is dealt
type HandStartEvent struct {
	State     State
	Ante      int
	PotLimit  int
	timestamp time.Time
}

func (e HandStartEvent) EventType() EventType { return EventTypeHandStart }
func (e HandStartEvent) Timestamp() time.Time { return e.timestamp }

// PlayerActionEvent is published for every applied betting action
type PlayerActionEvent struct {
	Seat      int
	PlayerID  string
	Name      string
	Action    ActionKind
	Amount    int
	PotAfter  int
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// TurnChangeEvent is published whenever the turn moves to a new seat while
// the hand is still live. The opponent scheduler keys its deferred work to
// the generation carried here.
type TurnChangeEvent struct {
	Seat       int
	Generation uint64
	timestamp  time.Time
}

func (e TurnChangeEvent) EventType() EventType { return EventTypeTurnChange }
func (e TurnChangeEvent) Timestamp() time.Time { return e.timestamp }

// ShowdownEvent is published when a hand resolves, by show, pot limit,
// or last player standing.
type ShowdownEvent struct {
	State        State
	WinnerIDs    []string
	Share        int // per-winner payout after any floor split
	Pot          int
	LimitReached bool
	timestamp    time.Time
}

func (e ShowdownEvent) EventType() EventType { return EventTypeShowdown }
func (e ShowdownEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation. Delivery is
// synchronous and in subscription order; the engine publishes only after
// releasing its lock, so subscribers may call back into it.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{subscribers: make([]EventSubscriber, 0)}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
