package game

import (
	"time"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeGameStart        EventType = "game_start"
	EventTypeChipPlayed       EventType = "chip_played"
	EventTypePileCaptured     EventType = "pile_captured"
	EventTypeChipEliminated   EventType = "chip_eliminated"
	EventTypeTurnPassed       EventType = "turn_passed"
	EventTypePlayerEliminated EventType = "player_eliminated"
	EventTypeGameOver         EventType = "game_over"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a game
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// GameStartEvent is published when a game is created
type GameStartEvent struct {
	Players   []Letter
	First     Letter
	timestamp time.Time
}

func (e GameStartEvent) EventType() EventType { return EventTypeGameStart }
func (e GameStartEvent) Timestamp() time.Time { return e.timestamp }

// ChipPlayedEvent is published when a chip is placed on a pile
type ChipPlayedEvent struct {
	Player    Letter
	Chip      Letter
	Pile      int // 1-based
	PileAfter []Letter
	timestamp time.Time
}

func (e ChipPlayedEvent) EventType() EventType { return EventTypeChipPlayed }
func (e ChipPlayedEvent) Timestamp() time.Time { return e.timestamp }

// PileCapturedEvent is published when the top two chips of a pile match.
// Resolver is the player who must pick the chip to eliminate. Deadzoned is set
// when the captured colour belongs to an eliminated player, in which case the
// whole pile goes to the deadzone.
type PileCapturedEvent struct {
	Pile      int
	Chip      Letter
	Resolver  Letter
	Deadzoned bool
	timestamp time.Time
}

func (e PileCapturedEvent) EventType() EventType { return EventTypePileCaptured }
func (e PileCapturedEvent) Timestamp() time.Time { return e.timestamp }

// ChipEliminatedEvent is published when a captured pile is resolved
type ChipEliminatedEvent struct {
	Pile      int
	Chip      Letter
	Receiver  Letter
	Gained    int // Chips added to Receiver's holdings
	Deadzoned bool
	timestamp time.Time
}

func (e ChipEliminatedEvent) EventType() EventType { return EventTypeChipEliminated }
func (e ChipEliminatedEvent) Timestamp() time.Time { return e.timestamp }

// TurnReason records which rule handed over the turn
type TurnReason string

const (
	// TurnLeastRecent: every active colour is in the pile and the one played
	// longest ago moves next.
	TurnLeastRecent TurnReason = "least_recent"
	// TurnOnlyAbsent: exactly one active colour is missing from the pile.
	TurnOnlyAbsent TurnReason = "only_absent"
	// TurnChosen: the previous player picked among several absent colours.
	TurnChosen TurnReason = "chosen"
)

// TurnPassedEvent is published when the turn moves to a new player
type TurnPassedEvent struct {
	From      Letter
	To        Letter
	Reason    TurnReason
	timestamp time.Time
}

func (e TurnPassedEvent) EventType() EventType { return EventTypeTurnPassed }
func (e TurnPassedEvent) Timestamp() time.Time { return e.timestamp }

// PlayerEliminatedEvent is published when a player without chips is knocked
// out. Fallback is set when turn history was exhausted and the next current
// player was picked by index.
type PlayerEliminatedEvent struct {
	Player    Letter
	Current   Letter
	Fallback  bool
	timestamp time.Time
}

func (e PlayerEliminatedEvent) EventType() EventType { return EventTypePlayerEliminated }
func (e PlayerEliminatedEvent) Timestamp() time.Time { return e.timestamp }

// GameOverEvent is published once, when a single active player remains
type GameOverEvent struct {
	Winner    Letter
	timestamp time.Time
}

func (e GameOverEvent) EventType() EventType { return EventTypeGameOver }
func (e GameOverEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a function to the EventSubscriber interface
type EventSubscriberFunc func(event GameEvent)

// OnEvent calls f(event)
func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a synchronous in-memory event bus. Subscribers run on the
// publishing goroutine, in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events. Function
// subscribers cannot be compared and are never removed.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	if _, ok := subscriber.(EventSubscriberFunc); ok {
		return
	}
	for i, sub := range bus.subscribers {
		if _, ok := sub.(EventSubscriberFunc); ok {
			continue
		}
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
