package events

import (
	"strconv"
	"sync"

	"github.com/rs/zerolog"
)

// route is one registration on the bus. Function handlers carry the single
// event type they were registered for; subscribers filter for themselves.
type route struct {
	id         string
	subscriber Subscriber
	eventType  string
	handler    EventHandler
}

func (r route) wants(eventType string) bool {
	if r.subscriber != nil {
		return r.subscriber.InterestedIn(eventType)
	}
	return r.eventType == eventType
}

// EventBus is a synchronous event bus. Every registration is notified in the
// order it was made, so a fixed command sequence yields a fixed delivery order.
type EventBus struct {
	mu      sync.RWMutex
	routes  []route
	funcSeq map[string]int
	logger  zerolog.Logger
}

func NewEventBus(logger zerolog.Logger) *EventBus {
	return &EventBus{
		funcSeq: make(map[string]int),
		logger:  logger.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe adds a subscriber, replacing any existing one with the same ID
func (eb *EventBus) Subscribe(subscriber Subscriber) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.removeLocked(subscriber.ID())
	eb.routes = append(eb.routes, route{id: subscriber.ID(), subscriber: subscriber})
	eb.logger.Debug().Str("subscriber_id", subscriber.ID()).Msg("Subscriber added to event bus")
}

// SubscribeFunc registers handler for one event type and returns an ID that
// Unsubscribe accepts
func (eb *EventBus) SubscribeFunc(eventType string, handler EventHandler) string {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.funcSeq[eventType]++
	id := eventType + "_func_" + strconv.Itoa(eb.funcSeq[eventType])
	eb.routes = append(eb.routes, route{id: id, eventType: eventType, handler: handler})
	eb.logger.Debug().Str("event_type", eventType).Str("handler_id", id).Msg("Function handler added to event bus")
	return id
}

// Unsubscribe removes a subscriber or function handler by ID
func (eb *EventBus) Unsubscribe(id string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.removeLocked(id) {
		eb.logger.Debug().Str("subscriber_id", id).Msg("Subscriber removed from event bus")
	}
}

func (eb *EventBus) removeLocked(id string) bool {
	for i, r := range eb.routes {
		if r.id == id {
			eb.routes = append(eb.routes[:i], eb.routes[i+1:]...)
			return true
		}
	}
	return false
}

// Publish delivers event to every interested registration before returning.
// A panicking receiver is logged and skipped.
func (eb *EventBus) Publish(event Event) {
	eventType := event.Type()

	eb.mu.RLock()
	targets := make([]route, 0, len(eb.routes))
	for _, r := range eb.routes {
		if r.wants(eventType) {
			targets = append(targets, r)
		}
	}
	eb.mu.RUnlock()

	eb.logger.Debug().
		Str("event_type", eventType).
		Str("game_id", event.GameID()).
		Int("receivers", len(targets)).
		Msg("Publishing event")

	for _, r := range targets {
		eb.deliver(r, event)
	}
}

func (eb *EventBus) deliver(r route, event Event) {
	defer func() {
		if p := recover(); p != nil {
			eb.logger.Error().
				Str("subscriber_id", r.id).
				Str("event_type", event.Type()).
				Interface("panic", p).
				Msg("Receiver panicked while handling event")
		}
	}()

	if r.subscriber != nil {
		r.subscriber.HandleEvent(event)
		return
	}
	r.handler(event)
}

// GetSubscriberCount returns the number of Subscriber registrations
func (eb *EventBus) GetSubscriberCount() int {
	return eb.count(func(r route) bool { return r.subscriber != nil })
}

// GetFuncHandlerCount returns the number of function handlers for eventType
func (eb *EventBus) GetFuncHandlerCount(eventType string) int {
	return eb.count(func(r route) bool { return r.subscriber == nil && r.eventType == eventType })
}

func (eb *EventBus) count(pred func(route) bool) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	n := 0
	for _, r := range eb.routes {
		if pred(r) {
			n++
		}
	}
	return n
}
