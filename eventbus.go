package arbor

import "reflect"

// MaxEventTypes defines the maximum number of unique event types that can be
// registered in an EventBus.
const MaxEventTypes = 256

// EventBus delivers lifecycle notifications to collaborator code that
// observes a World without being part of it: gameplay logic, pools,
// diagnostics. Handlers are keyed by the event's Go type and called
// synchronously, in subscription order, on the goroutine that caused the
// event.
//
// Handler lists are copy-on-write, so a handler may subscribe or
// unsubscribe while an event is being delivered; the change takes effect
// from the next Publish. Publish does not allocate.
//
// An EventBus is not safe for concurrent use.
type EventBus struct {
	eventTypeMap    map[reflect.Type]uint8
	handlers        [MaxEventTypes][]subscription
	nextEventTypeID uint16
	nextToken       uint64
}

type subscription struct {
	fn    any
	token uint64
}

// Subscribe registers handler to be called for every published event of
// type T and returns a function that removes it again. Calling the returned
// function more than once is harmless.
//
// Parameters:
//   - bus: The EventBus instance to subscribe to.
//   - handler: A function that takes a single argument of type `T`.
//
// Returns:
//   - A function that cancels the subscription.
func Subscribe[T any](bus *EventBus, handler func(T)) (unsubscribe func()) {
	id := bus.getEventTypeID(reflect.TypeFor[T]())
	bus.nextToken++
	token := bus.nextToken
	old := bus.handlers[id]
	hs := make([]subscription, len(old), len(old)+1)
	copy(hs, old)
	bus.handlers[id] = append(hs, subscription{fn: handler, token: token})
	return func() { bus.remove(id, token) }
}

// Publish broadcasts event to every handler subscribed to type T.
//
// Parameters:
//   - bus: The EventBus instance to publish to. A nil bus is a no-op.
//   - event: The event data of type `T` to be sent to handlers.
func Publish[T any](bus *EventBus, event T) {
	if bus == nil || bus.eventTypeMap == nil {
		return
	}
	if id, ok := bus.eventTypeMap[reflect.TypeFor[T]()]; ok {
		for _, s := range bus.handlers[id] {
			s.fn.(func(T))(event)
		}
	}
}

// Subscribers returns the number of handlers currently subscribed to type T.
func Subscribers[T any](bus *EventBus) int {
	if id, ok := bus.eventTypeMap[reflect.TypeFor[T]()]; ok {
		return len(bus.handlers[id])
	}
	return 0
}

func (bus *EventBus) remove(id uint8, token uint64) {
	old := bus.handlers[id]
	for i, s := range old {
		if s.token != token {
			continue
		}
		hs := make([]subscription, 0, len(old)-1)
		hs = append(hs, old[:i]...)
		bus.handlers[id] = append(hs, old[i+1:]...)
		return
	}
}

// getEventTypeID retrieves or assigns an ID for the event type.
func (bus *EventBus) getEventTypeID(t reflect.Type) uint8 {
	if bus.eventTypeMap == nil {
		bus.eventTypeMap = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.eventTypeMap[t]; ok {
		return id
	}
	if int(bus.nextEventTypeID) >= MaxEventTypes {
		panic("arbor: too many event types")
	}
	id := uint8(bus.nextEventTypeID)
	bus.nextEventTypeID++
	bus.eventTypeMap[t] = id
	return id
}

// ComponentAdded is published after a component has been attached to its
// owner and registered under its kind.
type ComponentAdded struct {
	World     *World
	Owner     Entity
	Component Entity
	Kind      KindID
}

// ComponentRemoved is published when a component is unregistered from its
// owner, either by RemoveComponent, by re-parenting the component entity, or
// as part of the owner's disposal.
type ComponentRemoved struct {
	World     *World
	Owner     Entity
	Component Entity
	Kind      KindID
}

// ParentChanged is published after an entity was attached to or moved
// between parents: by SetParent, and by NewChild and AddComponent for the
// entities they create. Old or New is the zero Entity when the entity was or
// became a root.
type ParentChanged struct {
	World  *World
	Entity Entity
	Old    Entity
	New    Entity
}

// EntityDestroyed is published as the last step of disposing an entity,
// after its whole subtree has been torn down and its own Destroyed hook ran.
type EntityDestroyed struct {
	World  *World
	Entity Entity
}
