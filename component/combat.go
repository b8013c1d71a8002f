package component

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventHitLanded         CombatEventType = "hit_landed"
	EventShieldBlocked     CombatEventType = "shield_blocked"
	EventCombatantDefeated CombatEventType = "combatant_defeated"

	// Presentation hints. They never change simulation state.
	EventFacingChanged CombatEventType = "facing_changed"
	EventJumped        CombatEventType = "jumped"
	EventDashed        CombatEventType = "dashed"
)

// CombatEvent is emitted during a simulation tick for the media and
// presentation layers.
type CombatEvent struct {
	Type       CombatEventType
	AttackerID int
	TargetID   int
	Frame      int
	PosX       float64
	PosY       float64
	KnockbackX float64
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter fans events out to subscribed handlers.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Subscribe adds a handler.
func (e *CombatEventEmitter) Subscribe(h CombatEventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}

// EventQueue is a simple FIFO of combat events.
type EventQueue struct {
	items []CombatEvent
}

// Push adds an event.
func (q *EventQueue) Push(evt CombatEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []CombatEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Count returns how many queued events have the given type.
func (q *EventQueue) Count(t CombatEventType) int {
	if q == nil {
		return 0
	}
	n := 0
	for _, evt := range q.items {
		if evt.Type == t {
			n++
		}
	}
	return n
}
