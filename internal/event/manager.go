// internal/event/manager.go
package event

import (
	"sync"

	"github.com/bethropolis/blockdoc/internal/logger"
)

// Handler receives dispatched events.
// It returns true if the event was consumed, which stops later handlers.
type Handler func(e Event) bool

type subscription struct {
	id      int
	handler Handler
}

// Manager handles event subscriptions and synchronous dispatch.
type Manager struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[Type][]subscription
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{handlers: make(map[Type][]subscription)}
}

// Subscribe registers handler for eventType and returns a function that removes it.
func (m *Manager) Subscribe(eventType Type, handler Handler) (unsubscribe func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID
	m.handlers[eventType] = append(m.handlers[eventType], subscription{id: id, handler: handler})
	logger.DebugTagf("event", "Event Manager: handler %d subscribed to %v", id, eventType)

	return func() { m.remove(eventType, id) }
}

func (m *Manager) remove(eventType Type, id int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	subs := m.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			m.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch calls every handler registered for eventType in subscription order.
// Handlers run synchronously on the caller's goroutine.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	m.mu.RLock()
	subs := make([]subscription, len(m.handlers[eventType]))
	copy(subs, m.handlers[eventType])
	m.mu.RUnlock()

	if len(subs) == 0 {
		return
	}

	logger.DebugTagf("event", "Event Manager: dispatching %v to %d handler(s)", eventType, len(subs))
	e := Event{Type: eventType, Data: data}
	for _, s := range subs {
		if s.handler(e) {
			break
		}
	}
}
