// Package hub tracks the sessions connected to a server so they can be
// told about server-wide events such as a shutdown.
package hub

import (
	"sync"
	"time"
)

// EventType identifies the type of session event.
type EventType int

const (
	EventServerShutdown EventType = iota
	EventAnnouncement
)

// Event is sent from the hub to a session.
type Event struct {
	Type EventType
	Text string // For announcements
}

// Handle represents a session's registration with the hub.
type Handle struct {
	ID       int
	Username string
	Events   chan Event
}

// Hub is the set of live sessions. Each session keeps its own game; the
// hub only fans out events.
type Hub struct {
	mu      sync.RWMutex
	handles map[int]*Handle
	nextID  int
}

// New creates an empty hub.
func New() *Hub {
	return &Hub{
		handles: make(map[int]*Handle),
		nextID:  1,
	}
}

// Register adds a session and returns its handle.
func (h *Hub) Register(username string) *Handle {
	h.mu.Lock()
	defer h.mu.Unlock()

	handle := &Handle{
		ID:       h.nextID,
		Username: username,
		Events:   make(chan Event, 16),
	}
	h.nextID++
	h.handles[handle.ID] = handle
	return handle
}

// Unregister removes a session. Unknown ids are ignored.
func (h *Hub) Unregister(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.handles, id)
}

// Count returns the number of registered sessions.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.handles)
}

// Announce sends text to every session except the sender.
// Sessions with a full event buffer miss the announcement.
func (h *Hub) Announce(from int, text string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, handle := range h.handles {
		if id == from {
			continue
		}
		select {
		case handle.Events <- Event{Type: EventAnnouncement, Text: text}:
		default:
		}
	}
}

// Shutdown notifies all sessions about the shutdown and waits for them to
// unregister, up to the given timeout. It returns the number of sessions
// still registered when it gave up.
func (h *Hub) Shutdown(timeout time.Duration) int {
	h.mu.RLock()
	for _, handle := range h.handles {
		select {
		case handle.Events <- Event{Type: EventServerShutdown}:
		default:
		}
	}
	h.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if remaining := h.Count(); remaining == 0 {
			return 0
		}
		select {
		case <-deadline:
			return h.Count()
		case <-ticker.C:
		}
	}
}
