// Package live delivers notifications to connected clients in real time.
//
// The hub is a process-wide registry mapping user IDs to their open
// sessions. Delivery is best-effort: durability is the notification
// store's job, so a push to an offline user (or a session whose buffer is
// full) is silently dropped.
package live

import (
	"encoding/json"
	"sync"

	"github.com/strayaid/strayaid/internal/metrics"
)

// sendBuffer is the per-session queue depth. A session that falls this
// far behind starts losing pushes rather than blocking writers.
const sendBuffer = 16

// Notification is the payload pushed to live sessions.
type Notification struct {
	Message string `json:"message"`
}

// envelope is the wire frame for server-to-client events.
type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Session is one live connection subscribed on behalf of a single user.
// A user with several devices holds several sessions.
type Session struct {
	UserID int64

	send      chan []byte
	closeOnce sync.Once
}

// Receive returns the channel of encoded frames queued for this session.
// The channel is closed when the session is unsubscribed.
func (s *Session) Receive() <-chan []byte {
	return s.send
}

// Hub is the connection registry. The zero value is not usable; create
// one with NewHub.
type Hub struct {
	mu       sync.RWMutex
	sessions map[int64]map[*Session]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{sessions: make(map[int64]map[*Session]struct{})}
}

// Subscribe registers a new session for a user and returns it.
func (h *Hub) Subscribe(userID int64) *Session {
	s := &Session{
		UserID: userID,
		send:   make(chan []byte, sendBuffer),
	}

	h.mu.Lock()
	if h.sessions[userID] == nil {
		h.sessions[userID] = make(map[*Session]struct{})
	}
	h.sessions[userID][s] = struct{}{}
	h.mu.Unlock()

	metrics.LiveSessions.Inc()
	return s
}

// Unsubscribe removes a session from the registry and closes its channel.
// Safe to call more than once.
func (h *Hub) Unsubscribe(s *Session) {
	h.mu.Lock()
	set, ok := h.sessions[s.UserID]
	if ok {
		if _, present := set[s]; present {
			delete(set, s)
			if len(set) == 0 {
				delete(h.sessions, s.UserID)
			}
			metrics.LiveSessions.Dec()
		} else {
			ok = false
		}
	}
	h.mu.Unlock()

	if ok {
		s.closeOnce.Do(func() { close(s.send) })
	}
}

// Push fans a notification out to every live session of a user. It never
// blocks: sessions with a full buffer are skipped, and a user with no
// sessions receives nothing.
func (h *Hub) Push(userID int64, n Notification) {
	data, err := json.Marshal(envelope{Event: "notification", Data: n})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	set := h.sessions[userID]
	if len(set) == 0 {
		metrics.LivePushes.WithLabelValues("dropped").Inc()
		return
	}
	for s := range set {
		select {
		case s.send <- data:
			metrics.LivePushes.WithLabelValues("delivered").Inc()
		default:
			metrics.LivePushes.WithLabelValues("dropped").Inc()
		}
	}
}

// SessionCount returns how many sessions a user currently has.
func (h *Hub) SessionCount(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[userID])
}
