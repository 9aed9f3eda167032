package gateway

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"elective-hub/contract"
)

// Manager tracks the single live connection per user. Registering a new
// connection for a user closes the prior one first, so at most one
// session per user exists at any time.
type Manager struct {
	log *slog.Logger

	mu    sync.Mutex
	conns map[string]*Conn
	gen   atomic.Uint64
}

func NewManager(log *slog.Logger) *Manager {
	return &Manager{log: log, conns: make(map[string]*Conn)}
}

// Register installs the connection, closing any prior session for the
// same user beforehand. The caller must have wired the connection's
// cleanup callbacks already (they are what deregisters the old one).
func (m *Manager) Register(c *Conn) {
	for {
		m.mu.Lock()
		prev := m.conns[c.UserID()]
		if prev == nil {
			m.conns[c.UserID()] = c
			m.gen.Add(1)
			m.mu.Unlock()
			m.log.Info("Connection registered", "user", c.UserID())
			return
		}
		m.mu.Unlock()

		m.log.Info("Closing previous session for user", "user", c.UserID())
		prev.Close()
		// Another goroutine may own the teardown; wait for it instead
		// of spinning on the map.
		<-prev.Done()
	}
}

// Unregister removes the connection if it is still the one on record.
// A replaced connection's teardown must not evict its successor.
func (m *Manager) Unregister(c *Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conns[c.UserID()] == c {
		delete(m.conns, c.UserID())
		m.gen.Add(1)
	}
}

// CloseUser terminates the user's live session, if any. This is the
// logout path; teardown runs the usual cleanup callbacks.
func (m *Manager) CloseUser(userID string) {
	m.mu.Lock()
	c := m.conns[userID]
	m.mu.Unlock()
	if c != nil {
		c.Close()
	}
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.conns)
}

// Sinks snapshots the live connections for the bulk broadcaster.
func (m *Manager) Sinks() []contract.UpdateSink {
	m.mu.Lock()
	defer m.mu.Unlock()
	sinks := make([]contract.UpdateSink, 0, len(m.conns))
	for _, c := range m.conns {
		sinks = append(sinks, c)
	}
	return sinks
}

// Generation changes on every membership change; the bulk broadcaster
// uses it to invalidate its dedup state.
func (m *Manager) Generation() uint64 {
	return m.gen.Load()
}
