package gateway

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func managedConn(t *testing.T, m *Manager, userID string) *Conn {
	t.Helper()
	conn := NewConn(slog.Default(), newFakeSocket(), userID, 2, 8)
	conn.OnClose(func() { m.Unregister(conn) })
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestManager_RegisterAndUnregister(t *testing.T) {
	req := require.New(t)
	m := NewManager(slog.Default())
	conn := managedConn(t, m, "alice")

	req.Zero(m.Count())
	before := m.Generation()

	m.Register(conn)
	req.Equal(1, m.Count())
	req.Greater(m.Generation(), before)

	m.Unregister(conn)
	req.Zero(m.Count())
}

func TestManager_SecondSessionClosesFirst(t *testing.T) {
	req := require.New(t)
	m := NewManager(slog.Default())
	first := managedConn(t, m, "alice")
	second := managedConn(t, m, "alice")

	m.Register(first)
	m.Register(second)

	// The first session was torn down to make room
	select {
	case <-first.Done():
	case <-time.After(time.Second):
		t.Fatal("first session was never closed")
	}
	req.Equal(1, m.Count())
	sinks := m.Sinks()
	req.Len(sinks, 1)
	req.Same(second, sinks[0])
}

func TestManager_RegisterWaitsForSlowTeardown(t *testing.T) {
	req := require.New(t)
	m := NewManager(slog.Default())

	// Given a first session whose teardown blocks mid-cleanup
	first := NewConn(slog.Default(), newFakeSocket(), "alice", 2, 8)
	release := make(chan struct{})
	var releaseOnce sync.Once
	unblock := func() { releaseOnce.Do(func() { close(release) }) }
	t.Cleanup(unblock)
	first.OnClose(func() { <-release })
	first.OnClose(func() { m.Unregister(first) })
	m.Register(first)
	go func() { _ = first.Close() }()
	<-first.Done()

	// When the same user registers a new session
	second := managedConn(t, m, "alice")
	done := make(chan struct{})
	go func() {
		m.Register(second)
		close(done)
	}()

	// Then registration waits for the old teardown instead of racing it
	select {
	case <-done:
		t.Fatal("register completed while the old session was still tearing down")
	case <-time.After(50 * time.Millisecond):
	}

	unblock()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("register never completed after teardown finished")
	}
	req.Equal(1, m.Count())
	sinks := m.Sinks()
	req.Len(sinks, 1)
	req.Same(second, sinks[0])
}

func TestManager_StaleUnregisterKeepsSuccessor(t *testing.T) {
	req := require.New(t)
	m := NewManager(slog.Default())
	first := managedConn(t, m, "alice")
	second := managedConn(t, m, "alice")

	m.Register(first)
	m.Register(second)

	// A late teardown of the replaced connection must not evict its successor
	m.Unregister(first)
	req.Equal(1, m.Count())
}

func TestManager_CloseUser(t *testing.T) {
	req := require.New(t)
	m := NewManager(slog.Default())
	conn := managedConn(t, m, "alice")
	m.Register(conn)

	m.CloseUser("alice")

	select {
	case <-conn.Done():
	case <-time.After(time.Second):
		t.Fatal("session not closed on logout")
	}
	req.Zero(m.Count())

	// Unknown users are a no-op
	m.CloseUser("nobody")
}