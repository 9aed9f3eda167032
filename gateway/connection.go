// Package gateway owns the websocket side of the system: one
// authenticated Conn per socket, a manager enforcing the
// single-session-per-user invariant, and the frame-level protocol
// handler.
package gateway

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"elective-hub/gateway/wire"
)

var (
	ErrConnectionClosed = errors.New("connection closed")
	ErrWriteTimeout     = errors.New("write timeout")
)

const writeTimeout = 5 * time.Second

// socket is the part of *websocket.Conn the writer needs. Tests inject
// a stalled implementation to exercise the drop and disconnect paths.
type socket interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Conn wraps one authenticated websocket session. All writes go through
// a bounded outgoing channel drained by a single writer goroutine, so
// no two goroutines ever write to the same socket.
//
// Asynchronous pushes use TrySend, which drops the oldest queued
// envelope on overflow; once the dropped counter crosses the threshold
// the connection is forcibly closed, bounding how far out of sync a
// lagging client can drift.
type Conn struct {
	log    *slog.Logger
	ws     socket
	userID string

	out           chan wire.Envelope
	dropped       atomic.Int64
	dropThreshold int64

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	cleanups  []func()
	closeOnce sync.Once
}

func NewConn(log *slog.Logger, ws socket, userID string, bufferSize, dropThreshold int) *Conn {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Conn{
		log:           log,
		ws:            ws,
		userID:        userID,
		out:           make(chan wire.Envelope, bufferSize),
		dropThreshold: int64(dropThreshold),
		ctx:           ctx,
		cancel:        cancel,
	}
	go c.writeLoop()
	return c
}

func (c *Conn) UserID() string { return c.userID }

// Dropped returns how many envelopes this connection has lost to
// overflow so far.
func (c *Conn) Dropped() int64 { return c.dropped.Load() }

// Done is closed once the connection is shut down.
func (c *Conn) Done() <-chan struct{} { return c.ctx.Done() }

// The single writer goroutine. Envelopes are delivered in enqueue
// order; any socket failure tears the connection down.
func (c *Conn) writeLoop() {
	for {
		select {
		case env := <-c.out:
			data, err := wire.Encode(env)
			if err != nil {
				c.log.Error("Failed to encode envelope", "type", env.Type, "err", err)
				continue
			}
			if err := c.ws.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
				c.Close()
				return
			}
			if err := c.ws.WriteMessage(websocket.BinaryMessage, data); err != nil {
				c.Close()
				return
			}
		case <-c.ctx.Done():
			return
		}
	}
}

// Send is the blocking enqueue, used for replies that must not be lost
// (acknowledgements). It still gives up when the connection dies or the
// queue stays full past the write timeout.
func (c *Conn) Send(env wire.Envelope) error {
	select {
	case <-c.ctx.Done():
		return ErrConnectionClosed
	default:
	}

	select {
	case c.out <- env:
		return nil
	case <-time.After(writeTimeout):
		return ErrWriteTimeout
	case <-c.ctx.Done():
		return ErrConnectionClosed
	}
}

// TrySend enqueues without blocking. On overflow the oldest queued
// envelope is discarded to make room; every discard counts toward the
// disconnect threshold. Returns whether env itself was enqueued.
//
// Eviction is type-blind: under sustained overflow a queued
// acknowledgement can be lost along with the updates. The drop counter
// then pushes the lagging client toward forced disconnect, so it never
// keeps operating on a reply that silently vanished.
func (c *Conn) TrySend(env wire.Envelope) bool {
	if c.ctx.Err() != nil {
		return false
	}

	select {
	case c.out <- env:
		return true
	default:
	}

	// Queue full: a slow client loses the stalest update rather than
	// backpressuring the notifier.
	select {
	case <-c.out:
		c.noteDrop()
	default:
	}

	select {
	case c.out <- env:
		return true
	default:
		c.noteDrop()
		return false
	}
}

func (c *Conn) noteDrop() {
	if n := c.dropped.Add(1); n == c.dropThreshold {
		c.log.Warn("Dropped-message threshold reached, disconnecting",
			"user", c.userID, "dropped", n)
		// Close from a fresh goroutine: noteDrop may run under the
		// registry lock, and cleanup callbacks take it again.
		go c.Close()
	}
}

// OnClose registers a cleanup callback. Callbacks run exactly once, in
// registration order, after the socket has been closed.
func (c *Conn) OnClose(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cleanups = append(c.cleanups, fn)
}

// Close tears the connection down: stop the writer, close the socket
// (close errors are logged, never propagated), then run the cleanup
// callbacks. Safe to call from any goroutine, any number of times.
func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		c.cancel()
		if err := c.ws.Close(); err != nil {
			c.log.Debug("Socket close failed", "user", c.userID, "err", err)
		}
		c.mu.Lock()
		cleanups := c.cleanups
		c.cleanups = nil
		c.mu.Unlock()
		for _, fn := range cleanups {
			fn()
		}
	})
	return nil
}
