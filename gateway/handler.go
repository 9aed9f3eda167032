package gateway

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"elective-hub/contract"
	"elective-hub/domain"
	"elective-hub/gateway/wire"
)

// Config carries the per-connection protocol knobs.
type Config struct {
	BufferSize      int
	DropThreshold   int
	IdentifyTimeout time.Duration
}

// Handler runs the per-connection protocol state machine:
// Connecting → Identifying → Ready → Closed. A connection must identify
// with a valid session token within the timeout; in Ready only binary
// SubscriptionRequest frames are accepted, and every valid one gets
// exactly one Acknowledged reply. Any violation closes the connection
// immediately — the close itself is the signal, no error frame is sent.
type Handler struct {
	log      *slog.Logger
	verifier contract.ITokenVerifier
	registry contract.IRegistry
	manager  *Manager
	cfg      Config
	upgrader websocket.Upgrader
}

func NewHandler(log *slog.Logger, verifier contract.ITokenVerifier,
	registry contract.IRegistry, manager *Manager, cfg Config) *Handler {
	return &Handler{
		log:      log,
		verifier: verifier,
		registry: registry,
		manager:  manager,
		cfg:      cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", "err", err)
		return
	}

	identity, ok := h.identify(ws)
	if !ok {
		_ = ws.Close()
		return
	}

	conn := NewConn(h.log, ws, identity.UserID, h.cfg.BufferSize, h.cfg.DropThreshold)
	// Cleanup order matters: subscriptions go first so a closed
	// connection can never receive another fan-out.
	conn.OnClose(func() {
		h.registry.RemoveAll(conn)
		h.manager.Unregister(conn)
		h.log.Info("Connection closed", "user", conn.UserID(), "dropped", conn.Dropped())
	})
	h.manager.Register(conn)

	h.readLoop(ws, conn)
}

// identify waits for the first frame: a binary Identify envelope with a
// verifiable token, within the configured timeout. On any failure the
// session ends as Unauthorized.
func (h *Handler) identify(ws *websocket.Conn) (domain.Identity, bool) {
	if err := ws.SetReadDeadline(time.Now().Add(h.cfg.IdentifyTimeout)); err != nil {
		return domain.Identity{}, false
	}

	messageType, data, err := ws.ReadMessage()
	if err != nil {
		h.log.Info("Identify failed", "err", err)
		h.refuse(ws, "unauthorized")
		return domain.Identity{}, false
	}
	if messageType != websocket.BinaryMessage {
		h.refuse(ws, "unauthorized")
		return domain.Identity{}, false
	}

	env, err := wire.Decode(data)
	if err != nil || env.Type != wire.TypeIdentify {
		h.refuse(ws, "unauthorized")
		return domain.Identity{}, false
	}

	identity, err := h.verifier.Verify(env.Identify.Token)
	if err != nil {
		h.log.Info("Token rejected", "err", err)
		h.refuse(ws, "unauthorized")
		return domain.Identity{}, false
	}

	// Ready: no read deadline, the client may idle between frames.
	if err := ws.SetReadDeadline(time.Time{}); err != nil {
		return domain.Identity{}, false
	}
	return identity, true
}

// readLoop processes inbound frames sequentially, in arrival order.
func (h *Handler) readLoop(ws *websocket.Conn, conn *Conn) {
	defer conn.Close()

	for {
		messageType, data, err := ws.ReadMessage()
		if err != nil {
			// Socket closed (by the client, or by our own teardown).
			return
		}
		if messageType != websocket.BinaryMessage {
			h.violation(conn, "non-binary frame")
			return
		}

		env, err := wire.Decode(data)
		if err != nil {
			h.violation(conn, "undecodable frame")
			return
		}
		// SubscriptionRequest is the only client-initiated mutation in
		// Ready; everything else, server-only payloads included, is a
		// violation.
		if env.Type != wire.TypeSubscriptionRequest {
			h.violation(conn, "disallowed payload "+string(env.Type))
			return
		}

		// An over-limit set is refused before anything is enqueued:
		// invalid requests are never acknowledged, the close is the
		// only signal.
		if err := h.registry.Validate(env.Subscribe.Subscriptions); err != nil {
			h.violation(conn, err.Error())
			return
		}
		// The acknowledgement is enqueued before the new subscriptions
		// are installed, so it always precedes any update they produce.
		if err := conn.Send(wire.NewAcknowledged(env.MessageID)); err != nil {
			return
		}
		if err := h.registry.Replace(conn, env.Subscribe.Subscriptions); err != nil {
			h.violation(conn, err.Error())
			return
		}
	}
}

func (h *Handler) violation(conn *Conn, detail string) {
	h.log.Warn("Protocol violation", "user", conn.UserID(), "detail", detail)
}

// refuse sends a close frame during the identify phase. No structured
// error payload ever goes back on a refused session.
func (h *Handler) refuse(ws *websocket.Conn, reason string) {
	deadline := time.Now().Add(time.Second)
	_ = ws.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason), deadline)
}
