package live

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// joinTimeout bounds how long a fresh connection may sit silent
	// before sending its join frame.
	joinTimeout = 10 * time.Second

	writeTimeout = 10 * time.Second
	pingInterval = 30 * time.Second
)

// joinMessage is the first frame a client must send: it names the user
// the connection subscribes for. The claim is trusted as-is; there is no
// authentication at subscribe time.
type joinMessage struct {
	Event  string `json:"event"`
	UserID int64  `json:"user_id"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect from arbitrary origins.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Handler upgrades HTTP connections to websockets and bridges them to the
// hub.
type Handler struct {
	Hub *Hub
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		slog.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	go h.serve(conn)
}

// serve runs one connection: wait for the join frame, subscribe, then
// stream hub frames until the peer disconnects.
func (h *Handler) serve(conn *websocket.Conn) {
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(joinTimeout))
	_, frame, err := conn.ReadMessage()
	if err != nil {
		return
	}

	var join joinMessage
	if err := json.Unmarshal(frame, &join); err != nil || join.Event != "join" || join.UserID <= 0 {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "expected join event"),
			time.Now().Add(writeTimeout))
		return
	}

	session := h.Hub.Subscribe(join.UserID)
	defer h.Hub.Unsubscribe(session)

	// Confirm registration so clients know pushes can now reach them.
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(envelope{Event: "joined"}); err != nil {
		return
	}

	slog.Info("live session joined", "user_id", join.UserID)

	// Reader goroutine: the client sends nothing after join, but reading
	// is how we notice the peer going away (and how pongs are consumed).
	conn.SetReadDeadline(time.Time{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case data, ok := <-session.Receive():
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		case <-done:
			slog.Info("live session closed", "user_id", join.UserID)
			return
		}
	}
}
