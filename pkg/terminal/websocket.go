// Package terminal exposes interpreter sessions over websockets: one
// session per connection, text frames with command lines in, JSON-encoded
// shared.Message frames out.
package terminal

import (
	"net/http"
	"strings"
	"time"

	"github.com/antibyte/retrobasic/pkg/auth"
	"github.com/antibyte/retrobasic/pkg/basic"
	"github.com/antibyte/retrobasic/pkg/configuration"
	"github.com/antibyte/retrobasic/pkg/logger"
	"github.com/antibyte/retrobasic/pkg/shared"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Network parameters come from the [Network] configuration section.
func getWriteWait() time.Duration {
	return configuration.GetDuration("Network", "write_wait_timeout", 10*time.Second)
}

func getPongWait() time.Duration {
	return configuration.GetDuration("Network", "pong_timeout", 90*time.Second)
}

func getPingPeriod() time.Duration {
	return getPongWait() * 9 / 10
}

func getMaxMessageSize() int64 {
	return int64(configuration.GetInt("Network", "max_message_size_kb", 64)) * 1024
}

// Handler upgrades connections and runs one interpreter session per
// client.
type Handler struct {
	fs       basic.FileSystem
	upgrader websocket.Upgrader
}

// NewHandler creates a websocket handler whose sessions store programs
// through fs.
func NewHandler(fs basic.FileSystem) *Handler {
	return &Handler{
		fs: fs,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// HandleWebSocket is the /ws endpoint. With auth enabled the client must
// present a token from /session; its session ID carries over, so programs
// saved under it remain reachable across reconnects.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	var sessionID string
	if auth.Enabled() {
		sid, err := auth.ValidateSessionToken(r.URL.Query().Get("token"))
		if err != nil {
			logger.Warn(logger.AreaTerminal, "websocket rejected: %v", err)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		sessionID = sid
	} else {
		sessionID = uuid.NewString()
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error(logger.AreaTerminal, "websocket upgrade failed: %v", err)
		return
	}

	in := basic.New(sessionID, h.fs)
	logger.Info(logger.AreaSession, "session %s connected from %s", sessionID, r.RemoteAddr)

	// Handshake: session ID, mode, and prompt, queued ahead of any output.
	enabled := true
	in.OutputChan <- shared.Message{Type: shared.MessageTypeSession, SessionID: sessionID}
	in.OutputChan <- shared.Message{Type: shared.MessageTypeMode, Mode: "basic", SessionID: sessionID}
	in.OutputChan <- shared.Message{Type: shared.MessageTypePrompt, PromptSymbol: "> ", InputEnabled: &enabled, SessionID: sessionID}

	go h.writePump(conn, in)
	h.readPump(conn, in)
}

// readPump drives the session: every text frame is one operator input
// line, executed synchronously. The interpreter itself never sees
// concurrency; this loop is its only caller.
func (h *Handler) readPump(conn *websocket.Conn, in *basic.Interpreter) {
	defer in.Close() // ends the write pump, which closes the connection

	conn.SetReadLimit(getMaxMessageSize())
	conn.SetReadDeadline(time.Now().Add(getPongWait()))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(getPongWait()))
		return nil
	})

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn(logger.AreaTerminal, "session %s read error: %v", in.SessionID(), err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		line := strings.TrimRight(string(data), "\r\n")
		if in.Execute(line) {
			in.OutputChan <- shared.Message{Type: shared.MessageTypeQuit, Content: "Goodbye.", SessionID: in.SessionID()}
			logger.Info(logger.AreaSession, "session %s quit", in.SessionID())
			return
		}
	}
}

// writePump forwards interpreter output to the client and keeps the
// connection alive with pings. Interpreter sends are blocking, so the
// pump must keep draining until the channel closes even after the
// connection dies; closing the connection makes the read pump end the
// session.
func (h *Handler) writePump(conn *websocket.Conn, in *basic.Interpreter) {
	ticker := time.NewTicker(getPingPeriod())
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	dead := false
	for {
		select {
		case msg, ok := <-in.OutputChan:
			if !ok {
				if !dead {
					conn.SetWriteDeadline(time.Now().Add(getWriteWait()))
					conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				}
				return
			}
			if dead {
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(getWriteWait()))
			if err := conn.WriteJSON(msg); err != nil {
				logger.Warn(logger.AreaTerminal, "session %s write error: %v", in.SessionID(), err)
				dead = true
				conn.Close()
			}
		case <-ticker.C:
			if dead {
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(getWriteWait()))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				dead = true
				conn.Close()
			}
		}
	}
}
