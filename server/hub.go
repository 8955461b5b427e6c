package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/o0olele/villawalk/player"
)

const (
	writeWait  = 5 * time.Second
	sendBuffer = 8
)

// clientMessage is what stream clients may send: their current key state.
type clientMessage struct {
	Type  string       `json:"type"`
	Input player.Input `json:"input"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// hub fans snapshots out to websocket subscribers. Slow clients miss frames
// instead of stalling the frame loop.
type hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	logger  *log.Logger
}

func newHub(logger *log.Logger) *hub {
	return &hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
	}
}

// add registers conn with first queued ahead of any broadcast.
func (h *hub) add(conn *websocket.Conn, first []byte) *client {
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	c.send <- first
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	h.logger.Info("stream client connected", "remote", conn.RemoteAddr(), "clients", n)
	go c.writeLoop()
	return c
}

func (h *hub) remove(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c)
	n := len(h.clients)
	close(c.send)
	h.mu.Unlock()
	h.logger.Info("stream client disconnected", "remote", c.conn.RemoteAddr(), "clients", n)
}

func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *hub) broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.logger.Debug("dropping frame for slow client", "remote", c.conn.RemoteAddr())
		}
	}
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

func (c *client) writeLoop() {
	defer c.conn.Close()
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
}

// subscribe queues the current snapshot for conn and registers it in one
// critical section, so no frame lands between the two.
func (s *Server) subscribe(conn *websocket.Conn) (*client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := s.scene.Snapshot()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	return s.hub.add(conn, data), nil
}

func (s *Server) streamHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	c, err := s.subscribe(conn)
	if err != nil {
		s.logger.Error("initial snapshot failed", "err", err)
		conn.Close()
		return
	}

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			s.hub.remove(c)
			return
		}
		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.logger.Debug("discarding malformed stream message", "remote", r.RemoteAddr, "err", err)
			continue
		}
		if msg.Type == "input" {
			s.SetInput(msg.Input)
		}
	}
}
