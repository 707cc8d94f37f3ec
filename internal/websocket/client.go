package websocket

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/acllc88/bugleboy-radio/internal/models"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096
)

// Session is the application surface a UI client drives. Implemented by the
// radio service.
type Session interface {
	SendChat(ctx context.Context, text string) error
	OpenChat()
	CloseChat()
	Play(stationID string) error
	TogglePlay()
	SetVolume(v float64)
	ToggleMute()
	SetWindowState(focused, visible bool)
}

// Client represents one connected UI (window, tray widget, remote).
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	id      uuid.UUID
	session Session
}

// NewClient creates a new WebSocket client
func NewClient(hub *Hub, conn *websocket.Conn, session Session) *Client {
	return &Client{
		hub:     hub,
		conn:    conn,
		send:    make(chan []byte, 256),
		id:      uuid.New(),
		session: session,
	}
}

// ReadPump pumps commands from the WebSocket connection into the session.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// WritePump pumps events from the hub to the WebSocket connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current WebSocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage dispatches an incoming command to the session.
func (c *Client) handleMessage(data []byte) {
	var wsMsg models.WSMessage
	if err := json.Unmarshal(data, &wsMsg); err != nil {
		c.sendError("Invalid message format")
		return
	}

	switch wsMsg.Event {
	case models.EventChatSend:
		c.handleChatSend(wsMsg.Payload)

	case models.EventChatOpen:
		c.session.OpenChat()

	case models.EventChatClose:
		c.session.CloseChat()

	case models.EventPlayerPlay:
		c.handlePlayerPlay(wsMsg.Payload)

	case models.EventPlayerToggle:
		c.session.TogglePlay()

	case models.EventPlayerVolume:
		c.handlePlayerVolume(wsMsg.Payload)

	case models.EventPlayerMute:
		c.session.ToggleMute()

	case models.EventWindowState:
		c.handleWindowState(wsMsg.Payload)

	default:
		c.sendError("Unknown event type")
	}
}

func (c *Client) handleChatSend(payload interface{}) {
	data, _ := json.Marshal(payload)
	var req models.WSChatSendPayload
	if err := json.Unmarshal(data, &req); err != nil {
		c.sendError("Invalid chat payload")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := c.session.SendChat(ctx, req.Text); err != nil {
		c.sendError(err.Error())
	}
}

func (c *Client) handlePlayerPlay(payload interface{}) {
	data, _ := json.Marshal(payload)
	var req models.WSPlayerPlayPayload
	if err := json.Unmarshal(data, &req); err != nil {
		c.sendError("Invalid player payload")
		return
	}

	if err := c.session.Play(req.StationID); err != nil {
		c.sendError(err.Error())
	}
}

func (c *Client) handlePlayerVolume(payload interface{}) {
	data, _ := json.Marshal(payload)
	var req models.WSPlayerVolumePayload
	if err := json.Unmarshal(data, &req); err != nil {
		c.sendError("Invalid volume payload")
		return
	}

	c.session.SetVolume(req.Volume)
}

func (c *Client) handleWindowState(payload interface{}) {
	data, _ := json.Marshal(payload)
	var req models.WSWindowStatePayload
	if err := json.Unmarshal(data, &req); err != nil {
		c.sendError("Invalid window payload")
		return
	}

	c.session.SetWindowState(req.Focused, req.Visible)
}

// sendError sends an error message to this client only.
func (c *Client) sendError(message string) {
	errorMsg := models.WSMessage{
		Event: models.EventError,
		Payload: models.WSErrorPayload{
			Message: message,
		},
	}

	data, _ := json.Marshal(errorMsg)
	select {
	case c.send <- data:
	default:
	}
}
