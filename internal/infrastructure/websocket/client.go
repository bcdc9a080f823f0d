package websocket

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Nekta161/autosalon/internal/infrastructure/broadcast"
	"github.com/Nekta161/autosalon/pkg/logger"
)

// Client is one realtime connection (one browser tab). It implements
// broadcast.Member; events delivered by the bus are pushed to the peer by
// WritePump. UserID is empty for anonymous connections.
type Client struct {
	UserID string

	id   string
	conn *websocket.Conn
	bus  broadcast.Bus
	Send chan []byte

	mutex  sync.Mutex
	closed bool
	groups map[string]struct{}
}

func NewClient(conn *websocket.Conn, bus broadcast.Bus, userID string) *Client {
	return &Client{
		UserID: userID,
		id:     uuid.NewString(),
		conn:   conn,
		bus:    bus,
		Send:   make(chan []byte, 256),
		groups: make(map[string]struct{}),
	}
}

func (c *Client) ID() string {
	return c.id
}

// Deliver queues an event for the peer without blocking. A full queue means
// the peer cannot keep up; the event is dropped for this member only.
func (c *Client) Deliver(event []byte) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.closed {
		return false
	}

	select {
	case c.Send <- event:
		return true
	default:
		return false
	}
}

func (c *Client) Join(group string) {
	c.mutex.Lock()
	c.groups[group] = struct{}{}
	c.mutex.Unlock()

	c.bus.Join(group, c)
}

func (c *Client) Leave(group string) {
	c.mutex.Lock()
	delete(c.groups, group)
	c.mutex.Unlock()

	c.bus.Leave(group, c.id)
}

// close leaves every joined group so no membership dangles, then shuts the
// send queue down.
func (c *Client) close() {
	c.mutex.Lock()
	if c.closed {
		c.mutex.Unlock()
		return
	}
	c.closed = true
	groups := make([]string, 0, len(c.groups))
	for group := range c.groups {
		groups = append(groups, group)
	}
	c.groups = make(map[string]struct{})
	c.mutex.Unlock()

	for _, group := range groups {
		c.bus.Leave(group, c.id)
	}
	close(c.Send)
}

// ReadPump reads inbound frames until the peer goes away. The server never
// closes the connection from its side; only a client close or a transport
// failure ends the loop.
func (c *Client) ReadPump(onMessage func(data []byte)) {
	defer func() {
		c.close()
		c.conn.Close()
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("websocket: read error for client %s: %v", c.id, err)
			}
			break
		}

		if onMessage != nil {
			onMessage(data)
		}
	}
}

// WritePump pushes queued events to the peer in delivery order.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for {
		event, ok := <-c.Send
		if !ok {
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.conn.WriteMessage(websocket.TextMessage, event); err != nil {
			logger.Warn("websocket: write error for client %s: %v", c.id, err)
			return
		}
	}
}
