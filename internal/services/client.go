package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/alouani-moncif/secret-word-society-replit/internal/config"
	"github.com/alouani-moncif/secret-word-society-replit/internal/models"
)

// Client represents a single WebSocket subscriber with its own send goroutine.
type Client struct {
	conn     *websocket.Conn
	send     chan []byte
	hub      *Hub
	roomID   string
	playerID string

	// Rate limiting
	messageCount int
	rateLimitMu  sync.Mutex
	lastReset    time.Time

	// Lifecycle
	ctx     context.Context
	cancel  context.CancelFunc
	closed  bool
	closeMu sync.Mutex
}

// NewClient creates a new client instance. playerID may be empty for a
// connection that only observes the room.
func NewClient(conn *websocket.Conn, hub *Hub, roomID, playerID string) *Client {
	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		conn:      conn,
		send:      make(chan []byte, config.ClientSendBufferSize),
		hub:       hub,
		roomID:    roomID,
		playerID:  playerID,
		lastReset: time.Now(),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start begins the client's write pump. Reads are driven by the HTTP
// handler via ReadLoop so the handler blocks for the connection lifetime.
func (c *Client) Start() {
	go c.writePump()
}

// writePump handles outgoing messages to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(config.PingInterval)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				_ = c.conn.Close(websocket.StatusNormalClosure, "")
				return
			}

			writeCtx, cancel := context.WithTimeout(c.ctx, config.WriteTimeout)
			err := c.conn.Write(writeCtx, websocket.MessageText, message)
			cancel()

			if err != nil {
				log.Printf("❌ Write error (room=%s, player=%s): %v", c.roomID, c.playerID, err)
				c.hub.metrics.IncrementBroadcastErrors()
				return
			}
			c.hub.metrics.IncrementMessagesSent()

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(c.ctx, config.WriteTimeout)
			err := c.conn.Ping(pingCtx)
			cancel()

			if err != nil {
				log.Printf("❌ Ping error (room=%s): %v", c.roomID, err)
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// ReadLoop consumes inbound frames until the connection drops. All game
// commands arrive over HTTP, so inbound frames only keep the connection
// alive; anything beyond the rate limit closes the socket.
func (c *Client) ReadLoop() {
	defer func() {
		c.hub.Unregister(c.roomID, c)
		c.Close()
	}()

	for {
		readCtx, cancel := context.WithTimeout(c.ctx, config.PongTimeout)
		_, _, err := c.conn.Read(readCtx)
		cancel()

		if err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure {
				c.hub.metrics.IncrementConnectionErrors()
			}
			return
		}

		c.hub.metrics.IncrementMessagesReceived()

		if !c.checkRateLimit() {
			log.Printf("⚠️  Rate limit exceeded (room=%s, player=%s)", c.roomID, c.playerID)
			c.hub.metrics.IncrementRateLimitViolations()
			c.hub.SendToClient(c, &models.WSMessage{
				Type:    models.MsgTypeError,
				Payload: map[string]string{"message": "Rate limit exceeded. Please slow down."},
			})
			return
		}
	}
}

// checkRateLimit verifies the client hasn't exceeded message rate limits
func (c *Client) checkRateLimit() bool {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	now := time.Now()
	if now.Sub(c.lastReset) > config.RateLimitWindow {
		c.messageCount = 0
		c.lastReset = now
	}

	c.messageCount++
	return c.messageCount <= config.MaxMessagesPerSecond
}

// Send queues a message for sending to the client
func (c *Client) Send(message []byte) bool {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()

	if c.closed {
		return false
	}

	select {
	case c.send <- message:
		return true
	default:
		// Channel full, client is too slow
		log.Printf("⚠️  Send buffer full, closing slow client (room=%s, player=%s)", c.roomID, c.playerID)
		c.hub.metrics.IncrementBroadcastErrors()
		go c.Close()
		return false
	}
}

// Close cleanly shuts down the client connection
func (c *Client) Close() {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()

	if c.closed {
		return
	}

	c.closed = true
	c.cancel()
	close(c.send)
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
}
