package services

import (
	"sync/atomic"
	"time"

	"github.com/alouani-moncif/secret-word-society-replit/internal/config"
)

// Metrics tracks WebSocket server performance and resource usage
type Metrics struct {
	// Connection metrics
	activeConnections int64
	totalConnections  int64
	activeRooms       int64

	// Message metrics
	messagesReceived int64
	messagesSent     int64
	lastMessageTime  int64 // Unix timestamp

	// Error metrics
	connectionErrors    int64
	broadcastErrors     int64
	rateLimitViolations int64

	startTime time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),
	}
}

// Connection tracking
func (m *Metrics) IncrementConnections() {
	atomic.AddInt64(&m.activeConnections, 1)
	atomic.AddInt64(&m.totalConnections, 1)
}

func (m *Metrics) DecrementConnections() {
	atomic.AddInt64(&m.activeConnections, -1)
}

func (m *Metrics) IncrementRooms() {
	atomic.AddInt64(&m.activeRooms, 1)
}

func (m *Metrics) DecrementRooms() {
	atomic.AddInt64(&m.activeRooms, -1)
}

// Message tracking
func (m *Metrics) IncrementMessagesReceived() {
	atomic.AddInt64(&m.messagesReceived, 1)
	atomic.StoreInt64(&m.lastMessageTime, time.Now().Unix())
}

func (m *Metrics) IncrementMessagesSent() {
	atomic.AddInt64(&m.messagesSent, 1)
}

// Error tracking
func (m *Metrics) IncrementConnectionErrors() {
	atomic.AddInt64(&m.connectionErrors, 1)
}

func (m *Metrics) IncrementBroadcastErrors() {
	atomic.AddInt64(&m.broadcastErrors, 1)
}

func (m *Metrics) IncrementRateLimitViolations() {
	atomic.AddInt64(&m.rateLimitViolations, 1)
}

// MetricsSnapshot represents a point-in-time view of metrics
type MetricsSnapshot struct {
	ActiveConnections   int64  `json:"active_connections"`
	TotalConnections    int64  `json:"total_connections"`
	ActiveRooms         int64  `json:"active_rooms"`
	MessagesReceived    int64  `json:"messages_received"`
	MessagesSent        int64  `json:"messages_sent"`
	ConnectionErrors    int64  `json:"connection_errors"`
	BroadcastErrors     int64  `json:"broadcast_errors"`
	RateLimitViolations int64  `json:"rate_limit_violations"`
	UptimeSeconds       int64  `json:"uptime_seconds"`
	HealthStatus        string `json:"health_status"`
}

// Snapshot captures the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	active := atomic.LoadInt64(&m.activeConnections)

	snapshot := MetricsSnapshot{
		ActiveConnections:   active,
		TotalConnections:    atomic.LoadInt64(&m.totalConnections),
		ActiveRooms:         atomic.LoadInt64(&m.activeRooms),
		MessagesReceived:    atomic.LoadInt64(&m.messagesReceived),
		MessagesSent:        atomic.LoadInt64(&m.messagesSent),
		ConnectionErrors:    atomic.LoadInt64(&m.connectionErrors),
		BroadcastErrors:     atomic.LoadInt64(&m.broadcastErrors),
		RateLimitViolations: atomic.LoadInt64(&m.rateLimitViolations),
		UptimeSeconds:       int64(time.Since(m.startTime).Seconds()),
	}

	switch {
	case active >= config.MaxTotalConnections:
		snapshot.HealthStatus = "critical"
	case active >= config.MaxTotalConnections*8/10:
		snapshot.HealthStatus = "warning"
	default:
		snapshot.HealthStatus = "ok"
	}

	return snapshot
}
