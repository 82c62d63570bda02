package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()

	m.IncrementConnections()
	m.IncrementConnections()
	m.DecrementConnections()
	m.IncrementRooms()
	m.IncrementMessagesSent()
	m.IncrementMessagesReceived()
	m.IncrementBroadcastErrors()

	s := m.Snapshot()
	assert.Equal(t, int64(1), s.ActiveConnections)
	assert.Equal(t, int64(2), s.TotalConnections)
	assert.Equal(t, int64(1), s.ActiveRooms)
	assert.Equal(t, int64(1), s.MessagesSent)
	assert.Equal(t, int64(1), s.MessagesReceived)
	assert.Equal(t, int64(1), s.BroadcastErrors)
	assert.Equal(t, "ok", s.HealthStatus)
}
