// file: services/audit_service_test.go
package services

import (
	"net"
	"net/http/httptest"
	"testing"

	"FlagCore/database"
	"FlagCore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPSourceShapes(t *testing.T) {
	t.Run("raw string", func(t *testing.T) {
		assert.Equal(t, "10.0.0.1", IP("10.0.0.1").ClientIP())
	})

	t.Run("raw string with port", func(t *testing.T) {
		assert.Equal(t, "10.0.0.1", IP("10.0.0.1:4444").ClientIP())
	})

	t.Run("net.Addr", func(t *testing.T) {
		addr := &net.TCPAddr{IP: net.ParseIP("192.0.2.7"), Port: 31337}
		assert.Equal(t, "192.0.2.7", Addr{addr}.ClientIP())
	})

	t.Run("request peer address", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/flags/submit", nil)
		req.RemoteAddr = "203.0.113.9:54321"
		assert.Equal(t, "203.0.113.9", Request{req}.ClientIP())
	})

	t.Run("request prefers forwarding header", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/flags/submit", nil)
		req.RemoteAddr = "127.0.0.1:1234"
		req.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.2")
		assert.Equal(t, "198.51.100.4", Request{req}.ClientIP())
	})
}

func TestRecord(t *testing.T) {
	setupTestDB(t)

	data := "login"
	uid := "alice"
	id, err := Record(database.DB, IP("10.0.0.1"), "auth-login", &data, nil, &uid)
	require.NoError(t, err)
	assert.NotZero(t, id)

	var event models.Event
	require.NoError(t, database.DB.First(&event, id).Error)
	assert.Equal(t, "10.0.0.1", event.IP)
	assert.Equal(t, "auth-login", event.Type)
	require.NotNil(t, event.Data)
	assert.Equal(t, "login", *event.Data)
	assert.Nil(t, event.CID)
	require.NotNil(t, event.UID)
	assert.Equal(t, "alice", *event.UID)
	assert.False(t, event.TS.IsZero())
}

func TestRecordAssignsSequentialIDs(t *testing.T) {
	setupTestDB(t)

	first, err := Record(database.DB, IP("10.0.0.1"), "ping", nil, nil, nil)
	require.NoError(t, err)
	second, err := Record(database.DB, IP("10.0.0.1"), "ping", nil, nil, nil)
	require.NoError(t, err)
	assert.Greater(t, second, first)
}
