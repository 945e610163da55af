// file: services/audit_service.go
package services

import (
	"net"
	"net/http"
	"strings"

	"FlagCore/models"

	"gorm.io/gorm"
)

// IPSource is any origin shape a caller may hold for the submitting
// client. Each shape knows how to reduce itself to a plain address so
// the event insert stays monomorphic.
type IPSource interface {
	ClientIP() string
}

// IP wraps an address that is already a string.
type IP string

func (s IP) ClientIP() string {
	return stripPort(string(s))
}

// Addr wraps a transport-level peer address.
type Addr struct {
	net.Addr
}

func (s Addr) ClientIP() string {
	return stripPort(s.String())
}

// Conn wraps a live connection; the peer address is used.
type Conn struct {
	net.Conn
}

func (s Conn) ClientIP() string {
	return stripPort(s.RemoteAddr().String())
}

// Request wraps an inbound HTTP request. An X-Forwarded-For header
// takes precedence over the peer address.
type Request struct {
	*http.Request
}

func (s Request) ClientIP() string {
	if fwd := s.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	return stripPort(s.RemoteAddr)
}

func stripPort(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// Record appends an audit event and returns the new row id. It runs on
// the handle it is given, so a caller inside a transaction gets the
// event committed (or rolled back) together with its own writes.
func Record(db *gorm.DB, src IPSource, typ string, data, cid, uid *string) (uint64, error) {
	event := models.Event{
		IP:   src.ClientIP(),
		Type: typ,
		Data: data,
		CID:  cid,
		UID:  uid,
	}
	if err := db.Create(&event).Error; err != nil {
		return 0, err
	}
	return event.ID, nil
}
