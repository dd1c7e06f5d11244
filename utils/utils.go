package utils

import (
	"net"
	"net/http"

	"github.com/google/uuid"
)

func GetUUID() string {
	return uuid.New().String()
}

// ClientIP returns the request's remote host without the port. Falls back to
// the raw RemoteAddr when it is not host:port shaped.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
