// Package postgres provides the PostgreSQL query executor.
package postgres

import (
	"net"
	"net/url"

	"github.com/sqlchat-io/sqlchat-engine/pkg/models"
)

// BuildConnString builds a PostgreSQL URL from a connection descriptor.
// Each component is encoded with the rules of the URL part it lands in.
// In the userinfo part a "+" is a literal character, so a space in the
// password must encode as %20 or the server sees the wrong password.
func BuildConnString(desc models.ConnectionDescriptor) string {
	u := url.URL{
		Scheme:   "postgresql",
		User:     url.UserPassword(desc.User, desc.Password),
		Host:     net.JoinHostPort(desc.Host, string(desc.Port)),
		Path:     "/" + desc.Database,
		RawQuery: "sslmode=prefer",
	}
	return u.String()
}
