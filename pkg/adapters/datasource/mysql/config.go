// Package mysql provides the MySQL query executor.
package mysql

import (
	"net"

	"github.com/go-sql-driver/mysql"

	"github.com/sqlchat-io/sqlchat-engine/pkg/models"
)

// driverConfig maps a connection descriptor onto the driver's typed
// config. Using mysql.Config instead of a hand-assembled DSN means
// credentials with special characters never need manual escaping, and
// utf8mb4 charset negotiation is requested explicitly.
func driverConfig(desc models.ConnectionDescriptor) *mysql.Config {
	cfg := mysql.NewConfig()
	cfg.User = desc.User
	cfg.Passwd = desc.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(desc.Host, string(desc.Port))
	cfg.DBName = desc.Database
	cfg.ParseTime = true
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg
}

// BuildDSN renders the descriptor as a driver DSN string.
func BuildDSN(desc models.ConnectionDescriptor) string {
	return driverConfig(desc).FormatDSN()
}
