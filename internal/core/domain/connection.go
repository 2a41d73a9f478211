// Package domain contains the core domain models for hanaql.
package domain

import (
	"fmt"
	"net/url"
)

// DefaultPort is the default SAP HANA Cloud SQL port.
const DefaultPort = 443

// ConnectionConfig holds the configuration for a database connection
type ConnectionConfig struct {
	Host     string // Server hostname or IP
	Port     int    // Port number (default 443)
	User     string // Authentication principal
	Password string // Authentication secret
}

// NewConnectionConfig creates a new connection config with defaults
func NewConnectionConfig() *ConnectionConfig {
	return &ConnectionConfig{
		Port: DefaultPort,
	}
}

// DSN generates the go-hdb connection string
func (c *ConnectionConfig) DSN() string {
	u := url.URL{
		Scheme: "hdb",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
	}
	return u.String()
}

// Validate checks if the connection config is valid. A missing required
// parameter is a configuration error and must be caught before any
// network I/O is attempted.
func (c *ConnectionConfig) Validate() error {
	if c.Host == "" {
		return &ConfigurationError{Param: "host"}
	}

	if c.User == "" {
		return &ConfigurationError{Param: "user"}
	}

	if c.Password == "" {
		return &ConfigurationError{Param: "password"}
	}

	if c.Port <= 0 || c.Port > 65535 {
		return &ConfigurationError{Param: "port", Detail: "must be between 1 and 65535"}
	}

	return nil
}

// SafeString returns the connection parameters with the password masked
func (c *ConnectionConfig) SafeString() string {
	return fmt.Sprintf("Host=%s:%d; User=%s; Password=***", c.Host, c.Port, c.User)
}

// ServerInfo holds information about the connected HANA database,
// as reported by the M_DATABASE monitoring view.
type ServerInfo struct {
	DatabaseName string // Database name
	Host         string // Host the database runs on
	Version      string // HANA version string
	Usage        string // Usage classification (production, test, ...)
	StartTime    string // Time the database was started
}
