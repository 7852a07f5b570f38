// Package models defines the wire types shared by handlers and services.
package models

import (
	"fmt"

	"github.com/sqlchat-io/sqlchat-engine/pkg/apperrors"
)

// Dialect identifies a supported relational database.
type Dialect string

const (
	DialectPostgres Dialect = "postgresql"
	DialectMySQL    Dialect = "mysql"
)

// Validate rejects unrecognized dialect values before any I/O happens.
func (d Dialect) Validate() error {
	switch d {
	case DialectPostgres, DialectMySQL:
		return nil
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedDialect, string(d))
	}
}

// Provider identifies a supported AI model provider.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// Validate rejects unrecognized provider values. Unknown providers are
// rejected rather than routed to a default.
func (p Provider) Validate() error {
	switch p {
	case ProviderOpenAI, ProviderGemini:
		return nil
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedProvider, string(p))
	}
}

// ConnectionDescriptor carries the full database credentials for a single
// request. It is never persisted and has no identity beyond the request.
type ConnectionDescriptor struct {
	Dialect  Dialect    `json:"dbType"`
	Host     string     `json:"dbHost"`
	Port     FlexString `json:"dbPort"`
	Database string     `json:"dbName"`
	User     string     `json:"dbUser"`
	Password string     `json:"dbPassword"`
}

// AICredential carries the AI provider selection and API key for a single
// request. Same lifecycle as ConnectionDescriptor.
type AICredential struct {
	Provider Provider `json:"aiProvider"`
	APIKey   string   `json:"apiKey"`
}

// QueryRequest is the payload for /api/execute and /api/generate. Query is
// either literal SQL (execute path) or a natural-language question
// (generate path). Schema is the textual schema description the client
// echoes back from /api/schema.
type QueryRequest struct {
	ConnectionDescriptor
	AICredential
	Query  string `json:"query"`
	Schema string `json:"schema,omitempty"`
}
