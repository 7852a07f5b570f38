// Package audit provides security audit logging for SIEM consumption.
// Rejected statements and injection attempts are logged as structured
// JSON events with a stable shape.
package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sqlchat-io/sqlchat-engine/pkg/logging"
	"github.com/sqlchat-io/sqlchat-engine/pkg/models"
)

// SecurityEventType categorizes security-relevant events for filtering
// and alerting.
type SecurityEventType string

const (
	// EventUnsafeQuery is logged when a caller-supplied statement fails
	// read-only validation.
	EventUnsafeQuery SecurityEventType = "unsafe_query_rejected"
	// EventUnsafeGeneratedQuery is logged when a model produces a
	// statement that fails read-only validation.
	EventUnsafeGeneratedQuery SecurityEventType = "unsafe_generated_query_rejected"
	// EventInjectionAttempt is logged when libinjection flags an
	// identifier from the request.
	EventInjectionAttempt SecurityEventType = "sql_injection_attempt"
)

// SecurityEvent is the JSON shape shipped to SIEM systems.
type SecurityEvent struct {
	Timestamp time.Time         `json:"timestamp"`
	EventID   uuid.UUID         `json:"event_id"`
	EventType SecurityEventType `json:"event_type"`
	Dialect   string            `json:"dialect,omitempty"`
	ClientIP  string            `json:"client_ip,omitempty"`
	Details   any               `json:"details"`
	Severity  string            `json:"severity"` // info, warning, critical
}

// SecurityAuditor logs security events on a dedicated logger namespace.
type SecurityAuditor struct {
	logger *zap.Logger
}

// NewSecurityAuditor creates an auditor. Events are emitted under the
// "security_audit" logger name for SIEM filtering.
func NewSecurityAuditor(logger *zap.Logger) *SecurityAuditor {
	return &SecurityAuditor{logger: logger.Named("security_audit")}
}

// LogUnsafeQuery records a rejected caller-supplied statement.
func (a *SecurityAuditor) LogUnsafeQuery(dialect models.Dialect, query, clientIP string) {
	a.emit(zap.WarnLevel, "unsafe query rejected", SecurityEvent{
		EventType: EventUnsafeQuery,
		Dialect:   string(dialect),
		ClientIP:  clientIP,
		Details:   map[string]string{"query": logging.SanitizeQuery(query)},
		Severity:  "warning",
	})
}

// LogUnsafeGeneratedQuery records a rejected model-produced statement.
// The statement itself is not logged at full length since model output
// is unbounded.
func (a *SecurityAuditor) LogUnsafeGeneratedQuery(dialect models.Dialect, provider models.Provider, clientIP string) {
	a.emit(zap.WarnLevel, "unsafe generated query rejected", SecurityEvent{
		EventType: EventUnsafeGeneratedQuery,
		Dialect:   string(dialect),
		ClientIP:  clientIP,
		Details:   map[string]string{"provider": string(provider)},
		Severity:  "warning",
	})
}

// InjectionDetails describes a flagged identifier.
type InjectionDetails struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Fingerprint string `json:"fingerprint,omitempty"` // libinjection fingerprint for pattern analysis
}

// LogInjectionAttempt records a flagged identifier at critical severity
// for immediate alerting.
func (a *SecurityAuditor) LogInjectionAttempt(dialect models.Dialect, details InjectionDetails, clientIP string) {
	a.emit(zap.ErrorLevel, "SQL injection attempt detected", SecurityEvent{
		EventType: EventInjectionAttempt,
		Dialect:   string(dialect),
		ClientIP:  clientIP,
		Details:   details,
		Severity:  "critical",
	})
}

func (a *SecurityAuditor) emit(level zapcore.Level, msg string, event SecurityEvent) {
	event.Timestamp = time.Now().UTC()
	event.EventID = uuid.New()

	// Marshaling known types does not fail
	eventJSON, _ := json.Marshal(event)

	fields := []zap.Field{
		zap.String("event_json", string(eventJSON)),
		zap.String("event_id", event.EventID.String()),
		zap.String("event_type", string(event.EventType)),
		zap.String("client_ip", event.ClientIP),
		zap.String("severity", event.Severity),
	}

	switch level {
	case zap.ErrorLevel:
		a.logger.Error(msg, fields...)
	default:
		a.logger.Warn(msg, fields...)
	}
}
