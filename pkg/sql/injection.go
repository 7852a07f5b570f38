package sql

import (
	libinjection "github.com/corazawaf/libinjection-go"
)

// IdentifierCheckResult describes an injection pattern detected in a
// caller-controlled identifier.
type IdentifierCheckResult struct {
	Fingerprint string // libinjection fingerprint of the detected pattern
	Name        string // logical name of the checked field
	Value       string // the value that was checked
}

// CheckIdentifier screens a caller-controlled identifier for SQL
// injection fingerprints using libinjection. The MySQL catalog query
// filters information_schema by the target database name, so that name is
// screened here in addition to being bound as a query parameter.
//
// Returns nil when no injection pattern is detected.
func CheckIdentifier(name, value string) *IdentifierCheckResult {
	isSQLi, fingerprint := libinjection.IsSQLi(value)
	if !isSQLi {
		return nil
	}
	return &IdentifierCheckResult{
		Fingerprint: string(fingerprint),
		Name:        name,
		Value:       value,
	}
}
