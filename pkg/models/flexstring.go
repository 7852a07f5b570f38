package models

import (
	"encoding/json"

	"github.com/sqlchat-io/sqlchat-engine/pkg/jsonutil"
)

// FlexString is a string that also accepts JSON numbers and booleans
// when decoding. Browser clients send dbPort as either "5432" or 5432.
type FlexString string

// UnmarshalJSON accepts strings, numbers, and booleans.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	*s = FlexString(jsonutil.FlexibleStringValue(json.RawMessage(data)))
	return nil
}

var _ json.Unmarshaler = (*FlexString)(nil)
