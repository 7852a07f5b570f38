package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/sqlchat-io/sqlchat-engine/pkg/apperrors"
)

func TestDialectValidate(t *testing.T) {
	tests := []struct {
		dialect Dialect
		wantErr error
	}{
		{DialectPostgres, nil},
		{DialectMySQL, nil},
		{"oracle", apperrors.ErrUnsupportedDialect},
		{"POSTGRESQL", apperrors.ErrUnsupportedDialect},
		{"", apperrors.ErrUnsupportedDialect},
	}

	for _, tt := range tests {
		t.Run(string(tt.dialect), func(t *testing.T) {
			err := tt.dialect.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate(%q) = %v, want nil", tt.dialect, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate(%q) = %v, want %v", tt.dialect, err, tt.wantErr)
			}
		})
	}
}

func TestProviderValidate(t *testing.T) {
	tests := []struct {
		provider Provider
		wantErr  error
	}{
		{ProviderOpenAI, nil},
		{ProviderGemini, nil},
		{"anthropic", apperrors.ErrUnsupportedProvider},
		{"Gemini", apperrors.ErrUnsupportedProvider},
		{"", apperrors.ErrUnsupportedProvider},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			err := tt.provider.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate(%q) = %v, want nil", tt.provider, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate(%q) = %v, want %v", tt.provider, err, tt.wantErr)
			}
		})
	}
}

func TestQueryRequestDecode(t *testing.T) {
	body := `{
		"aiProvider": "openai",
		"apiKey": "sk-test",
		"dbType": "postgresql",
		"dbHost": "localhost",
		"dbPort": "5432",
		"dbName": "appdb",
		"dbUser": "reader",
		"dbPassword": "secret",
		"query": "How many users?",
		"schema": "Table: users"
	}`

	var req QueryRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if req.Provider != ProviderOpenAI || req.APIKey != "sk-test" {
		t.Errorf("credential not decoded: %+v", req.AICredential)
	}
	if req.Dialect != DialectPostgres || req.Host != "localhost" || req.Port != "5432" {
		t.Errorf("descriptor not decoded: %+v", req.ConnectionDescriptor)
	}
	if req.Query != "How many users?" || req.Schema != "Table: users" {
		t.Errorf("query fields not decoded: %+v", req)
	}
}

func TestQueryRequestDecode_NumericPort(t *testing.T) {
	body := `{"dbType": "mysql", "dbPort": 3306, "query": "SELECT 1"}`

	var req QueryRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if req.Port != "3306" {
		t.Errorf("expected numeric port coerced to string, got %q", req.Port)
	}
}
