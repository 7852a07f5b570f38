package sql

import "testing"

func TestCheckIdentifier_CleanValues(t *testing.T) {
	clean := []string{
		"appdb",
		"shop_production",
		"Analytics2024",
	}

	for _, value := range clean {
		if result := CheckIdentifier("dbName", value); result != nil {
			t.Errorf("expected %q to pass, got fingerprint %q", value, result.Fingerprint)
		}
	}
}

func TestCheckIdentifier_InjectionAttempts(t *testing.T) {
	hostile := []string{
		"x' OR '1'='1",
		"db'; DROP TABLE users--",
		"a' UNION SELECT password FROM users--",
	}

	for _, value := range hostile {
		result := CheckIdentifier("dbName", value)
		if result == nil {
			t.Errorf("expected %q to be flagged", value)
			continue
		}
		if result.Name != "dbName" {
			t.Errorf("expected field name dbName, got %q", result.Name)
		}
		if result.Value != value {
			t.Errorf("expected value %q, got %q", value, result.Value)
		}
		if result.Fingerprint == "" {
			t.Errorf("expected non-empty fingerprint for %q", value)
		}
	}
}
