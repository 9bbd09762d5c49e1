package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "festa/pkg/domain-errors"
)

// TestParseUUID_Invariants validates the parsing invariant:
// "IDs must be valid, non-empty, non-nil UUIDs"
func TestParseUUID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseFormID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseFormID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseFormID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		validUUID := uuid.New()
		id, err := ParseFormID(validUUID.String())
		require.NoError(t, err)
		assert.Equal(t, FormID(validUUID), id)
	})
}

// TestTypeDistinction verifies the compiler enforces type safety.
// The following would fail to compile:
//
//	var _ ProjectID = FormID(uuid.New())
//	var _ CheckboxID = RadioButtonID(uuid.New())
func TestTypeDistinction(t *testing.T) {
	projectID := ProjectID(uuid.New())
	formID := FormID(uuid.New())
	assert.NotEqual(t, uuid.UUID(projectID), uuid.UUID(formID))
}

// TestParseID_TrustBoundary validates parsing rules applied to request input.
func TestParseID_TrustBoundary(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"SQL injection attempt", "'; DROP TABLE forms;--", true},
		{"Path traversal", "../../../etc/passwd", true},
		{"Null byte injection", "550e8400\x00-e29b-41d4-a716-446655440000", true},
		{"Oversized input", strings.Repeat("a", 1000), true},
		{"Unicode zero-width space", "550e8400\u200B-e29b-41d4-a716-446655440000", true},
		{"Empty string", "", true},
		{"Nil UUID", uuid.Nil.String(), true},
		{"Whitespace only", "   ", true},
		{"Uppercase valid UUID", "550E8400-E29B-41D4-A716-446655440000", false},
		{"Valid UUID lowercase", "550e8400-e29b-41d4-a716-446655440000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProjectID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestAllIDTypes_ConsistentBehavior ensures all ID types share the same parsing rules.
func TestAllIDTypes_ConsistentBehavior(t *testing.T) {
	parsers := map[string]func(string) error{
		"user":              func(s string) error { _, err := ParseUserID(s); return err },
		"project":           func(s string) error { _, err := ParseProjectID(s); return err },
		"pending project":   func(s string) error { _, err := ParsePendingProjectID(s); return err },
		"form":              func(s string) error { _, err := ParseFormID(s); return err },
		"form item":         func(s string) error { _, err := ParseFormItemID(s); return err },
		"registration form": func(s string) error { _, err := ParseRegistrationFormID(s); return err },
		"file sharing":      func(s string) error { _, err := ParseFileSharingID(s); return err },
		"checkbox":          func(s string) error { _, err := ParseCheckboxID(s); return err },
		"radio button":      func(s string) error { _, err := ParseRadioButtonID(s); return err },
		"grid radio row":    func(s string) error { _, err := ParseGridRadioRowID(s); return err },
		"grid radio column": func(s string) error { _, err := ParseGridRadioColumnID(s); return err },
	}

	valid := uuid.New().String()
	for name, parse := range parsers {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, parse(valid))
			for _, input := range []string{"", "invalid", uuid.Nil.String()} {
				require.Error(t, parse(input), "input %q", input)
			}
		})
	}
}

func TestIDTextEncoding(t *testing.T) {
	t.Run("round-trips through JSON as a string", func(t *testing.T) {
		id := ProjectID(uuid.New())
		raw, err := json.Marshal(id)
		require.NoError(t, err)
		assert.Equal(t, `"`+id.String()+`"`, string(raw))

		var decoded ProjectID
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, id, decoded)
	})

	t.Run("rejects nil UUID on decode", func(t *testing.T) {
		var decoded FormItemID
		err := json.Unmarshal([]byte(`"`+uuid.Nil.String()+`"`), &decoded)
		require.Error(t, err)
	})
}
