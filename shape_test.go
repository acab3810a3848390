package envcast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateShape(t *testing.T) {
	testCases := []struct {
		name        string
		parsed      any
		def         any
		expectedErr string
	}{
		{
			name:   "flat match",
			parsed: map[string]any{"host": "localhost", "port": float64(5432)},
			def:    map[string]any{"host": "", "port": 0},
		},
		{
			name:   "extra parsed properties ignored",
			parsed: map[string]any{"host": "h", "port": float64(1), "pool": float64(10)},
			def:    map[string]any{"host": "", "port": 0},
		},
		{
			name:        "missing top-level property",
			parsed:      map[string]any{"host": "h"},
			def:         map[string]any{"host": "", "port": 0},
			expectedErr: "Missing required property KEY.port",
		},
		{
			name: "missing nested property",
			parsed: map[string]any{
				"db": map[string]any{"host": "h"},
			},
			def: map[string]any{
				"db": map[string]any{"host": "", "port": 0},
			},
			expectedErr: "Missing required property KEY.db.port",
		},
		{
			name: "nested type mismatch carries dotted path",
			parsed: map[string]any{
				"db": map[string]any{"host": "h", "port": "5432"},
			},
			def: map[string]any{
				"db": map[string]any{"host": "", "port": 0},
			},
			expectedErr: "Invalid type for KEY.db.port: expected number, got string",
		},
		{
			name:        "scalar where object expected",
			parsed:      map[string]any{"db": "sqlite"},
			def:         map[string]any{"db": map[string]any{"host": ""}},
			expectedErr: "Invalid type for KEY.db: expected object, got string",
		},
		{
			name:        "root is not an object",
			parsed:      float64(42),
			def:         map[string]any{"host": ""},
			expectedErr: "Invalid type for KEY: expected object, got number",
		},
		{
			name:   "null parsed value passes an object default",
			parsed: map[string]any{"db": nil},
			def:    map[string]any{"db": map[string]any{"host": ""}},
		},
		{
			name:   "array default checked by tag only",
			parsed: map[string]any{"list": map[string]any{"x": float64(1)}},
			def:    map[string]any{"list": []any{"a"}},
		},
		{
			name:        "boolean mismatch",
			parsed:      map[string]any{"debug": "true"},
			def:         map[string]any{"debug": false},
			expectedErr: "Invalid type for KEY.debug: expected boolean, got string",
		},
		{
			name: "first error picks sorted property order",
			parsed: map[string]any{
				"c": float64(1),
			},
			def: map[string]any{
				"a": 0,
				"b": 0,
				"c": 0,
			},
			expectedErr: "Missing required property KEY.a",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateShape("KEY", tc.parsed, tc.def, "")

			if tc.expectedErr == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tc.expectedErr, err.Error())
		})
	}
}

func TestTypeTag(t *testing.T) {
	testCases := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "string", value: "s", expected: "string"},
		{name: "bool", value: true, expected: "boolean"},
		{name: "float64", value: float64(1), expected: "number"},
		{name: "int default", value: 1, expected: "number"},
		{name: "object", value: map[string]any{}, expected: "object"},
		{name: "array tags as object", value: []any{}, expected: "object"},
		{name: "null tags as object", value: nil, expected: "object"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, typeTag(tc.value))
		})
	}
}
