package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownKeysMatchDefaults(t *testing.T) {
	t.Parallel()

	defaults := GetDefaults()
	require.Equal(t, len(defaults), len(KnownKeys))

	for key, schema := range KnownKeys {
		def, ok := defaults[key]
		require.True(t, ok, "key %s missing from GetDefaults", key)
		assert.Equal(t, key, schema.Path)
		assert.Equal(t, def, schema.Default, "default mismatch for %s", key)
	}
}

func TestGetKeySchema(t *testing.T) {
	t.Parallel()

	schema, err := GetKeySchema("sort")
	require.NoError(t, err)
	assert.Equal(t, TypeEnum, schema.Type)
	assert.Equal(t, []string{"document", "semver"}, schema.AllowedValues)

	_, err = GetKeySchema("nope")
	require.Error(t, err)
	var unknown ErrUnknownKey
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "nope", unknown.Key)
}

func TestValidateValue(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		key        string
		value      string
		wantParsed interface{}
		wantErr    string
	}{
		"bool true": {
			key:        "plain",
			value:      "true",
			wantParsed: true,
		},
		"bool mixed case": {
			key:        "require_dates",
			value:      "False",
			wantParsed: false,
		},
		"bool invalid": {
			key:     "plain",
			value:   "yes",
			wantErr: "invalid boolean",
		},
		"enum valid": {
			key:        "sort",
			value:      "semver",
			wantParsed: "semver",
		},
		"enum invalid": {
			key:     "sort",
			value:   "version",
			wantErr: "valid options: document, semver",
		},
		"duration valid": {
			key:        "watch_interval",
			value:      "2s",
			wantParsed: "2s",
		},
		"duration invalid": {
			key:     "watch_interval",
			value:   "fast",
			wantErr: "invalid duration",
		},
		"duration negative": {
			key:     "watch_interval",
			value:   "-5s",
			wantErr: "must be positive",
		},
		"string passthrough": {
			key:        "changelog",
			value:      "docs/CHANGELOG.md",
			wantParsed: "docs/CHANGELOG.md",
		},
		"unknown key": {
			key:     "verbosity",
			value:   "high",
			wantErr: "unknown configuration key",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := ValidateValue(tt.key, tt.value)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantParsed, got.Parsed)
			assert.Equal(t, tt.value, got.Raw)
		})
	}
}

func TestConfigValueTypeString(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		typ  ConfigValueType
		want string
	}{
		"bool":     {typ: TypeBool, want: "bool"},
		"duration": {typ: TypeDuration, want: "duration"},
		"string":   {typ: TypeString, want: "string"},
		"enum":     {typ: TypeEnum, want: "enum"},
		"unknown":  {typ: ConfigValueType(99), want: "unknown"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}
