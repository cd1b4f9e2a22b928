package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidate tests the behavior of Validate.
//
// It verifies:
//   - A zero config is valid
//   - Blank list entries are reported with their index
//   - Invalid env keys are reported
func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(&Config{}))

	err := Validate(&Config{
		Targets:     []string{"pip", " "},
		InstallArgs: []string{""},
		Exclude:     []string{"ok"},
		Env:         map[string]string{"A=B": "x"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "targets[1]: must not be empty")
	assert.Contains(t, err.Error(), "install_args[0]: must not be empty")
	assert.Contains(t, err.Error(), `env: invalid variable name "A=B"`)
	assert.NotContains(t, err.Error(), "exclude")

	var ve ValidationError
	assert.True(t, errors.As(err, &ve))
}

// TestNormalizeName tests PEP 503 name normalization.
func TestNormalizeName(t *testing.T) {
	tests := map[string]string{
		"requests":          "requests",
		"Django":            "django",
		"zope.interface":    "zope-interface",
		"typing_extensions": "typing-extensions",
		"Foo__Bar-.baz":     "foo-bar-baz",
		"  padded ":         "padded",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeName(in), in)
	}
}

// TestIsExcluded tests the behavior of Config.IsExcluded.
//
// It verifies:
//   - Matching is case- and separator-insensitive
//   - A nil config excludes nothing
func TestIsExcluded(t *testing.T) {
	cfg := &Config{Exclude: []string{"Typing_Extensions", "pip"}}

	assert.True(t, cfg.IsExcluded("typing-extensions"))
	assert.True(t, cfg.IsExcluded("PIP"))
	assert.False(t, cfg.IsExcluded("requests"))

	var nilCfg *Config
	assert.False(t, nilCfg.IsExcluded("pip"))
}
