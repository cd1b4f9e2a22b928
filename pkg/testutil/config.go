package testutil

import (
	"github.com/ajxudir/pipupgrade/pkg/config"
)

// ConfigBuilder provides a fluent API for building test configurations.
type ConfigBuilder struct {
	cfg config.Config
}

// NewConfig creates a new ConfigBuilder with an empty configuration.
func NewConfig() *ConfigBuilder {
	return &ConfigBuilder{}
}

// WithTargets sets the default targets.
func (b *ConfigBuilder) WithTargets(targets ...string) *ConfigBuilder {
	b.cfg.Targets = targets
	return b
}

// WithExclude sets the excluded package names.
func (b *ConfigBuilder) WithExclude(names ...string) *ConfigBuilder {
	b.cfg.Exclude = names
	return b
}

// WithInstallArgs sets the extra install arguments.
func (b *ConfigBuilder) WithInstallArgs(args ...string) *ConfigBuilder {
	b.cfg.InstallArgs = args
	return b
}

// WithEnv adds one environment variable for child processes.
func (b *ConfigBuilder) WithEnv(key, value string) *ConfigBuilder {
	if b.cfg.Env == nil {
		b.cfg.Env = make(map[string]string)
	}
	b.cfg.Env[key] = value
	return b
}

// Build returns the built configuration.
func (b *ConfigBuilder) Build() *config.Config {
	cfg := b.cfg
	return &cfg
}
