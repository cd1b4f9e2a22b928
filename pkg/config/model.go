// Package config loads the optional pipupgrade YAML configuration.
//
// The file is looked up as .pipupgrade.yml in the working directory unless a
// path is given explicitly:
//
//	targets:
//	  - pip
//	  - /opt/venv/bin/pip
//	env:
//	  PIP_INDEX_URL: https://pypi.example.com/simple
//	install_args: ["--user"]
//	exclude: ["setuptools"]
package config

import (
	"regexp"
	"strings"
)

// DefaultConfigFile is the file name looked up in the working directory.
const DefaultConfigFile = ".pipupgrade.yml"

// DefaultMaxConfigFileSize is the maximum accepted config file size (1MB).
const DefaultMaxConfigFileSize = 1024 * 1024

// Config is the root configuration structure.
type Config struct {
	// Targets are used when no executable references are given on the command line.
	Targets []string `yaml:"targets,omitempty"`

	// Env is added to the environment of every child process.
	Env map[string]string `yaml:"env,omitempty"`

	// InstallArgs are inserted after "install -U" in the upgrade command.
	InstallArgs []string `yaml:"install_args,omitempty"`

	// Exclude lists package names that are never upgraded.
	Exclude []string `yaml:"exclude,omitempty"`

	// Path is the file the config was loaded from; empty for the built-in default.
	Path string `yaml:"-"`
}

var separatorRun = regexp.MustCompile(`[-_.]+`)

// NormalizeName returns the PEP 503 normalized form of a package name.
//
// Parameters:
//   - name: Package name as printed by pip or written in the config
//
// Returns:
//   - string: Lowercase name with runs of "-", "_" and "." collapsed to "-"
func NormalizeName(name string) string {
	return separatorRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

// IsExcluded reports whether name matches an Exclude entry after normalization.
func (c *Config) IsExcluded(name string) bool {
	if c == nil {
		return false
	}
	normalized := NormalizeName(name)
	for _, ex := range c.Exclude {
		if NormalizeName(ex) == normalized {
			return true
		}
	}
	return false
}
