package config

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/Fabio3rs/init-my-cpp-proj/internal/logger"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// DefaultCommitMessage is used for the initial commit when the config sets none.
const DefaultCommitMessage = "Initial commit"

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		CXXStandard: DefaultStandard,
		ProjectType: TypeExecutable,
		Git:         GitConfig{Message: DefaultCommitMessage},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/init-cpp-proj/config.yaml (or the platform equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "init-cpp-proj", "config.yaml")
}

// LoadConfig reads the YAML defaults file at path and merges it over Default().
// A missing file is not an error: the generator works without any config.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("No config file at %s, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Errorf("reading config %s: %w", path, err)
	}

	// KnownFields catches typos like "cxx_standad" instead of silently ignoring them
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, errors.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.CXXStandard == 0 {
		cfg.CXXStandard = DefaultStandard
	}
	if cfg.ProjectType == "" {
		cfg.ProjectType = TypeExecutable
	}
	if cfg.Git.Message == "" {
		cfg.Git.Message = DefaultCommitMessage
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Errorf("invalid config %s: %w", path, err)
	}

	logger.Debug("Loaded config from %s", path)
	return cfg, nil
}

// Validate checks the values a config file can get wrong.
func (c Config) Validate() error {
	if err := ValidateStandard(c.CXXStandard); err != nil {
		return err
	}
	if err := ValidateProjectType(c.ProjectType); err != nil {
		return err
	}
	return nil
}

// ValidateStandard rejects C++ standards CMake does not know.
func ValidateStandard(std int) error {
	if !slices.Contains(SupportedStandards, std) {
		return errors.Errorf("unsupported C++ standard %d (want one of %v)", std, SupportedStandards)
	}
	return nil
}

// ValidateProjectType accepts "executable" or "library".
func ValidateProjectType(t string) error {
	switch t {
	case TypeExecutable, TypeLibrary:
		return nil
	}
	return errors.Errorf("unknown project type %q (want %q or %q)", t, TypeExecutable, TypeLibrary)
}
