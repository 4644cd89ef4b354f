// Package config builds the immutable run configuration shared by every tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/tbx/internal/presentation/report"
	"github.com/aretw0/tbx/internal/presentation/tui"
	"github.com/aretw0/tbx/pkg/textenc"
)

// DefaultFile is the configuration file picked up from the working directory.
const DefaultFile = ".tbx.yaml"

// Config is the run configuration. It is built once by the CLI and then only read.
type Config struct {
	Encoding string `yaml:"encoding" mapstructure:"encoding"`
	Format   string `yaml:"format" mapstructure:"format"`
	Color    string `yaml:"color" mapstructure:"color"`
	Quiet    bool   `yaml:"quiet" mapstructure:"quiet"`
	Metrics  bool   `yaml:"metrics" mapstructure:"metrics"`
	Debug    bool   `yaml:"debug" mapstructure:"debug"`
	Glob     bool   `yaml:"glob" mapstructure:"glob"`

	// Set from positional arguments only.
	Tier  string   `yaml:"-" mapstructure:"-"`
	Files []string `yaml:"-" mapstructure:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Encoding: textenc.DefaultName,
		Format:   string(report.FormatTSV),
		Color:    tui.ColorAuto,
		// Windows shells hand wildcards over unexpanded.
		Glob: runtime.GOOS == "windows",
	}
}

// Load overlays the YAML file at path on base. A missing file is not an error
// unless required is set (the user named it explicitly).
func Load(path string, required bool, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return base, nil
		}
		return base, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return base, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	cfg := base
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return base, err
	}
	if err := decoder.Decode(raw); err != nil {
		return base, fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}
	switch c.Color {
	case tui.ColorAuto, tui.ColorAlways, tui.ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", c.Color)
	}
	if _, err := textenc.Lookup(c.Encoding); err != nil {
		return err
	}
	return nil
}

var encodingArg = regexp.MustCompile(`^encoding=(\S+)$`)

// WithArgs splits the positional arguments of a tool: an optional leading
// "encoding=ENC", the tier name when needsTier is set, then the files.
//
// "encoding=ENC" is only taken as an option when enough arguments remain after it,
// so "types encoding=x file" still counts tier "encoding=x". It reports false when
// there are not enough arguments.
func (c Config) WithArgs(args []string, needsTier bool) (Config, bool) {
	min := 1
	if needsTier {
		min = 2
	}
	if len(args) < min {
		return c, false
	}

	if len(args) > min {
		if m := encodingArg.FindStringSubmatch(args[0]); m != nil {
			c.Encoding = m[1]
			args = args[1:]
		}
	}

	if needsTier {
		c.Tier = args[0]
		args = args[1:]
	}
	c.Files = append([]string(nil), args...)
	return c, true
}

// ExpandGlobs replaces every pattern in Files by its matches, sorted.
// Patterns without matches are dropped; plain paths are kept even if they do not exist.
func (c Config) ExpandGlobs() (Config, error) {
	var files []string
	for _, pattern := range c.Files {
		if !hasMeta(pattern) {
			files = append(files, pattern)
			continue
		}
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return c, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}
	c.Files = files
	return c, nil
}

func hasMeta(path string) bool {
	for i := 0; i < len(path); i++ {
		switch path[i] {
		case '*', '?', '[':
			return true
		}
	}
	return false
}
