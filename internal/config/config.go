package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/mgpai22/srtmend/internal/subtitle"
)

// Config holds all application configuration
type Config struct {
	Parser ParserConfig `toml:"parser"`
	Output OutputConfig `toml:"output"`
	Names  NamesConfig  `toml:"names"`
}

type ParserConfig struct {
	// renumbering is skipped once a file reaches this many errors
	ErrorThreshold int `toml:"error_threshold"`
}

type OutputConfig struct {
	LineEnding string `toml:"line_ending"` // "lf" or "crlf"
	Suffix     string `toml:"suffix"`      // appended to the base name of repaired files
}

type NamesConfig struct {
	Folder string `toml:"folder"` // empty resolves next to the executable
}

func DefaultConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			ErrorThreshold: subtitle.DefaultErrorThreshold,
		},
		Output: OutputConfig{
			LineEnding: "lf",
			Suffix:     ".fixed",
		},
	}
}

// Load reads path, or the default location when path is empty, on top of
// the defaults. A missing default file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as TOML to path
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Parser.ErrorThreshold <= 0 {
		return fmt.Errorf(
			"parser.error_threshold must be positive, got %d",
			c.Parser.ErrorThreshold,
		)
	}
	if _, err := c.Output.Newline(); err != nil {
		return err
	}
	return nil
}

// Newline maps the configured line ending to its characters
func (o OutputConfig) Newline() (string, error) {
	switch o.LineEnding {
	case "", "lf":
		return subtitle.LineEndingLF, nil
	case "crlf":
		return subtitle.LineEndingCRLF, nil
	default:
		return "", fmt.Errorf(
			"invalid output.line_ending %q: use lf or crlf",
			o.LineEnding,
		)
	}
}

// DefaultPath is <user config dir>/srtmend/config.toml
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "srtmend", "config.toml")
}
