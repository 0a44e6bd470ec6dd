package shared

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Report formats understood by the formatter package.
const (
	FormatHTML     = "html"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
	FormatText     = "text"
)

// Formats lists every supported report format.
var Formats = []string{FormatHTML, FormatCSV, FormatMarkdown, FormatText}

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Extract ExtractConfig `toml:"extract"`
	Report  ReportConfig  `toml:"report"`
	Log     LogConfig     `toml:"log"`
}

// ExtractConfig controls how tagged addresses are recognized in input lines.
type ExtractConfig struct {
	Marker     string `toml:"marker"`
	AllowSpace bool   `toml:"allow_space"`
	FoldCase   bool   `toml:"fold_case"`
}

// ReportConfig controls where and how the comparison report is written.
type ReportConfig struct {
	OutputDir string `toml:"output_dir"`
	Format    string `toml:"format"`
	Prefix    string `toml:"prefix"`
	Title     string `toml:"title"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep the values from [DefaultConfig].
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingConfig, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Extract.Marker == "" {
		return fmt.Errorf("%w: extract.marker must not be empty", ErrInvalidConfig)
	}
	if !IsFormat(c.Report.Format) {
		return fmt.Errorf("%w: report.format %q (must be one of %s)", ErrInvalidConfig, c.Report.Format, strings.Join(Formats, ", "))
	}
	if c.Report.Prefix == "" {
		return fmt.Errorf("%w: report.prefix must not be empty", ErrInvalidConfig)
	}
	if c.Log.Level != "" {
		if _, err := ParseLogLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
		}
	}
	return nil
}

// IsFormat reports whether name is a supported report format.
func IsFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
