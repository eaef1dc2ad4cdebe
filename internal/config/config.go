package config

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vango-dev/domkit/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "domkit.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultSpecs is the default spec directory.
	DefaultSpecs = "specs"

	// DefaultOutput is the default render output directory.
	DefaultOutput = "dist"

	// DefaultMetricsPath is where the preview server exposes metrics.
	DefaultMetricsPath = "/metrics"

	// DefaultPollInterval is how often spec files are checked for changes.
	DefaultPollInterval = 500 * time.Millisecond
)

// Config represents the complete domkit.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Specs is the directory holding spec files.
	Specs string `json:"specs,omitempty"`

	// Output is the directory rendered pages are written to.
	Output string `json:"output,omitempty"`

	// Server contains preview server configuration.
	Server ServerConfig `json:"server"`

	// Render contains HTML output configuration.
	Render RenderConfig `json:"render"`

	// Publish contains S3 publishing configuration.
	Publish PublishConfig `json:"publish"`

	// Tables contains table building configuration.
	Tables TablesConfig `json:"tables"`

	// Log contains logging configuration.
	Log LogConfig `json:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains preview server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// LiveReload reloads open pages when a spec file changes.
	LiveReload bool `json:"liveReload"`

	// PollInterval is how often spec files are checked (e.g., "500ms").
	PollInterval string `json:"pollInterval,omitempty"`

	// MetricsPath is the Prometheus endpoint. "-" disables it.
	MetricsPath string `json:"metricsPath,omitempty"`
}

// RenderConfig contains HTML output settings.
type RenderConfig struct {
	// Pretty enables indented output.
	Pretty bool `json:"pretty,omitempty"`

	// Indent is the indentation string in pretty mode.
	Indent string `json:"indent,omitempty"`

	// Doctype is written as <!DOCTYPE ...> on full pages.
	Doctype string `json:"doctype,omitempty"`

	// Title is the default page title. Spec names are used when empty.
	Title string `json:"title,omitempty"`

	// EventMarkers writes data-on-<event> attributes for bound events.
	EventMarkers bool `json:"eventMarkers,omitempty"`

	// StyleSheets are linked from every rendered page.
	StyleSheets []string `json:"styleSheets,omitempty"`
}

// PublishConfig contains S3 publishing settings.
type PublishConfig struct {
	// Bucket is the destination bucket.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// Region is the bucket region. Falls back to AWS_REGION.
	Region string `json:"region,omitempty"`
}

// TablesConfig contains table building settings.
type TablesConfig struct {
	// StrictData rejects specs that carry both tableData and df.
	StrictData bool `json:"strictData,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Specs:  DefaultSpecs,
		Output: DefaultOutput,
		Server: ServerConfig{
			Host:         DefaultHost,
			Port:         DefaultPort,
			LiveReload:   true,
			PollInterval: DefaultPollInterval.String(),
			MetricsPath:  DefaultMetricsPath,
		},
		Render: RenderConfig{
			Indent:  "  ",
			Doctype: "html",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for domkit.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E121").
				WithDetail("No domkit.json found in " + filepath.Dir(path)).
				WithSuggestion("Create domkit.json or run commands with explicit flags")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse domkit.json: " + err.Error()).
			WithSuggestion("Check that domkit.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// LoadOrDefault loads domkit.json from dir, returning defaults rooted at
// dir when the file does not exist.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if err == nil {
		return cfg, nil
	}
	if de, ok := err.(*errors.DomError); ok && de.Code == "E121" {
		cfg = New()
		cfg.configPath = filepath.Join(dir, ConfigFileName)
		return cfg, nil
	}
	return nil, err
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Specs == "" {
		c.Specs = DefaultSpecs
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}

	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.PollInterval == "" {
		c.Server.PollInterval = DefaultPollInterval.String()
	}
	if c.Server.MetricsPath == "" {
		c.Server.MetricsPath = DefaultMetricsPath
	}

	if c.Render.Indent == "" {
		c.Render.Indent = "  "
	}
	if c.Render.Doctype == "" {
		c.Render.Doctype = "html"
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E122").
			WithDetail("Port must be between 0 and 65535")
	}
	if _, err := c.PollDuration(); err != nil {
		return errors.New("E120").
			WithDetail("Invalid server.pollInterval: " + err.Error()).
			WithSuggestion(`Use a Go duration such as "500ms" or "2s"`)
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return errors.New("E123").
			WithDetail("Unknown log level " + strconv.Quote(c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.New("E120").
			WithDetail("Unknown log format " + strconv.Quote(c.Log.Format)).
			WithSuggestion(`Use "text" or "json"`)
	}
	return nil
}

// Address returns the listen address for the preview server.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// URL returns the full URL for the preview server.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// PollDuration parses Server.PollInterval.
func (c *Config) PollDuration() (time.Duration, error) {
	if c.Server.PollInterval == "" {
		return DefaultPollInterval, nil
	}
	d, err := time.ParseDuration(c.Server.PollInterval)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, errors.Newf(errors.CategoryConfig, "poll interval must be positive, got %s", d)
	}
	return d, nil
}

// SpecsPath returns the absolute path to the spec directory.
func (c *Config) SpecsPath() string {
	return c.resolve(c.Specs, DefaultSpecs)
}

// OutputPath returns the absolute path to the render output directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.Output, DefaultOutput)
}

func (c *Config) resolve(path, fallback string) string {
	if path == "" {
		path = fallback
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// NewLogger builds a slog logger for the configured level and format.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.Log.Level)
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing domkit.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E121").
				WithDetail("No domkit.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}
