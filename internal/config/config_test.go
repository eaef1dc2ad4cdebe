package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/domkit/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, DefaultHost)
	}
	if !cfg.Server.LiveReload {
		t.Error("Server.LiveReload = false, want true")
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", cfg.Output, DefaultOutput)
	}
	if cfg.Tables.StrictData {
		t.Error("Tables.StrictData = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	de, ok := err.(*errors.DomError)
	if !ok || de.Code != "E121" {
		t.Fatalf("Load(missing) = %v, want E121", err)
	}

	configJSON := `{
  "name": "reports",
  "specs": "pages",
  "server": {
    "port": 8080,
    "host": "0.0.0.0",
    "liveReload": false
  },
  "render": {
    "pretty": true,
    "styleSheets": ["/a.css"]
  },
  "publish": {"bucket": "site", "prefix": "r/"},
  "tables": {"strictData": true},
  "log": {"level": "debug", "format": "json"}
}`
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(configJSON), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"name", cfg.Name, "reports"},
		{"port", cfg.Server.Port, 8080},
		{"host", cfg.Server.Host, "0.0.0.0"},
		{"liveReload", cfg.Server.LiveReload, false},
		{"metricsPath default", cfg.Server.MetricsPath, DefaultMetricsPath},
		{"pollInterval default", cfg.Server.PollInterval, "500ms"},
		{"pretty", cfg.Render.Pretty, true},
		{"indent default", cfg.Render.Indent, "  "},
		{"doctype default", cfg.Render.Doctype, "html"},
		{"bucket", cfg.Publish.Bucket, "site"},
		{"strictData", cfg.Tables.StrictData, true},
		{"log level", cfg.Log.Level, "debug"},
		{"output default", cfg.Output, DefaultOutput},
		{"specs path", cfg.SpecsPath(), filepath.Join(tmpDir, "pages")},
		{"output path", cfg.OutputPath(), filepath.Join(tmpDir, DefaultOutput)},
		{"path", cfg.Path(), filepath.Join(tmpDir, ConfigFileName)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte("{invalid"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(tmpDir)
	de, ok := err.(*errors.DomError)
	if !ok || de.Code != "E120" {
		t.Fatalf("Load() = %v, want E120", err)
	}
	if !strings.Contains(de.Detail, "Failed to parse domkit.json") {
		t.Errorf("Detail = %q", de.Detail)
	}
}

func TestLoadOrDefault(t *testing.T) {
	tmpDir := t.TempDir()
	cfg, err := LoadOrDefault(tmpDir)
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), tmpDir)
	}
	if cfg.SpecsPath() != filepath.Join(tmpDir, DefaultSpecs) {
		t.Errorf("SpecsPath() = %q", cfg.SpecsPath())
	}

	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte("nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrDefault(tmpDir); err == nil {
		t.Error("LoadOrDefault() with broken file error = nil")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFileName)

	cfg := New()
	if err := cfg.Save(); err == nil {
		t.Error("Save() without path error = nil")
	}

	cfg.Name = "saved"
	cfg.Server.LiveReload = false
	cfg.Publish.Region = "eu-west-1"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if loaded.Name != "saved" || loaded.Server.LiveReload || loaded.Publish.Region != "eu-west-1" {
		t.Errorf("loaded = %+v", loaded)
	}

	loaded.Name = "again"
	if err := loaded.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if !bytes.HasSuffix(data, []byte("}\n")) || !bytes.Contains(data, []byte(`"again"`)) {
		t.Errorf("saved file = %s", data)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		code   string
	}{
		{"defaults", func(*Config) {}, ""},
		{"negative port", func(c *Config) { c.Server.Port = -1 }, "E122"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "E122"},
		{"bad poll interval", func(c *Config) { c.Server.PollInterval = "soon" }, "E120"},
		{"zero poll interval", func(c *Config) { c.Server.PollInterval = "0s" }, "E120"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "E123"},
		{"warning level", func(c *Config) { c.Log.Level = "WARNING" }, ""},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "E120"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.code == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			de, ok := err.(*errors.DomError)
			if !ok || de.Code != tt.code {
				t.Errorf("Validate() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestAddressAndPoll(t *testing.T) {
	cfg := New()
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 9000
	if got := cfg.Address(); got != "0.0.0.0:9000" {
		t.Errorf("Address() = %q", got)
	}
	if got := cfg.URL(); got != "http://0.0.0.0:9000" {
		t.Errorf("URL() = %q", got)
	}

	cfg.Server.PollInterval = "2s"
	if d, err := cfg.PollDuration(); err != nil || d != 2*time.Second {
		t.Errorf("PollDuration() = %v, %v", d, err)
	}
	cfg.Server.PollInterval = ""
	if d, _ := cfg.PollDuration(); d != DefaultPollInterval {
		t.Errorf("PollDuration() default = %v", d)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := New()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	logger := cfg.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"k":"v"`) {
		t.Errorf("json output = %s", out)
	}

	buf.Reset()
	cfg.Log.Format = "text"
	cfg.NewLogger(&buf).Warn("plain")
	if !strings.Contains(buf.String(), "msg=plain") {
		t.Errorf("text output = %s", buf.String())
	}
}

func TestFindProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if _, err := FindProjectRoot(nested); err == nil {
		t.Error("FindProjectRoot() without config error = nil")
	}

	if err := New().SaveTo(filepath.Join(tmpDir, ConfigFileName)); err != nil {
		t.Fatal(err)
	}
	root, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot() error = %v", err)
	}
	if root != tmpDir {
		t.Errorf("root = %q, want %q", root, tmpDir)
	}
	if !Exists(tmpDir) || Exists(nested) {
		t.Error("Exists() mismatch")
	}
}
