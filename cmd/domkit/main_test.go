package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/domkit/internal/config"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeSpec(t *testing.T, dir, name, body string) {
	t.Helper()
	specs := filepath.Join(dir, config.DefaultSpecs)
	if err := os.MkdirAll(specs, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(specs, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestVersionShort(t *testing.T) {
	out, _, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if out != version+"\n" {
		t.Errorf("version --short = %q, want %q", out, version+"\n")
	}
}

func TestInitThenRender(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := execute(t, "init", "-C", dir, "--name", "demo"); err != nil {
		t.Fatalf("init error = %v", err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	if cfg.Name != "demo" {
		t.Errorf("Name = %q, want demo", cfg.Name)
	}

	if _, _, err := execute(t, "init", "-C", dir); err == nil {
		t.Error("second init without --force should fail")
	}

	out, _, err := execute(t, "render", "-C", dir, "--stdout")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "<title>index</title>", "<h1>Hello</h1>"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderWritesFiles(t *testing.T) {
	dir := t.TempDir()
	writeSpec(t, dir, "a.yaml", "tag: p\nspec:\n  innerHTML: first\n")
	writeSpec(t, dir, "b.json", `{"tag": "p", "spec": {"innerHTML": "second"}}`)
	outDir := filepath.Join(dir, "public")

	out, _, err := execute(t, "render", "-C", dir, "--out", outDir)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(out, "Rendered 2 page(s)") {
		t.Errorf("output = %q", out)
	}

	tests := []struct {
		file string
		want string
	}{
		{"a.html", "<p>first</p>"},
		{"b.html", "<p>second</p>"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(outDir, tt.file))
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("%s = %s, want %q", tt.file, data, tt.want)
			}
		})
	}
}

func TestRenderUnknownSpec(t *testing.T) {
	dir := t.TempDir()
	writeSpec(t, dir, "a.yaml", "tag: p\n")

	_, _, err := execute(t, "render", "-C", dir, "missing")
	if err == nil || !strings.Contains(err.Error(), "E140") {
		t.Errorf("render missing error = %v, want E140", err)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "render", "-C", t.TempDir(), "--log-level", "loud")
	if err == nil || !strings.Contains(err.Error(), "E123") {
		t.Errorf("error = %v, want E123", err)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		strict  bool
		wantErr bool
		want    string
	}{
		{"clean", "tag: p\nspec:\n  innerHTML: ok\n", false, false, "page"},
		{"unapplied key warns", "tag: p\nspec:\n  frobnicate: 1\n", false, false, "frobnicate"},
		{"unapplied key strict", "tag: p\nspec:\n  frobnicate: 1\n", true, true, "frobnicate"},
		{"missing parent", "tag: p\nspec:\n  parent: nowhere\n", false, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeSpec(t, dir, "page.yaml", tt.spec)

			args := []string{"check", "-C", dir}
			if tt.strict {
				args = append(args, "--strict")
			}
			out, _, err := execute(t, args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("check error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.want != "" && !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestPublishRequiresBucket(t *testing.T) {
	dir := t.TempDir()
	writeSpec(t, dir, "a.yaml", "tag: p\n")

	_, _, err := execute(t, "publish", "-C", dir)
	if err == nil || !strings.Contains(err.Error(), "E131") {
		t.Errorf("publish error = %v, want E131", err)
	}
}
