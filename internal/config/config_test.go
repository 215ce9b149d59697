package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load("", env(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.Addr() != ":3000" || cfg.Production() {
		t.Fatalf("addr=%s production=%v", cfg.Addr(), cfg.Production())
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, `
port = 8080
mode = "test"
request_timeout = "10s"
read_header_timeout = "250ms"
max_body_bytes = 2048
`)

	cfg, err := load(path, env(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 8080 || cfg.Mode != ModeTest || cfg.RequestTimeout != 10*time.Second || cfg.MaxBodyBytes != 2048 {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.ReadHeaderTimeout != 250*time.Millisecond {
		t.Fatalf("read_header_timeout=%s", cfg.ReadHeaderTimeout)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("unset field lost its default: %+v", cfg)
	}

	cfg, err = load(path, env(map[string]string{"PORT": "9090", "APP_ENV": "production"}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 9090 || !cfg.Production() {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		path string
		env  map[string]string
	}{
		{name: "bad port", env: map[string]string{"PORT": "abc"}},
		{name: "port out of range", env: map[string]string{"PORT": "70000"}},
		{name: "unknown mode", env: map[string]string{"APP_ENV": "staging"}},
		{name: "missing file", path: filepath.Join(t.TempDir(), "nope.toml")},
		{name: "bad duration", path: writeFile(t, `shutdown_timeout = "soon"`)},
		{name: "negative timeout", path: writeFile(t, `request_timeout = "-1s"`)},
		{name: "negative body limit", path: writeFile(t, `max_body_bytes = -1`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := load(tc.path, env(tc.env)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
