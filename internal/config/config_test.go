package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %q, want %q", cfg.ListenPort, ":8080")
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.ImportFile != "" {
		t.Errorf("ImportFile = %q, want empty (import disabled)", cfg.ImportFile)
	}
	if cfg.ImportInterval != 24*time.Hour {
		t.Errorf("ImportInterval = %v, want 24h", cfg.ImportInterval)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q, want %q", cfg.RedisAddr, "localhost:6379")
	}
	if cfg.WriteBurst != 20 || cfg.WritePerMinute != 60 {
		t.Errorf("write limits = (%d, %d), want (20, 60)", cfg.WriteBurst, cfg.WritePerMinute)
	}
	if cfg.CORSOrigins != nil {
		t.Errorf("CORSOrigins = %v, want nil", cfg.CORSOrigins)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("READSTER_LISTEN_PORT", ":9090")
	t.Setenv("READSTER_LOG_LEVEL", "debug")
	t.Setenv("READSTER_IMPORT_FILE", "/data/list.yaml")
	t.Setenv("READSTER_IMPORT_INTERVAL", "1h")
	t.Setenv("READSTER_REDIS_DB", "2")
	t.Setenv("READSTER_TRUST_PROXY", "true")
	t.Setenv("READSTER_CORS_ORIGINS", `chrome-extension://abc, "https://readster.local" `)

	cfg := Load()

	if cfg.ListenPort != ":9090" {
		t.Errorf("ListenPort = %q, want %q", cfg.ListenPort, ":9090")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.ImportFile != "/data/list.yaml" {
		t.Errorf("ImportFile = %q", cfg.ImportFile)
	}
	if cfg.ImportInterval != time.Hour {
		t.Errorf("ImportInterval = %v, want 1h", cfg.ImportInterval)
	}
	if cfg.RedisDB != 2 {
		t.Errorf("RedisDB = %d, want 2", cfg.RedisDB)
	}
	if !cfg.TrustProxy {
		t.Error("TrustProxy = false, want true")
	}
	want := []string{"chrome-extension://abc", "https://readster.local"}
	if !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.CORSOrigins, want)
	}
}

func TestLoadPanicsOnNonPositiveImportInterval(t *testing.T) {
	t.Setenv("READSTER_IMPORT_INTERVAL", "0s")

	defer func() {
		if recover() == nil {
			t.Fatal("Load() expected panic for zero import interval")
		}
	}()
	Load()
}

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      int
		expected int
	}{
		{name: "unset uses default", value: "", def: 7, expected: 7},
		{name: "valid integer", value: "42", def: 7, expected: 42},
		{name: "garbage falls back", value: "not-a-number", def: 7, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("TEST_INT_KEY", tt.value)
			}
			got := getenvInt("TEST_INT_KEY", tt.def)
			if got != tt.expected {
				t.Errorf("getenvInt(%q) = %d, want %d", tt.value, got, tt.expected)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{name: "unset uses default", value: "", def: time.Second, expected: time.Second},
		{name: "valid duration", value: "250ms", def: time.Second, expected: 250 * time.Millisecond},
		{name: "garbage falls back", value: "soon", def: time.Second, expected: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("TEST_DUR_KEY", tt.value)
			}
			got := mustDuration("TEST_DUR_KEY", tt.def)
			if got != tt.expected {
				t.Errorf("mustDuration(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "single", input: "a", expected: []string{"a"}},
		{name: "spaces and quotes stripped", input: ` a , "b" , 'c' `, expected: []string{"a", "b", "c"}},
		{name: "empty parts dropped", input: "a,,b,", expected: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitAndTrim(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("splitAndTrim(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
