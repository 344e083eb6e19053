package llm

import (
	"testing"
	"time"
)

func TestConfigFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{
		"LEVELUP_LLM_PROVIDER", "LEVELUP_LLM_TIMEOUT",
		"LEVELUP_GEMINI_API_KEY", "GEMINI_API_KEY", "LEVELUP_GEMINI_MODEL",
		"LEVELUP_OPENAI_API_KEY", "OPENAI_API_KEY",
		"LEVELUP_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY",
	} {
		t.Setenv(k, "")
	}

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Fatalf("expected gemini default provider, got %q", cfg.Provider)
	}
	if cfg.Gemini.Model != "gemini-flash-lite" {
		t.Fatalf("expected gemini-flash-lite default model, got %q", cfg.Gemini.Model)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("expected 30s default timeout, got %s", cfg.Timeout)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Fatalf("expected 3 retry attempts, got %d", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_PrefixedKeysWin(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "bare")
	t.Setenv("LEVELUP_GEMINI_API_KEY", "prefixed")
	t.Setenv("LEVELUP_LLM_PROVIDER", "openai")
	t.Setenv("LEVELUP_LLM_TIMEOUT", "45s")

	cfg := ConfigFromEnv()
	if cfg.Gemini.APIKey != "prefixed" {
		t.Fatalf("expected prefixed key to win, got %q", cfg.Gemini.APIKey)
	}
	if cfg.Provider != "openai" {
		t.Fatalf("expected openai provider, got %q", cfg.Provider)
	}
	if cfg.Timeout != 45*time.Second {
		t.Fatalf("expected 45s timeout, got %s", cfg.Timeout)
	}
}

func TestConfigFromEnv_BareKeyFallback(t *testing.T) {
	t.Setenv("LEVELUP_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "bare")

	cfg := ConfigFromEnv()
	if cfg.Gemini.APIKey != "bare" {
		t.Fatalf("expected bare key fallback, got %q", cfg.Gemini.APIKey)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"gemini with key", func(c *Config) { c.Gemini.APIKey = "k" }, false},
		{"gemini without key", func(c *Config) {}, true},
		{"openai with key", func(c *Config) { c.Provider = "openai"; c.OpenAI.APIKey = "k" }, false},
		{"openai without key", func(c *Config) { c.Provider = "openai" }, true},
		{"anthropic with key", func(c *Config) { c.Provider = "anthropic"; c.Anthropic.APIKey = "k" }, false},
		{"mock needs no key", func(c *Config) { c.Provider = "mock" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "llama" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-flash-lite", "gemini-2.5-flash-lite"},
		{"gemini-2.5-flash-lite", "gemini-2.5-flash-lite"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
