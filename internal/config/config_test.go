package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	if cfg.Model != "gpt-4" {
		t.Errorf("Model = %q, want gpt-4", cfg.Model)
	}
	if cfg.MaxTokens != 3000 {
		t.Errorf("MaxTokens = %d, want 3000", cfg.MaxTokens)
	}
	if cfg.Temperature != 0.4 {
		t.Errorf("Temperature = %v, want 0.4", cfg.Temperature)
	}
	if cfg.TopP != 0.9 {
		t.Errorf("TopP = %v, want 0.9", cfg.TopP)
	}
	if cfg.Format != "markdown" {
		t.Errorf("Format = %q, want markdown", cfg.Format)
	}
	if !cfg.Privacy.RedactSecrets {
		t.Error("RedactSecrets should default to true")
	}
	if cfg.Cache.Enabled {
		t.Error("Cache should default to disabled")
	}
}

func TestLoad_FileMerge(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	fileCfg := map[string]any{
		"provider":  "anthropic",
		"model":     "claude-sonnet-4-20250514",
		"maxTokens": 2000,
	}
	data, _ := json.Marshal(fileCfg)
	cfgDir := filepath.Join(dir, "empath")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.json"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("Provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.MaxTokens != 2000 {
		t.Errorf("MaxTokens = %d, want 2000", cfg.MaxTokens)
	}
	// Unset file fields keep defaults.
	if cfg.Temperature != 0.4 {
		t.Errorf("Temperature = %v, want default 0.4", cfg.Temperature)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("EMPATH_PROVIDER", "ollama")
	t.Setenv("EMPATH_MODEL", "llama3.3")
	t.Setenv("EMPATH_MAX_TOKENS", "1500")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Provider != "ollama" {
		t.Errorf("Provider = %q, want ollama", cfg.Provider)
	}
	if cfg.Model != "llama3.3" {
		t.Errorf("Model = %q, want llama3.3", cfg.Model)
	}
	if cfg.MaxTokens != 1500 {
		t.Errorf("MaxTokens = %d, want 1500", cfg.MaxTokens)
	}
}

func TestLoad_OverridesWinOverEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("EMPATH_PROVIDER", "ollama")

	cfg, err := Load(map[string]string{"provider": "openai"})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai (flag override)", cfg.Provider)
	}
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want default openai", cfg.Provider)
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Provider = "anthropic"
	cfg.ToneFile = "/tmp/tone.yaml"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if loaded.Provider != "anthropic" {
		t.Errorf("Provider = %q, want anthropic", loaded.Provider)
	}
	if loaded.ToneFile != "/tmp/tone.yaml" {
		t.Errorf("ToneFile = %q, want /tmp/tone.yaml", loaded.ToneFile)
	}
}

func TestSetField(t *testing.T) {
	cfg := Default()

	if err := SetField(&cfg, "provider", "anthropic"); err != nil {
		t.Errorf("SetField(provider): %v", err)
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("Provider = %q", cfg.Provider)
	}

	if err := SetField(&cfg, "maxTokens", "4096"); err != nil {
		t.Errorf("SetField(maxTokens): %v", err)
	}
	if cfg.MaxTokens != 4096 {
		t.Errorf("MaxTokens = %d", cfg.MaxTokens)
	}

	if err := SetField(&cfg, "temperature", "0.7"); err != nil {
		t.Errorf("SetField(temperature): %v", err)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("Temperature = %v", cfg.Temperature)
	}

	if err := SetField(&cfg, "maxTokens", "not-a-number"); err == nil {
		t.Error("SetField(maxTokens, not-a-number) should fail")
	}
	if err := SetField(&cfg, "bogus", "x"); err == nil {
		t.Error("SetField(bogus) should fail")
	}
}
