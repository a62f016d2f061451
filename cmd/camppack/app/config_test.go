package app

import (
	"testing"
)

// TestUpdateFromFlags verifies flag values take precedence over
// previously loaded config values.
func TestUpdateFromFlags(t *testing.T) {
	config := &Config{
		Format:   "table",
		LogLevel: "info",
	}

	config.UpdateFromFlags(true, false, true, "json", "debug")

	if !config.Verbose {
		t.Error("Verbose not updated from flags")
	}
	if config.Quiet {
		t.Error("Quiet unexpectedly set")
	}
	if !config.NoColor {
		t.Error("NoColor not updated from flags")
	}
	if config.Format != "json" {
		t.Errorf("Format = %s, want json", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", config.LogLevel)
	}
}

// TestUpdateFromFlags_EmptyValuesPreserved verifies empty flag values
// do not clobber config file or env settings.
func TestUpdateFromFlags_EmptyValuesPreserved(t *testing.T) {
	config := &Config{
		Format:   "yaml",
		LogLevel: "warn",
	}

	config.UpdateFromFlags(false, false, false, "", "")

	if config.Format != "yaml" {
		t.Errorf("Format = %s, want yaml (preserved)", config.Format)
	}
	if config.LogLevel != "warn" {
		t.Errorf("LogLevel = %s, want warn (preserved)", config.LogLevel)
	}
}

// TestLoadConfig verifies defaults are applied.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.LogFormat == "" {
		t.Error("LogFormat default not applied")
	}
	if config.LogOutput == "" {
		t.Error("LogOutput default not applied")
	}
}
