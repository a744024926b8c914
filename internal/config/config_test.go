package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Bar.Position != "top" || cfg.Bar.Height != 30 {
		t.Errorf("Expected default bar geometry, got %s/%d", cfg.Bar.Position, cfg.Bar.Height)
	}
	if len(cfg.Bar.Widgets) == 0 {
		t.Error("Expected default widget list to be non-empty")
	}
	if strings.HasPrefix(cfg.LogFile, "~") {
		t.Errorf("Expected log file path to be expanded, got %s", cfg.LogFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestLoadConfigParsesFile(t *testing.T) {
	content := `
app_name = "strut"
socket_path = "/tmp/strut_test_socket"

[bar]
position = "bottom"
height = 24
spacing = 2.5
font_size = 13
fonts = ["monospace"]

[bar.colors]
background = "#111111"
foreground = "#eeeeee"

[[bar.widgets]]
kind = "workspaces"

[[bar.widgets]]
kind = "title"
greedy = true
max_chars = 60
`
	path := filepath.Join(t.TempDir(), "strut.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Bar.Position != "bottom" {
		t.Errorf("Expected position bottom, got %s", cfg.Bar.Position)
	}
	if cfg.Bar.Height != 24 {
		t.Errorf("Expected height 24, got %d", cfg.Bar.Height)
	}
	if cfg.Bar.Spacing != 2.5 {
		t.Errorf("Expected spacing 2.5, got %g", cfg.Bar.Spacing)
	}
	if len(cfg.Bar.Widgets) != 2 {
		t.Fatalf("Expected 2 widgets, got %d", len(cfg.Bar.Widgets))
	}
	title := cfg.Bar.Widgets[1]
	if title.Kind != "title" || !title.Greedy || title.MaxChars != 60 {
		t.Errorf("Expected greedy title with max_chars 60, got %+v", title)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad position", func(c *Config) { c.Bar.Position = "left" }, "position"},
		{"height too small", func(c *Config) { c.Bar.Height = 5 }, "height"},
		{"height too large", func(c *Config) { c.Bar.Height = 500 }, "height"},
		{"negative spacing", func(c *Config) { c.Bar.Spacing = -1 }, "spacing"},
		{"negative screen", func(c *Config) { c.Bar.Screen = -1 }, "screen"},
		{"bad refresh", func(c *Config) { c.Bar.RefreshMS = 120000 }, "refresh_ms"},
		{"bad font size", func(c *Config) { c.Bar.FontSize = 1 }, "font_size"},
		{"bad color", func(c *Config) { c.Bar.Colors.Background = "red" }, "color"},
		{
			"bad widget color",
			func(c *Config) {
				c.Bar.Widgets = []WidgetConfig{{Kind: "text", Fg: "#zz0000"}}
			},
			"color",
		},
		{
			"kindless widget",
			func(c *Config) { c.Bar.Widgets = []WidgetConfig{{Greedy: true}} },
			"kind",
		},
		{
			"script without path",
			func(c *Config) { c.Bar.Widgets = []WidgetConfig{{Kind: "script"}} },
			"path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected valid config, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSaveAndReloadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strut.toml")

	cfg := DefaultConfig
	cfg.Bar.Height = 26
	if err := SaveConfig(&cfg, path); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to reload config: %v", err)
	}
	if loaded.Bar.Height != 26 {
		t.Errorf("Expected height 26 after reload, got %d", loaded.Bar.Height)
	}
}
