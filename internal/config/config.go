package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/chess10kp/strut/internal/draw"
)

type Config struct {
	AppName    string    `toml:"app_name"`
	SocketPath string    `toml:"socket_path"`
	LogFile    string    `toml:"log_file"`
	Bar        BarConfig `toml:"bar"`
}

type BarConfig struct {
	Position  string         `toml:"position"` // "top" or "bottom"
	Height    int            `toml:"height"`
	Spacing   float64        `toml:"spacing"`
	Screen    int            `toml:"screen"`
	RefreshMS int            `toml:"refresh_ms"` // 0 disables the periodic redraw
	Fonts     []string       `toml:"fonts"`
	FontSize  float64        `toml:"font_size"`
	Padding   float64        `toml:"padding"`
	Colors    ColorsConfig   `toml:"colors"`
	Widgets   []WidgetConfig `toml:"widgets"`
}

type ColorsConfig struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Highlight  string `toml:"highlight"`
	Urgent     string `toml:"urgent"`
}

// WidgetConfig describes one [[bar.widgets]] entry. Kind selects the
// widget; the remaining fields apply to the kinds that use them.
type WidgetConfig struct {
	Kind     string `toml:"kind"`
	Greedy   bool   `toml:"greedy"`
	Text     string `toml:"text"`      // text
	Format   string `toml:"format"`    // clock
	Path     string `toml:"path"`      // script
	Battery  string `toml:"battery"`   // battery supply name
	MaxChars int    `toml:"max_chars"` // title
	Fg       string `toml:"fg"`
	Bg       string `toml:"bg"`
}

var DefaultConfig = Config{
	AppName:    "strut",
	SocketPath: "/tmp/strut_socket",
	LogFile:    "~/.cache/strut/strut.log",
	Bar: BarConfig{
		Position:  "top",
		Height:    30,
		Spacing:   5,
		Screen:    0,
		RefreshMS: 1000,
		Fonts:     []string{"Iosevka", "monospace"},
		FontSize:  16,
		Padding:   6,
		Colors: ColorsConfig{
			Background: "#0e1419",
			Foreground: "#ebdbb2",
			Highlight:  "#458588",
			Urgent:     "#cc241d",
		},
		Widgets: []WidgetConfig{
			{Kind: "workspaces"},
			{Kind: "layout"},
			{Kind: "title", Greedy: true, MaxChars: 80},
			{Kind: "clock", Format: "15:04:05"},
			{Kind: "battery"},
		},
	},
}

func LoadConfig(path string) (*Config, error) {
	expandedPath := expandPath(path)

	if _, err := os.Stat(expandedPath); os.IsNotExist(err) {
		cfg := DefaultConfig
		cfg.expand()
		return &cfg, nil
	}

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.expand()

	return &cfg, nil
}

func LoadAndValidateConfig(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func SaveConfig(cfg *Config, path string) error {
	expandedPath := expandPath(path)

	dir := filepath.Dir(expandedPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(expandedPath, data, 0644)
}

// expand resolves ~ in every path-valued field.
func (c *Config) expand() {
	c.SocketPath = expandPath(c.SocketPath)
	c.LogFile = expandPath(c.LogFile)
	for i := range c.Bar.Widgets {
		c.Bar.Widgets[i].Path = expandPath(c.Bar.Widgets[i].Path)
	}
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		usr, err := user.Current()
		if err == nil {
			return filepath.Join(usr.HomeDir, path[1:])
		}
	}
	return path
}

func (c *Config) Validate() error {
	if err := c.validateBar(); err != nil {
		return err
	}
	if err := c.validateColors(); err != nil {
		return err
	}
	if err := c.validateWidgets(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateBar() error {
	b := c.Bar
	if b.Position != "top" && b.Position != "bottom" {
		return fmt.Errorf("invalid bar position: %q (must be top or bottom)", b.Position)
	}
	if b.Height < 10 || b.Height > 100 {
		return fmt.Errorf("invalid bar height: %d (must be 10-100px)", b.Height)
	}
	if b.Spacing < 0 || b.Spacing > 50 {
		return fmt.Errorf("invalid spacing: %g (must be 0-50px)", b.Spacing)
	}
	if b.Screen < 0 {
		return fmt.Errorf("invalid screen index: %d (must be >= 0)", b.Screen)
	}
	if b.RefreshMS < 0 || b.RefreshMS > 60000 {
		return fmt.Errorf("invalid refresh_ms: %d (must be 0-60000)", b.RefreshMS)
	}
	if b.FontSize < 6 || b.FontSize > 72 {
		return fmt.Errorf("invalid font_size: %g (must be 6-72)", b.FontSize)
	}
	if b.Padding < 0 || b.Padding > 50 {
		return fmt.Errorf("invalid padding: %g (must be 0-50px)", b.Padding)
	}
	return nil
}

func (c *Config) validateColors() error {
	colors := map[string]string{
		"background": c.Bar.Colors.Background,
		"foreground": c.Bar.Colors.Foreground,
		"highlight":  c.Bar.Colors.Highlight,
		"urgent":     c.Bar.Colors.Urgent,
	}
	for name, value := range colors {
		if value == "" {
			continue
		}
		if _, err := draw.ParseColor(value); err != nil {
			return fmt.Errorf("invalid %s color: %w", name, err)
		}
	}
	for i, w := range c.Bar.Widgets {
		widgetColors := map[string]string{"fg": w.Fg, "bg": w.Bg}
		for name, value := range widgetColors {
			if value == "" {
				continue
			}
			if _, err := draw.ParseColor(value); err != nil {
				return fmt.Errorf("invalid %s color on widget %d: %w", name, i, err)
			}
		}
	}
	return nil
}

func (c *Config) validateWidgets() error {
	for i, w := range c.Bar.Widgets {
		if w.Kind == "" {
			return fmt.Errorf("widget %d has no kind", i)
		}
		if w.Kind == "script" && w.Path == "" {
			return fmt.Errorf("script widget %d has no path", i)
		}
		if w.MaxChars < 0 {
			return fmt.Errorf("invalid max_chars on widget %d: %d (must be >= 0)", i, w.MaxChars)
		}
	}
	return nil
}

func ValidateConfig(path string) error {
	cfg, err := LoadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
