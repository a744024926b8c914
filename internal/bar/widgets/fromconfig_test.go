package widgets

import (
	"strings"
	"testing"

	"github.com/chess10kp/strut/internal/config"
)

func testBarConfig(widgets ...config.WidgetConfig) *config.BarConfig {
	return &config.BarConfig{
		FontSize: 14,
		Padding:  4,
		Fonts:    []string{"Iosevka"},
		Colors: config.ColorsConfig{
			Background: "#0e1419",
			Foreground: "#ebdbb2",
			Highlight:  "#458588",
			Urgent:     "#cc241d",
		},
		Widgets: widgets,
	}
}

func TestFromConfig(t *testing.T) {
	bc := testBarConfig(
		config.WidgetConfig{Kind: "workspaces"},
		config.WidgetConfig{Kind: "layout"},
		config.WidgetConfig{Kind: "title", Greedy: true, MaxChars: 40},
		config.WidgetConfig{Kind: "clock", Format: "15:04"},
		config.WidgetConfig{Kind: "spacer", Greedy: true},
		config.WidgetConfig{Kind: "text", Text: "hi"},
		config.WidgetConfig{Kind: "battery", Battery: "STRUT_TEST_NONE"},
	)

	built, err := FromConfig(bc)
	if err != nil {
		t.Fatalf("Failed to build widgets: %v", err)
	}
	if len(built) != 7 {
		t.Fatalf("Expected 7 widgets, got %d", len(built))
	}

	if _, ok := built[0].(*Workspaces); !ok {
		t.Errorf("Expected a Workspaces widget, got %T", built[0])
	}
	if _, ok := built[1].(*LayoutSymbol); !ok {
		t.Errorf("Expected a LayoutSymbol widget, got %T", built[1])
	}
	if _, ok := built[2].(*Title); !ok {
		t.Errorf("Expected a Title widget, got %T", built[2])
	}
	if !built[2].Greedy() {
		t.Error("Expected the title widget to be greedy")
	}
	if _, ok := built[3].(*Clock); !ok {
		t.Errorf("Expected a Clock widget, got %T", built[3])
	}
	if !built[4].Greedy() {
		t.Error("Expected the spacer to be greedy")
	}
	if text, ok := built[5].(*Text); !ok || text.Content() != "hi" {
		t.Errorf("Expected a Text widget showing hi, got %T", built[5])
	}
}

func TestFromConfigUnknownKindSuggests(t *testing.T) {
	bc := testBarConfig(config.WidgetConfig{Kind: "batery"})

	_, err := FromConfig(bc)
	if err == nil {
		t.Fatal("Expected an error for an unknown widget kind")
	}
	if !strings.Contains(err.Error(), `did you mean "battery"`) {
		t.Errorf("Expected a battery suggestion, got %v", err)
	}
}

func TestFromConfigUnknownKindNoSuggestion(t *testing.T) {
	bc := testBarConfig(config.WidgetConfig{Kind: "zzz"})

	_, err := FromConfig(bc)
	if err == nil {
		t.Fatal("Expected an error for an unknown widget kind")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("Expected no suggestion for gibberish, got %v", err)
	}
}

func TestFromConfigBadColor(t *testing.T) {
	bc := testBarConfig(config.WidgetConfig{Kind: "text", Text: "x", Fg: "notacolor"})

	if _, err := FromConfig(bc); err == nil {
		t.Error("Expected an error for an unparseable widget color")
	}
}
