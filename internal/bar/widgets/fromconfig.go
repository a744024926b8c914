package widgets

import (
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/chess10kp/strut/internal/bar"
	"github.com/chess10kp/strut/internal/config"
	"github.com/chess10kp/strut/internal/draw"
)

// kinds lists the widget kinds FromConfig accepts.
var kinds = []string{
	"text", "clock", "workspaces", "title", "layout", "battery", "spacer", "script",
}

// FromConfig builds the widget list described by the [bar] config section,
// in order.
func FromConfig(bc *config.BarConfig) ([]bar.Widget, error) {
	widgets := make([]bar.Widget, 0, len(bc.Widgets))
	for i, wc := range bc.Widgets {
		w, err := build(bc, wc)
		if err != nil {
			return nil, fmt.Errorf("widget %d: %w", i, err)
		}
		widgets = append(widgets, w)
	}
	return widgets, nil
}

func build(bc *config.BarConfig, wc config.WidgetConfig) (bar.Widget, error) {
	style, err := styleFor(bc, wc)
	if err != nil {
		return nil, err
	}

	switch wc.Kind {
	case "text":
		return NewText(wc.Text, style, wc.Greedy), nil
	case "clock":
		return NewClock(wc.Format, style), nil
	case "workspaces":
		highlight, err := colorOr(bc.Colors.Highlight, "#458588")
		if err != nil {
			return nil, err
		}
		urgent, err := colorOr(bc.Colors.Urgent, "#cc241d")
		if err != nil {
			return nil, err
		}
		return NewWorkspaces(style, highlight, urgent), nil
	case "title":
		return NewTitle(wc.MaxChars, style, wc.Greedy), nil
	case "layout":
		return NewLayoutSymbol(style), nil
	case "battery":
		return NewBattery(wc.Battery, style), nil
	case "spacer":
		return NewSpacer(wc.Greedy), nil
	case "script":
		return NewScript(wc.Path, style, wc.Greedy)
	}

	if matches := fuzzy.Find(wc.Kind, kinds); len(matches) > 0 {
		return nil, fmt.Errorf("unknown widget kind %q (did you mean %q?)", wc.Kind, matches[0].Str)
	}
	return nil, fmt.Errorf("unknown widget kind %q", wc.Kind)
}

func styleFor(bc *config.BarConfig, wc config.WidgetConfig) (Style, error) {
	font := "monospace"
	if len(bc.Fonts) > 0 {
		font = bc.Fonts[0]
	}
	size := bc.FontSize
	if size <= 0 {
		size = 14
	}
	style := Style{Font: font, Size: size, Padding: bc.Padding}

	fgHex := bc.Colors.Foreground
	if wc.Fg != "" {
		fgHex = wc.Fg
	}
	fg, err := colorOr(fgHex, "#ffffff")
	if err != nil {
		return Style{}, err
	}
	style.Fg = fg

	if wc.Bg != "" {
		bg, err := draw.ParseColor(wc.Bg)
		if err != nil {
			return Style{}, err
		}
		style.Bg = &bg
	}
	return style, nil
}

func colorOr(hex, fallback string) (draw.Color, error) {
	if hex == "" {
		hex = fallback
	}
	return draw.ParseColor(hex)
}
