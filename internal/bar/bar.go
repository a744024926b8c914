// Package bar implements the status bar engine: it owns an ordered set of
// widgets, lays them out across the bar width, paints them through an
// injected drawing backend, and repaints in response to window-manager
// lifecycle events.
package bar

import (
	"errors"
	"fmt"

	"github.com/chess10kp/strut/internal/draw"
	"github.com/chess10kp/strut/internal/wm"
)

var (
	// ErrWidgetExtent wraps a widget's failure to measure itself.
	ErrWidgetExtent = errors.New("failed to measure widget")
	// ErrWidgetDraw wraps a widget's failure to render.
	ErrWidgetDraw = errors.New("failed to draw widget")
)

// Position selects which screen edge the bar docks to.
type Position int

const (
	Top Position = iota
	Bottom
)

func (p Position) String() string {
	if p == Bottom {
		return "bottom"
	}
	return "top"
}

// Widget is one drawable segment of the bar. Widgets observe lifecycle
// events through the embedded hook methods, updating internal state only;
// the bar polls RequiresRedraw afterwards to decide whether to repaint.
type Widget interface {
	wm.Hook

	// CurrentExtent reports the footprint the widget wants for the given
	// bar height.
	CurrentExtent(ctx draw.Context, h float64) (draw.Extent, error)
	// Draw paints the widget at the context's current origin using the
	// allotted box.
	Draw(ctx draw.Context, w, h float64) error
	// RequiresRedraw reports whether the widget changed since it was last
	// drawn. It must be side-effect free.
	RequiresRedraw() bool
	// Greedy reports whether the widget should absorb a share of any
	// horizontal slack during layout.
	Greedy() bool
}

// Config carries everything New needs to place and paint a bar.
type Config struct {
	Position   Position
	Spacing    float64
	Screen     int
	Height     int
	Background draw.Color
	Fonts      []string
	Widgets    []Widget
}

// StatusBar is a dock window spanning one edge of a screen, drawing its
// widgets left to right. The widget list and greedy set are fixed at
// construction.
type StatusBar struct {
	drw     draw.Draw
	win     draw.SurfaceID
	widgets []Widget
	greedy  []int
	spacing float64
	w, h    float64
	bg      draw.Color
}

// New creates the bar's dock window and paints it once. It fails if the
// screen cannot be queried, the window cannot be created, or the initial
// redraw fails; a StatusBar is never returned unpainted.
func New(drw draw.Draw, cfg Config) (*StatusBar, error) {
	sw, sh, err := drw.ScreenSize(cfg.Screen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", draw.ErrScreenQuery, err)
	}

	// No clamping: a bar taller than the screen yields a negative origin.
	y := 0
	if cfg.Position == Bottom {
		y = sh - cfg.Height
	}

	win, err := drw.NewWindow(draw.WindowDock, 0, y, sw, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", draw.ErrWindowCreation, err)
	}

	bar := &StatusBar{
		drw:     drw,
		win:     win,
		widgets: cfg.Widgets,
		spacing: cfg.Spacing,
		w:       float64(sw),
		h:       float64(cfg.Height),
		bg:      cfg.Background,
	}
	for i, wd := range bar.widgets {
		if wd.Greedy() {
			bar.greedy = append(bar.greedy, i)
		}
	}

	// Font registration is best effort; the backend falls back on its own.
	for _, f := range cfg.Fonts {
		drw.RegisterFont(f)
	}

	if err := bar.Redraw(); err != nil {
		return nil, err
	}
	return bar, nil
}

// Redraw repaints the whole bar: background fill, layout, then every
// widget in order, each followed by a spacing advance. Failures propagate
// and may leave the surface partially painted.
func (s *StatusBar) Redraw() error {
	ctx, err := s.drw.ContextFor(s.win)
	if err != nil {
		return fmt.Errorf("%w: %w", draw.ErrContextAcquisition, err)
	}

	ctx.SetColor(s.bg)
	ctx.FillRect(0, 0, s.w, s.h)

	extents, err := s.layout(ctx)
	if err != nil {
		return err
	}
	for i, wd := range s.widgets {
		if err := wd.Draw(ctx, extents[i].W, s.h); err != nil {
			return fmt.Errorf("%w %d: %w", ErrWidgetDraw, i, err)
		}
		// Trailing spacing after the last widget is intentional.
		ctx.Translate(extents[i].W+s.spacing, 0)
	}

	s.drw.Flush()
	return nil
}

// layout measures every widget in order and splits any slack equally
// between the greedy ones. With no slack or no greedy widgets the natural
// extents are returned unchanged; overflow past the bar width is allowed.
func (s *StatusBar) layout(ctx draw.Context) ([]draw.Extent, error) {
	extents := make([]draw.Extent, 0, len(s.widgets))
	total := 0.0
	for i, wd := range s.widgets {
		ext, err := wd.CurrentExtent(ctx, s.h)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %w", ErrWidgetExtent, i, err)
		}
		extents = append(extents, ext)
		total += ext.W
	}

	if total < s.w && len(s.greedy) > 0 {
		share := (s.w - total) / float64(len(s.greedy))
		for _, i := range s.greedy {
			extents[i].W += share
		}
	}

	return extents, nil
}

// Width returns the bar's width in pixels.
func (s *StatusBar) Width() float64 { return s.w }

// Height returns the bar's height in pixels.
func (s *StatusBar) Height() float64 { return s.h }
