// Package widgets provides the stock widgets for the status bar: static
// text, clock, workspaces, window title, layout indicator, battery, spacer
// and Lua scripts. All of them satisfy bar.Widget.
package widgets

import (
	"github.com/chess10kp/strut/internal/draw"
	"github.com/chess10kp/strut/internal/wm"
)

// Style carries the font and colors shared by the text-based widgets.
// Padding is applied on both sides of the rendered text.
type Style struct {
	Font    string
	Size    float64
	Fg      draw.Color
	Bg      *draw.Color
	Padding float64
}

// Base holds the state every widget shares: the greedy flag and the
// needs-redraw latch. Concrete widgets embed it and override the hook
// methods for the events they react to.
type Base struct {
	wm.NoOpHook
	greedy bool
	dirty  bool
}

// Greedy reports whether the widget takes a share of layout slack.
func (b *Base) Greedy() bool { return b.greedy }

// RequiresRedraw reports whether the widget changed since it was last
// drawn.
func (b *Base) RequiresRedraw() bool { return b.dirty }

func (b *Base) markDirty() { b.dirty = true }
func (b *Base) markClean() { b.dirty = false }
