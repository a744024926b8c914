package widgets

import (
	"github.com/chess10kp/strut/internal/draw"
	"github.com/chess10kp/strut/internal/wm"
)

// Workspaces shows one cell per workspace, boxing the focused one and
// recoloring urgent ones.
type Workspaces struct {
	Base
	style     Style
	highlight draw.Color
	urgent    draw.Color
	cells     []wsCell
	widths    []float64
	textH     float64
	extent    *draw.Extent
}

type wsCell struct {
	name    string
	focused bool
	urgent  bool
}

// NewWorkspaces returns an empty workspace indicator; it fills itself from
// the first workspace event.
func NewWorkspaces(style Style, highlight, urgent draw.Color) *Workspaces {
	w := &Workspaces{style: style, highlight: highlight, urgent: urgent}
	w.dirty = true
	return w
}

func (w *Workspaces) snapshot(s *wm.State) {
	cells := make([]wsCell, len(s.Workspaces))
	for i, ws := range s.Workspaces {
		cells[i] = wsCell{name: ws.Name, focused: ws.Focused, urgent: ws.Urgent}
	}
	if equalCells(cells, w.cells) {
		return
	}
	w.cells = cells
	w.widths = nil
	w.extent = nil
	w.markDirty()
}

func equalCells(a, b []wsCell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (w *Workspaces) WorkspaceChange(s *wm.State, prev, next int) { w.snapshot(s) }
func (w *Workspaces) ScreenChange(s *wm.State, screen int)        { w.snapshot(s) }

func (w *Workspaces) CurrentExtent(ctx draw.Context, h float64) (draw.Extent, error) {
	if w.extent != nil {
		return *w.extent, nil
	}
	ctx.Font(w.style.Font, w.style.Size)
	widths := make([]float64, len(w.cells))
	total := 0.0
	w.textH = 0
	for i, c := range w.cells {
		ext, err := ctx.TextExtent(c.name)
		if err != nil {
			return draw.Extent{}, err
		}
		widths[i] = ext.W + w.style.Padding*2
		total += widths[i]
		if ext.H > w.textH {
			w.textH = ext.H
		}
	}
	w.widths = widths
	w.extent = &draw.Extent{W: total, H: h}
	return *w.extent, nil
}

func (w *Workspaces) Draw(ctx draw.Context, width, h float64) error {
	if w.style.Bg != nil {
		ctx.SetColor(*w.style.Bg)
		ctx.FillRect(0, 0, width, h)
	}
	if w.widths == nil {
		if _, err := w.CurrentExtent(ctx, h); err != nil {
			return err
		}
	}
	y := (h - w.textH) / 2
	if y < 0 {
		y = 0
	}
	x := 0.0
	for i, c := range w.cells {
		if c.focused {
			ctx.SetColor(w.highlight)
			ctx.FillRect(x, 0, w.widths[i], h)
		}
		fg := w.style.Fg
		if c.urgent {
			fg = w.urgent
		}
		ctx.Font(w.style.Font, w.style.Size)
		ctx.SetColor(fg)
		if _, err := ctx.Text(c.name, x+w.style.Padding, y); err != nil {
			return err
		}
		x += w.widths[i]
	}
	w.markClean()
	return nil
}
