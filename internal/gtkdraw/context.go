package gtkdraw

import (
	"fmt"

	"github.com/gotk3/gotk3/cairo"

	"github.com/chess10kp/strut/internal/draw"
)

// context implements draw.Context on a cairo context targeting a
// surface's offscreen buffer.
type context struct {
	cr      *cairo.Context
	backend *Backend
	font    string
	size    float64
}

func (c *context) SetColor(col draw.Color) {
	c.cr.SetSourceRGBA(col.R, col.G, col.B, col.A)
}

func (c *context) FillRect(x, y, w, h float64) {
	c.cr.Rectangle(x, y, w, h)
	c.cr.Fill()
}

func (c *context) Translate(dx, dy float64) {
	c.cr.Translate(dx, dy)
}

func (c *context) Font(name string, size float64) {
	if name == "" {
		name = c.backend.defaultFont()
	}
	if size <= 0 {
		size = defaultFontSize
	}
	c.font = name
	c.size = size
	c.cr.SelectFontFace(name, cairo.FONT_SLANT_NORMAL, cairo.FONT_WEIGHT_NORMAL)
	c.cr.SetFontSize(size)
}

func (c *context) TextExtent(s string) (draw.Extent, error) {
	key := extentKey{font: c.font, size: c.size, text: s}
	if ext, ok := c.backend.extents.Get(key); ok {
		return ext, nil
	}

	te := c.cr.TextExtents(s)
	if status := c.cr.Status(); status != cairo.STATUS_SUCCESS {
		return draw.Extent{}, fmt.Errorf("cairo error status %d", status)
	}

	ext := draw.Extent{W: te.XAdvance, H: te.Height}
	c.backend.extents.Add(key, ext)
	return ext, nil
}

func (c *context) Text(s string, dx, dy float64) (float64, error) {
	te := c.cr.TextExtents(s)
	// ShowText paints from the baseline; dy names the top of the ink box.
	c.cr.MoveTo(dx, dy-te.YBearing)
	c.cr.ShowText(s)
	if status := c.cr.Status(); status != cairo.STATUS_SUCCESS {
		return 0, fmt.Errorf("cairo error status %d", status)
	}
	return te.XAdvance, nil
}
