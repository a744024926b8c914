package widgets

import (
	"github.com/chess10kp/strut/internal/draw"
)

// Text is a static text widget. Most of the other widgets wrap one and
// feed it new content from hook events.
type Text struct {
	Base
	text   string
	style  Style
	extent *draw.Extent
}

func newText(text string, style Style, greedy bool) Text {
	t := Text{text: text, style: style}
	t.greedy = greedy
	t.dirty = true
	return t
}

// NewText returns a widget that always shows the same string.
func NewText(text string, style Style, greedy bool) *Text {
	t := newText(text, style, greedy)
	return &t
}

// SetText replaces the widget's content, invalidating its cached extent.
func (t *Text) SetText(s string) {
	if s == t.text {
		return
	}
	t.text = s
	t.extent = nil
	t.markDirty()
}

// Content returns the currently displayed string.
func (t *Text) Content() string { return t.text }

// CurrentExtent measures the text once and caches the result until the
// content changes.
func (t *Text) CurrentExtent(ctx draw.Context, h float64) (draw.Extent, error) {
	if t.extent != nil {
		return *t.extent, nil
	}
	ctx.Font(t.style.Font, t.style.Size)
	ext, err := ctx.TextExtent(t.text)
	if err != nil {
		return draw.Extent{}, err
	}
	ext.W += t.style.Padding * 2
	t.extent = &ext
	return ext, nil
}

// Draw paints the optional background box, then the text vertically
// centered in the bar.
func (t *Text) Draw(ctx draw.Context, w, h float64) error {
	if t.style.Bg != nil {
		ctx.SetColor(*t.style.Bg)
		ctx.FillRect(0, 0, w, h)
	}
	if t.extent == nil {
		if _, err := t.CurrentExtent(ctx, h); err != nil {
			return err
		}
	}
	ctx.Font(t.style.Font, t.style.Size)
	ctx.SetColor(t.style.Fg)
	y := (h - t.extent.H) / 2
	if y < 0 {
		y = 0
	}
	if _, err := ctx.Text(t.text, t.style.Padding, y); err != nil {
		return err
	}
	t.markClean()
	return nil
}
