package widgets

import (
	"time"

	"github.com/chess10kp/strut/internal/draw"
)

// Clock shows the current time. It refreshes whenever the bar measures it,
// so a periodic redraw keeps it ticking even without window-manager
// traffic.
type Clock struct {
	Text
	format string
}

// NewClock returns a clock using the given time format; an empty format
// falls back to "15:04:05".
func NewClock(format string, style Style) *Clock {
	if format == "" {
		format = "15:04:05"
	}
	return &Clock{
		Text:   newText(time.Now().Format(format), style, false),
		format: format,
	}
}

func (c *Clock) CurrentExtent(ctx draw.Context, h float64) (draw.Extent, error) {
	c.SetText(time.Now().Format(c.format))
	return c.Text.CurrentExtent(ctx, h)
}

func (c *Clock) RequiresRedraw() bool {
	return c.Text.RequiresRedraw() || time.Now().Format(c.format) != c.text
}
