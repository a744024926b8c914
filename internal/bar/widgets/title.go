package widgets

import (
	"github.com/chess10kp/strut/internal/wm"
)

// Title shows the focused client's name. It is greedy by default so it
// soaks up the middle of the bar.
type Title struct {
	Text
	maxChars int
}

// NewTitle returns a title widget clipping names longer than maxChars
// runes; maxChars <= 0 disables clipping.
func NewTitle(maxChars int, style Style, greedy bool) *Title {
	return &Title{
		Text:     newText("", style, greedy),
		maxChars: maxChars,
	}
}

func (t *Title) clip(name string) string {
	if t.maxChars <= 0 {
		return name
	}
	runes := []rune(name)
	if len(runes) <= t.maxChars {
		return name
	}
	return string(runes[:t.maxChars]) + "..."
}

func (t *Title) FocusChange(s *wm.State, id wm.ClientID) {
	t.SetText(t.clip(s.FocusedClientName()))
}

func (t *Title) RemoveClient(s *wm.State, id wm.ClientID) {
	t.SetText(t.clip(s.FocusedClientName()))
}

func (t *Title) ClientNameUpdated(s *wm.State, id wm.ClientID, name string, isRoot bool) {
	if isRoot || id != s.Focused {
		return
	}
	t.SetText(t.clip(name))
}
