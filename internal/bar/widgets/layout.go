package widgets

import (
	"github.com/chess10kp/strut/internal/wm"
)

// layoutSymbols maps sway layout names to the short indicators shown in
// the bar.
var layoutSymbols = map[string]string{
	"splith":   "[-]",
	"splitv":   "[|]",
	"tabbed":   "[T]",
	"stacking": "[S]",
}

// LayoutSymbol shows a short indicator for the focused workspace's layout.
type LayoutSymbol struct {
	Text
}

func NewLayoutSymbol(style Style) *LayoutSymbol {
	return &LayoutSymbol{Text: newText("", style, false)}
}

func (l *LayoutSymbol) LayoutChange(s *wm.State, workspace, screen int) {
	l.SetText(symbolFor(s.Layout))
}

func (l *LayoutSymbol) WorkspaceChange(s *wm.State, prev, next int) {
	l.SetText(symbolFor(s.Layout))
}

func symbolFor(layout string) string {
	if layout == "" {
		return ""
	}
	if sym, ok := layoutSymbols[layout]; ok {
		return sym
	}
	return "[" + layout + "]"
}
