package bar

import (
	"log"

	"github.com/chess10kp/strut/internal/wm"
)

// StatusBar implements wm.Hook by fanning every event out to its widgets
// in order and then repainting if any widget reports a change. Event
// handling never fails the caller; a failed repaint is logged and the bar
// keeps its stale contents until the next event.

func (s *StatusBar) NewClient(st *wm.State, c *wm.Client) {
	for _, w := range s.widgets {
		w.NewClient(st, c)
	}
	s.RedrawIfNeeded()
}

func (s *StatusBar) RemoveClient(st *wm.State, id wm.ClientID) {
	for _, w := range s.widgets {
		w.RemoveClient(st, id)
	}
	s.RedrawIfNeeded()
}

func (s *StatusBar) ClientNameUpdated(st *wm.State, id wm.ClientID, name string, isRoot bool) {
	for _, w := range s.widgets {
		w.ClientNameUpdated(st, id, name, isRoot)
	}
	s.RedrawIfNeeded()
}

func (s *StatusBar) LayoutChange(st *wm.State, workspace, screen int) {
	for _, w := range s.widgets {
		w.LayoutChange(st, workspace, screen)
	}
	s.RedrawIfNeeded()
}

func (s *StatusBar) WorkspaceChange(st *wm.State, prev, next int) {
	for _, w := range s.widgets {
		w.WorkspaceChange(st, prev, next)
	}
	s.RedrawIfNeeded()
}

func (s *StatusBar) ScreenChange(st *wm.State, screen int) {
	for _, w := range s.widgets {
		w.ScreenChange(st, screen)
	}
	s.RedrawIfNeeded()
}

func (s *StatusBar) FocusChange(st *wm.State, id wm.ClientID) {
	for _, w := range s.widgets {
		w.FocusChange(st, id)
	}
	s.RedrawIfNeeded()
}

// RedrawIfNeeded repaints the bar when at least one widget reports a
// pending change. The refresh ticker uses it directly so time driven
// widgets advance without window manager traffic.
func (s *StatusBar) RedrawIfNeeded() {
	for _, w := range s.widgets {
		if w.RequiresRedraw() {
			if err := s.Redraw(); err != nil {
				log.Printf("unable to redraw bar: %v", err)
			}
			return
		}
	}
}
