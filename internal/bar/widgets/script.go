package widgets

import (
	"fmt"
	"log"

	lua "github.com/yuin/gopher-lua"

	"github.com/chess10kp/strut/internal/wm"
)

// Script renders text produced by a user Lua script. The script defines a
// global `render(event)` returning the string to show; event is a short
// name such as "focus" or "workspace". Script errors are logged and the
// previous text is kept, so a broken script never takes the bar down.
// The Lua state is confined to the thread driving the bar.
type Script struct {
	Text
	state *lua.LState
}

// NewScript loads path into a fresh Lua state and renders once with the
// "init" event.
func NewScript(path string, style Style, greedy bool) (*Script, error) {
	L := lua.NewState()
	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("failed to load script %s: %w", path, err)
	}
	s := &Script{
		Text:  newText("", style, greedy),
		state: L,
	}
	s.render("init")
	return s, nil
}

// Close releases the Lua state.
func (s *Script) Close() {
	s.state.Close()
}

// render calls the script's render function and stores its result. Any
// failure inside the script is absorbed here.
func (s *Script) render(event string) {
	fn := s.state.GetGlobal("render")
	if fn == lua.LNil {
		return
	}
	if err := s.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(event)); err != nil {
		log.Printf("script render failed: %v", err)
		return
	}
	ret := s.state.Get(-1)
	s.state.Pop(1)
	if ret == lua.LNil {
		return
	}
	s.SetText(ret.String())
}

func (s *Script) NewClient(st *wm.State, c *wm.Client) { s.render("new_client") }

func (s *Script) RemoveClient(st *wm.State, id wm.ClientID) { s.render("remove_client") }

func (s *Script) ClientNameUpdated(st *wm.State, id wm.ClientID, name string, isRoot bool) {
	s.render("client_name")
}

func (s *Script) LayoutChange(st *wm.State, workspace, screen int) { s.render("layout") }

func (s *Script) WorkspaceChange(st *wm.State, prev, next int) { s.render("workspace") }

func (s *Script) ScreenChange(st *wm.State, screen int) { s.render("screen") }

func (s *Script) FocusChange(st *wm.State, id wm.ClientID) { s.render("focus") }
