// Package wm tracks the window manager's client/workspace/output state and
// delivers lifecycle events to registered hooks. The sway IPC connection is
// the only event source; hooks never talk to sway directly.
package wm

// ClientID identifies a window-manager client (a sway node id).
type ClientID int64

// Client is the slice of window-manager state the bar cares about for a
// single managed window.
type Client struct {
	ID        ClientID
	Name      string
	Workspace int
}

// Workspace mirrors the sway workspace attributes widgets display.
type Workspace struct {
	Num     int
	Name    string
	Output  string
	Focused bool
	Visible bool
	Urgent  bool
}

// State is the mutable window-manager context passed to every hook call.
// It is owned by the thread driving event dispatch and must not be retained
// across calls.
type State struct {
	Clients          map[ClientID]*Client
	Workspaces       []Workspace
	Outputs          []string
	Focused          ClientID
	FocusedWorkspace int
	FocusedOutput    int
	Layout           string
}

// NewState returns an empty State with nothing focused.
func NewState() *State {
	return &State{
		Clients:          make(map[ClientID]*Client),
		FocusedWorkspace: -1,
		FocusedOutput:    -1,
	}
}

// Client returns the tracked client with the given id, or nil.
func (s *State) Client(id ClientID) *Client {
	if s.Clients == nil {
		return nil
	}
	return s.Clients[id]
}

// FocusedClientName returns the name of the focused client, or "".
func (s *State) FocusedClientName() string {
	if c := s.Client(s.Focused); c != nil {
		return c.Name
	}
	return ""
}

// workspaceIndex returns the position of the workspace with the given name,
// or -1.
func (s *State) workspaceIndex(name string) int {
	for i, ws := range s.Workspaces {
		if ws.Name == name {
			return i
		}
	}
	return -1
}

// outputIndex returns the position of the named output, or -1.
func (s *State) outputIndex(name string) int {
	for i, o := range s.Outputs {
		if o == name {
			return i
		}
	}
	return -1
}
