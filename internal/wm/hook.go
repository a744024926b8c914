package wm

// Hook receives window-manager lifecycle events. Implementations react to
// the subset they care about and embed NoOpHook for the rest.
type Hook interface {
	// NewClient is called when a window becomes managed.
	NewClient(s *State, c *Client)
	// RemoveClient is called when a managed window goes away.
	RemoveClient(s *State, id ClientID)
	// ClientNameUpdated is called when a window title changes. isRoot is
	// true when the name belongs to the root rather than a client window.
	ClientNameUpdated(s *State, id ClientID, name string, isRoot bool)
	// LayoutChange is called when the layout on a workspace changes.
	LayoutChange(s *State, workspace, screen int)
	// WorkspaceChange is called when focus moves between workspaces. prev
	// and next are indices into s.Workspaces; prev is -1 on the first
	// event and may equal next when the workspace list itself changed.
	WorkspaceChange(s *State, prev, next int)
	// ScreenChange is called when focus moves to a different output.
	ScreenChange(s *State, screen int)
	// FocusChange is called when a different client takes input focus.
	FocusChange(s *State, id ClientID)
}

// NoOpHook implements Hook with empty methods. Embed it to pick out the
// events you handle.
type NoOpHook struct{}

func (NoOpHook) NewClient(*State, *Client)                          {}
func (NoOpHook) RemoveClient(*State, ClientID)                      {}
func (NoOpHook) ClientNameUpdated(*State, ClientID, string, bool)   {}
func (NoOpHook) LayoutChange(*State, int, int)                      {}
func (NoOpHook) WorkspaceChange(*State, int, int)                   {}
func (NoOpHook) ScreenChange(*State, int)                           {}
func (NoOpHook) FocusChange(*State, ClientID)                       {}
