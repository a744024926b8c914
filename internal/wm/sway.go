package wm

import (
	"context"
	"fmt"
	"log"

	"github.com/joshuarubin/go-sway"
)

// Monitor bridges the sway IPC event stream onto the Hook surface. IPC
// queries run on the subscription goroutine; state mutation and hook
// fan-out are funnelled through the dispatch function so callers can
// marshal them onto their UI thread.
type Monitor struct {
	state    *State
	hooks    []Hook
	dispatch func(func())
	onQuit   func()

	client sway.Client
}

// NewMonitor returns a Monitor fanning events out to hooks. A nil dispatch
// runs everything synchronously.
func NewMonitor(hooks []Hook, dispatch func(func())) *Monitor {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Monitor{
		state:    NewState(),
		hooks:    hooks,
		dispatch: dispatch,
	}
}

// State returns the tracked window-manager state. It must only be touched
// from the dispatch thread.
func (m *Monitor) State() *State {
	return m.state
}

// OnQuit registers a function invoked (via dispatch) when sway announces
// it is shutting down.
func (m *Monitor) OnQuit(fn func()) {
	m.onQuit = fn
}

// Run connects to sway, seeds the state with the current workspaces,
// outputs and windows, and then blocks delivering events until ctx is
// cancelled or the connection drops.
func (m *Monitor) Run(ctx context.Context) error {
	client, err := sway.New(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to sway: %w", err)
	}
	m.client = client
	m.prime(ctx)

	h := &eventHandler{EventHandler: sway.NoOpEventHandler(), m: m}
	return sway.Subscribe(ctx, h,
		sway.EventTypeWindow,
		sway.EventTypeWorkspace,
		sway.EventTypeShutdown,
	)
}

// prime seeds the state from one round of IPC queries and fans the initial
// workspace and focus events so widgets populate before sway sends anything.
func (m *Monitor) prime(ctx context.Context) {
	workspaces := m.fetchWorkspaces(ctx)
	outputs := m.fetchOutputs(ctx)
	layout := m.fetchLayout(ctx, workspaces)
	views := m.fetchViews(ctx)

	m.dispatch(func() {
		s := m.state
		s.Workspaces = workspaces
		s.Outputs = outputs
		s.Layout = layout
		next := focusedWorkspaceIndex(workspaces)
		s.FocusedWorkspace = next
		if next >= 0 {
			s.FocusedOutput = s.outputIndex(workspaces[next].Output)
		}
		for _, v := range views {
			s.Clients[v.id] = &Client{ID: v.id, Name: v.name, Workspace: s.workspaceIndex(v.workspace)}
			if v.focused {
				s.Focused = v.id
			}
		}
		for _, h := range m.hooks {
			h.WorkspaceChange(s, -1, next)
		}
		if s.Focused != 0 {
			for _, h := range m.hooks {
				h.FocusChange(s, s.Focused)
			}
		}
	})
}

// applyWindow folds a window event into the state and fans it out. layout
// is the focused-workspace layout fetched alongside the event, "" when
// unknown.
func (m *Monitor) applyWindow(change string, id ClientID, name, layout string) {
	m.dispatch(func() {
		s := m.state
		switch change {
		case "new":
			c := &Client{ID: id, Name: name, Workspace: s.FocusedWorkspace}
			s.Clients[id] = c
			for _, h := range m.hooks {
				h.NewClient(s, c)
			}
		case "close":
			delete(s.Clients, id)
			if s.Focused == id {
				s.Focused = 0
			}
			for _, h := range m.hooks {
				h.RemoveClient(s, id)
			}
		case "title":
			if c := s.Clients[id]; c != nil {
				c.Name = name
			}
			for _, h := range m.hooks {
				h.ClientNameUpdated(s, id, name, false)
			}
		case "focus":
			if c := s.Clients[id]; c != nil {
				c.Name = name
			} else {
				s.Clients[id] = &Client{ID: id, Name: name, Workspace: s.FocusedWorkspace}
			}
			s.Focused = id
			for _, h := range m.hooks {
				h.FocusChange(s, id)
			}
		}
		m.noteLayout(layout)
	})
}

// applyWorkspace folds a workspace event into the state and fans it out.
// workspaces is the freshly queried list, nil when the query failed.
func (m *Monitor) applyWorkspace(change string, workspaces []Workspace, layout string) {
	m.dispatch(func() {
		s := m.state
		prev := s.FocusedWorkspace
		prevOutput := s.FocusedOutput
		if workspaces != nil {
			s.Workspaces = workspaces
		}
		next := focusedWorkspaceIndex(s.Workspaces)
		s.FocusedWorkspace = next
		if next >= 0 {
			if oi := s.outputIndex(s.Workspaces[next].Output); oi >= 0 {
				s.FocusedOutput = oi
			}
		}
		if change != "focus" {
			// init/empty/rename/move/urgent reshape the list without
			// moving focus; prev == next signals that to hooks.
			prev = next
		}
		for _, h := range m.hooks {
			h.WorkspaceChange(s, prev, next)
		}
		if s.FocusedOutput != prevOutput {
			for _, h := range m.hooks {
				h.ScreenChange(s, s.FocusedOutput)
			}
		}
		m.noteLayout(layout)
	})
}

// noteLayout records a freshly fetched focused-workspace layout, fanning
// LayoutChange when it differs from the tracked one. Must run inside
// dispatch.
func (m *Monitor) noteLayout(layout string) {
	if layout == "" || layout == m.state.Layout {
		return
	}
	m.state.Layout = layout
	for _, h := range m.hooks {
		h.LayoutChange(m.state, m.state.FocusedWorkspace, m.state.FocusedOutput)
	}
}

// eventHandler adapts sway's callback interface to the Monitor.
type eventHandler struct {
	sway.EventHandler
	m *Monitor
}

func (h *eventHandler) Window(ctx context.Context, e sway.WindowEvent) {
	change := string(e.Change)
	switch change {
	case "new", "close", "title", "focus":
	default:
		return
	}
	layout := h.m.fetchLayout(ctx, h.m.fetchWorkspaces(ctx))
	h.m.applyWindow(change, ClientID(e.Container.ID), e.Container.Name, layout)
}

func (h *eventHandler) Workspace(ctx context.Context, e sway.WorkspaceEvent) {
	workspaces := h.m.fetchWorkspaces(ctx)
	layout := h.m.fetchLayout(ctx, workspaces)
	h.m.applyWorkspace(string(e.Change), workspaces, layout)
}

func (h *eventHandler) Shutdown(ctx context.Context, e sway.ShutdownEvent) {
	log.Printf("sway is shutting down (%s)", string(e.Change))
	if h.m.onQuit != nil {
		h.m.dispatch(h.m.onQuit)
	}
}

// fetchWorkspaces queries the current workspace list, returning nil on
// failure so stale state is kept.
func (m *Monitor) fetchWorkspaces(ctx context.Context) []Workspace {
	swayWS, err := m.client.GetWorkspaces(ctx)
	if err != nil {
		log.Printf("failed to get workspaces from sway: %v", err)
		return nil
	}
	workspaces := make([]Workspace, len(swayWS))
	for i, ws := range swayWS {
		workspaces[i] = Workspace{
			Num:     int(ws.Num),
			Name:    ws.Name,
			Output:  ws.Output,
			Focused: ws.Focused,
			Visible: ws.Visible,
			Urgent:  ws.Urgent,
		}
	}
	return workspaces
}

// fetchOutputs queries the names of the active outputs.
func (m *Monitor) fetchOutputs(ctx context.Context) []string {
	outputs, err := m.client.GetOutputs(ctx)
	if err != nil {
		log.Printf("failed to get outputs from sway: %v", err)
		return nil
	}
	names := make([]string, 0, len(outputs))
	for _, o := range outputs {
		if o.Active {
			names = append(names, o.Name)
		}
	}
	return names
}

// fetchLayout returns the layout of the focused workspace, or "".
func (m *Monitor) fetchLayout(ctx context.Context, workspaces []Workspace) string {
	name := ""
	for _, ws := range workspaces {
		if ws.Focused {
			name = ws.Name
			break
		}
	}
	if name == "" {
		return ""
	}
	root, err := m.client.GetTree(ctx)
	if err != nil {
		log.Printf("failed to get tree from sway: %v", err)
		return ""
	}
	return workspaceLayout(root, name)
}

// fetchViews walks the tree and returns every view in it.
func (m *Monitor) fetchViews(ctx context.Context) []view {
	root, err := m.client.GetTree(ctx)
	if err != nil {
		log.Printf("failed to get tree from sway: %v", err)
		return nil
	}
	return collectViews(root, "", nil)
}

// view is a window discovered in the sway tree.
type view struct {
	id        ClientID
	name      string
	workspace string
	focused   bool
}

// workspaceLayout finds the named workspace node and returns its layout.
func workspaceLayout(n *sway.Node, name string) string {
	if n == nil {
		return ""
	}
	if n.Type == "workspace" && n.Name == name {
		return string(n.Layout)
	}
	for _, child := range n.Nodes {
		if l := workspaceLayout(child, name); l != "" {
			return l
		}
	}
	return ""
}

// collectViews appends every view beneath n. ws carries the name of the
// enclosing workspace.
func collectViews(n *sway.Node, ws string, views []view) []view {
	if n == nil {
		return views
	}
	if n.Type == "workspace" {
		ws = n.Name
	}
	if len(n.Nodes) == 0 && len(n.FloatingNodes) == 0 &&
		(n.Type == "con" || n.Type == "floating_con") {
		return append(views, view{
			id:        ClientID(n.ID),
			name:      n.Name,
			workspace: ws,
			focused:   n.Focused,
		})
	}
	for _, child := range n.Nodes {
		views = collectViews(child, ws, views)
	}
	for _, child := range n.FloatingNodes {
		views = collectViews(child, ws, views)
	}
	return views
}

// focusedWorkspaceIndex returns the index of the focused workspace, or -1.
func focusedWorkspaceIndex(workspaces []Workspace) int {
	for i, ws := range workspaces {
		if ws.Focused {
			return i
		}
	}
	return -1
}
