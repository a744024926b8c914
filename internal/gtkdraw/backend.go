// Package gtkdraw implements the draw interfaces on GTK. Each surface is
// a window holding a DrawingArea backed by an offscreen cairo image
// buffer: contexts paint into the buffer, Flush queues a redraw, and the
// GTK draw signal blits the buffer to the screen. Dock windows become
// layer shell surfaces anchored to a screen edge with an exclusive zone.
package gtkdraw

import (
	"fmt"
	"unsafe"

	"github.com/gotk3/gotk3/cairo"
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/chess10kp/strut/internal/draw"
	"github.com/chess10kp/strut/internal/layer"
)

const (
	defaultFontSize = 14

	// Text measurement dominates layout time, so extents are memoized
	// per face, size and string.
	extentCacheSize = 1024
)

type extentKey struct {
	font string
	size float64
	text string
}

type window struct {
	win     *gtk.Window
	area    *gtk.DrawingArea
	surface *cairo.Surface
	w, h    int
}

// Backend implements draw.Draw. It is not safe for concurrent use; all
// calls must happen on the GTK main loop.
type Backend struct {
	screen  int
	fonts   []string
	windows map[draw.SurfaceID]*window
	nextID  draw.SurfaceID
	extents *lru.Cache[extentKey, draw.Extent]
}

// New returns a backend whose windows are pinned to the monitor at the
// given index. gtk.Init must have been called first.
func New(screen int) (*Backend, error) {
	extents, err := lru.New[extentKey, draw.Extent](extentCacheSize)
	if err != nil {
		return nil, err
	}
	return &Backend{
		screen:  screen,
		windows: make(map[draw.SurfaceID]*window),
		extents: extents,
	}, nil
}

// ScreenSize reports the pixel geometry of the monitor at index.
func (b *Backend) ScreenSize(index int) (int, int, error) {
	monitor, err := monitorAt(index)
	if err != nil {
		return 0, 0, err
	}
	geo := monitor.GetGeometry()
	return geo.GetWidth(), geo.GetHeight(), nil
}

// NewWindow creates a window of the given kind and geometry. Dock windows
// are anchored to the nearest horizontal screen edge via layer shell;
// normal windows are simply moved to (x, y).
func (b *Backend) NewWindow(kind draw.WindowKind, x, y, w, h int) (draw.SurfaceID, error) {
	win, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		return 0, fmt.Errorf("failed to create window: %w", err)
	}
	win.SetTitle("strut")
	win.SetDecorated(false)
	win.SetResizable(false)
	win.SetSizeRequest(w, h)

	area, err := gtk.DrawingAreaNew()
	if err != nil {
		win.Destroy()
		return 0, fmt.Errorf("failed to create drawing area: %w", err)
	}
	win.Add(area)

	surface := cairo.CreateImageSurface(cairo.FORMAT_ARGB32, w, h)
	area.Connect("draw", func(_ *gtk.DrawingArea, cr *cairo.Context) {
		cr.SetSourceSurface(surface, 0, 0)
		cr.Paint()
	})

	if kind == draw.WindowDock {
		if err := b.dockWindow(win, y, h); err != nil {
			win.Destroy()
			return 0, err
		}
	} else {
		win.Move(x, y)
	}

	win.ShowAll()

	b.nextID++
	id := b.nextID
	b.windows[id] = &window{win: win, area: area, surface: surface, w: w, h: h}
	return id, nil
}

// dockWindow configures a window as a layer shell panel. Layer shell
// places surfaces by edge anchoring, so the requested origin is mapped to
// an edge plus margin: a window ending at the bottom of the screen hangs
// from the bottom edge, everything else from the top with its y origin as
// the margin. Margins are not clamped, so an oversized panel overflows
// the screen instead of shrinking.
func (b *Backend) dockWindow(win *gtk.Window, y, h int) error {
	_, sh, err := b.ScreenSize(b.screen)
	if err != nil {
		return err
	}

	ptr := unsafe.Pointer(win.GObject)
	layer.InitForWindow(ptr)
	layer.SetLayer(ptr, layer.LayerTop)
	layer.SetAnchor(ptr, layer.EdgeLeft, true)
	layer.SetAnchor(ptr, layer.EdgeRight, true)
	if y+h >= sh {
		layer.SetAnchor(ptr, layer.EdgeBottom, true)
		layer.SetMargin(ptr, layer.EdgeBottom, sh-(y+h))
	} else {
		layer.SetAnchor(ptr, layer.EdgeTop, true)
		layer.SetMargin(ptr, layer.EdgeTop, y)
	}
	layer.SetExclusiveZone(ptr, h)
	layer.SetKeyboardMode(ptr, layer.KeyboardModeNone)

	if monitor, err := monitorAt(b.screen); err == nil {
		layer.SetMonitor(ptr, unsafe.Pointer(monitor.GObject))
	}
	return nil
}

// RegisterFont records a face for use as the fallback when a context
// selects no font. Cairo resolves faces through fontconfig at draw time,
// so registration cannot fail; unknown names get a substitute.
func (b *Backend) RegisterFont(name string) {
	for _, f := range b.fonts {
		if f == name {
			return
		}
	}
	b.fonts = append(b.fonts, name)
}

// ContextFor returns a context painting into the surface's offscreen
// buffer. Nothing reaches the screen until Flush.
func (b *Backend) ContextFor(id draw.SurfaceID) (draw.Context, error) {
	w, ok := b.windows[id]
	if !ok {
		return nil, fmt.Errorf("no surface with id %d", id)
	}
	cr := cairo.Create(w.surface)
	if status := cr.Status(); status != cairo.STATUS_SUCCESS {
		return nil, fmt.Errorf("cairo error status %d", status)
	}
	ctx := &context{cr: cr, backend: b}
	ctx.Font(b.defaultFont(), defaultFontSize)
	return ctx, nil
}

// Flush presents every surface's offscreen buffer.
func (b *Backend) Flush() {
	for _, w := range b.windows {
		w.surface.Flush()
		w.area.QueueDraw()
	}
}

// Close destroys every window created by the backend.
func (b *Backend) Close() {
	for id, w := range b.windows {
		w.win.Destroy()
		delete(b.windows, id)
	}
}

func (b *Backend) defaultFont() string {
	if len(b.fonts) > 0 {
		return b.fonts[0]
	}
	return "monospace"
}

func monitorAt(index int) (*gdk.Monitor, error) {
	display, err := gdk.DisplayGetDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to get default display: %w", err)
	}
	if n := display.GetNMonitors(); index < 0 || index >= n {
		return nil, fmt.Errorf("no monitor at index %d (%d available)", index, n)
	}
	monitor, err := display.GetMonitor(index)
	if err != nil {
		return nil, fmt.Errorf("failed to get monitor %d: %w", index, err)
	}
	return monitor, nil
}
