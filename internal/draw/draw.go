// Package draw defines the capability boundary between the bar and the
// window system: a backend that owns surfaces and fonts, and a per-surface
// drawing context for paint primitives. Concrete implementations live in
// their own packages (internal/gtkdraw) and are injected at construction.
package draw

import "errors"

var (
	ErrScreenQuery        = errors.New("failed to query screen size")
	ErrWindowCreation     = errors.New("failed to create window")
	ErrContextAcquisition = errors.New("failed to acquire drawing context")
)

// SurfaceID is an opaque window-system handle for a surface created by a
// Draw backend.
type SurfaceID uint32

// WindowKind selects the class of window requested from the backend.
type WindowKind int

const (
	// WindowNormal is an ordinary managed window.
	WindowNormal WindowKind = iota
	// WindowDock is a fixed, always-visible panel surface that reserves
	// screen space.
	WindowDock
)

func (k WindowKind) String() string {
	switch k {
	case WindowNormal:
		return "normal"
	case WindowDock:
		return "dock"
	default:
		return "unknown"
	}
}

// Extent is the (width, height) footprint of a widget or a piece of text.
type Extent struct {
	W float64
	H float64
}

// Draw is the surface-providing half of the backend: screen geometry,
// window creation, font registration and frame presentation.
type Draw interface {
	// ScreenSize reports the pixel size of the screen at the given index.
	ScreenSize(index int) (int, int, error)

	// NewWindow creates a window of the given kind and geometry and
	// returns its surface handle.
	NewWindow(kind WindowKind, x, y, w, h int) (SurfaceID, error)

	// RegisterFont makes a font available to drawing contexts under the
	// given name. Registration is best effort; a missing font falls back
	// to whatever the backend substitutes.
	RegisterFont(name string)

	// ContextFor returns a drawing context targeting the surface. The
	// context is only valid until the next Flush.
	ContextFor(id SurfaceID) (Context, error)

	// Flush presents everything drawn since the last call.
	Flush()
}

// Context is the paint half of the backend. All coordinates are relative
// to the context's current origin, which starts at the surface's top-left
// corner and moves only through Translate.
type Context interface {
	// SetColor sets the color used by subsequent paint calls.
	SetColor(c Color)

	// FillRect paints a filled rectangle.
	FillRect(x, y, w, h float64)

	// Translate moves the current origin by (dx, dy).
	Translate(dx, dy float64)

	// Font selects the face and size used by Text and TextExtent.
	Font(name string, size float64)

	// TextExtent measures s in the current font without painting it.
	TextExtent(s string) (Extent, error)

	// Text paints s offset by (dx, dy) from the current origin without
	// moving the origin, and returns the horizontal advance.
	Text(s string, dx, dy float64) (float64, error)
}
