// Package layer wraps the slice of gtk-layer-shell used to turn a GTK
// window into a wlr-layer-shell surface: layer selection, edge anchoring,
// margins and exclusive zones. Callers pass the window's GObject pointer.
package layer

/*
#cgo pkg-config: gtk-layer-shell-0
#include <gtk-layer-shell.h>
*/
import "C"
import "unsafe"

// Layer is the compositor stacking layer of a surface.
type Layer int

const (
	LayerBackground Layer = 0
	LayerBottom     Layer = 1
	LayerTop        Layer = 2
	LayerOverlay    Layer = 3
)

// Edge is a screen edge a surface can anchor to.
type Edge int

const (
	EdgeLeft   Edge = 0
	EdgeRight  Edge = 1
	EdgeTop    Edge = 2
	EdgeBottom Edge = 3
)

// KeyboardMode is the keyboard focus behavior of a surface.
type KeyboardMode int

const (
	KeyboardModeNone      KeyboardMode = 0
	KeyboardModeExclusive KeyboardMode = 1
	KeyboardModeOnDemand  KeyboardMode = 2
)

// InitForWindow marks a window as a layer shell surface. Must be called
// before the window is mapped.
func InitForWindow(window unsafe.Pointer) {
	C.gtk_layer_init_for_window((*C.GtkWindow)(window))
}

// SetLayer sets the stacking layer of a layer shell surface.
func SetLayer(window unsafe.Pointer, layer Layer) {
	C.gtk_layer_set_layer((*C.GtkWindow)(window), C.GtkLayerShellLayer(layer))
}

// SetAnchor anchors or releases one edge of the surface.
func SetAnchor(window unsafe.Pointer, edge Edge, anchorTo bool) {
	var anchor C.gboolean
	if anchorTo {
		anchor = 1
	}
	C.gtk_layer_set_anchor((*C.GtkWindow)(window), C.GtkLayerShellEdge(edge), anchor)
}

// SetMargin offsets the surface from an anchored edge.
func SetMargin(window unsafe.Pointer, edge Edge, margin int) {
	C.gtk_layer_set_margin((*C.GtkWindow)(window), C.GtkLayerShellEdge(edge), C.int(margin))
}

// SetExclusiveZone reserves screen space so tiled windows do not overlap
// the surface.
func SetExclusiveZone(window unsafe.Pointer, zone int) {
	C.gtk_layer_set_exclusive_zone((*C.GtkWindow)(window), C.int(zone))
}

// SetKeyboardMode sets the keyboard interactivity of the surface.
func SetKeyboardMode(window unsafe.Pointer, mode KeyboardMode) {
	C.gtk_layer_set_keyboard_mode((*C.GtkWindow)(window), C.GtkLayerShellKeyboardMode(mode))
}

// SetMonitor pins the surface to a specific output instead of letting the
// compositor choose one.
func SetMonitor(window unsafe.Pointer, monitor unsafe.Pointer) {
	C.gtk_layer_set_monitor((*C.GtkWindow)(window), (*C.GdkMonitor)(monitor))
}
