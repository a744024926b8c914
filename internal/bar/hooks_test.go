package bar

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"
	"testing"

	"github.com/chess10kp/strut/internal/wm"
)

// newHookBar builds a two-widget bar and clears the call log so tests see
// only the traffic caused by the event under test.
func newHookBar(t *testing.T) (*fakeDraw, []*stubWidget, *StatusBar) {
	t.Helper()
	d := newFakeDraw(1000, 1080)
	stubs := []*stubWidget{
		{log: d.log, name: "a", w: 100, h: 20},
		{log: d.log, name: "b", w: 150, h: 20},
	}
	bar, err := New(d, Config{Height: 30, Widgets: asWidgets(stubs)})
	if err != nil {
		t.Fatalf("Failed to create bar: %v", err)
	}
	d.log.reset()
	return d, stubs, bar
}

func TestHooksFanOutToEveryWidget(t *testing.T) {
	st := wm.NewState()
	tests := []struct {
		name string
		fire func(bar *StatusBar)
		want string
	}{
		{
			name: "new client",
			fire: func(bar *StatusBar) { bar.NewClient(st, &wm.Client{ID: 5, Name: "term"}) },
			want: "new_client:%s:5",
		},
		{
			name: "remove client",
			fire: func(bar *StatusBar) { bar.RemoveClient(st, 5) },
			want: "remove_client:%s:5",
		},
		{
			name: "client name updated",
			fire: func(bar *StatusBar) { bar.ClientNameUpdated(st, 5, "vim", false) },
			want: "name_updated:%s:5:vim",
		},
		{
			name: "layout change",
			fire: func(bar *StatusBar) { bar.LayoutChange(st, 2, 0) },
			want: "layout_change:%s:2:0",
		},
		{
			name: "workspace change",
			fire: func(bar *StatusBar) { bar.WorkspaceChange(st, 1, 3) },
			want: "workspace:%s:1:3",
		},
		{
			name: "screen change",
			fire: func(bar *StatusBar) { bar.ScreenChange(st, 1) },
			want: "screen_change:%s:1",
		},
		{
			name: "focus change",
			fire: func(bar *StatusBar) { bar.FocusChange(st, 9) },
			want: "focus:%s:9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _, bar := newHookBar(t)
			tt.fire(bar)
			want := []string{
				fmt.Sprintf(tt.want, "a"),
				fmt.Sprintf(tt.want, "b"),
			}
			if !reflect.DeepEqual(d.log.calls, want) {
				t.Errorf("Expected calls %v, got %v", want, d.log.calls)
			}
		})
	}
}

func TestHookNoRedrawWhenClean(t *testing.T) {
	d, _, bar := newHookBar(t)

	bar.FocusChange(wm.NewState(), 9)

	for _, c := range d.log.calls {
		if strings.HasPrefix(c, "context_for") || strings.HasPrefix(c, "draw") {
			t.Fatalf("Expected no drawing for a clean bar, got %v", d.log.calls)
		}
	}
}

func TestHookSingleRedrawWhenDirty(t *testing.T) {
	d, stubs, bar := newHookBar(t)
	stubs[0].dirty = true
	stubs[1].dirty = true

	bar.FocusChange(wm.NewState(), 9)

	redraws := 0
	for _, c := range d.log.calls {
		if c == "context_for:42" {
			redraws++
		}
	}
	if redraws != 1 {
		t.Errorf("Expected exactly one redraw, got %d (%v)", redraws, d.log.calls)
	}
}

func TestHookObserversRunBeforeRedraw(t *testing.T) {
	d, stubs, bar := newHookBar(t)
	stubs[1].dirty = true

	bar.FocusChange(wm.NewState(), 9)

	if len(d.log.calls) < 3 {
		t.Fatalf("Expected fan-out followed by a redraw, got %v", d.log.calls)
	}
	want := []string{"focus:a:9", "focus:b:9", "context_for:42"}
	if !reflect.DeepEqual(d.log.calls[:3], want) {
		t.Errorf("Expected prefix %v, got %v", want, d.log.calls[:3])
	}
}

func TestHookRedrawFailureSwallowed(t *testing.T) {
	d, stubs, bar := newHookBar(t)
	stubs[0].dirty = true
	d.ctxErr = errors.New("surface lost")

	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	// Must not panic or propagate; the bar keeps its stale contents.
	bar.FocusChange(wm.NewState(), 9)

	if !strings.Contains(buf.String(), "unable to redraw bar") {
		t.Errorf("Expected redraw failure to be logged, got %q", buf.String())
	}
}
