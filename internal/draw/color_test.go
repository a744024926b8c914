package draw

import (
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	testCases := []struct {
		in   string
		want Color
	}{
		{"#000000", Color{0, 0, 0, 1}},
		{"#ffffff", Color{1, 1, 1, 1}},
		{"#ff0000", Color{1, 0, 0, 1}},
		{"#0e1419", Color{14.0 / 255, 20.0 / 255, 25.0 / 255, 1}},
		{"#fff", Color{1, 1, 1, 1}},
		{"#f00", Color{1, 0, 0, 1}},
		{"#ffffff80", Color{1, 1, 1, 128.0 / 255}},
		{"#00000000", Color{0, 0, 0, 0}},
	}

	for _, tc := range testCases {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tc.in, err)
			continue
		}
		if !colorNear(got, tc.want) {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "ffffff", "#", "#ff", "#fffff", "#gggggg", "#ffffffffff", "red"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q): expected error, got nil", in)
		}
	}
}

func TestColorString(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"#0e1419", "#0e1419"},
		{"#fff", "#ffffff"},
		{"#ffffff80", "#ffffff80"},
	}

	for _, tc := range testCases {
		c, err := ParseColor(tc.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tc.in, err)
		}
		if got := c.String(); got != tc.want {
			t.Errorf("ParseColor(%q).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func colorNear(a, b Color) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps &&
		math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps &&
		math.Abs(a.A-b.A) < eps
}
