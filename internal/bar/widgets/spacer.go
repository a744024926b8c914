package widgets

import (
	"github.com/chess10kp/strut/internal/draw"
)

// Spacer draws nothing. Flagged greedy it pushes its neighbours apart,
// which is how right-aligned widget groups are built.
type Spacer struct {
	Base
}

func NewSpacer(greedy bool) *Spacer {
	s := &Spacer{}
	s.greedy = greedy
	return s
}

func (s *Spacer) CurrentExtent(ctx draw.Context, h float64) (draw.Extent, error) {
	return draw.Extent{W: 0, H: h}, nil
}

func (s *Spacer) Draw(ctx draw.Context, w, h float64) error {
	return nil
}
