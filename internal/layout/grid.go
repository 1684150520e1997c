package layout

// GridMode selects how a card collection is rendered.
type GridMode int

const (
	// GridFixed renders up to MaxRows full rows.
	GridFixed GridMode = iota
	// GridScroll renders a single horizontally scrolling row.
	GridScroll
)

// GridSpec is the input geometry for a card grid.
type GridSpec struct {
	ContainerWidth int
	CardWidth      int
	Gap            int
	MaxRows        int
}

// GridPlan is the computed layout decision.
type GridPlan struct {
	CardsPerRow int
	MaxVisible  int
	Mode        GridMode
}

// PlanGrid decides between the fixed grid and the scroll strip.
//
// cardsPerRow = floor((containerWidth+gap)/(cardWidth+gap)); the strip is
// chosen when childCount exceeds cardsPerRow*maxRows. A container that has
// not been laid out yet (width <= 0) yields zero cards per row and prefers
// the strip whenever there is anything to show.
func PlanGrid(spec GridSpec, childCount int) GridPlan {
	plan := GridPlan{}
	if spec.CardWidth+spec.Gap > 0 && spec.ContainerWidth > 0 {
		plan.CardsPerRow = (spec.ContainerWidth + spec.Gap) / (spec.CardWidth + spec.Gap)
	}
	plan.MaxVisible = plan.CardsPerRow * spec.MaxRows

	if childCount > plan.MaxVisible {
		plan.Mode = GridScroll
	}
	return plan
}

// scrollTolerance absorbs rounding at the strip edges.
const scrollTolerance = 1

// ScrollState tracks a horizontal strip's offset and affordances.
type ScrollState struct {
	Offset        int
	ContentWidth  int
	ViewportWidth int
}

// maxOffset is the right-most reachable offset.
func (s ScrollState) maxOffset() int {
	m := s.ContentWidth - s.ViewportWidth
	if m < 0 {
		return 0
	}
	return m
}

// CanScrollLeft reports whether the strip can move towards the start.
func (s ScrollState) CanScrollLeft() bool {
	return s.Offset > scrollTolerance
}

// CanScrollRight reports whether the strip can move towards the end.
func (s ScrollState) CanScrollRight() bool {
	return s.Offset < s.maxOffset()-scrollTolerance
}

// Step advances (dir > 0) or retreats (dir < 0) by two cards' worth,
// clamped to the strip bounds. No wraparound.
func (s ScrollState) Step(dir int, cardWidth, gap int) ScrollState {
	step := 2 * (cardWidth + gap)
	next := s
	if dir > 0 {
		next.Offset += step
	} else if dir < 0 {
		next.Offset -= step
	}
	if next.Offset < 0 {
		next.Offset = 0
	}
	if m := s.maxOffset(); next.Offset > m {
		next.Offset = m
	}
	return next
}
