package layout

// Panel geometry, in terminal cells.
const (
	LeftMinWidth  = 20
	LeftMaxWidth  = 40
	LeftIconWidth = 6
	// SnapThreshold is the pointer column at or below which the left
	// panel snaps to icon-only mode, regardless of the dragged delta.
	SnapThreshold = 8

	RightMinWidth = 24
	RightMaxWidth = 50
)

// Side identifies which panel a resizer controls.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Resizer implements the drag protocol for one panel edge.
//
// During a drag the live width tracks the pointer and is applied to the
// view directly; the committed width and icon mode only change on release.
// The pointer origin and panel anchor are read once at drag start so DOM-
// style feedback loops cannot occur mid-gesture.
type Resizer struct {
	side      Side
	min, max  int
	iconWidth int // zero disables icon mode

	width    int
	iconMode bool

	dragging bool
	anchor   int // panel left edge, or right-edge anchor for the right panel
	live     int
}

// NewLeftResizer returns the sidebar resizer at its default width.
func NewLeftResizer() *Resizer {
	return &Resizer{
		side:      SideLeft,
		min:       LeftMinWidth,
		max:       LeftMaxWidth,
		iconWidth: LeftIconWidth,
		width:     LeftMinWidth + 8,
	}
}

// NewRightResizer returns the now-playing panel resizer at its default width.
func NewRightResizer() *Resizer {
	return &Resizer{
		side:  SideRight,
		min:   RightMinWidth,
		max:   RightMaxWidth,
		width: RightMinWidth + 6,
	}
}

// Width returns the committed width, honoring icon mode.
func (r *Resizer) Width() int {
	if r.iconMode {
		return r.iconWidth
	}
	return r.width
}

// IconMode reports whether the panel is collapsed to icons.
func (r *Resizer) IconMode() bool {
	return r.iconMode
}

// Dragging reports whether a gesture is live.
func (r *Resizer) Dragging() bool {
	return r.dragging
}

// DragStart begins a gesture. anchor is the panel's left edge for the left
// panel, or the fixed right-edge column for the right panel; it is sampled
// once and not re-measured while the gesture lasts.
func (r *Resizer) DragStart(anchor int) {
	r.dragging = true
	r.anchor = anchor
	r.live = r.Width()
}

// DragMove computes the live width for the current pointer position. The
// returned value is meant to be applied to the view immediately, without
// touching committed state.
func (r *Resizer) DragMove(pointerX int) int {
	if !r.dragging {
		return r.Width()
	}

	candidate := r.candidate(pointerX)

	if r.snapZone(pointerX) {
		r.live = r.iconWidth
		return r.live
	}

	if r.iconMode {
		// Un-snap: track the pointer exactly until release so the panel
		// grows smoothly out of icon mode; the minimum applies at commit.
		if candidate > r.max {
			candidate = r.max
		}
		if candidate < r.iconWidth {
			candidate = r.iconWidth
		}
		r.live = candidate
		return r.live
	}

	r.live = clamp(candidate, r.min, r.max)
	return r.live
}

// DragEnd commits the gesture. Safe to call when no drag is live, so a
// release delivered anywhere (or teardown) always cleans up.
func (r *Resizer) DragEnd(pointerX int) {
	if !r.dragging {
		return
	}
	r.dragging = false

	if r.snapZone(pointerX) {
		r.iconMode = true
		return
	}

	r.iconMode = false
	r.width = clamp(r.candidate(pointerX), r.min, r.max)
}

// Cancel aborts a gesture without committing, for component teardown.
func (r *Resizer) Cancel() {
	r.dragging = false
}

func (r *Resizer) candidate(pointerX int) int {
	if r.side == SideLeft {
		return pointerX - r.anchor
	}
	return r.anchor - pointerX
}

func (r *Resizer) snapZone(pointerX int) bool {
	return r.side == SideLeft && r.iconWidth > 0 && pointerX <= SnapThreshold
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
