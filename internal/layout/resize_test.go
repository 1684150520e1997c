package layout

import "testing"

func TestResizer_ClampsToMaxOnRelease(t *testing.T) {
	r := NewLeftResizer()
	r.DragStart(0)

	live := r.DragMove(LeftMaxWidth + 30)
	if live != LeftMaxWidth {
		t.Fatalf("live width = %d, want clamp at %d", live, LeftMaxWidth)
	}

	r.DragEnd(LeftMaxWidth + 30)
	if r.Width() != LeftMaxWidth {
		t.Fatalf("committed width = %d, want %d", r.Width(), LeftMaxWidth)
	}
	if r.IconMode() {
		t.Fatal("max-width drag must not enter icon mode")
	}
}

func TestResizer_ClampsToMin(t *testing.T) {
	r := NewLeftResizer()
	r.DragStart(0)

	// Above the snap zone but below the minimum width.
	live := r.DragMove(SnapThreshold + 4)
	if live != LeftMinWidth {
		t.Fatalf("live width = %d, want clamp at %d", live, LeftMinWidth)
	}

	r.DragEnd(SnapThreshold + 4)
	if r.Width() != LeftMinWidth || r.IconMode() {
		t.Fatalf("commit = %d iconMode=%v, want %d/false", r.Width(), r.IconMode(), LeftMinWidth)
	}
}

func TestResizer_SnapToIconMode(t *testing.T) {
	r := NewLeftResizer()
	r.DragStart(0)

	if live := r.DragMove(SnapThreshold); live != LeftIconWidth {
		t.Fatalf("live width in snap zone = %d, want %d", live, LeftIconWidth)
	}

	r.DragEnd(SnapThreshold)
	if !r.IconMode() {
		t.Fatal("release in snap zone must commit icon mode")
	}
	if r.Width() != LeftIconWidth {
		t.Fatalf("committed width = %d, want %d", r.Width(), LeftIconWidth)
	}
}

func TestResizer_UnSnapBypassesMinimumUntilRelease(t *testing.T) {
	r := NewLeftResizer()
	r.DragStart(0)
	r.DragEnd(SnapThreshold) // now in icon mode

	r.DragStart(0)

	// Pointer re-enters the normal zone below the minimum: live width
	// tracks the pointer exactly.
	live := r.DragMove(12)
	if live != 12 {
		t.Fatalf("un-snap live width = %d, want 12", live)
	}

	// The minimum clamp applies only at release.
	r.DragEnd(12)
	if r.IconMode() {
		t.Fatal("release above snap zone must leave icon mode")
	}
	if r.Width() != LeftMinWidth {
		t.Fatalf("committed width = %d, want min %d", r.Width(), LeftMinWidth)
	}
}

func TestResizer_RightPanelMirrorsFromAnchor(t *testing.T) {
	r := NewRightResizer()
	r.DragStart(120) // right edge at column 120

	if live := r.DragMove(90); live != 30 {
		t.Fatalf("live width = %d, want 30", live)
	}

	r.DragEnd(120 - RightMaxWidth - 10)
	if r.Width() != RightMaxWidth {
		t.Fatalf("committed width = %d, want %d", r.Width(), RightMaxWidth)
	}
}

func TestResizer_EndWithoutDragIsSafe(t *testing.T) {
	r := NewLeftResizer()
	before := r.Width()
	r.DragEnd(0) // release with no live gesture: cleanup only
	if r.Width() != before || r.Dragging() {
		t.Fatalf("stray release mutated state: width=%d dragging=%v", r.Width(), r.Dragging())
	}
}

func TestResizer_CancelAbortsWithoutCommit(t *testing.T) {
	r := NewLeftResizer()
	before := r.Width()
	r.DragStart(0)
	r.DragMove(LeftMaxWidth)
	r.Cancel()
	if r.Width() != before {
		t.Fatalf("Cancel committed width %d, want %d", r.Width(), before)
	}
	if r.Dragging() {
		t.Fatal("Cancel must clear the drag flag")
	}
}
