package layout

import "testing"

func TestPlanGrid_ThresholdSelection(t *testing.T) {
	spec := GridSpec{ContainerWidth: 375, CardWidth: 188, Gap: 16, MaxRows: 2}

	plan := PlanGrid(spec, 5)
	if plan.CardsPerRow != 1 {
		t.Fatalf("CardsPerRow = %d, want 1", plan.CardsPerRow)
	}
	if plan.MaxVisible != 2 {
		t.Fatalf("MaxVisible = %d, want 2", plan.MaxVisible)
	}
	if plan.Mode != GridScroll {
		t.Fatal("5 children over 2 visible should scroll")
	}

	plan = PlanGrid(spec, 2)
	if plan.Mode != GridFixed {
		t.Fatal("2 children within 2 visible should stay fixed")
	}
}

func TestPlanGrid_WideContainer(t *testing.T) {
	spec := GridSpec{ContainerWidth: 1024, CardWidth: 188, Gap: 16, MaxRows: 2}
	plan := PlanGrid(spec, 9)
	if plan.CardsPerRow != 5 {
		t.Fatalf("CardsPerRow = %d, want 5", plan.CardsPerRow)
	}
	if plan.Mode != GridFixed {
		t.Fatal("9 children within 10 visible should stay fixed")
	}
}

func TestPlanGrid_DegenerateWidth(t *testing.T) {
	spec := GridSpec{ContainerWidth: 0, CardWidth: 188, Gap: 16, MaxRows: 2}

	plan := PlanGrid(spec, 3)
	if plan.CardsPerRow != 0 {
		t.Fatalf("CardsPerRow = %d, want 0 for unmeasured container", plan.CardsPerRow)
	}
	if plan.Mode != GridScroll {
		t.Fatal("unmeasured container with children should prefer the strip")
	}

	plan = PlanGrid(spec, 0)
	if plan.Mode != GridFixed {
		t.Fatal("no children never scrolls")
	}
}

func TestScrollState_Affordances(t *testing.T) {
	s := ScrollState{Offset: 0, ContentWidth: 600, ViewportWidth: 200}
	if s.CanScrollLeft() {
		t.Fatal("at origin, left affordance must be off")
	}
	if !s.CanScrollRight() {
		t.Fatal("content wider than viewport, right affordance must be on")
	}

	s.Offset = 400 // == max offset
	if s.CanScrollRight() {
		t.Fatal("at the end, right affordance must be off")
	}
	if !s.CanScrollLeft() {
		t.Fatal("at the end, left affordance must be on")
	}

	// 1-cell tolerance at both edges.
	s.Offset = 1
	if s.CanScrollLeft() {
		t.Fatal("offset within tolerance counts as the origin")
	}
	s.Offset = 399
	if s.CanScrollRight() {
		t.Fatal("offset within tolerance counts as the end")
	}
}

func TestScrollState_StepClampsWithoutWraparound(t *testing.T) {
	s := ScrollState{Offset: 0, ContentWidth: 600, ViewportWidth: 200}

	s = s.Step(1, 90, 10) // two cards = 200
	if s.Offset != 200 {
		t.Fatalf("Offset = %d, want 200", s.Offset)
	}

	s = s.Step(1, 90, 10)
	s = s.Step(1, 90, 10) // would pass the end; clamps
	if s.Offset != 400 {
		t.Fatalf("Offset = %d, want clamp at 400", s.Offset)
	}

	s = s.Step(-1, 90, 10)
	s = s.Step(-1, 90, 10)
	s = s.Step(-1, 90, 10) // would pass the origin; clamps
	if s.Offset != 0 {
		t.Fatalf("Offset = %d, want clamp at 0", s.Offset)
	}
}
