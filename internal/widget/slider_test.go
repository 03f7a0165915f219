package widget

import (
	"math"
	"testing"
)

func TestSliderDefaultsToMidpoint(t *testing.T) {
	s := NewSlider()
	if s.Value() != 50 {
		t.Fatalf("value = %v, want 50", s.Value())
	}
}

func TestSliderSetValueClampsAndRounds(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{73, 73},
		{0.7304, 0.73},
		{-10, 0},
		{150, 100},
		{33.33333, 33.333},
	}
	for _, tc := range tests {
		s := NewSlider()
		if got := s.SetValue(tc.in); got != tc.want {
			t.Fatalf("SetValue(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSliderSetValueIgnoresJitter(t *testing.T) {
	s := NewSlider()
	s.SetValue(40)
	if got := s.SetValue(40.0004); got != 40 {
		t.Fatalf("value = %v, sub-0.001 delta must be ignored", got)
	}
}

func TestSliderSetValueIgnoresNaN(t *testing.T) {
	s := NewSlider()
	if got := s.SetValue(math.NaN()); got != 50 {
		t.Fatalf("value = %v, NaN must leave the value unchanged", got)
	}
}

func TestSliderPointerDownGuards(t *testing.T) {
	primary := PointerEvent{PointerID: 1, IsPrimary: true, PointerType: "mouse", Button: 0, ClientX: 30, FrameLeft: 0, FrameWidth: 100}

	s := NewSlider()
	if s.PointerDown(primary, false) {
		t.Fatalf("drag must not start without a result")
	}

	secondary := primary
	secondary.IsPrimary = false
	if s.PointerDown(secondary, true) {
		t.Fatalf("drag must not start for a non-primary pointer")
	}

	rightClick := primary
	rightClick.Button = 2
	if s.PointerDown(rightClick, true) {
		t.Fatalf("drag must not start for a secondary mouse button")
	}

	if !s.PointerDown(primary, true) {
		t.Fatalf("primary pointer with a result must start a drag")
	}
	if s.Value() != 30 {
		t.Fatalf("value = %v, want 30 after pointer down at 30%%", s.Value())
	}

	other := primary
	other.PointerID = 2
	if s.PointerDown(other, true) {
		t.Fatalf("a second pointer must not steal an active drag")
	}
}

func TestSliderPointerMoveTracksOwningPointer(t *testing.T) {
	s := NewSlider()
	down := PointerEvent{PointerID: 7, IsPrimary: true, PointerType: "touch", ClientX: 50, FrameLeft: 0, FrameWidth: 200}
	if !s.PointerDown(down, true) {
		t.Fatalf("drag should start")
	}

	move := down
	move.ClientX = 150
	if !s.PointerMove(move) {
		t.Fatalf("move from the owning pointer must apply")
	}
	if s.Value() != 75 {
		t.Fatalf("value = %v, want 75", s.Value())
	}

	stranger := move
	stranger.PointerID = 8
	stranger.ClientX = 0
	if s.PointerMove(stranger) {
		t.Fatalf("move from a different pointer must be ignored")
	}
	if s.Value() != 75 {
		t.Fatalf("value changed by a foreign pointer: %v", s.Value())
	}
}

func TestSliderPointerUpReleasesDrag(t *testing.T) {
	s := NewSlider()
	down := PointerEvent{PointerID: 3, IsPrimary: true, ClientX: 20, FrameLeft: 0, FrameWidth: 100}
	s.PointerDown(down, true)

	if s.PointerUp(99) {
		t.Fatalf("up from a different pointer must not release the drag")
	}
	if !s.Dragging() {
		t.Fatalf("drag must survive a foreign pointer up")
	}

	if !s.PointerUp(3) {
		t.Fatalf("up from the owning pointer must release")
	}
	if s.Dragging() {
		t.Fatalf("drag still active after release")
	}

	move := down
	move.ClientX = 90
	if s.PointerMove(move) {
		t.Fatalf("moves after release must be ignored")
	}
}

func TestSliderZeroWidthFrameIgnored(t *testing.T) {
	s := NewSlider()
	down := PointerEvent{PointerID: 1, IsPrimary: true, ClientX: 10, FrameLeft: 0, FrameWidth: 0}
	s.PointerDown(down, true)
	if s.Value() != 50 {
		t.Fatalf("value = %v, zero-width frame must not move the handle", s.Value())
	}
}

func TestSliderAppliedWidthAndIndicator(t *testing.T) {
	s := NewSlider()
	s.SetValue(73)

	if got := s.AppliedWidth(true); got != 73 {
		t.Fatalf("applied width = %v, want 73", got)
	}
	if got := s.AppliedWidth(false); got != 0 {
		t.Fatalf("applied width without result = %v, want 0", got)
	}
	if got := s.IndicatorLeft(true); got != 73 {
		t.Fatalf("indicator = %v, want 73", got)
	}
	if got := s.IndicatorLeft(false); got != 50 {
		t.Fatalf("indicator without result = %v, want 50", got)
	}
}

func TestSliderReset(t *testing.T) {
	s := NewSlider()
	s.PointerDown(PointerEvent{PointerID: 1, IsPrimary: true, ClientX: 80, FrameLeft: 0, FrameWidth: 100}, true)
	s.Reset()

	if s.Value() != 50 {
		t.Fatalf("value = %v, want 50 after reset", s.Value())
	}
	if s.Dragging() {
		t.Fatalf("reset must drop the active drag")
	}
}
