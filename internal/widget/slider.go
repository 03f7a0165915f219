package widget

import "math"

// Slider models the before/after comparison handle. The value is a percentage
// of the frame width revealed for the processed image. Drag input arrives as
// pointer events; the slider tracks at most one active pointer at a time.
type Slider struct {
	value         float64
	dragActive    bool
	dragPointerID int
}

const defaultSliderValue = 50

// PointerEvent carries the slider-relevant fields of a pointer event.
type PointerEvent struct {
	PointerID   int
	IsPrimary   bool
	PointerType string
	Button      int
	// Horizontal pointer position and the frame geometry it is relative to.
	ClientX    float64
	FrameLeft  float64
	FrameWidth float64
}

// NewSlider returns a slider resting at the midpoint.
func NewSlider() *Slider {
	return &Slider{value: defaultSliderValue, dragPointerID: -1}
}

// Value returns the current position in percent.
func (s *Slider) Value() float64 { return s.value }

// Dragging reports whether a pointer drag is in progress.
func (s *Slider) Dragging() bool { return s.dragActive }

func normalizeSliderValue(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return math.NaN()
	}
	clamped := math.Max(0, math.Min(100, v))
	return math.Round(clamped*1000) / 1000
}

// SetValue moves the handle. Values outside [0,100] clamp; sub-0.001 moves are
// ignored so pointer jitter does not churn the state.
func (s *Slider) SetValue(v float64) float64 {
	next := normalizeSliderValue(v)
	if math.IsNaN(next) {
		return s.value
	}
	if math.Abs(next-s.value) < 0.001 {
		return s.value
	}
	s.value = next
	return s.value
}

func (s *Slider) setFromPointer(ev PointerEvent) {
	if ev.FrameWidth <= 0 {
		return
	}
	raw := (ev.ClientX - ev.FrameLeft) / ev.FrameWidth * 100
	next := normalizeSliderValue(raw)
	if math.IsNaN(next) {
		return
	}
	s.value = next
}

// PointerDown begins a drag. It is ignored without a result to compare, for
// non-primary pointers, for mouse buttons other than the main one, and while
// another pointer already owns the drag.
func (s *Slider) PointerDown(ev PointerEvent, hasResult bool) bool {
	if !hasResult {
		return false
	}
	if !ev.IsPrimary {
		return false
	}
	if ev.PointerType == "mouse" && ev.Button != 0 {
		return false
	}
	if s.dragActive {
		return false
	}
	s.dragActive = true
	s.dragPointerID = ev.PointerID
	s.setFromPointer(ev)
	return true
}

// PointerMove updates the handle while dragging. Events from other pointers
// are ignored.
func (s *Slider) PointerMove(ev PointerEvent) bool {
	if !s.dragActive || ev.PointerID != s.dragPointerID {
		return false
	}
	s.setFromPointer(ev)
	return true
}

// PointerUp ends the drag owned by the given pointer. Up, cancel and leave all
// route here.
func (s *Slider) PointerUp(pointerID int) bool {
	if !s.dragActive || pointerID != s.dragPointerID {
		return false
	}
	s.release()
	return true
}

func (s *Slider) release() {
	s.dragActive = false
	s.dragPointerID = -1
}

// Reset recenters the handle and drops any active drag.
func (s *Slider) Reset() {
	s.release()
	s.value = defaultSliderValue
}

// AppliedWidth is the percentage width of the processed overlay. Without a
// result the overlay is fully hidden regardless of the handle position.
func (s *Slider) AppliedWidth(hasResult bool) float64 {
	if !hasResult {
		return 0
	}
	return s.value
}

// IndicatorLeft is the percentage position of the divider line. Without a
// result it parks at the midpoint.
func (s *Slider) IndicatorLeft(hasResult bool) float64 {
	if !hasResult {
		return defaultSliderValue
	}
	return s.value
}
