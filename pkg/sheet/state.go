// Package sheet implements the height negotiation for a draggable bottom
// sheet: a bounded, snapping panel height driven by vertical drag gestures.
//
// The package holds no UI code. A host feeds gesture deltas into a
// Controller and reads CurrentHeight back during layout.
package sheet

import "math"

// Direction is the vertical direction a gesture is locked to.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}

// directionOf maps a vertical step to a direction. Screen coordinates grow
// downward, so a negative step is upward.
func directionOf(step float64) Direction {
	if step < 0 {
		return DirectionUp
	}
	return DirectionDown
}

// Policy selects how a gesture turns finger movement into a height.
type Policy int

const (
	// PolicyRelative sizes the panel from its pre-gesture height minus the
	// cumulative translation.
	PolicyRelative Policy = iota
	// PolicyAbsolute makes the panel edge track the finger position directly.
	PolicyAbsolute
)

func (p Policy) String() string {
	if p == PolicyAbsolute {
		return "absolute"
	}
	return "relative"
}

// Bounds is the closed height range a panel may occupy.
type Bounds struct {
	Min float64
	Max float64
}

// Clamp limits v to [Min, Max]. NaN clamps to Min.
func (b Bounds) Clamp(v float64) float64 {
	if math.IsNaN(v) || v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Contains reports whether v lies within the bounds.
func (b Bounds) Contains(v float64) bool {
	return !math.IsNaN(v) && v >= b.Min && v <= b.Max
}

// PanelState is the complete gesture state of a panel. It is a value: the
// transition functions below return a new state and never mutate their input.
type PanelState struct {
	BaseHeight      float64
	DragOffset      float64
	IsDragging      bool
	LockedDirection Direction

	// Policy is chosen on the first change of a gesture and kept until it ends.
	Policy Policy
	// LastDeltaY is the cumulative translation seen by the previous change.
	LastDeltaY float64
	// StartHeight is the committed height the gesture started from.
	StartHeight float64
}

// Idle returns a resting state at height h.
func Idle(h float64) PanelState {
	return PanelState{BaseHeight: h, StartHeight: h}
}

// Height is the externally visible height of s within b.
func (s PanelState) Height(b Bounds) float64 {
	return b.Clamp(s.BaseHeight + s.DragOffset)
}

// DragChanged applies one gesture update. deltaY is the cumulative vertical
// translation since the gesture began; absoluteY, when non-nil, is the finger
// position measured from the top of the area the panel can grow into.
func DragChanged(s PanelState, b Bounds, deltaY float64, absoluteY *float64) PanelState {
	if math.IsNaN(deltaY) {
		deltaY = s.LastDeltaY
	}
	if absoluteY != nil && (math.IsNaN(*absoluteY) || math.IsInf(*absoluteY, 0)) {
		absoluteY = nil
	}

	if !s.IsDragging {
		s.IsDragging = true
		s.StartHeight = s.BaseHeight
		s.DragOffset = 0
		s.LockedDirection = directionOf(deltaY)
		s.Policy = PolicyRelative
		if absoluteY != nil && s.LockedDirection == DirectionUp {
			s.Policy = PolicyAbsolute
		}
	} else if step := deltaY - s.LastDeltaY; step != 0 {
		dir := directionOf(step)
		switch s.LockedDirection {
		case DirectionNone:
			s.LockedDirection = dir
		case dir:
		default:
			// A reversal only clears the lock; the policy stays put.
			s.LockedDirection = DirectionNone
		}
	}
	s.LastDeltaY = deltaY

	proposed := s.BaseHeight - deltaY
	if s.Policy == PolicyAbsolute && absoluteY != nil && deltaY < 0 {
		proposed = b.Max - *absoluteY
	}
	s.DragOffset = b.Clamp(proposed) - s.BaseHeight
	return s
}

// DragEnded commits the current height to the nearest entry of snaps and
// returns an idle state.
func DragEnded(s PanelState, b Bounds, snaps SnapTable) PanelState {
	return Idle(snaps.Nearest(s.Height(b)))
}

// DragCancelled abandons a gesture and restores the height the gesture
// started from. An idle state is returned unchanged.
func DragCancelled(s PanelState, b Bounds) PanelState {
	if !s.IsDragging {
		return s
	}
	return Idle(b.Clamp(s.StartHeight))
}
