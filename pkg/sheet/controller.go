package sheet

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// ErrInvalidConfig is wrapped by every construction failure.
var ErrInvalidConfig = errors.New("invalid panel configuration")

// CancelPolicy decides what CancelDrag does with an abandoned gesture.
type CancelPolicy int

const (
	// CancelRestore returns to the height committed before the gesture.
	CancelRestore CancelPolicy = iota
	// CancelSnap treats the cancel like a normal gesture end.
	CancelSnap
)

// TransitionKind says which event committed a new resting height.
type TransitionKind int

const (
	TransitionCommit TransitionKind = iota
	TransitionCancel
	TransitionResize
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionCancel:
		return "cancel"
	case TransitionResize:
		return "resize"
	default:
		return "commit"
	}
}

// Transition reports a change of resting height. Animate is a hint that the
// host should ease from From to To instead of jumping.
type Transition struct {
	Kind    TransitionKind
	From    float64
	To      float64
	Animate bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithCancelPolicy sets the behaviour of CancelDrag. The default is CancelRestore.
func WithCancelPolicy(p CancelPolicy) Option {
	return func(c *Controller) { c.cancel = p }
}

// WithLogger routes debug output for commits and cancels to l.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithObserver registers fn to receive every Transition.
func WithObserver(fn func(Transition)) Option {
	return func(c *Controller) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// Controller owns the height state of one panel. It is not safe for
// concurrent use; hosts call it from their event loop.
type Controller struct {
	bounds    Bounds
	snaps     SnapTable
	state     PanelState
	cancel    CancelPolicy
	log       *zap.Logger
	observers []func(Transition)
}

// New validates the geometry and returns an idle controller resting at
// initialHeight. The initial height is not snapped.
func New(minHeight, maxHeight float64, snaps SnapTable, initialHeight float64, opts ...Option) (*Controller, error) {
	b, err := newBounds(minHeight, maxHeight)
	if err != nil {
		return nil, err
	}
	if err := snaps.validate(b); err != nil {
		return nil, err
	}
	if !b.Contains(initialHeight) {
		return nil, fmt.Errorf("%w: initial height %g outside [%g, %g]", ErrInvalidConfig, initialHeight, b.Min, b.Max)
	}

	c := &Controller{
		bounds: b,
		snaps:  snaps,
		state:  Idle(initialHeight),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func newBounds(minHeight, maxHeight float64) (Bounds, error) {
	if math.IsNaN(minHeight) || math.IsNaN(maxHeight) || math.IsInf(minHeight, 0) || math.IsInf(maxHeight, 0) {
		return Bounds{}, fmt.Errorf("%w: bounds must be finite", ErrInvalidConfig)
	}
	if minHeight > maxHeight {
		return Bounds{}, fmt.Errorf("%w: min height %g exceeds max height %g", ErrInvalidConfig, minHeight, maxHeight)
	}
	return Bounds{Min: minHeight, Max: maxHeight}, nil
}

// OnDragChanged feeds one gesture update and returns the resulting height.
// Out-of-range input is clamped, never rejected.
func (c *Controller) OnDragChanged(deltaY float64, absoluteY *float64) float64 {
	starting := !c.state.IsDragging
	c.state = DragChanged(c.state, c.bounds, deltaY, absoluteY)
	if starting {
		c.log.Debug("drag started",
			zap.Float64("from", c.state.StartHeight),
			zap.Stringer("direction", c.state.LockedDirection),
			zap.Stringer("policy", c.state.Policy))
	}
	return c.CurrentHeight()
}

// OnDragEnded snaps to the nearest snap point and returns the committed height.
func (c *Controller) OnDragEnded() float64 {
	from := c.CurrentHeight()
	c.state = DragEnded(c.state, c.bounds, c.snaps)
	c.emit(TransitionCommit, from)
	return c.state.BaseHeight
}

// CancelDrag abandons the active gesture according to the cancel policy and
// returns the resulting height. Without an active gesture it does nothing.
func (c *Controller) CancelDrag() float64 {
	if !c.state.IsDragging {
		return c.CurrentHeight()
	}
	if c.cancel == CancelSnap {
		from := c.CurrentHeight()
		c.state = DragEnded(c.state, c.bounds, c.snaps)
		c.emit(TransitionCancel, from)
		return c.state.BaseHeight
	}
	from := c.CurrentHeight()
	c.state = DragCancelled(c.state, c.bounds)
	c.emit(TransitionCancel, from)
	return c.state.BaseHeight
}

// Resize replaces the bounds and snap table, for example after the host
// window changed size. Any active gesture is dropped and the resting height
// is re-snapped into the new table.
func (c *Controller) Resize(minHeight, maxHeight float64, snaps SnapTable) error {
	b, err := newBounds(minHeight, maxHeight)
	if err != nil {
		return err
	}
	if err := snaps.validate(b); err != nil {
		return err
	}

	from := c.CurrentHeight()
	resting := c.state.BaseHeight
	if c.state.IsDragging {
		resting = c.state.StartHeight
	}
	c.bounds = b
	c.snaps = snaps
	c.state = Idle(snaps.Nearest(b.Clamp(resting)))
	c.emit(TransitionResize, from)
	return nil
}

// CurrentHeight returns the visible height. It has no side effects.
func (c *Controller) CurrentHeight() float64 {
	return c.state.Height(c.bounds)
}

// State returns a copy of the gesture state.
func (c *Controller) State() PanelState { return c.state }

func (c *Controller) Bounds() Bounds { return c.bounds }

func (c *Controller) Snaps() SnapTable { return c.snaps }

func (c *Controller) IsDragging() bool { return c.state.IsDragging }

func (c *Controller) LockedDirection() Direction { return c.state.LockedDirection }

func (c *Controller) emit(kind TransitionKind, from float64) {
	t := Transition{
		Kind:    kind,
		From:    from,
		To:      c.state.BaseHeight,
		Animate: from != c.state.BaseHeight,
	}
	c.log.Debug("height committed",
		zap.Stringer("kind", t.Kind),
		zap.Float64("from", t.From),
		zap.Float64("to", t.To))
	for _, fn := range c.observers {
		fn(t)
	}
}
