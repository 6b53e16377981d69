package sheet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T, initial float64, opts ...Option) *Controller {
	t.Helper()
	c, err := New(150, 700, NewSnapTable(150, 300, 700), initial, opts...)
	require.NoError(t, err)
	return c
}

func ptr(v float64) *float64 { return &v }

func TestDragAndCommitScenario(t *testing.T) {
	c := newTestController(t, 300)

	assert.Equal(t, 550.0, c.OnDragChanged(-250, nil))
	assert.Equal(t, 550.0, c.CurrentHeight())
	assert.True(t, c.IsDragging())

	assert.Equal(t, 700.0, c.OnDragEnded())
	assert.Equal(t, 700.0, c.CurrentHeight())
	assert.False(t, c.IsDragging())
	assert.Equal(t, DirectionNone, c.LockedDirection())
	assert.Zero(t, c.State().DragOffset)
}

func TestNearestSnapTieBreak(t *testing.T) {
	c := newTestController(t, 300)

	assert.Equal(t, 225.0, c.OnDragChanged(75, nil))
	assert.Equal(t, 150.0, c.OnDragEnded())
}

func TestConstructionValidation(t *testing.T) {
	tests := []struct {
		name    string
		min     float64
		max     float64
		snaps   SnapTable
		initial float64
	}{
		{"inverted bounds", 500, 100, NewSnapTable(300), 300},
		{"snap above max", 150, 700, NewSnapTable(150, 300, 800), 300},
		{"snap below min", 150, 700, NewSnapTable(100, 300), 300},
		{"initial outside", 150, 700, NewSnapTable(150, 300, 700), 750},
		{"empty snaps", 150, 700, NewSnapTable(), 300},
		{"nan bound", math.NaN(), 700, NewSnapTable(300), 300},
		{"infinite bound", 150, math.Inf(1), NewSnapTable(300), 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.min, tt.max, tt.snaps, tt.initial)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Nil(t, c)
		})
	}
}

func TestInitialHeightIsNotSnapped(t *testing.T) {
	c := newTestController(t, 420)
	assert.Equal(t, 420.0, c.CurrentHeight())
}

func TestDragIsAlwaysClamped(t *testing.T) {
	deltas := []float64{-10000, -1000, -551, -400, -1, 0, 1, 149, 150, 151, 10000,
		math.Inf(1), math.Inf(-1), math.NaN()}

	for _, d := range deltas {
		c := newTestController(t, 300)
		h := c.OnDragChanged(d, nil)
		assert.GreaterOrEqual(t, h, 150.0, "delta %v", d)
		assert.LessOrEqual(t, h, 700.0, "delta %v", d)
	}

	// One long gesture through all of them.
	c := newTestController(t, 300)
	for _, d := range deltas {
		h := c.OnDragChanged(d, ptr(d))
		assert.GreaterOrEqual(t, h, 150.0, "delta %v", d)
		assert.LessOrEqual(t, h, 700.0, "delta %v", d)
	}
}

func TestEveryCommitLandsOnSnapPoint(t *testing.T) {
	for h := 100.0; h <= 750; h += 25 {
		c := newTestController(t, 300)
		c.OnDragChanged(300-h, nil)
		committed := c.OnDragEnded()
		assert.True(t, c.Snaps().Contains(committed), "height %v committed to %v", h, committed)
		assert.Equal(t, committed, c.CurrentHeight())
	}
}

func TestCurrentHeightIsIdempotent(t *testing.T) {
	c := newTestController(t, 300)
	c.OnDragChanged(-123, nil)

	first := c.CurrentHeight()
	second := c.CurrentHeight()
	assert.Equal(t, first, second)
	assert.Equal(t, c.State(), c.State())
}

func TestDirectionalLockClearsAndReselects(t *testing.T) {
	c := newTestController(t, 300)

	c.OnDragChanged(-50, nil)
	assert.Equal(t, DirectionUp, c.LockedDirection())

	c.OnDragChanged(-30, nil)
	assert.Equal(t, DirectionNone, c.LockedDirection())

	h := c.OnDragChanged(-60, nil)
	assert.Equal(t, DirectionUp, c.LockedDirection())

	straight := newTestController(t, 300)
	assert.Equal(t, straight.OnDragChanged(-60, nil), h)
}

func TestZeroStepKeepsLock(t *testing.T) {
	c := newTestController(t, 300)
	c.OnDragChanged(20, nil)
	require.Equal(t, DirectionDown, c.LockedDirection())

	c.OnDragChanged(20, nil)
	assert.Equal(t, DirectionDown, c.LockedDirection())
}

func TestFirstZeroDeltaLocksDown(t *testing.T) {
	c := newTestController(t, 300)
	c.OnDragChanged(0, nil)
	assert.Equal(t, DirectionDown, c.LockedDirection())
	assert.Equal(t, PolicyRelative, c.State().Policy)
}

func TestAbsolutePolicyTracksFinger(t *testing.T) {
	c := newTestController(t, 300)

	assert.Equal(t, 600.0, c.OnDragChanged(-10, ptr(100)))
	assert.Equal(t, PolicyAbsolute, c.State().Policy)

	assert.Equal(t, 700.0, c.OnDragChanged(-20, ptr(-50)))

	// Reversal clears the lock but keeps the absolute policy.
	assert.Equal(t, 695.0, c.OnDragChanged(-15, ptr(5)))
	assert.Equal(t, DirectionNone, c.LockedDirection())
	assert.Equal(t, PolicyAbsolute, c.State().Policy)

	assert.Equal(t, 690.0, c.OnDragChanged(-10, ptr(10)))
	assert.Equal(t, DirectionDown, c.LockedDirection())

	assert.Equal(t, 700.0, c.OnDragEnded())
}

func TestAbsolutePolicyFallsBackWhenNetDown(t *testing.T) {
	c := newTestController(t, 300)

	c.OnDragChanged(-10, ptr(100))
	assert.Equal(t, 280.0, c.OnDragChanged(20, ptr(400)))
	assert.Equal(t, PolicyAbsolute, c.State().Policy)
}

func TestDownwardStartUsesRelativePolicy(t *testing.T) {
	c := newTestController(t, 300)

	assert.Equal(t, 290.0, c.OnDragChanged(10, ptr(500)))
	assert.Equal(t, PolicyRelative, c.State().Policy)

	// The policy does not switch when the gesture turns upward.
	assert.Equal(t, 400.0, c.OnDragChanged(-100, ptr(50)))
	assert.Equal(t, PolicyRelative, c.State().Policy)
}

func TestCancelDragRestoresByDefault(t *testing.T) {
	var got []Transition
	c := newTestController(t, 300, WithObserver(func(tr Transition) { got = append(got, tr) }))

	c.OnDragChanged(-250, nil)
	assert.Equal(t, 300.0, c.CancelDrag())
	assert.False(t, c.IsDragging())

	require.Len(t, got, 1)
	assert.Equal(t, Transition{Kind: TransitionCancel, From: 550, To: 300, Animate: true}, got[0])
}

func TestCancelDragWithSnapPolicy(t *testing.T) {
	c := newTestController(t, 300, WithCancelPolicy(CancelSnap))

	c.OnDragChanged(-250, nil)
	assert.Equal(t, 700.0, c.CancelDrag())
	assert.False(t, c.IsDragging())
}

func TestCancelDragWhileIdle(t *testing.T) {
	calls := 0
	c := newTestController(t, 300, WithObserver(func(Transition) { calls++ }))

	assert.Equal(t, 300.0, c.CancelDrag())
	assert.Zero(t, calls)
}

func TestCommitNotifiesObservers(t *testing.T) {
	var got []Transition
	c := newTestController(t, 300, WithObserver(func(tr Transition) { got = append(got, tr) }))

	c.OnDragChanged(-250, nil)
	c.OnDragEnded()
	c.OnDragChanged(0, nil)
	c.OnDragEnded()

	require.Len(t, got, 2)
	assert.Equal(t, Transition{Kind: TransitionCommit, From: 550, To: 700, Animate: true}, got[0])
	assert.Equal(t, Transition{Kind: TransitionCommit, From: 700, To: 700, Animate: false}, got[1])
}

func TestDragEndedWhileIdleResnaps(t *testing.T) {
	c := newTestController(t, 420)
	assert.Equal(t, 300.0, c.OnDragEnded())
}

func TestResize(t *testing.T) {
	c := newTestController(t, 700)

	require.NoError(t, c.Resize(150, 400, NewSnapTable(150, 300, 400)))
	assert.Equal(t, 400.0, c.CurrentHeight())
	assert.Equal(t, Bounds{Min: 150, Max: 400}, c.Bounds())
}

func TestResizeDropsActiveGesture(t *testing.T) {
	c := newTestController(t, 300)
	c.OnDragChanged(-100, nil)

	require.NoError(t, c.Resize(150, 700, NewSnapTable(150, 300, 700)))
	assert.False(t, c.IsDragging())
	assert.Equal(t, 300.0, c.CurrentHeight())
}

func TestResizeRejectsInvalidGeometry(t *testing.T) {
	c := newTestController(t, 300)

	err := c.Resize(150, 400, NewSnapTable(150, 700))
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, Bounds{Min: 150, Max: 700}, c.Bounds())
	assert.Equal(t, 300.0, c.CurrentHeight())
}

func TestTransitionsArePure(t *testing.T) {
	b := Bounds{Min: 150, Max: 700}
	before := Idle(300)

	after := DragChanged(before, b, -100, nil)
	assert.Equal(t, Idle(300), before)
	assert.Equal(t, 400.0, after.Height(b))

	ended := DragEnded(after, b, NewSnapTable(150, 300, 700))
	assert.Equal(t, 400.0, after.Height(b))
	assert.Equal(t, Idle(300), ended)
}
