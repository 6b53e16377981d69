package sheet

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// SnapTable is an ascending set of distinct resting heights. The zero value
// is an empty table.
type SnapTable struct {
	points []float64
}

// NewSnapTable builds a table from points in any order. Duplicates and NaN
// values are dropped.
func NewSnapTable(points ...float64) SnapTable {
	ps := make([]float64, 0, len(points))
	for _, p := range points {
		if !math.IsNaN(p) {
			ps = append(ps, p)
		}
	}
	sort.Float64s(ps)

	out := ps[:0]
	for i, p := range ps {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return SnapTable{points: out}
}

// Len returns the number of snap points.
func (t SnapTable) Len() int { return len(t.points) }

// Points returns a copy of the snap points in ascending order.
func (t SnapTable) Points() []float64 {
	out := make([]float64, len(t.points))
	copy(out, t.points)
	return out
}

// Nearest returns the snap point closest to h. Equidistant candidates resolve
// to the first, i.e. smallest, one. An empty table returns h.
func (t SnapTable) Nearest(h float64) float64 {
	if len(t.points) == 0 {
		return h
	}
	best := t.points[0]
	bestDist := math.Abs(h - best)
	for _, p := range t.points[1:] {
		if d := math.Abs(h - p); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// Next returns the smallest snap point strictly above h.
func (t SnapTable) Next(h float64) (float64, bool) {
	i := sort.Search(len(t.points), func(i int) bool { return t.points[i] > h })
	if i == len(t.points) {
		return 0, false
	}
	return t.points[i], true
}

// Prev returns the largest snap point strictly below h.
func (t SnapTable) Prev(h float64) (float64, bool) {
	i := sort.Search(len(t.points), func(i int) bool { return t.points[i] >= h })
	if i == 0 {
		return 0, false
	}
	return t.points[i-1], true
}

// Contains reports whether h is exactly one of the snap points.
func (t SnapTable) Contains(h float64) bool {
	i := sort.SearchFloat64s(t.points, h)
	return i < len(t.points) && t.points[i] == h
}

func (t SnapTable) String() string {
	parts := make([]string, len(t.points))
	for i, p := range t.points {
		parts[i] = fmt.Sprintf("%g", p)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (t SnapTable) validate(b Bounds) error {
	if len(t.points) == 0 {
		return fmt.Errorf("%w: snap table is empty", ErrInvalidConfig)
	}
	for _, p := range t.points {
		if !b.Contains(p) {
			return fmt.Errorf("%w: snap point %g outside [%g, %g]", ErrInvalidConfig, p, b.Min, b.Max)
		}
	}
	return nil
}
