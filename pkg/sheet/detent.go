package sheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DetentKind distinguishes fixed heights from fractions of the available height.
type DetentKind int

const (
	DetentFixed DetentKind = iota
	DetentFraction
)

// Detent describes a snap point before it is resolved against concrete bounds.
type Detent struct {
	Kind  DetentKind
	Value float64
}

var (
	Medium = Fraction(0.5)
	Large  = Fraction(1)
)

func Fixed(h float64) Detent { return Detent{Kind: DetentFixed, Value: h} }

func Fraction(f float64) Detent { return Detent{Kind: DetentFraction, Value: f} }

// ParseDetent accepts a fixed height ("6"), a percentage ("40%") or one of
// the names "medium" and "large".
func ParseDetent(s string) (Detent, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return Detent{}, fmt.Errorf("empty detent")
	case "medium":
		return Medium, nil
	case "large":
		return Large, nil
	}

	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil {
			return Detent{}, fmt.Errorf("invalid detent %q: %w", s, err)
		}
		if math.IsNaN(v) || v <= 0 || v > 100 {
			return Detent{}, fmt.Errorf("detent %q must be within (0%%, 100%%]", s)
		}
		return Fraction(v / 100), nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Detent{}, fmt.Errorf("invalid detent %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return Detent{}, fmt.Errorf("detent %q must be a positive height", s)
	}
	return Fixed(v), nil
}

// ParseDetents parses every entry of list, stopping at the first error.
func ParseDetents(list []string) ([]Detent, error) {
	out := make([]Detent, 0, len(list))
	for _, s := range list {
		d, err := ParseDetent(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Resolve turns d into a concrete height inside b. Fractions are taken of
// b.Max and rounded to a whole row.
func (d Detent) Resolve(b Bounds) float64 {
	if d.Kind == DetentFraction {
		return b.Clamp(math.Round(b.Max * d.Value))
	}
	return b.Clamp(d.Value)
}

func (d Detent) String() string {
	if d.Kind == DetentFraction {
		switch d.Value {
		case 0.5:
			return "medium"
		case 1:
			return "large"
		}
		return strconv.FormatFloat(d.Value*100, 'f', -1, 64) + "%"
	}
	return strconv.FormatFloat(d.Value, 'f', -1, 64)
}

// ResolveDetents resolves every detent against b. Detents that collapse onto
// the same height after clamping become one snap point.
func ResolveDetents(detents []Detent, b Bounds) SnapTable {
	points := make([]float64, len(detents))
	for i, d := range detents {
		points[i] = d.Resolve(b)
	}
	return NewSnapTable(points...)
}
