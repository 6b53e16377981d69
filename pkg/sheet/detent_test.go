package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDetent(t *testing.T) {
	tests := []struct {
		in      string
		want    Detent
		wantErr bool
	}{
		{"6", Fixed(6), false},
		{" 7.5 ", Fixed(7.5), false},
		{"medium", Medium, false},
		{"LARGE", Large, false},
		{"40%", Fraction(0.4), false},
		{"100%", Large, false},
		{"", Detent{}, true},
		{"0", Detent{}, true},
		{"-3", Detent{}, true},
		{"0%", Detent{}, true},
		{"120%", Detent{}, true},
		{"tall", Detent{}, true},
		{"abc%", Detent{}, true},
		{"inf", Detent{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDetent(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDetentsStopsAtFirstError(t *testing.T) {
	_, err := ParseDetents([]string{"5", "bogus", "large"})
	assert.Error(t, err)

	ds, err := ParseDetents([]string{"5", "medium", "large"})
	require.NoError(t, err)
	assert.Equal(t, []Detent{Fixed(5), Medium, Large}, ds)
}

func TestDetentResolve(t *testing.T) {
	b := Bounds{Min: 5, Max: 40}

	assert.Equal(t, 6.0, Fixed(6).Resolve(b))
	assert.Equal(t, 40.0, Fixed(100).Resolve(b))
	assert.Equal(t, 20.0, Medium.Resolve(b))
	assert.Equal(t, 40.0, Large.Resolve(b))
	assert.Equal(t, 5.0, Fraction(0.1).Resolve(b))
	assert.Equal(t, 13.0, Fraction(0.33).Resolve(b))
}

func TestResolveDetentsCollapsesDuplicates(t *testing.T) {
	table := ResolveDetents([]Detent{Fixed(40), Large, Fixed(6), Medium}, Bounds{Min: 5, Max: 40})
	assert.Equal(t, []float64{6, 20, 40}, table.Points())
}

func TestDetentString(t *testing.T) {
	assert.Equal(t, "6", Fixed(6).String())
	assert.Equal(t, "medium", Medium.String())
	assert.Equal(t, "large", Large.String())
	assert.Equal(t, "40%", Fraction(0.4).String())
}
