package sheet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapTableSortsAndDedups(t *testing.T) {
	table := NewSnapTable(700, 150, 300, 300, math.NaN())
	assert.Equal(t, []float64{150, 300, 700}, table.Points())
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, "{150, 300, 700}", table.String())
}

func TestSnapTablePointsIsACopy(t *testing.T) {
	table := NewSnapTable(150, 300)
	pts := table.Points()
	pts[0] = 1
	assert.Equal(t, []float64{150, 300}, table.Points())
}

func TestSnapTableNearest(t *testing.T) {
	table := NewSnapTable(150, 300, 700)

	tests := []struct {
		h    float64
		want float64
	}{
		{0, 150},
		{150, 150},
		{224, 150},
		{225, 150},
		{226, 300},
		{499, 300},
		{500, 300},
		{501, 700},
		{550, 700},
		{10000, 700},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, table.Nearest(tt.h), "Nearest(%v)", tt.h)
	}

	assert.Equal(t, 42.0, SnapTable{}.Nearest(42))
}

func TestSnapTableNeighbours(t *testing.T) {
	table := NewSnapTable(150, 300, 700)

	next, ok := table.Next(300)
	require.True(t, ok)
	assert.Equal(t, 700.0, next)

	next, ok = table.Next(200)
	require.True(t, ok)
	assert.Equal(t, 300.0, next)

	_, ok = table.Next(700)
	assert.False(t, ok)

	prev, ok := table.Prev(300)
	require.True(t, ok)
	assert.Equal(t, 150.0, prev)

	_, ok = table.Prev(150)
	assert.False(t, ok)
}

func TestSnapTableContains(t *testing.T) {
	table := NewSnapTable(150, 300, 700)
	assert.True(t, table.Contains(300))
	assert.False(t, table.Contains(301))
	assert.False(t, SnapTable{}.Contains(0))
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{Min: 5, Max: 10}
	assert.Equal(t, 5.0, b.Clamp(-3))
	assert.Equal(t, 7.5, b.Clamp(7.5))
	assert.Equal(t, 10.0, b.Clamp(11))
	assert.Equal(t, 5.0, b.Clamp(math.NaN()))
	assert.False(t, b.Contains(math.NaN()))
}
