package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBarChart(t *testing.T) {
	chart := NewBarChart("counts", []string{"Warehouses", "Databases", "Schemas"}, []int{2, 4, 1})

	require.Len(t, chart.Bars, 3)
	assert.Equal(t, 240, chart.Baseline)

	tallest := chart.Bars[1]
	assert.Equal(t, 200, tallest.Height)
	assert.Equal(t, 40, tallest.Y)

	assert.Equal(t, 100, chart.Bars[0].Height)
	assert.Equal(t, 50, chart.Bars[2].Height)
	for _, b := range chart.Bars {
		assert.Equal(t, chart.Baseline, b.Y+b.Height)
		assert.Equal(t, 117, b.Width)
	}
	assert.Less(t, chart.Bars[0].X+chart.Bars[0].Width, chart.Bars[1].X)
}

func TestNewBarChart_AllZero(t *testing.T) {
	chart := NewBarChart("counts", []string{"a", "b"}, []int{0})

	require.Len(t, chart.Bars, 2)
	for _, b := range chart.Bars {
		assert.Equal(t, 0, b.Height)
		assert.Equal(t, chart.Baseline, b.Y)
	}
}

func TestNewBarChart_NoLabels(t *testing.T) {
	assert.Empty(t, NewBarChart("empty", nil, nil).Bars)
}
