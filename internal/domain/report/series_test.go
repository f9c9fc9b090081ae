package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildYearSeries_EmptyInput(t *testing.T) {
	series := BuildYearSeries(nil, 2024)

	require.Len(t, series, 12)
	assert.Equal(t, "JAN", series[0].Month)
	assert.Equal(t, "DEC", series[11].Month)
	for _, b := range series {
		assert.Zero(t, b.Target)
		assert.Zero(t, b.ClearedAmount)
	}
}

func TestBuildYearSeries_SingleTarget(t *testing.T) {
	employees := [][]Target{
		{{Month: "March", Year: 2024, Amount: 500, Achievement: 300}},
	}

	series := BuildYearSeries(employees, 2024)

	require.Len(t, series, 12)
	assert.Equal(t, "MAR", series[2].Month)
	assert.Equal(t, float64(500), series[2].Target)
	assert.Equal(t, float64(300), series[2].ClearedAmount)
	for i, b := range series {
		if i == 2 {
			continue
		}
		assert.Zero(t, b.Target, "bucket %s", b.Month)
		assert.Zero(t, b.ClearedAmount, "bucket %s", b.Month)
	}
}

func TestBuildYearSeries_ExcludesOtherYears(t *testing.T) {
	employees := [][]Target{
		{{Month: "March", Year: 2023, Amount: 500, Achievement: 300}},
	}

	series := BuildYearSeries(employees, 2024)
	assert.Zero(t, series[2].Target)
	assert.Zero(t, series[2].ClearedAmount)
}

func TestBuildYearSeries_AccumulatesAcrossEmployees(t *testing.T) {
	employees := [][]Target{
		{{Month: "June", Year: 2024, Amount: 100, Achievement: 40}},
		{{Month: "June", Year: 2024, Amount: 200, Achievement: 60}},
		nil, // employee without targets
	}

	series := BuildYearSeries(employees, 2024)
	assert.Equal(t, float64(300), series[5].Target)
	assert.Equal(t, float64(100), series[5].ClearedAmount)
}

func TestBuildYearSeries_SkipsUnparseableMonth(t *testing.T) {
	employees := [][]Target{
		{
			{Month: "Floptober", Year: 2024, Amount: 999, Achievement: 999},
			{Month: "October", Year: 2024, Amount: 10, Achievement: 5},
		},
	}

	series := BuildYearSeries(employees, 2024)
	assert.Equal(t, float64(10), series[9].Target)
	assert.Equal(t, float64(5), series[9].ClearedAmount)
}

func TestBuildYearCollectionSeries(t *testing.T) {
	employees := [][]Target{
		{{Month: "May", Year: 2024, Amount: 100, Achievement: 70, Collection: 55}},
	}

	series := BuildYearCollectionSeries(employees, 2024)
	assert.Equal(t, float64(100), series[4].Target)
	assert.Equal(t, float64(55), series[4].ClearedAmount)
}

func TestBarHeights(t *testing.T) {
	series := []MonthlyBucket{
		{Month: "JAN", Target: 100, ClearedAmount: 50},
		{Month: "FEB", Target: 100, ClearedAmount: 150}, // clamped
		{Month: "MAR", Target: 0, ClearedAmount: 10},    // zero-division guard
	}

	heights := BarHeights(series)
	require.Len(t, heights, 3)
	assert.Equal(t, float64(50), heights[0])
	assert.Equal(t, float64(100), heights[1])
	assert.Equal(t, float64(0), heights[2])
}
