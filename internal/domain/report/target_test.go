package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthRange(start, end string) *MonthRange {
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		panic(err)
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		panic(err)
	}
	return &MonthRange{Start: s, End: e}
}

func TestMonthIndex(t *testing.T) {
	idx, ok := MonthIndex("January")
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = MonthIndex("december")
	require.True(t, ok)
	assert.Equal(t, 11, idx)

	idx, ok = MonthIndex("  March ")
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = MonthIndex("Janvier")
	assert.False(t, ok)

	_, ok = MonthIndex("")
	assert.False(t, ok)
}

func TestResolveLatestTarget_Empty(t *testing.T) {
	assert.Nil(t, ResolveLatestTarget(nil, nil))
	assert.Nil(t, ResolveLatestTarget([]Target{}, nil))
}

func TestResolveLatestTarget_PicksGreatestYearMonth(t *testing.T) {
	targets := []Target{
		{Month: "March", Year: 2024, Amount: 100},
		{Month: "December", Year: 2023, Amount: 200},
		{Month: "January", Year: 2024, Amount: 300},
	}

	got := ResolveLatestTarget(targets, nil)
	require.NotNil(t, got)
	assert.Equal(t, "March", got.Month)
	assert.Equal(t, 2024, got.Year)
}

func TestResolveLatestTarget_RangeIsInclusiveAtMonthGranularity(t *testing.T) {
	targets := []Target{
		{Month: "January", Year: 2024, Amount: 1},
		{Month: "February", Year: 2024, Amount: 2},
		{Month: "March", Year: 2024, Amount: 3},
	}

	// Mid-month bounds still cover the whole month.
	got := ResolveLatestTarget(targets, monthRange("2024-01-15", "2024-02-20"))
	require.NotNil(t, got)
	assert.Equal(t, "February", got.Month)

	// Never returns a record outside the range.
	got = ResolveLatestTarget(targets, monthRange("2023-01-01", "2023-12-31"))
	assert.Nil(t, got)
}

func TestResolveLatestTarget_TieResolvesToLastInInputOrder(t *testing.T) {
	targets := []Target{
		{Month: "May", Year: 2024, Amount: 111},
		{Month: "May", Year: 2024, Amount: 222},
	}

	got := ResolveLatestTarget(targets, nil)
	require.NotNil(t, got)
	assert.Equal(t, Number(222), got.Amount)
}

func TestResolveLatestTarget_SkipsUnparseableMonths(t *testing.T) {
	targets := []Target{
		{Month: "Smarch", Year: 2099, Amount: 999},
		{Month: "April", Year: 2024, Amount: 50},
	}

	got := ResolveLatestTarget(targets, nil)
	require.NotNil(t, got)
	assert.Equal(t, "April", got.Month)
}

func TestAchievementPercent(t *testing.T) {
	assert.Equal(t, float64(0), AchievementPercent(0, 50))
	assert.Equal(t, float64(25), AchievementPercent(200, 50))
	// Table view does not clamp overachievement.
	assert.Equal(t, float64(150), AchievementPercent(100, 150))
	// Rounded to two decimals.
	assert.Equal(t, 33.33, AchievementPercent(300, 100))
}

func TestChartPercent_Clamped(t *testing.T) {
	assert.Equal(t, float64(0), ChartPercent(0, 50))
	assert.Equal(t, float64(25), ChartPercent(200, 50))
	assert.Equal(t, float64(100), ChartPercent(100, 150))
	assert.Equal(t, float64(0), ChartPercent(100, -20))
}

func TestSumCollections(t *testing.T) {
	targets := []Target{
		{Month: "January", Year: 2024, Collection: 100},
		{Month: "June", Year: 2024, Collection: 200},
	}

	assert.Equal(t, float64(300), SumCollections(targets, nil))

	// Range excluding the second record.
	got := SumCollections(targets, monthRange("2024-01-01", "2024-03-31"))
	assert.Equal(t, float64(100), got)

	assert.Equal(t, float64(0), SumCollections(nil, nil))
}

func TestSumCollections_SumsAllMatchesNotJustLatest(t *testing.T) {
	targets := []Target{
		{Month: "January", Year: 2024, Collection: 10},
		{Month: "February", Year: 2024, Collection: 20},
		{Month: "March", Year: 2024, Collection: 30},
	}

	got := SumCollections(targets, monthRange("2024-01-01", "2024-03-01"))
	assert.Equal(t, float64(60), got)
}

func TestNumber_TolerantDecoding(t *testing.T) {
	var target Target
	payload := `{"month":"July","year":2024,"amount":"1500","achievement":null,"collection":"not a number"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &target))

	assert.Equal(t, Number(1500), target.Amount)
	assert.Equal(t, Number(0), target.Achievement)
	assert.Equal(t, Number(0), target.Collection)
}
