package attendance

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowForDate_NoRecords(t *testing.T) {
	w := WindowForDate(nil, time.Now())

	assert.Equal(t, NoData, w.EntryTime)
	assert.Equal(t, NoData, w.ExitTime)
	assert.Nil(t, w.EntryLocation)
	assert.Nil(t, w.ExitLocation)
}

func TestWindowForDate_MatchesISTCivilDay(t *testing.T) {
	// 2024-06-01T23:50+05:30 is 2024-06-01T18:20Z. A UTC-day compare
	// against a morning query time would still match, but a record late
	// enough to cross the UTC boundary must stay on its IST day.
	recDate := time.Date(2024, 6, 1, 23, 50, 0, 0, IST)
	records := []Record{
		{
			Date:          recDate,
			EntryTime:     "2024-06-01T09:05:00+05:30",
			ExitTime:      "2024-06-01T18:12:30+05:30",
			EntryLocation: &GeoPoint{Latitude: 22.57, Longitude: 88.36},
			ExitLocation:  &GeoPoint{Latitude: 22.58, Longitude: 88.37},
		},
	}

	// Query using a UTC timestamp that lands on the same IST day.
	query := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	w := WindowForDate(records, query)

	assert.Equal(t, "09:05:00", w.EntryTime)
	assert.Equal(t, "18:12:30", w.ExitTime)
	require.NotNil(t, w.EntryLocation)
	assert.Equal(t, 22.57, w.EntryLocation.Latitude)

	// The record's UTC calendar date is still June 1st here, but querying
	// for June 2nd IST must not match it.
	nextDay := time.Date(2024, 6, 2, 1, 0, 0, 0, IST)
	w = WindowForDate(records, nextDay)
	assert.Equal(t, NoData, w.EntryTime)
}

func TestWindowForDate_UTCBoundary(t *testing.T) {
	// Record stored as UTC: 18:20Z on June 1 is 23:50 IST on June 1.
	records := []Record{{
		Date:      time.Date(2024, 6, 1, 18, 20, 0, 0, time.UTC),
		EntryTime: "2024-06-01T18:20:00Z",
	}}

	w := WindowForDate(records, time.Date(2024, 6, 1, 12, 0, 0, 0, IST))
	assert.Equal(t, "23:50:00", w.EntryTime)
	assert.Equal(t, NoData, w.ExitTime)
}

func TestWindowForDate_LegacyTimestampFallback(t *testing.T) {
	records := []Record{{
		Date:      time.Date(2024, 3, 5, 10, 0, 0, 0, IST),
		EntryTime: "Tue, 05 Mar 2024 09:15:00 IST",
		ExitTime:  "garbage value",
	}}

	w := WindowForDate(records, time.Date(2024, 3, 5, 0, 0, 0, 0, IST))
	assert.Equal(t, "09:15:00", w.EntryTime)
	assert.Equal(t, InvalidTime, w.ExitTime)
}

func TestParseLooseTime(t *testing.T) {
	got, ok := parseLooseTime("2024-06-01T09:05:00+05:30")
	require.True(t, ok)
	assert.Equal(t, "09:05:00", got.In(IST).Format("15:04:05"))

	got, ok = parseLooseTime("01 Jun 2024 23:50:00")
	require.True(t, ok)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 1, got.Day())
	assert.Equal(t, "23:50:00", got.Format("15:04:05"))

	_, ok = parseLooseTime("once upon a time")
	assert.False(t, ok)

	_, ok = parseLooseTime("")
	assert.False(t, ok)
}

func TestSumDayCount(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 6, d, 12, 0, 0, 0, IST) }

	var records []Record
	// day_count values [1, 0.5, "invalid", 1] -> 2.5, invalid skipped.
	payloads := []string{`1`, `0.5`, `"invalid"`, `1`}
	for i, p := range payloads {
		var rec Record
		require.NoError(t, json.Unmarshal([]byte(`{"day_count":`+p+`}`), &rec))
		rec.Date = day(i + 1)
		records = append(records, rec)
	}

	rng := &DateRange{Start: day(1), End: day(4)}
	assert.Equal(t, 2.5, SumDayCount(records, rng))

	// Unbounded sum covers everything.
	assert.Equal(t, 2.5, SumDayCount(records, nil))

	// Range that excludes the first record.
	rng = &DateRange{Start: day(2), End: day(4)}
	assert.Equal(t, 1.5, SumDayCount(records, rng))
}

func TestSumDayCount_RangeIsInclusiveByISTDay(t *testing.T) {
	// Record at 23:50 IST on June 1: a range ending June 1 must include it
	// even though the instant is June 1 18:20 UTC.
	records := []Record{{Date: time.Date(2024, 6, 1, 23, 50, 0, 0, IST), DayCount: 1}}
	rng := &DateRange{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, float64(1), SumDayCount(records, rng))
}
