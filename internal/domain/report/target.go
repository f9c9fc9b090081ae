package report

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"time"
)

// Number is a float64 that tolerates the loose JSON the dashboard has
// historically produced: numeric strings, null, and missing fields all
// decode to 0 instead of failing the whole payload.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	s := strings.Trim(string(data), `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*n = 0
		return nil
	}
	*n = Number(v)
	return nil
}

// Target is one employee's plan and actuals for a single calendar month.
// Month is stored as the full English name; MonthIndex is the only place
// it gets parsed.
type Target struct {
	Month       string `json:"month"`
	Year        int    `json:"year"`
	Amount      Number `json:"amount"`
	Achievement Number `json:"achievement"`
	Collection  Number `json:"collection"`
}

// MonthRange restricts aggregation to an inclusive month span. Comparison
// happens at month granularity, never at day granularity.
type MonthRange struct {
	Start time.Time
	End   time.Time
}

func (r *MonthRange) valid() bool {
	return r != nil && !r.Start.IsZero() && !r.End.IsZero()
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthIndex resolves a full English month name to its 0-based index.
func MonthIndex(name string) (int, bool) {
	name = strings.TrimSpace(name)
	for i, m := range monthNames {
		if strings.EqualFold(name, m) {
			return i, true
		}
	}
	return 0, false
}

// MonthName returns the full English name for a 0-based month index.
func MonthName(index int) string {
	if index < 0 || index > 11 {
		return ""
	}
	return monthNames[index]
}

// monthKey collapses (year, monthIndex) into a single ordinal so targets
// can be compared and range-checked with plain integer math.
func monthKey(year, index int) int {
	return year*12 + index
}

func (t Target) key() (int, bool) {
	idx, ok := MonthIndex(t.Month)
	if !ok {
		return 0, false
	}
	return monthKey(t.Year, idx), true
}

func (r *MonthRange) contains(key int) bool {
	lo := monthKey(r.Start.Year(), int(r.Start.Month())-1)
	hi := monthKey(r.End.Year(), int(r.End.Month())-1)
	return key >= lo && key <= hi
}

// ResolveLatestTarget picks the single applicable target for a period: the
// one with the greatest (year, month) inside the range, or the most recent
// overall when no range is given. Records with unparseable month names are
// ignored. Returns nil when nothing qualifies; callers display zeros, not
// errors. Ties on (year, month) resolve to the record encountered last in
// input order.
func ResolveLatestTarget(targets []Target, r *MonthRange) *Target {
	var best *Target
	bestKey := 0
	for i := range targets {
		key, ok := targets[i].key()
		if !ok {
			continue
		}
		if r.valid() && !r.contains(key) {
			continue
		}
		if best == nil || key >= bestKey {
			best = &targets[i]
			bestKey = key
		}
	}
	return best
}

// SumCollections totals the collection field across every target in the
// range. Unlike ResolveLatestTarget it sums all matching months: a period
// spanning several months collects from each of them, while the target for
// the period is always the single latest applicable plan.
func SumCollections(targets []Target, r *MonthRange) float64 {
	var sum float64
	for _, t := range targets {
		if r.valid() {
			key, ok := t.key()
			if !ok || !r.contains(key) {
				continue
			}
		}
		sum += float64(t.Collection)
	}
	return sum
}

// AchievementPercent is the table-view KPI: achievement over amount as a
// percentage rounded to two decimals. Overachievement is reported as-is,
// so values above 100 are expected. A zero or missing amount yields 0.
func AchievementPercent(amount, achievement float64) float64 {
	if amount == 0 || math.IsNaN(amount) || math.IsNaN(achievement) {
		return 0
	}
	return math.Round(achievement/amount*100*100) / 100
}

// ChartPercent is the bar-height variant: unrounded but clamped to [0,100]
// so overachievement cannot push a bar past the top of the chart.
func ChartPercent(amount, achievement float64) float64 {
	if amount == 0 || math.IsNaN(amount) || math.IsNaN(achievement) {
		return 0
	}
	pct := achievement / amount * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
