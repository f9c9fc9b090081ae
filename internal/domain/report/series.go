package report

import "log/slog"

// MonthlyBucket is one of twelve aggregated points driving the bar charts.
type MonthlyBucket struct {
	Month         string  `json:"month"` // JAN..DEC
	Target        float64 `json:"target"`
	ClearedAmount float64 `json:"clearedAmount"`
}

var shortMonthLabels = [12]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

func newYearSeries() []MonthlyBucket {
	buckets := make([]MonthlyBucket, 12)
	for i := range buckets {
		buckets[i].Month = shortMonthLabels[i]
	}
	return buckets
}

func buildSeries(employees [][]Target, year int, cleared func(Target) float64) []MonthlyBucket {
	buckets := newYearSeries()
	for _, targets := range employees {
		for _, t := range targets {
			if t.Year != year {
				continue
			}
			idx, ok := MonthIndex(t.Month)
			if !ok {
				slog.Warn("skipping target with unparseable month", "month", t.Month, "year", t.Year)
				continue
			}
			buckets[idx].Target += float64(t.Amount)
			buckets[idx].ClearedAmount += cleared(t)
		}
	}
	return buckets
}

// BuildYearSeries folds every employee's targets for one year into twelve
// calendar-ordered buckets of planned amount vs achieved amount. The result
// is always exactly 12 buckets, zero-filled where no target contributes.
func BuildYearSeries(employees [][]Target, year int) []MonthlyBucket {
	return buildSeries(employees, year, func(t Target) float64 { return float64(t.Achievement) })
}

// BuildYearCollectionSeries is the collection-vs-target chart variant:
// cleared amounts accumulate the collection field instead of achievement.
func BuildYearCollectionSeries(employees [][]Target, year int) []MonthlyBucket {
	return buildSeries(employees, year, func(t Target) float64 { return float64(t.Collection) })
}

// BarHeights maps a series to per-bucket bar heights using the clamped
// percentage, keeping every bar inside the chart frame.
func BarHeights(series []MonthlyBucket) []float64 {
	heights := make([]float64, len(series))
	for i, b := range series {
		heights[i] = ChartPercent(b.Target, b.ClearedAmount)
	}
	return heights
}
