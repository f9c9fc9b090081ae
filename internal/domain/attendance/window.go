package attendance

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/reboot-ai/crm-backend-go/internal/domain/report"
)

// Attendance days are civil dates in India Standard Time regardless of the
// server's local timezone. A fixed offset avoids depending on the host's
// tzdata; IST has no DST.
var IST = time.FixedZone("IST", 5*3600+30*60)

const (
	// NoData is the display sentinel for a day without a record.
	NoData = "nd"
	// InvalidTime is the display sentinel for a timestamp that could not
	// be parsed in any accepted format.
	InvalidTime = "Invalid Time"
)

// Record is the wire shape of one attendance day as the resolver sees it.
// Entry and exit times arrive either as RFC3339 timestamps or as legacy
// RFC1123-style strings; both are tolerated.
type Record struct {
	Date          time.Time     `json:"date"`
	EntryTime     string        `json:"entry_time"`
	ExitTime      string        `json:"exit_time"`
	EntryLocation *GeoPoint     `json:"entry_time_location"`
	ExitLocation  *GeoPoint     `json:"exit_time_location"`
	DayCount      report.Number `json:"day_count"`
}

// Window is what the dashboard renders for a single day.
type Window struct {
	EntryTime     string    `json:"entry_time"`
	ExitTime      string    `json:"exit_time"`
	EntryLocation *GeoPoint `json:"entry_time_location"`
	ExitLocation  *GeoPoint `json:"exit_time_location"`
}

// DateRange bounds a day-count sum, inclusive at both ends.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r *DateRange) valid() bool {
	return r != nil && !r.Start.IsZero() && !r.End.IsZero()
}

// CivilDate renders a timestamp as its IST calendar date. Matching on this
// string is what keeps records near midnight on the correct day; a UTC or
// local-time compare shifts them across the boundary.
func CivilDate(t time.Time) string {
	return t.In(IST).Format("2006-01-02")
}

// WindowForDate extracts the entry/exit times and locations for one IST
// civil day. A day with no record yields the "nd" sentinels and nil
// locations, never an error.
func WindowForDate(records []Record, date time.Time) Window {
	want := CivilDate(date)
	for _, rec := range records {
		if CivilDate(rec.Date) != want {
			continue
		}
		return Window{
			EntryTime:     displayTime(rec.EntryTime),
			ExitTime:      displayTime(rec.ExitTime),
			EntryLocation: rec.EntryLocation,
			ExitLocation:  rec.ExitLocation,
		}
	}
	return Window{EntryTime: NoData, ExitTime: NoData}
}

// SumDayCount totals fractional day credits over records whose IST civil
// date falls inside the inclusive range, or over all records when no range
// is given. Non-numeric day counts decode to zero upstream and contribute
// nothing.
func SumDayCount(records []Record, rng *DateRange) float64 {
	var lo, hi string
	if rng.valid() {
		lo, hi = CivilDate(rng.Start), CivilDate(rng.End)
	}
	var sum float64
	for _, rec := range records {
		if rng.valid() {
			day := CivilDate(rec.Date)
			if day < lo || day > hi {
				continue
			}
		}
		sum += float64(rec.DayCount)
	}
	return sum
}

func displayTime(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NoData
	}
	t, ok := parseLooseTime(raw)
	if !ok {
		slog.Warn("unparseable attendance timestamp", "value", raw)
		return InvalidTime
	}
	return t.In(IST).Format("15:04:05")
}

var abbrevMonths = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// parseLooseTime accepts the canonical RFC3339 format first and falls back
// to a pattern scan for the legacy "day, abbreviated month, year, HH:MM:SS"
// strings still present in old records. The fallback assumes IST wall time.
func parseLooseTime(raw string) (time.Time, bool) {
	// RFC1123 with a bare zone name is deliberately absent: Go would parse
	// "IST" as a zero-offset zone and shift the wall time. Those strings
	// fall through to the scan below, which treats them as IST wall time.
	for _, layout := range []string{time.RFC3339, time.RFC3339Nano, time.RFC1123Z} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	var (
		day, year, monthIdx = 0, 0, -1
		hh, mm, ss          int
		haveClock           bool
	)
	for _, field := range strings.Fields(strings.ReplaceAll(raw, ",", " ")) {
		switch {
		case strings.Contains(field, ":"):
			parts := strings.Split(field, ":")
			if len(parts) < 2 || len(parts) > 3 {
				return time.Time{}, false
			}
			var nums [3]int
			for i, p := range parts {
				n, err := strconv.Atoi(p)
				if err != nil {
					return time.Time{}, false
				}
				nums[i] = n
			}
			hh, mm, ss = nums[0], nums[1], nums[2]
			haveClock = true
		default:
			if n, err := strconv.Atoi(field); err == nil {
				if n > 31 {
					year = n
				} else {
					day = n
				}
				continue
			}
			for i, m := range abbrevMonths {
				if strings.EqualFold(field[:min(len(field), 3)], m) {
					monthIdx = i
					break
				}
			}
		}
	}
	if day == 0 || year == 0 || monthIdx < 0 || !haveClock {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(monthIdx+1), day, hh, mm, ss, 0, IST), true
}
