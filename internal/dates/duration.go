package dates

import (
	"strconv"
	"time"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
)

// MonthsBetween returns the whole months from start to end, floored at zero.
// start must be YYYY-MM; end is YYYY-MM or "ongoing", which resolves to the
// calendar month of now. ok is false when either input is not canonical.
func MonthsBetween(start, end string, now time.Time) (months int, ok bool) {
	sy, sm, ok := parseYearMonth(start)
	if !ok {
		return 0, false
	}

	var ey, em int
	if end == types.Ongoing {
		ey, em = now.Year(), int(now.Month())
	} else if ey, em, ok = parseYearMonth(end); !ok {
		return 0, false
	}

	months = (ey-sy)*12 + (em - sm)
	if months < 0 {
		months = 0
	}
	return months, true
}

// DurationMonths is the duration stored on a record: defined only when both
// dates are YYYY-MM values. An ongoing end is left undefined here.
func DurationMonths(start, end string) *int {
	if !IsYearMonth(start) || !IsYearMonth(end) {
		return nil
	}
	months, ok := MonthsBetween(start, end, time.Now())
	if !ok {
		return nil
	}
	return &months
}

// parseYearMonth accepts exactly YYYY-MM with a month between 01 and 12
func parseYearMonth(s string) (year, month int, ok bool) {
	if len(s) != 7 || s[4] != '-' {
		return 0, 0, false
	}
	year, err := strconv.Atoi(s[:4])
	if err != nil {
		return 0, 0, false
	}
	month, err = strconv.Atoi(s[5:])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}
