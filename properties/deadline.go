package properties

import (
	"regexp"
	"strconv"
	"time"
)

// Deadline formats, tried in order. The sheets mix ISO dates with
// US-style slash and dash dates, with both 2- and 4-digit years.
var (
	isoDate   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	slashDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2}|\d{4})$`)
	dashDate  = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{2}|\d{4})$`)
)

// ParseDeadline infers a calendar date from a sheet date string.
// Recognized formats: YYYY-MM-DD, M/D/YY, M/D/YYYY, M-D-YY, M-D-YYYY.
// Two-digit years pivot at 50: above 50 is 1900s, otherwise 2000s.
// Returns ok=false for anything unrecognized or out of calendar range;
// never panics. Dates are local time, no timezone conversion.
func ParseDeadline(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}

	if m := isoDate.FindStringSubmatch(raw); m != nil {
		return makeDate(m[3], m[2], m[1])
	}
	if m := slashDate.FindStringSubmatch(raw); m != nil {
		return makeDate(m[2], m[1], m[3])
	}
	if m := dashDate.FindStringSubmatch(raw); m != nil {
		return makeDate(m[2], m[1], m[3])
	}

	return time.Time{}, false
}

func makeDate(dayStr, monthStr, yearStr string) (time.Time, bool) {
	day, _ := strconv.Atoi(dayStr)
	month, _ := strconv.Atoi(monthStr)
	year, _ := strconv.Atoi(yearStr)

	if len(yearStr) == 2 {
		if year > 50 {
			year += 1900
		} else {
			year += 2000
		}
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// time.Date normalizes overflow (Feb 30 becomes Mar 2); treat any
	// normalization as unparseable
	if d.Day() != day || d.Month() != time.Month(month) || d.Year() != year {
		return time.Time{}, false
	}

	return d, true
}
