// Package dates canonicalizes the many date shapes that reach the service
// (form inputs, ISO strings, stored values) into the DD/MM/YYYY key used for
// uniqueness checks and queries.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Layout is the canonical key format.
const Layout = "02/01/2006"

var (
	slashed = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	// Day-first locale forms: 15/03/2024, 15.03.2024, 15-03-2024, optionally
	// followed by a time ("5/3/2024, 10:00:00 am").
	dayFirst = regexp.MustCompile(`^(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{4})(?:,?\s+.*)?$`)
)

// Normalize converts v into DD/MM/YYYY.
//
// Day/month/year strings (slash, dot or dash separated, with or without a
// trailing time) are only zero-padded, never reinterpreted. Everything else is parsed in the local zone and formatted from
// local calendar fields. Unparseable input is returned unchanged so validation
// can reject it; empty input yields "".
func Normalize(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return normalizeString(t)
	case time.Time:
		return formatLocal(t)
	case *time.Time:
		if t == nil {
			return ""
		}
		return formatLocal(*t)
	default:
		return fmt.Sprint(v)
	}
}

func normalizeString(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	if m := dayFirst.FindStringSubmatch(trimmed); m != nil {
		return pad(m[1], 2) + "/" + pad(m[2], 2) + "/" + m[3]
	}
	if t, err := time.ParseInLocation("2006-01-02", trimmed, time.Local); err == nil {
		return formatLocal(t)
	}
	t, err := dateparse.ParseIn(trimmed, time.Local,
		dateparse.PreferMonthFirst(false), dateparse.RetryAmbiguousDateWithSwap(true))
	if err != nil {
		return s
	}
	return formatLocal(t)
}

func formatLocal(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(time.Local).Format(Layout)
}

func pad(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// Parse returns local midnight of the date v normalizes to. The second result
// is false when v is empty or not a real calendar date (e.g. 31/02/2024).
func Parse(v any) (time.Time, bool) {
	m := slashed.FindStringSubmatch(Normalize(v))
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, false
	}
	return t, true
}

// Valid reports whether v normalizes to a real calendar date.
func Valid(v any) bool {
	_, ok := Parse(v)
	return ok
}

// Today is the current local date in canonical form.
func Today() string {
	return formatLocal(time.Now())
}

// InRange reports whether date falls within [from, to] by calendar day.
// A blank bound leaves that side open. An unparseable date is outside any
// bounded range; a bound that does not parse is treated as absent.
func InRange(date, from, to string) bool {
	lo, hasLo := Parse(from)
	hi, hasHi := Parse(to)
	if !hasLo && !hasHi {
		return true
	}
	d, ok := Parse(date)
	if !ok {
		return false
	}
	if hasLo && d.Before(lo) {
		return false
	}
	if hasHi && d.After(hi) {
		return false
	}
	return true
}
