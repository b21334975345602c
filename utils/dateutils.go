package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateKeyFormat is the canonical YYYY-MM-DD key used for per-date buckets.
const DateKeyFormat = "2006-01-02"

var ErrInvalidDate = errors.New("unrecognized date")

var (
	dayMonthYearRe = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]+)\s+(\d{4})$`)
	monthDayYearRe = regexp.MustCompile(`^([A-Za-z]+)\s+(\d{1,2}),?\s+(\d{4})$`)
	isoDateRe      = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
)

// monthNames is fixed so parsing never depends on system locale.
var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// fallbackLayouts are tried when no explicit pattern matches.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006/01/02",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// FormatDate renders a date key.
func FormatDate(t time.Time) string {
	return t.Format(DateKeyFormat)
}

// FormatDateReadable renders a verbose date like "Monday, January 2nd".
// No year, matching the bot's reply format.
func FormatDateReadable(t time.Time) string {
	return fmt.Sprintf("%s, %s %s", t.Weekday(), t.Month(), ordinal(t.Day()))
}

func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// DayOfWeek returns the lowercase English weekday name used as a DayTasks key.
func DayOfWeek(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Sunday beginning the week containing t.
// Weeks start on Sunday; weekly progress windows depend on this convention.
func StartOfWeek(t time.Time) time.Time {
	d := startOfDay(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// EndOfWeek returns the Saturday ending the week containing t.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 6)
}

// IsInCurrentWeek reports whether t falls within the week containing "now",
// Sunday through Saturday inclusive. Comparison is by calendar day, so
// weekly counters roll over at the Saturday/Sunday boundary with no
// explicit reset.
func IsInCurrentWeek(t time.Time) bool {
	now := time.Now()
	d := startOfDay(t)
	return !d.Before(StartOfWeek(now)) && !d.After(EndOfWeek(now))
}

// Tomorrow returns the current time shifted one day forward.
func Tomorrow() time.Time {
	return time.Now().AddDate(0, 0, 1)
}

// ParseDate accepts "D Month YYYY", "Month D, YYYY" and "YYYY-M-D".
// Month names are matched case-insensitively against the full English
// names. Day, month and year bounds are checked and the result is
// re-validated through date construction so impossible combinations like
// 30 February are rejected. A few generic layouts are tried as a fallback;
// ErrInvalidDate is returned when nothing matches.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	if m := dayMonthYearRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		if month, ok := monthIndex(m[2]); ok {
			if t, ok := buildDate(year, month, day); ok {
				return t, nil
			}
		}
	}

	if m := monthDayYearRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if month, ok := monthIndex(m[1]); ok {
			if t, ok := buildDate(year, month, day); ok {
				return t, nil
			}
		}
	}

	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if t, ok := buildDate(year, month-1, day); ok {
			return t, nil
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

func monthIndex(name string) (int, bool) {
	lower := strings.ToLower(name)
	for i, m := range monthNames {
		if m == lower {
			return i, true
		}
	}
	return 0, false
}

// buildDate validates bounds (month is 0-indexed here) and round-trips the
// components through time.Date to catch overflow normalization.
func buildDate(year, month, day int) (time.Time, bool) {
	if day < 1 || day > 31 || month < 0 || month > 11 || year < 1900 || year > 2100 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.Local)
	if t.Year() != year || int(t.Month()) != month+1 || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
