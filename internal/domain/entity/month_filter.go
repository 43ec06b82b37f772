package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthKeyLayout is the internal year-month comparison key format
const MonthKeyLayout = "2006-01"

// CurrentMonthKey returns the YYYY-MM key for the month of now
func CurrentMonthKey(now time.Time) string {
	return now.Format(MonthKeyLayout)
}

// NormalizeMonthFilter converts user-supplied "MM/YYYY" input into the
// internal "YYYY-MM" comparison key, zero-padding the month. Malformed input
// (wrong shape, non-numeric, month out of range) is never an error; it falls
// back to the month of now.
func NormalizeMonthFilter(input string, now time.Time) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return CurrentMonthKey(now)
	}

	parts := strings.Split(input, "/")
	if len(parts) != 2 {
		return CurrentMonthKey(now)
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return CurrentMonthKey(now)
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 4 || year < 1 {
		return CurrentMonthKey(now)
	}

	return fmt.Sprintf("%04d-%02d", year, month)
}

// DisplayMonth converts an internal "YYYY-MM" key back to the "MM/YYYY" form
// shown to the user
func DisplayMonth(key string) string {
	if len(key) < 7 {
		return ""
	}
	return key[5:7] + "/" + key[0:4]
}
