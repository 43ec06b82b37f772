package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMonthFilter(t *testing.T) {
	now := time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Valid filters", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"03/2024", "2024-03"},
			{"12/2023", "2023-12"},
			{"3/2024", "2024-03"},
			{"01/1999", "1999-01"},
			{" 03/2024 ", "2024-03"},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				assert.Equal(t, tc.expected, NormalizeMonthFilter(tc.input, now))
			})
		}
	})

	t.Run("Malformed input falls back to current month", func(t *testing.T) {
		testCases := []struct {
			input       string
			description string
		}{
			{"", "Empty string"},
			{"bogus", "Not a date at all"},
			{"13/2024", "Month out of range"},
			{"00/2024", "Month zero"},
			{"03-2024", "Wrong separator"},
			{"2024/03", "Swapped order"},
			{"03/24", "Two-digit year"},
			{"03/2024/01", "Too many parts"},
			{"ab/2024", "Non-numeric month"},
			{"03/abcd", "Non-numeric year"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				assert.Equal(t, "2024-07", NormalizeMonthFilter(tc.input, now))
			})
		}
	})
}

func TestCurrentMonthKey(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03", CurrentMonthKey(now))
}

func TestDisplayMonth(t *testing.T) {
	assert.Equal(t, "03/2024", DisplayMonth("2024-03"))
	assert.Equal(t, "12/1999", DisplayMonth("1999-12"))
	assert.Equal(t, "", DisplayMonth("bad"))
}
