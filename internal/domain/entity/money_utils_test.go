package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"100.00", 10000},
			{"0.01", 1},
			{"0.10", 10},
			{"1", 100},
			{"1.5", 150},
			{".5", 50},
			{"1234567.89", 123456789},
			{"0.00", 0},
			{"0", 0},
			{"  10.50  ", 1050},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				cents, err := ParseAmount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Rounding beyond two decimals", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"999.999", 100000},
			{"1.234", 123},
			{"1.235", 124},
			{"0.005", 1},
			{"2.9999", 300},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				cents, err := ParseAmount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			errorType   error
			description string
		}{
			{"", errs.ErrInvalidAmount, "Empty string"},
			{"   ", errs.ErrInvalidAmount, "Whitespace only"},
			{"-1.00", errs.ErrNegativeAmount, "Negative amount"},
			{"abc", errs.ErrInvalidAmount, "Non-numeric"},
			{"1,000.00", errs.ErrInvalidAmount, "Comma as thousands separator"},
			{"1.00.00", errs.ErrInvalidAmount, "Multiple decimal points"},
			{"$100", errs.ErrInvalidAmount, "Currency symbol"},
			{".", errs.ErrInvalidAmount, "Lone decimal point"},
			{"1e5", errs.ErrInvalidAmount, "Scientific notation"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseAmount(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})

	t.Run("Edge cases", func(t *testing.T) {
		// Very large valid number
		cents, err := ParseAmount("9999999999.99")
		assert.NoError(t, err)
		assert.Equal(t, int64(999999999999), cents)

		// Beyond what cents can represent
		_, err = ParseAmount("99999999999999999999")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestCentsToDecimalString(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{10000, "100.00"},
		{1, "0.01"},
		{10, "0.10"},
		{0, "0.00"},
		{123456789, "1234567.89"},
		{-50, "-0.50"},
		{-10000, "-100.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, CentsToDecimalString(tc.cents))
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{123450, "1.234,50"},
		{0, "0,00"},
		{100000, "1.000,00"},
		{50, "0,50"},
		{300000, "3.000,00"},
		{123456789, "1.234.567,89"},
		{-123450, "-1.234,50"},
		{99999, "999,99"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatCurrency(tc.cents))
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	// The display form of a parsed value matches the documented examples
	cents, err := ParseAmount("1234.5")
	assert.NoError(t, err)
	assert.Equal(t, "1.234,50", FormatCurrency(cents))

	cents, err = ParseAmount("999.999")
	assert.NoError(t, err)
	assert.Equal(t, "1.000,00", FormatCurrency(cents))
}
