package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
)

// Monetary values are carried as int64 cents everywhere inside the domain.
// Decimal strings only exist at the edges: user input is parsed into cents,
// and cents are rendered back out for display.

// ParseAmount validates a decimal amount string and converts it to cents.
// Accepted shapes: "10", "10.5", "10.50", ".5". More than two decimal places
// are rounded half away from zero ("999.999" becomes 100000 cents).
// Negative values are rejected; the sign of a transaction lives in its kind.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: multiple decimal points", errs.ErrInvalidAmount)
	}

	whole := parts[0]
	frac := ""
	if len(parts) == 2 {
		frac = parts[1]
	}

	if whole == "" && frac == "" {
		return 0, fmt.Errorf("%w: no digits", errs.ErrInvalidAmount)
	}
	if whole == "" {
		whole = "0"
	}

	if !isDigits(whole) || (frac != "" && !isDigits(frac)) {
		return 0, fmt.Errorf("%w: not a decimal number", errs.ErrInvalidAmount)
	}

	wholeValue, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	if wholeValue > math.MaxInt64/100-1 {
		return 0, fmt.Errorf("%w: value too large", errs.ErrInvalidAmount)
	}

	cents := wholeValue * 100
	switch len(frac) {
	case 0:
	case 1:
		cents += int64(frac[0]-'0') * 10
	case 2:
		cents += int64(frac[0]-'0')*10 + int64(frac[1]-'0')
	default:
		cents += int64(frac[0]-'0')*10 + int64(frac[1]-'0')
		// Round half away from zero on the third decimal digit
		if frac[2] >= '5' {
			cents++
		}
	}

	return cents, nil
}

// CentsToDecimalString converts cents to a plain decimal string with exactly
// two decimal places, e.g. 1015 -> "10.15", -50 -> "-0.50".
func CentsToDecimalString(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	s := fmt.Sprintf("%d.%02d", cents/100, cents%100)
	if negative {
		return "-" + s
	}
	return s
}

// FormatCurrency renders cents for display using "." as the thousands
// separator and "," as the decimal separator: 123450 -> "1.234,50".
func FormatCurrency(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	whole := strconv.FormatInt(cents/100, 10)
	formatted := fmt.Sprintf("%s,%02d", groupThousands(whole), cents%100)
	if negative {
		return "-" + formatted
	}
	return formatted
}

// groupThousands inserts a "." every three digits from the right
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// isDigits reports whether s consists solely of ASCII digits
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
