package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// maxMajorAmount keeps ToMinorUnits inside int64.
var maxMajorAmount = decimal.NewFromInt(math.MaxInt64).Shift(-minorUnitExponent).Floor()

const (
	// maxAmountLength bounds the digits handed to decimal.
	maxAmountLength = 64
	// maxAmountExponent bounds the scale handed to decimal; rescaling cost grows
	// with the exponent, not the input length.
	maxAmountExponent = 20
)

var amountPattern = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE]([+-]?\d+))?$`)

// ParseAmount reads a major-unit amount written as a decimal number ("100",
// "100.0", "1e2"). It must denote a whole, positive value.
func ParseAmount(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, NewInvalidAmountError("(missing)")
	}

	if len(value) > maxAmountLength {
		return 0, NewInvalidAmountError(value[:maxAmountLength] + "...")
	}

	match := amountPattern.FindStringSubmatch(value)
	if match == nil {
		return 0, NewInvalidAmountError(value)
	}
	if match[1] != "" {
		exp, err := strconv.Atoi(match[1])
		if err != nil || exp > maxAmountExponent || exp < -maxAmountExponent {
			return 0, NewInvalidAmountError(value)
		}
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return 0, NewInvalidAmountError(value)
	}

	if !amount.IsInteger() || !amount.IsPositive() || amount.GreaterThan(maxMajorAmount) {
		return 0, NewInvalidAmountError(value)
	}

	return amount.IntPart(), nil
}
