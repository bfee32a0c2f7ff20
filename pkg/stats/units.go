package stats

import (
	"math"
	"strconv"
	"strings"
)

const (
	mlPerOz = 29.5735

	// machineEpsilon is the distance from 1.0 to the next representable float64.
	machineEpsilon = 0x1p-52
)

func OzToML(oz float64) float64 {
	return oz * mlPerOz
}

func MLToOz(ml float64) float64 {
	return ml / mlPerOz
}

// RoundToTwoDecimalPoints rounds half-up: floor(x*100+0.5)/100. The scaling is done on the
// shortest decimal representation of x so that values such as 1.005 round to 1.01.
func RoundToTwoDecimalPoints(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}

	return math.Floor(scaleByHundred(value)+0.5) / 100 //nolint:mnd // two decimal places
}

func scaleByHundred(value float64) float64 {
	formatted := strconv.FormatFloat(value, 'e', -1, 64)

	mantissa, exponent, found := strings.Cut(formatted, "e")
	if !found {
		return value * 100 //nolint:mnd // two decimal places
	}

	exp, err := strconv.Atoi(exponent)
	if err != nil {
		return value * 100 //nolint:mnd // two decimal places
	}

	scaled, err := strconv.ParseFloat(mantissa+"e"+strconv.Itoa(exp+2), 64)
	if err != nil {
		return value * 100 //nolint:mnd // two decimal places
	}

	return scaled
}

// DoubleToString formats a value rounded to two decimal places without trailing zeros.
func DoubleToString(value float64) string {
	return strconv.FormatFloat(RoundToTwoDecimalPoints(value), 'f', -1, 64)
}

// EqualDouble is exact equality with machine-epsilon tolerance. Callers that want a
// looser tolerance have to compare themselves.
func EqualDouble(a, b float64) bool {
	return math.Abs(a-b) < machineEpsilon
}

// CompareStrings orders strings alphabetically ignoring case. It is meant as a sort comparator.
func CompareStrings(lhs, rhs string) bool {
	return strings.ToUpper(lhs) < strings.ToUpper(rhs)
}
