package model

type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

type LimitStandard string

const (
	NIAAA       LimitStandard = "NIAAA"
	CustomLimit LimitStandard = "Custom"
)

type Units string

const (
	Imperial Units = "Imperial"
	Metric   Units = "Metric"
)

type DateCalculationMethod string

const (
	Fixed   DateCalculationMethod = "Fixed"
	Rolling DateCalculationMethod = "Rolling"
)

// Options are the user's drinking preferences. StdDrinkSize is kept as a string,
// in ounces, the way it is written to the settings file.
type Options struct {
	Sex                   Sex                   `default:"male"`
	LimitStandard         LimitStandard         `default:"NIAAA"`
	WeeklyLimit           int                   `default:"-1"`
	StdDrinkSize          string                `default:"0.6"`
	StdDrinkCountry       string                `default:"United States"`
	Units                 Units                 `default:"Imperial"`
	WeekdayStart          string                `default:"Sunday"`
	DateCalculationMethod DateCalculationMethod `default:"Fixed"`
}
