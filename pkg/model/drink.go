package model

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"gorm.io/gorm"
)

type AlcoholType string

const (
	Beer   AlcoholType = "Beer"
	Wine   AlcoholType = "Wine"
	Liquor AlcoholType = "Liquor"
)

// NoVintage marks drinks where a vintage does not apply.
const NoVintage = -999

var ErrInvalidDrink = errors.New("invalid drink")

// Drink is a single logged consumption. CreatedAt doubles as the insertion timestamp.
type Drink struct {
	gorm.Model
	Date        string `gorm:"index;not null"`
	Name        string `gorm:"column:drink_name"`
	Type        string `gorm:"column:drink_type"`
	Subtype     string `gorm:"column:drink_subtype"`
	Producer    string
	ABV         float64
	IBU         float64
	Size        float64
	Rating      int
	Notes       string
	Vintage     int
	AlcoholType AlcoholType `gorm:"index"`

	SortOrder int `gorm:"-"`
}

func ParseAlcoholType(value string) (AlcoholType, error) {
	switch AlcoholType(value) {
	case Beer, Wine, Liquor:
		return AlcoholType(value), nil
	default:
		return "", fmt.Errorf("%w: unknown alcohol type %q", ErrInvalidDrink, value)
	}
}

// HasIBU reports whether the bitterness value is meaningful. Non-positive values mean "not applicable".
func (d Drink) HasIBU() bool {
	return d.IBU > 0
}

func (d Drink) HasVintage() bool {
	return d.Vintage != NoVintage
}

func (d Drink) Validate() error {
	var errs error

	if _, err := ParseDate(d.Date); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidDrink, d.Date))
	}

	if len(d.Name) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: name is required", ErrInvalidDrink))
	}

	if _, err := ParseAlcoholType(string(d.AlcoholType)); err != nil {
		errs = multierr.Append(errs, err)
	}

	if d.ABV < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: abv must not be negative", ErrInvalidDrink))
	}

	if d.Size < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: size must not be negative", ErrInvalidDrink))
	}

	return errs
}
