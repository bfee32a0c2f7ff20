package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/BuzzLog/pkg/model"
	"droscher.com/BuzzLog/pkg/stats"
)

var (
	ErrDrinkNotFound = errors.New("drink not found")
	ErrMissingID     = errors.New("drink has no id")
	ErrUnknownColumn = errors.New("unknown column")
)

// Column is a drink attribute that can be listed for pick lists.
type Column string

const (
	NameColumn     Column = "drink_name"
	TypeColumn     Column = "drink_type"
	SubtypeColumn  Column = "drink_subtype"
	ProducerColumn Column = "producer"
)

//go:generate mockery --name=DrinkRepository --output=../../mocks
type DrinkRepository interface { //nolint:interfacebloat // this is an acceptable interface
	AddDrink(ctx context.Context, drink model.Drink) (*model.Drink, error)
	DeleteDrink(ctx context.Context, drinkID uint) error
	DistinctNamesAndProducers(ctx context.Context, alcoholType model.AlcoholType) ([]string, error)
	DistinctValues(ctx context.Context, alcoholType model.AlcoholType, column Column) ([]string, error)
	Filter(ctx context.Context, filter Filter) ([]*model.Drink, error)
	GetDrink(ctx context.Context, drinkID uint) (*model.Drink, error)
	GetDrinkByName(ctx context.Context, alcoholType model.AlcoholType, name string) (*model.Drink, error)
	GetDrinkByNameAndProducer(ctx context.Context, alcoholType model.AlcoholType, name string, producer string) (*model.Drink, error)
	GetLatestNotes(ctx context.Context, name string, alcoholType model.AlcoholType) (string, error)
	HasDrinkOn(ctx context.Context, date time.Time) (bool, error)
	ListDrinks(ctx context.Context) ([]*model.Drink, error)
	Truncate(ctx context.Context) error
	UpdateDrink(ctx context.Context, drink *model.Drink) (*model.Drink, error)
}

func (r *Repository) AddDrink(ctx context.Context, drink model.Drink) (*model.Drink, error) {
	if result := r.DB.WithContext(ctx).Create(&drink); result.Error != nil {
		return nil, result.Error
	}

	return &drink, nil
}

func (r *Repository) GetDrink(ctx context.Context, drinkID uint) (*model.Drink, error) {
	var drink model.Drink

	result := r.DB.WithContext(ctx).First(&drink, drinkID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrDrinkNotFound, drinkID)
		}

		return nil, result.Error
	}

	return &drink, nil
}

func (r *Repository) UpdateDrink(ctx context.Context, drink *model.Drink) (*model.Drink, error) {
	if drink.ID == 0 {
		return nil, ErrMissingID
	}

	if result := r.DB.WithContext(ctx).Save(drink); result.Error != nil {
		return nil, result.Error
	}

	return drink, nil
}

func (r *Repository) DeleteDrink(ctx context.Context, drinkID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Drink{}, drinkID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrDrinkNotFound, drinkID)
	}

	return nil
}

// Truncate permanently removes every drink.
func (r *Repository) Truncate(ctx context.Context) error {
	result := r.DB.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().
		Delete(&model.Drink{})
	if result.Error != nil {
		return result.Error
	}

	r.Logger.Warn("truncated drinks", zap.Int64("rows", result.RowsAffected))

	return nil
}

func (r *Repository) ListDrinks(ctx context.Context) ([]*model.Drink, error) {
	var drinks []*model.Drink

	if result := r.DB.WithContext(ctx).Order("date, id").Find(&drinks); result.Error != nil {
		return nil, result.Error
	}

	SortByDateID(drinks)

	return drinks, nil
}

func (r *Repository) Filter(ctx context.Context, filter Filter) ([]*model.Drink, error) {
	var drinks []*model.Drink

	query, args, err := whereClause(filter)
	if err != nil {
		return nil, err
	}

	result := r.DB.WithContext(ctx).Where(query, args...).Order("date, id").Find(&drinks)
	if result.Error != nil {
		r.Logger.Error("error filtering drinks", zap.String("filter", string(filter.Kind())), zap.Error(result.Error))

		return nil, result.Error
	}

	SortByDateID(drinks)

	return drinks, nil
}

// HasDrinkOn reports whether at least one drink was logged on the calendar day of date.
func (r *Repository) HasDrinkOn(ctx context.Context, date time.Time) (bool, error) {
	var ids []uint

	result := r.DB.WithContext(ctx).Model(&model.Drink{}).
		Where("date = ?", model.FormatDate(date)).
		Limit(1).
		Pluck("id", &ids)
	if result.Error != nil {
		return false, result.Error
	}

	return len(ids) > 0, nil
}

// GetLatestNotes returns the notes of the most recently inserted entry of a drink that has any.
func (r *Repository) GetLatestNotes(ctx context.Context, name string, alcoholType model.AlcoholType) (string, error) {
	var notes []string

	result := r.DB.WithContext(ctx).Model(&model.Drink{}).
		Where("drink_name = ? AND alcohol_type = ? AND notes <> ''", name, string(alcoholType)).
		Order("id desc").
		Limit(1).
		Pluck("notes", &notes)
	if result.Error != nil {
		return "", result.Error
	}

	if len(notes) == 0 {
		return "", nil
	}

	return notes[0], nil
}

// GetDrinkByName returns the latest entry, by date then id, of the named drink whatever
// its producer.
func (r *Repository) GetDrinkByName(ctx context.Context, alcoholType model.AlcoholType, name string) (*model.Drink, error) {
	query := r.DB.WithContext(ctx).Where("drink_name = ? AND alcohol_type = ?", name, string(alcoholType))

	return latestDrink(query, name)
}

// GetDrinkByNameAndProducer is GetDrinkByName restricted to one producer. The producer is
// compared exactly, so an empty producer only matches entries that have none.
func (r *Repository) GetDrinkByNameAndProducer(ctx context.Context, alcoholType model.AlcoholType, name string, producer string) (*model.Drink, error) {
	query := r.DB.WithContext(ctx).
		Where("drink_name = ? AND alcohol_type = ? AND producer = ?", name, string(alcoholType), producer)

	return latestDrink(query, name)
}

func latestDrink(query *gorm.DB, name string) (*model.Drink, error) {
	var drinks []*model.Drink

	if result := query.Find(&drinks); result.Error != nil {
		return nil, result.Error
	}

	if len(drinks) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrDrinkNotFound, name)
	}

	SortByDateID(drinks)

	return drinks[len(drinks)-1], nil
}

func (r *Repository) DistinctValues(ctx context.Context, alcoholType model.AlcoholType, column Column) ([]string, error) {
	var values []string

	switch column {
	case NameColumn, TypeColumn, SubtypeColumn, ProducerColumn:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}

	result := r.DB.WithContext(ctx).Model(&model.Drink{}).
		Where("alcohol_type = ?", string(alcoholType)).
		Distinct(string(column)).
		Pluck(string(column), &values)
	if result.Error != nil {
		return nil, result.Error
	}

	values = slices.DeleteFunc(values, func(value string) bool { return len(value) == 0 })
	sort.SliceStable(values, func(i, j int) bool { return stats.CompareStrings(values[i], values[j]) })

	return values, nil
}

// DistinctNamesAndProducers lists every name and producer pair of an alcohol type as
// "<name> -- (<producer>)" labels, the form the Name & Producer filter parses.
func (r *Repository) DistinctNamesAndProducers(ctx context.Context, alcoholType model.AlcoholType) ([]string, error) {
	var pairs []struct {
		Name     string `gorm:"column:drink_name"`
		Producer string `gorm:"column:producer"`
	}

	result := r.DB.WithContext(ctx).Model(&model.Drink{}).
		Where("alcohol_type = ?", string(alcoholType)).
		Distinct("drink_name", "producer").
		Scan(&pairs)
	if result.Error != nil {
		return nil, result.Error
	}

	values := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		values = append(values, FormatNameAndProducer(pair.Name, pair.Producer))
	}

	sort.SliceStable(values, func(i, j int) bool { return stats.CompareStrings(values[i], values[j]) })

	return values, nil
}

// SortByDateID orders drinks by date and then id, the id standing in for insertion order
// on the same day, and numbers them from 1 in that order.
func SortByDateID(drinks []*model.Drink) {
	sort.SliceStable(drinks, func(i, j int) bool {
		if drinks[i].Date != drinks[j].Date {
			return drinks[i].Date < drinks[j].Date
		}

		return drinks[i].ID < drinks[j].ID
	})

	for index, drink := range drinks {
		drink.SortOrder = index + 1
	}
}
