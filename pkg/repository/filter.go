package repository

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"droscher.com/BuzzLog/pkg/model"
)

type FilterKind string

const (
	FilterName            FilterKind = "Name"
	FilterType            FilterKind = "Type"
	FilterSubtype         FilterKind = "Subtype"
	FilterProducer        FilterKind = "Producer"
	FilterAlcoholType     FilterKind = "Alcohol Type"
	FilterAfterDate       FilterKind = "After Date"
	FilterRating          FilterKind = "Rating"
	FilterNameAndProducer FilterKind = "Name & Producer"
)

const (
	producerPrefix = " -- ("
	producerSuffix = ")"
)

var (
	ErrUnknownFilter = errors.New("unknown filter")
	ErrInvalidFilter = errors.New("invalid filter value")
)

// Filter selects drinks by a single column, a date range or name and producer together.
// The set of filters is closed: only the types in this file implement it.
type Filter interface {
	Kind() FilterKind
	isFilter()
}

type NameFilter struct{ Name string }

type TypeFilter struct{ Type string }

type SubtypeFilter struct{ Subtype string }

type ProducerFilter struct{ Producer string }

type AlcoholTypeFilter struct{ AlcoholType model.AlcoholType }

// AfterDateFilter matches drinks dated on or after Date.
type AfterDateFilter struct{ Date time.Time }

type RatingFilter struct{ Rating int }

type NameAndProducerFilter struct {
	Name     string
	Producer string
}

func (NameFilter) Kind() FilterKind            { return FilterName }
func (TypeFilter) Kind() FilterKind            { return FilterType }
func (SubtypeFilter) Kind() FilterKind         { return FilterSubtype }
func (ProducerFilter) Kind() FilterKind        { return FilterProducer }
func (AlcoholTypeFilter) Kind() FilterKind     { return FilterAlcoholType }
func (AfterDateFilter) Kind() FilterKind       { return FilterAfterDate }
func (RatingFilter) Kind() FilterKind          { return FilterRating }
func (NameAndProducerFilter) Kind() FilterKind { return FilterNameAndProducer }

func (NameFilter) isFilter()            {}
func (TypeFilter) isFilter()            {}
func (SubtypeFilter) isFilter()         {}
func (ProducerFilter) isFilter()        {}
func (AlcoholTypeFilter) isFilter()     {}
func (AfterDateFilter) isFilter()       {}
func (RatingFilter) isFilter()          {}
func (NameAndProducerFilter) isFilter() {}

// ParseFilter builds a filter from a filter key and the text the user typed for it.
//
//nolint:cyclop // one branch per filter kind
func ParseFilter(kind FilterKind, text string) (Filter, error) {
	switch kind {
	case FilterName:
		return NameFilter{Name: text}, nil
	case FilterType:
		return TypeFilter{Type: text}, nil
	case FilterSubtype:
		return SubtypeFilter{Subtype: text}, nil
	case FilterProducer:
		return ProducerFilter{Producer: text}, nil
	case FilterAlcoholType:
		alcoholType, err := model.ParseAlcoholType(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
		}

		return AlcoholTypeFilter{AlcoholType: alcoholType}, nil
	case FilterAfterDate:
		date, err := model.ParseDate(text)
		if err != nil {
			return nil, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidFilter, text)
		}

		return AfterDateFilter{Date: date}, nil
	case FilterRating:
		rating, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("%w: rating %q is not a number", ErrInvalidFilter, text)
		}

		return RatingFilter{Rating: rating}, nil
	case FilterNameAndProducer:
		name, producer, err := ParseNameAndProducer(text)
		if err != nil {
			return nil, err
		}

		return NameAndProducerFilter{Name: name, Producer: producer}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, kind)
	}
}

// FormatNameAndProducer renders the "<name> -- (<producer>)" label used to tell apart
// drinks that share a name.
func FormatNameAndProducer(name string, producer string) string {
	return name + producerPrefix + producer + producerSuffix
}

func ParseNameAndProducer(text string) (string, string, error) {
	name, rest, found := strings.Cut(text, producerPrefix)
	if !found || !strings.HasSuffix(rest, producerSuffix) {
		return "", "", fmt.Errorf("%w: %q is not of the form \"<name> -- (<producer>)\"", ErrInvalidFilter, text)
	}

	return name, strings.TrimSuffix(rest, producerSuffix), nil
}

func whereClause(filter Filter) (string, []any, error) {
	switch filter := filter.(type) {
	case NameFilter:
		return "drink_name = ?", []any{filter.Name}, nil
	case TypeFilter:
		return "drink_type = ?", []any{filter.Type}, nil
	case SubtypeFilter:
		return "drink_subtype = ?", []any{filter.Subtype}, nil
	case ProducerFilter:
		return "producer = ?", []any{filter.Producer}, nil
	case AlcoholTypeFilter:
		return "alcohol_type = ?", []any{string(filter.AlcoholType)}, nil
	case AfterDateFilter:
		return "date >= ?", []any{model.FormatDate(filter.Date)}, nil
	case RatingFilter:
		return "rating = ?", []any{filter.Rating}, nil
	case NameAndProducerFilter:
		return "drink_name = ? AND producer = ?", []any{filter.Name, filter.Producer}, nil
	default:
		return "", nil, fmt.Errorf("%w: %T", ErrUnknownFilter, filter)
	}
}
