package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droscher.com/BuzzLog/pkg/model"
	"droscher.com/BuzzLog/pkg/repository"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		kind     repository.FilterKind
		text     string
		expected repository.Filter
	}{
		{repository.FilterName, "Lights Out", repository.NameFilter{Name: "Lights Out"}},
		{repository.FilterType, "Stout", repository.TypeFilter{Type: "Stout"}},
		{repository.FilterSubtype, "Imperial", repository.SubtypeFilter{Subtype: "Imperial"}},
		{repository.FilterProducer, "Twin Sails", repository.ProducerFilter{Producer: "Twin Sails"}},
		{repository.FilterAlcoholType, "Wine", repository.AlcoholTypeFilter{AlcoholType: model.Wine}},
		{repository.FilterAfterDate, "2024-02-29", repository.AfterDateFilter{Date: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)}},
		{repository.FilterRating, "4", repository.RatingFilter{Rating: 4}},
		{repository.FilterNameAndProducer, "Lights Out -- (Twin Sails)", repository.NameAndProducerFilter{Name: "Lights Out", Producer: "Twin Sails"}},
	}

	for _, test := range tests {
		t.Run(string(test.kind), func(t *testing.T) {
			filter, err := repository.ParseFilter(test.kind, test.text)
			require.NoError(t, err)
			assert.Equal(t, test.expected, filter)
			assert.Equal(t, test.kind, filter.Kind())
		})
	}
}

func TestParseFilter_UnknownKind(t *testing.T) {
	filter, err := repository.ParseFilter("Colour", "amber")

	assert.Nil(t, filter)
	require.ErrorIs(t, err, repository.ErrUnknownFilter)
}

func TestParseFilter_InvalidValues(t *testing.T) {
	for kind, text := range map[repository.FilterKind]string{
		repository.FilterAlcoholType:     "Cider",
		repository.FilterAfterDate:       "yesterday",
		repository.FilterRating:          "five",
		repository.FilterNameAndProducer: "Lights Out (Twin Sails)",
	} {
		_, err := repository.ParseFilter(kind, text)
		require.ErrorIs(t, err, repository.ErrInvalidFilter, kind)
	}
}

func TestNameAndProducerRoundTrip(t *testing.T) {
	text := repository.FormatNameAndProducer("Precious Bet", "Paronomastic (Homebrew)")
	assert.Equal(t, "Precious Bet -- (Paronomastic (Homebrew))", text)

	name, producer, err := repository.ParseNameAndProducer(text)
	require.NoError(t, err)
	assert.Equal(t, "Precious Bet", name)
	assert.Equal(t, "Paronomastic (Homebrew)", producer)
}
