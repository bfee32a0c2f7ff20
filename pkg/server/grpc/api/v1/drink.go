// Package apiv1 holds the request and response messages of the BuzzLog API.
package apiv1

import "time"

// Drink is a logged drink. Ibu is omitted for drinks without a bitterness value and
// Vintage for drinks without a vintage.
type Drink struct {
	Id          uint64    `json:"id,omitempty"`
	Date        string    `json:"date"`
	Name        string    `json:"name"`
	AlcoholType string    `json:"alcoholType"`
	Type        string    `json:"type,omitempty"`
	Subtype     string    `json:"subtype,omitempty"`
	Producer    string    `json:"producer,omitempty"`
	Abv         float64   `json:"abv"`
	Ibu         *float64  `json:"ibu,omitempty"`
	Size        float64   `json:"size"`
	Rating      int32     `json:"rating"`
	Notes       string    `json:"notes,omitempty"`
	Vintage     *int32    `json:"vintage,omitempty"`
	SortOrder   int32     `json:"sortOrder,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AddDrinkRequest struct {
	Drink *Drink `json:"drink"`
}

type AddDrinkResponse struct {
	Drink *Drink `json:"drink"`
}

// UpdateDrinkRequest changes only the fields that are set.
type UpdateDrinkRequest struct {
	Id          uint64   `json:"id"`
	Date        *string  `json:"date,omitempty"`
	Name        *string  `json:"name,omitempty"`
	AlcoholType *string  `json:"alcoholType,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Subtype     *string  `json:"subtype,omitempty"`
	Producer    *string  `json:"producer,omitempty"`
	Abv         *float64 `json:"abv,omitempty"`
	Ibu         *float64 `json:"ibu,omitempty"`
	Size        *float64 `json:"size,omitempty"`
	Rating      *int32   `json:"rating,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
	Vintage     *int32   `json:"vintage,omitempty"`
}

type UpdateDrinkResponse struct {
	Drink *Drink `json:"drink"`
}

type DeleteDrinkRequest struct {
	Id uint64 `json:"id"`
}

// ListDrinksRequest lists every drink when FilterKind is empty.
type ListDrinksRequest struct {
	FilterKind  string `json:"filterKind,omitempty"`
	FilterValue string `json:"filterValue,omitempty"`
}

type ListDrinksResponse struct {
	Drinks []*Drink `json:"drinks"`
}

type GetLatestNotesRequest struct {
	Name        string `json:"name"`
	AlcoholType string `json:"alcoholType"`
}

// ListValuesRequest asks for the distinct values of one of name, type, subtype or producer,
// or for name_producer labels usable with the Name & Producer filter.
type ListValuesRequest struct {
	AlcoholType string `json:"alcoholType"`
	Column      string `json:"column"`
}

type ListValuesResponse struct {
	Values []string `json:"values"`
}

type LookupBeerRequest struct {
	Query string `json:"query"`
}

type LookupBeerResponse struct {
	Drinks []*Drink `json:"drinks"`
}
