package apiv1

type GetSummaryRequest struct {
	AlcoholType string `json:"alcoholType"`
}

// Summary mirrors the statistics panel. MeanAbv and MeanIbu are omitted while there is
// nothing to average.
type Summary struct {
	AlcoholType             string   `json:"alcoholType"`
	WeekStart               string   `json:"weekStart"`
	WeeklyLimit             int32    `json:"weeklyLimit"`
	StandardDrinksConsumed  float64  `json:"standardDrinksConsumed"`
	StandardDrinksRemaining float64  `json:"standardDrinksRemaining"`
	VolumeConsumed          float64  `json:"volumeConsumed"`
	VolumeRemaining         float64  `json:"volumeRemaining"`
	VolumeUnit              string   `json:"volumeUnit"`
	FavoriteProducer        string   `json:"favoriteProducer"`
	FavoriteDrink           string   `json:"favoriteDrink"`
	FavoriteType            string   `json:"favoriteType"`
	MeanAbv                 *float64 `json:"meanAbv,omitempty"`
	MeanIbu                 *float64 `json:"meanIbu,omitempty"`
	DaysInRow               int32    `json:"daysInRow"`
	Warnings                []string `json:"warnings,omitempty"`
}

type GetSummaryResponse struct {
	Summary *Summary `json:"summary"`
}
