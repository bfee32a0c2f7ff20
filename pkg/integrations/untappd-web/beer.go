package untappdweb

import (
	"strconv"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BuzzLog/pkg/model"
)

const styleSeparator = " - "

type BeerScraped struct {
	IDLink  string `attr:"href"          selector:"a.label"`
	Name    string `selector:".name > a"`
	Brewery string `selector:".brewery > a"`
	Style   string `selector:".style"`
	ABV     string `selector:".abv"`
	IBU     string `selector:".ibu"`
}

// FindBeer searches untappd for beers matching name and returns them as drinks with
// the name, producer, style, ABV and IBU filled in. Size, date and rating are left for
// the user.
func (u *UntappdWebIntegration) FindBeer(name string) ([]model.Drink, error) {
	collector := u.newCollector()

	var (
		errs    error
		results []model.Drink
	)

	collector.OnHTML(".beer-item", func(element *colly.HTMLElement) {
		scraped := BeerScraped{}

		err := element.Unmarshal(&scraped)
		if multierr.AppendInto(&errs, err) {
			u.logger.Error("failed to unmarshal scraped beer", zap.Error(err))

			return
		}

		u.logger.Info("successfully scraped item from results", zap.String("link", scraped.IDLink), zap.String("name", scraped.Name))

		results = append(results, drinkFromScraped(scraped))
	})

	collector.OnError(func(response *colly.Response, err error) {
		u.logger.Error("error while scraping beer search results", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	u.logger.Info("scraping query results", zap.String("query", name))
	multierr.AppendInto(&errs, collector.Visit(u.searchURL(name, "beer")))

	u.logger.Info("finished scraping query results", zap.Int("results", len(results)), zap.Error(errs))

	return results, errs
}

func drinkFromScraped(scraped BeerScraped) model.Drink {
	drinkType, subtype, _ := strings.Cut(strings.TrimSpace(scraped.Style), styleSeparator)

	return model.Drink{
		Name:        strings.TrimSpace(scraped.Name),
		Producer:    strings.TrimSpace(scraped.Brewery),
		Type:        drinkType,
		Subtype:     subtype,
		ABV:         extractABV(scraped),
		IBU:         extractIBU(scraped),
		Vintage:     model.NoVintage,
		AlcoholType: model.Beer,
	}
}

func extractABV(details BeerScraped) float64 {
	value, _, found := strings.Cut(strings.TrimSpace(details.ABV), "%")
	if !found {
		return 0
	}

	abv, _ := strconv.ParseFloat(strings.TrimSpace(value), 64)

	return abv
}

// extractIBU returns -1 when the listing has no bitterness value.
func extractIBU(details BeerScraped) float64 {
	text := strings.TrimSpace(details.IBU)
	if len(text) == 0 || strings.HasPrefix(text, "N/A") {
		return -1
	}

	ibu, err := strconv.ParseFloat(strings.Fields(text)[0], 64)
	if err != nil {
		return -1
	}

	return ibu
}
