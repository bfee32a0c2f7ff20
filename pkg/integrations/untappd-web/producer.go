package untappdweb

import (
	"encoding/json"
	"strconv"

	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type BreweryJSON struct {
	Name string `json:"name"`
}

// FindProducer searches untappd for breweries matching name and returns their names as
// listed on each brewery page. Breweries without any ratings are skipped.
func (u *UntappdWebIntegration) FindProducer(name string) ([]string, error) {
	collector := u.newCollector()

	var (
		errs    error
		results []string
	)

	collector.OnHTML(".beer-item", func(element *colly.HTMLElement) {
		ratingString := element.ChildAttr(".rating > div.caps", "data-rating")
		rating, _ := strconv.ParseFloat(ratingString, 64)

		if rating > 0.0 {
			breweryURI := element.ChildAttr(".name > a", "href")

			producer, err := u.getProducerFromURI(breweryURI, collector.Clone())
			if multierr.AppendInto(&errs, err) {
				return
			}

			results = append(results, producer)
		}
	})

	multierr.AppendInto(&errs, collector.Visit(u.searchURL(name, "brewery")))

	return results, errs
}

func (u *UntappdWebIntegration) getProducerFromURI(uri string, collector *colly.Collector) (string, error) {
	var producer string

	collector.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var breweryJSON BreweryJSON
		if err := json.Unmarshal([]byte(element.Text), &breweryJSON); err != nil {
			u.logger.Error("failed to parse brewery data", zap.String("uri", uri), zap.Error(err))

			return
		}

		producer = breweryJSON.Name
	})

	collector.OnHTML(".content .name h1", func(element *colly.HTMLElement) {
		if len(producer) == 0 {
			producer = element.Text
		}
	})

	err := collector.Visit(u.baseURL + uri)

	return producer, err
}
