package untappdweb

import (
	"net/url"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

const (
	IntegrationName = "untappd_web"
	defaultBaseURL  = "https://untappd.com"
	userAgent       = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"
)

type UntappdWebIntegration struct {
	logger  *zap.Logger
	baseURL string
}

type Option func(*UntappdWebIntegration)

// WithBaseURL points the scraper at another host, such as a test server.
func WithBaseURL(baseURL string) Option {
	return func(u *UntappdWebIntegration) {
		u.baseURL = baseURL
	}
}

func NewUntappdWebIntegration(logger *zap.Logger, options ...Option) *UntappdWebIntegration {
	integration := &UntappdWebIntegration{logger: logger, baseURL: defaultBaseURL}

	for _, option := range options {
		option(integration)
	}

	return integration
}

func (u *UntappdWebIntegration) newCollector() *colly.Collector {
	options := []colly.CollectorOption{colly.UserAgent(userAgent)}

	if parsed, err := url.Parse(u.baseURL); err == nil {
		options = append(options, colly.AllowedDomains(parsed.Hostname()))
	}

	return colly.NewCollector(options...)
}

func (u *UntappdWebIntegration) searchURL(query string, searchType string) string {
	values := url.Values{}
	values.Set("q", query)
	values.Set("type", searchType)

	return u.baseURL + "/search?" + values.Encode()
}
