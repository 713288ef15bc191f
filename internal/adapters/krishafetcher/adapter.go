package krishafetcher

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/snopkov906-sudo/krisha-parser/internal/constants"
)

// KrishaFetcherAdapter отвечает за все взаимодействия с krisha
type KrishaFetcherAdapter struct {
	// один родительский коллектор, который разделяет лимиты
	collector *colly.Collector
	listURL   string
	retries   int
	backoff   time.Duration
}

// Config - настройки адаптера
type Config struct {
	MapURL         string
	RequestTimeout time.Duration
	RequestRetries int
	RetryBackoff   time.Duration
}

// NewKrishaFetcherAdapter - конструктор. Списочный URL выводится из
// map-ссылки один раз, при создании.
func NewKrishaFetcherAdapter(cfg Config) (*KrishaFetcherAdapter, error) {
	listURL, err := BuildListURL(cfg.MapURL)
	if err != nil {
		return nil, fmt.Errorf("krisha adapter: failed to build list url: %w", err)
	}

	parsed, err := url.Parse(listURL)
	if err != nil {
		return nil, fmt.Errorf("krisha adapter: failed to parse list url: %w", err)
	}

	c := colly.NewCollector(
		colly.AllowedDomains(parsed.Hostname()),
		colly.AllowURLRevisit(),
		colly.UserAgent(constants.BrowserUserAgent),
	)
	c.SetRequestTimeout(cfg.RequestTimeout)

	if err := c.Limit(&colly.LimitRule{
		DomainGlob:  parsed.Hostname(),
		Parallelism: 1,
	}); err != nil {
		return nil, fmt.Errorf("krisha adapter: failed to set limit rule: %w", err)
	}

	return &KrishaFetcherAdapter{
		collector: c,
		listURL:   listURL,
		retries:   cfg.RequestRetries,
		backoff:   cfg.RetryBackoff,
	}, nil
}

// ListURL возвращает производный списочный URL (без номера страницы).
func (a *KrishaFetcherAdapter) ListURL() string {
	return a.listURL
}
