package krishafetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/snopkov906-sudo/krisha-parser/internal/constants"
	"github.com/snopkov906-sudo/krisha-parser/internal/contextkeys"
	"github.com/snopkov906-sudo/krisha-parser/internal/core/domain"
	"github.com/snopkov906-sudo/krisha-parser/internal/core/port"
)

// FetchPage скачивает и разбирает одну страницу выдачи. Каждая неудачная
// попытка логируется; паузы между попытками растут линейно. После исчерпания
// попыток возвращается последняя транспортная ошибка.
func (a *KrishaFetcherAdapter) FetchPage(ctx context.Context, page int) ([]domain.AdRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "KrishaFetcherAdapter(FetchPage)"})

	pageURL := BuildPageURL(a.listURL, page)

	var lastErr error
	for attempt := 1; attempt <= a.retries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		body, err := a.download(pageURL)
		if err == nil {
			records, parseErr := ParsePage(body, pageURL)
			if parseErr != nil {
				return nil, fmt.Errorf("krisha adapter: failed to parse page %s: %w", pageURL, parseErr)
			}
			logger.Debug("Fetched page", port.Fields{
				"url":         pageURL,
				"ads_on_page": len(records),
			})
			return records, nil
		}

		lastErr = err
		logger.Warn("Request failed", port.Fields{
			"url":          pageURL,
			"attempt":      attempt,
			"max_attempts": a.retries,
			"error":        err.Error(),
		})
		if attempt < a.retries {
			time.Sleep(a.backoff * time.Duration(attempt))
		}
	}

	return nil, fmt.Errorf("krisha adapter: request to %s failed after %d attempts: %w", pageURL, a.retries, lastErr)
}

// download выполняет один GET и возвращает тело страницы.
// Коллектор наследует лимиты родителя, но имеет свои обработчики.
func (a *KrishaFetcherAdapter) download(pageURL string) ([]byte, error) {
	collector := a.collector.Clone()

	var body []byte
	var responseErr error

	collector.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept-Language", constants.AcceptLanguage)
	})

	collector.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	collector.OnError(func(r *colly.Response, err error) {
		responseErr = fmt.Errorf("request to %s failed with status %d: %w", r.Request.URL, r.StatusCode, err)
	})

	if err := collector.Visit(pageURL); err != nil {
		return nil, err
	}
	collector.Wait()

	if responseErr != nil {
		return nil, responseErr
	}
	return body, nil
}
