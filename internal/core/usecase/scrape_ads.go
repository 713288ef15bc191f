package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/snopkov906-sudo/krisha-parser/internal/contextkeys"
	"github.com/snopkov906-sudo/krisha-parser/internal/core/domain"
	"github.com/snopkov906-sudo/krisha-parser/internal/core/port"
)

// ErrNoAds возвращается, когда обход выдачи не принёс ни одного объявления.
var ErrNoAds = errors.New("no ads collected from the listing pages")

// ScrapeAdsUseCase обходит страницы выдачи до исчерпания результатов.
// Остановка: лимит страниц, серия подряд идущих сетевых ошибок или пустая
// страница. Успешная загрузка сбрасывает счётчик ошибок.
type ScrapeAdsUseCase struct {
	fetcher                port.AdsFetcherPort
	maxPages               int
	maxConsecutiveFailures int
	pageDelay              time.Duration
}

// NewScrapeAdsUseCase создает новый экземпляр ScrapeAdsUseCase.
// maxPages == 0 означает обход без ограничения по страницам.
func NewScrapeAdsUseCase(
	fetcher port.AdsFetcherPort,
	maxPages int,
	maxConsecutiveFailures int,
	pageDelay time.Duration,
) *ScrapeAdsUseCase {
	return &ScrapeAdsUseCase{
		fetcher:                fetcher,
		maxPages:               maxPages,
		maxConsecutiveFailures: maxConsecutiveFailures,
		pageDelay:              pageDelay,
	}
}

// Execute собирает объявления со всех страниц. Страницы, собранные до серии
// ошибок, не теряются. Результат очищен от межстраничных повторов ссылок.
func (uc *ScrapeAdsUseCase) Execute(ctx context.Context) ([]domain.AdRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "ScrapeAdsUseCase"})

	var allRecords []domain.AdRecord
	page := 1
	consecutiveFailures := 0

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if uc.maxPages > 0 && page > uc.maxPages {
			logger.Info("Reached page limit, stopping pagination", port.Fields{"max_pages": uc.maxPages})
			break
		}

		records, err := uc.fetcher.FetchPage(ctx, page)
		if err != nil {
			consecutiveFailures++
			logger.Warn("Skipping page due to fetch error", port.Fields{
				"page":                 page,
				"consecutive_failures": consecutiveFailures,
				"error":                err.Error(),
			})
			if consecutiveFailures >= uc.maxConsecutiveFailures {
				logger.Warn("Too many consecutive failures, stopping pagination", port.Fields{
					"consecutive_failures": consecutiveFailures,
				})
				break
			}
			page++
			continue
		}
		consecutiveFailures = 0

		if len(records) == 0 {
			logger.Info("Empty page, end of results", port.Fields{"page": page})
			break
		}

		allRecords = append(allRecords, records...)
		logger.Debug("Collected page", port.Fields{
			"page":        page,
			"ads_on_page": len(records),
			"ads_total":   len(allRecords),
		})
		page++

		// пауза между успешными страницами
		time.Sleep(uc.pageDelay)
	}

	deduped := dedupeByLink(allRecords)
	if len(deduped) == 0 {
		return nil, ErrNoAds
	}

	logger.Info("Finished scraping", port.Fields{
		"last_page":     page,
		"ads_collected": len(deduped),
	})
	return deduped, nil
}

// dedupeByLink убирает повторы между страницами: позиция записи определяется
// первым вхождением ссылки, содержимое — последним.
func dedupeByLink(records []domain.AdRecord) []domain.AdRecord {
	result := make([]domain.AdRecord, 0, len(records))
	index := make(map[string]int, len(records))

	for _, rec := range records {
		if i, ok := index[rec.Link]; ok {
			result[i] = rec
			continue
		}
		index[rec.Link] = len(result)
		result = append(result, rec)
	}
	return result
}
