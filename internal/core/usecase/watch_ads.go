package usecase

import (
	"context"
	"fmt"

	"github.com/snopkov906-sudo/krisha-parser/internal/contextkeys"
	"github.com/snopkov906-sudo/krisha-parser/internal/core/domain"
	"github.com/snopkov906-sudo/krisha-parser/internal/core/port"
	"github.com/snopkov906-sudo/krisha-parser/internal/core/port/usecases"
)

// WatchAdsUseCase связывает весь цикл наблюдения:
// скрейпинг -> фильтр -> сравнение с seen-set -> уведомления -> сохранение.
type WatchAdsUseCase struct {
	scraper  usecases.ScrapeAdsUseCase
	notifier *NotifyAdsUseCase
	seenRepo port.SeenStorePort
	filter   domain.SearchFilter
}

// NewWatchAdsUseCase создает новый экземпляр WatchAdsUseCase
func NewWatchAdsUseCase(
	scraper usecases.ScrapeAdsUseCase,
	notifier *NotifyAdsUseCase,
	seenRepo port.SeenStorePort,
	filter domain.SearchFilter,
) *WatchAdsUseCase {
	return &WatchAdsUseCase{
		scraper:  scraper,
		notifier: notifier,
		seenRepo: seenRepo,
		filter:   filter,
	}
}

// Execute выполняет один полный запуск. Уведомления отправляются до
// сохранения seen-set: при ошибке отправки набор остаётся прежним, и те же
// объявления уйдут повторно при следующем запуске.
func (uc *WatchAdsUseCase) Execute(ctx context.Context) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "WatchAdsUseCase"})

	records, err := uc.scraper.Execute(ctx)
	if err != nil {
		return fmt.Errorf("watch: scraping failed: %w", err)
	}

	filtered := FilterAds(records, uc.filter)
	logger.Info("Filter applied", port.Fields{
		"ads_collected": len(records),
		"ads_matched":   len(filtered),
		"target_rooms":  uc.filter.TargetRooms,
		"max_price":     uc.filter.MaxPrice,
	})

	seen, err := uc.seenRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("watch: failed to load seen ids: %w", err)
	}

	newAds := make([]domain.FilteredAd, 0, len(filtered))
	for _, ad := range filtered {
		if _, ok := seen[ad.AdID]; !ok {
			newAds = append(newAds, ad)
		}
	}
	logger.Info("Compared against seen set", port.Fields{
		"seen_ids": len(seen),
		"new_ads":  len(newAds),
	})

	if err := uc.notifier.Execute(ctx, newAds); err != nil {
		return err
	}

	if len(newAds) == 0 {
		logger.Info("Seen set unchanged", nil)
		return nil
	}

	for _, ad := range newAds {
		seen[ad.AdID] = struct{}{}
	}
	if err := uc.seenRepo.Save(ctx, seen); err != nil {
		return fmt.Errorf("watch: failed to save seen ids: %w", err)
	}

	logger.Info("Saved new ad ids", port.Fields{"new_ids": len(newAds)})
	return nil
}
