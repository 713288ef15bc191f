package usecase

import (
	"github.com/snopkov906-sudo/krisha-parser/internal/core/domain"
)

// FilterAds применяет бизнес-правила отбора: точное совпадение числа комнат,
// цена не выше потолка (равенство проходит), извлекаемый идентификатор
// объявления. Порядок выживших записей совпадает с порядком на входе.
func FilterAds(records []domain.AdRecord, filter domain.SearchFilter) []domain.FilteredAd {
	filtered := make([]domain.FilteredAd, 0, len(records))

	for _, rec := range records {
		if rec.Rooms != filter.TargetRooms {
			continue
		}

		price, ok := domain.ParsePriceToInt(rec.PriceText)
		if !ok || price > filter.MaxPrice {
			continue
		}

		adID, ok := domain.ExtractAdID(rec.Link)
		if !ok {
			continue
		}

		filtered = append(filtered, domain.FilteredAd{
			AdRecord: rec,
			AdID:     adID,
			PriceInt: price,
		})
	}
	return filtered
}
