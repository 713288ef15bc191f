package usecases

import (
	"context"

	"github.com/snopkov906-sudo/krisha-parser/internal/core/domain"
)

// ScrapeAdsUseCase собирает объявления со всех страниц выдачи.
type ScrapeAdsUseCase interface {
	Execute(ctx context.Context) ([]domain.AdRecord, error)
}
