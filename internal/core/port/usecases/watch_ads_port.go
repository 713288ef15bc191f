package usecases

import "context"

// WatchAdsUseCase — один полный цикл наблюдения:
// скрейпинг, фильтрация, сравнение с seen-set, уведомления, сохранение.
type WatchAdsUseCase interface {
	Execute(ctx context.Context) error
}
