package port

import (
	"context"

	"github.com/snopkov906-sudo/krisha-parser/internal/core/domain"
)

// AdsFetcherPort определяет контракт для получения одной страницы выдачи.
// Страница нумеруется с единицы; пустой результат означает конец выдачи.
type AdsFetcherPort interface {
	FetchPage(ctx context.Context, page int) ([]domain.AdRecord, error)
}
