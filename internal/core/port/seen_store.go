package port

import "context"

// SeenStorePort определяет контракт для хранилища идентификаторов
// уже разосланных объявлений.
type SeenStorePort interface {
	// Load возвращает сохранённый набор. Отсутствие или порча хранилища
	// трактуется как пустой набор, а не как ошибка.
	Load(ctx context.Context) (map[string]struct{}, error)

	// Save сохраняет набор целиком.
	Save(ctx context.Context, ids map[string]struct{}) error
}
