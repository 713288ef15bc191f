package port

import "context"

// MessengerPort определяет контракт для отправки текстовых уведомлений.
type MessengerPort interface {
	SendMessage(ctx context.Context, text string) error
}
