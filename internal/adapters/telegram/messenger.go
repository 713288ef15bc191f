package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MessengerAdapter отправляет уведомления через Telegram Bot API.
type MessengerAdapter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewMessengerAdapter - конструктор. Токен проверяется запросом getMe
// ещё до начала обхода.
func NewMessengerAdapter(token string, chatID int64) (*MessengerAdapter, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram adapter: failed to authorize bot: %w", err)
	}

	return &MessengerAdapter{bot: bot, chatID: chatID}, nil
}

// SendMessage отправляет один текст в настроенный чат. Ответ API с ok=false
// библиотека возвращает как ошибку.
func (a *MessengerAdapter) SendMessage(ctx context.Context, text string) error {
	msg := tgbotapi.NewMessage(a.chatID, text)
	if _, err := a.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram adapter: sendMessage failed: %w", err)
	}
	return nil
}
