package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/snopkov906-sudo/krisha-parser/internal/contextkeys"
	"github.com/snopkov906-sudo/krisha-parser/internal/core/domain"
	"github.com/snopkov906-sudo/krisha-parser/internal/core/port"
)

// NotifyAdsUseCase формирует и отправляет уведомления о новых объявлениях:
// одно заголовочное сообщение и блоки деталей, упакованные в сообщения
// не длиннее charLimit символов.
type NotifyAdsUseCase struct {
	messenger port.MessengerPort
	filter    domain.SearchFilter
	charLimit int
}

// NewNotifyAdsUseCase создает новый экземпляр NotifyAdsUseCase
func NewNotifyAdsUseCase(messenger port.MessengerPort, filter domain.SearchFilter, charLimit int) *NotifyAdsUseCase {
	return &NotifyAdsUseCase{
		messenger: messenger,
		filter:    filter,
		charLimit: charLimit,
	}
}

// Execute рассылает новые объявления, отсортированные по возрастанию цены.
// Пустой список не порождает исходящих сообщений.
func (uc *NotifyAdsUseCase) Execute(ctx context.Context, newAds []domain.FilteredAd) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "NotifyAdsUseCase"})

	if len(newAds) == 0 {
		logger.Info("No new ads to notify about", nil)
		return nil
	}

	sort.SliceStable(newAds, func(i, j int) bool {
		return newAds[i].PriceInt < newAds[j].PriceInt
	})

	header := fmt.Sprintf(
		"Новые объявления Krisha\nФильтр: %d-комнатные, цена <= %s тг\nНайдено новых: %d",
		uc.filter.TargetRooms, formatPrice(uc.filter.MaxPrice), len(newAds),
	)
	if err := uc.messenger.SendMessage(ctx, header); err != nil {
		return fmt.Errorf("notify: failed to send header message: %w", err)
	}

	blocks := make([]string, 0, len(newAds))
	for i, ad := range newAds {
		blocks = append(blocks, fmt.Sprintf(
			"%d) %s\nЦена: %s\nСсылка: %s",
			i+1, ad.Title, ad.PriceText, ad.Link,
		))
	}

	chunks := SplitMessages(blocks, uc.charLimit)
	for _, chunk := range chunks {
		if err := uc.messenger.SendMessage(ctx, chunk); err != nil {
			return fmt.Errorf("notify: failed to send details message: %w", err)
		}
	}

	logger.Info("Notifications sent", port.Fields{
		"new_ads":  len(newAds),
		"messages": len(chunks) + 1,
	})
	return nil
}

// SplitMessages группирует блоки в сообщения, не превышающие limit символов.
// Один блок никогда не разрывается между сообщениями.
func SplitMessages(blocks []string, limit int) []string {
	var chunks []string
	var current string

	for _, b := range blocks {
		block := b + "\n\n"
		if current != "" && utf8.RuneCountInString(current)+utf8.RuneCountInString(block) > limit {
			chunks = append(chunks, strings.TrimRight(current, "\n"))
			current = block
		} else {
			current += block
		}
	}
	if current != "" {
		chunks = append(chunks, strings.TrimRight(current, "\n"))
	}
	return chunks
}

// formatPrice добавляет разделители тысяч: 16000000 -> "16 000 000".
func formatPrice(v int) string {
	s := strconv.Itoa(v)

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
