package krishafetcher

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/snopkov906-sudo/krisha-parser/internal/constants"
	"github.com/snopkov906-sudo/krisha-parser/internal/core/domain"
)

// ParsePage извлекает объявления из разметки одной страницы выдачи.
// Карточки с отсутствующими полями молча пропускаются; повторные ссылки
// внутри страницы отбрасываются. Порядок объявлений сохраняется.
func ParsePage(body []byte, pageURL string) ([]domain.AdRecord, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page markup: %w", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page url: %w", err)
	}

	var records []domain.AdRecord
	seenLinks := make(map[string]struct{})

	doc.Find(constants.TitleLinkSelector).Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		link := base.ResolveReference(ref).String()
		if _, dup := seenLinks[link]; dup {
			return
		}

		// title-атрибут предпочтительнее: видимый текст бывает обрезан
		title := domain.CleanText(a.AttrOr("title", ""))
		if title == "" {
			title = domain.CleanText(a.Text())
		}
		if title == "" {
			return
		}

		card := a.Closest(constants.CardSelector)
		if card.Length() == 0 {
			return
		}

		priceText := domain.CleanText(card.Find(constants.PriceSelector).First().Text())

		rooms, ok := domain.ExtractRooms(title)
		if !ok {
			rooms, ok = domain.ExtractRooms(domain.CleanText(card.Text()))
		}

		if priceText == "" || !ok {
			return
		}

		records = append(records, domain.AdRecord{
			Title:     title,
			PriceText: priceText,
			Link:      link,
			Rooms:     rooms,
		})
		seenLinks[link] = struct{}{}
	})

	return records, nil
}
