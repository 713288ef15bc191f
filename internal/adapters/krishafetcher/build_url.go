package krishafetcher

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrNoAreasParam возвращается, когда в map-ссылке нет параметра areas.
// Без полигона построить эквивалентный списочный поиск невозможно.
var ErrNoAreasParam = errors.New("map url does not contain the areas parameter")

// BuildListURL строит из map-поиска обычный списочный поиск: переносит
// полигон (areas) и вложенные ценовые фильтры (das[price]...), отбрасывая
// параметры карты (zoom, lat, lon). Номер страницы не подставляется —
// выдача начинается с первой.
func BuildListURL(mapURL string) (string, error) {
	u, err := url.Parse(mapURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse map url: %w", err)
	}

	qs := u.Query()
	areas := qs.Get("areas")
	if areas == "" {
		return "", ErrNoAreasParam
	}

	q := url.Values{}
	q.Set("areas", areas)
	for key, vals := range qs {
		if strings.HasPrefix(key, "das[price]") {
			for _, v := range vals {
				q.Add(key, v)
			}
		}
	}

	list := &url.URL{
		Scheme:   u.Scheme,
		Host:     u.Host,
		Path:     strings.TrimPrefix(u.Path, "/map"),
		RawQuery: q.Encode(),
	}
	return list.String(), nil
}

// BuildPageURL добавляет номер страницы к списочному поиску.
// Первая страница отдаётся без параметра page.
func BuildPageURL(baseListURL string, page int) string {
	if page <= 1 {
		return baseListURL
	}
	sep := "?"
	if strings.Contains(baseListURL, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%spage=%d", baseListURL, sep, page)
}
