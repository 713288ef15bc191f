package krishafetcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listPageURL = "https://krisha.kz/prodazha/kvartiry/shymkent/?areas=p1,2"

const samplePage = `<!DOCTYPE html>
<html><body>
<div class="a-card a-storage-live">
  <div class="a-card__header">
    <a class="a-card__title" href="/a/show/111" title="2-комнатная квартира, 45 м²">2-комнатная квартира...</a>
  </div>
  <div class="a-card__price">15&nbsp;500&nbsp;000 &#8376;</div>
</div>
<div class="a-card">
  <a class="a-card__title" href="/a/show/222">3-комнатная квартира, 70 м²</a>
  <div class="a-card__price-text">22 000 000 ₸</div>
</div>
<div class="a-card">
  <a class="a-card__title" href="/a/show/111" title="2-комнатная квартира, 45 м² (дубль)">дубль</a>
  <div class="a-card__price">15 500 000 ₸</div>
</div>
<div class="a-card">
  <a class="a-card__title" href="/a/show/333" title="Квартира без цены">без цены</a>
</div>
<a class="a-card__title" href="/a/show/444" title="4-комнатная вне карточки">вне карточки</a>
<div class="a-card">
  <a class="a-card__title" href="/a/show/555" title="Уютная квартира в центре">1-комнатная квартира, 30 м²</a>
  <div class="a-card__price">9 900 000 ₸</div>
</div>
</body></html>`

func TestParsePage(t *testing.T) {
	records, err := ParsePage([]byte(samplePage), listPageURL)
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, "2-комнатная квартира, 45 м²", first.Title)
	assert.Equal(t, "15 500 000 ₸", first.PriceText)
	assert.Equal(t, "https://krisha.kz/a/show/111", first.Link)
	assert.Equal(t, 2, first.Rooms)

	// title-атрибута нет — берётся видимый текст ссылки
	second := records[1]
	assert.Equal(t, "3-комнатная квартира, 70 м²", second.Title)
	assert.Equal(t, 3, second.Rooms)

	// комнаты не извлеклись из заголовка — срабатывает фолбэк по тексту карточки
	third := records[2]
	assert.Equal(t, "Уютная квартира в центре", third.Title)
	assert.Equal(t, 1, third.Rooms)
	assert.Equal(t, "https://krisha.kz/a/show/555", third.Link)
}

func TestParsePageNoDuplicateLinks(t *testing.T) {
	records, err := ParsePage([]byte(samplePage), listPageURL)
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for _, rec := range records {
		_, dup := seen[rec.Link]
		assert.False(t, dup, "duplicate link %s", rec.Link)
		seen[rec.Link] = struct{}{}
	}
}

func TestParsePageWithoutAnchors(t *testing.T) {
	records, err := ParsePage([]byte("<html><body><p>ничего нет</p></body></html>"), listPageURL)
	require.NoError(t, err)
	assert.Empty(t, records)
}
