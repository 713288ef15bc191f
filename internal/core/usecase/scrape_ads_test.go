package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snopkov906-sudo/krisha-parser/internal/core/domain"
)

type fakeFetcher struct {
	pages map[int][]domain.AdRecord
	errs  map[int]error
	calls []int
}

func (f *fakeFetcher) FetchPage(ctx context.Context, page int) ([]domain.AdRecord, error) {
	f.calls = append(f.calls, page)
	if err := f.errs[page]; err != nil {
		return nil, err
	}
	return f.pages[page], nil
}

func ad(id string, rooms int, priceText string) domain.AdRecord {
	return domain.AdRecord{
		Title:     fmt.Sprintf("%d-комнатная квартира", rooms),
		PriceText: priceText,
		Link:      "https://krisha.kz/a/show/" + id,
		Rooms:     rooms,
	}
}

func TestScrapeStopsOnEmptyPage(t *testing.T) {
	fetcher := &fakeFetcher{
		pages: map[int][]domain.AdRecord{
			1: {ad("1", 2, "10 000 000 ₸"), ad("2", 3, "12 000 000 ₸")},
			2: {},
		},
	}
	uc := NewScrapeAdsUseCase(fetcher, 0, 5, 0)

	records, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, []int{1, 2}, fetcher.calls)
}

func TestScrapeRespectsPageLimit(t *testing.T) {
	fetcher := &fakeFetcher{
		pages: map[int][]domain.AdRecord{
			1: {ad("1", 2, "10 000 000 ₸")},
			2: {ad("2", 2, "11 000 000 ₸")},
			3: {ad("3", 2, "12 000 000 ₸")},
		},
	}
	uc := NewScrapeAdsUseCase(fetcher, 2, 5, 0)

	records, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, []int{1, 2}, fetcher.calls)
}

func TestScrapeKeepsPartialResultsAfterConsecutiveFailures(t *testing.T) {
	netErr := errors.New("connection refused")
	fetcher := &fakeFetcher{
		pages: map[int][]domain.AdRecord{
			1: {ad("1", 2, "10 000 000 ₸")},
		},
		errs: map[int]error{2: netErr, 3: netErr, 4: netErr, 5: netErr, 6: netErr},
	}
	uc := NewScrapeAdsUseCase(fetcher, 0, 5, 0)

	records, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "https://krisha.kz/a/show/1", records[0].Link)
	// пять ошибок подряд: страницы 2..6
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, fetcher.calls)
}

func TestScrapeFailureCounterResetsOnSuccess(t *testing.T) {
	netErr := errors.New("timeout")
	fetcher := &fakeFetcher{
		pages: map[int][]domain.AdRecord{
			2: {ad("2", 2, "10 000 000 ₸")},
			4: {ad("4", 2, "11 000 000 ₸")},
			5: {},
		},
		errs: map[int]error{1: netErr, 3: netErr},
	}
	uc := NewScrapeAdsUseCase(fetcher, 0, 2, 0)

	records, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, fetcher.calls)
}

func TestScrapeNoDataError(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[int][]domain.AdRecord{1: {}}}
	uc := NewScrapeAdsUseCase(fetcher, 0, 5, 0)

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrNoAds)
}

func TestScrapeAllPagesFailing(t *testing.T) {
	netErr := errors.New("connection refused")
	fetcher := &fakeFetcher{errs: map[int]error{1: netErr, 2: netErr}}
	uc := NewScrapeAdsUseCase(fetcher, 0, 2, 0)

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrNoAds)
}

func TestScrapeDeduplicatesByLinkAcrossPages(t *testing.T) {
	updated := ad("1", 2, "9 500 000 ₸")
	fetcher := &fakeFetcher{
		pages: map[int][]domain.AdRecord{
			1: {ad("1", 2, "10 000 000 ₸"), ad("2", 2, "11 000 000 ₸")},
			2: {updated},
			3: {},
		},
	}
	uc := NewScrapeAdsUseCase(fetcher, 0, 5, 0)

	records, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	// позиция — по первому вхождению, содержимое — по последнему
	assert.Equal(t, updated, records[0])
	assert.Equal(t, "https://krisha.kz/a/show/2", records[1].Link)
}

func TestScrapeCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := &fakeFetcher{pages: map[int][]domain.AdRecord{1: {ad("1", 2, "10 000 000 ₸")}}}
	uc := NewScrapeAdsUseCase(fetcher, 0, 5, 0)

	_, err := uc.Execute(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fetcher.calls)
}
