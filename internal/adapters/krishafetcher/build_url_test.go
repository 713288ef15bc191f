package krishafetcher

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListURL(t *testing.T) {
	mapURL := "https://krisha.kz/map/prodazha/kvartiry/shymkent/?das[price][to]=17000000&zoom=14&lat=42.31622&lon=69.57153&areas=p42.326920,69.563423,42.333034,69.569775"

	listURL, err := BuildListURL(mapURL)
	require.NoError(t, err)

	parsed, err := url.Parse(listURL)
	require.NoError(t, err)

	assert.Equal(t, "krisha.kz", parsed.Host)
	assert.Equal(t, "/prodazha/kvartiry/shymkent/", parsed.Path)

	q := parsed.Query()
	assert.Equal(t, "p42.326920,69.563423,42.333034,69.569775", q.Get("areas"))
	assert.Equal(t, "17000000", q.Get("das[price][to]"))

	// параметры карты и номер страницы не переносятся
	assert.Empty(t, q.Get("zoom"))
	assert.Empty(t, q.Get("lat"))
	assert.Empty(t, q.Get("lon"))
	assert.Empty(t, q.Get("page"))
}

func TestBuildListURLWithoutAreas(t *testing.T) {
	_, err := BuildListURL("https://krisha.kz/map/prodazha/kvartiry/shymkent/?zoom=14")
	assert.ErrorIs(t, err, ErrNoAreasParam)
}

func TestBuildPageURL(t *testing.T) {
	base := "https://krisha.kz/prodazha/kvartiry/shymkent/?areas=p1,2"

	assert.Equal(t, base, BuildPageURL(base, 0))
	assert.Equal(t, base, BuildPageURL(base, 1))
	assert.Equal(t, base+"&page=3", BuildPageURL(base, 3))

	bare := "https://krisha.kz/prodazha/kvartiry/shymkent/"
	assert.Equal(t, bare+"?page=2", BuildPageURL(bare, 2))
}
