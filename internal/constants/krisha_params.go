package constants

import "time"

// Krisha site parameters
const (
	BaseURL = "https://krisha.kz"

	// Путь страницы деталей объявления. Числовой ID в этом сегменте —
	// единственный стабильный идентификатор объявления.
	AdDetailPath = "/a/show/"

	TitleLinkSelector = `a.a-card__title[href*="/a/show/"]`
	CardSelector      = "div.a-card"
	PriceSelector     = ".a-card__price, .a-card__price-text"
)

// Заголовки, с которыми krisha отдаёт полноценную выдачу
const (
	BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/124.0.0.0 Safari/537.36"
	AcceptLanguage = "ru-RU,ru;q=0.9,en-US;q=0.8,en;q=0.7"
)

// DefaultMapURL — поиск по полигону: двухкомнатные в Шымкенте до 17 млн.
const DefaultMapURL = "https://krisha.kz/map/prodazha/kvartiry/shymkent/?das[price][to]=17000000&zoom=14&lat=42.31622&lon=69.57153" +
	"&areas=p42.326920,69.563423,42.333034,69.569775,42.335963,69.576126,42.338001,69.585739" +
	",42.337619,69.595352,42.335581,69.602905,42.332015,69.607369,42.327557,69.609085" +
	",42.318003,69.608399,42.313289,69.605309,42.310741,69.601360,42.308575,69.589172" +
	",42.309339,69.577328,42.312652,69.567371,42.316347,69.562737,42.321825,69.560505" +
	",42.326793,69.562050,42.326920,69.563423"

// Фильтр по умолчанию
const (
	DefaultMaxPrice    = 16_000_000
	DefaultTargetRooms = 2
)

// Сетевые параметры
const (
	DefaultRequestTimeout         = 30 * time.Second
	DefaultRequestRetries         = 3
	DefaultRetryBackoff           = 2 * time.Second
	DefaultPageDelay              = 700 * time.Millisecond
	DefaultMaxConsecutiveFailures = 5
)

// Telegram режет сообщения на 4096 символов; держим запас под форматирование.
const MessageCharLimit = 3500

const DefaultSeenIDsFile = "seen_ids.json"
