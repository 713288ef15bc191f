package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	spaceRe = regexp.MustCompile(`\s+`)
	roomsRe = regexp.MustCompile(`^\s*(\d+)\s*-`)
	adIDRe  = regexp.MustCompile(`/a/show/(\d+)`)
	digitRe = regexp.MustCompile(`\D`)
)

// CleanText схлопывает все пробельные символы (включая неразрывные пробелы)
// в одиночные пробелы и обрезает края строки.
func CleanText(value string) string {
	value = strings.ReplaceAll(value, "\u00a0", " ")
	return strings.TrimSpace(spaceRe.ReplaceAllString(value, " "))
}

// ExtractRooms вытаскивает количество комнат из текста вида "2-комнатная квартира".
// Возвращает false, если текст не начинается с "<цифры>-".
func ExtractRooms(text string) (int, bool) {
	m := roomsRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return 0, false
	}
	rooms, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return rooms, true
}

// ExtractAdID вытаскивает числовой идентификатор объявления из ссылки
// на страницу деталей (/a/show/<id>).
func ExtractAdID(link string) (string, bool) {
	m := adIDRe.FindStringSubmatch(link)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ParsePriceToInt разбирает отображаемую цену ("15 500 000 ₸") в целое число,
// отбрасывая все нецифровые символы.
func ParsePriceToInt(priceText string) (int, bool) {
	digits := digitRe.ReplaceAllString(priceText, "")
	if digits == "" {
		return 0, false
	}
	price, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return price, true
}
