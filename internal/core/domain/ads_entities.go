package domain

// AdRecord представляет одно объявление, извлечённое со страницы выдачи.
// Поля не нормализуются дальше схлопывания пробелов.
type AdRecord struct {
	Title     string
	PriceText string
	Link      string
	Rooms     int
}

// FilteredAd — объявление, прошедшее фильтр, с производными полями.
type FilteredAd struct {
	AdRecord

	// AdID — цифровой идентификатор из пути /a/show/<id>.
	AdID string
	// PriceInt — цена, разобранная из PriceText.
	PriceInt int
}

// SearchFilter определяет активные бизнес-правила отбора объявлений.
type SearchFilter struct {
	TargetRooms int
	MaxPrice    int
}
