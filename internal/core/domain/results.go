package domain

// PhoneCheckResult — итог проверки номера перед созданием записи:
// дубликаты по точному совпадению и best-effort справка о регионе.
type PhoneCheckResult struct {
	Phone      string     `json:"phone"`
	Duplicates []Landlord `json:"duplicates"`
	Region     string     `json:"region,omitempty"`
}

// ImportError — ошибка валидации одной записи с ее позицией в дампе.
type ImportError struct {
	Position int    `json:"position"`
	Reason   string `json:"reason"`
}

// ImportResult — исход импорта: сколько записей принято и какие отклонены.
type ImportResult struct {
	Imported int           `json:"imported"`
	Rejected []ImportError `json:"rejected,omitempty"`
}
