// Package views — чистые производные представления коллекции: агрегатный
// индекс телефонов, фильтрующие конвейеры двух видов, развёртка комнат и
// группировка для карты. Никакого состояния: каждый вызов пересчитывает
// результат из переданного снимка коллекции.
package views

import "rent-records-service/internal/core/domain"

// PhoneCounts строит индекс: телефон -> число вхождений по всей коллекции.
// Дубликаты внутри списка одной записи не схлопываются — считается каждое
// вхождение в исходном списке.
func PhoneCounts(landlords []domain.Landlord) map[string]int {
	counts := make(map[string]int)
	for _, l := range landlords {
		for _, phone := range l.PhoneNumbers {
			counts[phone]++
		}
	}
	return counts
}

// holdsRepeatedPhone — есть ли у записи телефон, достигший порога повторов.
// Запись без телефонов повторяющейся не считается.
func holdsRepeatedPhone(l *domain.Landlord, counts map[string]int) bool {
	for _, phone := range l.PhoneNumbers {
		if counts[phone] >= domain.RepeatedPhoneThreshold {
			return true
		}
	}
	return false
}
