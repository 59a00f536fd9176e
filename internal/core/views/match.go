package views

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"rent-records-service/internal/core/domain"
)

// containsFold — поиск подстроки без учёта регистра (Unicode-сворачивание,
// а не ASCII ToLower).
func containsFold(s, substr string) bool {
	lower := cases.Lower(language.Und)
	return strings.Contains(lower.String(s), lower.String(substr))
}

// matchWaterFee проверяет тариф на воду против фильтра. Особый случай:
// фильтр "custom с верхней границей" пропускает и записи с гражданским
// тарифом — фиксированная ставка проходит ту же границу.
func matchWaterFee(fee domain.FeeItem, feeType string, priceMax *float64) bool {
	if feeType == "" {
		return true
	}
	if feeType == domain.FeeTypeCustom && priceMax != nil {
		if fee.Type == domain.FeeTypeCivil {
			return domain.CivilWaterPrice <= *priceMax
		}
		return fee.Type == domain.FeeTypeCustom && fee.Price != nil && *fee.Price <= *priceMax
	}
	return fee.Type == feeType
}

// matchElectricityFee — то же правило с константой гражданского тарифа
// на электричество.
func matchElectricityFee(fee domain.FeeItem, feeType string, priceMax *float64) bool {
	if feeType == "" {
		return true
	}
	if feeType == domain.FeeTypeCustom && priceMax != nil {
		if fee.Type == domain.FeeTypeCivil {
			return domain.CivilElectricityPrice <= *priceMax
		}
		return fee.Type == domain.FeeTypeCustom && fee.Price != nil && *fee.Price <= *priceMax
	}
	return fee.Type == feeType
}

// matchFavorite — трёхпозиционный фильтр избранного.
func matchFavorite(isFavorite bool, filter domain.FavoriteFilter) bool {
	switch filter {
	case domain.FavoriteOnly:
		return isFavorite
	case domain.Unfavorite:
		return !isFavorite
	default:
		return true
	}
}
