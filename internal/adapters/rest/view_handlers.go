package rest

import (
	"net/http"
	"strconv"

	"rent-records-service/internal/core/domain"
	usecases_port "rent-records-service/internal/core/port/usecases_port"
)

// ViewHandler — производные представления: вид "по комнатам", группы
// маркеров карты, сводная статистика.
type ViewHandler struct {
	propertyViewUC usecases_port.GetPropertyViewPort
	mapGroupsUC    usecases_port.GetMapGroupsPort
	statsUC        usecases_port.GetStatsPort
}

func NewViewHandler(
	propertyViewUC usecases_port.GetPropertyViewPort,
	mapGroupsUC usecases_port.GetMapGroupsPort,
	statsUC usecases_port.GetStatsPort,
) *ViewHandler {
	return &ViewHandler{
		propertyViewUC: propertyViewUC,
		mapGroupsUC:    mapGroupsUC,
		statsUC:        statsUC,
	}
}

func (h *ViewHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	filters, polygon, err := parsePropertyFilters(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.propertyViewUC.Execute(r.Context(), filters, polygon)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to build property view")
		return
	}

	RespondWithJSON(w, http.StatusOK, items)
}

func (h *ViewHandler) GetMapGroups(w http.ResponseWriter, r *http.Request) {
	filters, polygon, err := parsePropertyFilters(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var precision uint
	if raw := r.URL.Query().Get("precision"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "Invalid precision")
			return
		}
		precision = uint(parsed)
	}

	groups, err := h.mapGroupsUC.Execute(r.Context(), filters, polygon, precision)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to build map groups")
		return
	}

	RespondWithJSON(w, http.StatusOK, groups)
}

func (h *ViewHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUC.Execute(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get stats")
		return
	}

	RespondWithJSON(w, http.StatusOK, stats)
}

func parsePropertyFilters(r *http.Request) (domain.PropertyFilterOptions, []domain.GPS, error) {
	var f domain.PropertyFilterOptions

	f.RoomTypes = getCSV(r, "room_types")
	f.Amenities = getCSV(r, "amenities")
	f.DepositMethods = getCSV(r, "deposit_methods")
	for _, s := range getCSV(r, "landlord_type") {
		f.LandlordType = append(f.LandlordType, domain.LandlordType(s))
	}

	var err error
	if f.RentRange, err = getRentRange(r); err != nil {
		return f, nil, err
	}
	if f.Available, err = getBoolPtr(r, "available"); err != nil {
		return f, nil, err
	}

	f.WaterType = r.URL.Query().Get("water_type")
	f.ElectricityType = r.URL.Query().Get("electricity_type")
	if f.WaterPriceMax, err = getFloatPtr(r, "water_price_max"); err != nil {
		return f, nil, err
	}
	if f.ElectricityPriceMax, err = getFloatPtr(r, "electricity_price_max"); err != nil {
		return f, nil, err
	}

	f.Favorite = domain.FavoriteFilter(r.URL.Query().Get("favorite"))
	f.Keyword = r.URL.Query().Get("keyword")
	f.SortBy = domain.SortMode(r.URL.Query().Get("sort_by"))

	polygon, err := getPolygon(r)
	if err != nil {
		return f, nil, err
	}
	return f, polygon, nil
}
