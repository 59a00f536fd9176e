package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rent-records-service/internal/core/domain"
	usecases_port "rent-records-service/internal/core/port/usecases_port"
)

// LandlordHandler — операции над записями владельцев.
type LandlordHandler struct {
	getViewUC usecases_port.GetLandlordViewPort
	createUC  usecases_port.CreateLandlordPort
	updateUC  usecases_port.UpdateLandlordPort
	removeUC  usecases_port.RemoveLandlordPort
	mergeUC   usecases_port.MergeLandlordsPort
	selectUC  usecases_port.SelectLandlordPort
	clearUC   usecases_port.ClearCollectionPort
	phoneUC   usecases_port.CheckPhonePort
}

func NewLandlordHandler(
	getViewUC usecases_port.GetLandlordViewPort,
	createUC usecases_port.CreateLandlordPort,
	updateUC usecases_port.UpdateLandlordPort,
	removeUC usecases_port.RemoveLandlordPort,
	mergeUC usecases_port.MergeLandlordsPort,
	selectUC usecases_port.SelectLandlordPort,
	clearUC usecases_port.ClearCollectionPort,
	phoneUC usecases_port.CheckPhonePort,
) *LandlordHandler {
	return &LandlordHandler{
		getViewUC: getViewUC,
		createUC:  createUC,
		updateUC:  updateUC,
		removeUC:  removeUC,
		mergeUC:   mergeUC,
		selectUC:  selectUC,
		clearUC:   clearUC,
		phoneUC:   phoneUC,
	}
}

// ListLandlords — вид "по владельцам" с фильтрами, ключевым словом и полигоном.
func (h *LandlordHandler) ListLandlords(w http.ResponseWriter, r *http.Request) {
	filters, keyword, polygon, err := parseLandlordFilters(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	landlords, err := h.getViewUC.Execute(r.Context(), filters, keyword, polygon)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to build landlord view")
		return
	}

	RespondWithJSON(w, http.StatusOK, landlords)
}

func (h *LandlordHandler) CreateLandlord(w http.ResponseWriter, r *http.Request) {
	var req CreateLandlordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.createUC.Create(r.Context(), req.toInput())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to create landlord")
		return
	}

	RespondWithJSON(w, http.StatusCreated, created)
}

func (h *LandlordHandler) UpdateLandlord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "landlordID")

	var req UpdateLandlordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.updateUC.Update(r.Context(), id, req.toPatch())
	if err != nil {
		if errors.Is(err, domain.ErrLandlordNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Landlord not found")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to update landlord")
		return
	}

	RespondWithJSON(w, http.StatusOK, updated)
}

func (h *LandlordHandler) RemoveLandlord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "landlordID")
	deleteMedia := getBool(r, "delete_media")

	if err := h.removeUC.Remove(r.Context(), id, deleteMedia); err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to remove landlord")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *LandlordHandler) MergeLandlords(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "targetID")
	sourceID := chi.URLParam(r, "sourceID")

	merged, err := h.mergeUC.Merge(r.Context(), targetID, sourceID)
	if err != nil {
		if errors.Is(err, domain.ErrLandlordNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Landlord not found")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to merge landlords")
		return
	}

	RespondWithJSON(w, http.StatusOK, merged)
}

func (h *LandlordHandler) ClearCollection(w http.ResponseWriter, r *http.Request) {
	if err := h.clearUC.Clear(r.Context()); err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to clear collection")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *LandlordHandler) CheckPhone(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		WriteJSONError(w, http.StatusBadRequest, "Phone is required")
		return
	}

	result, err := h.phoneUC.Check(r.Context(), phone)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to check phone")
		return
	}

	RespondWithJSON(w, http.StatusOK, result)
}

func (h *LandlordHandler) SelectLandlord(w http.ResponseWriter, r *http.Request) {
	var req SelectLandlordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		WriteJSONError(w, http.StatusBadRequest, "Landlord id is required")
		return
	}

	if err := h.selectUC.Select(r.Context(), req.ID); err != nil {
		if errors.Is(err, domain.ErrLandlordNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Landlord not found")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to select landlord")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *LandlordHandler) GetSelectedLandlord(w http.ResponseWriter, r *http.Request) {
	selected, err := h.selectUC.Selected(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrLandlordNotFound) {
			WriteJSONError(w, http.StatusNotFound, "No landlord selected")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get selected landlord")
		return
	}

	RespondWithJSON(w, http.StatusOK, selected)
}

func parseLandlordFilters(r *http.Request) (domain.FilterOptions, string, []domain.GPS, error) {
	var f domain.FilterOptions

	for _, s := range getCSV(r, "wechat_status") {
		f.WechatStatus = append(f.WechatStatus, domain.WechatStatus(s))
	}
	for _, s := range getCSV(r, "contact_status") {
		f.ContactStatus = append(f.ContactStatus, domain.ContactStatus(s))
	}
	for _, s := range getCSV(r, "landlord_type") {
		f.LandlordType = append(f.LandlordType, domain.LandlordType(s))
	}
	f.RoomTypes = getCSV(r, "room_types")

	var err error
	if f.IsPerfect, err = getBoolPtr(r, "is_perfect"); err != nil {
		return f, "", nil, err
	}
	if f.Available, err = getBoolPtr(r, "available"); err != nil {
		return f, "", nil, err
	}
	if f.RentRange, err = getRentRange(r); err != nil {
		return f, "", nil, err
	}

	f.WaterType = r.URL.Query().Get("water_type")
	f.ElectricityType = r.URL.Query().Get("electricity_type")
	if f.WaterPriceMax, err = getFloatPtr(r, "water_price_max"); err != nil {
		return f, "", nil, err
	}
	if f.ElectricityPriceMax, err = getFloatPtr(r, "electricity_price_max"); err != nil {
		return f, "", nil, err
	}

	f.PhoneSearch = r.URL.Query().Get("phone_search")
	f.Favorite = domain.FavoriteFilter(r.URL.Query().Get("favorite"))
	f.HideRepeatedPhones = getBool(r, "hide_repeated_phones")
	f.ShowRepeatedPhones = getBool(r, "show_repeated_phones")

	polygon, err := getPolygon(r)
	if err != nil {
		return f, "", nil, err
	}

	return f, r.URL.Query().Get("keyword"), polygon, nil
}
