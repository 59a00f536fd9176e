package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"rent-records-service/internal/core/domain"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// getCSV разбирает query-параметр вида "a,b,c" в срез строк.
func getCSV(r *http.Request, name string) []string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getFloatPtr(r *http.Request, name string) (*float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return &v, nil
}

func getBoolPtr(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return &v, nil
}

func getBool(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}

// getPolygon разбирает параметр вида "lng,lat;lng,lat;...". Меньше трех
// вершин — полигона нет.
func getPolygon(r *http.Request) ([]domain.GPS, error) {
	raw := r.URL.Query().Get("polygon")
	if raw == "" {
		return nil, nil
	}

	pairs := strings.Split(raw, ";")
	polygon := make([]domain.GPS, 0, len(pairs))
	for _, pair := range pairs {
		if pair == "" {
			continue
		}
		coords := strings.Split(pair, ",")
		if len(coords) != 2 {
			return nil, fmt.Errorf("invalid polygon vertex: %q", pair)
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(coords[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid polygon longitude: %q", coords[0])
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(coords[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid polygon latitude: %q", coords[1])
		}
		polygon = append(polygon, domain.GPS{Lng: lng, Lat: lat})
	}

	if len(polygon) < 3 {
		return nil, nil
	}
	return polygon, nil
}

// getRentRange собирает диапазон аренды из rent_min/rent_max.
func getRentRange(r *http.Request) (*domain.RentRange, error) {
	min, err := getFloatPtr(r, "rent_min")
	if err != nil {
		return nil, err
	}
	max, err := getFloatPtr(r, "rent_max")
	if err != nil {
		return nil, err
	}
	if min == nil && max == nil {
		return nil, nil
	}

	rng := &domain.RentRange{Min: 0, Max: 1e12}
	if min != nil {
		rng.Min = *min
	}
	if max != nil {
		rng.Max = *max
	}
	return rng, nil
}
