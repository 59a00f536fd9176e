// Package amap — обратное геокодирование через REST API Амап (高德).
// Сервис принимает координаты в GCJ-02, то есть ровно в том датуме,
// в котором хранятся записи.
package amap

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"rent-records-service/internal/core/domain"
)

const regeoURL = "https://restapi.amap.com/v3/geocode/regeo"

type regeoResponse struct {
	Status   string `json:"status"`
	Info     string `json:"info"`
	Infocode string `json:"infocode"`
	Regeo    struct {
		FormattedAddress string `json:"formatted_address"`
	} `json:"regeocode"`
}

// ReverseGeocoderAdapter реализует ReverseGeocoderPort поверх Амап.
type ReverseGeocoderAdapter struct {
	client *resty.Client
	key    string
}

func NewReverseGeocoderAdapter(key string) (*ReverseGeocoderAdapter, error) {
	if key == "" {
		return nil, fmt.Errorf("amap api key is required")
	}

	client := resty.New().
		SetTimeout(5 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(300 * time.Millisecond)

	return &ReverseGeocoderAdapter{client: client, key: key}, nil
}

// ResolveAddress возвращает человекочитаемый адрес точки. Любая ошибка
// трактуется вызывающей стороной как "адрес неизвестен".
func (a *ReverseGeocoderAdapter) ResolveAddress(ctx context.Context, gps domain.GPS) (string, error) {
	var parsed regeoResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":        a.key,
			"location":   fmt.Sprintf("%.6f,%.6f", gps.Lng, gps.Lat),
			"extensions": "base",
		}).
		SetResult(&parsed).
		Get(regeoURL)
	if err != nil {
		return "", fmt.Errorf("amap regeo request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("amap regeo returned status %d", resp.StatusCode())
	}
	if parsed.Status != "1" {
		return "", fmt.Errorf("amap regeo error %s: %s", parsed.Infocode, parsed.Info)
	}
	if parsed.Regeo.FormattedAddress == "" {
		return "", fmt.Errorf("amap regeo returned empty address")
	}

	return parsed.Regeo.FormattedAddress, nil
}
