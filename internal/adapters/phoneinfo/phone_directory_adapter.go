// Package phoneinfo — справка о регионе и операторе мобильного номера
// через публичный API uapis.cn. Канал строго best-effort.
package phoneinfo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const phoneInfoURL = "https://uapis.cn/api/phoneinfo"

type phoneInfoResponse struct {
	Code     int    `json:"code"`
	Phone    string `json:"phone"`
	Province string `json:"province"`
	City     string `json:"city"`
	ISP      string `json:"isp"`
}

// PhoneDirectoryAdapter реализует PhoneDirectoryPort.
type PhoneDirectoryAdapter struct {
	client *resty.Client
}

func NewPhoneDirectoryAdapter() *PhoneDirectoryAdapter {
	client := resty.New().
		SetTimeout(3 * time.Second)

	return &PhoneDirectoryAdapter{client: client}
}

// Locate возвращает строку вида "Провинция Город · Оператор".
func (a *PhoneDirectoryAdapter) Locate(ctx context.Context, phone string) (string, error) {
	var parsed phoneInfoResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParam("phone", phone).
		SetResult(&parsed).
		Get(phoneInfoURL)
	if err != nil {
		return "", fmt.Errorf("phone info request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("phone info returned status %d", resp.StatusCode())
	}
	if parsed.Code != 200 {
		return "", fmt.Errorf("phone info error code %d", parsed.Code)
	}

	region := strings.TrimSpace(parsed.Province + " " + parsed.City)
	if parsed.ISP != "" {
		if region != "" {
			region += " · "
		}
		region += parsed.ISP
	}
	if region == "" {
		return "", fmt.Errorf("phone info returned empty region")
	}
	return region, nil
}
