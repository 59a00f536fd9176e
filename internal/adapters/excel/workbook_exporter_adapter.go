// Package excel — табличная выгрузка коллекции: одна строка на запись
// владельца, по форме полевого реестра.
package excel

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"rent-records-service/internal/core/domain"
)

const sheetName = "Landlords"

var headerRow = []interface{}{
	"ID",
	"Type",
	"Phones",
	"Alias",
	"WeChat Status",
	"Contact Status",
	"WeChat Nickname",
	"Address",
	"Longitude",
	"Latitude",
	"Deposit",
	"Water Fee",
	"Electricity Fee",
	"Rooms",
	"Favorite",
	"Perfect",
	"Created At",
}

// WorkbookExporterAdapter реализует WorkbookExporterPort через excelize.
type WorkbookExporterAdapter struct{}

func NewWorkbookExporterAdapter() *WorkbookExporterAdapter {
	return &WorkbookExporterAdapter{}
}

func (a *WorkbookExporterAdapter) ExportWorkbook(_ context.Context, landlords []domain.Landlord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i := range landlords {
		l := &landlords[i]
		lng, lat := "", ""
		if l.GPS != nil {
			lng = strconv.FormatFloat(l.GPS.Lng, 'f', 6, 64)
			lat = strconv.FormatFloat(l.GPS.Lat, 'f', 6, 64)
		}

		row := []interface{}{
			l.ID,
			string(l.LandlordType),
			strings.Join(l.PhoneNumbers, ", "),
			l.Alias,
			string(l.WechatStatus),
			string(l.ContactStatus),
			l.WechatNickname,
			l.Address,
			lng,
			lat,
			l.Deposit,
			formatFee(l.CommonFees.Water, domain.CivilWaterPrice),
			formatFee(l.CommonFees.Electricity, domain.CivilElectricityPrice),
			len(l.Properties),
			l.IsFavorite,
			l.IsPerfect,
			l.CreatedAt.Format(time.RFC3339),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func formatFee(fee domain.FeeItem, civilRate float64) string {
	switch fee.Type {
	case domain.FeeTypeCivil:
		return fmt.Sprintf("civil (%.1f)", civilRate)
	case domain.FeeTypeCustom:
		if fee.Price == nil {
			return "custom"
		}
		out := fmt.Sprintf("custom %.2f", *fee.Price)
		if fee.Unit != "" {
			out += " " + fee.Unit
		}
		return out
	default:
		return ""
	}
}
