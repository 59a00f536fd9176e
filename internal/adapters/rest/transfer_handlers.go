package rest

import (
	"io"
	"net/http"

	usecases_port "rent-records-service/internal/core/port/usecases_port"
)

// Импорт ограничен 50 МБ: дамп коллекции в несколько тысяч записей
// на порядок меньше.
const maxImportBodySize = 50 << 20

// TransferHandler — выгрузка и загрузка коллекции.
type TransferHandler struct {
	exportUC usecases_port.ExportRecordsPort
	importUC usecases_port.ImportRecordsPort
}

func NewTransferHandler(exportUC usecases_port.ExportRecordsPort, importUC usecases_port.ImportRecordsPort) *TransferHandler {
	return &TransferHandler{exportUC: exportUC, importUC: importUC}
}

func (h *TransferHandler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	data, err := h.exportUC.ExportXLSX(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to export workbook")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="landlords.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *TransferHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	data, err := h.exportUC.ExportJSON(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to export collection")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="landlords.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBodySize))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	result, err := h.importUC.Import(r.Context(), body)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to import records")
		return
	}

	RespondWithJSON(w, http.StatusOK, ImportResponse{
		Imported: result.Imported,
		Rejected: result.Rejected,
	})
}
