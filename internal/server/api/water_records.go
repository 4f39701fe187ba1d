package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-aquamate/internal/server/metrics"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service"
	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service/models"
	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

const waterRecordUpdatedMessage = "Water record updated successfully"

// ListWaterRecords — все записи пользователя, новые первыми. Нет записей — пустой массив.
//
// @Summary      List water records
// @Tags         water_records
// @Produce      json
// @Param        user_id path int true "User ID"
// @Success      200 {array} models.WaterRecord
// @Router       /water_records/{user_id} [get]
func (h *Handler) ListWaterRecords(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		h.fail(w, r, "list water records", err)
		return
	}

	recs, err := h.Svc.WaterRecords.List(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "list water records", err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

// ListTodayWaterRecords — записи за сегодня (дата по локальному времени сервера).
//
// @Summary      Today's water records
// @Tags         water_records
// @Produce      json
// @Param        user_id path int true "User ID"
// @Success      200 {array} models.WaterRecord
// @Router       /water_records/today/{user_id} [get]
func (h *Handler) ListTodayWaterRecords(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		h.fail(w, r, "list today water records", err)
		return
	}

	recs, err := h.Svc.WaterRecords.ListToday(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "list today water records", err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

// LatestWaterRecord — последняя запись пользователя.
//
// @Summary      Latest water record
// @Tags         water_records
// @Produce      json
// @Param        user_id path int true "User ID"
// @Success      200 {object} models.WaterRecord
// @Failure      404 {object} models.ErrorResponse "No water records found"
// @Router       /water_records/now/{user_id} [get]
func (h *Handler) LatestWaterRecord(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		h.fail(w, r, "latest water record", err)
		return
	}

	rec, err := h.Svc.WaterRecords.Latest(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "latest water record", err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// CreateWaterRecord — новая запись. water_date всегда проставляет сервер.
//
// @Summary      Create water record
// @Tags         water_records
// @Accept       json
// @Produce      json
// @Param        user_id path int                              true "User ID"
// @Param        request body models.CreateWaterRecordRequest true "water_amount, lat, lon are required"
// @Success      201 {object} models.WaterRecord
// @Failure      400 {object} models.ErrorResponse "Missing required field"
// @Failure      404 {object} models.ErrorResponse "User not found"
// @Failure      415 {object} models.ErrorResponse "Body is not JSON"
// @Failure      500 {object} models.ErrorResponse "Failed to create water record"
// @Router       /water_records/{user_id} [post]
func (h *Handler) CreateWaterRecord(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		h.fail(w, r, "create water record", err)
		return
	}

	var req sharedModels.CreateWaterRecordRequest
	if err := decodeJSON(r, &req, true); err != nil {
		h.fail(w, r, "create water record", err)
		return
	}

	rec, err := h.Svc.WaterRecords.Create(r.Context(), userID, service.CreateRecordInput{
		WaterAmount: req.WaterAmount,
		Lat:         req.Lat,
		Lon:         req.Lon,
		WaterType:   req.WaterType,
		Comment:     req.Comment,
	})
	if err != nil {
		h.fail(w, r, "create water record", err)
		return
	}

	metrics.RecordWaterRecordCreated()
	writeJSON(w, http.StatusCreated, rec)
}

// UpdateWaterRecord перезаписывает переданные поля записи.
// user_id можно сменить только на существующего пользователя.
//
// @Summary      Update water record
// @Tags         water_records
// @Accept       json
// @Produce      json
// @Param        water_id path int                              true "Water record ID"
// @Param        request  body models.UpdateWaterRecordRequest true "Fields to overwrite"
// @Success      200 {object} models.UpdateWaterRecordResponse
// @Failure      400 {object} models.ErrorResponse "Bad JSON"
// @Failure      404 {object} models.ErrorResponse "Water record or new owner not found"
// @Failure      415 {object} models.ErrorResponse "Body is not JSON"
// @Router       /water_records/{water_id} [put]
func (h *Handler) UpdateWaterRecord(w http.ResponseWriter, r *http.Request) {
	waterID, err := pathID(r, "water_id")
	if err != nil {
		h.fail(w, r, "update water record", err)
		return
	}

	var req sharedModels.UpdateWaterRecordRequest
	if err := decodeJSON(r, &req, true); err != nil {
		h.fail(w, r, "update water record", err)
		return
	}

	rec, err := h.Svc.WaterRecords.Update(r.Context(), waterID, models.WaterRecordPatch{
		WaterDate:   req.WaterDate,
		WaterType:   req.WaterType,
		WaterAmount: req.WaterAmount,
		Lat:         req.Lat,
		Lon:         req.Lon,
		Comment:     req.Comment,
		UserID:      req.UserID,
	})
	if err != nil {
		h.fail(w, r, "update water record", err)
		return
	}

	writeJSON(w, http.StatusOK, sharedModels.UpdateWaterRecordResponse{
		Message:     waterRecordUpdatedMessage,
		WaterRecord: rec,
	})
}
