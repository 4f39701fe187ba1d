package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-aquamate/internal/server/metrics"
	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

// ListStamps — справочник стампов.
//
// @Summary      List stamps
// @Tags         stamps
// @Produce      json
// @Success      200 {array} models.Stamp
// @Router       /stamps/ [get]
func (h *Handler) ListStamps(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.Stamps.List(r.Context())
	if err != nil {
		h.fail(w, r, "list stamps", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// GetStamp — один стамп.
//
// @Summary      Get stamp
// @Tags         stamps
// @Produce      json
// @Param        id path int true "Stamp ID"
// @Success      200 {object} models.Stamp
// @Failure      404 {object} models.ErrorResponse
// @Router       /stamps/{id} [get]
func (h *Handler) GetStamp(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "get stamp", err)
		return
	}

	s, err := h.Svc.Stamps.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, "get stamp", err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// ReceivedStamps — стампы, полученные пользователем, с текстом стампа и именем отправителя.
//
// @Summary      Received stamps
// @Tags         stamps
// @Produce      json
// @Param        user_id path int true "Receiver ID"
// @Success      200 {array}  models.ReceivedStamp
// @Failure      404 {object} models.ErrorResponse "User not found"
// @Router       /stamps/send/{user_id} [get]
func (h *Handler) ReceivedStamps(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		h.fail(w, r, "received stamps", err)
		return
	}

	list, err := h.Svc.Stamps.Received(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "received stamps", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// SentStamps — стампы, отправленные пользователем.
//
// @Summary      Sent stamps
// @Tags         stamps
// @Produce      json
// @Param        user_id path int true "Sender ID"
// @Success      200 {array}  models.UserStamp
// @Failure      404 {object} models.ErrorResponse "User not found"
// @Router       /stamps/sent/{user_id} [get]
func (h *Handler) SentStamps(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		h.fail(w, r, "sent stamps", err)
		return
	}

	list, err := h.Svc.Stamps.Sent(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "sent stamps", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// SendStamp — отправка стампа от sender_id к receiver_id.
//
// @Summary      Send stamp
// @Tags         stamps
// @Accept       json
// @Produce      json
// @Param        request body models.SendStampRequest true "sender_id, receiver_id, stamp_id"
// @Success      201 {object} models.UserStamp
// @Failure      400 {object} models.ErrorResponse "Missing required fields or bad JSON"
// @Failure      404 {object} models.ErrorResponse "Sender or receiver not found / Stamp not found"
// @Failure      500 {object} models.ErrorResponse "Failed to send stamp"
// @Router       /stamps/send [post]
func (h *Handler) SendStamp(w http.ResponseWriter, r *http.Request) {
	var req sharedModels.SendStampRequest
	if err := decodeJSON(r, &req, false); err != nil {
		h.fail(w, r, "send stamp", err)
		return
	}

	us, err := h.Svc.Stamps.Send(r.Context(), req.SenderID, req.ReceiverID, req.StampID)
	if err != nil {
		h.fail(w, r, "send stamp", err)
		return
	}

	metrics.RecordStampSent()
	writeJSON(w, http.StatusCreated, us)
}

// ReplyStamp отмечает полученный стамп как отвеченный. Ответить можно только один раз.
//
// @Summary      Reply to stamp
// @Tags         stamps
// @Produce      json
// @Param        user_stamp_id path int true "User stamp ID"
// @Success      200 {object} models.UserStamp
// @Failure      400 {object} models.ErrorResponse "Stamp already replied"
// @Failure      404 {object} models.ErrorResponse "User stamp not found"
// @Failure      500 {object} models.ErrorResponse "Failed to reply stamp"
// @Router       /stamps/reply/{user_stamp_id} [put]
func (h *Handler) ReplyStamp(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "user_stamp_id")
	if err != nil {
		h.fail(w, r, "reply stamp", err)
		return
	}

	us, err := h.Svc.Stamps.Reply(r.Context(), id)
	if err != nil {
		h.fail(w, r, "reply stamp", err)
		return
	}

	metrics.RecordStampReplied()
	writeJSON(w, http.StatusOK, us)
}
