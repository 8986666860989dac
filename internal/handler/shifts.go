package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gestione-turni/backend/internal/domain"
	"github.com/gestione-turni/backend/internal/utils"
)

func (h *Handler) GetAllShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.repository.GetAllShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "elenco turni", shifts)
}

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string  `json:"name" validate:"required"`
		StartTime *string `json:"start_time"`
		EndTime   *string `json:"end_time"`
		Notes     *string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := utils.ValidateShiftTimes(req.StartTime, req.EndTime); err != nil {
		h.badRequest(w, r, err)
		return
	}

	s := &domain.Shift{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	}

	if err := h.repository.CreateShift(s); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "turno creato", s)
}

func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	s := r.Context().Value(ShiftCtx).(*domain.Shift)

	var req struct {
		Name      *string `json:"name"`
		StartTime *string `json:"start_time"`
		EndTime   *string `json:"end_time"`
		Notes     *string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.StartTime != nil {
		s.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		s.EndTime = req.EndTime
	}
	if req.Notes != nil {
		s.Notes = req.Notes
	}

	if err := utils.ValidateShiftTimes(s.StartTime, s.EndTime); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpdateShift(s); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "riprova")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "turno aggiornato", s)
}

// DeleteShift elimina il turno; le celle che lo referenziano vengono rimosse
// in cascata dal vincolo sulla tabella assignments.
func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	s := r.Context().Value(ShiftCtx).(*domain.Shift)

	if err := h.repository.DeleteShift(s.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "turno eliminato", nil)
}
