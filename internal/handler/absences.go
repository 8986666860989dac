package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gestione-turni/backend/internal/calendar"
	"github.com/gestione-turni/backend/internal/domain"
	"github.com/gestione-turni/backend/internal/utils"
)

func (h *Handler) GetAllAbsences(w http.ResponseWriter, r *http.Request) {
	absences, err := h.repository.GetAllAbsences()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "elenco assenze", absences)
}

func (h *Handler) CreateAbsence(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PersonID  string        `json:"person_id" validate:"required,uuid4"`
		Kind      string        `json:"kind" validate:"required,oneof=FERIE MALATTIA INFORTUNIO"`
		StartDate calendar.Date `json:"start_date" validate:"required"`
		EndDate   calendar.Date `json:"end_date" validate:"required"`
		Notes     *string       `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := utils.ValidateAbsenceInterval(req.StartDate, req.EndDate); err != nil {
		h.badRequest(w, r, err)
		return
	}

	a := &domain.Absence{
		PersonID:  req.PersonID,
		Kind:      domain.AbsenceKind(req.Kind),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Notes:     req.Notes,
	}

	if err := h.repository.CreateAbsence(a); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "absences_person_id_fkey":
			h.notFoundResponse(w, r, "persona non trovata")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "assenza registrata", a)
}

func (h *Handler) DeleteAbsence(w http.ResponseWriter, r *http.Request) {
	absenceID := chi.URLParam(r, "id")

	if err := h.repository.DeleteAbsence(absenceID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFoundResponse(w, r, "assenza non trovata")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "assenza eliminata", nil)
}
