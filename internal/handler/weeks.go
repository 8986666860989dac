package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gestione-turni/backend/internal/domain"
	"github.com/gestione-turni/backend/internal/planner"
	"github.com/gestione-turni/backend/internal/utils"
)

// GetWeekPlan compone il piano della settimana partendo dallo stato corrente:
// rotazioni, assenze e anomalie vengono ricalcolate a ogni lettura.
func (h *Handler) GetWeekPlan(w http.ResponseWriter, r *http.Request) {
	week := r.Context().Value(WeekCtx).(*domain.Week)

	shifts, err := h.repository.GetAllShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	people, err := h.repository.GetAllPeople()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	cells, err := h.repository.GetAssignments(week.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	metas, err := h.repository.GetAssignmentMetas(week.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	absences, err := h.repository.GetAbsencesOverlapping(week.MondayDate, week.MondayDate.AddDays(6))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	plan := planner.AssemblePlan(week.MondayDate, shifts, people, cells, metas, absences)

	h.successResponse(w, r, "piano della settimana", plan)
}

// GetWeekAbsences restituisce i fatti di assenza della settimana: riposi e
// permessi per giorno più la mappa delle assenze bloccanti.
func (h *Handler) GetWeekAbsences(w http.ResponseWriter, r *http.Request) {
	week := r.Context().Value(WeekCtx).(*domain.Week)

	people, err := h.repository.GetAllPeople()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	absences, err := h.repository.GetAbsencesOverlapping(week.MondayDate, week.MondayDate.AddDays(6))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "assenze della settimana", planner.AssembleWeekAbsences(week.MondayDate, people, absences))
}

// PutCell scrive una singola cella della griglia (person_id null la svuota).
// L'assegnazione di una persona con assenza bloccante viene rifiutata come
// conflitto.
func (h *Handler) PutCell(w http.ResponseWriter, r *http.Request) {
	week := r.Context().Value(WeekCtx).(*domain.Week)

	var req struct {
		DayIndex int     `json:"day_index" validate:"gte=0,lte=6"`
		ShiftID  string  `json:"shift_id" validate:"required,uuid4"`
		PersonID *string `json:"person_id" validate:"omitempty,uuid4"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if _, err := h.repository.GetShiftByID(req.ShiftID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFoundResponse(w, r, "turno non trovato")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if req.PersonID != nil {
		person, err := h.repository.GetPersonByID(*req.PersonID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFoundResponse(w, r, "persona non trovata")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		if !person.IsActive {
			h.errorResponse(w, r, "la persona non è attiva")
			return
		}

		absences, err := h.repository.GetAbsencesOverlapping(week.MondayDate, week.MondayDate.AddDays(6))
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		absIx := planner.BuildAbsenceIndex(absences, week.MondayDate)
		if err := planner.CheckAssignable(absIx, req.DayIndex, person.ID); err != nil {
			switch {
			case errors.Is(err, domain.ErrPersonaAssente):
				h.conflictResponse(w, r, err.Error())
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
	}

	cell, err := h.repository.UpsertCell(week.ID, req.DayIndex, req.ShiftID, req.PersonID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "cella aggiornata", cell)
}

// ClearWeek azzera celle e override della settimana. Irreversibile.
func (h *Handler) ClearWeek(w http.ResponseWriter, r *http.Request) {
	week := r.Context().Value(WeekCtx).(*domain.Week)

	if err := h.repository.ClearWeek(week.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "settimana azzerata", nil)
}

func (h *Handler) GetWeekMeta(w http.ResponseWriter, r *http.Request) {
	week := r.Context().Value(WeekCtx).(*domain.Week)

	metas, err := h.repository.GetAssignmentMetas(week.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "override della settimana", planner.BuildMeta(metas))
}

// PutWeekMeta aggiorna gli override di una cella campo per campo: un campo
// assente dal body conserva il valore salvato, un campo a null lo azzera
// riportando la cella al default del turno.
func (h *Handler) PutWeekMeta(w http.ResponseWriter, r *http.Request) {
	week := r.Context().Value(WeekCtx).(*domain.Week)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	var req struct {
		DayIndex          int     `json:"day_index" validate:"gte=0,lte=6"`
		ShiftID           string  `json:"shift_id" validate:"required,uuid4"`
		OverrideStartTime *string `json:"override_start_time"`
		OverrideEndTime   *string `json:"override_end_time"`
		Role              *string `json:"role" validate:"omitempty,oneof=APERTURA CHIUSURA"`
	}

	if err := json.Unmarshal(body, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// per distinguere "campo assente" da "campo a null" serve la presenza
	// delle chiavi nel body
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(body, &keys); err != nil {
		h.badRequest(w, r, err)
		return
	}
	_, setStart := keys["override_start_time"]
	_, setEnd := keys["override_end_time"]
	_, setRole := keys["role"]

	if req.OverrideStartTime != nil {
		if err := utils.ValidateTimeString(*req.OverrideStartTime); err != nil {
			h.badRequest(w, r, err)
			return
		}
	}
	if req.OverrideEndTime != nil {
		if err := utils.ValidateTimeString(*req.OverrideEndTime); err != nil {
			h.badRequest(w, r, err)
			return
		}
	}

	if _, err := h.repository.GetShiftByID(req.ShiftID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFoundResponse(w, r, "turno non trovato")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	meta := &domain.AssignmentMeta{
		WeekID:            week.ID,
		DayIndex:          req.DayIndex,
		ShiftID:           req.ShiftID,
		OverrideStartTime: req.OverrideStartTime,
		OverrideEndTime:   req.OverrideEndTime,
	}
	if req.Role != nil {
		role := domain.CellRole(*req.Role)
		meta.Role = &role
	}

	if err := h.repository.UpsertAssignmentMeta(meta, setStart, setEnd, setRole); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "override aggiornato", meta)
}
