package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gestione-turni/backend/internal/calendar"
	"github.com/gestione-turni/backend/internal/domain"
)

func (h *Handler) GetAllPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.repository.GetAllPeople()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "elenco persone", people)
}

func (h *Handler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName string  `json:"full_name" validate:"required"`
		Notes    *string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	p := &domain.Person{
		FullName: req.FullName,
		Notes:    req.Notes,
	}

	if err := h.repository.CreatePerson(p); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "persona creata", p)
}

// UpdatePerson modifica anagrafica e flag attivo. La disattivazione esclude
// la persona dalle nuove assegnazioni ma conserva quelle storiche.
func (h *Handler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	p := r.Context().Value(PersonCtx).(*domain.Person)

	var req struct {
		FullName *string `json:"full_name"`
		IsActive *bool   `json:"is_active"`
		Notes    *string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.FullName != nil {
		p.FullName = *req.FullName
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.Notes != nil {
		p.Notes = req.Notes
	}

	if err := h.repository.UpdatePerson(p); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "riprova")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "persona aggiornata", p)
}

// SetPersonRotation imposta la data base della rotazione 8 giorni: quel
// giorno è un RIPOSO, il successivo un PERMESSO. La nuova base riclassifica
// implicitamente tutte le settimane, passate e future.
func (h *Handler) SetPersonRotation(w http.ResponseWriter, r *http.Request) {
	p := r.Context().Value(PersonCtx).(*domain.Person)

	var req struct {
		BaseRiposoDate calendar.Date `json:"base_riposo_date" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	p.RotationBaseRiposoDate = &req.BaseRiposoDate

	if err := h.repository.UpdatePerson(p); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "riprova")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "rotazione aggiornata", p)
}

// DeletePerson rimuove la persona dal roster; assenze e celle che la
// referenziano vengono gestite in cascata dai vincoli. Per conservare lo
// storico è preferibile la disattivazione.
func (h *Handler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	p := r.Context().Value(PersonCtx).(*domain.Person)

	if err := h.repository.DeletePerson(p.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "persona eliminata", nil)
}
