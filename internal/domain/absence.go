package domain

import (
	"time"

	"github.com/gestione-turni/backend/internal/calendar"
)

type AbsenceKind string

const (
	AbsenceFerie      AbsenceKind = "FERIE"
	AbsenceMalattia   AbsenceKind = "MALATTIA"
	AbsenceInfortunio AbsenceKind = "INFORTUNIO"
)

func (k AbsenceKind) IsValid() bool {
	switch k {
	case AbsenceFerie, AbsenceMalattia, AbsenceInfortunio:
		return true
	}
	return false
}

// Absence è un'assenza bloccante: nei giorni coperti (estremi inclusi) la
// persona non può essere assegnata a nessun turno.
type Absence struct {
	ID        string        `json:"id"`
	PersonID  string        `json:"person_id"`
	Kind      AbsenceKind   `json:"kind"`
	StartDate calendar.Date `json:"start_date"`
	EndDate   calendar.Date `json:"end_date"`
	Notes     *string       `json:"notes"`
	CreatedAt time.Time     `json:"created_at"`
}

// Covers riporta se l'assenza copre la data d (estremi inclusi).
func (a *Absence) Covers(d calendar.Date) bool {
	return !d.Before(a.StartDate.Time) && !d.After(a.EndDate.Time)
}
