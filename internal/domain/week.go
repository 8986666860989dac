package domain

import (
	"time"

	"github.com/gestione-turni/backend/internal/calendar"
)

// Week identifica una settimana tramite il suo lunedì.
type Week struct {
	ID         string        `json:"id"`
	MondayDate calendar.Date `json:"monday_date"`
}

// Assignment è una cella della griglia: (settimana, giorno 0..6, turno) ->
// persona oppure vuota. L'ultima scrittura vince, senza token di versione.
type Assignment struct {
	ID        string    `json:"id"`
	WeekID    string    `json:"week_id"`
	DayIndex  int       `json:"day_index"`
	ShiftID   string    `json:"shift_id"`
	PersonID  *string   `json:"person_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CellRole string

const (
	RoleApertura CellRole = "APERTURA"
	RoleChiusura CellRole = "CHIUSURA"
)

func (r CellRole) IsValid() bool {
	return r == RoleApertura || r == RoleChiusura
}

// AssignmentMeta sono gli override per-cella: ogni campo rimpiazza il default
// del turno in modo indipendente, un campo nil lascia valere il default.
type AssignmentMeta struct {
	ID                string    `json:"id"`
	WeekID            string    `json:"week_id"`
	DayIndex          int       `json:"day_index"`
	ShiftID           string    `json:"shift_id"`
	OverrideStartTime *string   `json:"override_start_time"`
	OverrideEndTime   *string   `json:"override_end_time"`
	Role              *CellRole `json:"role"`
}
