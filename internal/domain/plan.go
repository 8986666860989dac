package domain

import "github.com/gestione-turni/backend/internal/calendar"

// CellMeta è la proiezione degli override di una cella dentro il piano.
type CellMeta struct {
	OverrideStartTime *string   `json:"override_start_time"`
	OverrideEndTime   *string   `json:"override_end_time"`
	Role              *CellRole `json:"role"`
}

// EffectiveCell sono orari e ruolo effettivi di una cella: il valore di
// override se presente, altrimenti il default del turno, campo per campo.
type EffectiveCell struct {
	StartTime *string   `json:"start_time"`
	EndTime   *string   `json:"end_time"`
	Role      *CellRole `json:"role"`
}

type DuplicateAlert struct {
	PersonID string `json:"person_id"`
	Count    int    `json:"count"`
}

type RotationAlert struct {
	PersonID  string `json:"person_id"`
	ShiftID   string `json:"shift_id"`
	ShiftName string `json:"shift_name"`
}

type AbsenceAlert struct {
	PersonID  string      `json:"person_id"`
	Kind      AbsenceKind `json:"kind"`
	ShiftID   string      `json:"shift_id"`
	ShiftName string      `json:"shift_name"`
}

// WeekAlerts sono le cinque categorie di anomalie, per giorno 0..6. Vengono
// ricalcolate a ogni lettura del piano, mai salvate.
type WeekAlerts struct {
	Duplicates          map[int][]DuplicateAlert `json:"duplicates"`
	NotPlanned          map[int][]string         `json:"not_planned"`
	RiposoSaltato       map[int][]RotationAlert  `json:"riposo_saltato"`
	PermessoSaltato     map[int][]RotationAlert  `json:"permesso_saltato"`
	ExtraAbsenceSaltata map[int][]AbsenceAlert   `json:"extra_absence_saltata"`
}

// WeekPlan è il read-model consumato dalla UI: roster completo (gli inattivi
// restano per lo storico), turni ordinati per sort_order, griglia, override,
// orari effettivi e anomalie.
type WeekPlan struct {
	MondayDate calendar.Date                    `json:"monday_date"`
	Shifts     []*Shift                         `json:"shifts"`
	People     []*Person                        `json:"people"`
	Grid       map[int]map[string]*string       `json:"grid"`
	Meta       map[int]map[string]CellMeta      `json:"meta"`
	Effective  map[int]map[string]EffectiveCell `json:"effective"`
	Alerts     WeekAlerts                       `json:"alerts"`
}

// WeekAbsences sono i fatti di assenza della settimana: insiemi RIPOSO e
// PERMESSO per giorno e mappa giorno -> persona -> tipo di assenza bloccante.
type WeekAbsences struct {
	MondayDate calendar.Date                  `json:"monday_date"`
	Riposi     map[int][]string               `json:"riposi"`
	Permessi   map[int][]string               `json:"permessi"`
	Extra      map[int]map[string]AbsenceKind `json:"extra"`
}
