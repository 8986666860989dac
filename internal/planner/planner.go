// Package planner compone il piano settimanale: griglia, override, fatti di
// assenza e rotazione, anomalie. Tutto il derivato viene ricalcolato a ogni
// lettura partendo dallo stato persistito, niente cache da invalidare.
package planner

import (
	"sort"

	"github.com/gestione-turni/backend/internal/calendar"
	"github.com/gestione-turni/backend/internal/domain"
	"github.com/gestione-turni/backend/internal/rotation"
)

// BuildGrid trasforma le celle persistite nella matrice giorno -> turno ->
// persona. Le celle con indici o turni non più validi vengono scartate.
func BuildGrid(shifts []*domain.Shift, cells []*domain.Assignment) map[int]map[string]*string {
	grid := make(map[int]map[string]*string, 7)
	for d := 0; d < 7; d++ {
		grid[d] = make(map[string]*string, len(shifts))
		for _, s := range shifts {
			grid[d][s.ID] = nil
		}
	}

	for _, c := range cells {
		if c.DayIndex < 0 || c.DayIndex > 6 {
			continue
		}
		if _, ok := grid[c.DayIndex][c.ShiftID]; !ok {
			continue
		}
		grid[c.DayIndex][c.ShiftID] = c.PersonID
	}

	return grid
}

// BuildMeta trasforma gli override persistiti nella mappa giorno -> turno ->
// override consumata dalla UI.
func BuildMeta(metas []*domain.AssignmentMeta) map[int]map[string]domain.CellMeta {
	out := make(map[int]map[string]domain.CellMeta, 7)
	for d := 0; d < 7; d++ {
		out[d] = make(map[string]domain.CellMeta)
	}
	for _, m := range metas {
		if m.DayIndex < 0 || m.DayIndex > 6 {
			continue
		}
		out[m.DayIndex][m.ShiftID] = domain.CellMeta{
			OverrideStartTime: m.OverrideStartTime,
			OverrideEndTime:   m.OverrideEndTime,
			Role:              m.Role,
		}
	}
	return out
}

// EffectiveCellOf risolve orari e ruolo effettivi di una cella: ogni campo
// prende l'override se presente, altrimenti il default del turno. Start e end
// sono indipendenti, non tutto-o-niente.
func EffectiveCellOf(shift *domain.Shift, meta *domain.CellMeta) domain.EffectiveCell {
	eff := domain.EffectiveCell{
		StartTime: shift.StartTime,
		EndTime:   shift.EndTime,
	}
	if meta == nil {
		return eff
	}
	if meta.OverrideStartTime != nil {
		eff.StartTime = meta.OverrideStartTime
	}
	if meta.OverrideEndTime != nil {
		eff.EndTime = meta.OverrideEndTime
	}
	if meta.Role != nil {
		eff.Role = meta.Role
	}
	return eff
}

// AssemblePlan compone il read-model della settimana a partire dallo stato
// corrente. people è il roster completo: gli inattivi restano nel piano per
// lo storico ma non contano per le anomalie "non pianificato".
func AssemblePlan(
	monday calendar.Date,
	shifts []*domain.Shift,
	people []*domain.Person,
	cells []*domain.Assignment,
	metas []*domain.AssignmentMeta,
	absences []*domain.Absence,
) *domain.WeekPlan {
	sorted := make([]*domain.Shift, len(shifts))
	copy(sorted, shifts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortOrder < sorted[j].SortOrder
	})

	grid := BuildGrid(sorted, cells)
	meta := BuildMeta(metas)

	effective := make(map[int]map[string]domain.EffectiveCell, 7)
	for d := 0; d < 7; d++ {
		effective[d] = make(map[string]domain.EffectiveCell, len(sorted))
		for _, s := range sorted {
			var cm *domain.CellMeta
			if m, ok := meta[d][s.ID]; ok {
				cm = &m
			}
			effective[d][s.ID] = EffectiveCellOf(s, cm)
		}
	}

	rotIx := rotation.BuildWeekIndex(people, monday)
	absIx := BuildAbsenceIndex(absences, monday)

	return &domain.WeekPlan{
		MondayDate: monday,
		Shifts:     sorted,
		People:     people,
		Grid:       grid,
		Meta:       meta,
		Effective:  effective,
		Alerts:     DetectAnomalies(grid, sorted, people, rotIx, absIx),
	}
}

// AssembleWeekAbsences compone i fatti di assenza della settimana: riposi e
// permessi derivati dalla rotazione più le assenze bloccanti.
func AssembleWeekAbsences(
	monday calendar.Date,
	people []*domain.Person,
	absences []*domain.Absence,
) *domain.WeekAbsences {
	rotIx := rotation.BuildWeekIndex(people, monday)
	absIx := BuildAbsenceIndex(absences, monday)

	return &domain.WeekAbsences{
		MondayDate: monday,
		Riposi:     rotIx.Riposi,
		Permessi:   rotIx.Permessi,
		Extra:      absIx.ByDay(),
	}
}
