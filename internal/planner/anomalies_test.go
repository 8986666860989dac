package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestione-turni/backend/internal/calendar"
	"github.com/gestione-turni/backend/internal/domain"
	"github.com/gestione-turni/backend/internal/rotation"
)

func strptr(s string) *string { return &s }

func testShifts() []*domain.Shift {
	return []*domain.Shift{
		{ID: "s1", Name: "Turno 1", SortOrder: 1},
		{ID: "s2", Name: "Turno 2", SortOrder: 2},
	}
}

func emptyGrid(shifts []*domain.Shift) map[int]map[string]*string {
	return BuildGrid(shifts, nil)
}

func TestDetectAnomaliesDuplicates(t *testing.T) {
	shifts := testShifts()
	people := []*domain.Person{{ID: "p1", FullName: "Mario Rossi", IsActive: true}}
	monday := calendar.NewDate(2025, time.March, 10)

	grid := emptyGrid(shifts)
	// stessa persona su due turni il mercoledì
	grid[2]["s1"] = strptr("p1")
	grid[2]["s2"] = strptr("p1")

	rotIx := rotation.BuildWeekIndex(people, monday)
	absIx := BuildAbsenceIndex(nil, monday)

	alerts := DetectAnomalies(grid, shifts, people, rotIx, absIx)

	require.Len(t, alerts.Duplicates[2], 1)
	assert.Equal(t, domain.DuplicateAlert{PersonID: "p1", Count: 2}, alerts.Duplicates[2][0])

	// gli altri giorni sono puliti
	assert.Empty(t, alerts.Duplicates[1])
	assert.Empty(t, alerts.Duplicates[3])
}

func TestDetectAnomaliesRiposoSaltato(t *testing.T) {
	shifts := testShifts()
	monday := calendar.NewDate(2025, time.March, 10)

	base := monday.AddDays(2) // riposo mercoledì, permesso giovedì
	people := []*domain.Person{
		{ID: "p1", FullName: "Mario Rossi", IsActive: true, RotationBaseRiposoDate: &base},
	}

	grid := emptyGrid(shifts)
	grid[2]["s1"] = strptr("p1")
	grid[3]["s2"] = strptr("p1")

	rotIx := rotation.BuildWeekIndex(people, monday)
	absIx := BuildAbsenceIndex(nil, monday)

	alerts := DetectAnomalies(grid, shifts, people, rotIx, absIx)

	require.Len(t, alerts.RiposoSaltato[2], 1)
	assert.Equal(t, domain.RotationAlert{PersonID: "p1", ShiftID: "s1", ShiftName: "Turno 1"}, alerts.RiposoSaltato[2][0])

	require.Len(t, alerts.PermessoSaltato[3], 1)
	assert.Equal(t, domain.RotationAlert{PersonID: "p1", ShiftID: "s2", ShiftName: "Turno 2"}, alerts.PermessoSaltato[3][0])

	// il riposo non genera anche un permesso saltato e viceversa
	assert.Empty(t, alerts.PermessoSaltato[2])
	assert.Empty(t, alerts.RiposoSaltato[3])
}

func TestDetectAnomaliesExtraAbsence(t *testing.T) {
	shifts := testShifts()
	monday := calendar.NewDate(2025, time.March, 10)
	people := []*domain.Person{{ID: "p1", FullName: "Mario Rossi", IsActive: true}}

	absences := []*domain.Absence{
		{
			ID:        "a1",
			PersonID:  "p1",
			Kind:      domain.AbsenceMalattia,
			StartDate: monday,
			EndDate:   monday,
		},
	}

	grid := emptyGrid(shifts)
	grid[0]["s2"] = strptr("p1")

	rotIx := rotation.BuildWeekIndex(people, monday)
	absIx := BuildAbsenceIndex(absences, monday)

	alerts := DetectAnomalies(grid, shifts, people, rotIx, absIx)

	require.Len(t, alerts.ExtraAbsenceSaltata[0], 1)
	assert.Equal(t, domain.AbsenceAlert{
		PersonID:  "p1",
		Kind:      domain.AbsenceMalattia,
		ShiftID:   "s2",
		ShiftName: "Turno 2",
	}, alerts.ExtraAbsenceSaltata[0][0])
}

func TestDetectAnomaliesIndependentChecks(t *testing.T) {
	// persona assegnata in un giorno in cui è sia a riposo sia assente:
	// l'assegnazione compare in entrambe le categorie
	shifts := testShifts()
	monday := calendar.NewDate(2025, time.March, 10)

	base := monday
	people := []*domain.Person{
		{ID: "p1", FullName: "Mario Rossi", IsActive: true, RotationBaseRiposoDate: &base},
	}
	absences := []*domain.Absence{
		{ID: "a1", PersonID: "p1", Kind: domain.AbsenceFerie, StartDate: monday, EndDate: monday},
	}

	grid := emptyGrid(shifts)
	grid[0]["s1"] = strptr("p1")

	rotIx := rotation.BuildWeekIndex(people, monday)
	absIx := BuildAbsenceIndex(absences, monday)

	alerts := DetectAnomalies(grid, shifts, people, rotIx, absIx)

	assert.Len(t, alerts.RiposoSaltato[0], 1)
	assert.Len(t, alerts.ExtraAbsenceSaltata[0], 1)
}

func TestDetectAnomaliesNotPlanned(t *testing.T) {
	shifts := testShifts()
	monday := calendar.NewDate(2025, time.March, 10)

	base := monday // p2 a riposo lunedì
	people := []*domain.Person{
		{ID: "p1", FullName: "Mario Rossi", IsActive: true},
		{ID: "p2", FullName: "Anna Bianchi", IsActive: true, RotationBaseRiposoDate: &base},
		{ID: "p3", FullName: "Bruno Verdi", IsActive: true},
		{ID: "p4", FullName: "Carla Neri", IsActive: false},
		{ID: "p5", FullName: "Dario Gallo", IsActive: true},
	}
	absences := []*domain.Absence{
		// p3 assente lunedì
		{ID: "a1", PersonID: "p3", Kind: domain.AbsenceFerie, StartDate: monday, EndDate: monday},
	}

	grid := emptyGrid(shifts)
	// p5 è pianificato lunedì
	grid[0]["s1"] = strptr("p5")

	rotIx := rotation.BuildWeekIndex(people, monday)
	absIx := BuildAbsenceIndex(absences, monday)

	alerts := DetectAnomalies(grid, shifts, people, rotIx, absIx)

	// lunedì: p1 è l'unico attivo, libero e senza assegnazioni
	assert.Equal(t, []string{"p1"}, alerts.NotPlanned[0])

	// martedì: p2 è in permesso, p3 è tornato, p5 non è più pianificato
	assert.ElementsMatch(t, []string{"p1", "p3", "p5"}, alerts.NotPlanned[1])
}
