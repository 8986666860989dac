package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestione-turni/backend/internal/calendar"
	"github.com/gestione-turni/backend/internal/domain"
)

func TestBuildGrid(t *testing.T) {
	shifts := testShifts()

	cells := []*domain.Assignment{
		{WeekID: "w1", DayIndex: 0, ShiftID: "s1", PersonID: strptr("p1")},
		{WeekID: "w1", DayIndex: 3, ShiftID: "s2", PersonID: nil},
		// celle orfane: turno cancellato o indice fuori range
		{WeekID: "w1", DayIndex: 1, ShiftID: "s-cancellato", PersonID: strptr("p1")},
		{WeekID: "w1", DayIndex: 9, ShiftID: "s1", PersonID: strptr("p1")},
	}

	grid := BuildGrid(shifts, cells)

	require.Len(t, grid, 7)
	for d := 0; d < 7; d++ {
		assert.Len(t, grid[d], len(shifts), "giorno %d", d)
	}

	require.NotNil(t, grid[0]["s1"])
	assert.Equal(t, "p1", *grid[0]["s1"])
	assert.Nil(t, grid[3]["s2"])
	assert.Nil(t, grid[1]["s2"])

	// le celle orfane vengono scartate
	_, ok := grid[1]["s-cancellato"]
	assert.False(t, ok)
}

func TestEffectiveCellOf(t *testing.T) {
	shift := &domain.Shift{
		ID:        "s1",
		Name:      "Turno 1",
		StartTime: strptr("09:00"),
		EndTime:   strptr("18:00"),
	}

	// senza override valgono gli orari del turno
	eff := EffectiveCellOf(shift, nil)
	assert.Equal(t, "09:00", *eff.StartTime)
	assert.Equal(t, "18:00", *eff.EndTime)
	assert.Nil(t, eff.Role)

	// override del solo inizio: la fine resta quella del turno
	eff = EffectiveCellOf(shift, &domain.CellMeta{OverrideStartTime: strptr("08:00")})
	assert.Equal(t, "08:00", *eff.StartTime)
	assert.Equal(t, "18:00", *eff.EndTime)

	// override indipendenti di fine e ruolo
	role := domain.RoleChiusura
	eff = EffectiveCellOf(shift, &domain.CellMeta{
		OverrideEndTime: strptr("20:00"),
		Role:            &role,
	})
	assert.Equal(t, "09:00", *eff.StartTime)
	assert.Equal(t, "20:00", *eff.EndTime)
	require.NotNil(t, eff.Role)
	assert.Equal(t, domain.RoleChiusura, *eff.Role)
}

func TestEffectiveCellOfShiftWithoutTimes(t *testing.T) {
	shift := &domain.Shift{ID: "s1", Name: "Turno 1"}

	eff := EffectiveCellOf(shift, nil)
	assert.Nil(t, eff.StartTime)
	assert.Nil(t, eff.EndTime)

	eff = EffectiveCellOf(shift, &domain.CellMeta{OverrideStartTime: strptr("07:30")})
	require.NotNil(t, eff.StartTime)
	assert.Equal(t, "07:30", *eff.StartTime)
	assert.Nil(t, eff.EndTime)
}

func TestBuildMeta(t *testing.T) {
	role := domain.RoleApertura
	metas := []*domain.AssignmentMeta{
		{WeekID: "w1", DayIndex: 2, ShiftID: "s1", OverrideStartTime: strptr("08:00"), Role: &role},
		{WeekID: "w1", DayIndex: 9, ShiftID: "s1"}, // fuori range, scartato
	}

	out := BuildMeta(metas)

	require.Len(t, out, 7)
	m, ok := out[2]["s1"]
	require.True(t, ok)
	assert.Equal(t, "08:00", *m.OverrideStartTime)
	assert.Nil(t, m.OverrideEndTime)
	assert.Equal(t, domain.RoleApertura, *m.Role)

	assert.Empty(t, out[0])
}

func TestAssemblePlan(t *testing.T) {
	monday := calendar.NewDate(2025, time.March, 10)

	// turni volutamente fuori ordine
	shifts := []*domain.Shift{
		{ID: "s2", Name: "Turno 2", SortOrder: 2, StartTime: strptr("14:00"), EndTime: strptr("20:00")},
		{ID: "s1", Name: "Turno 1", SortOrder: 1, StartTime: strptr("09:00"), EndTime: strptr("18:00")},
	}

	base := monday
	people := []*domain.Person{
		{ID: "p1", FullName: "Mario Rossi", IsActive: true, RotationBaseRiposoDate: &base},
		{ID: "p2", FullName: "Anna Bianchi", IsActive: true},
	}

	cells := []*domain.Assignment{
		{WeekID: "w1", DayIndex: 0, ShiftID: "s1", PersonID: strptr("p1")},
	}
	metas := []*domain.AssignmentMeta{
		{WeekID: "w1", DayIndex: 0, ShiftID: "s1", OverrideStartTime: strptr("08:00")},
	}

	plan := AssemblePlan(monday, shifts, people, cells, metas, nil)

	assert.Equal(t, monday, plan.MondayDate)

	// i turni escono ordinati per sort_order
	require.Len(t, plan.Shifts, 2)
	assert.Equal(t, "s1", plan.Shifts[0].ID)
	assert.Equal(t, "s2", plan.Shifts[1].ID)

	// la griglia riflette le celle salvate
	require.NotNil(t, plan.Grid[0]["s1"])
	assert.Equal(t, "p1", *plan.Grid[0]["s1"])

	// celle effettive: override sull'inizio, fine dal turno
	eff := plan.Effective[0]["s1"]
	assert.Equal(t, "08:00", *eff.StartTime)
	assert.Equal(t, "18:00", *eff.EndTime)

	// le celle senza override usano gli orari del turno
	eff = plan.Effective[0]["s2"]
	assert.Equal(t, "14:00", *eff.StartTime)
	assert.Equal(t, "20:00", *eff.EndTime)

	// p1 è a riposo lunedì ma risulta assegnato: anomalia
	require.Len(t, plan.Alerts.RiposoSaltato[0], 1)
	assert.Equal(t, "p1", plan.Alerts.RiposoSaltato[0][0].PersonID)

	// p2 lunedì è libero e senza assegnazioni
	assert.Equal(t, []string{"p2"}, plan.Alerts.NotPlanned[0])
}

func TestAssembleWeekAbsences(t *testing.T) {
	monday := calendar.NewDate(2025, time.March, 10)

	base := monday.AddDays(1) // riposo martedì, permesso mercoledì
	people := []*domain.Person{
		{ID: "p1", FullName: "Mario Rossi", IsActive: true, RotationBaseRiposoDate: &base},
		{ID: "p2", FullName: "Anna Bianchi", IsActive: true},
	}
	absences := []*domain.Absence{
		{ID: "a1", PersonID: "p2", Kind: domain.AbsenceFerie, StartDate: monday, EndDate: monday.AddDays(1)},
	}

	wa := AssembleWeekAbsences(monday, people, absences)

	assert.Equal(t, monday, wa.MondayDate)
	assert.Equal(t, []string{"p1"}, wa.Riposi[1])
	assert.Equal(t, []string{"p1"}, wa.Permessi[2])
	assert.Equal(t, map[string]domain.AbsenceKind{"p2": domain.AbsenceFerie}, wa.Extra[0])
	assert.Equal(t, map[string]domain.AbsenceKind{"p2": domain.AbsenceFerie}, wa.Extra[1])
	assert.Empty(t, wa.Extra[2])
}
