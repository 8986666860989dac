package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestione-turni/backend/internal/calendar"
	"github.com/gestione-turni/backend/internal/domain"
)

func TestBuildAbsenceIndex(t *testing.T) {
	monday := calendar.NewDate(2025, time.March, 10)

	absences := []*domain.Absence{
		{
			ID:        "a1",
			PersonID:  "p1",
			Kind:      domain.AbsenceFerie,
			StartDate: calendar.NewDate(2025, time.March, 10),
			EndDate:   calendar.NewDate(2025, time.March, 14),
		},
	}

	ix := BuildAbsenceIndex(absences, monday)

	// lun..ven bloccati, estremi inclusi
	for d := 0; d <= 4; d++ {
		kind, ok := ix.Kind(d, "p1")
		require.True(t, ok, "giorno %d", d)
		assert.Equal(t, domain.AbsenceFerie, kind)
	}

	// sabato (2025-03-15) e domenica liberi
	assert.False(t, ix.Blocked(5, "p1"))
	assert.False(t, ix.Blocked(6, "p1"))

	// altre persone non bloccate
	assert.False(t, ix.Blocked(2, "p2"))

	// giorni fuori range
	assert.False(t, ix.Blocked(-1, "p1"))
	assert.False(t, ix.Blocked(7, "p1"))
}

func TestBuildAbsenceIndexOutsideWeek(t *testing.T) {
	monday := calendar.NewDate(2025, time.March, 10)

	absences := []*domain.Absence{
		{
			ID:        "a1",
			PersonID:  "p1",
			Kind:      domain.AbsenceMalattia,
			StartDate: calendar.NewDate(2025, time.March, 3),
			EndDate:   calendar.NewDate(2025, time.March, 7),
		},
	}

	ix := BuildAbsenceIndex(absences, monday)

	for d := 0; d < 7; d++ {
		assert.False(t, ix.Blocked(d, "p1"), "giorno %d", d)
	}
}

func TestBuildAbsenceIndexOverlapPriority(t *testing.T) {
	monday := calendar.NewDate(2025, time.March, 10)

	mercoledi := calendar.NewDate(2025, time.March, 12)

	absences := []*domain.Absence{
		{ID: "a1", PersonID: "p1", Kind: domain.AbsenceMalattia, StartDate: mercoledi, EndDate: mercoledi},
		{ID: "a2", PersonID: "p1", Kind: domain.AbsenceFerie, StartDate: mercoledi, EndDate: mercoledi},
		{ID: "a3", PersonID: "p2", Kind: domain.AbsenceInfortunio, StartDate: mercoledi, EndDate: mercoledi},
		{ID: "a4", PersonID: "p2", Kind: domain.AbsenceMalattia, StartDate: mercoledi, EndDate: mercoledi},
	}

	ix := BuildAbsenceIndex(absences, monday)

	// a parità di giorno vince FERIE > INFORTUNIO > MALATTIA,
	// indipendentemente dall'ordine di inserimento
	kind, ok := ix.Kind(2, "p1")
	require.True(t, ok)
	assert.Equal(t, domain.AbsenceFerie, kind)

	kind, ok = ix.Kind(2, "p2")
	require.True(t, ok)
	assert.Equal(t, domain.AbsenceInfortunio, kind)
}

func TestCheckAssignable(t *testing.T) {
	monday := calendar.NewDate(2025, time.March, 10)

	absences := []*domain.Absence{
		{
			ID:        "a1",
			PersonID:  "p1",
			Kind:      domain.AbsenceFerie,
			StartDate: calendar.NewDate(2025, time.March, 12),
			EndDate:   calendar.NewDate(2025, time.March, 12),
		},
	}

	ix := BuildAbsenceIndex(absences, monday)

	err := CheckAssignable(ix, 2, "p1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersonaAssente)
	assert.Contains(t, err.Error(), string(domain.AbsenceFerie))

	assert.NoError(t, CheckAssignable(ix, 3, "p1"))
	assert.NoError(t, CheckAssignable(ix, 2, "p2"))
}

func TestAbsenceIndexByDay(t *testing.T) {
	monday := calendar.NewDate(2025, time.March, 10)

	absences := []*domain.Absence{
		{
			ID:        "a1",
			PersonID:  "p1",
			Kind:      domain.AbsenceInfortunio,
			StartDate: calendar.NewDate(2025, time.March, 11),
			EndDate:   calendar.NewDate(2025, time.March, 12),
		},
	}

	byDay := BuildAbsenceIndex(absences, monday).ByDay()

	require.Len(t, byDay, 7)
	assert.Empty(t, byDay[0])
	assert.Equal(t, map[string]domain.AbsenceKind{"p1": domain.AbsenceInfortunio}, byDay[1])
	assert.Equal(t, map[string]domain.AbsenceKind{"p1": domain.AbsenceInfortunio}, byDay[2])
	assert.Empty(t, byDay[3])
}
