package rotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gestione-turni/backend/internal/calendar"
	"github.com/gestione-turni/backend/internal/domain"
)

func personWithBase(base calendar.Date) *domain.Person {
	return &domain.Person{
		ID:                     "p1",
		FullName:               "Mario Rossi",
		IsActive:               true,
		RotationBaseRiposoDate: &base,
	}
}

func TestClassifyAnchor(t *testing.T) {
	base := calendar.NewDate(2025, time.January, 6)
	p := personWithBase(base)

	// la data base è un riposo, il giorno dopo un permesso
	assert.Equal(t, Riposo, Classify(p, base))
	assert.Equal(t, Permesso, Classify(p, base.AddDays(1)))

	// i sei giorni successivi sono ordinari
	for d := 2; d < 8; d++ {
		assert.Equal(t, Nessuna, Classify(p, base.AddDays(d)), "offset %d", d)
	}
}

func TestClassifyCycle(t *testing.T) {
	base := calendar.NewDate(2025, time.January, 6)
	p := personWithBase(base)

	// il ciclo si ripete ogni 8 giorni in entrambe le direzioni
	for _, n := range []int{-3, -2, -1, 0, 1, 2, 3, 10} {
		assert.Equal(t, Riposo, Classify(p, base.AddDays(8*n)), "ciclo %d", n)
		assert.Equal(t, Permesso, Classify(p, base.AddDays(8*n+1)), "ciclo %d", n)
	}
}

func TestClassifyBeforeBase(t *testing.T) {
	base := calendar.NewDate(2025, time.January, 6)
	p := personWithBase(base)

	// date precedenti alla base: il modulo non deve mai essere negativo
	assert.Equal(t, Permesso, Classify(p, base.AddDays(-7)))
	assert.Equal(t, Riposo, Classify(p, base.AddDays(-8)))
	assert.Equal(t, Nessuna, Classify(p, base.AddDays(-2)))
}

func TestClassifyNoBase(t *testing.T) {
	p := &domain.Person{ID: "p1", FullName: "Mario Rossi", IsActive: true}

	assert.Equal(t, Nessuna, Classify(p, calendar.NewDate(2025, time.January, 6)))
}

func TestClassifyFarFromBase(t *testing.T) {
	// base lunedì 2025-01-06
	base := calendar.NewDate(2025, time.January, 6)
	p := personWithBase(base)

	// 2025-02-03: 28 giorni dopo, offset 4, giorno ordinario
	assert.Equal(t, Nessuna, Classify(p, calendar.NewDate(2025, time.February, 3)))
	// 2025-02-17: 42 giorni dopo, offset 2, giorno ordinario
	assert.Equal(t, Nessuna, Classify(p, calendar.NewDate(2025, time.February, 17)))
	// 2025-02-23: 48 giorni dopo, offset 0, riposo
	assert.Equal(t, Riposo, Classify(p, calendar.NewDate(2025, time.February, 23)))
	// 2025-02-24: 49 giorni dopo, offset 1, permesso
	assert.Equal(t, Permesso, Classify(p, calendar.NewDate(2025, time.February, 24)))
}

func TestWeekOf(t *testing.T) {
	base := calendar.NewDate(2025, time.January, 8) // mercoledì
	p := personWithBase(base)

	monday := calendar.NewDate(2025, time.January, 6)
	week := WeekOf(p, monday)

	assert.Equal(t, [7]Kind{Nessuna, Nessuna, Riposo, Permesso, Nessuna, Nessuna, Nessuna}, week)
}

func TestBuildWeekIndex(t *testing.T) {
	monday := calendar.NewDate(2025, time.January, 6)

	baseA := monday            // riposo lunedì, permesso martedì
	baseB := monday.AddDays(2) // riposo mercoledì, permesso giovedì

	people := []*domain.Person{
		{ID: "a", FullName: "Anna Bianchi", IsActive: true, RotationBaseRiposoDate: &baseA},
		{ID: "b", FullName: "Bruno Verdi", IsActive: true, RotationBaseRiposoDate: &baseB},
		{ID: "c", FullName: "Carla Neri", IsActive: false, RotationBaseRiposoDate: &baseA},
		{ID: "d", FullName: "Dario Gallo", IsActive: true},
	}

	ix := BuildWeekIndex(people, monday)

	assert.Equal(t, []string{"a"}, ix.Riposi[0])
	assert.Equal(t, []string{"a"}, ix.Permessi[1])
	assert.Equal(t, []string{"b"}, ix.Riposi[2])
	assert.Equal(t, []string{"b"}, ix.Permessi[3])

	// gli altri giorni restano vuoti, mai nil
	assert.Empty(t, ix.Riposi[4])
	assert.NotNil(t, ix.Riposi[4])

	// gli inattivi e chi è senza rotazione non compaiono
	assert.Equal(t, Nessuna, ix.Kind(0, "c"))
	assert.Equal(t, Nessuna, ix.Kind(0, "d"))

	assert.Equal(t, Riposo, ix.Kind(0, "a"))
	assert.Equal(t, Permesso, ix.Kind(3, "b"))
	assert.Equal(t, Nessuna, ix.Kind(-1, "a"))
	assert.Equal(t, Nessuna, ix.Kind(7, "a"))
}
