// Package rotation deriva i giorni di RIPOSO e PERMESSO dalla rotazione a 8
// giorni: 6 di lavoro, 1 riposo, 1 permesso. La classificazione è una
// funzione pura di (data base, data richiesta), non viene mai salvata.
package rotation

import (
	"github.com/gestione-turni/backend/internal/calendar"
	"github.com/gestione-turni/backend/internal/domain"
)

type Kind string

const (
	// Nessuna indica un giorno lavorativo ordinario.
	Nessuna  Kind = ""
	Riposo   Kind = "RIPOSO"
	Permesso Kind = "PERMESSO"
)

const cycleDays = 8

// Classify classifica il giorno per la persona. La data base è per
// definizione un RIPOSO, il giorno dopo un PERMESSO, e il ciclo si ripete
// ogni 8 giorni in entrambe le direzioni (anche prima della data base).
func Classify(person *domain.Person, day calendar.Date) Kind {
	base := person.RotationBaseRiposoDate
	if base == nil {
		return Nessuna
	}

	diff := calendar.DaysBetween(day, *base)
	// modulo vero, mai negativo, anche per date precedenti alla base
	offset := ((diff % cycleDays) + cycleDays) % cycleDays

	switch offset {
	case 0:
		return Riposo
	case 1:
		return Permesso
	default:
		return Nessuna
	}
}

// WeekOf applica Classify ai 7 giorni della settimana che inizia a monday.
func WeekOf(person *domain.Person, monday calendar.Date) [7]Kind {
	var week [7]Kind
	for d := 0; d < 7; d++ {
		week[d] = Classify(person, monday.AddDays(d))
	}
	return week
}

// WeekIndex è l'indice invertito giorno -> persone in RIPOSO / PERMESSO,
// usato dal rilevatore di anomalie e dalla UI per disabilitare le celle.
type WeekIndex struct {
	Riposi   map[int][]string
	Permessi map[int][]string

	byDay [7]map[string]Kind
}

// BuildWeekIndex costruisce l'indice della settimana per le persone attive.
func BuildWeekIndex(people []*domain.Person, monday calendar.Date) *WeekIndex {
	ix := &WeekIndex{
		Riposi:   make(map[int][]string, 7),
		Permessi: make(map[int][]string, 7),
	}
	for d := 0; d < 7; d++ {
		ix.Riposi[d] = []string{}
		ix.Permessi[d] = []string{}
		ix.byDay[d] = make(map[string]Kind)
	}

	for _, p := range people {
		if !p.IsActive {
			continue
		}
		week := WeekOf(p, monday)
		for d := 0; d < 7; d++ {
			switch week[d] {
			case Riposo:
				ix.Riposi[d] = append(ix.Riposi[d], p.ID)
				ix.byDay[d][p.ID] = Riposo
			case Permesso:
				ix.Permessi[d] = append(ix.Permessi[d], p.ID)
				ix.byDay[d][p.ID] = Permesso
			}
		}
	}

	return ix
}

// Kind riporta la classificazione della persona nel giorno day (0..6).
func (ix *WeekIndex) Kind(day int, personID string) Kind {
	if day < 0 || day > 6 {
		return Nessuna
	}
	return ix.byDay[day][personID]
}
