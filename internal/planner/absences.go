package planner

import (
	"fmt"

	"github.com/gestione-turni/backend/internal/calendar"
	"github.com/gestione-turni/backend/internal/domain"
)

// In caso di assenze sovrapposte di tipo diverso nello stesso giorno vince il
// tipo con priorità più alta: FERIE > INFORTUNIO > MALATTIA. La scelta è
// arbitraria ma deterministica, conta solo per la visualizzazione: ai fini
// del blocco qualunque assenza è sufficiente.
var kindPriority = map[domain.AbsenceKind]int{
	domain.AbsenceFerie:      3,
	domain.AbsenceInfortunio: 2,
	domain.AbsenceMalattia:   1,
}

// AbsenceIndex risponde a "la persona P è bloccata nel giorno D, e da che
// tipo di assenza" per i 7 giorni di una settimana.
type AbsenceIndex struct {
	monday calendar.Date
	extra  [7]map[string]domain.AbsenceKind
}

// BuildAbsenceIndex indicizza le assenze che intersecano la settimana che
// inizia a monday. Le assenze fuori finestra vengono ignorate.
func BuildAbsenceIndex(absences []*domain.Absence, monday calendar.Date) *AbsenceIndex {
	ix := &AbsenceIndex{monday: monday}
	for d := range ix.extra {
		ix.extra[d] = make(map[string]domain.AbsenceKind)
	}

	for _, a := range absences {
		for d := 0; d < 7; d++ {
			day := monday.AddDays(d)
			if !a.Covers(day) {
				continue
			}
			if cur, ok := ix.extra[d][a.PersonID]; ok && kindPriority[cur] >= kindPriority[a.Kind] {
				continue
			}
			ix.extra[d][a.PersonID] = a.Kind
		}
	}

	return ix
}

// Kind riporta il tipo di assenza bloccante della persona nel giorno day
// (0..6), se esiste.
func (ix *AbsenceIndex) Kind(day int, personID string) (domain.AbsenceKind, bool) {
	if day < 0 || day > 6 {
		return "", false
	}
	kind, ok := ix.extra[day][personID]
	return kind, ok
}

// Blocked riporta se la persona è bloccata nel giorno day.
func (ix *AbsenceIndex) Blocked(day int, personID string) bool {
	_, ok := ix.Kind(day, personID)
	return ok
}

// CheckAssignable è il controllo di scrittura della griglia: assegnare una
// persona bloccata viene rifiutato come conflitto, non salvato come anomalia.
// Un'assenza inserita dopo può comunque rendere illegale una cella già
// salvata: quel caso lo riporta il rilevatore di anomalie in lettura.
func CheckAssignable(absIx *AbsenceIndex, day int, personID string) error {
	if kind, ok := absIx.Kind(day, personID); ok {
		return fmt.Errorf("%w (%s)", domain.ErrPersonaAssente, kind)
	}
	return nil
}

// ByDay restituisce la mappa giorno -> persona -> tipo, la forma che la UI
// consuma dentro WeekAbsences.
func (ix *AbsenceIndex) ByDay() map[int]map[string]domain.AbsenceKind {
	out := make(map[int]map[string]domain.AbsenceKind, 7)
	for d := 0; d < 7; d++ {
		m := make(map[string]domain.AbsenceKind, len(ix.extra[d]))
		for pid, kind := range ix.extra[d] {
			m[pid] = kind
		}
		out[d] = m
	}
	return out
}
