package planner

import (
	"sort"

	"github.com/gestione-turni/backend/internal/domain"
	"github.com/gestione-turni/backend/internal/rotation"
)

// DetectAnomalies incrocia la griglia con rotazioni e assenze e produce le
// cinque categorie di anomalie per ogni giorno. I controlli sono
// indipendenti: una stessa assegnazione può comparire in più categorie.
func DetectAnomalies(
	grid map[int]map[string]*string,
	shifts []*domain.Shift,
	people []*domain.Person,
	rotIx *rotation.WeekIndex,
	absIx *AbsenceIndex,
) domain.WeekAlerts {
	alerts := domain.WeekAlerts{
		Duplicates:          make(map[int][]domain.DuplicateAlert, 7),
		NotPlanned:          make(map[int][]string, 7),
		RiposoSaltato:       make(map[int][]domain.RotationAlert, 7),
		PermessoSaltato:     make(map[int][]domain.RotationAlert, 7),
		ExtraAbsenceSaltata: make(map[int][]domain.AbsenceAlert, 7),
	}

	shiftNameByID := make(map[string]string, len(shifts))
	shiftOrder := make([]string, 0, len(shifts))
	for _, s := range shifts {
		shiftNameByID[s.ID] = s.Name
		shiftOrder = append(shiftOrder, s.ID)
	}

	activeIDs := make([]string, 0, len(people))
	for _, p := range people {
		if p.IsActive {
			activeIDs = append(activeIDs, p.ID)
		}
	}

	for d := 0; d < 7; d++ {
		alerts.Duplicates[d] = []domain.DuplicateAlert{}
		alerts.NotPlanned[d] = []string{}
		alerts.RiposoSaltato[d] = []domain.RotationAlert{}
		alerts.PermessoSaltato[d] = []domain.RotationAlert{}
		alerts.ExtraAbsenceSaltata[d] = []domain.AbsenceAlert{}

		row := grid[d]

		// doppioni: stessa persona su più turni nello stesso giorno
		counts := make(map[string]int)
		for _, pid := range row {
			if pid != nil {
				counts[*pid]++
			}
		}
		dupIDs := make([]string, 0)
		for pid, cnt := range counts {
			if cnt >= 2 {
				dupIDs = append(dupIDs, pid)
			}
		}
		sort.Strings(dupIDs)
		for _, pid := range dupIDs {
			alerts.Duplicates[d] = append(alerts.Duplicates[d], domain.DuplicateAlert{
				PersonID: pid,
				Count:    counts[pid],
			})
		}

		// assegnazioni in conflitto con assenze o rotazione, in ordine di
		// turno per avere output stabile
		for _, shiftID := range shiftOrder {
			pid := row[shiftID]
			if pid == nil {
				continue
			}

			if kind, ok := absIx.Kind(d, *pid); ok {
				alerts.ExtraAbsenceSaltata[d] = append(alerts.ExtraAbsenceSaltata[d], domain.AbsenceAlert{
					PersonID:  *pid,
					Kind:      kind,
					ShiftID:   shiftID,
					ShiftName: shiftNameByID[shiftID],
				})
			}

			switch rotIx.Kind(d, *pid) {
			case rotation.Riposo:
				alerts.RiposoSaltato[d] = append(alerts.RiposoSaltato[d], domain.RotationAlert{
					PersonID:  *pid,
					ShiftID:   shiftID,
					ShiftName: shiftNameByID[shiftID],
				})
			case rotation.Permesso:
				alerts.PermessoSaltato[d] = append(alerts.PermessoSaltato[d], domain.RotationAlert{
					PersonID:  *pid,
					ShiftID:   shiftID,
					ShiftName: shiftNameByID[shiftID],
				})
			}
		}

		// non pianificati: attivi, senza assegnazioni, non a riposo/permesso
		// e non assenti
		for _, pid := range activeIDs {
			if counts[pid] > 0 {
				continue
			}
			if rotIx.Kind(d, pid) != rotation.Nessuna {
				continue
			}
			if absIx.Blocked(d, pid) {
				continue
			}
			alerts.NotPlanned[d] = append(alerts.NotPlanned[d], pid)
		}
	}

	return alerts
}
