package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gestione-turni/backend/internal/calendar"
	"github.com/gestione-turni/backend/internal/domain"
	"github.com/gestione-turni/backend/internal/repository"
	"github.com/gestione-turni/backend/internal/utils"
)

// SeedShiftsIfMissing crea i dieci turni di default ("Turno 1".."Turno 10")
// saltando quelli già presenti, riconosciuti dal sort_order.
func SeedShiftsIfMissing(r *repository.Repository) int {
	existing, err := r.GetAllShifts()
	if err != nil {
		slog.Error("impossibile leggere i turni esistenti", "error", err)
		return 0
	}

	existingOrders := make(map[int32]bool, len(existing))
	for _, s := range existing {
		existingOrders[s.SortOrder] = true
	}

	created := 0
	for i := 1; i <= 10; i++ {
		if existingOrders[int32(i)] {
			continue
		}
		shift := &domain.Shift{
			Name: fmt.Sprintf("Turno %d", i),
		}
		if err := r.CreateShift(shift); err != nil {
			slog.Error("impossibile creare il turno di default", "name", shift.Name, "error", err)
			continue
		}
		created++
	}

	return created
}

// SeedDemoPeople inserisce n persone con rotazione agganciata a un giorno
// casuale della settimana corrente e qualche assenza di prova.
func SeedDemoPeople(r *repository.Repository, n int) int {
	monday := calendar.MondayOf(calendar.DateOf(time.Now()))
	kinds := []domain.AbsenceKind{domain.AbsenceFerie, domain.AbsenceMalattia, domain.AbsenceInfortunio}

	created := 0
	for i := 0; i < n; i++ {
		p := &domain.Person{
			FullName: utils.GenerateRandomFullName(),
		}
		if err := r.CreatePerson(p); err != nil {
			slog.Error("impossibile creare la persona di prova", "error", err)
			continue
		}
		created++

		base := monday.AddDays(rand.Intn(7))
		p.RotationBaseRiposoDate = &base
		if err := r.UpdatePerson(p); err != nil {
			slog.Error("impossibile impostare la rotazione di prova", "person", p.ID, "error", err)
		}

		// un'assenza ogni tre persone circa, nella settimana successiva
		if rand.Intn(3) == 0 {
			start := monday.AddDays(7 + rand.Intn(5))
			a := &domain.Absence{
				PersonID:  p.ID,
				Kind:      kinds[rand.Intn(len(kinds))],
				StartDate: start,
				EndDate:   start.AddDays(rand.Intn(5)),
			}
			if err := r.CreateAbsence(a); err != nil {
				slog.Error("impossibile creare l'assenza di prova", "person", p.ID, "error", err)
			}
		}
	}

	return created
}
