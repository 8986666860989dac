package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/gestione-turni/backend/internal/calendar"
)

// Gli orari dei turni e degli override viaggiano come stringhe "HH:MM".
const timeLayout = "15:04"

func ValidateTimeString(s string) error {
	if _, err := time.Parse(timeLayout, s); err != nil {
		return fmt.Errorf("orario non valido: %q (atteso HH:MM)", s)
	}
	return nil
}

// ValidateShiftTimes controlla il formato degli orari e, se presenti
// entrambi, che la fine non preceda l'inizio.
func ValidateShiftTimes(start, end *string) error {
	if start != nil {
		if err := ValidateTimeString(*start); err != nil {
			return err
		}
	}
	if end != nil {
		if err := ValidateTimeString(*end); err != nil {
			return err
		}
	}
	if start != nil && end != nil {
		s, _ := time.Parse(timeLayout, *start)
		e, _ := time.Parse(timeLayout, *end)
		if e.Before(s) {
			return errors.New("l'orario di fine non può precedere quello di inizio")
		}
	}
	return nil
}

// ValidateAbsenceInterval controlla l'invariante end >= start (estremi
// inclusi).
func ValidateAbsenceInterval(start, end calendar.Date) error {
	if end.Before(start.Time) {
		return errors.New("la data di fine non può precedere quella di inizio")
	}
	return nil
}
