package domain

import (
	"time"

	"github.com/gestione-turni/backend/internal/calendar"
)

type Person struct {
	ID       string  `json:"id"`
	FullName string  `json:"full_name"`
	IsActive bool    `json:"is_active"`
	Notes    *string `json:"notes"`

	// Data di ancoraggio della rotazione 8 giorni: il giorno indicato è un
	// RIPOSO, il successivo un PERMESSO. Se è nil la persona non ha
	// rotazione e tutti i giorni sono lavorativi ordinari.
	RotationBaseRiposoDate *calendar.Date `json:"rotation_base_riposo_date"`

	CreatedAt time.Time `json:"created_at"`
	Version   int32     `json:"-"`
}
