package domain

import "time"

// Shift è un modello di turno. Gli orari sono stringhe "HH:MM" e valgono come
// default per ogni cella della griglia, salvo override per-cella.
type Shift struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartTime *string   `json:"start_time"`
	EndTime   *string   `json:"end_time"`
	Notes     *string   `json:"notes"`
	SortOrder int32     `json:"sort_order"` // solo ordinamento di visualizzazione
	CreatedAt time.Time `json:"created_at"`
	Version   int32     `json:"-"`
}
