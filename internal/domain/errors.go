package domain

import "errors"

var (
	// ErrPersonaAssente segnala il tentativo di assegnare a una cella una
	// persona con un'assenza bloccante in quel giorno. La scrittura viene
	// rifiutata per intero.
	ErrPersonaAssente = errors.New("la persona è assente in quel giorno")
)
