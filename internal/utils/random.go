package utils

import (
	"fmt"
	"math/rand"
)

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var firstNames = []string{
	"Marco", "Luca", "Giulia", "Francesca", "Alessandro", "Chiara",
	"Davide", "Elena", "Matteo", "Sara", "Andrea", "Valentina",
	"Simone", "Martina", "Paolo", "Federica", "Stefano", "Ilaria",
}

var lastNames = []string{
	"Rossi", "Russo", "Ferrari", "Esposito", "Bianchi", "Romano",
	"Colombo", "Ricci", "Marino", "Greco", "Bruno", "Gallo",
	"Conti", "De Luca", "Mancini", "Costa", "Giordano", "Rizzo",
}

// GenerateRandomFullName genera un nome per i dati di seed.
func GenerateRandomFullName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}
