// Package seed contains the weekly schedule shown when the tournament store cannot be reached and nothing has been
// cached yet
package seed

import (
	"github.com/google/uuid"

	"github.com/derWhity/greentable/internal/models"
)

// namespace for deriving stable IDs for the seed tournaments
var namespace = uuid.MustParse("6f1d2c3a-9b7e-4c1a-8f0e-2d5b7a9c4e11")

type entry struct {
	name, date, time, buyIn, prize string
	maxPlayers                     int
	special                        string
}

var weekly = []entry{
	{"Monday Turbo", "Segunda", "20:00", "R$ 100,00", "R$ 5.000,00 garantidos", 60, ""},
	{"Terça Deepstack", "Terça", "19:30", "R$ 150,00", "A definir", 50, "Stack inicial de 50.000 fichas"},
	{"Quarta Bounty", "Quarta", "20:00", "R$ 120,00", "R$ 3.000,00 + bounties", 50, "R$ 20,00 por eliminação"},
	{"Quinta Hyper", "Quinta", "21:00", "R$ 80,00", "A definir", 40, "Blinds de 10 minutos"},
	{"Sexta Main Event", "Sexta", "19:00", "R$ 200,00", "R$ 10.000,00 garantidos", 80, ""},
	{"Sábado High Roller", "Sábado", "18:00", "R$ 500,00", "R$ 20.000,00 garantidos", 40, "Reentrada até o nível 6"},
	{"Domingo Freeroll", "Domingo", "16:00", "Grátis", "Vaga no Main Event", 100, "Exclusivo para sócios"},
}

// Tournaments returns a fresh copy of the seed schedule.
// The IDs are derived from the names and stay the same for every call.
func Tournaments() []models.Tournament {
	ret := make([]models.Tournament, 0, len(weekly))
	for _, e := range weekly {
		ret = append(ret, models.Tournament{
			ID:              uuid.NewSHA1(namespace, []byte(e.name)).String(),
			Name:            e.name,
			Date:            e.date,
			Time:            e.time,
			BuyIn:           e.buyIn,
			Prize:           e.prize,
			MaxPlayers:      e.maxPlayers,
			SpecialFeatures: e.special,
		})
	}
	return ret
}
