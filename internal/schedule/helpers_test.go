package schedule

import (
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/derWhity/greentable/internal/models"
)

var saoPaulo = mustLoadLocation("America/Sao_Paulo")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		// Systems without tzdata still get a deterministic fixed zone
		return time.FixedZone("BRT", -3*60*60)
	}
	return loc
}

// tournamentGenerator creates tournaments with random display data but controlled dates
type tournamentGenerator struct {
	faker *gofakeit.Faker
}

func newTournamentGenerator(t *testing.T) *tournamentGenerator {
	t.Helper()
	return &tournamentGenerator{faker: gofakeit.New(42)}
}

func (g *tournamentGenerator) tournament(date string) models.Tournament {
	return models.Tournament{
		ID:              g.faker.UUID(),
		Name:            g.faker.Sentence(g.faker.Number(2, 4)),
		Date:            date,
		Time:            fmt.Sprintf("%02d:00", g.faker.Number(12, 22)),
		BuyIn:           fmt.Sprintf("R$ %d,00", g.faker.Number(50, 500)),
		Prize:           fmt.Sprintf("R$ %d.000,00", g.faker.Number(1, 50)),
		MaxPlayers:      g.faker.Number(10, 200),
		SpecialFeatures: g.faker.Sentence(g.faker.Number(3, 8)),
	}
}

func (g *tournamentGenerator) tournaments(dates ...string) []models.Tournament {
	ret := make([]models.Tournament, 0, len(dates))
	for _, d := range dates {
		ret = append(ret, g.tournament(d))
	}
	return ret
}

func ids(events []models.Tournament) []string {
	ret := make([]string, 0, len(events))
	for _, ev := range events {
		ret = append(ret, ev.ID)
	}
	return ret
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, saoPaulo)
}
