package schedule

import (
	"time"

	"github.com/derWhity/greentable/internal/models"
)

// The promotional lines added to every tournament played on a Monday or a Friday
const (
	PromoLateRegistration = "⭐ Free com registro tardio até o final do nível 7"
	PromoFreeEntry        = "⭐ Entrada free até o final do nível 3"
)

// Week holds the tournaments of each day of the week, indexed by time.Weekday
type Week [7][]models.Tournament

// Count returns the number of tournaments over all days
func (w Week) Count() int {
	n := 0
	for _, day := range w {
		n += len(day)
	}
	return n
}

// PartitionByWeekday sorts the tournaments into the days of the week they are played on.
// Monday and Friday tournaments receive the promotional lines. The order inside each day follows the input order.
func PartitionByWeekday(events []models.Tournament, loc *time.Location) Week {
	var week Week
	for i := range week {
		week[i] = []models.Tournament{}
	}
	for _, ev := range events {
		day := ResolveWeekday(ev.Date, loc)
		week[day] = append(week[day], Annotate(ev, day))
	}
	return week
}

// HasPromotion checks if tournaments on the given day receive the promotional lines
func HasPromotion(day time.Weekday) bool {
	return day == time.Monday || day == time.Friday
}

// Annotate returns the tournament with the promotional lines appended to its special features if it is played on a
// promotional day. The tournament is passed by value, the caller's copy stays as it was.
func Annotate(ev models.Tournament, day time.Weekday) models.Tournament {
	if !HasPromotion(day) {
		return ev
	}
	ev.SpecialFeatures = ev.SpecialFeatures + "\n" + PromoLateRegistration + "\n" + PromoFreeEntry
	return ev
}
