package store

import (
	"math/rand"
	"time"

	"tripboard/internal/model"

	"github.com/google/uuid"
)

var demoDestinations = []string{"Amsterdam", "Geneva", "Chamonix", "Lisbon", "Porto", "Kyoto", "Reykjavik"}

var demoOffers = map[model.EventType][]string{
	model.EventTypeTaxi:       {"Upgrade to business", "Order Uber"},
	model.EventTypeFlight:     {"Add luggage", "Switch to comfort", "Add meal", "Choose seats"},
	model.EventTypeCheckIn:    {"Add breakfast", "Late checkout"},
	model.EventTypeDrive:      {"Rent a car"},
	model.EventTypeTrain:      {"Travel by train"},
	model.EventTypeRestaurant: {"Book tickets", "Lunch in city"},
}

// DemoEvents builds n plausible itinerary events starting around now. Events are
// returned in generation order, which is deliberately not chronological.
func DemoEvents(n int, now time.Time, rnd *rand.Rand) []model.Event {
	if n <= 0 {
		return []model.Event{}
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(now.UnixNano()))
	}
	start := now.UTC().Truncate(time.Hour)

	out := make([]model.Event, 0, n)
	for i := 0; i < n; i++ {
		typ := model.EventTypes[rnd.Intn(len(model.EventTypes))]
		from := start.Add(time.Duration(rnd.Intn(14*24)) * time.Hour).Add(time.Duration(rnd.Intn(4)) * 15 * time.Minute)
		dur := time.Duration(15+rnd.Intn(8*60)) * time.Minute

		var offers []string
		for _, o := range demoOffers[typ] {
			if rnd.Intn(2) == 0 {
				offers = append(offers, o)
			}
		}

		out = append(out, model.Event{
			ID:          uuid.NewString(),
			Type:        typ,
			Destination: demoDestinations[rnd.Intn(len(demoDestinations))],
			DateFrom:    from,
			DateTo:      from.Add(dur),
			BasePrice:   10 * (1 + rnd.Intn(150)),
			Offers:      offers,
			IsFavorite:  rnd.Intn(4) == 0,
		})
	}
	return out
}
