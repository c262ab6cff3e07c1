package model

import (
	"slices"
	"time"
)

type EventType string

const (
	EventTypeTaxi        EventType = "taxi"
	EventTypeBus         EventType = "bus"
	EventTypeTrain       EventType = "train"
	EventTypeShip        EventType = "ship"
	EventTypeDrive       EventType = "drive"
	EventTypeFlight      EventType = "flight"
	EventTypeCheckIn     EventType = "check-in"
	EventTypeSightseeing EventType = "sightseeing"
	EventTypeRestaurant  EventType = "restaurant"
)

// EventTypes lists every known event type in display order.
var EventTypes = []EventType{
	EventTypeTaxi,
	EventTypeBus,
	EventTypeTrain,
	EventTypeShip,
	EventTypeDrive,
	EventTypeFlight,
	EventTypeCheckIn,
	EventTypeSightseeing,
	EventTypeRestaurant,
}

func (t EventType) Valid() bool {
	return slices.Contains(EventTypes, t)
}

// Event is one itinerary entry (a trip segment).
type Event struct {
	ID          string    `json:"id"`
	Type        EventType `json:"type"`
	Destination string    `json:"destination"`
	DateFrom    time.Time `json:"dateFrom"`
	DateTo      time.Time `json:"dateTo"`
	BasePrice   int       `json:"basePrice"`
	Offers      []string  `json:"offers,omitempty"`
	IsFavorite  bool      `json:"isFavorite"`
}

// Duration is the time spent on the event. Events whose end precedes the start
// report a zero duration.
func (e Event) Duration() time.Duration {
	d := e.DateTo.Sub(e.DateFrom)
	if d < 0 {
		return 0
	}
	return d
}

// Clone returns a copy that does not share the Offers backing array.
func (e Event) Clone() Event {
	out := e
	if e.Offers != nil {
		out.Offers = slices.Clone(e.Offers)
	}
	return out
}

// CloneEvents deep-copies a slice of events.
func CloneEvents(evs []Event) []Event {
	if evs == nil {
		return nil
	}
	out := make([]Event, len(evs))
	for i := range evs {
		out[i] = evs[i].Clone()
	}
	return out
}
