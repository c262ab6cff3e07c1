package store

import "tripboard/internal/model"

// EventsModel is the authoritative event collection handed to the board.
type EventsModel struct {
	events []model.Event
}

func NewEventsModel(evs []model.Event) *EventsModel {
	return &EventsModel{events: model.CloneEvents(evs)}
}

// Events returns a snapshot; callers may reorder it freely.
func (m *EventsModel) Events() []model.Event {
	return model.CloneEvents(m.events)
}
