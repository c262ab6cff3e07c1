package store

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"tripboard/internal/model"
)

func TestReplaceAndLoadEvents_PreservesOrderAndFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	from := time.Date(2026, 3, 18, 10, 30, 0, 0, time.UTC)
	evs := []model.Event{
		{ID: "b", Type: model.EventTypeFlight, Destination: "Geneva", DateFrom: from, DateTo: from.Add(95 * time.Minute), BasePrice: 160, Offers: []string{"Add luggage"}, IsFavorite: true},
		{ID: "a", Type: model.EventTypeTaxi, Destination: "Amsterdam", DateFrom: from.Add(-time.Hour), DateTo: from, BasePrice: 20},
	}
	if err := s.ReplaceEvents(ctx, evs); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := s.LoadEvents(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("unexpected load order: %+v", got)
	}
	b := got[0]
	if b.Type != model.EventTypeFlight || b.Destination != "Geneva" || b.BasePrice != 160 || !b.IsFavorite {
		t.Fatalf("fields lost: %+v", b)
	}
	if !b.DateFrom.Equal(from) || b.Duration() != 95*time.Minute {
		t.Fatalf("times lost: %s %s", b.DateFrom, b.Duration())
	}
	if len(b.Offers) != 1 || b.Offers[0] != "Add luggage" {
		t.Fatalf("offers lost: %v", b.Offers)
	}
	if got[1].Offers != nil {
		t.Fatalf("expected no offers, got %v", got[1].Offers)
	}
}

func TestSaveEvent_UpdatesInPlace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	now := time.Now().UTC().Truncate(time.Millisecond)
	if err := s.ReplaceEvents(ctx, []model.Event{
		{ID: "x", Type: model.EventTypeBus, DateFrom: now, DateTo: now},
		{ID: "y", Type: model.EventTypeShip, DateFrom: now, DateTo: now},
	}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	if err := s.SaveEvent(ctx, model.Event{ID: "x", Type: model.EventTypeBus, Destination: "Porto", DateFrom: now, DateTo: now, BasePrice: 77}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.GetEvent(ctx, "x")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.BasePrice != 77 || got.Destination != "Porto" {
		t.Fatalf("not updated: %+v", got)
	}
	all, _ := s.LoadEvents(ctx)
	if all[0].ID != "x" {
		t.Fatalf("save must keep position, got %s first", all[0].ID)
	}
}

func TestMissingEvent_ReturnsErrNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	if err := s.SaveEvent(ctx, model.Event{ID: "nope"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("save: expected ErrNotFound, got %v", err)
	}
	if _, err := s.GetEvent(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get: expected ErrNotFound, got %v", err)
	}
}

func TestReplaceEvents_RejectsDuplicateIDs(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}
	err := s.ReplaceEvents(context.Background(), []model.Event{{ID: "a"}, {ID: "a"}})
	if err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestLoadModel_SnapshotIsolation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	evs := DemoEvents(5, time.Now(), rand.New(rand.NewSource(1)))
	if err := s.ReplaceEvents(ctx, evs); err != nil {
		t.Fatalf("replace: %v", err)
	}
	m, err := s.LoadModel(ctx)
	if err != nil {
		t.Fatalf("load model: %v", err)
	}
	snap := m.Events()
	if len(snap) != 5 {
		t.Fatalf("snapshot size %d", len(snap))
	}
	snap[0].BasePrice = -1
	if m.Events()[0].BasePrice == -1 {
		t.Fatalf("snapshot aliases the model")
	}
}

func TestDemoEvents(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	evs := DemoEvents(20, now, rand.New(rand.NewSource(42)))
	if len(evs) != 20 {
		t.Fatalf("expected 20 events, got %d", len(evs))
	}
	seen := map[string]bool{}
	for _, ev := range evs {
		if ev.ID == "" || seen[ev.ID] {
			t.Fatalf("bad id %q", ev.ID)
		}
		seen[ev.ID] = true
		if !ev.Type.Valid() {
			t.Fatalf("bad type %q", ev.Type)
		}
		if ev.Duration() <= 0 || ev.BasePrice <= 0 {
			t.Fatalf("bad event %+v", ev)
		}
		if ev.DateFrom.Before(now) {
			t.Fatalf("event starts before now: %s", ev.DateFrom)
		}
	}
	if got := DemoEvents(0, now, nil); len(got) != 0 {
		t.Fatalf("expected no events")
	}
}
