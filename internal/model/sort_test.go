package model

import (
	"errors"
	"testing"
	"time"
)

func sampleEvents() []Event {
	base := time.Date(2026, 3, 18, 10, 0, 0, 0, time.UTC)
	return []Event{
		{ID: "a", DateFrom: base.Add(48 * time.Hour), DateTo: base.Add(49 * time.Hour), BasePrice: 300},
		{ID: "b", DateFrom: base, DateTo: base.Add(3 * time.Hour), BasePrice: 100},
		{ID: "c", DateFrom: base.Add(24 * time.Hour), DateTo: base.Add(24*time.Hour + 30*time.Minute), BasePrice: 200},
	}
}

func ids(evs []Event) []string {
	out := make([]string, 0, len(evs))
	for _, e := range evs {
		out = append(out, e.ID)
	}
	return out
}

func TestSortEvents_EnabledKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		st   SortType
		want []string
	}{
		{st: SortDay, want: []string{"b", "c", "a"}},
		{st: SortTime, want: []string{"c", "a", "b"}},
		{st: SortPrice, want: []string{"b", "c", "a"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.st), func(t *testing.T) {
			t.Parallel()
			evs := sampleEvents()
			if err := SortEvents(evs, tt.st); err != nil {
				t.Fatalf("sort: %v", err)
			}
			got := ids(evs)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("order: got %v want %v", got, tt.want)
				}
			}
			if !IsSorted(evs, tt.st) {
				t.Fatalf("expected sorted by %s", tt.st)
			}
		})
	}
}

func TestSortEvents_IsStable(t *testing.T) {
	t.Parallel()

	evs := []Event{
		{ID: "x", BasePrice: 10},
		{ID: "y", BasePrice: 5},
		{ID: "z", BasePrice: 10},
	}
	if err := SortEvents(evs, SortPrice); err != nil {
		t.Fatalf("sort: %v", err)
	}
	got := ids(evs)
	if got[0] != "y" || got[1] != "x" || got[2] != "z" {
		t.Fatalf("expected stable order [y x z], got %v", got)
	}
}

func TestSortEvents_RejectsDisabledAndUnknown(t *testing.T) {
	t.Parallel()

	evs := sampleEvents()
	if err := SortEvents(evs, SortOffer); !errors.Is(err, ErrSortDisabled) {
		t.Fatalf("offer: expected ErrSortDisabled, got %v", err)
	}
	if err := SortEvents(evs, SortEvent); !errors.Is(err, ErrSortDisabled) {
		t.Fatalf("event: expected ErrSortDisabled, got %v", err)
	}
	if err := SortEvents(evs, SortType("rating")); !errors.Is(err, ErrUnknownSortType) {
		t.Fatalf("rating: expected ErrUnknownSortType, got %v", err)
	}
	if got := ids(evs); got[0] != "a" {
		t.Fatalf("rejected sort must not reorder, got %v", got)
	}
}

func TestParseSortType(t *testing.T) {
	t.Parallel()

	st, err := ParseSortType(" Price ")
	if err != nil || st != SortPrice {
		t.Fatalf("ParseSortType(Price): %q, %v", st, err)
	}
	if _, err := ParseSortType("cheapest"); !errors.Is(err, ErrUnknownSortType) {
		t.Fatalf("expected ErrUnknownSortType, got %v", err)
	}
	if !SortDay.Enabled() || SortOffer.Enabled() || !SortOffer.Known() {
		t.Fatalf("unexpected enabled/known flags")
	}
	if DefaultSortType != SortDay {
		t.Fatalf("default sort: %s", DefaultSortType)
	}
}

func TestEventDuration_NegativeIsZero(t *testing.T) {
	t.Parallel()

	now := time.Now()
	e := Event{DateFrom: now, DateTo: now.Add(-time.Hour)}
	if e.Duration() != 0 {
		t.Fatalf("expected zero duration, got %s", e.Duration())
	}
}

func TestCloneEvents_DoesNotShareOffers(t *testing.T) {
	t.Parallel()

	src := []Event{{ID: "a", Offers: []string{"luggage"}}}
	dst := CloneEvents(src)
	dst[0].Offers[0] = "meal"
	if src[0].Offers[0] != "luggage" {
		t.Fatalf("clone shares offers backing array")
	}
}
