package model

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

type SortType string

const (
	SortDay   SortType = "day"
	SortEvent SortType = "event"
	SortTime  SortType = "time"
	SortPrice SortType = "price"
	SortOffer SortType = "offer"
)

const DefaultSortType = SortDay

var (
	ErrUnknownSortType = errors.New("unknown sort type")
	ErrSortDisabled    = errors.New("sort type is disabled")
)

// SortOption is one entry of the sort control.
type SortOption struct {
	Type     SortType
	Disabled bool
}

// SortTypes is the sort control table, in display order.
var SortTypes = []SortOption{
	{Type: SortDay},
	{Type: SortEvent, Disabled: true},
	{Type: SortTime},
	{Type: SortPrice},
	{Type: SortOffer, Disabled: true},
}

func ParseSortType(s string) (SortType, error) {
	st := SortType(strings.ToLower(strings.TrimSpace(s)))
	if !st.Known() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSortType, s)
	}
	return st, nil
}

func (st SortType) Known() bool {
	_, ok := sortOption(st)
	return ok
}

// Enabled reports whether st is a known, selectable sort type.
func (st SortType) Enabled() bool {
	opt, ok := sortOption(st)
	return ok && !opt.Disabled
}

func sortOption(st SortType) (SortOption, bool) {
	for _, opt := range SortTypes {
		if opt.Type == st {
			return opt, true
		}
	}
	return SortOption{}, false
}

func compareByDay(a, b Event) int   { return a.DateFrom.Compare(b.DateFrom) }
func compareByTime(a, b Event) int  { return cmp.Compare(a.Duration(), b.Duration()) }
func compareByPrice(a, b Event) int { return cmp.Compare(a.BasePrice, b.BasePrice) }

// Comparator returns the ordering function for an enabled sort type.
func Comparator(st SortType) (func(a, b Event) int, error) {
	switch st {
	case SortDay:
		return compareByDay, nil
	case SortTime:
		return compareByTime, nil
	case SortPrice:
		return compareByPrice, nil
	}
	if st.Known() {
		return nil, fmt.Errorf("%w: %s", ErrSortDisabled, st)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSortType, string(st))
}

// SortEvents stable-sorts evs in place, ascending by the key of st.
func SortEvents(evs []Event, st SortType) error {
	cmpFn, err := Comparator(st)
	if err != nil {
		return err
	}
	slices.SortStableFunc(evs, cmpFn)
	return nil
}

// IsSorted reports whether evs is non-decreasing under st.
func IsSorted(evs []Event, st SortType) bool {
	cmpFn, err := Comparator(st)
	if err != nil {
		return false
	}
	return slices.IsSortedFunc(evs, cmpFn)
}
