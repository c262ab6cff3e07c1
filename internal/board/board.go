// Package board owns the itinerary list: the working copy of the events, the
// active sort key and one item presenter per rendered event.
package board

import (
	"errors"
	"fmt"
	"io"

	"tripboard/internal/model"
	"tripboard/internal/view"

	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
)

var (
	ErrUnknownEvent    = errors.New("unknown event")
	ErrSortDisabled    = model.ErrSortDisabled
	ErrUnknownSortType = model.ErrUnknownSortType
)

// ItemPresenter pairs one event with its rendered view.
type ItemPresenter interface {
	// Init mounts the item's view, or refreshes it when already mounted.
	Init(ev model.Event)
	// ResetView leaves edit mode; no-op when not editing.
	ResetView()
	Destroy()
}

// Observer is what item presenters report back to.
type Observer interface {
	OnDataChange(ev model.Event) error
	OnModeChange()
}

// ItemFactory builds a presenter that renders into list.
type ItemFactory func(list *view.Container, obs Observer) ItemPresenter

// EventsSource yields the event snapshot the board starts from.
type EventsSource interface {
	Events() []model.Event
}

type Config struct {
	Container *view.Container
	Events    EventsSource
	NewItem   ItemFactory // nil renders plain read-only rows
	Logger    log.FieldLogger

	// ListStyle is applied to the list container. Zero value renders unstyled.
	ListStyle lipgloss.Style
}

type Board struct {
	container *view.Container
	newItem   ItemFactory
	logger    log.FieldLogger
	listStyle lipgloss.Style

	events []model.Event
	// sourced mirrors events in load order. Updated in lockstep, never read back.
	sourced []model.Event

	currentSort model.SortType
	presenters  map[string]ItemPresenter

	sortView  *SortView
	listView  *view.Container
	emptyView *EmptyView
	rendered  bool
}

func New(cfg Config) *Board {
	logger := cfg.Logger
	if logger == nil {
		l := log.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	var snapshot []model.Event
	if cfg.Events != nil {
		snapshot = cfg.Events.Events()
	}
	b := &Board{
		container:   cfg.Container,
		newItem:     cfg.NewItem,
		logger:      logger,
		listStyle:   cfg.ListStyle,
		events:      model.CloneEvents(snapshot),
		sourced:     model.CloneEvents(snapshot),
		currentSort: model.DefaultSortType,
		presenters:  map[string]ItemPresenter{},
	}
	if b.newItem == nil {
		b.newItem = func(list *view.Container, _ Observer) ItemPresenter {
			return &plainItem{list: list, mount: b.mount}
		}
	}
	return b
}

// Init sorts by the current key and renders the board. Re-initialising a
// rendered board tears it down first.
func (b *Board) Init() {
	if b.rendered {
		b.clearBoard()
	}
	b.sortEvents(b.currentSort)
	b.renderBoard()
}

// ChangeSortType reorders the board by st and rebuilds every item. Selecting
// the active key does nothing.
func (b *Board) ChangeSortType(st model.SortType) error {
	if st == b.currentSort {
		return nil
	}
	if _, err := model.Comparator(st); err != nil {
		b.logger.WithFields(log.Fields{"sort": st}).WithError(err).Warn("sort change rejected")
		return err
	}
	b.sortEvents(st)
	b.clearBoard()
	b.renderBoard()
	b.logger.WithFields(log.Fields{"sort": st, "events": len(b.events)}).Debug("board re-sorted")
	return nil
}

// OnDataChange swaps in an updated event and refreshes only its presenter.
// The board is not re-sorted.
func (b *Board) OnDataChange(ev model.Event) error {
	i := indexOf(b.events, ev.ID)
	p, ok := b.presenters[ev.ID]
	if i < 0 || !ok {
		b.logger.WithField("event", ev.ID).Warn("update for unknown event")
		return fmt.Errorf("%w: %s", ErrUnknownEvent, ev.ID)
	}

	b.events[i] = ev.Clone()
	if j := indexOf(b.sourced, ev.ID); j >= 0 {
		b.sourced[j] = ev.Clone()
	}
	p.Init(ev.Clone())
	b.logger.WithField("event", ev.ID).Debug("event updated")
	return nil
}

// OnModeChange returns every item to display mode, so at most one item is
// edited at a time.
func (b *Board) OnModeChange() {
	for _, p := range b.presenters {
		p.ResetView()
	}
}

// Events returns the working list in display order.
func (b *Board) Events() []model.Event {
	return model.CloneEvents(b.events)
}

func (b *Board) SortType() model.SortType { return b.currentSort }

func (b *Board) Presenter(id string) (ItemPresenter, bool) {
	p, ok := b.presenters[id]
	return p, ok
}

// SortView is nil while the board is empty or not rendered.
func (b *Board) SortView() *SortView { return b.sortView }

func (b *Board) Rendered() bool { return b.rendered }

func (b *Board) sortEvents(st model.SortType) {
	if err := model.SortEvents(b.events, st); err != nil {
		// Only reachable through Init with a key ChangeSortType never accepts.
		b.logger.WithField("sort", st).WithError(err).Error("sort failed")
		return
	}
	b.currentSort = st
}

func (b *Board) renderBoard() {
	b.rendered = true
	b.listView = newListView(b.listStyle)

	if len(b.events) == 0 {
		b.emptyView = NewEmptyView()
		b.mount(b.emptyView, b.container)
		return
	}

	b.renderSort()
	b.mount(b.listView, b.container)
	b.renderEvents()
}

func (b *Board) renderSort() {
	b.sortView = NewSortView(b.currentSort, b.ChangeSortType)
	b.mount(b.sortView, b.container)
}

func (b *Board) renderEvents() {
	for _, ev := range b.events {
		p := b.newItem(b.listView, b)
		p.Init(ev.Clone())
		b.presenters[ev.ID] = p
	}
}

func (b *Board) clearBoard() {
	for _, p := range b.presenters {
		p.Destroy()
	}
	clear(b.presenters)

	view.Remove(b.sortView)
	view.Remove(b.listView)
	view.Remove(b.emptyView)
	b.sortView = nil
	b.listView = nil
	b.emptyView = nil
	b.rendered = false
}

func (b *Board) mount(c view.Component, into *view.Container) {
	if err := view.Render(c, into); err != nil {
		b.logger.WithError(err).Error("mount failed")
	}
}

func indexOf(evs []model.Event, id string) int {
	for i := range evs {
		if evs[i].ID == id {
			return i
		}
	}
	return -1
}
