package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"tripboard/internal/board"
	"tripboard/internal/model"
	"tripboard/internal/view"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
)

type Options struct {
	Events  board.EventsSource
	Saver   EventSaver
	Logger  log.FieldLogger
	NoColor bool
}

type appModel struct {
	root   *view.Container
	board  *board.Board
	layout *layout
	status *statusLine
	logger log.FieldLogger

	keys keyMap
	help help.Model

	selectedID string
	showHelp   bool

	width  int
	height int
}

func newAppModel(ctx context.Context, opts Options) appModel {
	applyColorProfile(opts.NoColor)

	logger := opts.Logger
	if logger == nil {
		l := log.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	l := &layout{width: 80}
	status := &statusLine{}
	root := view.NewContainer(lipgloss.NewStyle())

	b := board.New(board.Config{
		Container: root,
		Events:    opts.Events,
		Logger:    logger,
		ListStyle: listStyle,
		NewItem: func(list *view.Container, obs board.Observer) board.ItemPresenter {
			return newEventPresenter(list, persistingObserver{
				ctx:    ctx,
				next:   obs,
				saver:  opts.Saver,
				status: status,
				logger: logger,
			}, l, logger)
		},
	})
	b.Init()

	m := appModel{
		root:   root,
		board:  b,
		layout: l,
		status: status,
		logger: logger,
		keys:   newKeyMap(),
		help:   help.New(),
	}
	m.ensureSelection()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case "?", "esc", "q":
				m.showHelp = false
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}
		if p := m.editingPresenter(); p != nil {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, p.HandleKey(msg)
		}
		return m.updateBoard(msg)
	}
	return m, nil
}

func (m appModel) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Edit):
		if p := m.selectedPresenter(); p != nil {
			m.status.set("", false)
			return m, p.StartEdit()
		}
	case key.Matches(msg, m.keys.Favorite):
		if p := m.selectedPresenter(); p != nil {
			if err := p.ToggleFavorite(); err != nil {
				m.status.set(err.Error(), true)
			}
		}
	case key.Matches(msg, m.keys.Sort):
		m.selectSort(msg.String())
	}
	return m, nil
}

func (m appModel) selectSort(k string) {
	i := int(k[0] - '1')
	if i < 0 || i >= len(model.SortTypes) {
		return
	}
	st := model.SortTypes[i].Type
	sv := m.board.SortView()
	if sv == nil {
		m.status.set("nothing to sort", false)
		return
	}
	err := sv.Select(st)
	switch {
	case errors.Is(err, board.ErrSortDisabled):
		m.status.set(fmt.Sprintf("sorting by %s is not available", st), true)
	case err != nil:
		m.status.set(err.Error(), true)
	default:
		m.status.set("", false)
	}
}

func (m appModel) presenter(id string) *eventPresenter {
	p, ok := m.board.Presenter(id)
	if !ok {
		return nil
	}
	ep, _ := p.(*eventPresenter)
	return ep
}

func (m appModel) selectedPresenter() *eventPresenter {
	return m.presenter(m.selectedID)
}

func (m appModel) editingPresenter() *eventPresenter {
	for _, ev := range m.board.Events() {
		if p := m.presenter(ev.ID); p != nil && p.Editing() {
			return p
		}
	}
	return nil
}

func (m *appModel) ensureSelection() {
	evs := m.board.Events()
	for _, ev := range evs {
		if ev.ID == m.selectedID {
			return
		}
	}
	m.selectedID = ""
	if len(evs) > 0 {
		m.selectedID = evs[0].ID
	}
}

// moveSelection follows the event ID, so the cursor stays on the same event
// across re-sorts.
func (m *appModel) moveSelection(delta int) {
	evs := m.board.Events()
	if len(evs) == 0 {
		return
	}
	cur := 0
	for i, ev := range evs {
		if ev.ID == m.selectedID {
			cur = i
			break
		}
	}
	next := cur + delta
	if next < 0 {
		next = 0
	}
	if next >= len(evs) {
		next = len(evs) - 1
	}
	m.selectedID = evs[next].ID
}

func (m appModel) syncSelection() {
	for _, ev := range m.board.Events() {
		if p := m.presenter(ev.ID); p != nil {
			p.setSelected(ev.ID == m.selectedID)
		}
	}
}

func (m appModel) View() string {
	if m.showHelp {
		return renderMarkdown(helpMarkdown(), m.layout.contentWidth())
	}
	m.syncSelection()

	parts := []string{m.headerView(), m.root.View()}
	if m.status.msg != "" {
		st := mutedStyle
		if m.status.isErr {
			st = errorStyle
		}
		parts = append(parts, st.Render(m.status.msg))
	}
	parts = append(parts, m.help.ShortHelpView(m.keys.ShortHelp()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m appModel) headerView() string {
	evs := m.board.Events()
	title := titleStyle.Render("Trip board")
	if len(evs) == 0 {
		return title + "\n"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title+"  "+mutedStyle.Render(tripRoute(evs)),
		mutedStyle.Render(tripDates(evs))+"  "+accentStyle.Render(fmt.Sprintf("Total: €%d", tripCost(evs))),
		"",
	)
}

// tripRoute lists destinations in chronological order, eliding the middle of
// long trips.
func tripRoute(evs []model.Event) string {
	byDay := model.CloneEvents(evs)
	_ = model.SortEvents(byDay, model.SortDay)

	var route []string
	for _, ev := range byDay {
		if ev.Destination == "" {
			continue
		}
		if len(route) > 0 && route[len(route)-1] == ev.Destination {
			continue
		}
		route = append(route, ev.Destination)
	}
	if len(route) > 3 {
		route = []string{route[0], "…", route[len(route)-1]}
	}
	return strings.Join(route, " → ")
}

func tripDates(evs []model.Event) string {
	first, last := evs[0].DateFrom, evs[0].DateTo
	for _, ev := range evs[1:] {
		if ev.DateFrom.Before(first) {
			first = ev.DateFrom
		}
		if ev.DateTo.After(last) {
			last = ev.DateTo
		}
	}
	return strings.ToUpper(first.Format(viewDayFormat) + " - " + last.Format(viewDayFormat))
}

func tripCost(evs []model.Event) int {
	total := 0
	for _, ev := range evs {
		total += ev.BasePrice
	}
	return total
}
