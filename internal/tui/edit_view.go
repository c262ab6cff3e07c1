package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tripboard/internal/model"
	"tripboard/internal/view"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldDestination = iota
	fieldPrice
	fieldCount
)

var (
	errDestinationRequired = errors.New("destination is required")
	errInvalidPrice        = errors.New("price must be a whole number of 0 or more")
)

// editView is the edit form for one event. Form state lives here until saved.
type editView struct {
	view.Node

	event    model.Event
	inputs   []textinput.Model
	focus    int
	favorite bool
	err      string
	layout   *layout
	keys     formKeyMap
	help     help.Model
}

func newEditView(ev model.Event, l *layout) *editView {
	dest := textinput.New()
	dest.Prompt = "Destination: "
	dest.Placeholder = "city"
	dest.CharLimit = 64
	dest.SetValue(ev.Destination)

	price := textinput.New()
	price.Prompt = "Price €:     "
	price.Placeholder = "0"
	price.CharLimit = 9
	price.SetValue(strconv.Itoa(ev.BasePrice))

	return &editView{
		event:    ev,
		inputs:   []textinput.Model{dest, price},
		favorite: ev.IsFavorite,
		layout:   l,
		keys:     newFormKeyMap(),
		help:     help.New(),
	}
}

func (v *editView) focusCmd() tea.Cmd {
	for i := range v.inputs {
		v.inputs[i].Blur()
	}
	return v.inputs[v.focus].Focus()
}

func (v *editView) cycle(delta int) tea.Cmd {
	v.focus = (v.focus + delta + fieldCount) % fieldCount
	return v.focusCmd()
}

func (v *editView) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
	return cmd
}

// value builds the edited event, or reports why the form cannot be saved.
func (v *editView) value() (model.Event, error) {
	dest := strings.TrimSpace(v.inputs[fieldDestination].Value())
	if dest == "" {
		return model.Event{}, errDestinationRequired
	}
	price, err := strconv.Atoi(strings.TrimSpace(v.inputs[fieldPrice].Value()))
	if err != nil || price < 0 {
		return model.Event{}, errInvalidPrice
	}
	ev := v.event.Clone()
	ev.Destination = dest
	ev.BasePrice = price
	ev.IsFavorite = v.favorite
	return ev, nil
}

func (v *editView) View() string {
	w := v.layout.contentWidth() - 4
	if w < 20 {
		w = 20
	}
	v.help.Width = w

	fav := "[ ] favourite"
	if v.favorite {
		fav = "[" + favoriteStyle.Render("★") + "] favourite"
	}
	lines := []string{
		accentStyle.Render(fmt.Sprintf("Edit %s · %s", eventTypeLabel(v.event.Type), strings.ToUpper(v.event.DateFrom.Format(viewDayFormat)))),
		v.inputs[fieldDestination].View(),
		v.inputs[fieldPrice].View(),
		fav,
	}
	if v.err != "" {
		lines = append(lines, errorStyle.Render(v.err))
	}
	lines = append(lines, v.help.ShortHelpView(v.keys.ShortHelp()))
	return formStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
