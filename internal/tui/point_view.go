package tui

import (
	"fmt"
	"strings"

	"tripboard/internal/format"
	"tripboard/internal/model"
	"tripboard/internal/view"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	viewDayFormat  = "Jan 02"
	viewTimeFormat = "15:04"
)

// layout is shared by every view so a resize reaches all of them.
type layout struct {
	width int
}

func (l *layout) contentWidth() int {
	if l == nil || l.width <= 0 {
		return 80
	}
	return l.width
}

// pointView is the read-only row for one event.
type pointView struct {
	view.Node

	event    model.Event
	selected bool
	layout   *layout
}

func newPointView(ev model.Event, l *layout) *pointView {
	return &pointView{event: ev, layout: l}
}

func (v *pointView) View() string {
	ev := v.event
	w := v.layout.contentWidth() - 2

	fav := " "
	if ev.IsFavorite {
		fav = favoriteStyle.Render("★")
	}
	title := strings.TrimSpace(eventTypeLabel(ev.Type) + " " + ev.Destination)
	line := fmt.Sprintf("%s %s  %-28s %s - %s  %-11s €%d",
		fav,
		strings.ToUpper(ev.DateFrom.Format(viewDayFormat)),
		title,
		ev.DateFrom.Format(viewTimeFormat),
		ev.DateTo.Format(viewTimeFormat),
		format.FormatDuration(ev.Duration()),
		ev.BasePrice,
	)
	line = fitWidth(line, w)
	if v.selected {
		line = selectedStyle.Render(line)
	}

	if len(ev.Offers) == 0 {
		return line
	}
	offers := mutedStyle.Render(fitWidth("        + "+strings.Join(ev.Offers, ", "), w))
	return lipgloss.JoinVertical(lipgloss.Left, line, offers)
}

func eventTypeLabel(t model.EventType) string {
	s := string(t)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// fitWidth pads or cuts s to exactly w cells.
func fitWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	sw := xansi.StringWidth(s)
	switch {
	case sw > w:
		return xansi.Truncate(s, w, "…")
	case sw < w:
		return s + strings.Repeat(" ", w-sw)
	}
	return s
}
