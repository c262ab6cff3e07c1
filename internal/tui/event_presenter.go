package tui

import (
	"io"

	"tripboard/internal/board"
	"tripboard/internal/model"
	"tripboard/internal/view"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
)

type eventMode int

const (
	modeDefault eventMode = iota
	modeEditing
)

// eventPresenter shows one event either as a point row or as its edit form.
type eventPresenter struct {
	list     *view.Container
	observer board.Observer
	layout   *layout
	logger   log.FieldLogger

	event    model.Event
	point    *pointView
	form     *editView
	mode     eventMode
	selected bool
}

func newEventPresenter(list *view.Container, obs board.Observer, l *layout, logger log.FieldLogger) *eventPresenter {
	if logger == nil {
		discard := log.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return &eventPresenter{list: list, observer: obs, layout: l, logger: logger}
}

// mountErr logs a failed mount. A presenter whose views were destroyed has
// nothing to swap, so its later refreshes end up here.
func (p *eventPresenter) mountErr(op string, err error) bool {
	if err == nil {
		return false
	}
	p.logger.WithFields(log.Fields{"event": p.event.ID, "op": op}).WithError(err).Warn("event view not mounted")
	return true
}

func (p *eventPresenter) Init(ev model.Event) {
	prevPoint, prevForm := p.point, p.form

	p.event = ev.Clone()
	p.point = newPointView(p.event, p.layout)
	p.point.selected = p.selected
	p.form = newEditView(p.event, p.layout)

	if prevPoint == nil && prevForm == nil {
		p.mountErr("render", view.Render(p.point, p.list))
		return
	}
	if p.mode == modeEditing {
		p.mountErr("refresh form", view.Replace(p.form, prevForm))
		return
	}
	p.mountErr("refresh point", view.Replace(p.point, prevPoint))
}

func (p *eventPresenter) ResetView() {
	if p.mode == modeDefault {
		return
	}
	fresh := newEditView(p.event, p.layout)
	p.replaceFormToPoint()
	p.form = fresh
}

func (p *eventPresenter) Destroy() {
	view.Remove(p.point)
	view.Remove(p.form)
}

func (p *eventPresenter) Editing() bool { return p.mode == modeEditing }

func (p *eventPresenter) Event() model.Event { return p.event.Clone() }

func (p *eventPresenter) setSelected(selected bool) {
	p.selected = selected
	if p.point != nil {
		p.point.selected = selected
	}
}

// StartEdit closes every other open form, then opens this one.
func (p *eventPresenter) StartEdit() tea.Cmd {
	if p.mode == modeEditing {
		return nil
	}
	p.observer.OnModeChange()
	if p.mountErr("open form", view.Replace(p.form, p.point)) {
		return nil
	}
	p.mode = modeEditing
	return p.form.focusCmd()
}

func (p *eventPresenter) ToggleFavorite() error {
	ev := p.event.Clone()
	ev.IsFavorite = !ev.IsFavorite
	return p.observer.OnDataChange(ev)
}

// HandleKey drives the edit form. It must only be called while editing.
func (p *eventPresenter) HandleKey(msg tea.KeyMsg) tea.Cmd {
	keys := p.form.keys
	switch {
	case key.Matches(msg, keys.Cancel):
		p.ResetView()
		return nil
	case key.Matches(msg, keys.Save):
		p.save()
		return nil
	case key.Matches(msg, keys.Next):
		return p.form.cycle(1)
	case key.Matches(msg, keys.Prev):
		return p.form.cycle(-1)
	case key.Matches(msg, keys.Favorite):
		p.form.favorite = !p.form.favorite
		return nil
	}
	return p.form.update(msg)
}

func (p *eventPresenter) save() {
	ev, err := p.form.value()
	if err != nil {
		p.form.err = err.Error()
		return
	}
	if err := p.observer.OnDataChange(ev); err != nil {
		p.form.err = err.Error()
		return
	}
	p.replaceFormToPoint()
}

func (p *eventPresenter) replaceFormToPoint() {
	p.point.selected = p.selected
	p.mountErr("close form", view.Replace(p.point, p.form))
	p.mode = modeDefault
}
