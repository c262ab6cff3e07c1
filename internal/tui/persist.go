package tui

import (
	"context"

	"tripboard/internal/board"
	"tripboard/internal/model"

	log "github.com/sirupsen/logrus"
)

// EventSaver writes a single updated event back to storage.
type EventSaver interface {
	SaveEvent(ctx context.Context, ev model.Event) error
}

type statusLine struct {
	msg   string
	isErr bool
}

func (s *statusLine) set(msg string, isErr bool) {
	s.msg = msg
	s.isErr = isErr
}

// persistingObserver forwards to the board first and saves afterwards. A failed
// save leaves the board updated and is reported on the status line.
type persistingObserver struct {
	ctx    context.Context
	next   board.Observer
	saver  EventSaver
	status *statusLine
	logger log.FieldLogger
}

func (o persistingObserver) OnDataChange(ev model.Event) error {
	if err := o.next.OnDataChange(ev); err != nil {
		return err
	}
	if o.saver == nil {
		return nil
	}
	if err := o.saver.SaveEvent(o.ctx, ev); err != nil {
		o.logger.WithField("event", ev.ID).WithError(err).Error("save event failed")
		o.status.set("not saved: "+err.Error(), true)
		return nil
	}
	o.status.set("saved", false)
	return nil
}

func (o persistingObserver) OnModeChange() { o.next.OnModeChange() }
