package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"tripboard/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const dateLayout = "Jan 02 15:04"

// Write writes v in the requested format.
//
// Supported formats:
// - json (default)
// - text (a table for events; other values fall back to indented JSON)
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "text":
		return WriteText(w, v)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON followed by a newline.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

func WriteText(w io.Writer, v any) error {
	switch x := v.(type) {
	case []model.Event:
		_, err := fmt.Fprintln(w, eventsTable(x))
		return err
	case model.Event:
		_, err := fmt.Fprintln(w, eventsTable([]model.Event{x}))
		return err
	default:
		return WriteJSON(w, v, true)
	}
}

func eventsTable(evs []model.Event) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TYPE", "DESTINATION", "FROM", "DURATION", "PRICE", "FAV")
	for _, ev := range evs {
		fav := ""
		if ev.IsFavorite {
			fav = "*"
		}
		t.Row(
			ev.ID,
			string(ev.Type),
			ev.Destination,
			ev.DateFrom.Format(dateLayout),
			FormatDuration(ev.Duration()),
			strconv.Itoa(ev.BasePrice),
			fav,
		)
	}
	return t.Render()
}
