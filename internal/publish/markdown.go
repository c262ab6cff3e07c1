package publish

import (
	"bytes"
	"fmt"
	"strings"

	"tripboard/internal/format"
	"tripboard/internal/model"
)

const (
	dayHeadingLayout = "Mon, Jan 02 2006"
	timeLayout       = "15:04"
)

type RenderOptions struct {
	Title         string
	FavoritesOnly bool
}

func eventTitle(ev model.Event) string {
	t := string(ev.Type)
	if t != "" {
		t = strings.ToUpper(t[:1]) + t[1:]
	}
	return strings.TrimSpace(t + " " + strings.TrimSpace(ev.Destination))
}

func filterEvents(evs []model.Event, opt RenderOptions) []model.Event {
	out := make([]model.Event, 0, len(evs))
	for _, ev := range evs {
		if opt.FavoritesOnly && !ev.IsFavorite {
			continue
		}
		out = append(out, ev.Clone())
	}
	return out
}

// RenderItineraryMarkdown renders the whole trip as one page, grouped by
// start day.
func RenderItineraryMarkdown(evs []model.Event, opt RenderOptions) (string, error) {
	evs = filterEvents(evs, opt)
	if err := model.SortEvents(evs, model.SortDay); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	title := strings.TrimSpace(opt.Title)
	if title == "" {
		title = "Trip itinerary"
	}
	writeLn("# " + title)
	writeLn("")

	if len(evs) == 0 {
		writeLn("_No events._")
		return buf.String(), nil
	}

	total := 0
	for _, ev := range evs {
		total += ev.BasePrice
	}
	writeLn("## Summary")
	writeLn("")
	writeLn(fmt.Sprintf("- Events: %d", len(evs)))
	writeLn("- From: " + evs[0].DateFrom.Format(dayHeadingLayout))
	writeLn("- Total: €" + fmt.Sprint(total))
	writeLn("")

	day := ""
	for _, ev := range evs {
		d := ev.DateFrom.Format(dayHeadingLayout)
		if d != day {
			if day != "" {
				writeLn("")
			}
			day = d
			writeLn("## " + d)
			writeLn("")
		}
		line := fmt.Sprintf("- %s-%s **%s** (%s) €%d",
			ev.DateFrom.Format(timeLayout),
			ev.DateTo.Format(timeLayout),
			eventTitle(ev),
			format.FormatDuration(ev.Duration()),
			ev.BasePrice,
		)
		if ev.IsFavorite {
			line += " ★"
		}
		writeLn(line)
		for _, o := range ev.Offers {
			writeLn("  - " + strings.TrimSpace(o))
		}
	}
	return buf.String(), nil
}

// RenderEventMarkdown renders a single event page.
func RenderEventMarkdown(ev model.Event) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	writeLn("# " + eventTitle(ev))
	writeLn("")
	writeLn("## Meta")
	writeLn("")
	writeLn("- ID: " + ev.ID)
	writeLn("- Type: " + string(ev.Type))
	if strings.TrimSpace(ev.Destination) != "" {
		writeLn("- Destination: " + strings.TrimSpace(ev.Destination))
	}
	writeLn("- From: " + ev.DateFrom.Format(dayHeadingLayout+" "+timeLayout))
	writeLn("- To: " + ev.DateTo.Format(dayHeadingLayout+" "+timeLayout))
	writeLn("- Duration: " + format.FormatDuration(ev.Duration()))
	writeLn(fmt.Sprintf("- Price: €%d", ev.BasePrice))
	if ev.IsFavorite {
		writeLn("- Favourite: true")
	}

	if len(ev.Offers) > 0 {
		writeLn("")
		writeLn("## Offers")
		writeLn("")
		for _, o := range ev.Offers {
			writeLn("- " + strings.TrimSpace(o))
		}
	}
	return buf.String()
}
