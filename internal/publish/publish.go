package publish

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"tripboard/internal/model"
)

type WriteOptions struct {
	Title         string
	FavoritesOnly bool
	Overwrite     bool
}

type WriteResult struct {
	Written []string `json:"written"`
}

// WriteItinerary writes <toDir>/itinerary.md plus one page per event under
// <toDir>/events/.
func WriteItinerary(evs []model.Event, toDir string, opt WriteOptions) (WriteResult, error) {
	toDir = strings.TrimSpace(toDir)
	if toDir == "" {
		return WriteResult{}, errors.New("missing --to")
	}
	toDir = filepath.Clean(toDir)

	ropt := RenderOptions{Title: opt.Title, FavoritesOnly: opt.FavoritesOnly}
	pages := filterEvents(evs, ropt)
	for _, ev := range pages {
		if !safeFileName(ev.ID) {
			return WriteResult{}, errors.New("event id is not a valid file name: " + ev.ID)
		}
	}
	indexMD, err := RenderItineraryMarkdown(evs, ropt)
	if err != nil {
		return WriteResult{}, err
	}

	eventsDir := filepath.Join(toDir, "events")
	indexPath := filepath.Join(toDir, "itinerary.md")
	paths := make([]string, 0, len(pages)+1)
	paths = append(paths, indexPath)
	for _, ev := range pages {
		paths = append(paths, filepath.Join(eventsDir, ev.ID+".md"))
	}
	// Nothing is written unless every file can be.
	if !opt.Overwrite {
		for _, p := range paths {
			if _, err := os.Stat(p); err == nil {
				return WriteResult{}, errors.New("file exists (use --overwrite): " + p)
			}
		}
	}

	if err := os.MkdirAll(eventsDir, 0o755); err != nil {
		return WriteResult{}, err
	}
	if err := os.WriteFile(indexPath, []byte(indexMD), 0o644); err != nil {
		return WriteResult{}, err
	}
	for i, ev := range pages {
		if err := os.WriteFile(paths[i+1], []byte(RenderEventMarkdown(ev)), 0o644); err != nil {
			return WriteResult{}, err
		}
	}
	return WriteResult{Written: paths}, nil
}

func safeFileName(id string) bool {
	return id != "" && id != "." && id != ".." && !strings.ContainsAny(id, `/\`)
}
