package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"tripboard/internal/model"
	"tripboard/internal/store"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newEventsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect and edit the itinerary",
	}

	cmd.AddCommand(newEventsListCmd(app))
	cmd.AddCommand(newEventsShowCmd(app))
	cmd.AddCommand(newEventsSeedCmd(app))
	cmd.AddCommand(newEventsImportCmd(app))
	cmd.AddCommand(newEventsSetPriceCmd(app))
	return cmd
}

func newEventsListCmd(app *App) *cobra.Command {
	var sortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events (load order unless --sort is given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			evs, err := app.store().LoadEvents(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			if strings.TrimSpace(sortBy) != "" {
				st, err := model.ParseSortType(sortBy)
				if err != nil {
					return writeErr(cmd, err)
				}
				if err := model.SortEvents(evs, st); err != nil {
					return writeErr(cmd, err)
				}
			}
			return writeOut(cmd, app, evs)
		},
	}
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort key (day|time|price)")
	return cmd
}

func newEventsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <event-id>",
		Short: "Show one event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			ev, err := app.store().GetEvent(cmd.Context(), id)
			if errors.Is(err, store.ErrNotFound) {
				return writeErr(cmd, errNotFound("event", id))
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, ev)
		},
	}
}

func newEventsSeedCmd(app *App) *cobra.Command {
	var (
		count int
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the itinerary with demo events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return writeErr(cmd, errors.New("--count must be >= 0"))
			}
			now := time.Now()
			if !cmd.Flags().Changed("seed") {
				seed = now.UnixNano()
			}
			evs := store.DemoEvents(count, now, rand.New(rand.NewSource(seed)))
			if err := app.store().ReplaceEvents(cmd.Context(), evs); err != nil {
				return writeErr(cmd, err)
			}
			app.logger.WithField("count", len(evs)).Info("seeded demo events")
			return writeOut(cmd, app, evs)
		},
	}
	cmd.Flags().IntVar(&count, "count", 8, "Number of demo events")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (default: time-based)")
	return cmd
}

func newEventsImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Replace the itinerary with events from a JSON array",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			var evs []model.Event
			if err := json.Unmarshal(b, &evs); err != nil {
				return writeErr(cmd, fmt.Errorf("parse %s: %w", args[0], err))
			}
			for _, ev := range evs {
				if !ev.Type.Valid() {
					return writeErr(cmd, fmt.Errorf("event %s: unknown type %q", ev.ID, ev.Type))
				}
				if ev.BasePrice < 0 {
					return writeErr(cmd, fmt.Errorf("event %s: negative price", ev.ID))
				}
			}
			if err := app.store().ReplaceEvents(cmd.Context(), evs); err != nil {
				return writeErr(cmd, err)
			}
			app.logger.WithFields(log.Fields{
				"file":  args[0],
				"count": len(evs),
			}).Info("imported events")
			return writeOut(cmd, app, map[string]any{"imported": len(evs)})
		},
	}
}

func newEventsSetPriceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-price <event-id> <price>",
		Short: "Update the base price of one event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			price, err := strconv.Atoi(strings.TrimSpace(args[1]))
			if err != nil || price < 0 {
				return writeErr(cmd, fmt.Errorf("invalid price %q: must be a whole number of 0 or more", args[1]))
			}

			s := app.store()
			ev, err := s.GetEvent(cmd.Context(), id)
			if errors.Is(err, store.ErrNotFound) {
				return writeErr(cmd, errNotFound("event", id))
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			ev.BasePrice = price
			if err := s.SaveEvent(cmd.Context(), ev); err != nil {
				return writeErr(cmd, err)
			}
			app.logger.WithFields(log.Fields{
				"event": id,
				"price": price,
			}).Info("price updated")
			return writeOut(cmd, app, ev)
		},
	}
}
