package cli

import (
	"tripboard/internal/publish"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newPublishCmd(app *App) *cobra.Command {
	var (
		to            string
		title         string
		favoritesOnly bool
		overwrite     bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Write the itinerary as Markdown files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			evs, err := app.store().LoadEvents(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			res, err := publish.WriteItinerary(evs, to, publish.WriteOptions{
				Title:         title,
				FavoritesOnly: favoritesOnly,
				Overwrite:     overwrite,
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			app.logger.WithFields(log.Fields{
				"to":    to,
				"files": len(res.Written),
			}).Info("published itinerary")
			return writeOut(cmd, app, res)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Output directory")
	cmd.Flags().StringVar(&title, "title", "", "Page title (default: Trip itinerary)")
	cmd.Flags().BoolVar(&favoritesOnly, "favorites-only", false, "Only include favourite events")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace existing files")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
