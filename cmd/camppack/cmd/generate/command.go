// Package generate implements the generate command, which builds a new
// packing list from the template catalog.
package generate

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	camppack "github.com/pxlchk1/Complete-Camping-App-3.0-sub005"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/packing"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/store"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/tripctx"
)

// AppContext defines the interface the generate command needs from the app.
type AppContext interface {
	Client() (camppack.Client, error)
	Logger() *zerolog.Logger
}

// NewCommand creates the generate command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var (
		name      string
		tripType  string
		templates []string
		startDate string
		endDate   string
		season    string
		tripID    string
	)

	cmd := &cobra.Command{
		Use:     "generate",
		GroupID: "core",
		Short:   "Generate a packing list from templates",
		Long: `Generate builds a new packing list from the selected templates.

Overlapping templates are deduplicated (the more specific item wins,
with in-season items preferred), quantities are scaled to the trip
length, and the result is organized into standard sections.`,
		Example: `  camppack generate --templates essential,cooking --trip-type car_camping
  camppack generate --templates essential,winter --start 2026-01-10 --end 2026-01-12
  camppack generate --name "Spring trip" --templates backpacking --season spring`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			trip := tripctx.Trip{TripType: tripType}
			if startDate != "" {
				start, err := parseDate(startDate)
				if err != nil {
					return err
				}
				trip.Start = &start
			}
			if endDate != "" {
				end, err := parseDate(endDate)
				if err != nil {
					return err
				}
				trip.End = &end
			}

			params := store.CreateParams{
				Name:         name,
				TripType:     tripType,
				Trip:         trip,
				TemplateKeys: templates,
				TripID:       tripID,
			}
			if season != "" {
				parsed, ok := packing.ParseSeason(season)
				if !ok {
					return fmt.Errorf("invalid season %q: expected spring, summer, fall, or winter", season)
				}
				params.Season = parsed
			}

			id, err := client.CreatePackingList(params)
			if err != nil {
				return err
			}

			list, err := client.Get(id)
			if err != nil {
				return err
			}

			progress := list.Progress()
			cmd.Printf("Created packing list %s\n", id)
			cmd.Printf("  name:     %s\n", list.Name)
			cmd.Printf("  season:   %s\n", list.Season)
			cmd.Printf("  sections: %d\n", len(list.Sections))
			cmd.Printf("  items:    %d\n", progress.Total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "list name (derived from trip type when empty)")
	cmd.Flags().StringVarP(&tripType, "trip-type", "t", "", "trip type, e.g. car_camping, backpacking")
	cmd.Flags().StringSliceVar(&templates, "templates", nil, "template keys to generate from, in order")
	cmd.Flags().StringVar(&startDate, "start", "", "trip start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "trip end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&season, "season", "", "season override: spring, summer, fall, winter")
	cmd.Flags().StringVar(&tripID, "trip-id", "", "trip id to attach the list to")

	return cmd
}

// parseDate parses a YYYY-MM-DD date string.
func parseDate(s string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return date, nil
}
