// Package lists implements the lists and show commands over stored
// packing lists.
package lists

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	camppack "github.com/pxlchk1/Complete-Camping-App-3.0-sub005"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/internal/cmd/output"
)

// AppContext defines the interface the lists commands need from the app.
type AppContext interface {
	Client() (camppack.Client, error)
	Logger() *zerolog.Logger
	Format() string
}

// NewCommand creates the lists command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var templatesOnly bool

	cmd := &cobra.Command{
		Use:     "lists",
		GroupID: "core",
		Short:   "List stored packing lists",
		Example: `  camppack lists
  camppack lists --templates
  camppack lists -o json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			all := client.Lists()
			format := output.DetectFormat(app.Format())

			if format != output.FormatTable {
				filtered := all[:0:0]
				for _, list := range all {
					if templatesOnly && !list.IsTemplate {
						continue
					}
					filtered = append(filtered, list)
				}
				return output.NewFormatter(format).Format(os.Stdout, filtered)
			}

			data := output.Data{
				Headers: []string{"ID", "Name", "Type", "Season", "Items", "Packed"},
			}
			for _, list := range all {
				if templatesOnly && !list.IsTemplate {
					continue
				}
				progress := list.Progress()
				data.Rows = append(data.Rows, []string{
					list.ID,
					list.Name,
					list.TripType,
					string(list.Season),
					strconv.Itoa(progress.Total),
					fmt.Sprintf("%d%%", progress.Percentage),
				})
			}
			return output.NewFormatter(format).Format(os.Stdout, data)
		},
	}

	cmd.Flags().BoolVar(&templatesOnly, "templates", false, "only show lists saved as templates")

	return cmd
}

// NewDeleteCommand creates the delete subcommand for removing a list.
func NewDeleteCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <list-id>",
		Short: "Delete a packing list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			if err := client.DeleteList(args[0]); err != nil {
				return err
			}
			cmd.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}
