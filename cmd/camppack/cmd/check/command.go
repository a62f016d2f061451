// Package check implements the check command for marking items packed.
package check

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	camppack "github.com/pxlchk1/Complete-Camping-App-3.0-sub005"
)

// AppContext defines the interface the check command needs from the app.
type AppContext interface {
	Client() (camppack.Client, error)
	Logger() *zerolog.Logger
}

// NewCommand creates the check command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var (
		all  bool
		none bool
	)

	cmd := &cobra.Command{
		Use:     "check <list-id> [item-id]",
		GroupID: "core",
		Short:   "Toggle an item's packed state",
		Long: `Check toggles whether an item is packed. With --all every item in
the list is marked packed; with --none every item is unmarked.`,
		Example: `  camppack check pl-3f9a2c item-91d2ab
  camppack check pl-3f9a2c --all
  camppack check pl-3f9a2c --none`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			listID := args[0]

			switch {
			case all && none:
				return fmt.Errorf("--all and --none are mutually exclusive")
			case all:
				if err := client.Store().CheckAllItems(listID); err != nil {
					return err
				}
			case none:
				if err := client.Store().UncheckAllItems(listID); err != nil {
					return err
				}
			case len(args) == 2:
				if err := client.Store().ToggleChecked(listID, args[1]); err != nil {
					return err
				}
			default:
				return fmt.Errorf("an item id or --all/--none is required")
			}

			progress, err := client.Progress(listID)
			if err != nil {
				return err
			}
			cmd.Printf("packed %d of %d (%d%%)\n", progress.Packed, progress.Total, progress.Percentage)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "mark every item packed")
	cmd.Flags().BoolVar(&none, "none", false, "mark every item unpacked")

	return cmd
}
