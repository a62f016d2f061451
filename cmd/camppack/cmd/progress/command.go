// Package progress implements the progress command.
package progress

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	camppack "github.com/pxlchk1/Complete-Camping-App-3.0-sub005"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/internal/cmd/output"
)

// AppContext defines the interface the progress command needs from the app.
type AppContext interface {
	Client() (camppack.Client, error)
	Logger() *zerolog.Logger
	Format() string
}

// NewCommand creates the progress command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "progress <list-id>",
		GroupID: "core",
		Short:   "Show packing progress for a list",
		Args:    cobra.ExactArgs(1),
		Example: `  camppack progress pl-3f9a2c`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			progress, err := client.Progress(args[0])
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.Format())
			if format != output.FormatTable {
				return output.NewFormatter(format).Format(os.Stdout, progress)
			}

			cmd.Printf("packed %d of %d (%d%%)\n", progress.Packed, progress.Total, progress.Percentage)
			return nil
		},
	}
}
