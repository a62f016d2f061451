package lists

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/internal/cmd/output"
)

// NewShowCommand creates the show command, which prints one list in full.
func NewShowCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "show <list-id>",
		GroupID: "core",
		Short:   "Show a packing list with all its sections and items",
		Args:    cobra.ExactArgs(1),
		Example: `  camppack show pl-3f9a2c
  camppack show pl-3f9a2c -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			list, err := client.Get(args[0])
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.Format())
			if format != output.FormatTable {
				return output.NewFormatter(format).Format(os.Stdout, list)
			}

			progress := list.Progress()
			cmd.Printf("%s (%s)\n", list.Name, list.ID)
			cmd.Printf("packed %d of %d (%d%%)\n", progress.Packed, progress.Total, progress.Percentage)
			for _, section := range list.Sections {
				cmd.Printf("\n%s\n", section.Title)
				for _, item := range section.Items {
					mark := " "
					if item.Checked {
						mark = "x"
					}
					cmd.Printf("  [%s] %s", mark, item.Name)
					if item.Quantity > 1 {
						cmd.Printf(" x%d", item.Quantity)
					}
					if item.Essential {
						cmd.Printf(" (essential)")
					}
					if item.Note != "" {
						cmd.Printf("  (%s)", item.Note)
					}
					cmd.Printf("  [%s]\n", item.ID)
				}
			}
			return nil
		},
	}
}
