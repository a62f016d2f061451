// Package templates implements the templates command over the catalog.
package templates

import (
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	camppack "github.com/pxlchk1/Complete-Camping-App-3.0-sub005"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/internal/cmd/output"
)

// AppContext defines the interface the templates command needs from the app.
type AppContext interface {
	Client() (camppack.Client, error)
	Logger() *zerolog.Logger
	Format() string
}

// NewCommand creates the templates command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates [key]",
		GroupID: "core",
		Short:   "List available packing templates",
		Long: `Templates lists the catalog of packing templates lists can be
generated from. With a key argument it shows that template's items.`,
		Example: `  camppack templates
  camppack templates winter
  camppack templates -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			catalog := client.Catalog()
			format := output.DetectFormat(app.Format())

			if len(args) == 1 {
				template, err := catalog.Template(args[0])
				if err != nil {
					return err
				}
				if format != output.FormatTable {
					return output.NewFormatter(format).Format(os.Stdout, template)
				}

				data := output.Data{
					Headers: []string{"Item", "Category", "Tier", "Essential", "Seasons"},
				}
				for _, item := range template.Items {
					seasons := ""
					for i, season := range item.Seasons {
						if i > 0 {
							seasons += ","
						}
						seasons += string(season)
					}
					data.Rows = append(data.Rows, []string{
						item.Name,
						item.Category,
						strconv.Itoa(item.EffectiveTier(template.DefaultTier)),
						strconv.FormatBool(item.Essential),
						seasons,
					})
				}
				return output.NewFormatter(format).Format(os.Stdout, data)
			}

			all := catalog.Templates().List()
			if format != output.FormatTable {
				return output.NewFormatter(format).Format(os.Stdout, all)
			}

			data := output.Data{
				Headers: []string{"Key", "Name", "Tier", "Items"},
			}
			for _, template := range all {
				data.Rows = append(data.Rows, []string{
					template.Key,
					template.Name,
					strconv.Itoa(template.DefaultTier),
					strconv.Itoa(len(template.Items)),
				})
			}
			return output.NewFormatter(format).Format(os.Stdout, data)
		},
	}

	return cmd
}
