package app

import (
	"github.com/spf13/cobra"

	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/cmd/camppack/cmd/check"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/cmd/camppack/cmd/generate"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/cmd/camppack/cmd/lists"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/cmd/camppack/cmd/progress"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/cmd/camppack/cmd/templates"
)

// Format returns the configured output format.
func (a *App) Format() string {
	return a.config.Format
}

// CreateGenerateCommand creates the generate command with app dependencies.
func (a *App) CreateGenerateCommand() *cobra.Command {
	return generate.NewCommand(a)
}

// CreateListsCommand creates the lists command with app dependencies.
func (a *App) CreateListsCommand() *cobra.Command {
	cmd := lists.NewCommand(a)
	cmd.AddCommand(lists.NewDeleteCommand(a))
	return cmd
}

// CreateShowCommand creates the show command with app dependencies.
func (a *App) CreateShowCommand() *cobra.Command {
	return lists.NewShowCommand(a)
}

// CreateTemplatesCommand creates the templates command with app dependencies.
func (a *App) CreateTemplatesCommand() *cobra.Command {
	return templates.NewCommand(a)
}

// CreateCheckCommand creates the check command with app dependencies.
func (a *App) CreateCheckCommand() *cobra.Command {
	return check.NewCommand(a)
}

// CreateProgressCommand creates the progress command with app dependencies.
func (a *App) CreateProgressCommand() *cobra.Command {
	return progress.NewCommand(a)
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("camppack %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
