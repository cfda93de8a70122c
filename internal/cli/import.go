// Package cli defines the cobra command tree. Commands parse arguments
// and flags, then delegate to adapters from the wire package.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/brain/internal/wire"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "import [export-dir]",
		Short: "Import a LinkedIn data export",
		Long: `Import the unzipped LinkedIn export directory and merge it into the
stored network. Manual enrichment on existing connections survives
re-imports, and connections missing from the new export are carried
forward.

Examples:
  brain import ~/Downloads/linkedin-export
  brain import ~/Downloads/linkedin-export --source linkedin_2025_06`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ImportAdapter().Import(cmd.Context(), args[0], source)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Label recorded in the import log (default linkedin_export)")
	return cmd
}
