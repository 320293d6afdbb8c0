package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thumbgrab/thumbgrab/mini"
)

func init() {
	rootCmd.AddCommand(miniCmd)
}

// miniCmd launches the prompt-driven interface.
var miniCmd = &cobra.Command{
	Use:   "mini [url]",
	Short: "Look up thumbnails through simple prompts",
	Long:  `Ask for a link, list the thumbnails that exist and act on the chosen one, one prompt at a time.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		options := mini.Options{Out: cmd.OutOrStdout()}
		if len(args) == 1 {
			options.URL = args[0]
		}

		handleErr(mini.Run(cmd.Context(), &options))
	},
}
