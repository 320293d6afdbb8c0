// Package cmd implements the command-line interface for thumbgrab.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/thumbgrab/thumbgrab/constant"
	"github.com/thumbgrab/thumbgrab/icon"
	"github.com/thumbgrab/thumbgrab/key"
	"github.com/thumbgrab/thumbgrab/log"
	"github.com/thumbgrab/thumbgrab/style"
	"github.com/thumbgrab/thumbgrab/tui"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().String("host", "", "Image host the thumbnails are checked against")
	lo.Must0(viper.BindPFlag(key.ProbeHost, rootCmd.PersistentFlags().Lookup("host")))

	rootCmd.Flags().Bool("light", false, "Start with the light theme")
}

// rootCmd defines the entry point for the thumbgrab application.
var rootCmd = &cobra.Command{
	Use:   constant.Thumbgrab + " [url]",
	Short: "Preview, copy and download every thumbnail of a YouTube video",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(style.Dark.Accent).Render("    - Preview, copy and download every thumbnail of a YouTube video"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if lo.Must(cmd.Flags().GetBool("light")) {
			viper.Set(key.TUIDarkMode, false)
		}

		options := tui.Options{}
		if len(args) == 1 {
			options.URL = args[0]
		}
		handleErr(tui.Run(cmd.Context(), &options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// palette follows tui.dark_mode so command output matches the TUI's starting theme.
func palette() style.Palette {
	return style.Pick(viper.GetBool(key.TUIDarkMode))
}
