package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/thumbgrab/thumbgrab/filesystem"
	"github.com/thumbgrab/thumbgrab/inline"
	"github.com/thumbgrab/thumbgrab/youtube"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("url", "u", "", "The video link to look up")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("all", "a", false, "Include tiers that do not exist")
	inlineCmd.Flags().StringP("tiers", "t", "", "Which tiers to keep: best, all or a comma separated list")
	inlineCmd.Flags().BoolP("download", "d", false, "Save the existing thumbnails to disk")
	inlineCmd.Flags().String("dir", "", "Directory downloads are written to")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.MarkFlagRequired("url"))
	lo.Must0(inlineCmd.MarkFlagDirname("dir"))

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("tiers", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return append([]string{"best", "all"}, lo.Map(youtube.Tiers, func(t youtube.Tier, _ int) string {
			return t.File()
		})...), cobra.ShellCompDirectiveNoFileComp
	}))
}

// inlineCmd looks up thumbnails without any interface, for scripts.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Look up thumbnails in non-interactive, scriptable inline mode",
	Long: `Resolve a video link, check which thumbnail tiers exist and print them.

Tier selectors:
  best - the highest tier that exists
  all - every tier, the default
  [tier],[tier] - the listed tiers, e.g. maxres,hq or sddefault

Without --json every line is one address. With --all each line also tells
whether the tier exists. With --download the saved paths are printed instead.`,
	Example: "  thumbgrab inline -u https://youtu.be/dQw4w9WgXcQ -t best -d",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			writer io.Writer = os.Stdout
			err    error
		)

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		}

		tiers := mo.None[inline.TierFilter]()
		if flag := lo.Must(cmd.Flags().GetString("tiers")); flag != "" {
			fn, err := inline.ParseTierFilter(flag)
			handleErr(err)
			tiers = mo.Some(fn)
		}

		options := &inline.Options{
			Out:      writer,
			URL:      lo.Must(cmd.Flags().GetString("url")),
			Json:     lo.Must(cmd.Flags().GetBool("json")),
			All:      lo.Must(cmd.Flags().GetBool("all")),
			Download: lo.Must(cmd.Flags().GetBool("download")),
			Dir:      lo.Must(cmd.Flags().GetString("dir")),
			Tiers:    tiers,
		}

		err = inline.Run(cmd.Context(), options)
		handleErr(err)
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd prints the JSON schema of the inline output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the structured inline output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "thumbnail", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
