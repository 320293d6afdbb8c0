package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/thumbgrab/thumbgrab/constant"
	"github.com/thumbgrab/thumbgrab/style"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
}

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"accent": func(s string) string { return palette().Hi(s) },
}).Parse(`{{ accent "▇▇▇" }} {{ accent .App }}

  {{ faint "Version" }}      {{ bold .Version }}
  {{ faint "Git Commit" }}   {{ bold .Revision }}
  {{ faint "Build Date" }}   {{ bold .BuiltAt }}
  {{ faint "Built By" }}     {{ bold .BuiltBy }}
  {{ faint "Platform" }}     {{ bold .OS }}/{{ bold .Arch }}
  {{ faint "Image Host" }}   {{ bold .Host }}
`))

// versionCmd displays application version and build metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), struct {
			App, Version, Revision, BuiltAt, BuiltBy, OS, Arch, Host string
		}{
			App:      constant.Thumbgrab,
			Version:  constant.Version,
			Revision: constant.Revision,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			Host:     constant.ImageHost,
		}))
	},
}
