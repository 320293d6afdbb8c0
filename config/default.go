// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/thumbgrab/thumbgrab/constant"
	"github.com/thumbgrab/thumbgrab/key"
	"github.com/thumbgrab/thumbgrab/style"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Thumbgrab + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	case time.Duration:
		return "duration"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.ProbeHost, constant.ImageHost, "Host serving the per-tier thumbnail images")
	register(key.NetworkTimeout, time.Duration(0), "Timeout applied to every existence check and download.\n0 keeps the client default (no timeout)")
	register(key.NetworkUserAgent, constant.UserAgent, "User-Agent header sent with every request")
	register(key.NetworkChromeFingerprint, false, "Negotiate TLS with a Chrome client hello instead of the Go default")
	register(key.DownloadsPath, "", "Directory for downloaded thumbnails.\nEmpty means the default downloads directory (see \"thumbgrab where\")")
	register(key.TUIDarkMode, true, "Start the TUI with the dark palette")
	register(key.TUICopiedFor, 2*time.Second, "How long the \"Copied!\" mark stays on a thumbnail")
	register(key.TUIShowURLs, true, "Show thumbnail addresses under list items")
	register(key.TUIShowTutorial, false, "Open the TUI with the tutorial panel visible")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")

	if len(Default) != key.DefinedFieldsCount {
		panic(fmt.Sprintf("expected %d config fields, registered %d", key.DefinedFieldsCount, len(Default)))
	}
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"accent":   func(s string) string { return style.Fg(palette().Accent)(s) },
	"second":   func(s string) string { return style.Fg(palette().Second)(s) },
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		p := palette()
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(p.Success)(b)
			}
			return style.Fg(p.Error)(b)
		case string:
			if value == "" {
				return style.Faint(`""`)
			}
			return style.Fg(p.Warning)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ second "Key:" }}     {{ accent .Key }}
{{ second "Env:" }}     {{ .Env }}
{{ second "Value:" }}   {{ hl (value .Key) }}
{{ second "Default:" }} {{ hl (.Value) }}
{{ second "Type:" }}    {{ typename .Value }}`))

// palette follows tui.dark_mode so CLI output matches the TUI's starting theme.
func palette() style.Palette {
	return style.Pick(viper.GetBool(key.TUIDarkMode))
}
