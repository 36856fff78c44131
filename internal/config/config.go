package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dkoosis/vitals/pkg/spark"
	"github.com/dkoosis/vitals/pkg/stream"
)

// Sources recorded in Resolved.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceDefault = "default"
)

// Defaults.
const (
	DefaultFormat = "auto"
	DefaultTheme  = "default"
	DefaultStyle  = spark.StyleBar
)

// validFormats are the accepted --format values.
var validFormats = map[string]bool{
	"auto": true, "terminal": true, "plain": true, "console": true, "json": true, "yaml": true,
}

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	Style   string
	Format  string
	Theme   string
	Window  int
	NoColor bool
	Debug   bool

	// Flags to track if they were explicitly set by the user
	StyleSet   bool
	FormatSet  bool
	ThemeSet   bool
	WindowSet  bool
	NoColorSet bool
	DebugSet   bool
}

// Resolved holds the final settings after applying the priority rules.
type Resolved struct {
	Style   spark.Style
	Format  string
	Theme   string
	Window  int
	NoColor bool
	Debug   bool

	// Resolution metadata (for debugging)
	StyleSource   string
	FormatSource  string
	ThemeSource   string
	WindowSource  string
	NoColorSource string

	// Warnings lists environment values that were ignored.
	Warnings []string
}

// Resolve combines flags, environment and defaults.
func Resolve(flags CliFlags) (*Resolved, error) {
	r := &Resolved{
		Window:        stream.DefaultWindow,
		WindowSource:  SourceDefault,
		NoColorSource: SourceDefault,
	}

	r.Style, r.StyleSource = resolveString(flags.Style, flags.StyleSet, "VITALS_STYLE", DefaultStyle)
	r.Format, r.FormatSource = resolveString(flags.Format, flags.FormatSet, "VITALS_FORMAT", DefaultFormat)
	r.Theme, r.ThemeSource = resolveString(flags.Theme, flags.ThemeSet, "VITALS_THEME", DefaultTheme)
	r.Format = strings.ToLower(r.Format)

	if flags.WindowSet {
		r.Window, r.WindowSource = flags.Window, SourceCLI
	} else if val := os.Getenv("VITALS_WINDOW"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			r.Warnings = append(r.Warnings, fmt.Sprintf("ignoring VITALS_WINDOW=%q: not an integer", val))
		} else {
			r.Window, r.WindowSource = n, SourceEnv
		}
	}
	if r.Window <= 0 {
		r.Window = stream.DefaultWindow
	}

	if flags.NoColorSet {
		r.NoColor, r.NoColorSource = flags.NoColor, SourceCLI
	} else if b, key, ok := getEnvBool("VITALS_NO_COLOR"); ok {
		r.NoColor, r.NoColorSource = b, SourceEnv
	} else if key != "" {
		r.Warnings = append(r.Warnings, fmt.Sprintf("ignoring %s: not a boolean", key))
	} else if os.Getenv("NO_COLOR") != "" {
		// https://no-color.org: any non-empty value disables color.
		r.NoColor, r.NoColorSource = true, SourceEnv
	}

	if flags.DebugSet {
		r.Debug = flags.Debug
	} else {
		r.Debug = os.Getenv("VITALS_DEBUG") != ""
	}

	if err := validate(r); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return r, nil
}

// resolveString applies CLI > env > default for a string setting.
func resolveString[T ~string](cli string, set bool, envKey string, def T) (T, string) {
	if set && cli != "" {
		return T(cli), SourceCLI
	}
	if val := os.Getenv(envKey); val != "" {
		return T(val), SourceEnv
	}
	return def, SourceDefault
}

// getEnvBool reads a boolean from the first set key. ok is false when no
// key is set or the set key does not parse; key names the offending
// variable in the latter case.
func getEnvBool(keys ...string) (b bool, key string, ok bool) {
	for _, k := range keys {
		if val := os.Getenv(k); val != "" {
			parsed, err := strconv.ParseBool(val)
			if err != nil {
				return false, k, false
			}
			return parsed, k, true
		}
	}
	return false, "", false
}

func validate(r *Resolved) error {
	if !validFormats[r.Format] {
		return fmt.Errorf("invalid format %q (must be: auto, terminal, plain, console, json, yaml)", r.Format)
	}
	return nil
}
