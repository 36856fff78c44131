// Package config resolves vitals' settings from command-line flags and the
// environment.
//
// # Resolution Precedence
//
// Each setting is resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--style, --format, --window, --theme, --no-color, --debug)
//  2. Environment variables (VITALS_STYLE, VITALS_FORMAT, VITALS_WINDOW,
//     VITALS_THEME, VITALS_NO_COLOR / NO_COLOR, VITALS_DEBUG)
//  3. Hardcoded defaults
//
// There is no configuration file.
//
// # Malformed Values
//
// Unparseable environment values are skipped with a warning so a stray
// variable never stops a render. An unknown output format is an error,
// since no sensible output can be chosen for it.
package config
