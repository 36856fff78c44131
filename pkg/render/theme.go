package render

import "github.com/charmbracelet/lipgloss"

// Theme styles the text around a strip. The strip's own colors come from
// the heat bands in package spark.
type Theme struct {
	Name  string
	Label lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:  "default",
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("39")), // blue
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Bold:  lipgloss.NewStyle().Bold(true),
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	return Theme{
		Name:  "orca",
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),  // pale blue
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // lighter gray
		Bold:  lipgloss.NewStyle().Bold(true),
	}
}

// MonoTheme returns a monochrome theme (no colors).
func MonoTheme() Theme {
	return Theme{
		Name:  "mono",
		Label: lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle(),
		Bold:  lipgloss.NewStyle(),
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
