package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the colour palette every style derives from.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	IsDark     bool
}

// LightTheme is the palette for light terminal backgrounds.
func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#1F2328"),
		Primary:    lipgloss.Color("#2563EB"),
		Accent:     lipgloss.Color("#0D9488"),
		Muted:      lipgloss.Color("#6B7280"),
		Border:     lipgloss.Color("#D1D5DB"),
		Success:    lipgloss.Color("#15803D"),
		Warning:    lipgloss.Color("#B45309"),
		Error:      lipgloss.Color("#DC2626"),
		IsDark:     false,
	}
}

// DarkTheme is the palette for dark terminal backgrounds.
func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#E5E7EB"),
		Primary:    lipgloss.Color("#60A5FA"),
		Accent:     lipgloss.Color("#2DD4BF"),
		Muted:      lipgloss.Color("#9CA3AF"),
		Border:     lipgloss.Color("#4B5563"),
		Success:    lipgloss.Color("#4ADE80"),
		Warning:    lipgloss.Color("#FBBF24"),
		Error:      lipgloss.Color("#F87171"),
		IsDark:     true,
	}
}

// DetectTheme guesses the terminal background. COLORFGBG is the only
// widely set hint ("fg;bg" with bg 0-6 or 8 meaning dark); MONALIGN_DARK_MODE
// forces dark for terminals that export nothing.
func DetectTheme() Theme {
	if colorfgbg := os.Getenv("COLORFGBG"); colorfgbg != "" {
		parts := strings.Split(colorfgbg, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "1" || bg == "2" || bg == "3" ||
				bg == "4" || bg == "5" || bg == "6" || bg == "8" {
				return DarkTheme()
			}
			return LightTheme()
		}
	}
	if os.Getenv("MONALIGN_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// ThemeByName maps a configured theme name to a palette. Anything other
// than "dark" or "light" falls back to detection.
func ThemeByName(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	default:
		return DetectTheme()
	}
}

// Styles bundles the lipgloss styles used across the CLI output.
type Styles struct {
	Theme Theme

	Title   lipgloss.Style
	Bold    lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Prompt  lipgloss.Style

	// Picker chrome.
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),
		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),
		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),
		Success: lipgloss.NewStyle().
			Foreground(theme.Success),
		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),
		Error: lipgloss.NewStyle().
			Foreground(theme.Error),
		Prompt: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Cursor: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Foreground(theme.Accent),
		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// PlainStyles returns styles with no colour attached, for --no-color
// and for piping output into other tools.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:    plain,
		Bold:     plain,
		Body:     plain,
		Muted:    plain,
		Success:  plain,
		Warning:  plain,
		Error:    plain,
		Prompt:   plain,
		Cursor:   plain,
		Selected: plain,
		Help:     plain,
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderDivider draws a horizontal rule sized to the given width.
func RenderDivider(styles Styles, width int) string {
	if width <= 0 {
		width = 40
	}
	return styles.Muted.Render(strings.Repeat("─", width))
}
