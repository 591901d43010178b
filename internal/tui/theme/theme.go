// Package theme defines the color themes for the safespend dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Selected row, active tab
	SurfaceBright lipgloss.Color
	Border        lipgloss.Color
	BorderBright  lipgloss.Color
	BorderAccent  lipgloss.Color // Focused card
	TextDim       lipgloss.Color // Hints, disabled leaks
	TextMuted     lipgloss.Color // Labels
	TextPrimary   lipgloss.Color
	Accent        lipgloss.Color
	AccentBright  lipgloss.Color
	AccentDim     lipgloss.Color
	Safe          lipgloss.Color // Plenty of allowance left, saving days
	Caution       lipgloss.Color // Allowance running low
	Danger        lipgloss.Color // Allowance exhausted, overspend days
	Unlocked      lipgloss.Color // Money freed by switched-off leaks
	Alert         lipgloss.Color // Big-purchase warning
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme, a warm paper-inspired dark palette.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceHover:  lipgloss.Color("#282726"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderBright:  lipgloss.Color("#575653"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	AccentDim:     lipgloss.Color("#1A3533"),
	Safe:          lipgloss.Color("#879A39"),
	Caution:       lipgloss.Color("#D0A215"),
	Danger:        lipgloss.Color("#D14D41"),
	Unlocked:      lipgloss.Color("#A3B859"),
	Alert:         lipgloss.Color("#DA702C"),
}

// Emerald follows the mint-and-slate look of the web dashboard.
var Emerald = Theme{
	Name:          "emerald",
	Background:    lipgloss.Color("#0F172A"),
	Surface:       lipgloss.Color("#1E293B"),
	SurfaceHover:  lipgloss.Color("#334155"),
	SurfaceBright: lipgloss.Color("#475569"),
	Border:        lipgloss.Color("#334155"),
	BorderBright:  lipgloss.Color("#64748B"),
	BorderAccent:  lipgloss.Color("#10B981"),
	TextDim:       lipgloss.Color("#64748B"),
	TextMuted:     lipgloss.Color("#94A3B8"),
	TextPrimary:   lipgloss.Color("#F1F5F9"),
	Accent:        lipgloss.Color("#10B981"),
	AccentBright:  lipgloss.Color("#34D399"),
	AccentDim:     lipgloss.Color("#064E3B"),
	Safe:          lipgloss.Color("#10B981"),
	Caution:       lipgloss.Color("#F59E0B"),
	Danger:        lipgloss.Color("#F43F5E"),
	Unlocked:      lipgloss.Color("#6EE7B7"),
	Alert:         lipgloss.Color("#FB923C"),
}

// CatppuccinMocha is a warm pastel theme.
var CatppuccinMocha = Theme{
	Name:          "catppuccin-mocha",
	Background:    lipgloss.Color("#1E1E2E"),
	Surface:       lipgloss.Color("#313244"),
	SurfaceHover:  lipgloss.Color("#45475A"),
	SurfaceBright: lipgloss.Color("#585B70"),
	Border:        lipgloss.Color("#585B70"),
	BorderBright:  lipgloss.Color("#7F849C"),
	BorderAccent:  lipgloss.Color("#89B4FA"),
	TextDim:       lipgloss.Color("#6C7086"),
	TextMuted:     lipgloss.Color("#A6ADC8"),
	TextPrimary:   lipgloss.Color("#CDD6F4"),
	Accent:        lipgloss.Color("#89B4FA"),
	AccentBright:  lipgloss.Color("#B4D0FB"),
	AccentDim:     lipgloss.Color("#293147"),
	Safe:          lipgloss.Color("#A6E3A1"),
	Caution:       lipgloss.Color("#F9E2AF"),
	Danger:        lipgloss.Color("#F38BA8"),
	Unlocked:      lipgloss.Color("#C6F6C1"),
	Alert:         lipgloss.Color("#FAB387"),
}

// TokyoNight is a cool blue/purple theme.
var TokyoNight = Theme{
	Name:          "tokyo-night",
	Background:    lipgloss.Color("#1A1B26"),
	Surface:       lipgloss.Color("#24283B"),
	SurfaceHover:  lipgloss.Color("#343A52"),
	SurfaceBright: lipgloss.Color("#414868"),
	Border:        lipgloss.Color("#565F89"),
	BorderBright:  lipgloss.Color("#7982A9"),
	BorderAccent:  lipgloss.Color("#7AA2F7"),
	TextDim:       lipgloss.Color("#565F89"),
	TextMuted:     lipgloss.Color("#A9B1D6"),
	TextPrimary:   lipgloss.Color("#C0CAF5"),
	Accent:        lipgloss.Color("#7AA2F7"),
	AccentBright:  lipgloss.Color("#A9C1FF"),
	AccentDim:     lipgloss.Color("#252B3F"),
	Safe:          lipgloss.Color("#9ECE6A"),
	Caution:       lipgloss.Color("#E0AF68"),
	Danger:        lipgloss.Color("#F7768E"),
	Unlocked:      lipgloss.Color("#B9E87A"),
	Alert:         lipgloss.Color("#FF9E64"),
}

// Terminal uses ANSI 16 colors only.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderBright:  lipgloss.Color("7"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	AccentDim:     lipgloss.Color("0"),
	Safe:          lipgloss.Color("2"),
	Caution:       lipgloss.Color("3"),
	Danger:        lipgloss.Color("1"),
	Unlocked:      lipgloss.Color("10"),
	Alert:         lipgloss.Color("11"),
}

// All available themes.
var All = []Theme{FlexokiDark, Emerald, CatppuccinMocha, TokyoNight, Terminal}

// Names lists the theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Budget picks the dial color for the fraction of today's allowance left.
func (t Theme) Budget(remaining float64) lipgloss.Color {
	switch {
	case remaining <= 0:
		return t.Danger
	case remaining < 0.25:
		return t.Caution
	default:
		return t.Safe
	}
}

// Velocity colors a trend bar by its sign.
func (t Theme) Velocity(v int) lipgloss.Color {
	if v >= 0 {
		return t.Safe
	}
	return t.Danger
}
