package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/safespend/internal/config"
	"github.com/theirongolddev/safespend/internal/tui/theme"
)

// SetupValues holds the first-run form answers as the user typed them.
type SetupValues struct {
	BaseBudget string
	Theme      string
	Seed       string
	Confirm    bool
}

// NewSetupValues pre-fills the form from cfg.
func NewSetupValues(cfg config.Config) SetupValues {
	themeName := cfg.Appearance.Theme
	if themeName == "" {
		themeName = theme.FlexokiDark.Name
	}
	return SetupValues{
		BaseBudget: strconv.FormatFloat(cfg.General.BaseDailyBudget, 'f', -1, 64),
		Theme:      themeName,
		Seed:       strconv.FormatInt(cfg.General.Seed, 10),
		Confirm:    true,
	}
}

func validateBudget(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter an amount like 120 or 95.50")
	}
	if d.IsNegative() {
		return errors.New("budget cannot be negative")
	}
	return nil
}

func validateSeed(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return errors.New("seed must be a whole number")
	}
	return nil
}

// NewSetupForm builds the first-run form writing into v.
func NewSetupForm(v *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(th.Name, th.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to safespend").
				Description("A daily allowance that grows when you cut recurring costs.\nLet's set a few things."),
			huh.NewInput().
				Title("Base daily budget (USD)").
				Description("Your allowance before any leak is switched off.").
				Value(&v.BaseBudget).
				Validate(validateBudget),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.Theme),
			huh.NewInput().
				Title("Random seed").
				Description("0 draws new numbers every run.").
				Value(&v.Seed).
				Validate(validateSeed),
			huh.NewConfirm().
				Title("Save to " + config.Path() + "?").
				Value(&v.Confirm),
		),
	).WithShowHelp(true)
}

// Apply copies the answers into cfg. A declined confirmation leaves cfg as is.
func (v SetupValues) Apply(cfg *config.Config) error {
	if !v.Confirm {
		return nil
	}
	if err := validateBudget(v.BaseBudget); err != nil {
		return err
	}
	if err := validateSeed(v.Seed); err != nil {
		return err
	}

	base, _ := decimal.RequireFromString(strings.TrimSpace(v.BaseBudget)).Float64()
	cfg.General.BaseDailyBudget = base

	if s := strings.TrimSpace(v.Seed); s != "" {
		cfg.General.Seed, _ = strconv.ParseInt(s, 10, 64)
	}
	cfg.Appearance.Theme = theme.ByName(v.Theme).Name
	return nil
}
