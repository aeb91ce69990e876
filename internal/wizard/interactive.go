package wizard

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/springen/springen/internal/initializr"
)

// InteractivePrompter renders prompts as huh forms. Each question runs
// as its own independent huh.Form so a long dependency list never
// shares a viewport with earlier questions.
type InteractivePrompter struct {
	theme *huh.Theme
}

// NewInteractivePrompter creates a prompter backed by the terminal UI.
func NewInteractivePrompter() *InteractivePrompter {
	return &InteractivePrompter{theme: newWizardTheme()}
}

// runForm executes a single-field form, mapping user aborts to ErrCancelled.
func (p *InteractivePrompter) runForm(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		WithAccessible(false)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("wizard: form error: %w", err)
	}
	return nil
}

// Select implements Prompter.
func (p *InteractivePrompter) Select(title string, options []string, prior int, mode Mode) (int, error) {
	selected := 0
	if mode == ModeReview && prior >= 0 && prior < len(options) {
		selected = prior
	}

	opts := make([]huh.Option[int], len(options))
	for i, opt := range options {
		opts[i] = huh.NewOption(opt, i)
	}

	sel := huh.NewSelect[int]().
		Title(title).
		Options(opts...).
		Value(&selected)

	if err := p.runForm(sel); err != nil {
		return 0, err
	}
	return selected, nil
}

// Input implements Prompter. The default is shown as a placeholder in
// initial mode and pre-filled in review mode; an empty submission falls
// back to def either way.
func (p *InteractivePrompter) Input(title, def string, mode Mode) (string, error) {
	var value string
	if mode == ModeReview {
		value = def
	}

	inp := huh.NewInput().
		Title(title).
		Value(&value)
	if def != "" {
		inp = inp.Placeholder(def)
	}

	if err := p.runForm(inp); err != nil {
		return "", err
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return def, nil
	}
	return value, nil
}

// InteractiveDependencySelector is the multi-select list strategy for
// dependency selection. Indices come back from the UI directly; no
// manual parsing is involved.
type InteractiveDependencySelector struct {
	prompt *InteractivePrompter
}

// NewInteractiveDependencySelector creates the interactive strategy.
func NewInteractiveDependencySelector(p *InteractivePrompter) *InteractiveDependencySelector {
	return &InteractiveDependencySelector{prompt: p}
}

// Select implements DependencySelector. The current selection is
// pre-marked in review mode.
func (s *InteractiveDependencySelector) Select(meta *initializr.Metadata, current []string, mode Mode) ([]string, error) {
	opts := make([]huh.Option[string], len(meta.Dependencies))
	for i, d := range meta.Dependencies {
		opts[i] = huh.NewOption(fmt.Sprintf("%s (%s)", d.Name, d.Group), d.ID)
	}

	// Seeding the value slice pre-marks the current selection.
	var ids []string
	if mode == ModeReview {
		ids = slices.Clone(current)
	}
	ms := huh.NewMultiSelect[string]().
		Title("Dependencies").
		Description("Space toggles, / filters, enter confirms").
		Options(opts...).
		Filterable(true).
		Value(&ids)

	if err := s.prompt.runForm(ms); err != nil {
		return nil, err
	}
	return ids, nil
}

// newWizardTheme builds the huh theme used by all interactive prompts.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#4C8C2B", Dark: "#6DB33F"}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: "#E5E7EB"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(primary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
