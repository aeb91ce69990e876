package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CLI output styles for consistent terminal output.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#4C8C2B", Dark: "#6DB33F"})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

func symSuccess() string { return cliSuccess.Render("✓") }
func symError() string   { return cliError.Render("✗") }

// renderBanner prints the startup header.
func renderBanner(serviceURL string) string {
	title := cliPrimary.Bold(true).Render("springen")
	sub := cliMuted.Render("Spring Boot project wizard · " + serviceURL)
	return title + "\n" + sub
}

// renderSuccessCard renders a bordered completion card.
func renderSuccessCard(title string, details ...string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s", symSuccess(), cliSuccess.Bold(true).Render(title)))
	for _, d := range details {
		b.WriteString("\n")
		b.WriteString(d)
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 2)
	return box.Render(b.String())
}
