package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/springen/springen/internal/initializr"
)

// Summary output styles.
var (
	summaryTitle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#4C8C2B", Dark: "#6DB33F"}).
			Bold(true)
	summaryKey = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}).
			Width(20)
	summaryBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}).
			Padding(0, 2)
)

// RenderSummary renders the current configuration as a bordered
// key/value card. Dependency ids and the boot version id are resolved
// back to their display names.
func RenderSummary(meta *initializr.Metadata, cfg *ProjectConfig) string {
	deps := "none"
	if len(cfg.Dependencies) > 0 {
		names := make([]string, len(cfg.Dependencies))
		for i, id := range cfg.Dependencies {
			names[i] = meta.DependencyName(id)
		}
		deps = strings.Join(names, ", ")
	}

	rows := []struct{ key, value string }{
		{"Project type", cfg.ProjectType},
		{"Project name", cfg.ProjectName},
		{"Group id", cfg.GroupID},
		{"Artifact id", cfg.ArtifactID},
		{"Java version", cfg.JavaVersion},
		{"Spring Boot", meta.BootVersionName(cfg.BootVersion)},
		{"Description", cfg.Description},
		{"Dependencies", deps},
	}

	var b strings.Builder
	b.WriteString(summaryTitle.Render("Project configuration"))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s", summaryKey.Render(row.key), row.value))
	}

	return summaryBox.Render(b.String())
}
