// Package cli provides the Cobra command surface for springen.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/springen/springen/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "springen",
	Short: "Interactive Spring Boot project generator",
	Long: `springen is an interactive wizard around the Spring Initializr
service. It fetches the available project types, Java versions, Spring
Boot versions and starter dependencies, walks you through choosing
them, lets you review and revise your answers, and downloads and
unpacks the generated project.`,
	Version:      version.GetVersion(),
	SilenceUsage: true,
	RunE:         runWizard,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("springen %s\n", version.GetVersion()))

	rootCmd.Flags().String("url", "", "Initializr service URL (default from settings file)")
	rootCmd.Flags().Int("timeout", -1, "HTTP timeout in seconds, 0 for none (default from settings file)")
	rootCmd.Flags().Bool("plain", false, "Use plain numbered prompts instead of the interactive UI")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
