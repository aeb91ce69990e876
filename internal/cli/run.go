package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/springen/springen/internal/archive"
	"github.com/springen/springen/internal/config"
	"github.com/springen/springen/internal/initializr"
	"github.com/springen/springen/internal/ui"
	"github.com/springen/springen/internal/wizard"
)

// runWizard is the whole program: load settings, fetch metadata, walk
// the wizard state machine, and generate the project if asked to.
func runWizard(cmd *cobra.Command, _ []string) error {
	settings := config.Load(config.DefaultPath())
	applyFlags(cmd, settings)

	hm := ui.NewHeadlessManager()
	if settings.PlainPrompts {
		hm.ForceHeadless(true)
	}

	out := cmd.OutOrStdout()
	client := initializr.NewClient(settings.ServiceURL, &http.Client{Timeout: settings.Timeout()})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Fprintln(out, renderBanner(settings.ServiceURL))

	sp := ui.NewSpinner(hm, "Fetching service metadata", out)
	meta, err := client.Metadata(ctx)
	sp.Stop()
	if err != nil {
		return err
	}

	prompt, deps := buildPrompts(cmd, hm)
	w := wizard.New(meta, prompt, deps, out)

	cfg, outcome, err := w.Run()
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			fmt.Fprintln(out, cliMuted.Render("Generation cancelled."))
			return nil
		}
		return err
	}

	if outcome != wizard.OutcomeDownload {
		fmt.Fprintln(out, cliMuted.Render("Nothing generated."))
		return nil
	}

	return generate(ctx, client, meta, cfg, hm, out)
}

// applyFlags overlays command-line flags on the settings file values.
func applyFlags(cmd *cobra.Command, settings *config.Config) {
	if url, err := cmd.Flags().GetString("url"); err == nil && url != "" {
		settings.ServiceURL = url
	}
	if timeout, err := cmd.Flags().GetInt("timeout"); err == nil && timeout >= 0 {
		settings.TimeoutSeconds = timeout
	}
	if plain, err := cmd.Flags().GetBool("plain"); err == nil && plain {
		settings.PlainPrompts = true
	}
}

// buildPrompts picks the prompt strategy: huh forms on a TTY, plain
// numbered lists otherwise.
func buildPrompts(cmd *cobra.Command, hm *ui.HeadlessManager) (wizard.Prompter, wizard.DependencySelector) {
	if hm.IsHeadless() {
		p := wizard.NewPlainPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		return p, wizard.NewPlainDependencySelector(p)
	}
	p := wizard.NewInteractivePrompter()
	return p, wizard.NewInteractiveDependencySelector(p)
}

// generate submits the configuration, unpacks the archive next to the
// working directory, and removes the downloaded zip.
func generate(ctx context.Context, client *initializr.Client, meta *initializr.Metadata, cfg *wizard.ProjectConfig, hm *ui.HeadlessManager, out io.Writer) error {
	sp := ui.NewSpinner(hm, "Generating "+cfg.ProjectName, out)
	body, err := client.Generate(ctx, cfg.GenerateRequest())
	sp.Stop()
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	zipPath := cfg.ProjectName + ".zip"
	if err := writeArchive(zipPath, body); err != nil {
		return fmt.Errorf("%w: %v", initializr.ErrDownload, err)
	}

	// Once extraction is attempted the archive is removed either way.
	extractErr := archive.Unzip(zipPath, cfg.ProjectName)
	_ = os.Remove(zipPath)
	if extractErr != nil {
		return fmt.Errorf("%w: %v", initializr.ErrExtraction, extractErr)
	}

	fmt.Fprintln(out, renderSuccessCard(
		"Project generated",
		fmt.Sprintf("%s %s", cliMuted.Width(14).Render("Directory"), cfg.ProjectName+string(os.PathSeparator)),
		fmt.Sprintf("%s %s", cliMuted.Width(14).Render("Spring Boot"), meta.BootVersionName(cfg.BootVersion)),
		fmt.Sprintf("%s %d selected", cliMuted.Width(14).Render("Dependencies"), len(cfg.Dependencies)),
	))

	if !hm.IsHeadless() {
		renderProjectHelp(filepath.Join(cfg.ProjectName, "HELP.md"), out)
	}
	return nil
}

// writeArchive streams the response body to path.
func writeArchive(path string, body io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}

// renderProjectHelp renders the generated project's HELP.md when
// present. Rendering problems are silently ignored; the project is
// already on disk.
func renderProjectHelp(path string, out io.Writer) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return
	}
	rendered, err := r.Render(string(data))
	if err != nil {
		return
	}
	fmt.Fprintln(out, rendered)
}
