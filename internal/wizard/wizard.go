package wizard

import (
	"fmt"
	"io"
	"slices"

	"github.com/springen/springen/internal/initializr"
)

// State is one node of the top-level wizard flow.
type State int

const (
	// StateCollecting runs the initial pass over every field.
	StateCollecting State = iota
	// StateActionMenu offers download, review, or exit.
	StateActionMenu
	// StateReviewing shows the summary and allows per-field revision.
	StateReviewing
	// StateDownloading hands the finished configuration to the caller.
	StateDownloading
	// StateDone terminates the run loop.
	StateDone
)

// Wizard owns the configuration record for one run and walks the state
// machine until the user downloads or exits.
type Wizard struct {
	meta    *initializr.Metadata
	cfg     *ProjectConfig
	prompt  Prompter
	deps    DependencySelector
	out     io.Writer
	outcome Outcome
}

// New creates a Wizard over the given metadata snapshot. Prompts go
// through prompt, dependency selection through deps, and summary output
// to out.
func New(meta *initializr.Metadata, prompt Prompter, deps DependencySelector, out io.Writer) *Wizard {
	return &Wizard{
		meta:   meta,
		cfg:    &ProjectConfig{},
		prompt: prompt,
		deps:   deps,
		out:    out,
	}
}

// Config returns the configuration record. It is only complete after
// Run has passed the collecting state.
func (w *Wizard) Config() *ProjectConfig { return w.cfg }

// Run walks the state machine to a terminal state. It returns the
// configuration and whether the user asked for a download or an exit.
func (w *Wizard) Run() (*ProjectConfig, Outcome, error) {
	handlers := map[State]func() (State, error){
		StateCollecting:  w.stepCollecting,
		StateActionMenu:  w.stepActionMenu,
		StateReviewing:   w.stepReviewing,
		StateDownloading: w.stepDownloading,
	}

	for st := StateCollecting; st != StateDone; {
		next, err := handlers[st]()
		if err != nil {
			return nil, OutcomeExit, err
		}
		st = next
	}
	return w.cfg, w.outcome, nil
}

// stepCollecting runs the fixed initial collection order.
func (w *Wizard) stepCollecting() (State, error) {
	for f := FieldProjectType; f <= FieldDependencies; f++ {
		if err := w.collectField(f, ModeInitial); err != nil {
			return StateDone, err
		}
	}
	return StateActionMenu, nil
}

// stepActionMenu asks what to do with the collected configuration.
func (w *Wizard) stepActionMenu() (State, error) {
	choice, err := w.prompt.Select("What would you like to do", []string{
		"Generate and download the project",
		"Review the configuration",
		"Exit without generating",
	}, -1, ModeInitial)
	if err != nil {
		return StateDone, err
	}

	switch choice {
	case 0:
		return StateDownloading, nil
	case 1:
		return StateReviewing, nil
	default:
		w.outcome = OutcomeExit
		return StateDone, nil
	}
}

// stepReviewing shows the summary and the revision sub-menu.
func (w *Wizard) stepReviewing() (State, error) {
	fmt.Fprintln(w.out, RenderSummary(w.meta, w.cfg))

	choice, err := w.prompt.Select("Review", []string{
		"Change a field",
		"Continue",
		"Exit without generating",
	}, -1, ModeInitial)
	if err != nil {
		return StateDone, err
	}

	switch choice {
	case 0:
		fields := make([]string, 0, int(FieldDependencies))
		for f := FieldProjectType; f <= FieldDependencies; f++ {
			fields = append(fields, f.Label())
		}
		idx, err := w.prompt.Select("Which field", fields, -1, ModeInitial)
		if err != nil {
			return StateDone, err
		}
		if err := w.collectField(Field(idx+1), ModeReview); err != nil {
			return StateDone, err
		}
		return StateReviewing, nil
	case 1:
		return StateActionMenu, nil
	default:
		w.outcome = OutcomeExit
		return StateDone, nil
	}
}

// stepDownloading is terminal: the caller performs the actual submit.
func (w *Wizard) stepDownloading() (State, error) {
	w.outcome = OutcomeDownload
	return StateDone, nil
}

// collectField dispatches one field to the right prompt kind.
func (w *Wizard) collectField(f Field, mode Mode) error {
	switch f {
	case FieldProjectType:
		prior := slices.Index(w.meta.ProjectTypes, w.cfg.ProjectType)
		idx, err := w.prompt.Select(f.Label(), w.meta.ProjectTypes, prior, mode)
		if err != nil {
			return err
		}
		w.cfg.ProjectType = w.meta.ProjectTypes[idx]

	case FieldProjectName:
		v, err := w.prompt.Input(f.Label(), w.textDefault(w.cfg.ProjectName, w.meta.NameDefault, mode), mode)
		if err != nil {
			return err
		}
		w.cfg.ProjectName = v

	case FieldGroupID:
		v, err := w.prompt.Input(f.Label(), w.textDefault(w.cfg.GroupID, w.meta.GroupIDDefault, mode), mode)
		if err != nil {
			return err
		}
		w.cfg.GroupID = v

	case FieldArtifactID:
		v, err := w.prompt.Input(f.Label(), w.textDefault(w.cfg.ArtifactID, w.meta.ArtifactIDDefault, mode), mode)
		if err != nil {
			return err
		}
		w.cfg.ArtifactID = v

	case FieldJavaVersion:
		prior := slices.Index(w.meta.JavaVersions, w.cfg.JavaVersion)
		idx, err := w.prompt.Select(f.Label(), w.meta.JavaVersions, prior, mode)
		if err != nil {
			return err
		}
		w.cfg.JavaVersion = w.meta.JavaVersions[idx]

	case FieldBootVersion:
		options := make([]string, len(w.meta.BootVersions))
		prior := -1
		for i, v := range w.meta.BootVersions {
			options[i] = v.Name
			if v.ID == w.cfg.BootVersion {
				prior = i
			}
		}
		idx, err := w.prompt.Select(f.Label(), options, prior, mode)
		if err != nil {
			return err
		}
		// The id is the code the generator expects; the name shown in
		// the list is only the label.
		w.cfg.BootVersion = w.meta.BootVersions[idx].ID

	case FieldDescription:
		v, err := w.prompt.Input(f.Label(), w.textDefault(w.cfg.Description, w.meta.DescriptionDefault, mode), mode)
		if err != nil {
			return err
		}
		w.cfg.Description = v

	case FieldDependencies:
		ids, err := w.deps.Select(w.meta, w.cfg.Dependencies, mode)
		if err != nil {
			return err
		}
		w.cfg.Dependencies = ids
	}

	return nil
}

// textDefault picks the fallback for a free-text prompt: the metadata
// default on the first pass, the current value during review.
func (w *Wizard) textDefault(current, metaDefault string, mode Mode) string {
	if mode == ModeReview {
		return current
	}
	return metaDefault
}
