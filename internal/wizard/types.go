// Package wizard drives the interactive project configuration flow:
// initial field collection, summary review with per-field revision, and
// the action menu that decides between download and exit.
package wizard

import (
	"errors"

	"github.com/springen/springen/internal/initializr"
)

// ProjectConfig is the single mutable configuration record of a wizard
// run. Every field holds either a user-supplied value or the matching
// metadata default; the list-backed fields always hold one of the
// enumerated metadata values.
type ProjectConfig struct {
	ProjectType string
	ProjectName string
	GroupID     string
	ArtifactID  string
	JavaVersion string
	BootVersion string
	Description string

	// Dependencies holds unique starter ids, a subset of the metadata
	// snapshot, in selection order.
	Dependencies []string
}

// GenerateRequest converts the configuration into the form the
// Initializr client submits.
func (c *ProjectConfig) GenerateRequest() initializr.GenerateRequest {
	return initializr.GenerateRequest{
		Type:         c.ProjectType,
		Name:         c.ProjectName,
		GroupID:      c.GroupID,
		ArtifactID:   c.ArtifactID,
		JavaVersion:  c.JavaVersion,
		BootVersion:  c.BootVersion,
		Description:  c.Description,
		Dependencies: c.Dependencies,
	}
}

// Mode distinguishes the first pass over a field from a later revision.
// Review mode pre-fills the previous value and lets an empty submission
// keep it; initial mode requires an explicit answer for list fields.
type Mode int

const (
	ModeInitial Mode = iota
	ModeReview
)

// Field identifies one revisable configuration field. The numeric order
// matches both the initial collection order and the revision menu.
type Field int

const (
	FieldProjectType Field = iota + 1
	FieldProjectName
	FieldGroupID
	FieldArtifactID
	FieldJavaVersion
	FieldBootVersion
	FieldDescription
	FieldDependencies
)

// fieldLabels maps fields to their prompt titles, in menu order.
var fieldLabels = map[Field]string{
	FieldProjectType:  "Project type",
	FieldProjectName:  "Project name",
	FieldGroupID:      "Group id",
	FieldArtifactID:   "Artifact id",
	FieldJavaVersion:  "Java version",
	FieldBootVersion:  "Spring Boot version",
	FieldDescription:  "Description",
	FieldDependencies: "Dependencies",
}

// Label returns the display title of the field.
func (f Field) Label() string { return fieldLabels[f] }

// Outcome is the terminal result of a wizard run.
type Outcome int

const (
	// OutcomeExit means the user chose to leave without generating.
	OutcomeExit Outcome = iota
	// OutcomeDownload means the configuration should be submitted.
	OutcomeDownload
)

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user aborts an interactive form.
	ErrCancelled = errors.New("wizard: cancelled by user")
	// ErrInputClosed is returned when standard input ends mid-prompt.
	ErrInputClosed = errors.New("wizard: input stream closed")
)

// Prompter collects single answers. Implementations exist for plain
// line-based prompts and for the interactive terminal UI.
type Prompter interface {
	// Select renders the options as a list and returns the chosen
	// zero-based index. In review mode prior is pre-selected and an
	// empty submission keeps it; prior is ignored in initial mode.
	Select(title string, options []string, prior int, mode Mode) (int, error)

	// Input collects free text. An empty submission falls back to def,
	// which carries the metadata default in initial mode and the
	// previous value in review mode.
	Input(title, def string, mode Mode) (string, error)
}

// DependencySelector picks starter dependencies from the metadata
// snapshot. Both presentation strategies yield the same artifact: a
// unique, order-preserving list of dependency ids drawn from meta.
type DependencySelector interface {
	Select(meta *initializr.Metadata, current []string, mode Mode) ([]string, error)
}
