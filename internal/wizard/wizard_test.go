package wizard

import (
	"strings"
	"testing"

	"github.com/springen/springen/internal/initializr"
)

func testMetadata() *initializr.Metadata {
	return &initializr.Metadata{
		ProjectTypes:       []string{"maven-project", "gradle-project"},
		NameDefault:        "demo",
		GroupIDDefault:     "com.example",
		ArtifactIDDefault:  "demo",
		DescriptionDefault: "Demo project for Spring Boot",
		JavaVersions:       []string{"17", "21"},
		JavaVersionDefault: "17",
		BootVersions: []initializr.BootVersion{
			{ID: "3.4.0", Name: "3.4.0"},
			{ID: "3.3.5", Name: "3.3.5"},
		},
		BootVersionDefault: "3.4.0",
		Dependencies: []initializr.Dependency{
			{ID: "web", Name: "Spring Web", Group: "Web"},
			{ID: "webflux", Name: "Spring Reactive Web", Group: "Web"},
			{ID: "data-jpa", Name: "Spring Data JPA", Group: "SQL"},
			{ID: "security", Name: "Spring Security", Group: "Security"},
			{ID: "actuator", Name: "Spring Boot Actuator", Group: "Ops"},
		},
	}
}

// runScripted drives a full wizard run over the given input lines.
func runScripted(t *testing.T, input string) (*ProjectConfig, Outcome, string) {
	t.Helper()
	var out strings.Builder
	p := NewPlainPrompter(strings.NewReader(input), &out)
	w := New(testMetadata(), p, NewPlainDependencySelector(p), &out)
	cfg, outcome, err := w.Run()
	if err != nil {
		t.Fatalf("Run: %v\noutput:\n%s", err, out.String())
	}
	return cfg, outcome, out.String()
}

func TestWizard_InitialCollectionAndExit(t *testing.T) {
	t.Parallel()

	// type, name, group, artifact, java, boot, description,
	// dependencies, then exit from the action menu.
	input := strings.Join([]string{
		"1",     // maven-project
		"",      // name -> default
		"",      // group -> default
		"",      // artifact -> default
		"2",     // java 21
		"1",     // boot 3.4.0
		"",      // description -> default
		"2,4,2", // webflux + security, duplicate collapses
		"3",     // exit
	}, "\n") + "\n"

	cfg, outcome, _ := runScripted(t, input)

	if outcome != OutcomeExit {
		t.Errorf("outcome = %v, want OutcomeExit", outcome)
	}
	if cfg.ProjectType != "maven-project" {
		t.Errorf("ProjectType = %q, want %q", cfg.ProjectType, "maven-project")
	}
	if cfg.ProjectName != "demo" {
		t.Errorf("ProjectName = %q, want metadata default", cfg.ProjectName)
	}
	if cfg.GroupID != "com.example" {
		t.Errorf("GroupID = %q, want metadata default", cfg.GroupID)
	}
	if cfg.JavaVersion != "21" {
		t.Errorf("JavaVersion = %q, want %q", cfg.JavaVersion, "21")
	}
	if cfg.BootVersion != "3.4.0" {
		t.Errorf("BootVersion = %q, want the id code", cfg.BootVersion)
	}
	if cfg.Description != "Demo project for Spring Boot" {
		t.Errorf("Description = %q, want metadata default", cfg.Description)
	}
	if len(cfg.Dependencies) != 2 || cfg.Dependencies[0] != "webflux" || cfg.Dependencies[1] != "security" {
		t.Errorf("Dependencies = %v, want [webflux security]", cfg.Dependencies)
	}
}

func TestWizard_DownloadOutcome(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"2", "svc", "org.acme", "svc", "1", "2", "internal service", "1",
		"1", // download
	}, "\n") + "\n"

	cfg, outcome, _ := runScripted(t, input)

	if outcome != OutcomeDownload {
		t.Errorf("outcome = %v, want OutcomeDownload", outcome)
	}
	if cfg.ProjectType != "gradle-project" {
		t.Errorf("ProjectType = %q", cfg.ProjectType)
	}
	if cfg.ProjectName != "svc" {
		t.Errorf("ProjectName = %q", cfg.ProjectName)
	}
	if cfg.BootVersion != "3.3.5" {
		t.Errorf("BootVersion = %q", cfg.BootVersion)
	}
	if len(cfg.Dependencies) != 1 || cfg.Dependencies[0] != "web" {
		t.Errorf("Dependencies = %v, want [web]", cfg.Dependencies)
	}
}

func TestWizard_ReviewRevisesAndKeeps(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		// initial collection
		"1", "", "", "", "2", "1", "", "",
		// action menu -> review
		"2",
		// review -> change a field -> java version, empty keeps 21
		"1", "5", "",
		// review -> change a field -> project name, replace
		"1", "2", "renamed",
		// review -> continue -> download
		"2", "1",
	}, "\n") + "\n"

	cfg, outcome, out := runScripted(t, input)

	if outcome != OutcomeDownload {
		t.Errorf("outcome = %v, want OutcomeDownload", outcome)
	}
	if cfg.JavaVersion != "21" {
		t.Errorf("JavaVersion = %q, empty review input must keep it", cfg.JavaVersion)
	}
	if cfg.ProjectName != "renamed" {
		t.Errorf("ProjectName = %q, want %q", cfg.ProjectName, "renamed")
	}
	if !strings.Contains(out, "Project configuration") {
		t.Error("review state should render the summary")
	}
}

func TestWizard_ReviewDependenciesEmptyKeeps(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"1", "", "", "", "1", "1", "", "1,3",
		"2",      // review
		"1", "8", // change dependencies
		"", // empty keeps current selection
		"3", // exit review
	}, "\n") + "\n"

	cfg, _, _ := runScripted(t, input)

	if len(cfg.Dependencies) != 2 || cfg.Dependencies[0] != "web" || cfg.Dependencies[1] != "data-jpa" {
		t.Errorf("Dependencies = %v, want selection kept", cfg.Dependencies)
	}
}

func TestWizard_ReviewExitOutcome(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"1", "", "", "", "1", "1", "", "",
		"2", // review
		"3", // exit from review menu
	}, "\n") + "\n"

	_, outcome, _ := runScripted(t, input)
	if outcome != OutcomeExit {
		t.Errorf("outcome = %v, want OutcomeExit", outcome)
	}
}

func TestPlainDependencySelector_MapsIndicesToIDs(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	p := NewPlainPrompter(strings.NewReader("5,1\n"), &out)
	s := NewPlainDependencySelector(p)

	ids, err := s.Select(testMetadata(), nil, ModeInitial)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(ids) != 2 || ids[0] != "actuator" || ids[1] != "web" {
		t.Errorf("ids = %v, want [actuator web]", ids)
	}
}

func TestRenderSummary_ResolvesNames(t *testing.T) {
	t.Parallel()

	meta := testMetadata()
	cfg := &ProjectConfig{
		ProjectType:  "maven-project",
		ProjectName:  "demo",
		GroupID:      "com.example",
		ArtifactID:   "demo",
		JavaVersion:  "17",
		BootVersion:  "3.4.0",
		Description:  "Demo",
		Dependencies: []string{"webflux"},
	}

	s := RenderSummary(meta, cfg)
	if !strings.Contains(s, "Spring Reactive Web") {
		t.Errorf("summary should resolve dependency ids to names:\n%s", s)
	}
	if strings.Contains(s, "webflux") {
		t.Errorf("summary should not show raw dependency ids:\n%s", s)
	}
}

func TestWizard_ConfigStartsEmpty(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	p := NewPlainPrompter(strings.NewReader(""), &out)
	w := New(testMetadata(), p, NewPlainDependencySelector(p), &out)

	cfg := w.Config()
	if cfg == nil {
		t.Fatal("Config() returned nil")
	}
	if cfg.ProjectType != "" || len(cfg.Dependencies) != 0 {
		t.Errorf("configuration should start empty, got %+v", cfg)
	}
}

func TestFieldLabels_CoverAllFields(t *testing.T) {
	t.Parallel()

	for f := FieldProjectType; f <= FieldDependencies; f++ {
		if f.Label() == "" {
			t.Errorf("field %d has no label", f)
		}
	}
}
