package wizard

import (
	"errors"
	"strings"
	"testing"
)

func newTestPrompter(input string) (*PlainPrompter, *strings.Builder) {
	var out strings.Builder
	return NewPlainPrompter(strings.NewReader(input), &out), &out
}

func TestSelect_AcceptsOnlyInRangeIntegers(t *testing.T) {
	t.Parallel()

	// Non-numeric, zero, out-of-range and empty inputs all re-prompt.
	p, out := newTestPrompter("abc\n0\n3\n\n2\n")
	idx, err := p.Select("Project type", []string{"maven-project", "gradle-project"}, -1, ModeInitial)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if idx != 1 {
		t.Errorf("idx = %d, want 1", idx)
	}
	if !strings.Contains(out.String(), "Invalid choice") {
		t.Error("expected inline error message on invalid input")
	}
}

func TestSelect_ReviewEmptyKeepsPrior(t *testing.T) {
	t.Parallel()

	p, out := newTestPrompter("\n")
	idx, err := p.Select("Java version", []string{"17", "21"}, 1, ModeReview)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if idx != 1 {
		t.Errorf("idx = %d, want prior 1", idx)
	}
	if !strings.Contains(out.String(), `keeps "21"`) {
		t.Errorf("review prompt should show the previous value, got %q", out.String())
	}
}

func TestSelect_ReviewNewValueReplaces(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompter("1\n")
	idx, err := p.Select("Java version", []string{"17", "21"}, 1, ModeReview)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if idx != 0 {
		t.Errorf("idx = %d, want 0", idx)
	}
}

func TestSelect_InputClosed(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompter("")
	_, err := p.Select("Project type", []string{"maven-project"}, -1, ModeInitial)
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("err = %v, want ErrInputClosed", err)
	}
}

func TestInput_EmptyFallsBackToDefault(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompter("\n")
	v, err := p.Input("Project name", "demo", ModeInitial)
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if v != "demo" {
		t.Errorf("v = %q, want %q", v, "demo")
	}
}

func TestInput_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompter("  my-service  \n")
	v, err := p.Input("Project name", "demo", ModeInitial)
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if v != "my-service" {
		t.Errorf("v = %q, want %q", v, "my-service")
	}
}

func TestMultiSelect_DuplicatesCollapse(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompter("2,4,2\n")
	opts := []string{"a", "b", "c", "d", "e"}
	indices, keep, err := p.MultiSelect("Dependencies", opts, ModeInitial)
	if err != nil {
		t.Fatalf("MultiSelect: %v", err)
	}
	if keep {
		t.Error("keep should be false for explicit input")
	}
	if len(indices) != 2 || indices[0] != 1 || indices[1] != 3 {
		t.Errorf("indices = %v, want [1 3]", indices)
	}
}

func TestMultiSelect_InvalidTokenBlocksWholeLine(t *testing.T) {
	t.Parallel()

	p, out := newTestPrompter("1,x,3\n1,3\n")
	indices, _, err := p.MultiSelect("Dependencies", []string{"a", "b", "c"}, ModeInitial)
	if err != nil {
		t.Fatalf("MultiSelect: %v", err)
	}
	if len(indices) != 2 || indices[0] != 0 || indices[1] != 2 {
		t.Errorf("indices = %v, want [0 2]", indices)
	}
	if !strings.Contains(out.String(), "invalid entry") {
		t.Error("expected inline error for the rejected line")
	}
}

func TestMultiSelect_EmptyLine(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompter("\n")
	indices, keep, err := p.MultiSelect("Dependencies", []string{"a"}, ModeInitial)
	if err != nil {
		t.Fatalf("MultiSelect: %v", err)
	}
	if keep || len(indices) != 0 {
		t.Errorf("initial empty line should select nothing, got %v keep=%v", indices, keep)
	}

	p, _ = newTestPrompter("\n")
	_, keep, err = p.MultiSelect("Dependencies", []string{"a"}, ModeReview)
	if err != nil {
		t.Fatalf("MultiSelect: %v", err)
	}
	if !keep {
		t.Error("review empty line should keep the current selection")
	}
}

func TestParseIndexList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		line    string
		n       int
		want    []int
		wantErr bool
	}{
		{"single", "1", 3, []int{0}, false},
		{"ordered", "3, 1", 3, []int{2, 0}, false},
		{"duplicates", "2,2,2", 3, []int{1}, false},
		{"zero", "0", 3, nil, true},
		{"too large", "4", 3, nil, true},
		{"non numeric", "two", 3, nil, true},
		{"empty entry", "1,,2", 3, nil, true},
		{"trailing comma", "1,2,", 3, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseIndexList(tt.line, tt.n)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseIndexList(%q) succeeded, want error", tt.line)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseIndexList(%q): %v", tt.line, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}
