package wizard

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/springen/springen/internal/initializr"
)

// PlainPrompter reads answers line by line from an input stream. It is
// the fallback strategy for terminals without interactive UI support
// and the scriptable surface the tests drive.
type PlainPrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPlainPrompter creates a PlainPrompter reading from r and writing
// prompts to w.
func NewPlainPrompter(r io.Reader, w io.Writer) *PlainPrompter {
	return &PlainPrompter{
		scanner: bufio.NewScanner(r),
		out:     w,
	}
}

// readLine reads one line of input, NFC-normalized and trimmed.
func (p *PlainPrompter) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInputClosed, err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(norm.NFC.String(p.scanner.Text())), nil
}

// Select implements Prompter. Invalid input never aborts; it prints an
// inline error and re-prompts until a valid index is read.
func (p *PlainPrompter) Select(title string, options []string, prior int, mode Mode) (int, error) {
	fmt.Fprintf(p.out, "\n%s:\n", title)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}

	for {
		if mode == ModeReview && prior >= 0 && prior < len(options) {
			fmt.Fprintf(p.out, "Select [1-%d] (enter keeps %q): ", len(options), options[prior])
		} else {
			fmt.Fprintf(p.out, "Select [1-%d]: ", len(options))
		}

		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			if mode == ModeReview && prior >= 0 && prior < len(options) {
				return prior, nil
			}
			fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", len(options))
			continue
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintf(p.out, "Invalid choice %q: enter a number between 1 and %d.\n", line, len(options))
			continue
		}
		return n - 1, nil
	}
}

// Input implements Prompter. Empty input falls back to def.
func (p *PlainPrompter) Input(title, def string, mode Mode) (string, error) {
	switch {
	case mode == ModeReview:
		fmt.Fprintf(p.out, "\n%s (enter keeps %q): ", title, def)
	case def != "":
		fmt.Fprintf(p.out, "\n%s (default %q): ", title, def)
	default:
		fmt.Fprintf(p.out, "\n%s: ", title)
	}

	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// MultiSelect reads one comma-separated line of 1-based indices against
// options. Every token must parse to an in-range integer or the whole
// line is rejected and re-prompted. Duplicates collapse, first
// occurrence wins. An empty line selects nothing in initial mode and
// keeps the current selection in review mode (signalled by returning
// keep=true).
func (p *PlainPrompter) MultiSelect(title string, options []string, mode Mode) (indices []int, keep bool, err error) {
	fmt.Fprintf(p.out, "\n%s:\n", title)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}

	for {
		if mode == ModeReview {
			fmt.Fprint(p.out, "Enter comma-separated numbers (enter keeps current selection): ")
		} else {
			fmt.Fprint(p.out, "Enter comma-separated numbers (enter for none): ")
		}

		line, rerr := p.readLine()
		if rerr != nil {
			return nil, false, rerr
		}
		if line == "" {
			if mode == ModeReview {
				return nil, true, nil
			}
			return nil, false, nil
		}

		parsed, perr := parseIndexList(line, len(options))
		if perr != nil {
			fmt.Fprintf(p.out, "%v\n", perr)
			continue
		}
		return parsed, false, nil
	}
}

// parseIndexList parses a comma-separated list of 1-based indices.
// Any invalid token fails the whole line. The result is zero-based,
// deduplicated, and preserves first-occurrence order.
func parseIndexList(line string, n int) ([]int, error) {
	var indices []int
	seen := make(map[int]bool)

	for tok := range strings.SplitSeq(line, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, fmt.Errorf("malformed list %q: empty entry", line)
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid entry %q: enter numbers between 1 and %d", tok, n)
		}
		if v < 1 || v > n {
			return nil, fmt.Errorf("entry %d out of range: enter numbers between 1 and %d", v, n)
		}
		if !seen[v] {
			seen[v] = true
			indices = append(indices, v-1)
		}
	}
	return indices, nil
}

// PlainDependencySelector is the comma-separated-list strategy for
// dependency selection.
type PlainDependencySelector struct {
	prompt *PlainPrompter
}

// NewPlainDependencySelector wraps a PlainPrompter as a DependencySelector.
func NewPlainDependencySelector(p *PlainPrompter) *PlainDependencySelector {
	return &PlainDependencySelector{prompt: p}
}

// Select implements DependencySelector.
func (s *PlainDependencySelector) Select(meta *initializr.Metadata, current []string, mode Mode) ([]string, error) {
	options := make([]string, len(meta.Dependencies))
	for i, d := range meta.Dependencies {
		options[i] = fmt.Sprintf("%s (%s)", d.Name, d.Group)
	}

	if mode == ModeReview && len(current) > 0 {
		names := make([]string, len(current))
		for i, id := range current {
			names[i] = meta.DependencyName(id)
		}
		fmt.Fprintf(s.prompt.out, "\nCurrently selected: %s\n", strings.Join(names, ", "))
	}

	indices, keep, err := s.prompt.MultiSelect("Dependencies", options, mode)
	if err != nil {
		return nil, err
	}
	if keep {
		return current, nil
	}

	ids := make([]string, 0, len(indices))
	for _, idx := range indices {
		ids = append(ids, meta.Dependencies[idx].ID)
	}
	return ids, nil
}
