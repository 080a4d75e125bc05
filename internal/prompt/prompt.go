package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/suf-labs/suf-gen/internal/ui"
)

// ErrNoInput is returned when input ends before a required answer is given.
var ErrNoInput = errors.New("input closed before an answer was given")

// Answers holds every choice made for one run.
type Answers struct {
	ProjectName string
	Preact      bool
	Snowpack    bool
	Suf         bool
	Git         bool
}

// Prompter asks the user for input.
type Prompter interface {
	// ProjectName asks until a non-empty name is given.
	ProjectName() (string, error)
	// Confirm asks a yes/no question; an empty answer selects def.
	Confirm(question string, def bool) (bool, error)
}

// Questions.
const (
	QuestionPreact   = "use Preact?"
	QuestionSnowpack = "use Snowpack?"
	QuestionSuf      = "add suf-cli?"
	QuestionGit      = "initialize git repository?"
)

// Collect runs the question sequence. When name is non-empty the project name
// prompt is skipped. Snowpack is only offered when Preact was accepted.
func Collect(p Prompter, name string) (Answers, error) {
	var a Answers
	var err error

	a.ProjectName = name
	if a.ProjectName == "" {
		if a.ProjectName, err = p.ProjectName(); err != nil {
			return Answers{}, fmt.Errorf("reading project name: %w", err)
		}
	}

	if a.Preact, err = p.Confirm(QuestionPreact, true); err != nil {
		return Answers{}, err
	}
	if a.Preact {
		if a.Snowpack, err = p.Confirm(QuestionSnowpack, true); err != nil {
			return Answers{}, err
		}
	}
	if a.Suf, err = p.Confirm(QuestionSuf, false); err != nil {
		return Answers{}, err
	}
	if a.Git, err = p.Confirm(QuestionGit, false); err != nil {
		return Answers{}, err
	}
	return a, nil
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// New picks the TUI prompter when tui is enabled and in is a terminal, and
// the line prompter otherwise.
func New(in *os.File, out io.Writer, tui bool) Prompter {
	if tui && IsTerminal(in) {
		return HuhPrompter{}
	}
	return NewLinePrompter(in, out)
}

// LinePrompter reads answers line by line.
type LinePrompter struct {
	reader  *bufio.Reader
	out     io.Writer
	console *ui.Console
}

// NewLinePrompter creates a LinePrompter reading from in and writing prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		reader:  bufio.NewReader(in),
		out:     out,
		console: ui.New(out),
	}
}

// ProjectName re-prompts on empty input for as long as input is available.
func (p *LinePrompter) ProjectName() (string, error) {
	for {
		fmt.Fprint(p.out, p.console.Question("please enter the project name: "))
		line, err := p.reader.ReadString('\n')
		if name := strings.TrimSpace(line); name != "" {
			return name, nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		if err != nil {
			return "", err
		}
	}
}

// Confirm accepts y/yes/n/no in any case. Unrecognized answers re-ask the
// question; at end of input the default is used.
func (p *LinePrompter) Confirm(question string, def bool) (bool, error) {
	for {
		fmt.Fprint(p.out, p.console.Question(question), " ", p.console.Hint(Suffix(def)))
		line, err := p.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("reading answer to %q: %w", question, err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if err != nil {
			return def, nil
		}
	}
}

// Suffix returns the default-answer hint shown after a question.
func Suffix(def bool) string {
	if def {
		return "[Y/n]: "
	}
	return "[y/N]: "
}
