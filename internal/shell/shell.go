// Package shell is the interactive text menu used to collect courses, tune them and browse
// the timetables they allow.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/limaJavier/sectionplanner/pkg/export"
	"github.com/limaJavier/sectionplanner/pkg/model"
	"github.com/limaJavier/sectionplanner/pkg/provider"
)

// Returned by the prompt when the input is exhausted
var errQuit = errors.New("quit")

type Options struct {
	Provider   provider.Provider
	Enumerator model.Enumerator
	Term       export.Term
	Logger     *zap.Logger
}

// Shell owns the course list for the whole session. User-facing text goes to out; the
// logger only receives structured events.
type Shell struct {
	input      *bufio.Scanner
	out        io.Writer
	provider   provider.Provider
	enumerator model.Enumerator
	term       export.Term
	logger     *zap.Logger

	courses []*model.CourseOffering
}

func New(in io.Reader, out io.Writer, options Options) *Shell {
	if options.Enumerator == nil {
		options.Enumerator = model.NewEnumerator(nil, options.Logger)
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	return &Shell{
		input:      bufio.NewScanner(in),
		out:        out,
		provider:   options.Provider,
		enumerator: options.Enumerator,
		term:       options.Term,
		logger:     options.Logger,
	}
}

// Courses returns the courses of the session in the order they were added
func (shell *Shell) Courses() []*model.CourseOffering {
	return shell.courses
}

// Run shows the main menu until the user exits or the input ends
func (shell *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		shell.println("Please choose an action.")
		shell.println("a - add a course, m - manage courses, f - find schedules, e - exit")
		action, err := shell.prompt()
		if err != nil {
			return shell.finish(err)
		}

		switch action {
		case "a":
			err = shell.addCourse(ctx)
		case "m":
			err = shell.manageCourses()
		case "f":
			err = shell.findSchedules()
		case "e":
			shell.println("Goodbye")
			return nil
		default:
			shell.println("Sorry, I don't know what that means.")
		}
		if err != nil {
			return shell.finish(err)
		}
		shell.println("")
	}
}

func (shell *Shell) finish(err error) error {
	if errors.Is(err, errQuit) {
		shell.println("Goodbye")
		return nil
	}
	return err
}

// Reads one trimmed line, keeping its case
func (shell *Shell) promptLine() (string, error) {
	fmt.Fprint(shell.out, "> ")
	if !shell.input.Scan() {
		if err := shell.input.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		shell.println("")
		return "", errQuit
	}
	return strings.TrimSpace(shell.input.Text()), nil
}

// Reads one menu choice, lowercased
func (shell *Shell) prompt() (string, error) {
	line, err := shell.promptLine()
	return strings.ToLower(line), err
}

func (shell *Shell) println(text string) {
	fmt.Fprintln(shell.out, text)
}

func (shell *Shell) printf(format string, args ...any) {
	fmt.Fprintf(shell.out, format, args...)
}

// Reads a menu number in [0, count)
func parseChoice(action string, count int) (int, string) {
	choice, err := strconv.Atoi(action)
	if err != nil {
		return 0, "Sorry, I didn't understand that."
	}
	if choice < 0 || choice >= count {
		return 0, "Sorry, this has to be one of the presented options."
	}
	return choice, ""
}
