// Package session implements the interactive advising session: a strictly
// linear state machine that collects grades, reports the overall GPA,
// compares one half of the semester against it, and evaluates a goal GPA.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vk/gradeadvisor/internal/ctxlog"
	"github.com/vk/gradeadvisor/internal/gpa"
	"github.com/vk/gradeadvisor/internal/scale"
)

// State identifies one step of the session. States advance in declaration
// order and never move backwards.
type State int

const (
	StateWelcome State = iota
	StateCollecting
	StateOverall
	StateHalf
	StateGoal
	StateFarewell
	StateDone
)

// String implements fmt.Stringer for log output.
func (s State) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StateCollecting:
		return "collecting_grades"
	case StateOverall:
		return "overall_computed"
	case StateHalf:
		return "half_compared"
	case StateGoal:
		return "goal_evaluated"
	case StateFarewell:
		return "farewell"
	default:
		return "done"
	}
}

// ErrInputClosed is returned when the input stream ends before the session
// has run to completion.
var ErrInputClosed = errors.New("input ended before the session finished")

// Session holds the state of one interactive run.
type Session struct {
	in    *bufio.Scanner
	outW  io.Writer
	scale *scale.Scale

	state   State
	grades  gpa.Transcript
	overall float64
}

// New creates a session reading answers from inR and writing prompts and
// messages to outW.
func New(inR io.Reader, outW io.Writer, sc *scale.Scale) *Session {
	return &Session{
		in:    bufio.NewScanner(inR),
		outW:  outW,
		scale: sc,
		state: StateWelcome,
	}
}

// Run walks the session through its states in order. The only error it can
// return is a failure of the input stream; every invalid answer is handled
// by re-prompting.
func (s *Session) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	for s.state != StateDone {
		logger.Debug("Session state entered.", "state", s.state)

		var err error
		switch s.state {
		case StateWelcome:
			s.welcome()
		case StateCollecting:
			err = s.collectGrades(ctx)
		case StateOverall:
			s.announceOverall()
		case StateHalf:
			err = s.compareHalf(ctx)
		case StateGoal:
			err = s.evaluateGoal(ctx)
		case StateFarewell:
			s.farewell()
		}
		if err != nil {
			return err
		}
		s.state++
	}

	logger.Debug("Session finished.")
	return nil
}

// readLine returns the next trimmed input line.
func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) welcome() {
	fmt.Fprintln(s.outW, "📚 Welcome to GradeAdvisor!")
	fmt.Fprintln(s.outW, "Lets get started")
}

// collectGrades prompts for each grade in turn, re-prompting until the
// answer parses and falls inside the scale's range.
func (s *Session) collectGrades(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	s.grades = make(gpa.Transcript, 0, s.scale.GradeCount)
	for n := 1; n <= s.scale.GradeCount; n++ {
		for {
			fmt.Fprintf(s.outW, "Enter grade #%d (0.0-%.1f): ", n, s.scale.MaxGrade)
			line, err := s.readLine()
			if err != nil {
				return err
			}
			g, parseErr := strconv.ParseFloat(line, 64)
			if parseErr != nil || g < 0 || g > s.scale.MaxGrade {
				logger.Debug("Rejected grade input.", "position", n, "input", line)
				fmt.Fprintf(s.outW, "Please enter a number between 0.0 and %.1f.\n", s.scale.MaxGrade)
				continue
			}
			s.grades = append(s.grades, g)
			break
		}
	}

	fmt.Fprintf(s.outW, "All grades recorded: [%s]\n", formatGrades(s.grades))
	return nil
}

func (s *Session) announceOverall() {
	fmt.Fprintln(s.outW, "Calculating.. crunch")
	s.overall = gpa.Round2(s.grades.Mean())
	fmt.Fprintf(s.outW, "Your current GPA is: %.2f\n", s.overall)
}

// compareHalf asks which half to check, computes that half's GPA, and prints
// exactly one of the scale's three comparison messages.
func (s *Session) compareHalf(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	var choice string
	for {
		fmt.Fprint(s.outW, "Which half would you like to check, 'first' or 'second'? ")
		line, err := s.readLine()
		if err != nil {
			return err
		}
		choice = strings.ToLower(line)
		if choice == "first" || choice == "second" {
			break
		}
		logger.Debug("Rejected half choice.", "input", line)
		fmt.Fprintln(s.outW, "Please answer 'first' or 'second'.")
	}

	half := s.grades.FirstHalf()
	if choice == "second" {
		half = s.grades.SecondHalf()
	}
	halfGPA := gpa.Round2(half.Mean())
	fmt.Fprintf(s.outW, "Your %s semester GPA is: %.2f\n", choice, halfGPA)

	comparison := gpa.Compare(halfGPA, s.overall, s.scale.Epsilon)
	logger.Debug("Half compared.", "half", choice, "half_gpa", halfGPA, "overall", s.overall, "comparison", comparison)

	switch comparison {
	case gpa.Higher:
		fmt.Fprintln(s.outW, s.scale.Messages.Higher)
	case gpa.Lower:
		fmt.Fprintln(s.outW, s.scale.Messages.Lower)
	default:
		fmt.Fprintln(s.outW, s.scale.Messages.Even)
	}
	return nil
}

// evaluateGoal asks for a goal GPA and reports how it can be reached.
func (s *Session) evaluateGoal(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	var goal float64
	for {
		fmt.Fprint(s.outW, "What's your goal GPA? ")
		line, err := s.readLine()
		if err != nil {
			return err
		}
		g, parseErr := strconv.ParseFloat(line, 64)
		if parseErr != nil {
			logger.Debug("Rejected goal input.", "input", line)
			fmt.Fprintln(s.outW, "Please enter a number.")
			continue
		}
		goal = g
		break
	}

	report := gpa.EvaluateGoal(s.grades, goal, s.scale.MaxGrade)
	logger.Debug("Goal evaluated.", "goal", goal, "outcome", report.Outcome, "positions", report.Positions)

	switch report.Outcome {
	case gpa.GoalAlreadyMet:
		fmt.Fprintln(s.outW, "You already meet your goal GPA. Keep it up!")
	case gpa.GoalSingleGrade:
		fmt.Fprintln(s.outW, "Good news, that's within reach!")
		fmt.Fprintf(s.outW, "Try improving grade(s): %s\n", formatPositions(report.Positions))
	case gpa.GoalMultipleGrades:
		fmt.Fprintln(s.outW, "One grade alone won't get you there.")
		fmt.Fprintf(s.outW, "Try improving grade(s): %s\n", formatPositions(report.Positions))
	default:
		fmt.Fprintf(s.outW, "A goal above the %.1f scale isn't reachable.\n", s.scale.MaxGrade)
	}
	return nil
}

func (s *Session) farewell() {
	fmt.Fprintln(s.outW, "Thanks for using GradeAdvisor. Good luck out there!")
}

// formatGrade prints a grade with minimal decimals but never as a bare
// integer, so the echoed list reads [3.7, 3.0, 2.8, 3.9, 3.5].
func formatGrade(g float64) string {
	str := strconv.FormatFloat(g, 'f', -1, 64)
	if !strings.Contains(str, ".") {
		str += ".0"
	}
	return str
}

func formatGrades(grades gpa.Transcript) string {
	parts := make([]string, len(grades))
	for i, g := range grades {
		parts[i] = formatGrade(g)
	}
	return strings.Join(parts, ", ")
}

func formatPositions(positions []int) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ", ")
}
