// Package gpa implements the grade arithmetic behind the advisor: transcript
// means, half splits, comparison classification, and goal reachability. All
// functions are pure.
package gpa

import (
	"math"
	"sort"
)

// Transcript is an ordered list of grades. Position is significant: it
// decides half membership and the 1-indexed positions reported to the user.
type Transcript []float64

// Mean returns the arithmetic mean of the transcript. It is defined for
// non-empty transcripts only.
func (t Transcript) Mean() float64 {
	var sum float64
	for _, g := range t {
		sum += g
	}
	return sum / float64(len(t))
}

// FirstHalf returns the first ceil(n/2) grades.
func (t Transcript) FirstHalf() Transcript {
	return t[:(len(t)+1)/2]
}

// SecondHalf returns the grades after the first half.
func (t Transcript) SecondHalf() Transcript {
	return t[(len(t)+1)/2:]
}

// Round2 rounds half away from zero to two decimal places. Every GPA shown
// to the user goes through it.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Comparison classifies a half GPA against the overall GPA.
type Comparison int

const (
	Even Comparison = iota
	Higher
	Lower
)

// String implements fmt.Stringer for log output.
func (c Comparison) String() string {
	switch c {
	case Higher:
		return "higher"
	case Lower:
		return "lower"
	default:
		return "even"
	}
}

// Compare classifies half against overall. Differences within epsilon count
// as Even; exact float equality is too fragile after two-decimal rounding.
func Compare(half, overall, epsilon float64) Comparison {
	diff := half - overall
	switch {
	case math.Abs(diff) <= epsilon:
		return Even
	case diff > 0:
		return Higher
	default:
		return Lower
	}
}

// GoalOutcome names the branch a goal evaluation lands in.
type GoalOutcome int

const (
	// GoalAlreadyMet means the goal is at or below the current overall mean.
	GoalAlreadyMet GoalOutcome = iota
	// GoalSingleGrade means at least one grade, raised to the maximum on its
	// own, reaches the goal.
	GoalSingleGrade
	// GoalMultipleGrades means no single grade suffices but raising several
	// does.
	GoalMultipleGrades
	// GoalOutOfReach means the goal exceeds the mean even with every grade
	// at the maximum.
	GoalOutOfReach
)

// String implements fmt.Stringer for log output.
func (o GoalOutcome) String() string {
	switch o {
	case GoalAlreadyMet:
		return "already_met"
	case GoalSingleGrade:
		return "single_grade"
	case GoalMultipleGrades:
		return "multiple_grades"
	default:
		return "out_of_reach"
	}
}

// GoalReport is the result of evaluating a goal against a transcript.
type GoalReport struct {
	Outcome GoalOutcome
	// Positions holds 1-indexed grade positions in ascending order. It is
	// empty unless the outcome names grades to improve.
	Positions []int
}

// EvaluateGoal determines how a goal GPA can be reached on a transcript
// whose grades max out at max. It first checks whether any single grade,
// raised to max, lifts the mean to the goal. Failing that, it raises the
// lowest grades to max one at a time (ties broken by earlier position) until
// the goal is met, and reports those positions.
func EvaluateGoal(t Transcript, goal, max float64) GoalReport {
	var sum float64
	for _, g := range t {
		sum += g
	}
	n := float64(len(t))

	if goal <= sum/n {
		return GoalReport{Outcome: GoalAlreadyMet}
	}

	var single []int
	for i, g := range t {
		if (sum-g+max)/n >= goal {
			single = append(single, i+1)
		}
	}
	if len(single) > 0 {
		return GoalReport{Outcome: GoalSingleGrade, Positions: single}
	}

	order := make([]int, len(t))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return t[order[a]] < t[order[b]]
	})

	raised := sum
	var picked []int
	for _, i := range order {
		raised += max - t[i]
		picked = append(picked, i+1)
		if raised/n >= goal {
			sort.Ints(picked)
			return GoalReport{Outcome: GoalMultipleGrades, Positions: picked}
		}
	}

	return GoalReport{Outcome: GoalOutOfReach}
}
