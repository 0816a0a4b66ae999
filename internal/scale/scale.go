// Package scale defines the grading scale the advisor runs on and loads
// overrides for it from HCL configuration files.
package scale

import "errors"

// Built-in scale values, used whenever a configuration file leaves an
// attribute out (or no file is given at all).
const (
	DefaultMaxGrade   = 4.0
	DefaultGradeCount = 5
	DefaultEpsilon    = 0.005
)

// Messages holds the three half-comparison messages printed to the user.
type Messages struct {
	Higher string
	Lower  string
	Even   string
}

// Scale describes the grading scale for one advising session.
type Scale struct {
	// MaxGrade is the top of the grade range; grades live in [0, MaxGrade].
	MaxGrade float64
	// GradeCount is how many grades one session collects.
	GradeCount int
	// Epsilon is the tolerance under which a half GPA counts as matching
	// the overall GPA.
	Epsilon  float64
	Messages Messages
}

// Default returns the built-in five-grade 4.0 scale.
func Default() *Scale {
	return &Scale{
		MaxGrade:   DefaultMaxGrade,
		GradeCount: DefaultGradeCount,
		Epsilon:    DefaultEpsilon,
		Messages: Messages{
			Higher: "Good job! This half is above your overall GPA.",
			Lower:  "Time to lock in! This half is below your overall GPA.",
			Even:   "Consistent work! This half matches your overall GPA.",
		},
	}
}

// apply overlays the attributes present in a decoded scale block onto s.
func (s *Scale) apply(raw *scaleSchema) {
	if raw == nil {
		return
	}
	if raw.MaxGrade != nil {
		s.MaxGrade = *raw.MaxGrade
	}
	if raw.GradeCount != nil {
		s.GradeCount = *raw.GradeCount
	}
	if raw.Epsilon != nil {
		s.Epsilon = *raw.Epsilon
	}
	if raw.Messages != nil {
		if raw.Messages.Higher != nil {
			s.Messages.Higher = *raw.Messages.Higher
		}
		if raw.Messages.Lower != nil {
			s.Messages.Lower = *raw.Messages.Lower
		}
		if raw.Messages.Even != nil {
			s.Messages.Even = *raw.Messages.Even
		}
	}
}

// validate rejects scales no session could run on.
func (s *Scale) validate() error {
	if s.MaxGrade <= 0 {
		return errors.New("max_grade must be positive")
	}
	if s.GradeCount < 2 {
		return errors.New("grade_count must be at least 2")
	}
	if s.Epsilon < 0 {
		return errors.New("epsilon must not be negative")
	}
	if s.Messages.Higher == "" || s.Messages.Lower == "" || s.Messages.Even == "" {
		return errors.New("comparison messages must not be empty")
	}
	return nil
}
