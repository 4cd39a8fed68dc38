package strength

import (
	"log/slog"
	"unicode/utf8"

	"github.com/nao1215/pwstrength/internal/model"
)

// Analyzer names, used in Result.Breakdown and in logs.
const (
	NameLength             = "length"
	NameCharacterClasses   = "character_classes"
	NameCharacterDiversity = "character_diversity"
	NameCommonPassword     = "common_password"
	NameRepetition         = "repetition"
	NameSequence           = "sequence"
	NameKeyboardPattern    = "keyboard_pattern"
	NameEntropy            = "entropy"
)

// EmptyFeedback is the only feedback given for an empty password.
const EmptyFeedback = "Password cannot be empty."

// Input is the data every check receives.
// It is built once per evaluation and must not be modified by checks.
type Input struct {
	// Password is the password being evaluated.
	Password string

	// Classes holds the character classes, derived once from Password.
	Classes model.CharClasses
}

// newInput builds the shared input for a password.
func newInput(password string) *Input {
	return &Input{
		Password: password,
		Classes:  DetectClasses(password),
	}
}

// Check is a single heuristic run by the Evaluator.
type Check interface {
	// Name returns the analyzer name used in the breakdown.
	Name() string

	// Analyze returns the score delta and feedback for the input.
	Analyze(in *Input) (float64, []string)
}

// CheckFunc adapts a plain function to the Check interface.
type CheckFunc func(in *Input) (float64, []string)

// namedCheck pairs a CheckFunc with its name.
type namedCheck struct {
	name string
	fn   CheckFunc
}

// NewCheck creates a Check from a name and a function.
func NewCheck(name string, fn CheckFunc) Check {
	return &namedCheck{name: name, fn: fn}
}

// Name returns the check name.
func (c *namedCheck) Name() string {
	return c.name
}

// Analyze runs the wrapped function.
func (c *namedCheck) Analyze(in *Input) (float64, []string) {
	return c.fn(in)
}

// intCheck adapts the integer-valued analyzers that only need the password.
func intCheck(fn func(string) (int, []string)) CheckFunc {
	return func(in *Input) (float64, []string) {
		delta, feedback := fn(in.Password)
		return float64(delta), feedback
	}
}

// DefaultChecks returns the built-in checks in evaluation order.
func DefaultChecks() []Check {
	return []Check{
		NewCheck(NameLength, func(in *Input) (float64, []string) {
			delta, feedback := LengthScore(utf8.RuneCountInString(in.Password))
			return float64(delta), feedback
		}),
		NewCheck(NameCharacterClasses, func(in *Input) (float64, []string) {
			return 0, ClassFeedback(in.Classes)
		}),
		NewCheck(NameCharacterDiversity, func(in *Input) (float64, []string) {
			delta, feedback := DiversityScore(in.Classes)
			return float64(delta), feedback
		}),
		NewCheck(NameCommonPassword, intCheck(CommonPasswordScore)),
		NewCheck(NameRepetition, intCheck(RepetitionScore)),
		NewCheck(NameSequence, intCheck(SequenceScore)),
		NewCheck(NameKeyboardPattern, intCheck(KeyboardPatternScore)),
		NewCheck(NameEntropy, func(in *Input) (float64, []string) {
			return EntropyScore(in.Password)
		}),
	}
}

// Evaluator runs checks against a password and aggregates the results.
// An Evaluator holds no per-call state and is safe for concurrent use.
type Evaluator struct {
	// checks run in order for every evaluation.
	checks []Check

	// logger receives per-check debug output. It never sees the password.
	logger *slog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger for debug output.
// A nil logger keeps the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithChecks replaces the built-in checks. Mainly useful in tests.
func WithChecks(checks ...Check) Option {
	return func(e *Evaluator) {
		e.checks = checks
	}
}

// NewEvaluator creates an Evaluator with the built-in checks.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		checks: DefaultChecks(),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// CheckNames returns the names of all checks in evaluation order.
func (e *Evaluator) CheckNames() []string {
	names := make([]string, len(e.checks))
	for i, c := range e.checks {
		names[i] = c.Name()
	}
	return names
}

// Analyze evaluates a password and returns the full result.
// An empty password short-circuits to LabelEmpty without running checks.
func (e *Evaluator) Analyze(password string) *model.Result {
	if password == "" {
		return &model.Result{
			Label:    model.LabelEmpty,
			Feedback: []string{EmptyFeedback},
		}
	}

	in := newInput(password)
	result := &model.Result{
		Feedback:  make([]string, 0, 16),
		Breakdown: make([]model.Contribution, 0, len(e.checks)),
		Length:    utf8.RuneCountInString(password),
		Entropy:   ShannonEntropy(password),
		GuessBits: GuessBits(password),
	}

	var score float64
	for _, check := range e.checks {
		delta, feedback := check.Analyze(in)
		score += delta
		result.Feedback = append(result.Feedback, feedback...)
		result.Breakdown = append(result.Breakdown, model.Contribution{
			Analyzer: check.Name(),
			Delta:    delta,
			Feedback: feedback,
		})

		e.logger.Debug("check completed",
			"check", check.Name(),
			"delta", delta,
			"messages", len(feedback),
		)
	}

	result.Score = score
	result.Label = Classify(score)

	e.logger.Debug("evaluation completed",
		"label", result.Label.String(),
		"score", score,
		"length", result.Length,
	)

	return result
}

// Evaluate analyzes the password with a shared Evaluator using the built-in
// checks and returns only the label and the ordered feedback.
func Evaluate(password string) (model.Label, []string) {
	result := defaultEvaluator.Analyze(password)
	return result.Label, result.Feedback
}

// defaultEvaluator backs Evaluate. It is immutable after init.
var defaultEvaluator = NewEvaluator()
