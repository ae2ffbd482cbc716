package recommend

import (
	"speechbench/internal/app/catalog"
	apperrors "speechbench/internal/app/errors"
)

var ErrQuizComplete = apperrors.New("quiz already has results")

// State is a position in the quiz
type State int

const (
	StateQuestion1 State = iota
	StateQuestion2
	StateQuestion3
	StateResults
)

func (s State) String() string {
	switch s {
	case StateQuestion1:
		return "question1"
	case StateQuestion2:
		return "question2"
	case StateQuestion3:
		return "question3"
	case StateResults:
		return "results"
	default:
		return "unknown"
	}
}

// Quiz walks a visitor through the three questions, forward only.
// A Quiz is not safe for concurrent use; each visitor gets their own.
type Quiz struct {
	catalog *catalog.Catalog
	topN    int

	state   State
	answers Answers
	results []Recommendation
}

// NewQuiz starts a quiz at the first question
func NewQuiz(c *catalog.Catalog, topN int) *Quiz {
	if topN <= 0 || topN > DefaultTopN {
		topN = DefaultTopN
	}
	return &Quiz{catalog: c, topN: topN}
}

// Replay rebuilds a quiz from answers given in step order
func Replay(c *catalog.Catalog, topN int, tags ...string) (*Quiz, error) {
	q := NewQuiz(c, topN)
	for _, tag := range tags {
		if err := q.Answer(tag); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// State returns the current position
func (q *Quiz) State() State {
	return q.state
}

// Done reports whether results are available
func (q *Quiz) Done() bool {
	return q.state == StateResults
}

// Current returns the question awaiting an answer; ok is false once results are in
func (q *Quiz) Current() (Question, bool) {
	if q.Done() {
		return Question{}, false
	}
	return questions[q.state], true
}

// Answer records tag for the current question and moves forward.
// The third answer computes the results.
func (q *Quiz) Answer(tag string) error {
	current, ok := q.Current()
	if !ok {
		return ErrQuizComplete
	}
	if !current.HasOption(tag) {
		return apperrors.Wrapf(ErrInvalidOption, "step %d: %q", current.Step, tag)
	}

	switch q.state {
	case StateQuestion1:
		q.answers.UseCase = UseCase(tag)
	case StateQuestion2:
		q.answers.Priority = Priority(tag)
	case StateQuestion3:
		q.answers.Volume = Volume(tag)
		q.results = Recommend(q.catalog, q.answers, q.topN)
	}
	q.state++

	return nil
}

// Answers returns what has been collected so far
func (q *Quiz) Answers() Answers {
	return q.answers
}

// Results returns the recommendations, empty until the quiz is done
func (q *Quiz) Results() []Recommendation {
	return append([]Recommendation(nil), q.results...)
}

// Reset goes back to the first question and forgets all answers and results
func (q *Quiz) Reset() {
	q.state = StateQuestion1
	q.answers = Answers{}
	q.results = nil
}
