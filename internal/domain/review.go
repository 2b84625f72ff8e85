package domain

// Outcome is the result of a single card review, delivered by the host
// application after its own scoring logic.
type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
)

// Valid reports whether the outcome is one of the two known values.
func (o Outcome) Valid() bool {
	return o == OutcomeCorrect || o == OutcomeIncorrect
}

// StreakThreshold pairs a reward interval with the resource it grants.
type StreakThreshold struct {
	Interval int
	Kind     ResourceKind
}

// Grant is one inventory credit issued while processing a review event.
type Grant struct {
	Kind   ResourceKind `json:"kind"`
	Amount int          `json:"amount"`
}

// ReviewResult reports the streak after processing one review event and the
// grants applied. Exposed for observability and testing; processing has no
// side effects beyond the inventory credits it reports.
type ReviewResult struct {
	Outcome         Outcome `json:"outcome"`
	Streak          int     `json:"streak"`
	LifetimeCorrect int     `json:"lifetime_correct"`
	Grants          []Grant `json:"grants"`
}
