package emit

import "fmt"

type OutcomeStatus byte

const (
	OutcomeFulfilled OutcomeStatus = 1
	OutcomeRejected  OutcomeStatus = 2
)

func (s OutcomeStatus) Is(other OutcomeStatus) bool {
	return s == other
}

func (s OutcomeStatus) IsFulfilled() bool {
	return s.Is(OutcomeFulfilled)
}

func (s OutcomeStatus) IsRejected() bool {
	return s.Is(OutcomeRejected)
}

func (s OutcomeStatus) String() string {
	switch s {
	case OutcomeFulfilled:
		return "fulfilled"
	case OutcomeRejected:
		return "rejected"
	}
	return "unknown"
}

// Outcome records how one listener's result settled: a Value when fulfilled,
// a Reason when rejected.
type Outcome[R any] struct {
	Status OutcomeStatus
	Value  R
	Reason error
}

// Fulfilled builds a fulfilled Outcome carrying val.
func Fulfilled[R any](val R) Outcome[R] {
	return Outcome[R]{Status: OutcomeFulfilled, Value: val}
}

// Rejected builds a rejected Outcome carrying reason.
func Rejected[R any](reason error) Outcome[R] {
	return Outcome[R]{Status: OutcomeRejected, Reason: reason}
}

func (o Outcome[R]) String() string {
	if o.Status.IsRejected() {
		return fmt.Sprintf("Outcome{status=%s,reason=%s}", o.Status, o.Reason)
	}
	return fmt.Sprintf("Outcome{status=%s,value=%v}", o.Status, o.Value)
}
