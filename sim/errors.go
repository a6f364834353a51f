package sim

import "fmt"

// InvariantError reports a breach of one of the run's structural
// invariants (I1-I5). Per §7, any such breach is a programmer error:
// the run aborts and no partial Stats are returned.
type InvariantError struct {
	Invariant string // e.g. "I1", "I2"
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant %s violated: %s", e.Invariant, e.Detail)
}

func newInvariantError(invariant, detail string) *InvariantError {
	return &InvariantError{Invariant: invariant, Detail: detail}
}
