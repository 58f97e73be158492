package cpu

import "fmt"

// InvariantViolation is the panic value raised when a collaborator
// hands this layer an operand it can never legally receive: a
// register-direct mode reaching effective-address calculation, or a
// register identity outside the defined set. It marks a bug in the
// decoder, not a runtime condition, so it is not an error return; the
// session boundary recovers it, logs the diagnostic and aborts.
type InvariantViolation struct {
	Op     string // entry point that caught the violation
	Detail string // offending operand or mode
}

func (e InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation in %s: %s", e.Op, e.Detail)
}
