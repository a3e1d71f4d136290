package webhook

import "fmt"

/* Outcome represents the recorded result of a processing attempt
 * An entry starts as Error and is flipped to Success only after its
 * handler returns, so an interrupted attempt stays visible to the
 * retry sweep
 */
type Outcome int

const (
	Success Outcome = iota + 1
	Error
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// NewOutcome creates an Outcome from a string
func NewOutcome(str string) Outcome {
	switch str {
	case "success":
		return Success
	case "error":
		return Error
	default:
		return Error
	}
}

// Validate checks if the outcome is valid
func (o Outcome) Validate() error {
	if o != Success && o != Error {
		return fmt.Errorf("invalid outcome: %d", o)
	}
	return nil
}
