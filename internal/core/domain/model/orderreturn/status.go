package orderreturn

import (
	"fmt"

	"returns/internal/pkg/errs"
)

// Status represents the lifecycle state of a return.
// It implements a state machine with defined transitions to ensure
// returns follow the correct business workflow.
//
// State transitions:
//
//	Requested ──┬──> Canceled
//	            ├──> Received
//	            └──> RequiresAction ──> Received
//	                       │
//	                       └──> Canceled
//
// Canceled and Received are terminal. Received additionally blocks a
// second receive. Cancel is blocked only from Received, so canceling an
// already-canceled return is permitted.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Requested is the initial status when a return is first created.
	// The customer has asked to send items back but nothing has arrived.
	Requested

	// Received indicates the returned items arrived and matched what was
	// requested (or a mismatch was explicitly allowed). Terminal.
	Received

	// RequiresAction indicates the received items did not match the
	// requested items and no override was granted. A corrective receive
	// may still move the return to Received.
	RequiresAction

	// Canceled indicates the return was canceled. Terminal; no further
	// mutation of the return is permitted.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Requested:      "requested",
		Received:       "received",
		RequiresAction: "requires_action",
		Canceled:       "canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Requested:      "requested",
		Received:       "received",
		RequiresAction: "requires_action",
		Canceled:       "canceled",
	}
}

// StatusFromString parses a persisted status representation.
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Requested, Received, RequiresAction, Canceled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the persisted name of the status, e.g. "requires_action".
// Implements fmt.Stringer; safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Cancel transitions the status to Canceled.
//
// The only blocked source state is Received: items that were already
// accepted back cannot be un-received by canceling. Canceling an
// already-canceled return passes through unchanged.
func (s Status) Cancel() (Status, error) {
	if s == Received {
		return 0, errs.NewOperationNotAllowedErrorWithCause(
			"return cannot be canceled",
			fmt.Errorf("status is %s", s.String()),
		)
	}

	return Canceled, nil
}

// Receive transitions the status to Received when matching is true,
// or to RequiresAction when the received items mismatched the request.
//
// Invalid source states:
//   - Canceled (a canceled return cannot receive items)
//   - Received (a return can only be received once)
func (s Status) Receive(matching bool) (Status, error) {
	if s == Canceled {
		return 0, errs.NewOperationNotAllowedErrorWithCause(
			"return cannot be received",
			fmt.Errorf("status is %s", s.String()),
		)
	}
	if s == Received {
		return 0, errs.NewOperationNotAllowedErrorWithCause(
			"return has already been received",
			fmt.Errorf("status is %s", s.String()),
		)
	}

	if matching {
		return Received, nil
	}
	return RequiresAction, nil
}

// EnsureMutable verifies that the return may still be modified.
// Returns a not-allowed error once the status is Canceled.
func (s Status) EnsureMutable() error {
	if s == Canceled {
		return errs.NewOperationNotAllowedErrorWithCause(
			"return cannot be modified",
			fmt.Errorf("status is %s", s.String()),
		)
	}
	return nil
}
