package order

import (
	"fmt"
	"strings"

	"pressing/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	pending     -> in_progress, cancelled
//	in_progress -> ready, pending, cancelled
//	ready       -> delivered, in_progress
//	delivered   -> (terminal)
//	cancelled   -> pending
type Status int

const (
	// Unknown is the zero value and never a valid stored status.
	Unknown Status = iota

	// Pending is the initial status of every order.
	Pending

	// InProgress means a staff member is working on the order.
	InProgress

	// Ready means every service is done and the order awaits pick-up.
	Ready

	// Delivered is terminal: the customer has the order back.
	Delivered

	// Cancelled orders can only be reactivated to Pending.
	Cancelled
)

func getStatusCodes() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in_progress",
		Ready:      "ready",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, InProgress, Ready, Delivered, Cancelled}
}

// ParseStatus converts a stored or transmitted code into a Status.
// An empty code is read as Pending: orders without a recorded status are new.
func ParseStatus(code string) (Status, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Pending, nil
	}
	for status, c := range getStatusCodes() {
		if status != Unknown && c == code {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", code))
}

// Validate fails for Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := definitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the wire code ("pending", "in_progress", ...), or "unknown".
func (s Status) String() string {
	if code, ok := getStatusCodes()[s]; ok {
		return code
	}
	return "unknown"
}

// Label is the French display label shown to shop staff.
func (s Status) Label() string {
	if def, ok := definitions()[s]; ok {
		return def.label
	}
	return "Inconnu"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	def, ok := definitions()[s]
	return ok && len(def.next) == 0
}

// MarshalText encodes the status as its wire code.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a wire code; empty input yields Pending.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
