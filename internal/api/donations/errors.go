package donations

import (
	"errors"
	"strings"
)

var (
	// ErrAlreadySubscribed guards the one-active-subscription-per-donor
	// invariant on create.
	ErrAlreadySubscribed = errors.New("donor already has an active subscription")

	// ErrNoSubscription covers both a missing customer and a customer
	// without an active subscription, so callers cannot distinguish
	// whether an email is known at all.
	ErrNoSubscription = errors.New("no subscription found for this email")
)

// ValidationError carries every failing field of a request, not just
// the first one.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, ", ")
}
