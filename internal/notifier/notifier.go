// Package notifier delivers transactional email for the verification
// and password reset flows. Delivery failures are classified: a sender
// that is simply not configured returns ErrNotConfigured so callers
// can degrade instead of aborting.
package notifier

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when no mail transport settings are
// present. Callers treat this as a soft failure.
var ErrNotConfigured = errors.New("mail transport not configured")

type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}
