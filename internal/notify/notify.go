// Package notify delivers operator-facing notifications about upload
// outcomes.
package notify

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when the source or destination address is
// unset. Callers drop the notification and log; retrying a missing address
// can never succeed.
var ErrNotConfigured = errors.New("notify: source or destination address not configured")

// Notifier sends a single notification. Delivery is not idempotent:
// redelivered events produce duplicate notifications, which is accepted.
type Notifier interface {
	Send(ctx context.Context, subject, body string) error
}
