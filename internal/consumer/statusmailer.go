package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"

	"github.com/GjorgiG/ds-assignment2/internal/model"
	"github.com/GjorgiG/ds-assignment2/internal/notify"
)

// StatusNotifier consumes upload-result events and emails the operator.
// Exactly one email per valid event; duplicates from at-least-once
// redelivery are accepted rather than deduplicated.
type StatusNotifier struct {
	notifier notify.Notifier
}

// NewStatusNotifier wires a status notifier.
func NewStatusNotifier(notifier notify.Notifier) *StatusNotifier {
	return &StatusNotifier{notifier: notifier}
}

// Handle processes one queue batch of upload-result events.
func (n *StatusNotifier) Handle(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	return RunBatch(ctx, event.Records, n.handleMessage), nil
}

func (n *StatusNotifier) handleMessage(ctx context.Context, msg events.SQSMessage) Result {
	var status model.StatusEvent
	if err := json.Unmarshal([]byte(msg.Body), &status); err != nil {
		return Reject(fmt.Sprintf("malformed status event: %v", err))
	}

	var subject, body string
	switch status.UploadStatus {
	case model.UploadStatusSuccess:
		subject, body = model.SubjectUploadSuccessful, model.BodyUploadSuccessful
	case model.UploadStatusFailure:
		subject, body = model.SubjectUploadRejected, model.RejectionBodyPrefix+status.ErrorMessage
	default:
		return Reject(fmt.Sprintf("unknown upload status %q", status.UploadStatus))
	}

	if err := n.notifier.Send(ctx, subject, body); err != nil {
		if errors.Is(err, notify.ErrNotConfigured) {
			// a configuration error surfaces once; retrying cannot fix it
			return Reject("notification addresses not configured")
		}
		return Retryable(fmt.Errorf("send %q: %w", subject, err))
	}
	slog.Info("status email sent", "subject", subject)
	return Accept()
}
