package consumer

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"

	"github.com/GjorgiG/ds-assignment2/internal/model"
	"github.com/GjorgiG/ds-assignment2/internal/notify"
)

// Escalation drains the dead-letter queue, emailing one rejection notice per
// message that exhausted its delivery attempts. There is no further
// escalation tier, so every message is acknowledged no matter what: a
// failure here is logged, never returned.
type Escalation struct {
	notifier notify.Notifier
}

// NewEscalation wires an escalation handler.
func NewEscalation(notifier notify.Notifier) *Escalation {
	return &Escalation{notifier: notifier}
}

// Handle processes one batch of dead-lettered messages.
func (e *Escalation) Handle(ctx context.Context, event events.SQSEvent) error {
	for _, msg := range event.Records {
		reason := escalationReason([]byte(msg.Body))
		slog.Warn("dead-lettered message", "messageId", msg.MessageId, "reason", reason)

		if err := e.notifier.Send(ctx, model.SubjectUploadRejected, model.RejectionBodyPrefix+reason); err != nil {
			slog.Error("rejection email not sent", "messageId", msg.MessageId, "error", err)
		}
	}
	return nil
}

// escalationReason digs a human-readable error out of a dead-lettered body.
// Bodies arrive in whatever shape the failing consumer saw, so every parse
// is best effort.
func escalationReason(body []byte) string {
	var status model.StatusEvent
	if err := json.Unmarshal(body, &status); err == nil && status.ErrorMessage != "" {
		return status.ErrorMessage
	}

	var wrapper model.SQSBody
	if err := json.Unmarshal(body, &wrapper); err == nil && wrapper.Message != "" {
		var inner model.StatusEvent
		if err := json.Unmarshal([]byte(wrapper.Message), &inner); err == nil && inner.ErrorMessage != "" {
			return inner.ErrorMessage
		}
	}

	return "Invalid file type"
}
