// Package consumer holds the message-triggered consumers of the ingestion
// pipeline: admission control, status notification, metadata mutation, and
// dead-letter escalation.
package consumer

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"
)

// Status classifies the outcome of processing one queue message.
type Status int

const (
	// StatusAccepted means the message was fully processed.
	StatusAccepted Status = iota
	// StatusRejected is a terminal validation decision; the message is
	// consumed without retry.
	StatusRejected
	// StatusRetry is a transient dependency failure; the message is
	// reported back to the platform for redelivery.
	StatusRetry
)

// Result is the per-message outcome consumed by the batch driver.
type Result struct {
	Status Status
	Reason string
	Cause  error
}

// Accept marks a message fully processed.
func Accept() Result {
	return Result{Status: StatusAccepted}
}

// Reject marks a terminal validation decision.
func Reject(reason string) Result {
	return Result{Status: StatusRejected, Reason: reason}
}

// Retryable marks a transient failure to be redelivered.
func Retryable(cause error) Result {
	return Result{Status: StatusRetry, Cause: cause}
}

// RunBatch applies fn to every record in a queue batch and reports the
// messages that must be redelivered. Records are processed sequentially; a
// failing record never blocks the rest of the batch. Terminal rejections are
// logged and consumed.
func RunBatch(ctx context.Context, records []events.SQSMessage, fn func(context.Context, events.SQSMessage) Result) events.SQSEventResponse {
	var resp events.SQSEventResponse
	for _, rec := range records {
		switch res := fn(ctx, rec); res.Status {
		case StatusRejected:
			slog.Warn("message rejected", "messageId", rec.MessageId, "reason", res.Reason)
		case StatusRetry:
			slog.Error("message processing failed", "messageId", rec.MessageId, "error", res.Cause)
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{
				ItemIdentifier: rec.MessageId,
			})
		}
	}
	return resp
}
