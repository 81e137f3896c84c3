package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/GjorgiG/ds-assignment2/internal/catalog"
	"github.com/GjorgiG/ds-assignment2/internal/model"
	"github.com/GjorgiG/ds-assignment2/internal/notify"
)

// ObjectHeader looks up the declared content type of a stored object.
type ObjectHeader interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// Admission consumes object-lifecycle events, admitting or rejecting uploads
// and keeping the catalog in step with the bucket. A rejection is a terminal
// decision made once per message: the rejection notice is sent in-line and
// the message is consumed, never redelivered.
type Admission struct {
	store    catalog.Store
	notifier notify.Notifier
	header   ObjectHeader // nil disables content-type validation
	now      func() time.Time
}

// NewAdmission wires an admission consumer. Pass a nil header to admit on
// extension alone.
func NewAdmission(store catalog.Store, notifier notify.Notifier, header ObjectHeader) *Admission {
	return &Admission{store: store, notifier: notifier, header: header, now: time.Now}
}

// Handle processes one queue batch of object-lifecycle events.
func (a *Admission) Handle(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	return RunBatch(ctx, event.Records, a.handleMessage), nil
}

func (a *Admission) handleMessage(ctx context.Context, msg events.SQSMessage) Result {
	var body model.SQSBody
	if err := json.Unmarshal([]byte(msg.Body), &body); err != nil {
		return Reject(fmt.Sprintf("malformed queue message: %v", err))
	}

	var payload model.S3EventRecords
	if err := json.Unmarshal([]byte(body.Message), &payload); err != nil {
		return Reject(fmt.Sprintf("malformed event payload: %v", err))
	}
	if len(payload.Records) == 0 {
		// bucket test notifications carry no Records array
		return Accept()
	}

	// Every record is processed even when an earlier one fails: a rejection
	// of one record must not short-circuit its siblings. A retryable failure
	// outranks a rejection so the message is redelivered.
	final := Accept()
	for _, rec := range payload.Records {
		switch res := a.handleRecord(ctx, rec); res.Status {
		case StatusRetry:
			final = res
		case StatusRejected:
			if final.Status != StatusRetry {
				final = res
			}
		}
	}
	return final
}

func (a *Admission) handleRecord(ctx context.Context, rec model.S3EventRecord) Result {
	key, err := model.DecodeObjectKey(rec.S3.Object.Key)
	if err != nil {
		return Reject(fmt.Sprintf("undecodable object key %q: %v", rec.S3.Object.Key, err))
	}

	if rec.Removed() {
		if err := a.store.Delete(ctx, key); err != nil {
			return Retryable(fmt.Errorf("delete %q: %w", key, err))
		}
		slog.Info("image removed from catalog", "imageName", key)
		return Accept()
	}

	ext := model.Extension(key)
	if !model.AllowedExtension(ext) {
		return a.reject(ctx, key, fmt.Sprintf("Invalid file type: %s", ext))
	}

	if a.header != nil {
		out, err := a.header.HeadObject(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(rec.S3.Bucket.Name),
			Key:    aws.String(key),
		})
		if err != nil {
			return Retryable(fmt.Errorf("head object %q: %w", key, err))
		}
		if got, want := aws.ToString(out.ContentType), model.ContentTypeForExtension(ext); got != want {
			return a.reject(ctx, key, fmt.Sprintf("Invalid content type: %s", got))
		}
	}

	if err := a.store.Upsert(ctx, model.ImageRecord{
		ImageName:  key,
		UploadedAt: a.now().UTC().Format(time.RFC3339),
		Status:     model.StatusPendingMetadata,
	}); err != nil {
		return Retryable(fmt.Errorf("record %q: %w", key, err))
	}
	slog.Info("image recorded", "imageName", key)
	return Accept()
}

// reject sends the rejection notice and consumes the message. The notice is
// best effort: a send failure must not turn a terminal decision into a
// retryable one.
func (a *Admission) reject(ctx context.Context, key, reason string) Result {
	if err := a.notifier.Send(ctx, model.SubjectUploadRejected, model.RejectionBodyPrefix+reason); err != nil {
		slog.Warn("rejection notice not sent", "imageName", key, "error", err)
	}
	return Reject(reason)
}
