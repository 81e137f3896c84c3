package consumer

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"github.com/GjorgiG/ds-assignment2/internal/catalog"
	"github.com/GjorgiG/ds-assignment2/internal/model"
)

// fakeStore implements catalog.Store on a map.
type fakeStore struct {
	records map[string]model.ImageRecord

	upsertErr error
	deleteErr error
	updateErr error

	upserts int
	deletes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string]model.ImageRecord{}}
}

func (s *fakeStore) Upsert(ctx context.Context, rec model.ImageRecord) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.upserts++
	// mirrors the store's replay behavior: uploadedAt and accrued metadata
	// survive a redelivered upsert
	if prev, ok := s.records[rec.ImageName]; ok {
		rec.UploadedAt = prev.UploadedAt
		rec.Metadata = prev.Metadata
	}
	if rec.Metadata == nil {
		rec.Metadata = map[string]string{}
	}
	s.records[rec.ImageName] = rec
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, imageName string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletes++
	delete(s.records, imageName)
	return nil
}

func (s *fakeStore) SetMetadataField(ctx context.Context, imageName, field, value string) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	rec, ok := s.records[imageName]
	if !ok {
		return catalog.ErrNotFound
	}
	rec.Metadata[field] = value
	s.records[imageName] = rec
	return nil
}

func (s *fakeStore) Get(ctx context.Context, imageName string) (*model.ImageRecord, error) {
	rec, ok := s.records[imageName]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &rec, nil
}

// fakeNotifier records every sent notification.
type fakeNotifier struct {
	subjects []string
	bodies   []string
	err      error
}

func (n *fakeNotifier) Send(ctx context.Context, subject, body string) error {
	if n.err != nil {
		return n.err
	}
	n.subjects = append(n.subjects, subject)
	n.bodies = append(n.bodies, body)
	return nil
}

func sqsMessage(body string) events.SQSMessage {
	return events.SQSMessage{MessageId: uuid.NewString(), Body: body}
}

func sqsEvent(bodies ...string) events.SQSEvent {
	var event events.SQSEvent
	for _, body := range bodies {
		event.Records = append(event.Records, sqsMessage(body))
	}
	return event
}

func objectRecord(eventName, bucket, key string) model.S3EventRecord {
	return model.S3EventRecord{
		EventName: eventName,
		S3: model.S3Entity{
			Bucket: model.S3Bucket{Name: bucket},
			Object: model.S3Object{Key: key},
		},
	}
}

// objectEventsBody builds the SNS-wrapped queue body for a set of lifecycle
// events delivered in a single message.
func objectEventsBody(t *testing.T, records ...model.S3EventRecord) string {
	t.Helper()

	inner, err := json.Marshal(model.S3EventRecords{Records: records})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	outer, err := json.Marshal(model.SQSBody{Message: string(inner)})
	if err != nil {
		t.Fatalf("marshal wrapper: %v", err)
	}
	return string(outer)
}

func objectEventBody(t *testing.T, eventName, bucket, key string) string {
	t.Helper()
	return objectEventsBody(t, objectRecord(eventName, bucket, key))
}

func statusEventBody(t *testing.T, status, errorMessage string) string {
	t.Helper()

	body, err := json.Marshal(model.StatusEvent{UploadStatus: status, ErrorMessage: errorMessage})
	if err != nil {
		t.Fatalf("marshal status event: %v", err)
	}
	return string(body)
}

func snsEvent(message string, attributes map[string]any) events.SNSEvent {
	return events.SNSEvent{
		Records: []events.SNSEventRecord{
			{
				SNS: events.SNSEntity{
					MessageID:         uuid.NewString(),
					Message:           message,
					MessageAttributes: attributes,
				},
			},
		},
	}
}

func metadataAttributes(field string) map[string]any {
	return map[string]any{
		model.MetadataTypeAttribute: map[string]any{
			"Type":  "String",
			"Value": field,
		},
	}
}
