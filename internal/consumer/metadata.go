package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"

	"github.com/GjorgiG/ds-assignment2/internal/catalog"
	"github.com/GjorgiG/ds-assignment2/internal/model"
)

// Metadata consumes metadata-change events and patches single fields on
// catalog records. Updates to records that do not exist are dropped: a
// metadata event must never create a catalog record.
type Metadata struct {
	store catalog.Store
}

// NewMetadata wires a metadata consumer.
func NewMetadata(store catalog.Store) *Metadata {
	return &Metadata{store: store}
}

// Handle processes one pub/sub delivery of metadata-change events. A
// returned error makes the platform redeliver the whole delivery, so only
// transient store failures propagate; validation failures are logged drops.
func (m *Metadata) Handle(ctx context.Context, event events.SNSEvent) error {
	for _, rec := range event.Records {
		if err := m.handleRecord(ctx, rec.SNS); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metadata) handleRecord(ctx context.Context, msg events.SNSEntity) error {
	field := messageAttribute(msg, model.MetadataTypeAttribute)
	if !model.ValidMetadataField(field) {
		slog.Warn("invalid metadata type", "metadataType", field)
		return nil
	}

	var payload model.MetadataMessage
	if err := json.Unmarshal([]byte(msg.Message), &payload); err != nil {
		slog.Warn("malformed metadata message", "error", err)
		return nil
	}
	if payload.ID == "" {
		slog.Warn("metadata message without image id")
		return nil
	}

	if err := m.store.SetMetadataField(ctx, payload.ID, field, payload.Value); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			slog.Warn("metadata update for unknown image", "imageName", payload.ID, "metadataType", field)
			return nil
		}
		return fmt.Errorf("update %s for %q: %w", field, payload.ID, err)
	}
	slog.Info("metadata updated", "imageName", payload.ID, "metadataType", field)
	return nil
}

// messageAttribute extracts a string attribute from an SNS entity, whose
// attributes arrive untyped as {"Type": ..., "Value": ...} maps.
func messageAttribute(msg events.SNSEntity, name string) string {
	attr, ok := msg.MessageAttributes[name]
	if !ok {
		return ""
	}
	m, ok := attr.(map[string]any)
	if !ok {
		return ""
	}
	v, _ := m["Value"].(string)
	return v
}
