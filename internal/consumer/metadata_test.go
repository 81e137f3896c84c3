package consumer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GjorgiG/ds-assignment2/internal/model"
)

func pendingRecord(key string) model.ImageRecord {
	return model.ImageRecord{
		ImageName: key,
		Status:    model.StatusPendingMetadata,
		Metadata:  map[string]string{},
	}
}

func TestMetadataSetsSingleField(t *testing.T) {
	store := newFakeStore()
	store.records["photo.png"] = pendingRecord("photo.png")
	m := NewMetadata(store)

	err := m.Handle(context.Background(), snsEvent(`{"id": "photo.png", "value": "Jane Doe"}`, metadataAttributes(model.MetadataPhotographer)))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", store.records["photo.png"].Metadata["Photographer"])
}

func TestMetadataLeavesOtherFieldsUntouched(t *testing.T) {
	store := newFakeStore()
	rec := pendingRecord("photo.png")
	rec.Metadata["Caption"] = "sunset over the bay"
	store.records["photo.png"] = rec
	m := NewMetadata(store)

	err := m.Handle(context.Background(), snsEvent(`{"id": "photo.png", "value": "2026-01-01"}`, metadataAttributes(model.MetadataDate)))
	require.NoError(t, err)

	got := store.records["photo.png"].Metadata
	assert.Equal(t, "sunset over the bay", got["Caption"])
	assert.Equal(t, "2026-01-01", got["Date"])
}

func TestMetadataInvalidFieldDropped(t *testing.T) {
	store := newFakeStore()
	store.records["photo.png"] = pendingRecord("photo.png")
	m := NewMetadata(store)

	err := m.Handle(context.Background(), snsEvent(`{"id": "photo.png", "value": "blue"}`, metadataAttributes("Color")))
	require.NoError(t, err)

	assert.Empty(t, store.records["photo.png"].Metadata, "unknown fields must not mutate the record")
}

func TestMetadataMissingAttributeDropped(t *testing.T) {
	store := newFakeStore()
	store.records["photo.png"] = pendingRecord("photo.png")
	m := NewMetadata(store)

	err := m.Handle(context.Background(), snsEvent(`{"id": "photo.png", "value": "x"}`, nil))
	require.NoError(t, err)

	assert.Empty(t, store.records["photo.png"].Metadata)
}

func TestMetadataUnknownImageDropped(t *testing.T) {
	store := newFakeStore()
	m := NewMetadata(store)

	err := m.Handle(context.Background(), snsEvent(`{"id": "never-created.png", "value": "Jane Doe"}`, metadataAttributes(model.MetadataPhotographer)))
	require.NoError(t, err, "a metadata event must never create a record")

	assert.Empty(t, store.records)
}

func TestMetadataStoreFailurePropagates(t *testing.T) {
	store := newFakeStore()
	store.records["photo.png"] = pendingRecord("photo.png")
	store.updateErr = errors.New("table unavailable")
	m := NewMetadata(store)

	err := m.Handle(context.Background(), snsEvent(`{"id": "photo.png", "value": "Jane Doe"}`, metadataAttributes(model.MetadataPhotographer)))
	assert.Error(t, err, "transient store failures surface for redelivery")
}

func TestMetadataMalformedMessageDropped(t *testing.T) {
	store := newFakeStore()
	m := NewMetadata(store)

	err := m.Handle(context.Background(), snsEvent("not json", metadataAttributes(model.MetadataCaption)))
	require.NoError(t, err)

	assert.Empty(t, store.records)
}
