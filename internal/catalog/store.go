// Package catalog maintains the record store of admitted images, one keyed
// record per object. All mutating operations are idempotent so they tolerate
// at-least-once redelivery of the events that drive them.
package catalog

import (
	"context"
	"errors"

	"github.com/GjorgiG/ds-assignment2/internal/model"
)

// ErrNotFound is returned when an operation targets a record that does not
// exist.
var ErrNotFound = errors.New("catalog: record not found")

// Store is the catalog of admitted images, keyed by decoded object key.
type Store interface {
	// Upsert creates the record for rec.ImageName or refreshes its status.
	// Replaying the same upsert is state-identical: the original uploadedAt
	// and any accrued metadata are preserved.
	Upsert(ctx context.Context, rec model.ImageRecord) error

	// Delete removes the record for imageName. Deleting a record that does
	// not exist is not an error.
	Delete(ctx context.Context, imageName string) error

	// SetMetadataField sets a single metadata field on an existing record,
	// leaving every other field untouched. Returns ErrNotFound if no record
	// exists for imageName.
	SetMetadataField(ctx context.Context, imageName, field, value string) error

	// Get fetches the record for imageName, or ErrNotFound.
	Get(ctx context.Context, imageName string) (*model.ImageRecord, error)
}
