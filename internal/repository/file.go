package repository

import (
	"context"

	"itemapi/internal/model"
)

// FileRepository persists uploaded-file metadata records. Records are written
// once per successful upload and never updated; there is no delete path.
type FileRepository interface {
	// Create inserts the metadata record and returns it with the store-assigned id.
	Create(ctx context.Context, file *model.UploadedFile) (*model.UploadedFile, error)

	// FindByID returns a metadata record by its ID.
	FindByID(ctx context.Context, id string) (*model.UploadedFile, error)

	// List returns up to limit records in store-native order.
	List(ctx context.Context, limit int) ([]model.UploadedFile, error)
}
