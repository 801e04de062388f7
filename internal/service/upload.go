package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"itemapi/internal/model"
	"itemapi/internal/repository"
	"itemapi/internal/storage"
)

var (
	ErrReaderNil         = errors.New("reader is nil")
	ErrObjectNameMissing = errors.New("object name is required")
)

const defaultContentType = "application/octet-stream"

// UploadService handles the two-phase upload flow: stream the file into object
// storage, then persist its metadata as a record.
type UploadService interface {
	// Upload streams r into the object store under a collision-free name and
	// persists the resulting metadata. The returned record carries the
	// store-assigned id.
	// - originalFilename is untrusted and used only to extract the extension
	//   and to record the client-supplied name.
	Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.UploadedFile, error)

	// PresignUpload issues a time-limited, content-type-pinned URL for a direct
	// client PUT, bypassing this service for the transfer itself.
	PresignUpload(ctx context.Context, objectName string, contentType string, ttl time.Duration) (string, error)

	// GetFile returns a single metadata record by its ID.
	GetFile(ctx context.Context, id string) (*model.UploadedFile, error)

	// ListFiles returns up to the configured limit of metadata records.
	ListFiles(ctx context.Context) ([]model.UploadedFile, error)
}

// uploadService is a concrete implementation of UploadService.
type uploadService struct {
	store      storage.Storage
	repo       repository.FileRepository
	presignTTL time.Duration
	listLimit  int
}

// NewUploadService constructs a new UploadService. presignTTL is the default
// lifetime of pre-signed upload URLs; values <= 0 fall back to 15 minutes.
// listLimit bounds ListFiles results; values <= 0 fall back to 100.
func NewUploadService(store storage.Storage, repo repository.FileRepository, presignTTL time.Duration, listLimit int) UploadService {
	if presignTTL <= 0 {
		presignTTL = 15 * time.Minute
	}
	if listLimit <= 0 {
		listLimit = 100
	}
	return &uploadService{store: store, repo: repo, presignTTL: presignTTL, listLimit: listLimit}
}

func (s *uploadService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.UploadedFile, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if contentType == "" {
		contentType = defaultContentType
	}

	// Collision-free object name: random UUID plus the original extension.
	ext := filepath.Ext(originalFilename)
	uniqueName := uuid.New().String() + ext

	if _, err := s.store.Put(ctx, uniqueName, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	}); err != nil {
		// A failed or cancelled Put can leave a partially written object behind;
		// no cleanup is attempted for that case.
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	// Re-read size and locator from the store itself rather than trusting the
	// client-declared size or bytes counted on the way through.
	objInfo, err := s.store.Stat(ctx, uniqueName)
	if err != nil {
		return nil, fmt.Errorf("stat uploaded object: %w", err)
	}

	file := &model.UploadedFile{
		URL:            objInfo.URL,
		Filename:       originalFilename,
		UniqueFilename: uniqueName,
		Size:           objInfo.Size,
		ContentType:    contentType,
		UploadedAt:     time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, file)
	if err != nil {
		// Best-effort rollback so the blob does not linger without a record.
		if delErr := s.store.Delete(ctx, uniqueName); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *uploadService) PresignUpload(ctx context.Context, objectName string, contentType string, ttl time.Duration) (string, error) {
	if objectName == "" {
		return "", ErrObjectNameMissing
	}
	if ttl <= 0 {
		ttl = s.presignTTL
	}
	return s.store.PresignPut(ctx, objectName, contentType, ttl)
}

func (s *uploadService) GetFile(ctx context.Context, id string) (*model.UploadedFile, error) {
	parsed, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	file, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return file, nil
}

func (s *uploadService) ListFiles(ctx context.Context) ([]model.UploadedFile, error) {
	return s.repo.List(ctx, s.listLimit)
}
