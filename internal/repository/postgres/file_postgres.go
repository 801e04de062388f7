package postgres

import (
	"context"
	"database/sql"

	"itemapi/internal/model"
	"itemapi/internal/repository"
)

// FilePostgres is a PostgreSQL implementation of repository.FileRepository.
type FilePostgres struct {
	db *sql.DB
}

// NewFilePostgres creates a new FilePostgres repository.
func NewFilePostgres(db *sql.DB) *FilePostgres {
	return &FilePostgres{db: db}
}

var _ repository.FileRepository = (*FilePostgres)(nil)

// Create inserts an uploaded-file metadata row and returns the stored record.
func (r *FilePostgres) Create(ctx context.Context, file *model.UploadedFile) (*model.UploadedFile, error) {
	const q = `
		INSERT INTO uploaded_files (url, filename, unique_filename, size, content_type, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, url, filename, unique_filename, size, content_type, uploaded_at
	`
	row := r.db.QueryRowContext(ctx, q,
		file.URL,
		file.Filename,
		file.UniqueFilename,
		file.Size,
		file.ContentType,
		file.UploadedAt,
	)
	var out model.UploadedFile
	if err := row.Scan(
		&out.ID,
		&out.URL,
		&out.Filename,
		&out.UniqueFilename,
		&out.Size,
		&out.ContentType,
		&out.UploadedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single metadata record by its ID.
func (r *FilePostgres) FindByID(ctx context.Context, id string) (*model.UploadedFile, error) {
	const q = `
		SELECT id, url, filename, unique_filename, size, content_type, uploaded_at
		FROM uploaded_files
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var f model.UploadedFile
	if err := row.Scan(
		&f.ID,
		&f.URL,
		&f.Filename,
		&f.UniqueFilename,
		&f.Size,
		&f.ContentType,
		&f.UploadedAt,
	); err != nil {
		return nil, err
	}
	return &f, nil
}

// List returns up to limit metadata records in store order.
func (r *FilePostgres) List(ctx context.Context, limit int) ([]model.UploadedFile, error) {
	const q = `
		SELECT id, url, filename, unique_filename, size, content_type, uploaded_at
		FROM uploaded_files
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := make([]model.UploadedFile, 0)
	for rows.Next() {
		var f model.UploadedFile
		if err := rows.Scan(
			&f.ID,
			&f.URL,
			&f.Filename,
			&f.UniqueFilename,
			&f.Size,
			&f.ContentType,
			&f.UploadedAt,
		); err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return files, nil
}
