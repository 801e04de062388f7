package model

import "time"

// UploadedFile is the metadata record for one object written to the blob store.
// Size and URL reflect the store's post-write metadata, not client claims.
type UploadedFile struct {
	ID             string    `json:"_id"`
	URL            string    `json:"url"`
	Filename       string    `json:"filename"`
	UniqueFilename string    `json:"unique_filename"`
	Size           int64     `json:"size"`
	ContentType    string    `json:"content_type"`
	UploadedAt     time.Time `json:"uploaded_at"`
}
