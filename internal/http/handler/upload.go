package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"itemapi/internal/service"
	"itemapi/internal/validation"
)

// presignRequest is the POST /upload/presign payload.
type presignRequest struct {
	ObjectName  string `json:"object_name" validate:"required,min=1"`
	ContentType string `json:"content_type"`
	TTLMinutes  int    `json:"ttl_minutes" validate:"omitempty,gt=0"`
}

// UploadFile handles POST /upload/ (multipart/form-data, field name: file).
// The file is streamed to the object store, then its metadata is persisted as
// a record; the persisted record is returned.
func UploadFile(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "cannot open uploaded file")
		}
		defer f.Close()

		file, err := svc.Upload(c.UserContext(), f, fh.Filename, fh.Header.Get("Content-Type"), fh.Size)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "upload failed")
		}
		return writeSuccess(c, fiber.StatusCreated, "file uploaded", file)
	}
}

// ListFiles handles GET /files.
func ListFiles(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		files, err := svc.ListFiles(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return writeSuccess(c, fiber.StatusOK, "", files)
	}
}

// GetFile handles GET /files/:id.
func GetFile(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := svc.GetFile(c.UserContext(), c.Params("id"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidID):
				return writeError(c, fiber.StatusBadRequest, "invalid id format")
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "file not found")
			default:
				return writeError(c, fiber.StatusInternalServerError, "internal server error")
			}
		}
		return writeSuccess(c, fiber.StatusOK, "", file)
	}
}

// PresignUpload handles POST /upload/presign, returning a time-limited URL for
// a direct client PUT to the object store.
func PresignUpload(svc service.UploadService, v *validation.Validator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req presignRequest
		if err := c.BodyParser(&req); err != nil {
			return writeValidationError(c, map[string]string{"body": "malformed request body"})
		}
		if err := v.Struct(req); err != nil {
			var verr *validation.ValidationError
			if errors.As(err, &verr) {
				return writeValidationError(c, verr.Fields)
			}
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}

		url, err := svc.PresignUpload(c.UserContext(), req.ObjectName, req.ContentType, time.Duration(req.TTLMinutes)*time.Minute)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "presign failed")
		}
		return writeSuccess(c, fiber.StatusOK, "", fiber.Map{"url": url})
	}
}
