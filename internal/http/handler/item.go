package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"itemapi/internal/model"
	"itemapi/internal/service"
	"itemapi/internal/validation"
)

// createItemRequest is the POST /items/ payload.
type createItemRequest struct {
	Name        string   `json:"name" validate:"required,min=1"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
}

// updateItemRequest is the PUT /items/:id payload. Every field is optional;
// absent fields leave the stored value untouched.
type updateItemRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
}

// CreateItem handles POST /items/.
func CreateItem(svc service.ItemService, v *validation.Validator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createItemRequest
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

		item, err := svc.Create(c.UserContext(), &model.Item{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
		})
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return writeSuccess(c, fiber.StatusCreated, "item created", item)
	}
}

// ListItems handles GET /items/.
func ListItems(svc service.ItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return writeSuccess(c, fiber.StatusOK, "", items)
	}
}

// GetItem handles GET /items/:id.
func GetItem(svc service.ItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return itemError(c, err)
		}
		return writeSuccess(c, fiber.StatusOK, "", item)
	}
}

// UpdateItem handles PUT /items/:id with merge-on-update semantics.
func UpdateItem(svc service.ItemService, v *validation.Validator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updateItemRequest
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

		item, err := svc.Update(c.UserContext(), c.Params("id"), model.ItemPatch{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
		})
		if err != nil {
			return itemError(c, err)
		}
		return writeSuccess(c, fiber.StatusOK, "item updated", item)
	}
}

// DeleteItem handles DELETE /items/:id.
func DeleteItem(svc service.ItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return itemError(c, err)
		}
		return writeSuccess(c, fiber.StatusOK, "item deleted", nil)
	}
}

// itemError maps service errors onto envelope responses.
func itemError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidID):
		return writeError(c, fiber.StatusBadRequest, "invalid id format")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "item not found")
	default:
		return writeError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
