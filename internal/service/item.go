package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"itemapi/internal/model"
	"itemapi/internal/repository"
)

var (
	ErrInvalidID = errors.New("invalid id format")
	ErrNotFound  = errors.New("record not found")
)

// ItemService defines the use cases for the item resource.
// Identifier validation always runs before any store access, so malformed ids
// never reach the repository.
type ItemService interface {
	// Create stores a new item and returns it with the store-assigned id.
	Create(ctx context.Context, item *model.Item) (*model.Item, error)

	// Get returns a single item by its ID.
	Get(ctx context.Context, id string) (*model.Item, error)

	// List returns up to the configured limit of items.
	List(ctx context.Context) ([]model.Item, error)

	// Update merges the non-nil patch fields into the stored item and returns the result.
	Update(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error)

	// Delete removes an item by ID.
	Delete(ctx context.Context, id string) error
}

// itemService is a concrete implementation of ItemService.
type itemService struct {
	repo      repository.ItemRepository
	listLimit int
}

// NewItemService constructs a new ItemService. listLimit bounds List results;
// values <= 0 fall back to 100.
func NewItemService(repo repository.ItemRepository, listLimit int) ItemService {
	if listLimit <= 0 {
		listLimit = 100
	}
	return &itemService{repo: repo, listLimit: listLimit}
}

// ParseID validates that raw is a well-formed identifier. It runs before any
// store access so malformed input surfaces as a client error, not a store error.
func ParseID(raw string) (string, error) {
	if _, err := uuid.Parse(raw); err != nil {
		return "", ErrInvalidID
	}
	return raw, nil
}

func (s *itemService) Create(ctx context.Context, item *model.Item) (*model.Item, error) {
	return s.repo.Create(ctx, item)
}

func (s *itemService) Get(ctx context.Context, id string) (*model.Item, error) {
	parsed, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	item, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) List(ctx context.Context) ([]model.Item, error) {
	return s.repo.List(ctx, s.listLimit)
}

// Update applies a partial patch. The repository skips the write entirely when
// the patch is empty, so a no-op update still returns the current record with
// success semantics but touches nothing in the store.
func (s *itemService) Update(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error) {
	parsed, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	item, err := s.repo.Update(ctx, parsed, patch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// Delete removes an item. A zero deleted count is translated to ErrNotFound
// here; the repository itself treats it as a normal outcome.
func (s *itemService) Delete(ctx context.Context, id string) error {
	parsed, err := ParseID(id)
	if err != nil {
		return err
	}
	deleted, err := s.repo.Delete(ctx, parsed)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}
