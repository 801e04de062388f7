package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"itemapi/internal/model"
	"itemapi/internal/repository"
)

// ItemPostgres is a PostgreSQL implementation of repository.ItemRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ItemPostgres struct {
	db *sql.DB
}

// NewItemPostgres creates a new ItemPostgres repository.
func NewItemPostgres(db *sql.DB) *ItemPostgres {
	return &ItemPostgres{db: db}
}

var _ repository.ItemRepository = (*ItemPostgres)(nil)

// Create inserts a new item row. The id comes from the table default, so it is
// never taken from the caller.
func (r *ItemPostgres) Create(ctx context.Context, item *model.Item) (*model.Item, error) {
	const q = `
		INSERT INTO items (name, description, price)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, price
	`
	row := r.db.QueryRowContext(ctx, q, item.Name, item.Description, item.Price)
	var out model.Item
	if err := row.Scan(&out.ID, &out.Name, &out.Description, &out.Price); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single item by its ID.
func (r *ItemPostgres) FindByID(ctx context.Context, id string) (*model.Item, error) {
	const q = `
		SELECT id, name, description, price
		FROM items
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var it model.Item
	if err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Price); err != nil {
		return nil, err
	}
	return &it, nil
}

// List returns up to limit items in store order.
func (r *ItemPostgres) List(ctx context.Context, limit int) ([]model.Item, error) {
	const q = `
		SELECT id, name, description, price
		FROM items
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update overwrites only the fields present in the patch. An empty patch issues
// no UPDATE statement; the current row is read back and returned as-is, so a
// no-op update costs a single SELECT and changes nothing in the store.
func (r *ItemPostgres) Update(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error) {
	if patch.Empty() {
		return r.FindByID(ctx, id)
	}

	set := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if patch.Name != nil {
		args = append(args, *patch.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		set = append(set, fmt.Sprintf("description = $%d", len(args)))
	}
	if patch.Price != nil {
		args = append(args, *patch.Price)
		set = append(set, fmt.Sprintf("price = $%d", len(args)))
	}
	args = append(args, id)

	q := fmt.Sprintf(`
		UPDATE items
		SET %s
		WHERE id = $%d
		RETURNING id, name, description, price
	`, strings.Join(set, ", "), len(args))

	row := r.db.QueryRowContext(ctx, q, args...)
	var it model.Item
	if err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Price); err != nil {
		return nil, err
	}
	return &it, nil
}

// Delete removes an item by ID and reports the number of rows affected.
func (r *ItemPostgres) Delete(ctx context.Context, id string) (int64, error) {
	const q = `DELETE FROM items WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
