// Package categorydao provides data access for the category tree.
// Categories are channel-agnostic: every requestor sees the same tree.
package categorydao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/segmentio/ksuid"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
)

// Record represents a category row. Level is the nesting depth in the
// category tree, root categories being level 0.
type Record struct {
	ID          string
	Name        string
	Slug        string
	Description string
	ParentID    *string
	Level       int32
}

// CreateInput contains the fields needed to create a category.
type CreateInput struct {
	Name        string
	Slug        string
	Description string
	ParentID    *string
}

// UpdateInput contains the fields that can be updated on a category.
type UpdateInput struct {
	Name        *string
	Slug        *string
	Description *string
}

// DAO provides data access operations for categories.
type DAO struct {
	db *sql.DB
}

// New creates a new DAO instance.
func New(db *sql.DB) *DAO {
	return &DAO{db: db}
}

const selectColumns = `id, name, slug, description, parent_id, level`

// FindByID looks up a category by its internal key.
func (d *DAO) FindByID(ctx context.Context, id string) (Record, error) {
	return d.findOne(ctx, `SELECT `+selectColumns+` FROM categories WHERE id = ?`, id)
}

// FindBySlug looks up a category by slug.
func (d *DAO) FindBySlug(ctx context.Context, slug string) (Record, error) {
	return d.findOne(ctx, `SELECT `+selectColumns+` FROM categories WHERE slug = ?`, slug)
}

func (d *DAO) findOne(ctx context.Context, query string, arg any) (Record, error) {
	var r Record
	err := d.db.QueryRowContext(ctx, query, arg).
		Scan(&r.ID, &r.Name, &r.Slug, &r.Description, &r.ParentID, &r.Level)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("category: %w", apierrors.ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to query category: %w", err)
	}
	return r, nil
}

// List returns categories ordered by slug then id, optionally restricted to
// one nesting level.
func (d *DAO) List(ctx context.Context, level *int32) ([]Record, error) {
	query := `SELECT ` + selectColumns + ` FROM categories`
	var args []any
	if level != nil {
		query += ` WHERE level = ?`
		args = append(args, *level)
	}
	query += ` ORDER BY slug, id`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()
	return scanAll(rows)
}

// ListChildren returns the direct children of a category.
func (d *DAO) ListChildren(ctx context.Context, parentID string) ([]Record, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM categories WHERE parent_id = ? ORDER BY slug, id`, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list child categories: %w", err)
	}
	defer rows.Close()
	return scanAll(rows)
}

func scanAll(rows *sql.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Name, &r.Slug, &r.Description, &r.ParentID, &r.Level); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Create inserts a new category. The level is derived from the parent.
func (d *DAO) Create(ctx context.Context, input CreateInput) (Record, error) {
	record := Record{
		ID:          ksuid.New().String(),
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		ParentID:    input.ParentID,
	}
	if input.ParentID != nil {
		parent, err := d.FindByID(ctx, *input.ParentID)
		if err != nil {
			return Record{}, err
		}
		record.Level = parent.Level + 1
	}

	_, err := d.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, slug, description, parent_id, level) VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID, record.Name, record.Slug, record.Description, record.ParentID, record.Level)
	if err != nil {
		return Record{}, fmt.Errorf("failed to create category: %w", err)
	}
	return record, nil
}

// Update applies the non-nil fields of input and returns the updated row.
func (d *DAO) Update(ctx context.Context, id string, input UpdateInput) (Record, error) {
	existing, err := d.FindByID(ctx, id)
	if err != nil {
		return Record{}, err
	}
	if input.Name != nil {
		existing.Name = *input.Name
	}
	if input.Slug != nil {
		existing.Slug = *input.Slug
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}

	_, err = d.db.ExecContext(ctx,
		`UPDATE categories SET name = ?, slug = ?, description = ? WHERE id = ?`,
		existing.Name, existing.Slug, existing.Description, id)
	if err != nil {
		return Record{}, fmt.Errorf("failed to update category: %w", err)
	}
	return existing, nil
}

// Delete removes a category. Children are re-parented to the deleted
// category's parent so the tree stays connected.
func (d *DAO) Delete(ctx context.Context, id string) error {
	existing, err := d.FindByID(ctx, id)
	if err != nil {
		return err
	}

	_, err = d.db.ExecContext(ctx,
		`UPDATE categories SET parent_id = ?, level = level - 1 WHERE parent_id = ?`,
		existing.ParentID, id)
	if err != nil {
		return fmt.Errorf("failed to reparent child categories: %w", err)
	}

	if _, err := d.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
