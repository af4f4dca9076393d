// Package producttypedao provides data access for product types.
// Product types are channel-agnostic.
package producttypedao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/segmentio/ksuid"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
)

// Kind classifies a product type.
type Kind string

const (
	KindNormal   Kind = "NORMAL"
	KindGiftCard Kind = "GIFT_CARD"
)

// Record represents a product type row.
type Record struct {
	ID                 string
	Name               string
	Slug               string
	Kind               Kind
	IsShippingRequired bool
	IsDigital          bool
	HasVariants        bool
}

// CreateInput contains the fields needed to create a product type.
type CreateInput struct {
	Name               string
	Slug               string
	Kind               Kind
	IsShippingRequired bool
	IsDigital          bool
	HasVariants        bool
}

// UpdateInput contains the fields that can be updated on a product type.
type UpdateInput struct {
	Name               *string
	Slug               *string
	IsShippingRequired *bool
	IsDigital          *bool
}

// DAO provides data access operations for product types.
type DAO struct {
	db *sql.DB
}

// New creates a new DAO instance.
func New(db *sql.DB) *DAO {
	return &DAO{db: db}
}

const selectColumns = `id, name, slug, kind, is_shipping_required, is_digital, has_variants`

// FindByID looks up a product type by its internal key.
func (d *DAO) FindByID(ctx context.Context, id string) (Record, error) {
	var r Record
	err := d.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM product_types WHERE id = ?`, id).
		Scan(&r.ID, &r.Name, &r.Slug, &r.Kind, &r.IsShippingRequired, &r.IsDigital, &r.HasVariants)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("product type: %w", apierrors.ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to query product type: %w", err)
	}
	return r, nil
}

// List returns all product types ordered by slug then id.
func (d *DAO) List(ctx context.Context) ([]Record, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM product_types ORDER BY slug, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list product types: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Name, &r.Slug, &r.Kind, &r.IsShippingRequired, &r.IsDigital, &r.HasVariants); err != nil {
			return nil, fmt.Errorf("failed to scan product type: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Create inserts a new product type.
func (d *DAO) Create(ctx context.Context, input CreateInput) (Record, error) {
	kind := input.Kind
	if kind == "" {
		kind = KindNormal
	}
	record := Record{
		ID:                 ksuid.New().String(),
		Name:               input.Name,
		Slug:               input.Slug,
		Kind:               kind,
		IsShippingRequired: input.IsShippingRequired,
		IsDigital:          input.IsDigital,
		HasVariants:        input.HasVariants,
	}
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO product_types (id, name, slug, kind, is_shipping_required, is_digital, has_variants) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.Name, record.Slug, record.Kind, record.IsShippingRequired, record.IsDigital, record.HasVariants)
	if err != nil {
		return Record{}, fmt.Errorf("failed to create product type: %w", err)
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
	if input.IsShippingRequired != nil {
		existing.IsShippingRequired = *input.IsShippingRequired
	}
	if input.IsDigital != nil {
		existing.IsDigital = *input.IsDigital
	}

	_, err = d.db.ExecContext(ctx,
		`UPDATE product_types SET name = ?, slug = ?, is_shipping_required = ?, is_digital = ? WHERE id = ?`,
		existing.Name, existing.Slug, existing.IsShippingRequired, existing.IsDigital, id)
	if err != nil {
		return Record{}, fmt.Errorf("failed to update product type: %w", err)
	}
	return existing, nil
}

// Delete removes a product type. Products referencing it keep their rows;
// the caller decides whether dangling references are acceptable.
func (d *DAO) Delete(ctx context.Context, id string) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM product_types WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete product type: %w", err)
	}
	return nil
}
