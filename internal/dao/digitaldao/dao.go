// Package digitaldao provides data access for digital content attached to
// product variants. Digital content is channel-agnostic and only visible to
// callers holding catalog management permissions.
package digitaldao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/segmentio/ksuid"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
)

// Record represents a digital content row.
type Record struct {
	ID                 string
	VariantID          string
	ContentFile        string
	UseDefaultSettings bool
	MaxDownloads       *int32
	URLValidDays       *int32
}

// CreateInput contains the fields needed to attach digital content to a
// variant.
type CreateInput struct {
	VariantID          string
	ContentFile        string
	UseDefaultSettings bool
	MaxDownloads       *int32
	URLValidDays       *int32
}

// DAO provides data access operations for digital content.
type DAO struct {
	db *sql.DB
}

// New creates a new DAO instance.
func New(db *sql.DB) *DAO {
	return &DAO{db: db}
}

const selectColumns = `id, variant_id, content_file, use_default_settings, max_downloads, url_valid_days`

// FindByID looks up digital content by its internal key.
func (d *DAO) FindByID(ctx context.Context, id string) (Record, error) {
	return d.findOne(ctx, `SELECT `+selectColumns+` FROM digital_contents WHERE id = ?`, id)
}

// FindByVariant looks up the digital content attached to a variant.
func (d *DAO) FindByVariant(ctx context.Context, variantID string) (Record, error) {
	return d.findOne(ctx, `SELECT `+selectColumns+` FROM digital_contents WHERE variant_id = ?`, variantID)
}

func (d *DAO) findOne(ctx context.Context, query string, arg any) (Record, error) {
	var r Record
	err := d.db.QueryRowContext(ctx, query, arg).
		Scan(&r.ID, &r.VariantID, &r.ContentFile, &r.UseDefaultSettings, &r.MaxDownloads, &r.URLValidDays)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("digital content: %w", apierrors.ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to query digital content: %w", err)
	}
	return r, nil
}

// List returns all digital content ordered by id.
func (d *DAO) List(ctx context.Context) ([]Record, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM digital_contents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list digital contents: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.VariantID, &r.ContentFile, &r.UseDefaultSettings, &r.MaxDownloads, &r.URLValidDays); err != nil {
			return nil, fmt.Errorf("failed to scan digital content: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Create attaches digital content to a variant. A variant holds at most one
// digital content row; the unique constraint enforces it.
func (d *DAO) Create(ctx context.Context, input CreateInput) (Record, error) {
	record := Record{
		ID:                 ksuid.New().String(),
		VariantID:          input.VariantID,
		ContentFile:        input.ContentFile,
		UseDefaultSettings: input.UseDefaultSettings,
		MaxDownloads:       input.MaxDownloads,
		URLValidDays:       input.URLValidDays,
	}
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO digital_contents (id, variant_id, content_file, use_default_settings, max_downloads, url_valid_days) VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID, record.VariantID, record.ContentFile, record.UseDefaultSettings,
		record.MaxDownloads, record.URLValidDays)
	if err != nil {
		return Record{}, fmt.Errorf("failed to create digital content: %w", err)
	}
	return record, nil
}

// Delete removes digital content.
func (d *DAO) Delete(ctx context.Context, id string) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM digital_contents WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete digital content: %w", err)
	}
	return nil
}
