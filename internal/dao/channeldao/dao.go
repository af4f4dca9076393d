// Package channeldao provides data access for sales channels.
package channeldao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/segmentio/ksuid"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
)

// Record represents a sales channel row.
type Record struct {
	ID           string
	Slug         string
	Name         string
	CurrencyCode string
	IsDefault    bool
}

// CreateInput contains the fields needed to create a channel.
type CreateInput struct {
	Slug         string
	Name         string
	CurrencyCode string
	IsDefault    bool
}

// DAO provides data access operations for channels.
type DAO struct {
	db *sql.DB
}

// New creates a new DAO instance.
func New(db *sql.DB) *DAO {
	return &DAO{db: db}
}

const selectColumns = `id, slug, name, currency_code, is_default`

func scanRecord(row *sql.Row) (Record, error) {
	var r Record
	err := row.Scan(&r.ID, &r.Slug, &r.Name, &r.CurrencyCode, &r.IsDefault)
	return r, err
}

// FindBySlug looks up a channel by slug.
func (d *DAO) FindBySlug(ctx context.Context, slug string) (Record, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM channels WHERE slug = ?`, slug)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("channel %q: %w", slug, apierrors.ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to query channel: %w", err)
	}
	return record, nil
}

// DefaultSlug returns the slug of the channel flagged as default.
func (d *DAO) DefaultSlug(ctx context.Context) (string, error) {
	var slug string
	err := d.db.QueryRowContext(ctx,
		`SELECT slug FROM channels WHERE is_default = 1 LIMIT 1`).Scan(&slug)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apierrors.ErrNoDefaultChannel
	}
	if err != nil {
		return "", fmt.Errorf("failed to query default channel: %w", err)
	}
	return slug, nil
}

// List returns all channels ordered by slug.
func (d *DAO) List(ctx context.Context) ([]Record, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM channels ORDER BY slug, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Slug, &r.Name, &r.CurrencyCode, &r.IsDefault); err != nil {
			return nil, fmt.Errorf("failed to scan channel: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Create inserts a new channel.
func (d *DAO) Create(ctx context.Context, input CreateInput) (Record, error) {
	record := Record{
		ID:           ksuid.New().String(),
		Slug:         input.Slug,
		Name:         input.Name,
		CurrencyCode: input.CurrencyCode,
		IsDefault:    input.IsDefault,
	}
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO channels (id, slug, name, currency_code, is_default) VALUES (?, ?, ?, ?, ?)`,
		record.ID, record.Slug, record.Name, record.CurrencyCode, record.IsDefault)
	if err != nil {
		return Record{}, fmt.Errorf("failed to create channel: %w", err)
	}
	return record, nil
}
