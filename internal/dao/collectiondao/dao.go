// Package collectiondao provides data access for product collections and
// their per-channel listings.
package collectiondao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/segmentio/ksuid"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
)

// Record represents a collection row. Listing is set when the row was
// resolved through a channel listing.
type Record struct {
	ID          string
	Name        string
	Slug        string
	Description string

	Listing *ChannelListing
}

// ChannelListing represents a collection's visibility on one channel.
type ChannelListing struct {
	CollectionID string
	ChannelSlug  string
	Published    bool
}

// FindInput identifies a single collection by ID or slug.
type FindInput struct {
	ID   *string
	Slug *string

	ChannelSlug        *string
	IncludeUnpublished bool
}

// CreateInput contains the fields needed to create a collection.
type CreateInput struct {
	Name        string
	Slug        string
	Description string
}

// UpdateInput contains the fields that can be updated on a collection.
type UpdateInput struct {
	Name        *string
	Slug        *string
	Description *string
}

// ListingInput is one entry of a collection channel listing update.
type ListingInput struct {
	ChannelSlug string
	Published   bool
}

// DAO provides data access operations for collections.
type DAO struct {
	db *sql.DB
}

// New creates a new DAO instance.
func New(db *sql.DB) *DAO {
	return &DAO{db: db}
}

const collectionColumns = `c.id, c.name, c.slug, c.description`
const listingColumns = `l.collection_id, l.channel_slug, l.published`

// Find looks up a single collection, honoring channel visibility.
func (d *DAO) Find(ctx context.Context, input FindInput) (Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + collectionColumns)
	withListing := input.ChannelSlug != nil
	if withListing {
		query.WriteString(`, ` + listingColumns)
		query.WriteString(` FROM collections c JOIN collection_channel_listings l ON l.collection_id = c.id AND l.channel_slug = ?`)
		args = append(args, *input.ChannelSlug)
		if !input.IncludeUnpublished {
			query.WriteString(` AND l.published = 1`)
		}
	} else {
		query.WriteString(` FROM collections c`)
	}

	switch {
	case input.ID != nil:
		query.WriteString(` WHERE c.id = ?`)
		args = append(args, *input.ID)
	case input.Slug != nil:
		query.WriteString(` WHERE c.slug = ?`)
		args = append(args, *input.Slug)
	default:
		return Record{}, fmt.Errorf("%w: collection lookup needs an identifier", apierrors.ErrInvalidArguments)
	}

	var r Record
	var l ChannelListing
	dest := []any{&r.ID, &r.Name, &r.Slug, &r.Description}
	if withListing {
		dest = append(dest, &l.CollectionID, &l.ChannelSlug, &l.Published)
	}
	err := d.db.QueryRowContext(ctx, query.String(), args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("collection: %w", apierrors.ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to query collection: %w", err)
	}
	if withListing {
		r.Listing = &l
	}
	return r, nil
}

// List returns the collection set ordered by slug then id, scoped to a
// channel when one is given.
func (d *DAO) List(ctx context.Context, channelSlug *string, includeUnpublished bool) ([]Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + collectionColumns)
	withListing := channelSlug != nil
	if withListing {
		query.WriteString(`, ` + listingColumns)
		query.WriteString(` FROM collections c JOIN collection_channel_listings l ON l.collection_id = c.id AND l.channel_slug = ?`)
		args = append(args, *channelSlug)
		if !includeUnpublished {
			query.WriteString(` AND l.published = 1`)
		}
	} else {
		query.WriteString(` FROM collections c`)
	}
	query.WriteString(` ORDER BY c.slug, c.id`)

	rows, err := d.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var l ChannelListing
		dest := []any{&r.ID, &r.Name, &r.Slug, &r.Description}
		if withListing {
			dest = append(dest, &l.CollectionID, &l.ChannelSlug, &l.Published)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan collection: %w", err)
		}
		if withListing {
			listing := l
			r.Listing = &listing
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Create inserts a new collection.
func (d *DAO) Create(ctx context.Context, input CreateInput) (Record, error) {
	record := Record{
		ID:          ksuid.New().String(),
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
	}
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO collections (id, name, slug, description) VALUES (?, ?, ?, ?)`,
		record.ID, record.Name, record.Slug, record.Description)
	if err != nil {
		return Record{}, fmt.Errorf("failed to create collection: %w", err)
	}
	return record, nil
}

// Update applies the non-nil fields of input and returns the updated row.
func (d *DAO) Update(ctx context.Context, id string, input UpdateInput) (Record, error) {
	existing, err := d.Find(ctx, FindInput{ID: &id, IncludeUnpublished: true})
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
		`UPDATE collections SET name = ?, slug = ?, description = ? WHERE id = ?`,
		existing.Name, existing.Slug, existing.Description, id)
	if err != nil {
		return Record{}, fmt.Errorf("failed to update collection: %w", err)
	}
	return existing, nil
}

// Delete removes a collection together with its listings and product links.
func (d *DAO) Delete(ctx context.Context, id string) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM collection_channel_listings WHERE collection_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete collection listings: %w", err)
	}
	if _, err := d.db.ExecContext(ctx, `DELETE FROM collection_products WHERE collection_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete collection links: %w", err)
	}
	if _, err := d.db.ExecContext(ctx, `DELETE FROM collections WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	return nil
}

// AddProducts links products to a collection; existing links are kept.
func (d *DAO) AddProducts(ctx context.Context, collectionID string, productIDs []string) error {
	for _, productID := range productIDs {
		_, err := d.db.ExecContext(ctx,
			`INSERT IGNORE INTO collection_products (collection_id, product_id) VALUES (?, ?)`,
			collectionID, productID)
		if err != nil {
			return fmt.Errorf("failed to add product %s to collection: %w", productID, err)
		}
	}
	return nil
}

// RemoveProducts unlinks products from a collection.
func (d *DAO) RemoveProducts(ctx context.Context, collectionID string, productIDs []string) error {
	if len(productIDs) == 0 {
		return nil
	}
	args := []any{collectionID}
	for _, id := range productIDs {
		args = append(args, id)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(productIDs)), ", ")
	_, err := d.db.ExecContext(ctx,
		`DELETE FROM collection_products WHERE collection_id = ? AND product_id IN (`+placeholders+`)`,
		args...)
	if err != nil {
		return fmt.Errorf("failed to remove products from collection: %w", err)
	}
	return nil
}

// UpsertListings replaces or inserts channel listings for a collection.
func (d *DAO) UpsertListings(ctx context.Context, collectionID string, listings []ListingInput) error {
	for _, l := range listings {
		_, err := d.db.ExecContext(ctx,
			`REPLACE INTO collection_channel_listings (collection_id, channel_slug, published) VALUES (?, ?, ?)`,
			collectionID, l.ChannelSlug, l.Published)
		if err != nil {
			return fmt.Errorf("failed to upsert collection listing for channel %s: %w", l.ChannelSlug, err)
		}
	}
	return nil
}
