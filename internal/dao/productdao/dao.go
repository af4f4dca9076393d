// Package productdao provides data access for products and their per-channel
// listings. Channel scoping happens here: unprivileged reads only see rows
// published on the requested channel, while privileged reads may include
// unpublished ones.
package productdao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/ksuid"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
)

// Record represents a product row. Listing carries the channel listing the
// row was matched through and is nil for unrestricted (channel-less) reads.
type Record struct {
	ID                string
	Name              string
	Slug              string
	Description       string
	ProductTypeID     string
	CategoryID        *string
	DefaultVariantID  *string
	ExternalReference *string
	CreatedAt         int64

	Listing *ChannelListing
}

// ChannelListing represents a product's visibility and price on one channel.
type ChannelListing struct {
	ProductID            string
	ChannelSlug          string
	Published            bool
	VisibleInListings    bool
	AvailableForPurchase bool
	PriceAmount          *float64
	Currency             *string
}

// FindInput identifies a single product. Exactly one of ID, Slug and
// ExternalReference must be set; the caller validates that upstream.
type FindInput struct {
	ID                *string
	Slug              *string
	ExternalReference *string

	// ChannelSlug scopes the lookup to one channel; nil is unrestricted.
	ChannelSlug *string
	// IncludeUnpublished lifts the published-on-channel requirement.
	IncludeUnpublished bool
}

// ListInput selects the product collection for list queries. ID sets narrow
// the collection DB-side; free-text search and the remaining predicates are
// applied by the filter engine on the returned records.
type ListInput struct {
	ChannelSlug        *string
	IncludeUnpublished bool
	CategoryIDs        []string
	CollectionIDs      []string
	ProductTypeIDs     []string
}

// CreateInput contains the fields needed to create a product.
type CreateInput struct {
	Name              string
	Slug              string
	Description       string
	ProductTypeID     string
	CategoryID        *string
	ExternalReference *string
}

// UpdateInput contains the fields that can be updated on a product.
type UpdateInput struct {
	Name              *string
	Slug              *string
	Description       *string
	CategoryID        *string
	ExternalReference *string
}

// ListingInput is one entry of a channel listing update.
type ListingInput struct {
	ChannelSlug          string
	Published            bool
	VisibleInListings    bool
	AvailableForPurchase bool
	PriceAmount          *float64
	Currency             *string
}

// DAO provides data access operations for products.
type DAO struct {
	db *sql.DB
}

// New creates a new DAO instance.
func New(db *sql.DB) *DAO {
	return &DAO{db: db}
}

const productColumns = `p.id, p.name, p.slug, p.description, p.product_type_id, p.category_id, p.default_variant_id, p.external_reference, p.created_at`
const listingColumns = `l.product_id, l.channel_slug, l.published, l.visible_in_listings, l.available_for_purchase, l.price_amount, l.currency`

// Find looks up a single product, or ErrNotFound when it does not exist or
// is not visible on the requested channel.
func (d *DAO) Find(ctx context.Context, input FindInput) (Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + productColumns)
	if input.ChannelSlug != nil {
		query.WriteString(`, ` + listingColumns)
		query.WriteString(` FROM products p JOIN product_channel_listings l ON l.product_id = p.id AND l.channel_slug = ?`)
		args = append(args, *input.ChannelSlug)
		if !input.IncludeUnpublished {
			query.WriteString(` AND l.published = 1`)
		}
	} else {
		query.WriteString(` FROM products p`)
	}

	switch {
	case input.ID != nil:
		query.WriteString(` WHERE p.id = ?`)
		args = append(args, *input.ID)
	case input.Slug != nil:
		query.WriteString(` WHERE p.slug = ?`)
		args = append(args, *input.Slug)
	case input.ExternalReference != nil:
		query.WriteString(` WHERE p.external_reference = ?`)
		args = append(args, *input.ExternalReference)
	default:
		return Record{}, fmt.Errorf("%w: product lookup needs an identifier", apierrors.ErrInvalidArguments)
	}

	row := d.db.QueryRowContext(ctx, query.String(), args...)
	record, err := scanRecord(row, input.ChannelSlug != nil)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("product: %w", apierrors.ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to query product: %w", err)
	}
	return record, nil
}

// List returns the product collection ordered by slug then id. The filter
// engine re-orders and further narrows the result.
func (d *DAO) List(ctx context.Context, input ListInput) ([]Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + productColumns)
	withListing := input.ChannelSlug != nil
	if withListing {
		query.WriteString(`, ` + listingColumns)
	}
	query.WriteString(` FROM products p`)
	if withListing {
		query.WriteString(` JOIN product_channel_listings l ON l.product_id = p.id AND l.channel_slug = ?`)
		args = append(args, *input.ChannelSlug)
		if !input.IncludeUnpublished {
			query.WriteString(` AND l.published = 1`)
		}
	}
	if len(input.CollectionIDs) > 0 {
		query.WriteString(` JOIN collection_products cp ON cp.product_id = p.id AND cp.collection_id IN (` + placeholders(len(input.CollectionIDs)) + `)`)
		for _, id := range input.CollectionIDs {
			args = append(args, id)
		}
	}

	var conditions []string
	if len(input.CategoryIDs) > 0 {
		conditions = append(conditions, `p.category_id IN (`+placeholders(len(input.CategoryIDs))+`)`)
		for _, id := range input.CategoryIDs {
			args = append(args, id)
		}
	}
	if len(input.ProductTypeIDs) > 0 {
		conditions = append(conditions, `p.product_type_id IN (`+placeholders(len(input.ProductTypeIDs))+`)`)
		for _, id := range input.ProductTypeIDs {
			args = append(args, id)
		}
	}
	if len(conditions) > 0 {
		query.WriteString(` WHERE ` + strings.Join(conditions, ` AND `))
	}
	query.WriteString(` ORDER BY p.slug, p.id`)

	rows, err := d.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecordRows(rows, withListing)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Listings returns all channel listings of a product.
func (d *DAO) Listings(ctx context.Context, productID string) ([]ChannelListing, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT `+listingColumns+` FROM product_channel_listings l WHERE l.product_id = ? ORDER BY l.channel_slug`,
		productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query product listings: %w", err)
	}
	defer rows.Close()

	var listings []ChannelListing
	for rows.Next() {
		var l ChannelListing
		if err := rows.Scan(&l.ProductID, &l.ChannelSlug, &l.Published, &l.VisibleInListings,
			&l.AvailableForPurchase, &l.PriceAmount, &l.Currency); err != nil {
			return nil, fmt.Errorf("failed to scan product listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// Create inserts a new product. The product starts without channel listings
// and is therefore invisible to unprivileged callers until one is published.
func (d *DAO) Create(ctx context.Context, input CreateInput) (Record, error) {
	record := Record{
		ID:                ksuid.New().String(),
		Name:              input.Name,
		Slug:              input.Slug,
		Description:       input.Description,
		ProductTypeID:     input.ProductTypeID,
		CategoryID:        input.CategoryID,
		ExternalReference: input.ExternalReference,
		CreatedAt:         time.Now().Unix(),
	}
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO products (id, name, slug, description, product_type_id, category_id, external_reference, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.Name, record.Slug, record.Description, record.ProductTypeID,
		record.CategoryID, record.ExternalReference, record.CreatedAt)
	if err != nil {
		return Record{}, fmt.Errorf("failed to create product: %w", err)
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
	if input.CategoryID != nil {
		existing.CategoryID = input.CategoryID
	}
	if input.ExternalReference != nil {
		existing.ExternalReference = input.ExternalReference
	}

	_, err = d.db.ExecContext(ctx,
		`UPDATE products SET name = ?, slug = ?, description = ?, category_id = ?, external_reference = ? WHERE id = ?`,
		existing.Name, existing.Slug, existing.Description, existing.CategoryID, existing.ExternalReference, id)
	if err != nil {
		return Record{}, fmt.Errorf("failed to update product: %w", err)
	}
	return existing, nil
}

// SetDefaultVariant records which variant is the product's default.
func (d *DAO) SetDefaultVariant(ctx context.Context, productID string, variantID *string) error {
	_, err := d.db.ExecContext(ctx,
		`UPDATE products SET default_variant_id = ? WHERE id = ?`, variantID, productID)
	if err != nil {
		return fmt.Errorf("failed to set default variant: %w", err)
	}
	return nil
}

// UpsertListings replaces or inserts channel listings for a product.
func (d *DAO) UpsertListings(ctx context.Context, productID string, listings []ListingInput) error {
	for _, l := range listings {
		_, err := d.db.ExecContext(ctx,
			`REPLACE INTO product_channel_listings (product_id, channel_slug, published, visible_in_listings, available_for_purchase, price_amount, currency) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			productID, l.ChannelSlug, l.Published, l.VisibleInListings, l.AvailableForPurchase, l.PriceAmount, l.Currency)
		if err != nil {
			return fmt.Errorf("failed to upsert product listing for channel %s: %w", l.ChannelSlug, err)
		}
	}
	return nil
}

// RemoveListings deletes a product's listings on the given channels.
func (d *DAO) RemoveListings(ctx context.Context, productID string, channelSlugs []string) error {
	if len(channelSlugs) == 0 {
		return nil
	}
	args := []any{productID}
	for _, slug := range channelSlugs {
		args = append(args, slug)
	}
	_, err := d.db.ExecContext(ctx,
		`DELETE FROM product_channel_listings WHERE product_id = ? AND channel_slug IN (`+placeholders(len(channelSlugs))+`)`,
		args...)
	if err != nil {
		return fmt.Errorf("failed to remove product listings: %w", err)
	}
	return nil
}

// Delete removes a product together with its listings and collection links.
func (d *DAO) Delete(ctx context.Context, id string) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM product_channel_listings WHERE product_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete product listings: %w", err)
	}
	if _, err := d.db.ExecContext(ctx, `DELETE FROM collection_products WHERE product_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete collection links: %w", err)
	}
	if _, err := d.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row *sql.Row, withListing bool) (Record, error) {
	return scanInto(row, withListing)
}

func scanRecordRows(rows *sql.Rows, withListing bool) (Record, error) {
	record, err := scanInto(rows, withListing)
	if err != nil {
		return Record{}, fmt.Errorf("failed to scan product: %w", err)
	}
	return record, nil
}

func scanInto(s scanner, withListing bool) (Record, error) {
	var r Record
	dest := []any{&r.ID, &r.Name, &r.Slug, &r.Description, &r.ProductTypeID,
		&r.CategoryID, &r.DefaultVariantID, &r.ExternalReference, &r.CreatedAt}
	var l ChannelListing
	if withListing {
		dest = append(dest, &l.ProductID, &l.ChannelSlug, &l.Published,
			&l.VisibleInListings, &l.AvailableForPurchase, &l.PriceAmount, &l.Currency)
	}
	if err := s.Scan(dest...); err != nil {
		return Record{}, err
	}
	if withListing {
		r.Listing = &l
	}
	return r, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
