// Package variantdao provides data access for product variants, their
// per-channel price listings, and the sales report over the order_lines
// fact table.
package variantdao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/segmentio/ksuid"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
)

// Record represents a product variant row. Listing carries the price listing
// the row was matched through and is nil for unrestricted reads.
type Record struct {
	ID                string
	ProductID         string
	Name              string
	SKU               *string
	ExternalReference *string
	TrackInventory    bool
	QuantityAvailable int32

	Listing *ChannelListing
}

// ChannelListing represents a variant's price on one channel.
type ChannelListing struct {
	VariantID   string
	ChannelSlug string
	PriceAmount float64
	Currency    string
}

// SalesRecord pairs a variant with the quantity sold over a reporting
// period.
type SalesRecord struct {
	Record
	QuantityOrdered int32
}

// FindInput identifies a single variant. Exactly one of ID, SKU and
// ExternalReference must be set; the caller validates that upstream.
type FindInput struct {
	ID                *string
	SKU               *string
	ExternalReference *string

	// ChannelSlug scopes the lookup to variants priced on the channel whose
	// product is published there; nil is unrestricted.
	ChannelSlug        *string
	IncludeUnpublished bool
}

// ListInput selects the variant collection for list queries.
type ListInput struct {
	IDs                []string
	ProductID          *string
	ChannelSlug        *string
	IncludeUnpublished bool
}

// CreateInput contains the fields needed to create a variant.
type CreateInput struct {
	ProductID         string
	Name              string
	SKU               *string
	ExternalReference *string
	TrackInventory    bool
	QuantityAvailable int32
}

// UpdateInput contains the fields that can be updated on a variant.
type UpdateInput struct {
	Name              *string
	SKU               *string
	ExternalReference *string
	TrackInventory    *bool
	QuantityAvailable *int32
}

// ListingInput is one entry of a variant channel listing update.
type ListingInput struct {
	ChannelSlug string
	PriceAmount float64
	Currency    string
}

// DAO provides data access operations for product variants.
type DAO struct {
	db *sql.DB
}

// New creates a new DAO instance.
func New(db *sql.DB) *DAO {
	return &DAO{db: db}
}

const variantColumns = `v.id, v.product_id, v.name, v.sku, v.external_reference, v.track_inventory, v.quantity_available`
const listingColumns = `l.variant_id, l.channel_slug, l.price_amount, l.currency`

// channelJoin scopes variants to a channel: the variant must be priced on
// the channel and its product published there (unless unpublished rows are
// included).
func channelJoin(includeUnpublished bool) string {
	join := ` JOIN variant_channel_listings l ON l.variant_id = v.id AND l.channel_slug = ?`
	if !includeUnpublished {
		join += ` JOIN product_channel_listings pl ON pl.product_id = v.product_id AND pl.channel_slug = ? AND pl.published = 1`
	}
	return join
}

// Find looks up a single variant, or ErrNotFound when it does not exist or
// is not visible on the requested channel.
func (d *DAO) Find(ctx context.Context, input FindInput) (Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + variantColumns)
	withListing := input.ChannelSlug != nil
	if withListing {
		query.WriteString(`, ` + listingColumns)
		query.WriteString(` FROM product_variants v`)
		query.WriteString(channelJoin(input.IncludeUnpublished))
		args = append(args, *input.ChannelSlug)
		if !input.IncludeUnpublished {
			args = append(args, *input.ChannelSlug)
		}
	} else {
		query.WriteString(` FROM product_variants v`)
	}

	switch {
	case input.ID != nil:
		query.WriteString(` WHERE v.id = ?`)
		args = append(args, *input.ID)
	case input.SKU != nil:
		query.WriteString(` WHERE v.sku = ?`)
		args = append(args, *input.SKU)
	case input.ExternalReference != nil:
		query.WriteString(` WHERE v.external_reference = ?`)
		args = append(args, *input.ExternalReference)
	default:
		return Record{}, fmt.Errorf("%w: variant lookup needs an identifier", apierrors.ErrInvalidArguments)
	}

	var r Record
	var l ChannelListing
	dest := []any{&r.ID, &r.ProductID, &r.Name, &r.SKU, &r.ExternalReference, &r.TrackInventory, &r.QuantityAvailable}
	if withListing {
		dest = append(dest, &l.VariantID, &l.ChannelSlug, &l.PriceAmount, &l.Currency)
	}
	err := d.db.QueryRowContext(ctx, query.String(), args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("product variant: %w", apierrors.ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to query variant: %w", err)
	}
	if withListing {
		r.Listing = &l
	}
	return r, nil
}

// List returns the variant collection ordered by sku then id.
func (d *DAO) List(ctx context.Context, input ListInput) ([]Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + variantColumns)
	withListing := input.ChannelSlug != nil
	if withListing {
		query.WriteString(`, ` + listingColumns)
	}
	query.WriteString(` FROM product_variants v`)
	if withListing {
		query.WriteString(channelJoin(input.IncludeUnpublished))
		args = append(args, *input.ChannelSlug)
		if !input.IncludeUnpublished {
			args = append(args, *input.ChannelSlug)
		}
	}

	var conditions []string
	if len(input.IDs) > 0 {
		conditions = append(conditions, `v.id IN (`+placeholders(len(input.IDs))+`)`)
		for _, id := range input.IDs {
			args = append(args, id)
		}
	}
	if input.ProductID != nil {
		conditions = append(conditions, `v.product_id = ?`)
		args = append(args, *input.ProductID)
	}
	if len(conditions) > 0 {
		query.WriteString(` WHERE ` + strings.Join(conditions, ` AND `))
	}
	query.WriteString(` ORDER BY v.sku, v.id`)

	rows, err := d.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list variants: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var l ChannelListing
		dest := []any{&r.ID, &r.ProductID, &r.Name, &r.SKU, &r.ExternalReference, &r.TrackInventory, &r.QuantityAvailable}
		if withListing {
			dest = append(dest, &l.VariantID, &l.ChannelSlug, &l.PriceAmount, &l.Currency)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan variant: %w", err)
		}
		if withListing {
			listing := l
			r.Listing = &listing
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ReportSales aggregates order lines per variant on a channel since the
// given unix timestamp, ordered by quantity sold descending with variant id
// as tie-break.
func (d *DAO) ReportSales(ctx context.Context, channelSlug string, sinceUnix int64) ([]SalesRecord, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT `+variantColumns+`, SUM(ol.quantity) AS quantity_ordered
		 FROM product_variants v
		 JOIN order_lines ol ON ol.variant_id = v.id
		 WHERE ol.channel_slug = ? AND ol.created_at >= ?
		 GROUP BY `+variantColumns+`
		 ORDER BY quantity_ordered DESC, v.id ASC`,
		channelSlug, sinceUnix)
	if err != nil {
		return nil, fmt.Errorf("failed to query product sales: %w", err)
	}
	defer rows.Close()

	var records []SalesRecord
	for rows.Next() {
		var r SalesRecord
		if err := rows.Scan(&r.ID, &r.ProductID, &r.Name, &r.SKU, &r.ExternalReference,
			&r.TrackInventory, &r.QuantityAvailable, &r.QuantityOrdered); err != nil {
			return nil, fmt.Errorf("failed to scan sales record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Create inserts a new variant.
func (d *DAO) Create(ctx context.Context, input CreateInput) (Record, error) {
	record := Record{
		ID:                ksuid.New().String(),
		ProductID:         input.ProductID,
		Name:              input.Name,
		SKU:               input.SKU,
		ExternalReference: input.ExternalReference,
		TrackInventory:    input.TrackInventory,
		QuantityAvailable: input.QuantityAvailable,
	}
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO product_variants (id, product_id, name, sku, external_reference, track_inventory, quantity_available) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.ProductID, record.Name, record.SKU, record.ExternalReference,
		record.TrackInventory, record.QuantityAvailable)
	if err != nil {
		return Record{}, fmt.Errorf("failed to create variant: %w", err)
	}
	return record, nil
}

// Update applies the non-nil fields of input and returns the updated row.
func (d *DAO) Update(ctx context.Context, id string, input UpdateInput) (Record, error) {
	existing, err := d.Find(ctx, FindInput{ID: &id})
	if err != nil {
		return Record{}, err
	}
	if input.Name != nil {
		existing.Name = *input.Name
	}
	if input.SKU != nil {
		existing.SKU = input.SKU
	}
	if input.ExternalReference != nil {
		existing.ExternalReference = input.ExternalReference
	}
	if input.TrackInventory != nil {
		existing.TrackInventory = *input.TrackInventory
	}
	if input.QuantityAvailable != nil {
		existing.QuantityAvailable = *input.QuantityAvailable
	}

	_, err = d.db.ExecContext(ctx,
		`UPDATE product_variants SET name = ?, sku = ?, external_reference = ?, track_inventory = ?, quantity_available = ? WHERE id = ?`,
		existing.Name, existing.SKU, existing.ExternalReference, existing.TrackInventory,
		existing.QuantityAvailable, id)
	if err != nil {
		return Record{}, fmt.Errorf("failed to update variant: %w", err)
	}
	return existing, nil
}

// Delete removes a variant together with its listings.
func (d *DAO) Delete(ctx context.Context, id string) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM variant_channel_listings WHERE variant_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete variant listings: %w", err)
	}
	if _, err := d.db.ExecContext(ctx, `DELETE FROM product_variants WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete variant: %w", err)
	}
	return nil
}

// UpsertListings replaces or inserts price listings for a variant.
func (d *DAO) UpsertListings(ctx context.Context, variantID string, listings []ListingInput) error {
	for _, l := range listings {
		_, err := d.db.ExecContext(ctx,
			`REPLACE INTO variant_channel_listings (variant_id, channel_slug, price_amount, currency) VALUES (?, ?, ?, ?)`,
			variantID, l.ChannelSlug, l.PriceAmount, l.Currency)
		if err != nil {
			return fmt.Errorf("failed to upsert variant listing for channel %s: %w", l.ChannelSlug, err)
		}
	}
	return nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
