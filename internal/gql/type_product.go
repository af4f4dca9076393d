package gql

import (
	"context"
	stderrors "errors"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/tidemark/catalog-api/internal/authz"
	"github.com/tidemark/catalog-api/internal/dao/productdao"
	"github.com/tidemark/catalog-api/internal/dao/variantdao"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
	"github.com/tidemark/catalog-api/internal/globalid"
)

// ProductResolver resolves the Product GraphQL type. The resolver carries
// the channel slug the product was resolved under so that variant and
// pricing fields stay scoped to the same channel.
type ProductResolver struct {
	root        *Resolver
	record      productdao.Record
	channelSlug *string
}

func newProductResolver(root *Resolver, record productdao.Record, channelSlug *string) *ProductResolver {
	return &ProductResolver{root: root, record: record, channelSlug: channelSlug}
}

// ID resolves the id field
func (r *ProductResolver) ID() graphql.ID {
	return graphql.ID(globalid.Encode(globalid.TypeProduct, r.record.ID))
}

// Name resolves the name field
func (r *ProductResolver) Name() string {
	return r.record.Name
}

// Slug resolves the slug field
func (r *ProductResolver) Slug() string {
	return r.record.Slug
}

// Description resolves the description field
func (r *ProductResolver) Description() string {
	return r.record.Description
}

// ExternalReference resolves the externalReference field
func (r *ProductResolver) ExternalReference() *string {
	return r.record.ExternalReference
}

// Created resolves the created field
func (r *ProductResolver) Created() DateTime {
	return NewDateTimeFromUnix(r.record.CreatedAt)
}

// Channel resolves the channel field
func (r *ProductResolver) Channel() *string {
	return r.channelSlug
}

// ProductType resolves the productType field
func (r *ProductResolver) ProductType(ctx context.Context) (*ProductTypeResolver, error) {
	record, err := r.root.productTypes.FindByID(ctx, r.record.ProductTypeID)
	if err != nil {
		return nil, err
	}
	return newProductTypeResolver(record), nil
}

// Category resolves the category field
func (r *ProductResolver) Category(ctx context.Context) (*CategoryResolver, error) {
	if r.record.CategoryID == nil {
		return nil, nil
	}
	record, err := r.root.categories.FindByID(ctx, *r.record.CategoryID)
	if err != nil {
		if stderrors.Is(err, apierrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return newCategoryResolver(r.root, record), nil
}

// DefaultVariant resolves the defaultVariant field
func (r *ProductResolver) DefaultVariant(ctx context.Context) (*ProductVariantResolver, error) {
	if r.record.DefaultVariantID == nil {
		return nil, nil
	}
	record, err := r.root.variants.Find(ctx, variantdao.FindInput{
		ID:                 r.record.DefaultVariantID,
		ChannelSlug:        r.channelSlug,
		IncludeUnpublished: r.root.seesUnpublished(ctx),
	})
	if err != nil {
		if stderrors.Is(err, apierrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return newProductVariantResolver(r.root, record, r.channelSlug), nil
}

// Variants resolves the variants field
func (r *ProductResolver) Variants(ctx context.Context) ([]*ProductVariantResolver, error) {
	records, err := r.root.variants.List(ctx, variantdao.ListInput{
		ProductID:          &r.record.ID,
		ChannelSlug:        r.channelSlug,
		IncludeUnpublished: r.root.seesUnpublished(ctx),
	})
	if err != nil {
		return nil, err
	}
	resolvers := make([]*ProductVariantResolver, 0, len(records))
	for _, record := range records {
		resolvers = append(resolvers, newProductVariantResolver(r.root, record, r.channelSlug))
	}
	return resolvers, nil
}

// IsPublished resolves the isPublished field
func (r *ProductResolver) IsPublished() bool {
	return r.record.Listing != nil && r.record.Listing.Published
}

// VisibleInListings resolves the visibleInListings field
func (r *ProductResolver) VisibleInListings() bool {
	return r.record.Listing != nil && r.record.Listing.VisibleInListings
}

// IsAvailableForPurchase resolves the isAvailableForPurchase field
func (r *ProductResolver) IsAvailableForPurchase() bool {
	return r.record.Listing != nil && r.record.Listing.AvailableForPurchase
}

// Pricing resolves the pricing field
func (r *ProductResolver) Pricing() *MoneyResolver {
	listing := r.record.Listing
	if listing == nil || listing.PriceAmount == nil || listing.Currency == nil {
		return nil
	}
	return &MoneyResolver{amount: *listing.PriceAmount, currency: *listing.Currency}
}

// ChannelListings resolves the channelListings field. Listings across all
// channels expose unpublished data, so the field is permission gated.
func (r *ProductResolver) ChannelListings(ctx context.Context) (*[]*ProductChannelListingResolver, error) {
	if err := r.root.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}
	listings, err := r.root.products.Listings(ctx, r.record.ID)
	if err != nil {
		return nil, err
	}
	resolvers := make([]*ProductChannelListingResolver, 0, len(listings))
	for _, listing := range listings {
		resolvers = append(resolvers, &ProductChannelListingResolver{listing: listing})
	}
	return &resolvers, nil
}

// MoneyResolver resolves the Money GraphQL type
type MoneyResolver struct {
	amount   float64
	currency string
}

// Amount resolves the amount field
func (r *MoneyResolver) Amount() float64 {
	return r.amount
}

// Currency resolves the currency field
func (r *MoneyResolver) Currency() string {
	return r.currency
}

// ProductChannelListingResolver resolves the ProductChannelListing type
type ProductChannelListingResolver struct {
	listing productdao.ChannelListing
}

// ChannelSlug resolves the channelSlug field
func (r *ProductChannelListingResolver) ChannelSlug() string {
	return r.listing.ChannelSlug
}

// IsPublished resolves the isPublished field
func (r *ProductChannelListingResolver) IsPublished() bool {
	return r.listing.Published
}

// VisibleInListings resolves the visibleInListings field
func (r *ProductChannelListingResolver) VisibleInListings() bool {
	return r.listing.VisibleInListings
}

// AvailableForPurchase resolves the availableForPurchase field
func (r *ProductChannelListingResolver) AvailableForPurchase() bool {
	return r.listing.AvailableForPurchase
}

// Price resolves the price field
func (r *ProductChannelListingResolver) Price() *MoneyResolver {
	if r.listing.PriceAmount == nil || r.listing.Currency == nil {
		return nil
	}
	return &MoneyResolver{amount: *r.listing.PriceAmount, currency: *r.listing.Currency}
}
