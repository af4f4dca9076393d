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

// ProductVariantResolver resolves the ProductVariant GraphQL type
type ProductVariantResolver struct {
	root        *Resolver
	record      variantdao.Record
	channelSlug *string

	// quantityOrdered is only populated by the sales report query.
	quantityOrdered *int32
}

func newProductVariantResolver(root *Resolver, record variantdao.Record, channelSlug *string) *ProductVariantResolver {
	return &ProductVariantResolver{root: root, record: record, channelSlug: channelSlug}
}

func newSalesRecordResolver(root *Resolver, record variantdao.SalesRecord, channelSlug *string) *ProductVariantResolver {
	quantity := record.QuantityOrdered
	return &ProductVariantResolver{
		root:            root,
		record:          record.Record,
		channelSlug:     channelSlug,
		quantityOrdered: &quantity,
	}
}

// ID resolves the id field
func (r *ProductVariantResolver) ID() graphql.ID {
	return graphql.ID(globalid.Encode(globalid.TypeProductVariant, r.record.ID))
}

// Name resolves the name field
func (r *ProductVariantResolver) Name() string {
	return r.record.Name
}

// Sku resolves the sku field
func (r *ProductVariantResolver) Sku() *string {
	return r.record.SKU
}

// ExternalReference resolves the externalReference field
func (r *ProductVariantResolver) ExternalReference() *string {
	return r.record.ExternalReference
}

// TrackInventory resolves the trackInventory field
func (r *ProductVariantResolver) TrackInventory() bool {
	return r.record.TrackInventory
}

// QuantityAvailable resolves the quantityAvailable field
func (r *ProductVariantResolver) QuantityAvailable() int32 {
	return r.record.QuantityAvailable
}

// Channel resolves the channel field
func (r *ProductVariantResolver) Channel() *string {
	return r.channelSlug
}

// Product resolves the product field
func (r *ProductVariantResolver) Product(ctx context.Context) (*ProductResolver, error) {
	record, err := r.root.products.Find(ctx, productdao.FindInput{
		ID:                 &r.record.ProductID,
		ChannelSlug:        r.channelSlug,
		IncludeUnpublished: r.root.seesUnpublished(ctx),
	})
	if err != nil {
		if stderrors.Is(err, apierrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return newProductResolver(r.root, record, r.channelSlug), nil
}

// Pricing resolves the pricing field
func (r *ProductVariantResolver) Pricing() *MoneyResolver {
	if r.record.Listing == nil {
		return nil
	}
	return &MoneyResolver{amount: r.record.Listing.PriceAmount, currency: r.record.Listing.Currency}
}

// QuantityOrdered resolves the quantityOrdered field
func (r *ProductVariantResolver) QuantityOrdered() *int32 {
	return r.quantityOrdered
}

// DigitalContent resolves the digitalContent field. Content files are
// fulfillment data, so the field is permission gated.
func (r *ProductVariantResolver) DigitalContent(ctx context.Context) (*DigitalContentResolver, error) {
	if err := r.root.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}
	record, err := r.root.digitalContent.FindByVariant(ctx, r.record.ID)
	if err != nil {
		if stderrors.Is(err, apierrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return newDigitalContentResolver(r.root, record), nil
}
