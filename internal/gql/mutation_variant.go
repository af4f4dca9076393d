package gql

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog"

	"github.com/tidemark/catalog-api/internal/authz"
	"github.com/tidemark/catalog-api/internal/dao/variantdao"
	"github.com/tidemark/catalog-api/internal/globalid"
)

// ProductVariantCreateInput is the input of the productVariantCreate mutation
type ProductVariantCreateInput struct {
	Product           graphql.ID
	Name              string
	Sku               *string
	ExternalReference *string
	TrackInventory    *bool
	QuantityAvailable *int32
}

// ProductVariantUpdateInput is the input of the productVariantUpdate mutation
type ProductVariantUpdateInput struct {
	Name              *string
	Sku               *string
	ExternalReference *string
	TrackInventory    *bool
	QuantityAvailable *int32
}

// ProductVariantChannelListingAddInput is one entry of the
// productVariantChannelListingUpdate mutation
type ProductVariantChannelListingAddInput struct {
	ChannelSlug string
	Price       float64
	Currency    string
}

// ProductVariantCreate resolves the productVariantCreate mutation
func (r *Resolver) ProductVariantCreate(ctx context.Context, args struct {
	Input ProductVariantCreateInput
}) (*ProductVariantResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	productID, err := globalid.Decode(string(args.Input.Product), globalid.TypeProduct)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("product_id", productID).Msg("productVariantCreate mutation called")

	input := variantdao.CreateInput{
		ProductID:         productID,
		Name:              args.Input.Name,
		SKU:               args.Input.Sku,
		ExternalReference: args.Input.ExternalReference,
	}
	if args.Input.TrackInventory != nil {
		input.TrackInventory = *args.Input.TrackInventory
	}
	if args.Input.QuantityAvailable != nil {
		input.QuantityAvailable = *args.Input.QuantityAvailable
	}

	record, err := r.service.CreateVariant(ctx, input)
	if err != nil {
		return nil, err
	}
	return newProductVariantResolver(r, record, nil), nil
}

// ProductVariantUpdate resolves the productVariantUpdate mutation
func (r *Resolver) ProductVariantUpdate(ctx context.Context, args struct {
	ID    graphql.ID
	Input ProductVariantUpdateInput
}) (*ProductVariantResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	key, err := globalid.Decode(string(args.ID), globalid.TypeProductVariant)
	if err != nil {
		return nil, err
	}

	record, err := r.service.UpdateVariant(ctx, key, variantdao.UpdateInput{
		Name:              args.Input.Name,
		SKU:               args.Input.Sku,
		ExternalReference: args.Input.ExternalReference,
		TrackInventory:    args.Input.TrackInventory,
		QuantityAvailable: args.Input.QuantityAvailable,
	})
	if err != nil {
		return nil, err
	}
	return newProductVariantResolver(r, record, nil), nil
}

// ProductVariantDelete resolves the productVariantDelete mutation
func (r *Resolver) ProductVariantDelete(ctx context.Context, args struct {
	ID graphql.ID
}) (*ProductVariantResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	key, err := globalid.Decode(string(args.ID), globalid.TypeProductVariant)
	if err != nil {
		return nil, err
	}

	record, err := r.service.DeleteVariant(ctx, key)
	if err != nil {
		return nil, err
	}
	return newProductVariantResolver(r, record, nil), nil
}

// ProductVariantChannelListingUpdate resolves the
// productVariantChannelListingUpdate mutation
func (r *Resolver) ProductVariantChannelListingUpdate(ctx context.Context, args struct {
	ID    graphql.ID
	Input []ProductVariantChannelListingAddInput
}) (*ProductVariantResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	key, err := globalid.Decode(string(args.ID), globalid.TypeProductVariant)
	if err != nil {
		return nil, err
	}

	listings := make([]variantdao.ListingInput, 0, len(args.Input))
	for _, in := range args.Input {
		listings = append(listings, variantdao.ListingInput{
			ChannelSlug: in.ChannelSlug,
			PriceAmount: in.Price,
			Currency:    in.Currency,
		})
	}

	record, err := r.service.UpdateVariantListings(ctx, key, listings)
	if err != nil {
		return nil, err
	}
	return newProductVariantResolver(r, record, nil), nil
}
