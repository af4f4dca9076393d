package gql

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog"

	"github.com/tidemark/catalog-api/internal/authz"
	"github.com/tidemark/catalog-api/internal/dao/productdao"
	"github.com/tidemark/catalog-api/internal/globalid"
)

// ProductCreateInput is the input of the productCreate mutation
type ProductCreateInput struct {
	Name              string
	Slug              string
	Description       *string
	ProductType       graphql.ID
	Category          *graphql.ID
	ExternalReference *string
}

// ProductUpdateInput is the input of the productUpdate mutation
type ProductUpdateInput struct {
	Name              *string
	Slug              *string
	Description       *string
	Category          *graphql.ID
	ExternalReference *string
}

// ProductChannelListingUpdateInput is the input of the
// productChannelListingUpdate mutation
type ProductChannelListingUpdateInput struct {
	UpdateChannels *[]ProductChannelListingAddInput
	RemoveChannels *[]string
}

// ProductChannelListingAddInput is one upserted entry of a product channel
// listing update
type ProductChannelListingAddInput struct {
	ChannelSlug            string
	IsPublished            bool
	VisibleInListings      bool
	IsAvailableForPurchase bool
	Price                  *float64
	Currency               *string
}

// ProductCreate resolves the productCreate mutation
func (r *Resolver) ProductCreate(ctx context.Context, args struct {
	Input ProductCreateInput
}) (*ProductResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("slug", args.Input.Slug).Msg("productCreate mutation called")

	typeID, err := globalid.Decode(string(args.Input.ProductType), globalid.TypeProductType)
	if err != nil {
		return nil, err
	}
	categoryID, err := decodeID(args.Input.Category, globalid.TypeCategory)
	if err != nil {
		return nil, err
	}

	input := productdao.CreateInput{
		Name:              args.Input.Name,
		Slug:              args.Input.Slug,
		ProductTypeID:     typeID,
		CategoryID:        categoryID,
		ExternalReference: args.Input.ExternalReference,
	}
	if args.Input.Description != nil {
		input.Description = *args.Input.Description
	}

	record, err := r.service.CreateProduct(ctx, input)
	if err != nil {
		return nil, err
	}
	return newProductResolver(r, record, nil), nil
}

// ProductUpdate resolves the productUpdate mutation
func (r *Resolver) ProductUpdate(ctx context.Context, args struct {
	ID    graphql.ID
	Input ProductUpdateInput
}) (*ProductResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	key, err := globalid.Decode(string(args.ID), globalid.TypeProduct)
	if err != nil {
		return nil, err
	}
	categoryID, err := decodeID(args.Input.Category, globalid.TypeCategory)
	if err != nil {
		return nil, err
	}

	record, err := r.service.UpdateProduct(ctx, key, productdao.UpdateInput{
		Name:              args.Input.Name,
		Slug:              args.Input.Slug,
		Description:       args.Input.Description,
		CategoryID:        categoryID,
		ExternalReference: args.Input.ExternalReference,
	})
	if err != nil {
		return nil, err
	}
	return newProductResolver(r, record, nil), nil
}

// ProductDelete resolves the productDelete mutation
func (r *Resolver) ProductDelete(ctx context.Context, args struct {
	ID graphql.ID
}) (*ProductResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	key, err := globalid.Decode(string(args.ID), globalid.TypeProduct)
	if err != nil {
		return nil, err
	}

	record, err := r.service.DeleteProduct(ctx, key)
	if err != nil {
		return nil, err
	}
	return newProductResolver(r, record, nil), nil
}

// ProductChannelListingUpdate resolves the productChannelListingUpdate mutation
func (r *Resolver) ProductChannelListingUpdate(ctx context.Context, args struct {
	ID    graphql.ID
	Input ProductChannelListingUpdateInput
}) (*ProductResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	key, err := globalid.Decode(string(args.ID), globalid.TypeProduct)
	if err != nil {
		return nil, err
	}

	var upsert []productdao.ListingInput
	if args.Input.UpdateChannels != nil {
		for _, in := range *args.Input.UpdateChannels {
			upsert = append(upsert, productdao.ListingInput{
				ChannelSlug:          in.ChannelSlug,
				Published:            in.IsPublished,
				VisibleInListings:    in.VisibleInListings,
				AvailableForPurchase: in.IsAvailableForPurchase,
				PriceAmount:          in.Price,
				Currency:             in.Currency,
			})
		}
	}
	var removeChannels []string
	if args.Input.RemoveChannels != nil {
		removeChannels = *args.Input.RemoveChannels
	}

	record, err := r.service.UpdateProductListings(ctx, key, upsert, removeChannels)
	if err != nil {
		return nil, err
	}
	return newProductResolver(r, record, nil), nil
}

// ProductVariantSetDefault resolves the productVariantSetDefault mutation
func (r *Resolver) ProductVariantSetDefault(ctx context.Context, args struct {
	ProductId graphql.ID
	VariantId graphql.ID
}) (*ProductResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	productID, err := globalid.Decode(string(args.ProductId), globalid.TypeProduct)
	if err != nil {
		return nil, err
	}
	variantID, err := globalid.Decode(string(args.VariantId), globalid.TypeProductVariant)
	if err != nil {
		return nil, err
	}

	record, err := r.service.SetDefaultVariant(ctx, productID, variantID)
	if err != nil {
		return nil, err
	}
	return newProductResolver(r, record, nil), nil
}
