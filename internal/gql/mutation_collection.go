package gql

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog"

	"github.com/tidemark/catalog-api/internal/authz"
	"github.com/tidemark/catalog-api/internal/dao/collectiondao"
	"github.com/tidemark/catalog-api/internal/globalid"
)

// CollectionCreateInput is the input of the collectionCreate mutation
type CollectionCreateInput struct {
	Name        string
	Slug        string
	Description *string
}

// CollectionUpdateInput is the input of the collectionUpdate mutation
type CollectionUpdateInput struct {
	Name        *string
	Slug        *string
	Description *string
}

// CollectionChannelListingAddInput is one entry of the
// collectionChannelListingUpdate mutation
type CollectionChannelListingAddInput struct {
	ChannelSlug string
	IsPublished bool
}

// CollectionCreate resolves the collectionCreate mutation
func (r *Resolver) CollectionCreate(ctx context.Context, args struct {
	Input CollectionCreateInput
}) (*CollectionResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("slug", args.Input.Slug).Msg("collectionCreate mutation called")

	input := collectiondao.CreateInput{
		Name: args.Input.Name,
		Slug: args.Input.Slug,
	}
	if args.Input.Description != nil {
		input.Description = *args.Input.Description
	}

	record, err := r.service.CreateCollection(ctx, input)
	if err != nil {
		return nil, err
	}
	return newCollectionResolver(r, record, nil), nil
}

// CollectionUpdate resolves the collectionUpdate mutation
func (r *Resolver) CollectionUpdate(ctx context.Context, args struct {
	ID    graphql.ID
	Input CollectionUpdateInput
}) (*CollectionResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	key, err := globalid.Decode(string(args.ID), globalid.TypeCollection)
	if err != nil {
		return nil, err
	}

	record, err := r.service.UpdateCollection(ctx, key, collectiondao.UpdateInput{
		Name:        args.Input.Name,
		Slug:        args.Input.Slug,
		Description: args.Input.Description,
	})
	if err != nil {
		return nil, err
	}
	return newCollectionResolver(r, record, nil), nil
}

// CollectionDelete resolves the collectionDelete mutation
func (r *Resolver) CollectionDelete(ctx context.Context, args struct {
	ID graphql.ID
}) (*CollectionResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	key, err := globalid.Decode(string(args.ID), globalid.TypeCollection)
	if err != nil {
		return nil, err
	}

	record, err := r.service.DeleteCollection(ctx, key)
	if err != nil {
		return nil, err
	}
	return newCollectionResolver(r, record, nil), nil
}

// CollectionAddProducts resolves the collectionAddProducts mutation
func (r *Resolver) CollectionAddProducts(ctx context.Context, args struct {
	CollectionId graphql.ID
	Products     []graphql.ID
}) (*CollectionResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	key, err := globalid.Decode(string(args.CollectionId), globalid.TypeCollection)
	if err != nil {
		return nil, err
	}
	productIDs, err := decodeIDs(args.Products, globalid.TypeProduct)
	if err != nil {
		return nil, err
	}

	record, err := r.service.AddProductsToCollection(ctx, key, productIDs)
	if err != nil {
		return nil, err
	}
	return newCollectionResolver(r, record, nil), nil
}

// CollectionRemoveProducts resolves the collectionRemoveProducts mutation
func (r *Resolver) CollectionRemoveProducts(ctx context.Context, args struct {
	CollectionId graphql.ID
	Products     []graphql.ID
}) (*CollectionResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	key, err := globalid.Decode(string(args.CollectionId), globalid.TypeCollection)
	if err != nil {
		return nil, err
	}
	productIDs, err := decodeIDs(args.Products, globalid.TypeProduct)
	if err != nil {
		return nil, err
	}

	record, err := r.service.RemoveProductsFromCollection(ctx, key, productIDs)
	if err != nil {
		return nil, err
	}
	return newCollectionResolver(r, record, nil), nil
}

// CollectionChannelListingUpdate resolves the collectionChannelListingUpdate mutation
func (r *Resolver) CollectionChannelListingUpdate(ctx context.Context, args struct {
	ID    graphql.ID
	Input []CollectionChannelListingAddInput
}) (*CollectionResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	key, err := globalid.Decode(string(args.ID), globalid.TypeCollection)
	if err != nil {
		return nil, err
	}

	listings := make([]collectiondao.ListingInput, 0, len(args.Input))
	for _, in := range args.Input {
		listings = append(listings, collectiondao.ListingInput{
			ChannelSlug: in.ChannelSlug,
			Published:   in.IsPublished,
		})
	}

	record, err := r.service.UpdateCollectionListings(ctx, key, listings)
	if err != nil {
		return nil, err
	}
	return newCollectionResolver(r, record, nil), nil
}
