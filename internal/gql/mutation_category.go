package gql

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog"

	"github.com/tidemark/catalog-api/internal/authz"
	"github.com/tidemark/catalog-api/internal/dao/categorydao"
	"github.com/tidemark/catalog-api/internal/globalid"
)

// CategoryCreateInput is the input of the categoryCreate mutation
type CategoryCreateInput struct {
	Name        string
	Slug        string
	Description *string
	Parent      *graphql.ID
}

// CategoryUpdateInput is the input of the categoryUpdate mutation
type CategoryUpdateInput struct {
	Name        *string
	Slug        *string
	Description *string
}

// CategoryCreate resolves the categoryCreate mutation
func (r *Resolver) CategoryCreate(ctx context.Context, args struct {
	Input CategoryCreateInput
}) (*CategoryResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("slug", args.Input.Slug).Msg("categoryCreate mutation called")

	parentID, err := decodeID(args.Input.Parent, globalid.TypeCategory)
	if err != nil {
		return nil, err
	}

	input := categorydao.CreateInput{
		Name:     args.Input.Name,
		Slug:     args.Input.Slug,
		ParentID: parentID,
	}
	if args.Input.Description != nil {
		input.Description = *args.Input.Description
	}

	record, err := r.service.CreateCategory(ctx, input)
	if err != nil {
		return nil, err
	}
	return newCategoryResolver(r, record), nil
}

// CategoryUpdate resolves the categoryUpdate mutation
func (r *Resolver) CategoryUpdate(ctx context.Context, args struct {
	ID    graphql.ID
	Input CategoryUpdateInput
}) (*CategoryResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	key, err := globalid.Decode(string(args.ID), globalid.TypeCategory)
	if err != nil {
		return nil, err
	}

	record, err := r.service.UpdateCategory(ctx, key, categorydao.UpdateInput{
		Name:        args.Input.Name,
		Slug:        args.Input.Slug,
		Description: args.Input.Description,
	})
	if err != nil {
		return nil, err
	}
	return newCategoryResolver(r, record), nil
}

// CategoryDelete resolves the categoryDelete mutation
func (r *Resolver) CategoryDelete(ctx context.Context, args struct {
	ID graphql.ID
}) (*CategoryResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	key, err := globalid.Decode(string(args.ID), globalid.TypeCategory)
	if err != nil {
		return nil, err
	}

	record, err := r.service.DeleteCategory(ctx, key)
	if err != nil {
		return nil, err
	}
	return newCategoryResolver(r, record), nil
}
