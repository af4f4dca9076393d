package gql

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog"

	"github.com/tidemark/catalog-api/internal/authz"
	"github.com/tidemark/catalog-api/internal/dao/producttypedao"
	"github.com/tidemark/catalog-api/internal/globalid"
)

// ProductTypeInput is the input of the productTypeCreate mutation
type ProductTypeInput struct {
	Name               string
	Slug               string
	Kind               *ProductTypeKindEnum
	IsShippingRequired *bool
	IsDigital          *bool
	HasVariants        *bool
}

// ProductTypeUpdateInput is the input of the productTypeUpdate mutation
type ProductTypeUpdateInput struct {
	Name               *string
	Slug               *string
	IsShippingRequired *bool
	IsDigital          *bool
}

// ProductTypeCreate resolves the productTypeCreate mutation
func (r *Resolver) ProductTypeCreate(ctx context.Context, args struct {
	Input ProductTypeInput
}) (*ProductTypeResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("slug", args.Input.Slug).Msg("productTypeCreate mutation called")

	input := producttypedao.CreateInput{
		Name: args.Input.Name,
		Slug: args.Input.Slug,
	}
	if args.Input.Kind != nil {
		input.Kind = args.Input.Kind.ToModelKind()
	}
	if args.Input.IsShippingRequired != nil {
		input.IsShippingRequired = *args.Input.IsShippingRequired
	}
	if args.Input.IsDigital != nil {
		input.IsDigital = *args.Input.IsDigital
	}
	if args.Input.HasVariants != nil {
		input.HasVariants = *args.Input.HasVariants
	}

	record, err := r.service.CreateProductType(ctx, input)
	if err != nil {
		return nil, err
	}
	return newProductTypeResolver(record), nil
}

// ProductTypeUpdate resolves the productTypeUpdate mutation
func (r *Resolver) ProductTypeUpdate(ctx context.Context, args struct {
	ID    graphql.ID
	Input ProductTypeUpdateInput
}) (*ProductTypeResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	key, err := globalid.Decode(string(args.ID), globalid.TypeProductType)
	if err != nil {
		return nil, err
	}

	record, err := r.service.UpdateProductType(ctx, key, producttypedao.UpdateInput{
		Name:               args.Input.Name,
		Slug:               args.Input.Slug,
		IsShippingRequired: args.Input.IsShippingRequired,
		IsDigital:          args.Input.IsDigital,
	})
	if err != nil {
		return nil, err
	}
	return newProductTypeResolver(record), nil
}

// ProductTypeDelete resolves the productTypeDelete mutation
func (r *Resolver) ProductTypeDelete(ctx context.Context, args struct {
	ID graphql.ID
}) (*ProductTypeResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	key, err := globalid.Decode(string(args.ID), globalid.TypeProductType)
	if err != nil {
		return nil, err
	}

	record, err := r.service.DeleteProductType(ctx, key)
	if err != nil {
		return nil, err
	}
	return newProductTypeResolver(record), nil
}
