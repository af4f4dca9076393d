package gql

import (
	"context"
	stderrors "errors"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/tidemark/catalog-api/internal/catalog"
	"github.com/tidemark/catalog-api/internal/dao/producttypedao"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
	"github.com/tidemark/catalog-api/internal/globalid"
	"github.com/tidemark/catalog-api/internal/relay"
)

// ProductType resolves the productType query
func (r *Resolver) ProductType(ctx context.Context, args struct {
	ID graphql.ID
}) (*ProductTypeResolver, error) {
	key, err := globalid.Decode(string(args.ID), globalid.TypeProductType)
	if err != nil {
		return nil, err
	}
	record, err := r.productTypes.FindByID(ctx, key)
	if err != nil {
		if stderrors.Is(err, apierrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return newProductTypeResolver(record), nil
}

// ProductTypes resolves the productTypes query. Product types carry no
// channel listings, so no channel scoping applies.
func (r *Resolver) ProductTypes(ctx context.Context, args struct {
	Filter *ProductTypeFilterInput
	SortBy *SortingInput
	First  *int32
	After  *string
	Last   *int32
	Before *string
}) (*ConnectionResolver[*ProductTypeResolver], error) {
	records, err := r.productTypes.List(ctx)
	if err != nil {
		return nil, err
	}

	items := catalog.FilterProductTypes(records, args.Filter.toFilter())
	order := args.SortBy.toOrder()
	catalog.SortProductTypes(items, order)

	conn, err := relay.Slice(items, catalog.ProductTypeKey(order), relay.Args{
		First: args.First, After: args.After, Last: args.Last, Before: args.Before,
	})
	if err != nil {
		return nil, err
	}
	return newConnectionResolver(conn, func(item producttypedao.Record) *ProductTypeResolver {
		return newProductTypeResolver(item)
	}), nil
}
