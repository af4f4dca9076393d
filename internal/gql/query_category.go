package gql

import (
	"context"
	stderrors "errors"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/tidemark/catalog-api/internal/catalog"
	"github.com/tidemark/catalog-api/internal/dao/categorydao"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
	"github.com/tidemark/catalog-api/internal/globalid"
	"github.com/tidemark/catalog-api/internal/relay"
	"github.com/tidemark/catalog-api/internal/validate"
)

// Category resolves the category query. Exactly one of id and slug selects
// the category. Categories carry no channel listings, so no channel scoping
// applies.
func (r *Resolver) Category(ctx context.Context, args struct {
	ID   *graphql.ID
	Slug *string
}) (*CategoryResolver, error) {
	if err := validate.ExactlyOneOf(map[string]*string{
		"id":   idArg(args.ID),
		"slug": args.Slug,
	}); err != nil {
		return nil, err
	}

	if args.ID != nil {
		key, err := globalid.Decode(string(*args.ID), globalid.TypeCategory)
		if err != nil {
			return nil, err
		}
		found, err := r.categories.FindByID(ctx, key)
		if err != nil {
			if stderrors.Is(err, apierrors.ErrNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return newCategoryResolver(r, found), nil
	}

	found, err := r.categories.FindBySlug(ctx, *args.Slug)
	if err != nil {
		if stderrors.Is(err, apierrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return newCategoryResolver(r, found), nil
}

// Categories resolves the categories query
func (r *Resolver) Categories(ctx context.Context, args struct {
	Filter *CategoryFilterInput
	SortBy *SortingInput
	Level  *int32
	First  *int32
	After  *string
	Last   *int32
	Before *string
}) (*ConnectionResolver[*CategoryResolver], error) {
	records, err := r.categories.List(ctx, args.Level)
	if err != nil {
		return nil, err
	}

	items := catalog.FilterCategories(records, args.Filter.toFilter())
	order := args.SortBy.toOrder()
	catalog.SortCategories(items, order)

	conn, err := relay.Slice(items, catalog.CategoryKey(order), relay.Args{
		First: args.First, After: args.After, Last: args.Last, Before: args.Before,
	})
	if err != nil {
		return nil, err
	}
	return newConnectionResolver(conn, func(item categorydao.Record) *CategoryResolver {
		return newCategoryResolver(r, item)
	}), nil
}
