package gql

import (
	"context"
	stderrors "errors"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/tidemark/catalog-api/internal/catalog"
	"github.com/tidemark/catalog-api/internal/dao/productdao"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
	"github.com/tidemark/catalog-api/internal/globalid"
	"github.com/tidemark/catalog-api/internal/relay"
	"github.com/tidemark/catalog-api/internal/validate"
)

// Product resolves the product query. Exactly one of id, slug and
// externalReference selects the product, scoped to the resolved channel.
// Unpublished products are invisible without catalog visibility.
func (r *Resolver) Product(ctx context.Context, args struct {
	ID                *graphql.ID
	Slug              *string
	ExternalReference *string
	Channel           *string
}) (*ProductResolver, error) {
	if err := validate.ExactlyOneOf(map[string]*string{
		"id":                idArg(args.ID),
		"slug":              args.Slug,
		"externalReference": args.ExternalReference,
	}); err != nil {
		return nil, err
	}

	channelSlug, err := r.resolveChannel(ctx, args.Channel)
	if err != nil {
		return nil, err
	}

	key, err := decodeID(args.ID, globalid.TypeProduct)
	if err != nil {
		return nil, err
	}

	record, err := r.products.Find(ctx, productdao.FindInput{
		ID:                 key,
		Slug:               args.Slug,
		ExternalReference:  args.ExternalReference,
		ChannelSlug:        channelSlug,
		IncludeUnpublished: r.seesUnpublished(ctx),
	})
	if err != nil {
		if stderrors.Is(err, apierrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return newProductResolver(r, record, channelSlug), nil
}

// Products resolves the products query. ID-set predicates are applied by
// the store; search, price and availability predicates together with
// sorting are applied to the returned collection.
func (r *Resolver) Products(ctx context.Context, args struct {
	Filter  *ProductFilterInput
	SortBy  *ProductOrderInput
	Channel *string
	First   *int32
	After   *string
	Last    *int32
	Before  *string
}) (*ConnectionResolver[*ProductResolver], error) {
	channelSlug, err := r.resolveChannel(ctx, args.Channel)
	if err != nil {
		return nil, err
	}

	filter, err := args.Filter.toFilter()
	if err != nil {
		return nil, err
	}

	order, err := catalog.EffectiveProductOrder(args.SortBy.toOrder(), filter.HasSearch())
	if err != nil {
		return nil, err
	}

	listInput := productdao.ListInput{
		ChannelSlug:        channelSlug,
		IncludeUnpublished: r.seesUnpublished(ctx),
	}
	if filter != nil {
		listInput.CategoryIDs = filter.CategoryIDs
		listInput.CollectionIDs = filter.CollectionIDs
		listInput.ProductTypeIDs = filter.ProductTypeIDs
	}

	records, err := r.products.List(ctx, listInput)
	if err != nil {
		return nil, err
	}

	items := catalog.FilterProducts(records, filter)
	catalog.SortProducts(items, order)

	conn, err := relay.Slice(items, catalog.ProductKey(order), relay.Args{
		First: args.First, After: args.After, Last: args.Last, Before: args.Before,
	})
	if err != nil {
		return nil, err
	}
	return newConnectionResolver(conn, func(item catalog.RankedProduct) *ProductResolver {
		return newProductResolver(r, item.Record, channelSlug)
	}), nil
}
