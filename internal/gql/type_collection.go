package gql

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/tidemark/catalog-api/internal/catalog"
	"github.com/tidemark/catalog-api/internal/dao/collectiondao"
	"github.com/tidemark/catalog-api/internal/dao/productdao"
	"github.com/tidemark/catalog-api/internal/globalid"
	"github.com/tidemark/catalog-api/internal/relay"
)

// CollectionResolver resolves the Collection GraphQL type
type CollectionResolver struct {
	root        *Resolver
	record      collectiondao.Record
	channelSlug *string
}

func newCollectionResolver(root *Resolver, record collectiondao.Record, channelSlug *string) *CollectionResolver {
	return &CollectionResolver{root: root, record: record, channelSlug: channelSlug}
}

// ID resolves the id field
func (r *CollectionResolver) ID() graphql.ID {
	return graphql.ID(globalid.Encode(globalid.TypeCollection, r.record.ID))
}

// Name resolves the name field
func (r *CollectionResolver) Name() string {
	return r.record.Name
}

// Slug resolves the slug field
func (r *CollectionResolver) Slug() string {
	return r.record.Slug
}

// Description resolves the description field
func (r *CollectionResolver) Description() string {
	return r.record.Description
}

// Channel resolves the channel field
func (r *CollectionResolver) Channel() *string {
	return r.channelSlug
}

// Products resolves the products connection. Members inherit the channel
// the collection was resolved under.
func (r *CollectionResolver) Products(ctx context.Context, args struct {
	First  *int32
	After  *string
	Last   *int32
	Before *string
}) (*ConnectionResolver[*ProductResolver], error) {
	records, err := r.root.products.List(ctx, productdao.ListInput{
		ChannelSlug:        r.channelSlug,
		IncludeUnpublished: r.root.seesUnpublished(ctx),
		CollectionIDs:      []string{r.record.ID},
	})
	if err != nil {
		return nil, err
	}

	items := catalog.FilterProducts(records, nil)
	order, err := catalog.EffectiveProductOrder(nil, false)
	if err != nil {
		return nil, err
	}
	catalog.SortProducts(items, order)

	conn, err := relay.Slice(items, catalog.ProductKey(order), relay.Args{
		First: args.First, After: args.After, Last: args.Last, Before: args.Before,
	})
	if err != nil {
		return nil, err
	}
	return newConnectionResolver(conn, func(item catalog.RankedProduct) *ProductResolver {
		return newProductResolver(r.root, item.Record, r.channelSlug)
	}), nil
}
