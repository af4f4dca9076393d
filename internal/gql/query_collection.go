package gql

import (
	"context"
	stderrors "errors"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/tidemark/catalog-api/internal/catalog"
	"github.com/tidemark/catalog-api/internal/dao/collectiondao"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
	"github.com/tidemark/catalog-api/internal/globalid"
	"github.com/tidemark/catalog-api/internal/relay"
	"github.com/tidemark/catalog-api/internal/validate"
)

// Collection resolves the collection query. Exactly one of id and slug
// selects the collection, scoped to the resolved channel.
func (r *Resolver) Collection(ctx context.Context, args struct {
	ID      *graphql.ID
	Slug    *string
	Channel *string
}) (*CollectionResolver, error) {
	if err := validate.ExactlyOneOf(map[string]*string{
		"id":   idArg(args.ID),
		"slug": args.Slug,
	}); err != nil {
		return nil, err
	}

	channelSlug, err := r.resolveChannel(ctx, args.Channel)
	if err != nil {
		return nil, err
	}

	key, err := decodeID(args.ID, globalid.TypeCollection)
	if err != nil {
		return nil, err
	}

	record, err := r.collections.Find(ctx, collectiondao.FindInput{
		ID:                 key,
		Slug:               args.Slug,
		ChannelSlug:        channelSlug,
		IncludeUnpublished: r.seesUnpublished(ctx),
	})
	if err != nil {
		if stderrors.Is(err, apierrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return newCollectionResolver(r, record, channelSlug), nil
}

// Collections resolves the collections query
func (r *Resolver) Collections(ctx context.Context, args struct {
	Filter  *CollectionFilterInput
	SortBy  *SortingInput
	Channel *string
	First   *int32
	After   *string
	Last    *int32
	Before  *string
}) (*ConnectionResolver[*CollectionResolver], error) {
	channelSlug, err := r.resolveChannel(ctx, args.Channel)
	if err != nil {
		return nil, err
	}

	records, err := r.collections.List(ctx, channelSlug, r.seesUnpublished(ctx))
	if err != nil {
		return nil, err
	}

	items := catalog.FilterCollections(records, args.Filter.toFilter())
	order := args.SortBy.toOrder()
	catalog.SortCollections(items, order)

	conn, err := relay.Slice(items, catalog.CollectionKey(order), relay.Args{
		First: args.First, After: args.After, Last: args.Last, Before: args.Before,
	})
	if err != nil {
		return nil, err
	}
	return newConnectionResolver(conn, func(item collectiondao.Record) *CollectionResolver {
		return newCollectionResolver(r, item, channelSlug)
	}), nil
}
