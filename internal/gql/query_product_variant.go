package gql

import (
	"context"
	stderrors "errors"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/tidemark/catalog-api/internal/catalog"
	"github.com/tidemark/catalog-api/internal/dao/variantdao"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
	"github.com/tidemark/catalog-api/internal/globalid"
	"github.com/tidemark/catalog-api/internal/relay"
	"github.com/tidemark/catalog-api/internal/validate"
)

// ProductVariant resolves the productVariant query. Exactly one of id, sku
// and externalReference selects the variant. A variant is only visible when
// its parent product is published on the resolved channel.
func (r *Resolver) ProductVariant(ctx context.Context, args struct {
	ID                *graphql.ID
	Sku               *string
	ExternalReference *string
	Channel           *string
}) (*ProductVariantResolver, error) {
	if err := validate.ExactlyOneOf(map[string]*string{
		"id":                idArg(args.ID),
		"sku":               args.Sku,
		"externalReference": args.ExternalReference,
	}); err != nil {
		return nil, err
	}

	channelSlug, err := r.resolveChannel(ctx, args.Channel)
	if err != nil {
		return nil, err
	}

	key, err := decodeID(args.ID, globalid.TypeProductVariant)
	if err != nil {
		return nil, err
	}

	record, err := r.variants.Find(ctx, variantdao.FindInput{
		ID:                 key,
		SKU:                args.Sku,
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
	return newProductVariantResolver(r, record, channelSlug), nil
}

// ProductVariants resolves the productVariants query
func (r *Resolver) ProductVariants(ctx context.Context, args struct {
	Ids     *[]graphql.ID
	Filter  *ProductVariantFilterInput
	SortBy  *SortingInput
	Channel *string
	First   *int32
	After   *string
	Last    *int32
	Before  *string
}) (*ConnectionResolver[*ProductVariantResolver], error) {
	channelSlug, err := r.resolveChannel(ctx, args.Channel)
	if err != nil {
		return nil, err
	}

	listInput := variantdao.ListInput{
		ChannelSlug:        channelSlug,
		IncludeUnpublished: r.seesUnpublished(ctx),
	}
	if args.Ids != nil {
		if listInput.IDs, err = decodeIDs(*args.Ids, globalid.TypeProductVariant); err != nil {
			return nil, err
		}
	}

	records, err := r.variants.List(ctx, listInput)
	if err != nil {
		return nil, err
	}

	items := catalog.FilterVariants(records, args.Filter.toFilter())
	order := args.SortBy.toOrder()
	catalog.SortVariants(items, order)

	conn, err := relay.Slice(items, catalog.VariantKey(order), relay.Args{
		First: args.First, After: args.After, Last: args.Last, Before: args.Before,
	})
	if err != nil {
		return nil, err
	}
	return newConnectionResolver(conn, func(item variantdao.Record) *ProductVariantResolver {
		return newProductVariantResolver(r, item, channelSlug)
	}), nil
}
