package gql

import (
	"context"
	stderrors "errors"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/tidemark/catalog-api/internal/authz"
	"github.com/tidemark/catalog-api/internal/dao/digitaldao"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
	"github.com/tidemark/catalog-api/internal/globalid"
	"github.com/tidemark/catalog-api/internal/relay"
)

// DigitalContent resolves the digitalContent query. Content files are
// fulfillment data and require product management permission.
func (r *Resolver) DigitalContent(ctx context.Context, args struct {
	ID graphql.ID
}) (*DigitalContentResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}
	key, err := globalid.Decode(string(args.ID), globalid.TypeDigitalContent)
	if err != nil {
		return nil, err
	}
	record, err := r.digitalContent.FindByID(ctx, key)
	if err != nil {
		if stderrors.Is(err, apierrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return newDigitalContentResolver(r, record), nil
}

// DigitalContents resolves the digitalContents query. Content rows are
// ordered by ID, which for KSUIDs means creation order.
func (r *Resolver) DigitalContents(ctx context.Context, args struct {
	First  *int32
	After  *string
	Last   *int32
	Before *string
}) (*ConnectionResolver[*DigitalContentResolver], error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}
	records, err := r.digitalContent.List(ctx)
	if err != nil {
		return nil, err
	}

	keyOf := func(r digitaldao.Record) []string { return []string{r.ID} }
	conn, err := relay.Slice(records, keyOf, relay.Args{
		First: args.First, After: args.After, Last: args.Last, Before: args.Before,
	})
	if err != nil {
		return nil, err
	}
	return newConnectionResolver(conn, func(item digitaldao.Record) *DigitalContentResolver {
		return newDigitalContentResolver(r, item)
	}), nil
}
