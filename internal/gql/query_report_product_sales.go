package gql

import (
	"context"
	"strconv"
	"time"

	"github.com/tidemark/catalog-api/internal/authz"
	"github.com/tidemark/catalog-api/internal/dao/variantdao"
	"github.com/tidemark/catalog-api/internal/relay"
)

// ReportProductSales resolves the reportProductSales query: the variants
// sold on one channel over a reporting period, ordered by quantity sold.
// The channel is mandatory because sales figures only make sense within a
// single sales context.
func (r *Resolver) ReportProductSales(ctx context.Context, args struct {
	Period  ReportingPeriod
	Channel string
	First   *int32
	After   *string
	Last    *int32
	Before  *string
}) (*ConnectionResolver[*ProductVariantResolver], error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	since := args.Period.Since(time.Now())
	records, err := r.variants.ReportSales(ctx, args.Channel, since.Unix())
	if err != nil {
		return nil, err
	}

	// The store returns rows ordered by quantity sold descending with the
	// ID tie-break already applied.
	keyOf := func(rec variantdao.SalesRecord) []string {
		return []string{strconv.FormatInt(int64(rec.QuantityOrdered), 10), rec.ID}
	}
	conn, err := relay.Slice(records, keyOf, relay.Args{
		First: args.First, After: args.After, Last: args.Last, Before: args.Before,
	})
	if err != nil {
		return nil, err
	}

	channelSlug := args.Channel
	return newConnectionResolver(conn, func(item variantdao.SalesRecord) *ProductVariantResolver {
		return newSalesRecordResolver(r, item, &channelSlug)
	}), nil
}
