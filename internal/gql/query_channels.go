package gql

import (
	"context"

	"github.com/savaki/gox/slicex"

	"github.com/tidemark/catalog-api/internal/authz"
)

// Channels resolves the channels query. The channel inventory reveals the
// full sales-context layout, so it is limited to staff requestors.
func (r *Resolver) Channels(ctx context.Context) ([]*ChannelResolver, error) {
	if err := r.requirePermission(ctx, authz.AllCatalogVisibility...); err != nil {
		return nil, err
	}
	records, err := r.channels.List(ctx)
	if err != nil {
		return nil, err
	}
	return slicex.Map(records, newChannelResolver), nil
}
