package gql

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/tidemark/catalog-api/internal/dao/channeldao"
	"github.com/tidemark/catalog-api/internal/globalid"
)

// ChannelResolver resolves the Channel GraphQL type
type ChannelResolver struct {
	record channeldao.Record
}

func newChannelResolver(record channeldao.Record) *ChannelResolver {
	return &ChannelResolver{record: record}
}

// ID resolves the id field
func (r *ChannelResolver) ID() graphql.ID {
	return graphql.ID(globalid.Encode(globalid.TypeChannel, r.record.ID))
}

// Slug resolves the slug field
func (r *ChannelResolver) Slug() string {
	return r.record.Slug
}

// Name resolves the name field
func (r *ChannelResolver) Name() string {
	return r.record.Name
}

// CurrencyCode resolves the currencyCode field
func (r *ChannelResolver) CurrencyCode() string {
	return r.record.CurrencyCode
}

// IsDefault resolves the isDefault field
func (r *ChannelResolver) IsDefault() bool {
	return r.record.IsDefault
}
