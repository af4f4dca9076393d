package di

import (
	"github.com/tidemark/catalog-api/internal/authz"
	"github.com/tidemark/catalog-api/internal/channel"
	"github.com/tidemark/catalog-api/internal/dao/channeldao"
)

// ProvideChannelProvider creates the cached default channel lookup.
func ProvideChannelProvider(dao *channeldao.DAO) *channel.Provider {
	return channel.NewProvider(dao)
}

// ProvideChannelResolver creates the permission-aware channel slug resolver.
func ProvideChannelResolver(checker *authz.Checker, provider *channel.Provider) *channel.Resolver {
	return channel.NewResolver(checker, provider)
}
