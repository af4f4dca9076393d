package gql

import (
	"context"
	_ "embed"

	"github.com/graph-gophers/graphql-go"
	"go.uber.org/dig"

	"github.com/tidemark/catalog-api/internal/auth"
	"github.com/tidemark/catalog-api/internal/authz"
	"github.com/tidemark/catalog-api/internal/catalog"
	"github.com/tidemark/catalog-api/internal/channel"
	"github.com/tidemark/catalog-api/internal/errors"
)

//go:embed schema.graphqls
var schemaString string

type Config struct {
	dig.In

	Channels       catalog.ChannelStore
	Categories     catalog.CategoryStore
	Collections    catalog.CollectionStore
	Products       catalog.ProductStore
	ProductTypes   catalog.ProductTypeStore
	Variants       catalog.VariantStore
	DigitalContent catalog.DigitalContentStore

	ChannelResolver *channel.Resolver
	Checker         *authz.Checker
	Service         *catalog.Service
}

// Resolver is the root GraphQL resolver
type Resolver struct {
	channels       catalog.ChannelStore
	categories     catalog.CategoryStore
	collections    catalog.CollectionStore
	products       catalog.ProductStore
	productTypes   catalog.ProductTypeStore
	variants       catalog.VariantStore
	digitalContent catalog.DigitalContentStore

	channelResolver *channel.Resolver
	checker         channel.PermissionChecker
	service         *catalog.Service
}

// NewResolver creates a new root resolver with the required dependencies
func NewResolver(config Config) *Resolver {
	return &Resolver{
		channels:        config.Channels,
		categories:      config.Categories,
		collections:     config.Collections,
		products:        config.Products,
		productTypes:    config.ProductTypes,
		variants:        config.Variants,
		digitalContent:  config.DigitalContent,
		channelResolver: config.ChannelResolver,
		checker:         config.Checker,
		service:         config.Service,
	}
}

// NewSchema creates a new GraphQL schema with the root resolver
func NewSchema(resolver *Resolver) (*graphql.Schema, error) {
	schema := graphql.MustParseSchema(schemaString, resolver)
	return schema, nil
}

// Ok returns "ok" for health checks
func (r *Resolver) Ok() string {
	return "ok"
}

// resolveChannel applies the channel precedence rules for the current
// requestor. An explicit channel wins, privileged requestors see all
// channels, everyone else falls back to the default channel.
func (r *Resolver) resolveChannel(ctx context.Context, explicit *string) (*string, error) {
	requestor := auth.RequestorFromContext(ctx)
	return r.channelResolver.Resolve(ctx, requestor, explicit)
}

// seesUnpublished reports whether the current requestor may see entities
// that are not published on their channel.
func (r *Resolver) seesUnpublished(ctx context.Context) bool {
	requestor := auth.RequestorFromContext(ctx)
	return r.checker.HasAny(ctx, requestor, authz.AllCatalogVisibility)
}

// requirePermission fails with ErrPermissionDenied unless the current
// requestor holds one of the required permissions.
func (r *Resolver) requirePermission(ctx context.Context, required ...authz.Permission) error {
	requestor := auth.RequestorFromContext(ctx)
	if !r.checker.HasAny(ctx, requestor, required) {
		return errors.ErrPermissionDenied
	}
	return nil
}
