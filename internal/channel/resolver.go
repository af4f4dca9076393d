package channel

import (
	"context"

	"github.com/tidemark/catalog-api/internal/authz"
)

// PermissionChecker is the slice of the authz checker the resolver needs.
type PermissionChecker interface {
	HasAny(ctx context.Context, requestor authz.Requestor, required []authz.Permission) bool
}

// Resolver decides which channel a request is scoped to.
type Resolver struct {
	checker  PermissionChecker
	provider *Provider
}

// NewResolver creates a channel resolver.
func NewResolver(checker PermissionChecker, provider *Provider) *Resolver {
	return &Resolver{checker: checker, provider: provider}
}

// Resolve returns the effective channel slug for a request.
//
// An explicitly requested channel always wins and is passed through without
// validating that it exists. Requestors with full catalog visibility are
// unrestricted (nil). Everyone else is silently scoped to the configured
// default channel; if none is configured the request fails with
// ErrNoDefaultChannel.
func (r *Resolver) Resolve(ctx context.Context, requestor authz.Requestor, explicit *string) (*string, error) {
	if explicit != nil {
		return explicit, nil
	}
	if r.checker.HasAny(ctx, requestor, authz.AllCatalogVisibility) {
		return nil, nil
	}
	slug, err := r.provider.DefaultSlug(ctx)
	if err != nil {
		return nil, err
	}
	return &slug, nil
}
