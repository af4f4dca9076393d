package gql

import (
	"context"
	stderrors "errors"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/tidemark/catalog-api/internal/dao/categorydao"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
	"github.com/tidemark/catalog-api/internal/globalid"
)

// CategoryResolver resolves the Category GraphQL type
type CategoryResolver struct {
	root   *Resolver
	record categorydao.Record
}

func newCategoryResolver(root *Resolver, record categorydao.Record) *CategoryResolver {
	return &CategoryResolver{root: root, record: record}
}

// ID resolves the id field
func (r *CategoryResolver) ID() graphql.ID {
	return graphql.ID(globalid.Encode(globalid.TypeCategory, r.record.ID))
}

// Name resolves the name field
func (r *CategoryResolver) Name() string {
	return r.record.Name
}

// Slug resolves the slug field
func (r *CategoryResolver) Slug() string {
	return r.record.Slug
}

// Description resolves the description field
func (r *CategoryResolver) Description() string {
	return r.record.Description
}

// Level resolves the level field
func (r *CategoryResolver) Level() int32 {
	return r.record.Level
}

// Parent resolves the parent field
func (r *CategoryResolver) Parent(ctx context.Context) (*CategoryResolver, error) {
	if r.record.ParentID == nil {
		return nil, nil
	}
	parent, err := r.root.categories.FindByID(ctx, *r.record.ParentID)
	if err != nil {
		if stderrors.Is(err, apierrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return newCategoryResolver(r.root, parent), nil
}

// Children resolves the children field
func (r *CategoryResolver) Children(ctx context.Context) ([]*CategoryResolver, error) {
	children, err := r.root.categories.ListChildren(ctx, r.record.ID)
	if err != nil {
		return nil, err
	}
	resolvers := make([]*CategoryResolver, 0, len(children))
	for _, child := range children {
		resolvers = append(resolvers, newCategoryResolver(r.root, child))
	}
	return resolvers, nil
}
