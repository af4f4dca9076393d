package gql

import (
	"github.com/tidemark/catalog-api/internal/relay"
)

// ConnectionResolver resolves a Connection GraphQL type over node resolvers
// of type N.
type ConnectionResolver[N any] struct {
	edges      []*EdgeResolver[N]
	pageInfo   relay.PageInfo
	totalCount int32
}

// newConnectionResolver wraps a paginated collection, converting each item
// into its node resolver.
func newConnectionResolver[T, N any](conn relay.Connection[T], wrap func(T) N) *ConnectionResolver[N] {
	edges := make([]*EdgeResolver[N], 0, len(conn.Edges))
	for _, e := range conn.Edges {
		edges = append(edges, &EdgeResolver[N]{node: wrap(e.Node), cursor: e.Cursor})
	}
	return &ConnectionResolver[N]{
		edges:      edges,
		pageInfo:   conn.PageInfo,
		totalCount: conn.TotalCount,
	}
}

// Edges resolves the edges field
func (r *ConnectionResolver[N]) Edges() []*EdgeResolver[N] {
	return r.edges
}

// PageInfo resolves the pageInfo field
func (r *ConnectionResolver[N]) PageInfo() *PageInfoResolver {
	return &PageInfoResolver{info: r.pageInfo}
}

// TotalCount resolves the totalCount field
func (r *ConnectionResolver[N]) TotalCount() int32 {
	return r.totalCount
}

// EdgeResolver resolves a CountableEdge GraphQL type
type EdgeResolver[N any] struct {
	node   N
	cursor string
}

// Node resolves the node field
func (r *EdgeResolver[N]) Node() N {
	return r.node
}

// Cursor resolves the cursor field
func (r *EdgeResolver[N]) Cursor() string {
	return r.cursor
}

// PageInfoResolver resolves the PageInfo GraphQL type
type PageInfoResolver struct {
	info relay.PageInfo
}

// HasNextPage resolves the hasNextPage field
func (r *PageInfoResolver) HasNextPage() bool {
	return r.info.HasNextPage
}

// HasPreviousPage resolves the hasPreviousPage field
func (r *PageInfoResolver) HasPreviousPage() bool {
	return r.info.HasPreviousPage
}

// StartCursor resolves the startCursor field
func (r *PageInfoResolver) StartCursor() *string {
	return r.info.StartCursor
}

// EndCursor resolves the endCursor field
func (r *PageInfoResolver) EndCursor() *string {
	return r.info.EndCursor
}
