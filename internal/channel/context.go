// Package channel models the sales-context scoping of catalog entities.
// A channel is identified by its slug and controls which pricing and
// availability data a request can see.
package channel

// Context pairs a resolved entity with the channel slug it was resolved
// under, so downstream field resolvers know which channel's listings apply.
// A nil slug means the requestor sees all channels. The pair is immutable.
type Context[T any] struct {
	node T
	slug *string
}

// NewContext wraps an entity with its resolved channel slug.
func NewContext[T any](node T, slug *string) Context[T] {
	return Context[T]{node: node, slug: slug}
}

// Node returns the wrapped entity.
func (c Context[T]) Node() T {
	return c.node
}

// Slug returns the channel slug the entity was resolved under, or nil when
// the requestor is unrestricted.
func (c Context[T]) Slug() *string {
	return c.slug
}
