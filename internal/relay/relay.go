// Package relay implements cursor-based connection pagination over ordered
// collections. A cursor encodes the sort-key tuple of the edge it points at,
// so re-requesting the same cursor against the same ordering resumes from the
// same position.
package relay

import (
	"encoding/base64"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
)

// Args carries the pagination arguments of a connection field.
type Args struct {
	First  *int32
	After  *string
	Last   *int32
	Before *string
}

// PageInfo reports whether paging can continue in either direction.
type PageInfo struct {
	HasNextPage     bool
	HasPreviousPage bool
	StartCursor     *string
	EndCursor       *string
}

// Edge pairs a node with the cursor that addresses it.
type Edge[T any] struct {
	Node   T
	Cursor string
}

// Connection is the pagination envelope returned by list queries.
type Connection[T any] struct {
	Edges      []Edge[T]
	PageInfo   PageInfo
	TotalCount int32
}

// KeyFunc extracts the ordered sort-key tuple of an item. The tuple must end
// with the entity ID so that keys are unique even among equal sort values.
type KeyFunc[T any] func(T) []string

// EncodeCursor serializes a sort-key tuple into its opaque wire form.
func EncodeCursor(key []string) string {
	payload, err := msgpack.Marshal(key)
	if err != nil {
		// a []string cannot fail to marshal
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(payload)
}

// DecodeCursor parses an opaque cursor back into a sort-key tuple.
func DecodeCursor(cursor string) ([]string, error) {
	payload, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apierrors.ErrInvalidCursor, cursor)
	}
	var key []string
	if err := msgpack.Unmarshal(payload, &key); err != nil {
		return nil, fmt.Errorf("%w: %q", apierrors.ErrInvalidCursor, cursor)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: empty cursor payload", apierrors.ErrInvalidCursor)
	}
	return key, nil
}

// Slice cuts a page out of an already filtered and ordered collection.
// Exactly one paging direction must be requested: first (optionally with
// after) or last (optionally with before). Page existence flags are computed
// by looking one item beyond the requested count.
func Slice[T any](items []T, keyOf KeyFunc[T], args Args) (Connection[T], error) {
	if args.First != nil && args.Last != nil {
		return Connection[T]{}, fmt.Errorf("%w: first and last cannot be combined", apierrors.ErrInvalidArguments)
	}
	if args.First == nil && args.Last == nil {
		return Connection[T]{}, fmt.Errorf("%w: either first or last is required", apierrors.ErrInvalidArguments)
	}
	if args.After != nil && args.Before != nil {
		return Connection[T]{}, fmt.Errorf("%w: after and before cannot be combined", apierrors.ErrInvalidArguments)
	}
	if args.After != nil && args.First == nil {
		return Connection[T]{}, fmt.Errorf("%w: after requires first", apierrors.ErrInvalidArguments)
	}
	if args.Before != nil && args.Last == nil {
		return Connection[T]{}, fmt.Errorf("%w: before requires last", apierrors.ErrInvalidArguments)
	}
	if args.First != nil && *args.First < 0 {
		return Connection[T]{}, fmt.Errorf("%w: first must not be negative", apierrors.ErrInvalidArguments)
	}
	if args.Last != nil && *args.Last < 0 {
		return Connection[T]{}, fmt.Errorf("%w: last must not be negative", apierrors.ErrInvalidArguments)
	}

	backward := args.Last != nil

	var window []T
	var hasNext, hasPrevious bool
	total := int32(len(items))

	if backward {
		end := len(items)
		if args.Before != nil {
			pos, err := locate(items, keyOf, *args.Before)
			if err != nil {
				return Connection[T]{}, err
			}
			end = pos
			hasNext = end < len(items)
		}
		window = items[:end]
		count := int(*args.Last)
		if len(window) > count {
			hasPrevious = true
			window = window[len(window)-count:]
		}
	} else {
		start := 0
		if args.After != nil {
			pos, err := locate(items, keyOf, *args.After)
			if err != nil {
				return Connection[T]{}, err
			}
			start = pos + 1
			hasPrevious = start > 0
		}
		window = items[start:]
		count := int(*args.First)
		if len(window) > count {
			hasNext = true
			window = window[:count]
		}
	}

	conn := Connection[T]{TotalCount: total}
	conn.Edges = make([]Edge[T], len(window))
	for i, item := range window {
		conn.Edges[i] = Edge[T]{Node: item, Cursor: EncodeCursor(keyOf(item))}
	}
	conn.PageInfo = PageInfo{HasNextPage: hasNext, HasPreviousPage: hasPrevious}
	if len(conn.Edges) > 0 {
		conn.PageInfo.StartCursor = &conn.Edges[0].Cursor
		conn.PageInfo.EndCursor = &conn.Edges[len(conn.Edges)-1].Cursor
	}
	return conn, nil
}

// locate finds the index of the item a cursor addresses. A cursor whose key
// no longer appears in the collection is stale and rejected; the caller is
// expected to restart pagination from the beginning.
func locate[T any](items []T, keyOf KeyFunc[T], cursor string) (int, error) {
	key, err := DecodeCursor(cursor)
	if err != nil {
		return 0, err
	}
	for i, item := range items {
		if keyEqual(keyOf(item), key) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: cursor does not match the current ordering", apierrors.ErrInvalidCursor)
}

func keyEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
