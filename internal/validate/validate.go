// Package validate holds small request-validation helpers shared by the
// GraphQL resolvers.
package validate

import (
	"fmt"
	"sort"
	"strings"

	apierrors "github.com/tidemark/catalog-api/internal/errors"
)

// ExactlyOneOf asserts that exactly one of the named arguments is set.
// Lookup queries accept several alternative identifiers (id, slug, sku,
// externalReference); callers must supply one and only one of them.
func ExactlyOneOf(args map[string]*string) error {
	var supplied []string
	for name, value := range args {
		if value != nil && *value != "" {
			supplied = append(supplied, name)
		}
	}

	switch len(supplied) {
	case 1:
		return nil
	case 0:
		return fmt.Errorf("%w: one of %s must be provided", apierrors.ErrInvalidArguments, argNames(args))
	default:
		sort.Strings(supplied)
		return fmt.Errorf("%w: only one of %s may be provided, got %s",
			apierrors.ErrInvalidArguments, argNames(args), strings.Join(supplied, ", "))
	}
}

func argNames(args map[string]*string) string {
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
