package gql

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/tidemark/catalog-api/internal/catalog"
	"github.com/tidemark/catalog-api/internal/globalid"
)

// decodeID unwraps an optional global ID into the internal key it names.
func decodeID(id *graphql.ID, typ globalid.Type) (*string, error) {
	if id == nil {
		return nil, nil
	}
	key, err := globalid.Decode(string(*id), typ)
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// decodeIDs unwraps a list of global IDs into internal keys.
func decodeIDs(ids []graphql.ID, typ globalid.Type) ([]string, error) {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		key, err := globalid.Decode(string(id), typ)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// idArg converts an optional graphql.ID into the string form expected by
// one-of argument validation.
func idArg(id *graphql.ID) *string {
	if id == nil {
		return nil
	}
	s := string(*id)
	return &s
}

// CategoryFilterInput is the filter input of the categories query
type CategoryFilterInput struct {
	Search *string
}

func (f *CategoryFilterInput) toFilter() *catalog.CategoryFilter {
	if f == nil {
		return nil
	}
	return &catalog.CategoryFilter{Search: f.Search}
}

// CollectionFilterInput is the filter input of the collections query
type CollectionFilterInput struct {
	Search *string
}

func (f *CollectionFilterInput) toFilter() *catalog.CollectionFilter {
	if f == nil {
		return nil
	}
	return &catalog.CollectionFilter{Search: f.Search}
}

// ProductTypeFilterInput is the filter input of the productTypes query
type ProductTypeFilterInput struct {
	Search *string
	Kind   *ProductTypeKindEnum
}

func (f *ProductTypeFilterInput) toFilter() *catalog.ProductTypeFilter {
	if f == nil {
		return nil
	}
	filter := &catalog.ProductTypeFilter{Search: f.Search}
	if f.Kind != nil {
		kind := f.Kind.ToModelKind()
		filter.Kind = &kind
	}
	return filter
}

// ProductVariantFilterInput is the filter input of the productVariants query
type ProductVariantFilterInput struct {
	Search *string
}

func (f *ProductVariantFilterInput) toFilter() *catalog.VariantFilter {
	if f == nil {
		return nil
	}
	return &catalog.VariantFilter{Search: f.Search}
}

// ProductFilterInput is the filter input of the products query
type ProductFilterInput struct {
	Search       *string
	Categories   *[]graphql.ID
	Collections  *[]graphql.ID
	ProductTypes *[]graphql.ID
	IsAvailable  *bool
	MinPrice     *float64
	MaxPrice     *float64
}

func (f *ProductFilterInput) toFilter() (*catalog.ProductFilter, error) {
	if f == nil {
		return nil, nil
	}
	filter := &catalog.ProductFilter{
		Search:      f.Search,
		IsAvailable: f.IsAvailable,
		MinPrice:    f.MinPrice,
		MaxPrice:    f.MaxPrice,
	}

	var err error
	if f.Categories != nil {
		if filter.CategoryIDs, err = decodeIDs(*f.Categories, globalid.TypeCategory); err != nil {
			return nil, err
		}
	}
	if f.Collections != nil {
		if filter.CollectionIDs, err = decodeIDs(*f.Collections, globalid.TypeCollection); err != nil {
			return nil, err
		}
	}
	if f.ProductTypes != nil {
		if filter.ProductTypeIDs, err = decodeIDs(*f.ProductTypes, globalid.TypeProductType); err != nil {
			return nil, err
		}
	}
	return filter, nil
}
