package catalog

import (
	"github.com/tidemark/catalog-api/internal/dao/categorydao"
	"github.com/tidemark/catalog-api/internal/dao/collectiondao"
	"github.com/tidemark/catalog-api/internal/dao/productdao"
	"github.com/tidemark/catalog-api/internal/dao/producttypedao"
	"github.com/tidemark/catalog-api/internal/dao/variantdao"
)

// ProductFilter is the structured filter input of the products query. The
// ID sets are applied DB-side by the product DAO; search, price and
// availability predicates are applied here, where the matched channel
// listing is at hand.
type ProductFilter struct {
	Search         *string
	CategoryIDs    []string
	CollectionIDs  []string
	ProductTypeIDs []string
	IsAvailable    *bool
	MinPrice       *float64
	MaxPrice       *float64
}

// HasSearch reports whether the filter carries a usable search term.
func (f *ProductFilter) HasSearch() bool {
	return f != nil && hasSearch(f.Search)
}

// RankedProduct pairs a product with its relevance rank. Rank is zero
// unless a search predicate was applied.
type RankedProduct struct {
	productdao.Record
	Rank float64
}

// FilterProducts applies the in-memory predicates of filter to an ordered
// product collection, computing relevance ranks when a search term is
// present. Entities with no matching term are excluded from search results.
func FilterProducts(records []productdao.Record, filter *ProductFilter) []RankedProduct {
	ranked := make([]RankedProduct, 0, len(records))
	for _, r := range records {
		item := RankedProduct{Record: r}

		if filter != nil {
			if filter.HasSearch() {
				item.Rank = searchRank(*filter.Search, r.Name, r.Description)
				if item.Rank == 0 {
					continue
				}
			}
			if filter.IsAvailable != nil {
				available := r.Listing != nil && r.Listing.AvailableForPurchase
				if available != *filter.IsAvailable {
					continue
				}
			}
			if filter.MinPrice != nil || filter.MaxPrice != nil {
				price, ok := listedPrice(r)
				if !ok {
					continue
				}
				if filter.MinPrice != nil && price < *filter.MinPrice {
					continue
				}
				if filter.MaxPrice != nil && price > *filter.MaxPrice {
					continue
				}
			}
		}

		ranked = append(ranked, item)
	}
	return ranked
}

func listedPrice(r productdao.Record) (float64, bool) {
	if r.Listing == nil || r.Listing.PriceAmount == nil {
		return 0, false
	}
	return *r.Listing.PriceAmount, true
}

// CategoryFilter is the structured filter input of the categories query.
type CategoryFilter struct {
	Search *string
}

// FilterCategories applies filter to a category collection.
func FilterCategories(records []categorydao.Record, filter *CategoryFilter) []categorydao.Record {
	if filter == nil || !hasSearch(filter.Search) {
		return records
	}
	out := make([]categorydao.Record, 0, len(records))
	for _, r := range records {
		if searchRank(*filter.Search, r.Name, r.Description) > 0 {
			out = append(out, r)
		}
	}
	return out
}

// CollectionFilter is the structured filter input of the collections query.
type CollectionFilter struct {
	Search *string
}

// FilterCollections applies filter to a collection set.
func FilterCollections(records []collectiondao.Record, filter *CollectionFilter) []collectiondao.Record {
	if filter == nil || !hasSearch(filter.Search) {
		return records
	}
	out := make([]collectiondao.Record, 0, len(records))
	for _, r := range records {
		if searchRank(*filter.Search, r.Name, r.Description) > 0 {
			out = append(out, r)
		}
	}
	return out
}

// ProductTypeFilter is the structured filter input of the productTypes
// query.
type ProductTypeFilter struct {
	Search *string
	Kind   *producttypedao.Kind
}

// FilterProductTypes applies filter to a product type collection.
func FilterProductTypes(records []producttypedao.Record, filter *ProductTypeFilter) []producttypedao.Record {
	if filter == nil {
		return records
	}
	out := make([]producttypedao.Record, 0, len(records))
	for _, r := range records {
		if hasSearch(filter.Search) && searchRank(*filter.Search, r.Name, r.Slug) == 0 {
			continue
		}
		if filter.Kind != nil && r.Kind != *filter.Kind {
			continue
		}
		out = append(out, r)
	}
	return out
}

// VariantFilter is the structured filter input of the productVariants
// query.
type VariantFilter struct {
	Search *string
}

// FilterVariants applies filter to a variant collection, matching against
// name and SKU.
func FilterVariants(records []variantdao.Record, filter *VariantFilter) []variantdao.Record {
	if filter == nil || !hasSearch(filter.Search) {
		return records
	}
	out := make([]variantdao.Record, 0, len(records))
	for _, r := range records {
		sku := ""
		if r.SKU != nil {
			sku = *r.SKU
		}
		if searchRank(*filter.Search, r.Name, sku) > 0 {
			out = append(out, r)
		}
	}
	return out
}
