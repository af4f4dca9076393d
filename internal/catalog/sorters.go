package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tidemark/catalog-api/internal/dao/categorydao"
	"github.com/tidemark/catalog-api/internal/dao/collectiondao"
	"github.com/tidemark/catalog-api/internal/dao/producttypedao"
	"github.com/tidemark/catalog-api/internal/dao/variantdao"
	"github.com/tidemark/catalog-api/internal/errors"
	"github.com/tidemark/catalog-api/internal/relay"
)

// OrderDirection gives the direction of a sort.
type OrderDirection string

const (
	DirectionAsc  OrderDirection = "ASC"
	DirectionDesc OrderDirection = "DESC"
)

// ProductOrderField names the sortable fields of a product collection.
type ProductOrderField string

const (
	ProductOrderName  ProductOrderField = "NAME"
	ProductOrderSlug  ProductOrderField = "SLUG"
	ProductOrderPrice ProductOrderField = "PRICE"
	ProductOrderDate  ProductOrderField = "DATE"
	ProductOrderRank  ProductOrderField = "RANK"
)

// ProductOrder is the sort input of the products query.
type ProductOrder struct {
	Field     ProductOrderField
	Direction OrderDirection
}

// EffectiveProductOrder resolves the sort actually applied to a product
// collection. Sorting by rank requires a search predicate; searching
// without an explicit sort defaults to rank descending. With neither
// search nor sort the collection keeps its natural slug order.
func EffectiveProductOrder(order *ProductOrder, searching bool) (ProductOrder, error) {
	if order == nil {
		if searching {
			return ProductOrder{Field: ProductOrderRank, Direction: DirectionDesc}, nil
		}
		return ProductOrder{Field: ProductOrderSlug, Direction: DirectionAsc}, nil
	}
	if order.Field == ProductOrderRank && !searching {
		return ProductOrder{}, errors.ErrRankSortWithoutSearch
	}
	if order.Direction == "" {
		return ProductOrder{Field: order.Field, Direction: DirectionAsc}, nil
	}
	return *order, nil
}

// SortProducts orders items in place. Ties on the sort field always break
// by ID ascending so that cursor tuples stay unambiguous.
func SortProducts(items []RankedProduct, order ProductOrder) {
	sort.SliceStable(items, func(i, j int) bool {
		cmp := compareProducts(items[i], items[j], order.Field)
		if order.Direction == DirectionDesc {
			cmp = -cmp
		}
		if cmp != 0 {
			return cmp < 0
		}
		return items[i].ID < items[j].ID
	})
}

func compareProducts(a, b RankedProduct, field ProductOrderField) int {
	switch field {
	case ProductOrderName:
		return strings.Compare(a.Name, b.Name)
	case ProductOrderPrice:
		return compareFloats(sortPrice(a), sortPrice(b))
	case ProductOrderDate:
		return compareInts(a.CreatedAt, b.CreatedAt)
	case ProductOrderRank:
		return compareFloats(a.Rank, b.Rank)
	default:
		return strings.Compare(a.Slug, b.Slug)
	}
}

// sortPrice treats an unpriced product as more expensive than any priced
// one so it lands at the end of an ascending price sort.
func sortPrice(r RankedProduct) float64 {
	if price, ok := listedPrice(r.Record); ok {
		return price
	}
	return maxSortPrice
}

const maxSortPrice = 1e15

// ProductKey builds the cursor tuple for one product under order. The
// tuple carries the sort field value followed by the ID tie-break.
func ProductKey(order ProductOrder) relay.KeyFunc[RankedProduct] {
	return func(r RankedProduct) []string {
		var field string
		switch order.Field {
		case ProductOrderName:
			field = r.Name
		case ProductOrderPrice:
			field = strconv.FormatFloat(sortPrice(r), 'f', 4, 64)
		case ProductOrderDate:
			field = strconv.FormatInt(r.CreatedAt, 10)
		case ProductOrderRank:
			field = strconv.FormatFloat(r.Rank, 'f', 6, 64)
		default:
			field = r.Slug
		}
		return []string{field, r.ID}
	}
}

// SimpleOrderField names the sortable fields shared by the remaining
// collections. Not every field applies to every entity; the resolvers
// expose the valid subset per query.
type SimpleOrderField string

const (
	SimpleOrderName SimpleOrderField = "NAME"
	SimpleOrderSlug SimpleOrderField = "SLUG"
	SimpleOrderSKU  SimpleOrderField = "SKU"
)

// SimpleOrder is the sort input of the category, collection, product type
// and variant queries.
type SimpleOrder struct {
	Field     SimpleOrderField
	Direction OrderDirection
}

// EffectiveSimpleOrder resolves a nil or partial order to its defaults.
func EffectiveSimpleOrder(order *SimpleOrder) SimpleOrder {
	if order == nil {
		return SimpleOrder{Field: SimpleOrderSlug, Direction: DirectionAsc}
	}
	resolved := *order
	if resolved.Field == "" {
		resolved.Field = SimpleOrderSlug
	}
	if resolved.Direction == "" {
		resolved.Direction = DirectionAsc
	}
	return resolved
}

// SortCategories orders items in place with the ID ascending tie-break.
func SortCategories(items []categorydao.Record, order SimpleOrder) {
	sortSimple(items, order, func(r categorydao.Record) (string, string, string) {
		return r.Name, r.Slug, r.ID
	})
}

// CategoryKey builds the cursor tuple for one category under order.
func CategoryKey(order SimpleOrder) relay.KeyFunc[categorydao.Record] {
	return simpleKey(order, func(r categorydao.Record) (string, string, string) {
		return r.Name, r.Slug, r.ID
	})
}

// SortCollections orders items in place with the ID ascending tie-break.
func SortCollections(items []collectiondao.Record, order SimpleOrder) {
	sortSimple(items, order, func(r collectiondao.Record) (string, string, string) {
		return r.Name, r.Slug, r.ID
	})
}

// CollectionKey builds the cursor tuple for one collection under order.
func CollectionKey(order SimpleOrder) relay.KeyFunc[collectiondao.Record] {
	return simpleKey(order, func(r collectiondao.Record) (string, string, string) {
		return r.Name, r.Slug, r.ID
	})
}

// SortProductTypes orders items in place with the ID ascending tie-break.
func SortProductTypes(items []producttypedao.Record, order SimpleOrder) {
	sortSimple(items, order, func(r producttypedao.Record) (string, string, string) {
		return r.Name, r.Slug, r.ID
	})
}

// ProductTypeKey builds the cursor tuple for one product type under order.
func ProductTypeKey(order SimpleOrder) relay.KeyFunc[producttypedao.Record] {
	return simpleKey(order, func(r producttypedao.Record) (string, string, string) {
		return r.Name, r.Slug, r.ID
	})
}

// SortVariants orders items in place. Variants have no slug; the SKU field
// takes its place, with SKU-less variants sorting last.
func SortVariants(items []variantdao.Record, order SimpleOrder) {
	key := VariantKey(order)
	sort.SliceStable(items, func(i, j int) bool {
		a, b := key(items[i]), key(items[j])
		for k := 0; k < len(a)-1; k++ {
			cmp := strings.Compare(a[k], b[k])
			if order.Direction == DirectionDesc {
				cmp = -cmp
			}
			if cmp != 0 {
				return cmp < 0
			}
		}
		return a[len(a)-1] < b[len(b)-1]
	})
}

// VariantKey builds the cursor tuple for one variant under order. SKU keys
// lead with a presence marker so a missing SKU orders after every real one
// and no SKU value has to be reserved as a sentinel.
func VariantKey(order SimpleOrder) relay.KeyFunc[variantdao.Record] {
	return func(r variantdao.Record) []string {
		if order.Field == SimpleOrderName {
			return []string{r.Name, r.ID}
		}
		if r.SKU == nil {
			return []string{"1", "", r.ID}
		}
		return []string{"0", *r.SKU, r.ID}
	}
}

func sortSimple[T any](items []T, order SimpleOrder, fields func(T) (name, alt, id string)) {
	key := simpleKey(order, fields)
	sort.SliceStable(items, func(i, j int) bool {
		a, b := key(items[i]), key(items[j])
		cmp := strings.Compare(a[0], b[0])
		if order.Direction == DirectionDesc {
			cmp = -cmp
		}
		if cmp != 0 {
			return cmp < 0
		}
		return a[1] < b[1]
	})
}

func simpleKey[T any](order SimpleOrder, fields func(T) (name, alt, id string)) relay.KeyFunc[T] {
	return func(item T) []string {
		name, alt, id := fields(item)
		if order.Field == SimpleOrderName {
			return []string{name, id}
		}
		return []string{alt, id}
	}
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInts(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
