package gql

import (
	"time"

	"github.com/tidemark/catalog-api/internal/catalog"
	"github.com/tidemark/catalog-api/internal/dao/producttypedao"
)

// ReportingPeriod represents the GraphQL ReportingPeriod enum
type ReportingPeriod string

const (
	ReportingPeriodToday     ReportingPeriod = "TODAY"
	ReportingPeriodThisMonth ReportingPeriod = "THIS_MONTH"
)

// Since returns the inclusive start of the reporting period relative to now.
func (p ReportingPeriod) Since(now time.Time) time.Time {
	switch p {
	case ReportingPeriodThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
}

// ProductTypeKindEnum represents the GraphQL ProductTypeKindEnum enum
type ProductTypeKindEnum string

const (
	ProductTypeKindNormal   ProductTypeKindEnum = "NORMAL"
	ProductTypeKindGiftCard ProductTypeKindEnum = "GIFT_CARD"
)

// ToModelKind converts a gql kind to its producttypedao counterpart
func (k ProductTypeKindEnum) ToModelKind() producttypedao.Kind {
	return producttypedao.Kind(k)
}

// OrderDirectionInput is the GraphQL OrderDirection enum
type OrderDirectionInput string

func (d *OrderDirectionInput) toDirection() catalog.OrderDirection {
	if d == nil {
		return catalog.DirectionAsc
	}
	return catalog.OrderDirection(*d)
}

// ProductOrderInput is the sort input of the products query
type ProductOrderInput struct {
	Field     string
	Direction *OrderDirectionInput
}

func (o *ProductOrderInput) toOrder() *catalog.ProductOrder {
	if o == nil {
		return nil
	}
	return &catalog.ProductOrder{
		Field:     catalog.ProductOrderField(o.Field),
		Direction: o.Direction.toDirection(),
	}
}

// SortingInput is the shared sort input of the remaining list queries
type SortingInput struct {
	Field     string
	Direction *OrderDirectionInput
}

func (o *SortingInput) toOrder() catalog.SimpleOrder {
	if o == nil {
		return catalog.EffectiveSimpleOrder(nil)
	}
	return catalog.EffectiveSimpleOrder(&catalog.SimpleOrder{
		Field:     catalog.SimpleOrderField(o.Field),
		Direction: o.Direction.toDirection(),
	})
}
