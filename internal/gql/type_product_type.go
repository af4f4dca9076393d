package gql

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/tidemark/catalog-api/internal/dao/producttypedao"
	"github.com/tidemark/catalog-api/internal/globalid"
)

// ProductTypeResolver resolves the ProductType GraphQL type
type ProductTypeResolver struct {
	record producttypedao.Record
}

func newProductTypeResolver(record producttypedao.Record) *ProductTypeResolver {
	return &ProductTypeResolver{record: record}
}

// ID resolves the id field
func (r *ProductTypeResolver) ID() graphql.ID {
	return graphql.ID(globalid.Encode(globalid.TypeProductType, r.record.ID))
}

// Name resolves the name field
func (r *ProductTypeResolver) Name() string {
	return r.record.Name
}

// Slug resolves the slug field
func (r *ProductTypeResolver) Slug() string {
	return r.record.Slug
}

// Kind resolves the kind field
func (r *ProductTypeResolver) Kind() ProductTypeKindEnum {
	return ProductTypeKindEnum(r.record.Kind)
}

// IsShippingRequired resolves the isShippingRequired field
func (r *ProductTypeResolver) IsShippingRequired() bool {
	return r.record.IsShippingRequired
}

// IsDigital resolves the isDigital field
func (r *ProductTypeResolver) IsDigital() bool {
	return r.record.IsDigital
}

// HasVariants resolves the hasVariants field
func (r *ProductTypeResolver) HasVariants() bool {
	return r.record.HasVariants
}
