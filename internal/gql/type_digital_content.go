package gql

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/tidemark/catalog-api/internal/dao/digitaldao"
	"github.com/tidemark/catalog-api/internal/dao/variantdao"
	"github.com/tidemark/catalog-api/internal/globalid"
)

// DigitalContentResolver resolves the DigitalContent GraphQL type
type DigitalContentResolver struct {
	root   *Resolver
	record digitaldao.Record
}

func newDigitalContentResolver(root *Resolver, record digitaldao.Record) *DigitalContentResolver {
	return &DigitalContentResolver{root: root, record: record}
}

// ID resolves the id field
func (r *DigitalContentResolver) ID() graphql.ID {
	return graphql.ID(globalid.Encode(globalid.TypeDigitalContent, r.record.ID))
}

// ContentFile resolves the contentFile field
func (r *DigitalContentResolver) ContentFile() string {
	return r.record.ContentFile
}

// UseDefaultSettings resolves the useDefaultSettings field
func (r *DigitalContentResolver) UseDefaultSettings() bool {
	return r.record.UseDefaultSettings
}

// MaxDownloads resolves the maxDownloads field
func (r *DigitalContentResolver) MaxDownloads() *int32 {
	return r.record.MaxDownloads
}

// UrlValidDays resolves the urlValidDays field
func (r *DigitalContentResolver) UrlValidDays() *int32 {
	return r.record.URLValidDays
}

// ProductVariant resolves the productVariant field
func (r *DigitalContentResolver) ProductVariant(ctx context.Context) (*ProductVariantResolver, error) {
	record, err := r.root.variants.Find(ctx, variantdao.FindInput{ID: &r.record.VariantID})
	if err != nil {
		return nil, err
	}
	return newProductVariantResolver(r.root, record, nil), nil
}
