// Package catalog holds the domain layer of the product catalog: the store
// contracts the resolvers read through, the filter/sort engine applied to
// listed collections, and the mutation service.
package catalog

import (
	"context"

	"github.com/tidemark/catalog-api/internal/dao/categorydao"
	"github.com/tidemark/catalog-api/internal/dao/channeldao"
	"github.com/tidemark/catalog-api/internal/dao/collectiondao"
	"github.com/tidemark/catalog-api/internal/dao/digitaldao"
	"github.com/tidemark/catalog-api/internal/dao/productdao"
	"github.com/tidemark/catalog-api/internal/dao/producttypedao"
	"github.com/tidemark/catalog-api/internal/dao/variantdao"
)

// ChannelStore is the read surface of the channel DAO.
type ChannelStore interface {
	FindBySlug(ctx context.Context, slug string) (channeldao.Record, error)
	List(ctx context.Context) ([]channeldao.Record, error)
}

// CategoryStore is the read surface of the category DAO.
type CategoryStore interface {
	FindByID(ctx context.Context, id string) (categorydao.Record, error)
	FindBySlug(ctx context.Context, slug string) (categorydao.Record, error)
	List(ctx context.Context, level *int32) ([]categorydao.Record, error)
	ListChildren(ctx context.Context, parentID string) ([]categorydao.Record, error)
}

// CollectionStore is the read surface of the collection DAO.
type CollectionStore interface {
	Find(ctx context.Context, input collectiondao.FindInput) (collectiondao.Record, error)
	List(ctx context.Context, channelSlug *string, includeUnpublished bool) ([]collectiondao.Record, error)
}

// ProductStore is the read surface of the product DAO.
type ProductStore interface {
	Find(ctx context.Context, input productdao.FindInput) (productdao.Record, error)
	List(ctx context.Context, input productdao.ListInput) ([]productdao.Record, error)
	Listings(ctx context.Context, productID string) ([]productdao.ChannelListing, error)
}

// ProductTypeStore is the read surface of the product type DAO.
type ProductTypeStore interface {
	FindByID(ctx context.Context, id string) (producttypedao.Record, error)
	List(ctx context.Context) ([]producttypedao.Record, error)
}

// VariantStore is the read surface of the variant DAO.
type VariantStore interface {
	Find(ctx context.Context, input variantdao.FindInput) (variantdao.Record, error)
	List(ctx context.Context, input variantdao.ListInput) ([]variantdao.Record, error)
	ReportSales(ctx context.Context, channelSlug string, sinceUnix int64) ([]variantdao.SalesRecord, error)
}

// DigitalContentStore is the read surface of the digital content DAO.
type DigitalContentStore interface {
	FindByID(ctx context.Context, id string) (digitaldao.Record, error)
	FindByVariant(ctx context.Context, variantID string) (digitaldao.Record, error)
	List(ctx context.Context) ([]digitaldao.Record, error)
}
