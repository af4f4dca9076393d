package di

import (
	"github.com/tidemark/catalog-api/internal/catalog"
	"github.com/tidemark/catalog-api/internal/dao/categorydao"
	"github.com/tidemark/catalog-api/internal/dao/channeldao"
	"github.com/tidemark/catalog-api/internal/dao/collectiondao"
	"github.com/tidemark/catalog-api/internal/dao/digitaldao"
	"github.com/tidemark/catalog-api/internal/dao/productdao"
	"github.com/tidemark/catalog-api/internal/dao/producttypedao"
	"github.com/tidemark/catalog-api/internal/dao/variantdao"
)

// ProvideCatalogService creates the mutation service over the catalog DAOs.
func ProvideCatalogService(
	categories *categorydao.DAO,
	channels *channeldao.DAO,
	collections *collectiondao.DAO,
	digital *digitaldao.DAO,
	products *productdao.DAO,
	productTypes *producttypedao.DAO,
	variants *variantdao.DAO,
) *catalog.Service {
	return catalog.NewService(categories, channels, collections, digital, products, productTypes, variants)
}
