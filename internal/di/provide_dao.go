package di

import (
	"database/sql"

	"github.com/tidemark/catalog-api/internal/catalog"
	"github.com/tidemark/catalog-api/internal/dao/categorydao"
	"github.com/tidemark/catalog-api/internal/dao/channeldao"
	"github.com/tidemark/catalog-api/internal/dao/collectiondao"
	"github.com/tidemark/catalog-api/internal/dao/digitaldao"
	"github.com/tidemark/catalog-api/internal/dao/productdao"
	"github.com/tidemark/catalog-api/internal/dao/producttypedao"
	"github.com/tidemark/catalog-api/internal/dao/variantdao"
)

func ProvideChannelDAO(db *sql.DB) *channeldao.DAO {
	return channeldao.New(db)
}

func ProvideCategoryDAO(db *sql.DB) *categorydao.DAO {
	return categorydao.New(db)
}

func ProvideCollectionDAO(db *sql.DB) *collectiondao.DAO {
	return collectiondao.New(db)
}

func ProvideDigitalContentDAO(db *sql.DB) *digitaldao.DAO {
	return digitaldao.New(db)
}

func ProvideProductDAO(db *sql.DB) *productdao.DAO {
	return productdao.New(db)
}

func ProvideProductTypeDAO(db *sql.DB) *producttypedao.DAO {
	return producttypedao.New(db)
}

func ProvideVariantDAO(db *sql.DB) *variantdao.DAO {
	return variantdao.New(db)
}

func ProvideChannelStore(dao *channeldao.DAO) catalog.ChannelStore {
	return dao
}

func ProvideCategoryStore(dao *categorydao.DAO) catalog.CategoryStore {
	return dao
}

func ProvideCollectionStore(dao *collectiondao.DAO) catalog.CollectionStore {
	return dao
}

func ProvideDigitalContentStore(dao *digitaldao.DAO) catalog.DigitalContentStore {
	return dao
}

func ProvideProductStore(dao *productdao.DAO) catalog.ProductStore {
	return dao
}

func ProvideProductTypeStore(dao *producttypedao.DAO) catalog.ProductTypeStore {
	return dao
}

func ProvideVariantStore(dao *variantdao.DAO) catalog.VariantStore {
	return dao
}
