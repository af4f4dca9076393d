package catalog

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tidemark/catalog-api/internal/dao/categorydao"
	"github.com/tidemark/catalog-api/internal/dao/channeldao"
	"github.com/tidemark/catalog-api/internal/dao/collectiondao"
	"github.com/tidemark/catalog-api/internal/dao/digitaldao"
	"github.com/tidemark/catalog-api/internal/dao/productdao"
	"github.com/tidemark/catalog-api/internal/dao/producttypedao"
	"github.com/tidemark/catalog-api/internal/dao/variantdao"
	"github.com/tidemark/catalog-api/internal/errors"
)

// Service implements the write operations of the catalog. Reads go through
// the store interfaces directly; mutations funnel through here so that
// cross-entity checks live in one place.
type Service struct {
	categories   *categorydao.DAO
	channels     *channeldao.DAO
	collections  *collectiondao.DAO
	digital      *digitaldao.DAO
	products     *productdao.DAO
	productTypes *producttypedao.DAO
	variants     *variantdao.DAO
}

// NewService creates a Service over the given DAOs.
func NewService(
	categories *categorydao.DAO,
	channels *channeldao.DAO,
	collections *collectiondao.DAO,
	digital *digitaldao.DAO,
	products *productdao.DAO,
	productTypes *producttypedao.DAO,
	variants *variantdao.DAO,
) *Service {
	return &Service{
		categories:   categories,
		channels:     channels,
		collections:  collections,
		digital:      digital,
		products:     products,
		productTypes: productTypes,
		variants:     variants,
	}
}

// CreateCategory creates a category, deriving its level from the parent.
func (s *Service) CreateCategory(ctx context.Context, input categorydao.CreateInput) (categorydao.Record, error) {
	if input.ParentID != nil {
		if _, err := s.categories.FindByID(ctx, *input.ParentID); err != nil {
			return categorydao.Record{}, fmt.Errorf("parent category: %w", err)
		}
	}
	record, err := s.categories.Create(ctx, input)
	if err != nil {
		return categorydao.Record{}, err
	}
	zerolog.Ctx(ctx).Info().
		Str("category_id", record.ID).
		Str("slug", record.Slug).
		Msg("category created")
	return record, nil
}

// UpdateCategory applies the non-nil fields of input to a category.
func (s *Service) UpdateCategory(ctx context.Context, id string, input categorydao.UpdateInput) (categorydao.Record, error) {
	return s.categories.Update(ctx, id, input)
}

// DeleteCategory removes a category. Its children are re-parented onto the
// deleted node's parent by the DAO.
func (s *Service) DeleteCategory(ctx context.Context, id string) (categorydao.Record, error) {
	record, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return categorydao.Record{}, err
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return categorydao.Record{}, err
	}
	zerolog.Ctx(ctx).Info().Str("category_id", id).Msg("category deleted")
	return record, nil
}

// CreateCollection creates an empty collection with no channel listings.
func (s *Service) CreateCollection(ctx context.Context, input collectiondao.CreateInput) (collectiondao.Record, error) {
	record, err := s.collections.Create(ctx, input)
	if err != nil {
		return collectiondao.Record{}, err
	}
	zerolog.Ctx(ctx).Info().
		Str("collection_id", record.ID).
		Str("slug", record.Slug).
		Msg("collection created")
	return record, nil
}

// UpdateCollection applies the non-nil fields of input to a collection.
func (s *Service) UpdateCollection(ctx context.Context, id string, input collectiondao.UpdateInput) (collectiondao.Record, error) {
	return s.collections.Update(ctx, id, input)
}

// DeleteCollection removes a collection together with its product links
// and channel listings.
func (s *Service) DeleteCollection(ctx context.Context, id string) (collectiondao.Record, error) {
	record, err := s.collections.Find(ctx, collectiondao.FindInput{ID: &id, IncludeUnpublished: true})
	if err != nil {
		return collectiondao.Record{}, err
	}
	if err := s.collections.Delete(ctx, id); err != nil {
		return collectiondao.Record{}, err
	}
	zerolog.Ctx(ctx).Info().Str("collection_id", id).Msg("collection deleted")
	return record, nil
}

// AddProductsToCollection links products into a collection. Every product
// must exist; links that already exist are left untouched.
func (s *Service) AddProductsToCollection(ctx context.Context, collectionID string, productIDs []string) (collectiondao.Record, error) {
	record, err := s.collections.Find(ctx, collectiondao.FindInput{ID: &collectionID, IncludeUnpublished: true})
	if err != nil {
		return collectiondao.Record{}, err
	}
	for _, productID := range productIDs {
		if _, err := s.products.Find(ctx, productdao.FindInput{ID: &productID, IncludeUnpublished: true}); err != nil {
			return collectiondao.Record{}, fmt.Errorf("product %v: %w", productID, err)
		}
	}
	if err := s.collections.AddProducts(ctx, collectionID, productIDs); err != nil {
		return collectiondao.Record{}, err
	}
	return record, nil
}

// RemoveProductsFromCollection unlinks products from a collection. IDs not
// currently linked are ignored.
func (s *Service) RemoveProductsFromCollection(ctx context.Context, collectionID string, productIDs []string) (collectiondao.Record, error) {
	record, err := s.collections.Find(ctx, collectiondao.FindInput{ID: &collectionID, IncludeUnpublished: true})
	if err != nil {
		return collectiondao.Record{}, err
	}
	if err := s.collections.RemoveProducts(ctx, collectionID, productIDs); err != nil {
		return collectiondao.Record{}, err
	}
	return record, nil
}

// UpdateCollectionListings upserts per-channel visibility for a collection.
func (s *Service) UpdateCollectionListings(ctx context.Context, collectionID string, listings []collectiondao.ListingInput) (collectiondao.Record, error) {
	record, err := s.collections.Find(ctx, collectiondao.FindInput{ID: &collectionID, IncludeUnpublished: true})
	if err != nil {
		return collectiondao.Record{}, err
	}
	for _, l := range listings {
		if err := s.requireChannel(ctx, l.ChannelSlug); err != nil {
			return collectiondao.Record{}, err
		}
	}
	if err := s.collections.UpsertListings(ctx, collectionID, listings); err != nil {
		return collectiondao.Record{}, err
	}
	return record, nil
}

// CreateProduct creates a product. The product type must exist, and so
// must the category when one is given.
func (s *Service) CreateProduct(ctx context.Context, input productdao.CreateInput) (productdao.Record, error) {
	if _, err := s.productTypes.FindByID(ctx, input.ProductTypeID); err != nil {
		return productdao.Record{}, fmt.Errorf("product type: %w", err)
	}
	if input.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *input.CategoryID); err != nil {
			return productdao.Record{}, fmt.Errorf("category: %w", err)
		}
	}
	record, err := s.products.Create(ctx, input)
	if err != nil {
		return productdao.Record{}, err
	}
	zerolog.Ctx(ctx).Info().
		Str("product_id", record.ID).
		Str("slug", record.Slug).
		Msg("product created")
	return record, nil
}

// UpdateProduct applies the non-nil fields of input to a product.
func (s *Service) UpdateProduct(ctx context.Context, id string, input productdao.UpdateInput) (productdao.Record, error) {
	if input.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *input.CategoryID); err != nil {
			return productdao.Record{}, fmt.Errorf("category: %w", err)
		}
	}
	return s.products.Update(ctx, id, input)
}

// DeleteProduct removes a product together with its variants, listings and
// collection links.
func (s *Service) DeleteProduct(ctx context.Context, id string) (productdao.Record, error) {
	record, err := s.products.Find(ctx, productdao.FindInput{ID: &id, IncludeUnpublished: true})
	if err != nil {
		return productdao.Record{}, err
	}
	variants, err := s.variants.List(ctx, variantdao.ListInput{ProductID: &id})
	if err != nil {
		return productdao.Record{}, err
	}
	for _, v := range variants {
		if err := s.variants.Delete(ctx, v.ID); err != nil {
			return productdao.Record{}, err
		}
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return productdao.Record{}, err
	}
	zerolog.Ctx(ctx).Info().Str("product_id", id).Msg("product deleted")
	return record, nil
}

// SetDefaultVariant marks one of a product's variants as the default. The
// variant must belong to the product.
func (s *Service) SetDefaultVariant(ctx context.Context, productID, variantID string) (productdao.Record, error) {
	variant, err := s.variants.Find(ctx, variantdao.FindInput{ID: &variantID})
	if err != nil {
		return productdao.Record{}, err
	}
	if variant.ProductID != productID {
		return productdao.Record{}, fmt.Errorf("variant %v does not belong to product %v: %w", variantID, productID, errors.ErrInvalidArguments)
	}
	if err := s.products.SetDefaultVariant(ctx, productID, &variantID); err != nil {
		return productdao.Record{}, err
	}
	return s.products.Find(ctx, productdao.FindInput{ID: &productID, IncludeUnpublished: true})
}

// UpdateProductListings upserts per-channel listings for a product and
// removes the listings of the named channels in one call.
func (s *Service) UpdateProductListings(ctx context.Context, productID string, upsert []productdao.ListingInput, removeChannels []string) (productdao.Record, error) {
	record, err := s.products.Find(ctx, productdao.FindInput{ID: &productID, IncludeUnpublished: true})
	if err != nil {
		return productdao.Record{}, err
	}
	for _, l := range upsert {
		if err := s.requireChannel(ctx, l.ChannelSlug); err != nil {
			return productdao.Record{}, err
		}
	}
	if len(upsert) > 0 {
		if err := s.products.UpsertListings(ctx, productID, upsert); err != nil {
			return productdao.Record{}, err
		}
	}
	if len(removeChannels) > 0 {
		if err := s.products.RemoveListings(ctx, productID, removeChannels); err != nil {
			return productdao.Record{}, err
		}
	}
	return record, nil
}

// CreateProductType creates a product type.
func (s *Service) CreateProductType(ctx context.Context, input producttypedao.CreateInput) (producttypedao.Record, error) {
	record, err := s.productTypes.Create(ctx, input)
	if err != nil {
		return producttypedao.Record{}, err
	}
	zerolog.Ctx(ctx).Info().
		Str("product_type_id", record.ID).
		Str("slug", record.Slug).
		Msg("product type created")
	return record, nil
}

// UpdateProductType applies the non-nil fields of input to a product type.
func (s *Service) UpdateProductType(ctx context.Context, id string, input producttypedao.UpdateInput) (producttypedao.Record, error) {
	return s.productTypes.Update(ctx, id, input)
}

// DeleteProductType removes a product type. Types still referenced by a
// product cannot be deleted.
func (s *Service) DeleteProductType(ctx context.Context, id string) (producttypedao.Record, error) {
	record, err := s.productTypes.FindByID(ctx, id)
	if err != nil {
		return producttypedao.Record{}, err
	}
	inUse, err := s.products.List(ctx, productdao.ListInput{
		ProductTypeIDs:     []string{id},
		IncludeUnpublished: true,
	})
	if err != nil {
		return producttypedao.Record{}, err
	}
	if len(inUse) > 0 {
		return producttypedao.Record{}, fmt.Errorf("product type %v is used by %d products: %w", id, len(inUse), errors.ErrInvalidArguments)
	}
	if err := s.productTypes.Delete(ctx, id); err != nil {
		return producttypedao.Record{}, err
	}
	return record, nil
}

// CreateVariant creates a variant under an existing product.
func (s *Service) CreateVariant(ctx context.Context, input variantdao.CreateInput) (variantdao.Record, error) {
	if _, err := s.products.Find(ctx, productdao.FindInput{ID: &input.ProductID, IncludeUnpublished: true}); err != nil {
		return variantdao.Record{}, fmt.Errorf("product: %w", err)
	}
	record, err := s.variants.Create(ctx, input)
	if err != nil {
		return variantdao.Record{}, err
	}
	zerolog.Ctx(ctx).Info().
		Str("variant_id", record.ID).
		Str("product_id", record.ProductID).
		Msg("variant created")
	return record, nil
}

// UpdateVariant applies the non-nil fields of input to a variant.
func (s *Service) UpdateVariant(ctx context.Context, id string, input variantdao.UpdateInput) (variantdao.Record, error) {
	return s.variants.Update(ctx, id, input)
}

// DeleteVariant removes a variant. A product's default variant reference
// is cleared when its default is deleted.
func (s *Service) DeleteVariant(ctx context.Context, id string) (variantdao.Record, error) {
	record, err := s.variants.Find(ctx, variantdao.FindInput{ID: &id})
	if err != nil {
		return variantdao.Record{}, err
	}
	product, err := s.products.Find(ctx, productdao.FindInput{ID: &record.ProductID, IncludeUnpublished: true})
	if err != nil && !stderrors.Is(err, errors.ErrNotFound) {
		return variantdao.Record{}, err
	}
	if err == nil && product.DefaultVariantID != nil && *product.DefaultVariantID == id {
		if err := s.products.SetDefaultVariant(ctx, product.ID, nil); err != nil {
			return variantdao.Record{}, err
		}
	}
	if err := s.variants.Delete(ctx, id); err != nil {
		return variantdao.Record{}, err
	}
	zerolog.Ctx(ctx).Info().Str("variant_id", id).Msg("variant deleted")
	return record, nil
}

// UpdateVariantListings upserts per-channel prices for a variant.
func (s *Service) UpdateVariantListings(ctx context.Context, variantID string, listings []variantdao.ListingInput) (variantdao.Record, error) {
	record, err := s.variants.Find(ctx, variantdao.FindInput{ID: &variantID})
	if err != nil {
		return variantdao.Record{}, err
	}
	for _, l := range listings {
		if err := s.requireChannel(ctx, l.ChannelSlug); err != nil {
			return variantdao.Record{}, err
		}
	}
	if err := s.variants.UpsertListings(ctx, variantID, listings); err != nil {
		return variantdao.Record{}, err
	}
	return record, nil
}

// CreateDigitalContent attaches digital content to a variant, replacing
// any content the variant already carries.
func (s *Service) CreateDigitalContent(ctx context.Context, input digitaldao.CreateInput) (digitaldao.Record, error) {
	if _, err := s.variants.Find(ctx, variantdao.FindInput{ID: &input.VariantID}); err != nil {
		return digitaldao.Record{}, fmt.Errorf("variant: %w", err)
	}
	existing, err := s.digital.FindByVariant(ctx, input.VariantID)
	switch {
	case err == nil:
		if err := s.digital.Delete(ctx, existing.ID); err != nil {
			return digitaldao.Record{}, err
		}
	case !stderrors.Is(err, errors.ErrNotFound):
		return digitaldao.Record{}, err
	}
	record, err := s.digital.Create(ctx, input)
	if err != nil {
		return digitaldao.Record{}, err
	}
	zerolog.Ctx(ctx).Info().
		Str("digital_content_id", record.ID).
		Str("variant_id", record.VariantID).
		Msg("digital content created")
	return record, nil
}

// DeleteDigitalContent detaches digital content from a variant.
func (s *Service) DeleteDigitalContent(ctx context.Context, variantID string) (variantdao.Record, error) {
	variant, err := s.variants.Find(ctx, variantdao.FindInput{ID: &variantID})
	if err != nil {
		return variantdao.Record{}, err
	}
	content, err := s.digital.FindByVariant(ctx, variantID)
	if err != nil {
		return variantdao.Record{}, err
	}
	if err := s.digital.Delete(ctx, content.ID); err != nil {
		return variantdao.Record{}, err
	}
	return variant, nil
}

func (s *Service) requireChannel(ctx context.Context, slug string) error {
	if _, err := s.channels.FindBySlug(ctx, slug); err != nil {
		return fmt.Errorf("channel %v: %w", slug, err)
	}
	return nil
}
