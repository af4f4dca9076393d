package gql

import (
	"context"

	"github.com/tidemark/catalog-api/internal/dao/categorydao"
	"github.com/tidemark/catalog-api/internal/dao/channeldao"
	"github.com/tidemark/catalog-api/internal/dao/collectiondao"
	"github.com/tidemark/catalog-api/internal/dao/digitaldao"
	"github.com/tidemark/catalog-api/internal/dao/productdao"
	"github.com/tidemark/catalog-api/internal/dao/producttypedao"
	"github.com/tidemark/catalog-api/internal/dao/variantdao"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
)

// fakeChannelStore serves a fixed channel set from memory.
type fakeChannelStore struct {
	records []channeldao.Record
}

func (f *fakeChannelStore) FindBySlug(_ context.Context, slug string) (channeldao.Record, error) {
	for _, r := range f.records {
		if r.Slug == slug {
			return r, nil
		}
	}
	return channeldao.Record{}, apierrors.ErrNotFound
}

func (f *fakeChannelStore) List(context.Context) ([]channeldao.Record, error) {
	return f.records, nil
}

func (f *fakeChannelStore) DefaultSlug(context.Context) (string, error) {
	for _, r := range f.records {
		if r.IsDefault {
			return r.Slug, nil
		}
	}
	return "", apierrors.ErrNoDefaultChannel
}

type fakeCategoryStore struct {
	records []categorydao.Record
}

func (f *fakeCategoryStore) FindByID(_ context.Context, id string) (categorydao.Record, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return categorydao.Record{}, apierrors.ErrNotFound
}

func (f *fakeCategoryStore) FindBySlug(_ context.Context, slug string) (categorydao.Record, error) {
	for _, r := range f.records {
		if r.Slug == slug {
			return r, nil
		}
	}
	return categorydao.Record{}, apierrors.ErrNotFound
}

func (f *fakeCategoryStore) List(_ context.Context, level *int32) ([]categorydao.Record, error) {
	var out []categorydao.Record
	for _, r := range f.records {
		if level == nil || r.Level == *level {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCategoryStore) ListChildren(_ context.Context, parentID string) ([]categorydao.Record, error) {
	var out []categorydao.Record
	for _, r := range f.records {
		if r.ParentID != nil && *r.ParentID == parentID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeCollectionStore struct {
	records []collectiondao.Record

	// listings maps collection ID to the channels the collection is
	// published on.
	listings map[string][]string
}

func (f *fakeCollectionStore) visible(r collectiondao.Record, channelSlug *string, includeUnpublished bool) bool {
	if channelSlug == nil {
		return true
	}
	for _, slug := range f.listings[r.ID] {
		if slug == *channelSlug {
			return true
		}
	}
	return includeUnpublished
}

func (f *fakeCollectionStore) Find(_ context.Context, input collectiondao.FindInput) (collectiondao.Record, error) {
	for _, r := range f.records {
		if input.ID != nil && r.ID != *input.ID {
			continue
		}
		if input.Slug != nil && r.Slug != *input.Slug {
			continue
		}
		if !f.visible(r, input.ChannelSlug, input.IncludeUnpublished) {
			continue
		}
		return r, nil
	}
	return collectiondao.Record{}, apierrors.ErrNotFound
}

func (f *fakeCollectionStore) List(_ context.Context, channelSlug *string, includeUnpublished bool) ([]collectiondao.Record, error) {
	var out []collectiondao.Record
	for _, r := range f.records {
		if f.visible(r, channelSlug, includeUnpublished) {
			out = append(out, r)
		}
	}
	return out, nil
}

// fakeProductStore mimics the channel scoping of the product DAO: a product
// is only returned when it has a listing on the requested channel, and
// unpublished listings are hidden without IncludeUnpublished.
type fakeProductStore struct {
	records []productdao.Record

	// listings maps product ID to per-channel listings.
	listings map[string][]productdao.ChannelListing

	// collections maps collection ID to member product IDs.
	collections map[string][]string
}

func (f *fakeProductStore) scoped(r productdao.Record, channelSlug *string, includeUnpublished bool) (productdao.Record, bool) {
	if channelSlug == nil {
		r.Listing = nil
		return r, true
	}
	for _, l := range f.listings[r.ID] {
		if l.ChannelSlug != *channelSlug {
			continue
		}
		if !l.Published && !includeUnpublished {
			return r, false
		}
		listing := l
		r.Listing = &listing
		return r, true
	}
	return r, false
}

func (f *fakeProductStore) Find(_ context.Context, input productdao.FindInput) (productdao.Record, error) {
	for _, r := range f.records {
		if input.ID != nil && r.ID != *input.ID {
			continue
		}
		if input.Slug != nil && r.Slug != *input.Slug {
			continue
		}
		if input.ExternalReference != nil && (r.ExternalReference == nil || *r.ExternalReference != *input.ExternalReference) {
			continue
		}
		scoped, ok := f.scoped(r, input.ChannelSlug, input.IncludeUnpublished)
		if !ok {
			return productdao.Record{}, apierrors.ErrNotFound
		}
		return scoped, nil
	}
	return productdao.Record{}, apierrors.ErrNotFound
}

func (f *fakeProductStore) List(_ context.Context, input productdao.ListInput) ([]productdao.Record, error) {
	members := map[string]bool{}
	for _, collectionID := range input.CollectionIDs {
		for _, productID := range f.collections[collectionID] {
			members[productID] = true
		}
	}

	var out []productdao.Record
	for _, r := range f.records {
		if len(input.CollectionIDs) > 0 && !members[r.ID] {
			continue
		}
		if len(input.CategoryIDs) > 0 && (r.CategoryID == nil || !contains(input.CategoryIDs, *r.CategoryID)) {
			continue
		}
		if len(input.ProductTypeIDs) > 0 && !contains(input.ProductTypeIDs, r.ProductTypeID) {
			continue
		}
		scoped, ok := f.scoped(r, input.ChannelSlug, input.IncludeUnpublished)
		if !ok {
			continue
		}
		out = append(out, scoped)
	}
	return out, nil
}

func (f *fakeProductStore) Listings(_ context.Context, productID string) ([]productdao.ChannelListing, error) {
	return f.listings[productID], nil
}

type fakeProductTypeStore struct {
	records []producttypedao.Record
}

func (f *fakeProductTypeStore) FindByID(_ context.Context, id string) (producttypedao.Record, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return producttypedao.Record{}, apierrors.ErrNotFound
}

func (f *fakeProductTypeStore) List(context.Context) ([]producttypedao.Record, error) {
	return f.records, nil
}

type fakeVariantStore struct {
	records []variantdao.Record
	sales   []variantdao.SalesRecord
}

func (f *fakeVariantStore) Find(_ context.Context, input variantdao.FindInput) (variantdao.Record, error) {
	for _, r := range f.records {
		if input.ID != nil && r.ID != *input.ID {
			continue
		}
		if input.SKU != nil && (r.SKU == nil || *r.SKU != *input.SKU) {
			continue
		}
		if input.ExternalReference != nil && (r.ExternalReference == nil || *r.ExternalReference != *input.ExternalReference) {
			continue
		}
		return r, nil
	}
	return variantdao.Record{}, apierrors.ErrNotFound
}

func (f *fakeVariantStore) List(_ context.Context, input variantdao.ListInput) ([]variantdao.Record, error) {
	var out []variantdao.Record
	for _, r := range f.records {
		if input.ProductID != nil && r.ProductID != *input.ProductID {
			continue
		}
		if len(input.IDs) > 0 && !contains(input.IDs, r.ID) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeVariantStore) ReportSales(_ context.Context, _ string, _ int64) ([]variantdao.SalesRecord, error) {
	return f.sales, nil
}

type fakeDigitalContentStore struct {
	records []digitaldao.Record
}

func (f *fakeDigitalContentStore) FindByID(_ context.Context, id string) (digitaldao.Record, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return digitaldao.Record{}, apierrors.ErrNotFound
}

func (f *fakeDigitalContentStore) FindByVariant(_ context.Context, variantID string) (digitaldao.Record, error) {
	for _, r := range f.records {
		if r.VariantID == variantID {
			return r, nil
		}
	}
	return digitaldao.Record{}, apierrors.ErrNotFound
}

func (f *fakeDigitalContentStore) List(context.Context) ([]digitaldao.Record, error) {
	return f.records, nil
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
