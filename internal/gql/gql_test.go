package gql

import (
	"context"
	"testing"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidemark/catalog-api/internal/auth"
	"github.com/tidemark/catalog-api/internal/authz"
	"github.com/tidemark/catalog-api/internal/channel"
	"github.com/tidemark/catalog-api/internal/dao/channeldao"
	"github.com/tidemark/catalog-api/internal/dao/digitaldao"
	"github.com/tidemark/catalog-api/internal/dao/productdao"
	"github.com/tidemark/catalog-api/internal/dao/producttypedao"
	"github.com/tidemark/catalog-api/internal/dao/variantdao"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
	"github.com/tidemark/catalog-api/internal/globalid"
)

func strPtr(s string) *string { return &s }

func int32Ptr(i int32) *int32 { return &i }

func idPtr(id string) *graphql.ID {
	gid := graphql.ID(id)
	return &gid
}

func staffContext(permissions ...authz.Permission) context.Context {
	return auth.WithRequestor(context.Background(), authz.Requestor{
		Sub:         "user-1",
		Name:        "Staff User",
		Permissions: permissions,
	})
}

func listing(productID, channelSlug string, published bool, price float64) productdao.ChannelListing {
	currency := "USD"
	return productdao.ChannelListing{
		ProductID:            productID,
		ChannelSlug:          channelSlug,
		Published:            published,
		VisibleInListings:    published,
		AvailableForPurchase: published,
		PriceAmount:          &price,
		Currency:             &currency,
	}
}

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()

	checker, err := authz.NewChecker()
	require.NoError(t, err)

	channels := &fakeChannelStore{records: []channeldao.Record{
		{ID: "ch-1", Slug: "default-channel", Name: "Default", CurrencyCode: "USD", IsDefault: true},
		{ID: "ch-2", Slug: "channel-eu", Name: "Europe", CurrencyCode: "EUR"},
	}}

	products := &fakeProductStore{
		records: []productdao.Record{
			{ID: "p1", Name: "Oak Chair", Slug: "chair-01", Description: "solid oak dining chair", ProductTypeID: "t1", CreatedAt: 1700000100},
			{ID: "p2", Name: "Steel Table", Slug: "table-01", Description: "steel frame table", ProductTypeID: "t1", CreatedAt: 1700000200},
			{ID: "p3", Name: "Walnut Desk", Slug: "desk-01", Description: "walnut writing desk", ProductTypeID: "t1", CreatedAt: 1700000300},
			{ID: "p4", Name: "Pine Shelf", Slug: "shelf-01", Description: "pine wall shelf", ProductTypeID: "t1", CreatedAt: 1700000400},
			{ID: "p5", Name: "Birch Stool", Slug: "stool-01", Description: "birch bar stool", ProductTypeID: "t1", CreatedAt: 1700000500},
			{ID: "p6", Name: "Hidden Bench", Slug: "bench-01", Description: "not yet published", ProductTypeID: "t1", CreatedAt: 1700000600},
		},
		listings: map[string][]productdao.ChannelListing{
			"p1": {listing("p1", "default-channel", true, 120)},
			"p2": {listing("p2", "default-channel", true, 300)},
			"p3": {listing("p3", "default-channel", true, 450)},
			"p4": {listing("p4", "default-channel", true, 60)},
			"p5": {listing("p5", "default-channel", true, 85)},
			"p6": {listing("p6", "default-channel", false, 200)},
		},
	}

	variants := &fakeVariantStore{
		records: []variantdao.Record{
			{ID: "v1", ProductID: "p1", Name: "Natural", SKU: strPtr("CHAIR-NAT"), TrackInventory: true, QuantityAvailable: 12},
			{ID: "v2", ProductID: "p1", Name: "Stained", SKU: strPtr("CHAIR-STN"), TrackInventory: true, QuantityAvailable: 3},
		},
		sales: []variantdao.SalesRecord{
			{Record: variantdao.Record{ID: "v1", ProductID: "p1", Name: "Natural"}, QuantityOrdered: 40},
			{Record: variantdao.Record{ID: "v2", ProductID: "p1", Name: "Stained"}, QuantityOrdered: 12},
		},
	}

	digital := &fakeDigitalContentStore{records: []digitaldao.Record{
		{ID: "dc1", VariantID: "v1", ContentFile: "manual.pdf", UseDefaultSettings: true},
	}}

	return &Resolver{
		channels:        channels,
		categories:      &fakeCategoryStore{},
		collections:     &fakeCollectionStore{},
		products:        products,
		productTypes:    &fakeProductTypeStore{records: []producttypedao.Record{{ID: "t1", Name: "Furniture", Slug: "furniture", Kind: producttypedao.KindNormal}}},
		variants:        variants,
		digitalContent:  digital,
		channelResolver: channel.NewResolver(checker, channel.NewProvider(channels)),
		checker:         checker,
	}
}

func TestSchemaParses(t *testing.T) {
	resolver := newTestResolver(t)
	_, err := NewSchema(resolver)
	require.NoError(t, err)
}

func TestProductQueryAnonymousUsesDefaultChannel(t *testing.T) {
	resolver := newTestResolver(t)

	product, err := resolver.Product(context.Background(), struct {
		ID                *graphql.ID
		Slug              *string
		ExternalReference *string
		Channel           *string
	}{Slug: strPtr("chair-01")})
	require.NoError(t, err)
	require.NotNil(t, product)

	assert.Equal(t, "Oak Chair", product.Name())
	require.NotNil(t, product.Channel())
	assert.Equal(t, "default-channel", *product.Channel())
	require.NotNil(t, product.Pricing())
	assert.InDelta(t, 120.0, product.Pricing().Amount(), 0.001)
}

func TestProductQueryAnonymousCannotSeeUnpublished(t *testing.T) {
	resolver := newTestResolver(t)

	product, err := resolver.Product(context.Background(), struct {
		ID                *graphql.ID
		Slug              *string
		ExternalReference *string
		Channel           *string
	}{Slug: strPtr("bench-01")})
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestProductQueryStaffSeesAllChannels(t *testing.T) {
	resolver := newTestResolver(t)
	ctx := staffContext(authz.PermissionManageProducts)

	product, err := resolver.Product(ctx, struct {
		ID                *graphql.ID
		Slug              *string
		ExternalReference *string
		Channel           *string
	}{Slug: strPtr("bench-01")})
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Nil(t, product.Channel())
}

func TestProductQueryOneOfValidation(t *testing.T) {
	resolver := newTestResolver(t)

	_, err := resolver.Product(context.Background(), struct {
		ID                *graphql.ID
		Slug              *string
		ExternalReference *string
		Channel           *string
	}{ID: idPtr(globalid.Encode(globalid.TypeProduct, "p1")), Slug: strPtr("chair-01")})
	assert.ErrorIs(t, err, apierrors.ErrInvalidArguments)

	_, err = resolver.Product(context.Background(), struct {
		ID                *graphql.ID
		Slug              *string
		ExternalReference *string
		Channel           *string
	}{})
	assert.ErrorIs(t, err, apierrors.ErrInvalidArguments)
}

func TestProductQueryRejectsForeignID(t *testing.T) {
	resolver := newTestResolver(t)

	_, err := resolver.Product(context.Background(), struct {
		ID                *graphql.ID
		Slug              *string
		ExternalReference *string
		Channel           *string
	}{ID: idPtr(globalid.Encode(globalid.TypeCategory, "p1"))})
	assert.ErrorIs(t, err, apierrors.ErrInvalidGlobalID)
}

type productsArgs = struct {
	Filter  *ProductFilterInput
	SortBy  *ProductOrderInput
	Channel *string
	First   *int32
	After   *string
	Last    *int32
	Before  *string
}

func TestProductsPagination(t *testing.T) {
	resolver := newTestResolver(t)

	page, err := resolver.Products(context.Background(), productsArgs{First: int32Ptr(2)})
	require.NoError(t, err)

	// natural slug order over the 5 published products
	require.Len(t, page.Edges(), 2)
	assert.Equal(t, "chair-01", page.Edges()[0].Node().Slug())
	assert.Equal(t, "desk-01", page.Edges()[1].Node().Slug())
	assert.Equal(t, int32(5), page.TotalCount())
	assert.True(t, page.PageInfo().HasNextPage())
	assert.False(t, page.PageInfo().HasPreviousPage())

	next, err := resolver.Products(context.Background(), productsArgs{
		First: int32Ptr(2),
		After: page.PageInfo().EndCursor(),
	})
	require.NoError(t, err)
	require.Len(t, next.Edges(), 2)
	assert.Equal(t, "shelf-01", next.Edges()[0].Node().Slug())
	assert.Equal(t, "stool-01", next.Edges()[1].Node().Slug())
	assert.True(t, next.PageInfo().HasPreviousPage())
}

func TestProductsInvalidCursor(t *testing.T) {
	resolver := newTestResolver(t)

	_, err := resolver.Products(context.Background(), productsArgs{
		First: int32Ptr(2),
		After: strPtr("not-a-cursor"),
	})
	assert.ErrorIs(t, err, apierrors.ErrInvalidCursor)
}

func TestProductsFirstAndLastRejected(t *testing.T) {
	resolver := newTestResolver(t)

	_, err := resolver.Products(context.Background(), productsArgs{
		First: int32Ptr(2),
		Last:  int32Ptr(2),
	})
	assert.ErrorIs(t, err, apierrors.ErrInvalidArguments)
}

func TestProductsRequireFirstOrLast(t *testing.T) {
	resolver := newTestResolver(t)

	_, err := resolver.Products(context.Background(), productsArgs{})
	assert.ErrorIs(t, err, apierrors.ErrInvalidArguments)
}

func TestProductsSearchDefaultsToRankOrder(t *testing.T) {
	resolver := newTestResolver(t)

	page, err := resolver.Products(context.Background(), productsArgs{
		Filter: &ProductFilterInput{Search: strPtr("chair")},
		First:  int32Ptr(10),
	})
	require.NoError(t, err)

	// only the chair matches; term appears in both name and description
	require.Len(t, page.Edges(), 1)
	assert.Equal(t, "chair-01", page.Edges()[0].Node().Slug())
}

func TestProductsRankSortWithoutSearchFails(t *testing.T) {
	resolver := newTestResolver(t)

	_, err := resolver.Products(context.Background(), productsArgs{
		SortBy: &ProductOrderInput{Field: "RANK"},
		First:  int32Ptr(10),
	})
	assert.ErrorIs(t, err, apierrors.ErrRankSortWithoutSearch)
}

func TestProductsSortByPriceDescending(t *testing.T) {
	resolver := newTestResolver(t)
	direction := OrderDirectionInput("DESC")

	page, err := resolver.Products(context.Background(), productsArgs{
		SortBy: &ProductOrderInput{Field: "PRICE", Direction: &direction},
		First:  int32Ptr(10),
	})
	require.NoError(t, err)
	require.Len(t, page.Edges(), 5)
	assert.Equal(t, "desk-01", page.Edges()[0].Node().Slug())
	assert.Equal(t, "table-01", page.Edges()[1].Node().Slug())
}

func TestDigitalContentRequiresPermission(t *testing.T) {
	resolver := newTestResolver(t)
	id := graphql.ID(globalid.Encode(globalid.TypeDigitalContent, "dc1"))

	_, err := resolver.DigitalContent(context.Background(), struct{ ID graphql.ID }{ID: id})
	assert.ErrorIs(t, err, apierrors.ErrPermissionDenied)

	content, err := resolver.DigitalContent(staffContext(authz.PermissionManageProducts), struct{ ID graphql.ID }{ID: id})
	require.NoError(t, err)
	require.NotNil(t, content)
	assert.Equal(t, "manual.pdf", content.ContentFile())
}

type reportArgs = struct {
	Period  ReportingPeriod
	Channel string
	First   *int32
	After   *string
	Last    *int32
	Before  *string
}

func TestReportProductSales(t *testing.T) {
	resolver := newTestResolver(t)

	_, err := resolver.ReportProductSales(context.Background(), reportArgs{
		Period:  ReportingPeriodToday,
		Channel: "default-channel",
	})
	assert.ErrorIs(t, err, apierrors.ErrPermissionDenied)

	// order management alone does not grant access to the sales report
	_, err = resolver.ReportProductSales(staffContext(authz.PermissionManageOrders), reportArgs{
		Period:  ReportingPeriodToday,
		Channel: "default-channel",
	})
	assert.ErrorIs(t, err, apierrors.ErrPermissionDenied)

	page, err := resolver.ReportProductSales(staffContext(authz.PermissionManageProducts), reportArgs{
		Period:  ReportingPeriodThisMonth,
		Channel: "default-channel",
		First:   int32Ptr(10),
	})
	require.NoError(t, err)
	require.Len(t, page.Edges(), 2)

	top := page.Edges()[0].Node()
	assert.Equal(t, "Natural", top.Name())
	require.NotNil(t, top.QuantityOrdered())
	assert.Equal(t, int32(40), *top.QuantityOrdered())
}

func TestMutationRequiresPermission(t *testing.T) {
	resolver := newTestResolver(t)

	_, err := resolver.CategoryCreate(context.Background(), struct{ Input CategoryCreateInput }{
		Input: CategoryCreateInput{Name: "Chairs", Slug: "chairs"},
	})
	assert.ErrorIs(t, err, apierrors.ErrPermissionDenied)

	// a requestor with unrelated permissions is still rejected
	_, err = resolver.CategoryCreate(staffContext(authz.PermissionManageChannels), struct{ Input CategoryCreateInput }{
		Input: CategoryCreateInput{Name: "Chairs", Slug: "chairs"},
	})
	assert.ErrorIs(t, err, apierrors.ErrPermissionDenied)
}

func TestChannelsQueryRequiresStaff(t *testing.T) {
	resolver := newTestResolver(t)

	_, err := resolver.Channels(context.Background())
	assert.ErrorIs(t, err, apierrors.ErrPermissionDenied)

	channels, err := resolver.Channels(staffContext(authz.PermissionManageDiscounts))
	require.NoError(t, err)
	assert.Len(t, channels, 2)
}
