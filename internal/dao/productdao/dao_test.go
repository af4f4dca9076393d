package productdao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
)

var productCols = []string{
	"id", "name", "slug", "description", "product_type_id",
	"category_id", "default_variant_id", "external_reference", "created_at",
}

var listingCols = []string{
	"product_id", "channel_slug", "published", "visible_in_listings",
	"available_for_purchase", "price_amount", "currency",
}

func newMock(t *testing.T) (*DAO, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db), mock
}

func strPtr(s string) *string { return &s }

func TestFindBySlugOnChannel(t *testing.T) {
	dao, mock := newMock(t)

	cols := append(append([]string{}, productCols...), listingCols...)
	price := 129.99
	mock.ExpectQuery(`SELECT .+ FROM products p JOIN product_channel_listings l ON l\.product_id = p\.id AND l\.channel_slug = \? AND l\.published = 1 WHERE p\.slug = \?`).
		WithArgs("default-channel", "chair-01").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("prod-1", "Chair 01", "chair-01", "A chair", "type-1", nil, nil, nil, int64(1700000000),
				"prod-1", "default-channel", true, true, true, price, "USD"))

	record, err := dao.Find(context.Background(), FindInput{
		Slug:        strPtr("chair-01"),
		ChannelSlug: strPtr("default-channel"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Chair 01", record.Name)
	require.NotNil(t, record.Listing)
	assert.Equal(t, "default-channel", record.Listing.ChannelSlug)
	require.NotNil(t, record.Listing.PriceAmount)
	assert.InDelta(t, 129.99, *record.Listing.PriceAmount, 0.001)
}

func TestFindUnpublishedHiddenFromChannel(t *testing.T) {
	dao, mock := newMock(t)

	cols := append(append([]string{}, productCols...), listingCols...)
	mock.ExpectQuery(`JOIN product_channel_listings l .+ AND l\.published = 1 WHERE p\.slug = \?`).
		WithArgs("default-channel", "chair-01").
		WillReturnRows(sqlmock.NewRows(cols))

	_, err := dao.Find(context.Background(), FindInput{
		Slug:        strPtr("chair-01"),
		ChannelSlug: strPtr("default-channel"),
	})
	assert.ErrorIs(t, err, apierrors.ErrNotFound)
}

func TestFindIncludeUnpublishedSkipsPublishedPredicate(t *testing.T) {
	dao, mock := newMock(t)

	cols := append(append([]string{}, productCols...), listingCols...)
	mock.ExpectQuery(`JOIN product_channel_listings l ON l\.product_id = p\.id AND l\.channel_slug = \? WHERE p\.id = \?`).
		WithArgs("emea", "prod-1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("prod-1", "Chair 01", "chair-01", "", "type-1", nil, nil, nil, int64(1700000000),
				"prod-1", "emea", false, true, false, nil, nil))

	record, err := dao.Find(context.Background(), FindInput{
		ID:                 strPtr("prod-1"),
		ChannelSlug:        strPtr("emea"),
		IncludeUnpublished: true,
	})
	require.NoError(t, err)
	require.NotNil(t, record.Listing)
	assert.False(t, record.Listing.Published)
}

func TestFindUnrestricted(t *testing.T) {
	dao, mock := newMock(t)

	mock.ExpectQuery(`SELECT p\.id, .+ FROM products p WHERE p\.external_reference = \?`).
		WithArgs("ext-1").
		WillReturnRows(sqlmock.NewRows(productCols).
			AddRow("prod-1", "Chair 01", "chair-01", "", "type-1", nil, nil, "ext-1", int64(1700000000)))

	record, err := dao.Find(context.Background(), FindInput{ExternalReference: strPtr("ext-1")})
	require.NoError(t, err)
	assert.Nil(t, record.Listing)
}

func TestListWithPredicates(t *testing.T) {
	dao, mock := newMock(t)

	cols := append(append([]string{}, productCols...), listingCols...)
	mock.ExpectQuery(`SELECT .+ FROM products p JOIN product_channel_listings l .+ JOIN collection_products cp ON cp\.product_id = p\.id AND cp\.collection_id IN \(\?\) WHERE p\.category_id IN \(\?, \?\) ORDER BY p\.slug, p\.id`).
		WithArgs("default-channel", "coll-1", "cat-1", "cat-2").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("prod-1", "Chair 01", "chair-01", "", "type-1", "cat-1", nil, nil, int64(1700000000),
				"prod-1", "default-channel", true, true, true, 10.0, "USD"))

	records, err := dao.List(context.Background(), ListInput{
		ChannelSlug:   strPtr("default-channel"),
		CollectionIDs: []string{"coll-1"},
		CategoryIDs:   []string{"cat-1", "cat-2"},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "chair-01", records[0].Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertListings(t *testing.T) {
	dao, mock := newMock(t)

	price := 15.5
	currency := "EUR"
	mock.ExpectExec(`REPLACE INTO product_channel_listings`).
		WithArgs("prod-1", "emea", true, true, false, &price, &currency).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := dao.UpsertListings(context.Background(), "prod-1", []ListingInput{{
		ChannelSlug:       "emea",
		Published:         true,
		VisibleInListings: true,
		PriceAmount:       &price,
		Currency:          &currency,
	}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCascades(t *testing.T) {
	dao, mock := newMock(t)

	mock.ExpectExec(`DELETE FROM product_channel_listings WHERE product_id = \?`).
		WithArgs("prod-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM collection_products WHERE product_id = \?`).
		WithArgs("prod-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM products WHERE id = \?`).
		WithArgs("prod-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := dao.Delete(context.Background(), "prod-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
