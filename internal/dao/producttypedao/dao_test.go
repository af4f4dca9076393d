package producttypedao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
)

var columns = []string{"id", "name", "slug", "kind", "is_shipping_required", "is_digital", "has_variants"}

func newMock(t *testing.T) (*DAO, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db), mock
}

func TestFindByID(t *testing.T) {
	dao, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM product_types WHERE id = \?`).
		WithArgs("pt-1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("pt-1", "Furniture", "furniture", "NORMAL", true, false, true))

	record, err := dao.FindByID(context.Background(), "pt-1")
	require.NoError(t, err)
	assert.Equal(t, "Furniture", record.Name)
	assert.Equal(t, KindNormal, record.Kind)
	assert.True(t, record.IsShippingRequired)
}

func TestFindByIDNotFound(t *testing.T) {
	dao, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM product_types WHERE id = \?`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := dao.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, apierrors.ErrNotFound)
}

func TestList(t *testing.T) {
	dao, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM product_types ORDER BY slug, id`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("pt-2", "Download", "download", "GIFT_CARD", false, true, false).
			AddRow("pt-1", "Furniture", "furniture", "NORMAL", true, false, true))

	records, err := dao.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, KindGiftCard, records[0].Kind)
}

func TestCreateDefaultsKind(t *testing.T) {
	dao, mock := newMock(t)

	mock.ExpectExec(`INSERT INTO product_types`).
		WithArgs(sqlmock.AnyArg(), "Furniture", "furniture", KindNormal, true, false, true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	record, err := dao.Create(context.Background(), CreateInput{
		Name:               "Furniture",
		Slug:               "furniture",
		IsShippingRequired: true,
		HasVariants:        true,
	})
	require.NoError(t, err)
	assert.Equal(t, KindNormal, record.Kind)
	assert.NotEmpty(t, record.ID)
}

func TestUpdateAppliesPartialInput(t *testing.T) {
	dao, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM product_types WHERE id = \?`).
		WithArgs("pt-1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("pt-1", "Furniture", "furniture", "NORMAL", true, false, true))
	mock.ExpectExec(`UPDATE product_types SET`).
		WithArgs("Seating", "furniture", true, false, "pt-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	name := "Seating"
	record, err := dao.Update(context.Background(), "pt-1", UpdateInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Seating", record.Name)
	assert.Equal(t, "furniture", record.Slug)
}

func TestDelete(t *testing.T) {
	dao, mock := newMock(t)

	mock.ExpectExec(`DELETE FROM product_types WHERE id = \?`).
		WithArgs("pt-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := dao.Delete(context.Background(), "pt-1")
	assert.NoError(t, err)
}
