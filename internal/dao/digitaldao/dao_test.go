package digitaldao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
)

var columns = []string{"id", "variant_id", "content_file", "use_default_settings", "max_downloads", "url_valid_days"}

func newMock(t *testing.T) (*DAO, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db), mock
}

func TestFindByVariant(t *testing.T) {
	dao, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM digital_contents WHERE variant_id = \?`).
		WithArgs("var-1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("dc-1", "var-1", "files/manual.pdf", true, nil, nil))

	record, err := dao.FindByVariant(context.Background(), "var-1")
	require.NoError(t, err)
	assert.Equal(t, "files/manual.pdf", record.ContentFile)
	assert.True(t, record.UseDefaultSettings)
	assert.Nil(t, record.MaxDownloads)
}

func TestFindByIDNotFound(t *testing.T) {
	dao, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM digital_contents WHERE id = \?`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := dao.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, apierrors.ErrNotFound)
}

func TestListOrdersByID(t *testing.T) {
	dao, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM digital_contents ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("dc-1", "var-1", "files/manual.pdf", true, nil, nil).
			AddRow("dc-2", "var-2", "files/license.txt", false, int32(3), int32(14)))

	records, err := dao.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.NotNil(t, records[1].MaxDownloads)
	assert.Equal(t, int32(3), *records[1].MaxDownloads)
}

func TestCreate(t *testing.T) {
	dao, mock := newMock(t)

	maxDownloads := int32(5)
	mock.ExpectExec(`INSERT INTO digital_contents`).
		WithArgs(sqlmock.AnyArg(), "var-1", "files/manual.pdf", false, &maxDownloads, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	record, err := dao.Create(context.Background(), CreateInput{
		VariantID:    "var-1",
		ContentFile:  "files/manual.pdf",
		MaxDownloads: &maxDownloads,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "var-1", record.VariantID)
}

func TestDelete(t *testing.T) {
	dao, mock := newMock(t)

	mock.ExpectExec(`DELETE FROM digital_contents WHERE id = \?`).
		WithArgs("dc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := dao.Delete(context.Background(), "dc-1")
	assert.NoError(t, err)
}
