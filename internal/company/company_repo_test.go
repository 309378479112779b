package company_test

import (
	"context"
	"testing"

	"biztime/internal/company"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) (company.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return company.NewRepository(gdb), mock
}

func TestRepository_ListWithIndustries(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT c.code, c.name, i.industry`).
		WillReturnRows(sqlmock.NewRows([]string{"code", "name", "industry"}).
			AddRow("apple", "Apple", "Tech").
			AddRow("ibm", "IBM", nil))

	rows, err := repo.ListWithIndustries(context.Background())

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Tech", *rows[0].Industry)
	assert.Nil(t, rows[1].Industry)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByCode(t *testing.T) {
	repo, mock := newTestRepo(t)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "companies"`).
			WithArgs("apple", 1).
			WillReturnRows(sqlmock.NewRows([]string{"code", "name", "description"}).
				AddRow("apple", "Apple", "Alphabet"))

		comp, err := repo.GetByCode(context.Background(), "apple")

		assert.NoError(t, err)
		assert.Equal(t, "Apple", comp.Name)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "companies"`).
			WithArgs("ghost", 1).
			WillReturnRows(sqlmock.NewRows([]string{"code", "name", "description"}))

		_, err := repo.GetByCode(context.Background(), "ghost")

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_InvoiceIDs(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT id FROM invoices WHERE comp_code`).
		WithArgs("apple").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3).AddRow(8))

	ids, err := repo.InvoiceIDs(context.Background(), "apple")

	assert.NoError(t, err)
	assert.Equal(t, []int64{3, 8}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_IndustryNames(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT i.industry`).
		WithArgs("apple").
		WillReturnRows(sqlmock.NewRows([]string{"industry"}).AddRow("Retail").AddRow("Tech"))

	names, err := repo.IndustryNames(context.Background(), "apple")

	assert.NoError(t, err)
	assert.Equal(t, []string{"Retail", "Tech"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newTestRepo(t)

	t.Run("Reports affected rows", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "companies"`).
			WithArgs("apple").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		affected, err := repo.Delete(context.Background(), "apple")

		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("Zero rows for unknown code", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "companies"`).
			WithArgs("ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		affected, err := repo.Delete(context.Background(), "ghost")

		assert.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
