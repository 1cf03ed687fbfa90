package catalog_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avayezaryab/backend/internal/catalog"
)

func TestListBooks(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := catalog.NewRepository(mock)
	ctx := context.Background()
	columns := []string{"id", "title", "level", "price", "pdf_url"}

	t.Run("returns rows in id order", func(t *testing.T) {
		level := "A1"
		mock.ExpectQuery("SELECT id, title, level, price, pdf_url FROM books").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(int64(1), "Grammar I", &level, int64(250000), "/uploads/g1.pdf").
				AddRow(int64(2), "Grammar II", (*string)(nil), int64(300000), "/uploads/g2.pdf"))

		books, err := r.ListBooks(ctx)
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, "Grammar I", books[0].Title)
		require.NotNil(t, books[0].Level)
		assert.Equal(t, "A1", *books[0].Level)
		assert.Nil(t, books[1].Level)
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, title, level, price, pdf_url FROM books").
			WillReturnRows(pgxmock.NewRows(columns))

		books, err := r.ListBooks(ctx)
		require.NoError(t, err)
		assert.NotNil(t, books)
		assert.Empty(t, books)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, title, level, price, pdf_url FROM books").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.ListBooks(ctx)
		assert.Error(t, err)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddBook(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := catalog.NewRepository(mock)
	level := "B2"
	book := &catalog.Book{Title: "Grammar III", Level: &level, Price: 350000, PdfURL: "/uploads/g3.pdf"}

	mock.ExpectQuery("INSERT INTO books").
		WithArgs(book.Title, book.Level, book.Price, book.PdfURL).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

	require.NoError(t, r.AddBook(context.Background(), book))
	assert.EqualValues(t, 3, book.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPurchases(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := catalog.NewRepository(mock)
	items := []catalog.CheckoutItem{
		{ID: 1, Title: "Grammar I", Price: 250000},
		{ID: 2, Title: "Grammar II", Price: 300000},
	}

	for _, item := range items {
		mock.ExpectExec("INSERT INTO purchases").
			WithArgs(item.ID, item.Title, item.Price, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}

	require.NoError(t, r.RecordPurchases(context.Background(), items))
	require.NoError(t, mock.ExpectationsWereMet())
}
