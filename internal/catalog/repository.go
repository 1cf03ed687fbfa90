package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db DB
}

func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListBooks(ctx context.Context) ([]Book, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, level, price, pdf_url FROM books ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Level, &b.Price, &b.PdfURL); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	return books, rows.Err()
}

func (r *Repository) AddBook(ctx context.Context, book *Book) error {
	query := `
		INSERT INTO books (title, level, price, pdf_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	if err := r.db.QueryRow(ctx, query, book.Title, book.Level, book.Price, book.PdfURL).Scan(&book.ID); err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}
	return nil
}

func (r *Repository) RecordPurchases(ctx context.Context, items []CheckoutItem) error {
	now := time.Now().UTC()
	for _, item := range items {
		_, err := r.db.Exec(ctx, `
			INSERT INTO purchases (book_id, title, price, created_at)
			VALUES ($1, $2, $3, $4)
		`, item.ID, item.Title, item.Price, now)
		if err != nil {
			return fmt.Errorf("failed to record purchase: %w", err)
		}
	}
	return nil
}
