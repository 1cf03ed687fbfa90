package media

import (
	"context"
	"errors"
	"fmt"

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

func (r *Repository) AddItem(ctx context.Context, item *Item) error {
	query := `
		INSERT INTO media_items (kind, teacher_name, media_type, file_url, caption, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		item.Kind, item.TeacherName, item.MediaType, item.FileURL, item.Caption, item.CreatedAt,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to insert media item: %w", err)
	}
	return nil
}

func (r *Repository) ListByKind(ctx context.Context, kind string) ([]Item, error) {
	query := `
		SELECT id, kind, teacher_name, media_type, file_url, caption, created_at
		FROM media_items
		WHERE kind = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list media items: %w", err)
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Kind, &item.TeacherName,
			&item.MediaType, &item.FileURL, &item.Caption, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan media item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *Repository) GetIntro(ctx context.Context) (*IntroContent, error) {
	var intro IntroContent
	err := r.db.QueryRow(ctx, `SELECT video_url, poster_url FROM intro_content WHERE id = 1`).
		Scan(&intro.VideoURL, &intro.PosterURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &IntroContent{}, nil
		}
		return nil, fmt.Errorf("failed to query intro content: %w", err)
	}
	return &intro, nil
}

func (r *Repository) SetIntroVideo(ctx context.Context, url string) error {
	return r.upsertIntro(ctx, "video_url", url)
}

func (r *Repository) SetIntroPoster(ctx context.Context, url string) error {
	return r.upsertIntro(ctx, "poster_url", url)
}

// Single-row upsert: the intro content is one record with a fixed id.
func (r *Repository) upsertIntro(ctx context.Context, column, url string) error {
	query := fmt.Sprintf(`
		INSERT INTO intro_content (id, %[1]s) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET %[1]s = EXCLUDED.%[1]s;
	`, column)
	if _, err := r.db.Exec(ctx, query, url); err != nil {
		return fmt.Errorf("failed to update intro content: %w", err)
	}
	return nil
}
