package media_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avayezaryab/backend/internal/media"
)

func TestAddItem(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := media.NewRepository(mock)
	name := "Ms. Rahimi"
	item := &media.Item{
		Kind:        media.KindTeacher,
		TeacherName: &name,
		MediaType:   "video",
		FileURL:     "/uploads/clip.mp4",
		CreatedAt:   time.Now().UTC(),
	}

	mock.ExpectQuery("INSERT INTO media_items").
		WithArgs(item.Kind, item.TeacherName, item.MediaType, item.FileURL, item.Caption, item.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))

	require.NoError(t, r.AddItem(context.Background(), item))
	assert.EqualValues(t, 5, item.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByKind(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := media.NewRepository(mock)
	columns := []string{"id", "kind", "teacher_name", "media_type", "file_url", "caption", "created_at"}
	caption := "open day"

	mock.ExpectQuery("SELECT id, kind, teacher_name").
		WithArgs(media.KindStudent).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(2), media.KindStudent, (*string)(nil), "image", "/uploads/b.jpg", &caption, time.Now().UTC()).
			AddRow(int64(1), media.KindStudent, (*string)(nil), "video", "/uploads/a.mp4", (*string)(nil), time.Now().UTC()))

	items, err := r.ListByKind(context.Background(), media.KindStudent)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "/uploads/b.jpg", items[0].FileURL)
	require.NotNil(t, items[0].Caption)
	assert.Equal(t, "open day", *items[0].Caption)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetIntro(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := media.NewRepository(mock)
	ctx := context.Background()

	t.Run("row exists", func(t *testing.T) {
		video := "/uploads/intro.mp4"
		mock.ExpectQuery("SELECT video_url, poster_url FROM intro_content").
			WillReturnRows(pgxmock.NewRows([]string{"video_url", "poster_url"}).
				AddRow(&video, (*string)(nil)))

		intro, err := r.GetIntro(ctx)
		require.NoError(t, err)
		require.NotNil(t, intro.VideoURL)
		assert.Equal(t, "/uploads/intro.mp4", *intro.VideoURL)
		assert.Nil(t, intro.PosterURL)
	})

	t.Run("no row yet", func(t *testing.T) {
		mock.ExpectQuery("SELECT video_url, poster_url FROM intro_content").
			WillReturnError(pgx.ErrNoRows)

		intro, err := r.GetIntro(ctx)
		require.NoError(t, err)
		assert.Nil(t, intro.VideoURL)
		assert.Nil(t, intro.PosterURL)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetIntroFields(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := media.NewRepository(mock)
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO intro_content").
		WithArgs("/uploads/intro.mp4").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.SetIntroVideo(ctx, "/uploads/intro.mp4"))

	mock.ExpectExec("INSERT INTO intro_content").
		WithArgs("/uploads/poster.jpg").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.SetIntroPoster(ctx, "/uploads/poster.jpg"))

	require.NoError(t, mock.ExpectationsWereMet())
}
