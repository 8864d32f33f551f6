package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/models"
)

func testArticles() []models.Article {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return []models.Article{
		{ArticleID: 1, Title: "Goroutines", Direction: models.DirectionBackend, TechnologyID: 1, PublishedAt: base},
		{ArticleID: 2, Title: "Flexbox", Direction: models.DirectionFrontend, TechnologyID: 2, PublishedAt: base.Add(time.Hour)},
		{ArticleID: 3, Title: "Channels", Direction: models.DirectionBackend, TechnologyID: 1, PublishedAt: base.Add(2 * time.Hour)},
	}
}

func TestArticlesRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewArticlesRepository(newTestDB(t), logger.Nop())

	require.NoError(t, repo.SaveArticles(ctx, testArticles()...))

	all, err := repo.GetArticles(ctx, models.ArticlesFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// newest first
	assert.Equal(t, []int64{3, 2, 1}, []int64{all[0].ArticleID, all[1].ArticleID, all[2].ArticleID})
	assert.True(t, all[2].PublishedAt.Equal(testArticles()[0].PublishedAt))

	backend, err := repo.GetArticles(ctx, models.ArticlesFilter{Directions: []models.Direction{models.DirectionBackend}})
	require.NoError(t, err)
	assert.Len(t, backend, 2)

	limited, err := repo.GetArticles(ctx, models.ArticlesFilter{TechnologyIDs: []int64{1}, Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, int64(3), limited[0].ArticleID)
}

func TestArticlesRepository_StatesSurviveRefresh(t *testing.T) {
	ctx := context.Background()
	repo := NewArticlesRepository(newTestDB(t), logger.Nop())
	require.NoError(t, repo.SaveArticles(ctx, testArticles()...))

	require.NoError(t, repo.SetLiked(ctx, 1, true))
	require.NoError(t, repo.SetViewed(ctx, 1, true))
	require.NoError(t, repo.SetViewed(ctx, 2, true))
	require.NoError(t, repo.SetViewed(ctx, 2, false))

	refreshed := testArticles()
	refreshed[0].Title = "Goroutines, revised"
	require.NoError(t, repo.SaveArticles(ctx, refreshed...))

	all, err := repo.GetArticles(ctx, models.ArticlesFilter{})
	require.NoError(t, err)

	byID := map[int64]models.Article{}
	for _, a := range all {
		byID[a.ArticleID] = a
	}
	assert.Equal(t, "Goroutines, revised", byID[1].Title)
	assert.True(t, byID[1].Liked)
	assert.True(t, byID[1].Viewed)
	assert.False(t, byID[2].Viewed)
	assert.False(t, byID[3].Liked)
}

func TestArticlesRepository_Clear(t *testing.T) {
	ctx := context.Background()
	repo := NewArticlesRepository(newTestDB(t), logger.Nop())
	require.NoError(t, repo.SaveArticles(ctx, testArticles()...))
	require.NoError(t, repo.SetLiked(ctx, 1, true))

	require.NoError(t, repo.Clear(ctx))

	all, err := repo.GetArticles(ctx, models.ArticlesFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)

	// flags are gone too
	require.NoError(t, repo.SaveArticles(ctx, testArticles()[0]))
	all, err = repo.GetArticles(ctx, models.ArticlesFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].Liked)
}

func TestArticlesRepository_SaveNothing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArticlesRepository(db, logger.Nop())

	require.NoError(t, repo.SaveArticles(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticlesRepository_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArticlesRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM articles a LEFT JOIN article_states").
		WillReturnError(errors.New("no such table: articles"))

	_, err := repo.GetArticles(context.Background(), models.ArticlesFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticlesRepository_ClearRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewArticlesRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM article_states").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.Clear(context.Background()), ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}
