package session

import (
	"context"

	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/internal/state"
	"github.com/MKhiriev/go-test-prep/internal/store"
	"github.com/MKhiriev/go-test-prep/models"
)

// SQLArticlesCacheManager is the [ArticlesCacheManager] over the sqlite
// article cache. The observable list always holds the full unfiltered cache.
type SQLArticlesCacheManager struct {
	repo     store.ArticlesRepository
	articles *state.Cell[[]models.Article]
	logger   *logger.Logger
}

func NewSQLArticlesCacheManager(ctx context.Context, repo store.ArticlesRepository, log *logger.Logger) *SQLArticlesCacheManager {
	m := &SQLArticlesCacheManager{repo: repo, logger: log}
	m.articles = state.NewCell(m.GetCachedArticles(ctx, models.ArticlesFilter{}))
	return m
}

func (m *SQLArticlesCacheManager) CacheArticles(ctx context.Context, articles []models.Article) {
	if err := m.repo.SaveArticles(ctx, articles...); err != nil {
		m.debug(ctx, err, "CacheArticles")
		return
	}
	m.publish(ctx)
}

func (m *SQLArticlesCacheManager) GetCachedArticles(ctx context.Context, filter models.ArticlesFilter) []models.Article {
	articles, err := m.repo.GetArticles(ctx, filter)
	if err != nil {
		m.debug(ctx, err, "GetCachedArticles")
		return nil
	}
	return articles
}

func (m *SQLArticlesCacheManager) MarkArticleViewed(ctx context.Context, articleID int64) {
	if err := m.repo.SetViewed(ctx, articleID, true); err != nil {
		m.debug(ctx, err, "MarkArticleViewed")
		return
	}
	m.publish(ctx)
}

func (m *SQLArticlesCacheManager) SetArticleLiked(ctx context.Context, articleID int64, liked bool) {
	if err := m.repo.SetLiked(ctx, articleID, liked); err != nil {
		m.debug(ctx, err, "SetArticleLiked")
		return
	}
	m.publish(ctx)
}

func (m *SQLArticlesCacheManager) ObserveArticles() (<-chan []models.Article, func()) {
	return m.articles.Subscribe()
}

func (m *SQLArticlesCacheManager) ClearArticles(ctx context.Context) {
	if err := m.repo.Clear(ctx); err != nil {
		m.debug(ctx, err, "ClearArticles")
	}
	m.articles.Set(nil)
}

func (m *SQLArticlesCacheManager) publish(ctx context.Context) {
	m.articles.Set(m.GetCachedArticles(ctx, models.ArticlesFilter{}))
}

func (m *SQLArticlesCacheManager) debug(ctx context.Context, err error, fn string) {
	logger.FromContextOr(ctx, m.logger).Debug().Err(err).
		Str("func", "SQLArticlesCacheManager."+fn).
		Msg("article cache failure")
}
