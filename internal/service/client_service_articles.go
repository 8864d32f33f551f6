package service

import (
	"context"

	"github.com/MKhiriev/go-test-prep/internal/adapter"
	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/internal/session"
	"github.com/MKhiriev/go-test-prep/models"
)

type clientArticlesService struct {
	adapter adapter.ArticlesAdapter
	session session.Session
	logger  *logger.Logger
}

func NewClientArticlesService(articlesAdapter adapter.ArticlesAdapter, sess session.Session, log *logger.Logger) ClientArticlesService {
	return &clientArticlesService{adapter: articlesAdapter, session: sess, logger: log}
}

func (s *clientArticlesService) GetArticles(ctx context.Context, forceRefresh bool) ([]models.Article, error) {
	log := logger.FromContextOr(ctx, s.logger)
	filter := s.filter(ctx)

	if !forceRefresh {
		if cached := s.session.GetCachedArticles(ctx, filter); len(cached) > 0 {
			return cached, nil
		}
	}

	articles, err := s.adapter.GetArticles(ctx, filter)
	if err != nil {
		mapped := mapAdapterError(err)
		if isOffline(mapped) {
			if cached := s.session.GetCachedArticles(ctx, filter); len(cached) > 0 {
				log.Debug().Err(err).Int("cached", len(cached)).Msg("serving articles from cache")
				return cached, nil
			}
		}
		return nil, mapped
	}

	s.session.CacheArticles(ctx, articles)

	// the cache keeps the local viewed/liked flags across refreshes
	if cached := s.session.GetCachedArticles(ctx, filter); len(cached) > 0 {
		return cached, nil
	}
	return articles, nil
}

func (s *clientArticlesService) LikeArticle(ctx context.Context, articleID int64, liked bool) error {
	s.session.SetArticleLiked(ctx, articleID, liked)

	if err := s.adapter.LikeArticle(ctx, articleID, liked); err != nil {
		s.session.SetArticleLiked(ctx, articleID, !liked)
		return mapAdapterError(err)
	}
	return nil
}

func (s *clientArticlesService) MarkViewed(ctx context.Context, articleID int64) error {
	s.session.MarkArticleViewed(ctx, articleID)

	if err := s.adapter.MarkArticleViewed(ctx, articleID); err != nil {
		mapped := mapAdapterError(err)
		if isOffline(mapped) {
			logger.FromContextOr(ctx, s.logger).Debug().Err(err).
				Int64("article_id", articleID).
				Msg("viewed flag kept locally")
			return nil
		}
		return mapped
	}
	return nil
}

func (s *clientArticlesService) filter(ctx context.Context) models.ArticlesFilter {
	prefs, ok := s.session.GetPreferences(ctx)
	if !ok {
		return models.ArticlesFilter{}
	}
	return models.ArticlesFilter{
		Directions:    prefs.Directions,
		TechnologyIDs: prefs.TechnologyIDs,
		Limit:         prefs.ArticlesPerDay,
	}
}
