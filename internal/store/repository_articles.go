package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type articlesRepository struct {
	*DB
	logger *logger.Logger
}

// NewArticlesRepository returns the sqlite-backed [ArticlesRepository].
func NewArticlesRepository(db *DB, logger *logger.Logger) ArticlesRepository {
	return &articlesRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveArticles upserts the given articles in one transaction. The local
// viewed/liked flags live in article_states and are left untouched.
func (r *articlesRepository) SaveArticles(ctx context.Context, articles ...models.Article) error {
	log := logger.FromContextOr(ctx, r.logger)
	if len(articles) == 0 {
		return nil
	}

	insert := psql.Insert("articles").
		Columns("article_id", "title", "summary", "url", "direction", "technology_id", "published_at", "cached_at")
	now := time.Now().UTC()
	for _, a := range articles {
		insert = insert.Values(a.ArticleID, a.Title, a.Summary, a.URL, string(a.Direction), a.TechnologyID, a.PublishedAt.UTC(), now)
	}
	query, args, err := insert.Suffix(`ON CONFLICT (article_id) DO UPDATE SET
		title = excluded.title,
		summary = excluded.summary,
		url = excluded.url,
		direction = excluded.direction,
		technology_id = excluded.technology_id,
		published_at = excluded.published_at,
		cached_at = excluded.cached_at`).ToSql()
	if err != nil {
		log.Err(err).Str("func", "articlesRepository.SaveArticles").Msg("failed to build upsert")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.execWithRetry(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "articlesRepository.SaveArticles").
			Int("count", len(articles)).
			Msg("failed to upsert articles")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetArticles returns cached articles matching filter, newest first.
func (r *articlesRepository) GetArticles(ctx context.Context, filter models.ArticlesFilter) ([]models.Article, error) {
	log := logger.FromContextOr(ctx, r.logger)

	sel := psql.Select(
		"a.article_id", "a.title", "a.summary", "a.url", "a.direction", "a.technology_id", "a.published_at",
		"COALESCE(s.viewed, 0)", "COALESCE(s.liked, 0)",
	).
		From("articles a").
		LeftJoin("article_states s ON s.article_id = a.article_id").
		OrderBy("a.published_at DESC", "a.article_id")

	if len(filter.Directions) > 0 {
		directions := make([]string, len(filter.Directions))
		for i, d := range filter.Directions {
			directions[i] = string(d)
		}
		sel = sel.Where(sq.Eq{"a.direction": directions})
	}
	if len(filter.TechnologyIDs) > 0 {
		sel = sel.Where(sq.Eq{"a.technology_id": filter.TechnologyIDs})
	}
	if filter.Limit > 0 {
		sel = sel.Limit(uint64(filter.Limit))
	}

	query, args, err := sel.ToSql()
	if err != nil {
		log.Err(err).Str("func", "articlesRepository.GetArticles").Msg("failed to build select")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "articlesRepository.GetArticles").Msg("failed to query articles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		var (
			a           models.Article
			direction   string
			publishedAt sql.NullTime
		)
		if err := rows.Scan(&a.ArticleID, &a.Title, &a.Summary, &a.URL, &direction, &a.TechnologyID, &publishedAt, &a.Viewed, &a.Liked); err != nil {
			log.Err(err).Str("func", "articlesRepository.GetArticles").Msg("failed to scan article row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		a.Direction = models.Direction(direction)
		if publishedAt.Valid {
			a.PublishedAt = publishedAt.Time
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "articlesRepository.GetArticles").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return articles, nil
}

func (r *articlesRepository) SetViewed(ctx context.Context, articleID int64, viewed bool) error {
	return r.setState(ctx, "viewed", articleID, viewed)
}

func (r *articlesRepository) SetLiked(ctx context.Context, articleID int64, liked bool) error {
	return r.setState(ctx, "liked", articleID, liked)
}

func (r *articlesRepository) setState(ctx context.Context, column string, articleID int64, value bool) error {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := psql.Insert("article_states").
		Columns("article_id", column).
		Values(articleID, value).
		Suffix(fmt.Sprintf("ON CONFLICT (article_id) DO UPDATE SET %[1]s = excluded.%[1]s", column)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.execWithRetry(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "articlesRepository.setState").
			Str("column", column).
			Int64("article_id", articleID).
			Msg("failed to update article state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Clear drops the cached articles and their local flags in one transaction.
func (r *articlesRepository) Clear(ctx context.Context) error {
	log := logger.FromContextOr(ctx, r.logger)

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "articlesRepository.Clear").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, table := range []string{"article_states", "articles"} {
		query, args, err := psql.Delete(table).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "articlesRepository.Clear").Str("table", table).Msg("failed to clear table")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "articlesRepository.Clear").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
