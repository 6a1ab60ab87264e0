package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/review-schedule/internal/article"
)

// UpsertArticle stores a storage document keyed by its article slug. An
// existing row is replaced, including its content hash. runID may be
// uuid.Nil when the article was not produced by a recorded run.
func (db *DB) UpsertArticle(ctx context.Context, doc article.StorageDocument, runID uuid.UUID) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal article %s: %w", doc.ArticleSlug, err)
	}

	var run *uuid.UUID
	if runID != uuid.Nil {
		run = &runID
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO review_schedule_articles
		   (slug, id, vehicle_key, vehicle_type, status, quality_score, content_hash, template, document, run_id, created_at, updated_at, published_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (slug) DO UPDATE SET
		   id = EXCLUDED.id,
		   vehicle_key = EXCLUDED.vehicle_key,
		   vehicle_type = EXCLUDED.vehicle_type,
		   status = EXCLUDED.status,
		   quality_score = EXCLUDED.quality_score,
		   content_hash = EXCLUDED.content_hash,
		   template = EXCLUDED.template,
		   document = EXCLUDED.document,
		   run_id = COALESCE(EXCLUDED.run_id, review_schedule_articles.run_id),
		   updated_at = EXCLUDED.updated_at,
		   published_at = EXCLUDED.published_at`,
		doc.ArticleSlug, doc.ID, doc.VehicleKey, doc.Metadata.VehicleCharacteristics.Type,
		string(doc.Status), doc.QualityMetrics.Overall, doc.ContentHash, doc.Template,
		payload, run, doc.CreatedAt, doc.UpdatedAt, doc.PublishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert article %s: %w", doc.ArticleSlug, err)
	}
	return nil
}

// GetArticleBySlug retrieves the stored document of an article.
// Returns nil, nil when the slug is unknown.
func (db *DB) GetArticleBySlug(ctx context.Context, slug string) (*article.StorageDocument, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT document FROM review_schedule_articles WHERE slug = $1`,
		slug,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get article %s: %w", slug, err)
	}

	var doc article.StorageDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode article %s: %w", slug, err)
	}
	return &doc, nil
}

// buildListArticlesQuery assembles the filtered listing query and its
// arguments.
func buildListArticlesQuery(filters ArticleFilters) (string, []any) {
	if filters.Limit <= 0 {
		filters.Limit = 50
	}

	query := `SELECT slug, vehicle_key, vehicle_type, status, quality_score, content_hash, updated_at, published_at
		FROM review_schedule_articles WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}
	if filters.VehicleType != "" {
		query += fmt.Sprintf(" AND vehicle_type = $%d", argNum)
		args = append(args, filters.VehicleType)
		argNum++
	}
	if filters.MinQuality > 0 {
		query += fmt.Sprintf(" AND quality_score >= $%d", argNum)
		args = append(args, filters.MinQuality)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY quality_score DESC, slug ASC LIMIT $%d", argNum)
	args = append(args, filters.Limit)
	return query, args
}

// ListArticles retrieves article summaries with optional filters, best
// quality first.
func (db *DB) ListArticles(ctx context.Context, filters ArticleFilters) ([]ArticleSummary, error) {
	query, args := buildListArticlesQuery(filters)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var articles []ArticleSummary
	for rows.Next() {
		var a ArticleSummary
		if err := rows.Scan(&a.Slug, &a.VehicleKey, &a.VehicleType, &a.Status,
			&a.QualityScore, &a.ContentHash, &a.UpdatedAt, &a.PublishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// UpdateArticleStatus sets the status of a stored article, in both the row
// and its document. Moving to published stamps published_at once; an earlier
// publication date is kept.
func (db *DB) UpdateArticleStatus(ctx context.Context, slug string, status article.Status) error {
	now := time.Now().UTC()
	var publishedAt *time.Time
	if status == article.StatusPublished {
		publishedAt = &now
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE review_schedule_articles
		 SET status = $1,
		     updated_at = $2,
		     published_at = COALESCE(published_at, $3::timestamptz),
		     document = CASE
		       WHEN $3::timestamptz IS NULL THEN jsonb_set(document, '{status}', to_jsonb($1::text))
		       ELSE jsonb_set(
		         jsonb_set(document, '{status}', to_jsonb($1::text)),
		         '{published_at}', to_jsonb(COALESCE(published_at, $3::timestamptz)))
		     END
		 WHERE slug = $4`,
		string(status), now, publishedAt, slug,
	)
	if err != nil {
		return fmt.Errorf("failed to update article status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrArticleNotFound, slug)
	}
	return nil
}

// ArticleExistsWithHash reports whether slug is stored with exactly this
// content hash, which lets a batch skip unchanged articles.
func (db *DB) ArticleExistsWithHash(ctx context.Context, slug, contentHash string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM review_schedule_articles WHERE slug = $1 AND content_hash = $2)`,
		slug, contentHash,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check article hash: %w", err)
	}
	return exists, nil
}

// CountArticlesByStatus returns the number of stored articles per status.
func (db *DB) CountArticlesByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := db.pool.Query(ctx, `SELECT status, COUNT(*) FROM review_schedule_articles GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan article count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
