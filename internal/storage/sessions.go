package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/verdantlabs/catalyst/internal/common"
	"github.com/verdantlabs/catalyst/internal/model"
)

// Session is a cached analysis run for one company.
type Session struct {
	CreatedAt time.Time
	Company   string
	Articles  []model.AnalyzedArticle
	ID        int64
}

// SessionInfo summarizes a session for listings.
type SessionInfo struct {
	CreatedAt    time.Time
	Company      string
	ID           int64
	ArticleCount int
}

// SaveSession stores a completed analysis as a new session, articles and
// classifications together, in one transaction. The aggregate is never
// stored; it is recomputed from the loaded articles.
func (s *SQLiteStorage) SaveSession(ctx context.Context, company string, items []model.AnalyzedArticle) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(company, "company"); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO sessions (company, created_at) VALUES (?, ?)`,
		company, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to create session: %w", err)
	}
	sessionID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get session ID: %w", err)
	}

	for _, item := range items {
		art := item.Article
		res, err := tx.ExecContext(ctx, `
			INSERT INTO articles (session_id, position, title, link, author, published, summary)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			sessionID, art.Position, art.Title, art.Link, art.Author, art.Published, art.Summary)
		if err != nil {
			return 0, fmt.Errorf("failed to save article %d: %w", art.Position, err)
		}
		articleID, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("failed to get article ID: %w", err)
		}

		c := item.Classification
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO classifications (article_id, sentiment, polarity, subjectivity)
			VALUES (?, ?, ?, ?)`,
			articleID, string(c.Sentiment), c.Polarity, c.Subjectivity); err != nil {
			return 0, fmt.Errorf("failed to save classification: %w", err)
		}

		for _, cat := range c.Categories {
			triggers := strings.Join(c.Triggers[cat], ",")
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO article_categories (article_id, category, triggers)
				VALUES (?, ?, ?)`,
				articleID, cat, triggers); err != nil {
				return 0, fmt.Errorf("failed to save category match: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit session: %w", err)
	}

	slog.Debug("saved session", "company", company, "articles", len(items), "session_id", sessionID)
	return sessionID, nil
}

// GetLatestSession loads the most recent session for a company, with all
// articles and their cached classifications. Returns common.ErrNotFound when
// the company has no cached session.
func (s *SQLiteStorage) GetLatestSession(ctx context.Context, company string) (*Session, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(company, "company"); err != nil {
		return nil, err
	}

	session := &Session{Company: company}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, created_at
		FROM sessions
		WHERE company = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1`, company).Scan(&session.ID, &session.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: no session for %s", common.ErrNotFound, company)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	articles, err := s.loadArticles(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	session.Articles = articles

	return session, nil
}

func (s *SQLiteStorage) loadArticles(ctx context.Context, sessionID int64) ([]model.AnalyzedArticle, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.position, a.title, a.link, a.author, a.published, a.summary,
		       c.sentiment, c.polarity, c.subjectivity
		FROM articles a
		JOIN classifications c ON c.article_id = a.id
		WHERE a.session_id = ?
		ORDER BY a.position`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []model.AnalyzedArticle
	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		var item model.AnalyzedArticle
		var sentiment string
		if err := rows.Scan(
			&id, &item.Article.Position, &item.Article.Title, &item.Article.Link,
			&item.Article.Author, &item.Article.Published, &item.Article.Summary,
			&sentiment, &item.Classification.Polarity, &item.Classification.Subjectivity,
		); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		item.Classification.Sentiment = model.Sentiment(sentiment)
		item.Classification.Triggers = make(map[string][]string)
		items = append(items, item)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating articles: %w", err)
	}

	for i, id := range ids {
		if err := s.loadCategories(ctx, id, &items[i].Classification); err != nil {
			return nil, err
		}
	}

	return items, nil
}

func (s *SQLiteStorage) loadCategories(ctx context.Context, articleID int64, c *model.Classification) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category, triggers
		FROM article_categories
		WHERE article_id = ?
		ORDER BY rowid`, articleID)
	if err != nil {
		return fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var category, triggers string
		if err := rows.Scan(&category, &triggers); err != nil {
			return fmt.Errorf("failed to scan category: %w", err)
		}
		c.Categories = append(c.Categories, category)
		if triggers != "" {
			c.Triggers[category] = strings.Split(triggers, ",")
		}
	}
	return rows.Err()
}

// ListSessions returns all cached sessions, newest first.
func (s *SQLiteStorage) ListSessions(ctx context.Context) ([]SessionInfo, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.company, s.created_at, COUNT(a.id)
		FROM sessions s
		LEFT JOIN articles a ON a.session_id = s.id
		GROUP BY s.id
		ORDER BY s.created_at DESC, s.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var infos []SessionInfo
	for rows.Next() {
		var info SessionInfo
		if err := rows.Scan(&info.ID, &info.Company, &info.CreatedAt, &info.ArticleCount); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sessions: %w", err)
	}

	return infos, nil
}
