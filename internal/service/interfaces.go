// Package service defines the interfaces between the CLI and its
// collaborators, so commands depend on behavior rather than concrete types.
package service

import (
	"context"

	"github.com/verdantlabs/catalyst/internal/model"
	"github.com/verdantlabs/catalyst/internal/storage"
)

// SessionStore caches analysis sessions.
type SessionStore interface {
	SaveSession(ctx context.Context, company string, items []model.AnalyzedArticle) (int64, error)
	GetLatestSession(ctx context.Context, company string) (*storage.Session, error)
	ListSessions(ctx context.Context) ([]storage.SessionInfo, error)
	Close() error
}

// NewsSource provides articles to analyze.
type NewsSource interface {
	Search(ctx context.Context, company string, maxArticles int) ([]model.Article, error)
}
