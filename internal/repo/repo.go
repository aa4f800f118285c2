package repo

import (
	"context"

	"github.com/Egor213/LogsAnalysis/internal/domain"
	"github.com/Egor213/LogsAnalysis/internal/repo/pgdb"
	"github.com/Egor213/LogsAnalysis/pkg/postgres"
)

type Views interface {
	CreateArticleRanking(ctx context.Context) error
	CreateDailyReport(ctx context.Context) error
}

type Report interface {
	TopArticles(ctx context.Context, limit uint64) ([]domain.ArticleViews, error)
	AuthorTotals(ctx context.Context) ([]domain.AuthorViews, error)
	HighErrorDays(ctx context.Context, threshold float64) ([]domain.ErrorDay, error)
}

type Repositories struct {
	Views
	Report
}

func NewRepositories(pg *postgres.Postgres, opts pgdb.ViewOptions) *Repositories {
	return &Repositories{
		Views:  pgdb.NewViewsRepo(pg, opts),
		Report: pgdb.NewReportRepo(pg),
	}
}
