package pgdb

import (
	"context"

	"github.com/Egor213/LogsAnalysis/internal/domain"
	errorsUtils "github.com/Egor213/LogsAnalysis/pkg/errors"
	"github.com/Egor213/LogsAnalysis/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type ReportRepo struct {
	*postgres.Postgres
}

func NewReportRepo(pg *postgres.Postgres) *ReportRepo {
	return &ReportRepo{pg}
}

func (r *ReportRepo) TopArticles(ctx context.Context, limit uint64) ([]domain.ArticleViews, error) {
	return collect(ctx, r.Postgres, BuildTopArticlesQuery(r.Builder, limit), pgx.RowToStructByName[domain.ArticleViews])
}

func (r *ReportRepo) AuthorTotals(ctx context.Context) ([]domain.AuthorViews, error) {
	return collect(ctx, r.Postgres, BuildAuthorTotalsQuery(r.Builder), pgx.RowToStructByName[domain.AuthorViews])
}

func (r *ReportRepo) HighErrorDays(ctx context.Context, threshold float64) ([]domain.ErrorDay, error) {
	return collect(ctx, r.Postgres, BuildHighErrorDaysQuery(r.Builder, threshold), pgx.RowToStructByName[domain.ErrorDay])
}

func collect[T any](ctx context.Context, pg *postgres.Postgres, query sq.SelectBuilder, fn pgx.RowToFunc[T]) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := pg.CtxGetter.DefaultTrOrDB(ctx, pg.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(classifyErr(err))
	}
	defer rows.Close()

	result, err := pgx.CollectRows(rows, fn)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(classifyErr(err))
	}

	return result, nil
}
