package pgdb

import (
	"context"

	errorsUtils "github.com/Egor213/LogsAnalysis/pkg/errors"
	"github.com/Egor213/LogsAnalysis/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
)

type ViewOptions struct {
	SuccessStatus    string
	IncludeZeroViews bool
}

type ViewsRepo struct {
	*postgres.Postgres
	opts ViewOptions
}

func NewViewsRepo(pg *postgres.Postgres, opts ViewOptions) *ViewsRepo {
	if opts.SuccessStatus == "" {
		opts.SuccessStatus = DefaultSuccessStatus
	}
	return &ViewsRepo{Postgres: pg, opts: opts}
}

func (r *ViewsRepo) CreateArticleRanking(ctx context.Context) error {
	// View bodies keep the default "?" placeholder format: no arguments are
	// bound, and literals pass through untouched.
	body := BuildArticleRankingSelect(sq.StatementBuilder, r.opts.IncludeZeroViews)
	return r.createView(ctx, ArticleRankingView, body)
}

func (r *ViewsRepo) CreateDailyReport(ctx context.Context) error {
	body := BuildDailyReportSelect(sq.StatementBuilder, r.opts.SuccessStatus)
	return r.createView(ctx, DailyReportView, body)
}

// createView replaces the view inside its own transaction, so each view is
// committed on its own.
func (r *ViewsRepo) createView(ctx context.Context, name string, body sq.SelectBuilder) error {
	sql, _, err := BuildCreateViewQuery(name, body).ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	err = r.TrManager.Do(ctx, func(ctx context.Context) error {
		_, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql)
		return err
	})
	if err != nil {
		return errorsUtils.WrapPathErr(classifyErr(err))
	}

	return nil
}
