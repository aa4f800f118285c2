package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Egor213/LogsAnalysis/internal/broker"
	logginghelper "github.com/Egor213/LogsAnalysis/internal/common/logging"
	"github.com/Egor213/LogsAnalysis/internal/domain"
	"github.com/Egor213/LogsAnalysis/internal/metrics"
	"github.com/Egor213/LogsAnalysis/internal/repo"
	"github.com/Egor213/LogsAnalysis/internal/report"
	errorsUtils "github.com/Egor213/LogsAnalysis/pkg/errors"
	"github.com/google/uuid"
)

const (
	StepArticleRanking = "create_article_ranking"
	StepDailyReport    = "create_daily_report"
	StepTopArticles    = "top_articles"
	StepAuthorTotals   = "author_totals"
	StepErrorDays      = "high_error_days"
)

const (
	DefaultTopArticles    = 3
	DefaultErrorThreshold = 1.0
)

type ReportParams struct {
	TopArticles    uint64
	ErrorThreshold float64
}

type ReportService struct {
	viewsRepo  repo.Views
	reportRepo repo.Report
	metrics    *metrics.Metrics
	publisher  broker.Publisher
	params     ReportParams
}

// NewReportService builds the report driver. A nil publisher disables
// publishing.
func NewReportService(vr repo.Views, rr repo.Report, m *metrics.Metrics, p broker.Publisher, params ReportParams) *ReportService {
	if params.TopArticles == 0 {
		params.TopArticles = DefaultTopArticles
	}
	return &ReportService{
		viewsRepo:  vr,
		reportRepo: rr,
		metrics:    m,
		publisher:  p,
		params:     params,
	}
}

// Generate replaces both views, then runs the three queries in fixed order.
// The first failure aborts the run and names the failing step.
func (s *ReportService) Generate(ctx context.Context) (domain.Report, error) {
	rep := domain.Report{
		RunID:          uuid.New(),
		GeneratedAt:    time.Now(),
		TopLimit:       s.params.TopArticles,
		ErrorThreshold: s.params.ErrorThreshold,
	}

	err := s.step(rep.RunID, StepArticleRanking, func() (int, error) {
		return 0, s.viewsRepo.CreateArticleRanking(ctx)
	})
	if err != nil {
		return domain.Report{}, errorsUtils.WrapPathErr(fmt.Errorf("%w article_ranking: %w", ErrCreateView, err))
	}

	err = s.step(rep.RunID, StepDailyReport, func() (int, error) {
		return 0, s.viewsRepo.CreateDailyReport(ctx)
	})
	if err != nil {
		return domain.Report{}, errorsUtils.WrapPathErr(fmt.Errorf("%w daily_report: %w", ErrCreateView, err))
	}

	err = s.step(rep.RunID, StepTopArticles, func() (int, error) {
		articles, err := s.reportRepo.TopArticles(ctx, s.params.TopArticles)
		rep.Articles = articles
		return len(articles), err
	})
	if err != nil {
		return domain.Report{}, errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", ErrQueryTopArticles, err))
	}

	err = s.step(rep.RunID, StepAuthorTotals, func() (int, error) {
		authors, err := s.reportRepo.AuthorTotals(ctx)
		rep.Authors = authors
		return len(authors), err
	})
	if err != nil {
		return domain.Report{}, errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", ErrQueryAuthorTotals, err))
	}

	err = s.step(rep.RunID, StepErrorDays, func() (int, error) {
		days, err := s.reportRepo.HighErrorDays(ctx, s.params.ErrorThreshold)
		rep.ErrorDays = days
		return len(days), err
	})
	if err != nil {
		return domain.Report{}, errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", ErrQueryErrorDays, err))
	}

	s.metrics.LastSuccess.Set(float64(rep.GeneratedAt.Unix()))

	return rep, nil
}

func (s *ReportService) Publish(ctx context.Context, rep domain.Report) error {
	if s.publisher == nil {
		return nil
	}

	data, err := report.EncodeJSON(rep)
	if err != nil {
		return errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", ErrPublishReport, err))
	}

	if err := s.publisher.Publish(ctx, []byte(rep.RunID.String()), data); err != nil {
		return errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", ErrPublishReport, err))
	}

	return nil
}

func (s *ReportService) step(runID uuid.UUID, name string, fn func() (int, error)) error {
	start := time.Now()

	rows, err := fn()
	if err != nil {
		s.metrics.ReportSteps.Inc(name, "failed")
		logginghelper.LogStepError(runID, name, err)
		return err
	}

	s.metrics.ReportSteps.Inc(name, "ok")
	s.metrics.ReportRows.Set(float64(rows), name)
	logginghelper.LogStepDone(runID, name, rows, time.Since(start))

	return nil
}
