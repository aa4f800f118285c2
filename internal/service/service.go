package service

import (
	"context"

	"github.com/Egor213/LogsAnalysis/internal/broker"
	"github.com/Egor213/LogsAnalysis/internal/domain"
	"github.com/Egor213/LogsAnalysis/internal/metrics"
	"github.com/Egor213/LogsAnalysis/internal/repo"
)

type Report interface {
	Generate(ctx context.Context) (domain.Report, error)
	Publish(ctx context.Context, rep domain.Report) error
}

type Services struct {
	Report
}

type ServicesDependencies struct {
	Repos     *repo.Repositories
	Metrics   *metrics.Metrics
	Publisher broker.Publisher
	Params    ReportParams
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Report: NewReportService(deps.Repos.Views, deps.Repos.Report, deps.Metrics, deps.Publisher, deps.Params),
	}
}
