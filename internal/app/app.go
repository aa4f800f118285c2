package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Egor213/LogsAnalysis/internal/broker"
	kafkabroker "github.com/Egor213/LogsAnalysis/internal/broker/kafka"
	"github.com/Egor213/LogsAnalysis/internal/config"
	"github.com/Egor213/LogsAnalysis/internal/metrics"
	"github.com/Egor213/LogsAnalysis/internal/repo"
	"github.com/Egor213/LogsAnalysis/internal/repo/pgdb"
	"github.com/Egor213/LogsAnalysis/internal/report"
	"github.com/Egor213/LogsAnalysis/internal/service"
	errorsUtils "github.com/Egor213/LogsAnalysis/pkg/errors"
	"github.com/Egor213/LogsAnalysis/pkg/logger"
	"github.com/Egor213/LogsAnalysis/pkg/postgres"

	log "github.com/sirupsen/logrus"
)

const pushTimeout = 5 * time.Second

var ErrConnect = errors.New("cannot connect to database")

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.WithFields(log.Fields{
		"app":     cfg.App.Name,
		"version": cfg.App.Version,
	}).Info("Logger has been set up")

	ctx := context.Background()
	if cfg.Report.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Report.Timeout)
		defer cancel()
	}

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run connects, generates the report, closes the connection and only then
// writes the output file. Progress lines go to out.
func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	m := metrics.New()
	defer exportMetrics(cfg.Metrics, m)

	var publisher broker.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		defer func() {
			if err := producer.Close(); err != nil {
				log.Error(errorsUtils.WrapPathErr(err))
			}
		}()
		publisher = producer
	}

	fmt.Fprintln(out, "Querying database...")

	// DB connecting
	log.Info("Connecting to DB")
	pg, err := postgres.New(ctx, cfg.PG.URL,
		postgres.MaxPoolSize(1),
		postgres.ConnAttempts(cfg.PG.ConnAttempts),
		postgres.ConnTimeout(cfg.PG.ConnTimeout),
	)
	if err != nil {
		if errorsUtils.IsConnectionError(err) {
			log.Error("Database is unreachable")
		}
		return errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", ErrConnect, err))
	}
	defer pg.Close()
	log.Info("Connected to DB")

	// Repos
	repositories := repo.NewRepositories(pg, pgdb.ViewOptions{
		SuccessStatus:    cfg.Report.SuccessStatus,
		IncludeZeroViews: cfg.Report.IncludeZeroViews,
	})

	// Services
	deps := service.ServicesDependencies{
		Repos:     repositories,
		Metrics:   m,
		Publisher: publisher,
		Params: service.ReportParams{
			TopArticles:    cfg.Report.TopArticles,
			ErrorThreshold: cfg.Report.ErrorThreshold,
		},
	}
	services := service.NewServices(deps)

	rep, err := services.Report.Generate(ctx)
	pg.Close()
	log.Info("DB connection closed")
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Writing results on file...")

	text := report.Render(rep)
	if err := report.WriteFile(cfg.Report.OutputPath, text); err != nil {
		// Keep the fetched results reachable even though the file is lost.
		log.WithFields(log.Fields{
			"run_id": rep.RunID,
			"report": text,
		}).Error("Report file was not written")
		return errorsUtils.WrapPathErr(err)
	}
	log.WithFields(log.Fields{
		"run_id": rep.RunID,
		"path":   cfg.Report.OutputPath,
	}).Info("Report written")

	if err := services.Report.Publish(ctx, rep); err != nil {
		log.Error(err)
	}

	fmt.Fprintf(out, "Done! You will find %s in the working directory, open it to see the results.\n",
		cfg.Report.OutputPath)

	return nil
}

func exportMetrics(cfg config.Metrics, m *metrics.Metrics) {
	if cfg.TextfilePath != "" {
		if err := m.WriteTextfile(cfg.TextfilePath); err != nil {
			log.Error(err)
		}
	}

	if cfg.PushURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()
		if err := m.Push(ctx, cfg.PushURL, cfg.Job); err != nil {
			log.Error(err)
		}
	}
}
