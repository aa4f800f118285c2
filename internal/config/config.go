package config

import (
	"errors"
	"os"
	"time"

	errorsUtils "github.com/Egor213/LogsAnalysis/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type (
	Config struct {
		App     `yaml:"app"`
		Log     `yaml:"log"`
		PG      `yaml:"postgres"`
		Report  `yaml:"report"`
		Kafka   `yaml:"kafka"`
		Metrics `yaml:"metrics"`
	}

	App struct {
		Name    string `yaml:"name" env:"APP_NAME" env-default:"logs-analysis"`
		Version string `yaml:"version" env:"APP_VERSION" env-default:"dev"`
	}

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	}

	PG struct {
		URL          string        `yaml:"url" env:"PG_URL" env-default:"dbname=news user=vagrant" validate:"required"`
		ConnAttempts int           `yaml:"conn_attempts" env:"PG_CONN_ATTEMPTS" env-default:"1" validate:"min=1"`
		ConnTimeout  time.Duration `yaml:"conn_timeout" env:"PG_CONN_TIMEOUT" env-default:"1s"`
	}

	Report struct {
		OutputPath       string        `yaml:"output_path" env:"REPORT_OUTPUT_PATH" env-default:"output.txt" validate:"required"`
		TopArticles      uint64        `yaml:"top_articles" env:"REPORT_TOP_ARTICLES" env-default:"3" validate:"min=1"`
		ErrorThreshold   float64       `yaml:"error_threshold" env:"REPORT_ERROR_THRESHOLD" env-default:"1" validate:"gte=0,lte=100"`
		SuccessStatus    string        `yaml:"success_status" env:"REPORT_SUCCESS_STATUS" env-default:"200 OK" validate:"required"`
		IncludeZeroViews bool          `yaml:"include_zero_views" env:"REPORT_INCLUDE_ZERO_VIEWS" env-default:"false"`
		Timeout          time.Duration `yaml:"timeout" env:"REPORT_TIMEOUT" env-default:"0s" validate:"gte=0"`
	}

	// Kafka publishing is off while Brokers is empty.
	Kafka struct {
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"logs-analysis.reports"`
	}

	Metrics struct {
		TextfilePath string `yaml:"textfile_path" env:"METRICS_TEXTFILE_PATH"`
		PushURL      string `yaml:"push_url" env:"METRICS_PUSH_URL" validate:"omitempty,url"`
		Job          string `yaml:"job" env:"METRICS_JOB" env-default:"logs_analysis"`
	}
)

const (
	ENV_PATH            = ".env"
	DEFAULT_CONFIG_PATH = "config/config.yaml"
)

func New() (*Config, error) {
	if err := godotenv.Load(ENV_PATH); err != nil {
		log.WithField("path", ENV_PATH).Debug("No .env file, using process environment")
	}

	cfg := &Config{}

	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Debug("Config path is not set, using default")
		pathToConfig = DEFAULT_CONFIG_PATH
	}

	if _, err := os.Stat(pathToConfig); err == nil {
		if err := cleanenv.ReadConfig(pathToConfig, cfg); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
	} else if errors.Is(err, os.ErrNotExist) {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
	} else {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}
