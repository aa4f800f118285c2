package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Egor213/LogsAnalysis/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useConfigFile(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	t.Setenv("APP_CONFIG_PATH", path)
}

func TestNew_Defaults(t *testing.T) {
	useConfigFile(t, "")

	cfg, err := config.New()

	require.NoError(t, err)
	assert.Equal(t, "dbname=news user=vagrant", cfg.PG.URL)
	assert.Equal(t, 1, cfg.PG.ConnAttempts)
	assert.Equal(t, time.Second, cfg.PG.ConnTimeout)
	assert.Equal(t, "output.txt", cfg.Report.OutputPath)
	assert.Equal(t, uint64(3), cfg.Report.TopArticles)
	assert.Equal(t, 1.0, cfg.Report.ErrorThreshold)
	assert.Equal(t, "200 OK", cfg.Report.SuccessStatus)
	assert.False(t, cfg.Report.IncludeZeroViews)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestNew_EnvOverrides(t *testing.T) {
	useConfigFile(t, "")
	t.Setenv("PG_URL", "postgres://reporter@db:5432/news")
	t.Setenv("REPORT_TOP_ARTICLES", "5")
	t.Setenv("REPORT_ERROR_THRESHOLD", "2.5")
	t.Setenv("REPORT_INCLUDE_ZERO_VIEWS", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

	cfg, err := config.New()

	require.NoError(t, err)
	assert.Equal(t, "postgres://reporter@db:5432/news", cfg.PG.URL)
	assert.Equal(t, uint64(5), cfg.Report.TopArticles)
	assert.Equal(t, 2.5, cfg.Report.ErrorThreshold)
	assert.True(t, cfg.Report.IncludeZeroViews)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
}

func TestNew_YamlFile(t *testing.T) {
	useConfigFile(t, `
report:
  output_path: /tmp/report.txt
  success_status: 200 OK
`)

	cfg, err := config.New()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/report.txt", cfg.Report.OutputPath)
}

func TestNew_Validation(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		val  string
	}{
		{name: "zero top articles", key: "REPORT_TOP_ARTICLES", val: "0"},
		{name: "threshold above 100", key: "REPORT_ERROR_THRESHOLD", val: "150"},
		{name: "negative threshold", key: "REPORT_ERROR_THRESHOLD", val: "-1"},
		{name: "bad push url", key: "METRICS_PUSH_URL", val: "not a url"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			useConfigFile(t, "")
			t.Setenv(tc.key, tc.val)

			_, err := config.New()

			assert.Error(t, err)
		})
	}
}
