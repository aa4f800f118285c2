//go:build integration

package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Egor213/LogsAnalysis/internal/config"
	"github.com/Egor213/LogsAnalysis/internal/testinfra"
	"github.com/Egor213/LogsAnalysis/pkg/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seed = `
INSERT INTO authors (name) VALUES ('Anna Author');
INSERT INTO articles (author, title, slug) VALUES
    (1, 'Foo Post', 'foo'),
    (1, 'Bar Post', 'bar');
INSERT INTO log (path, method, status, time) VALUES
    ('/article/foo', 'GET', '200 OK',        '2016-07-01 10:00:00+00'),
    ('/article/foo', 'GET', '404 NOT FOUND', '2016-07-01 11:00:00+00'),
    ('/article/bar', 'GET', '200 OK',        '2016-07-01 12:00:00+00');
`

func TestRun_EndToEnd(t *testing.T) {
	pgURL := testinfra.StartPostgres(t)
	testinfra.Migrate(t, pgURL, "../repo/pgdb/testdata/migrations")

	ctx := context.Background()
	pg, err := postgres.New(ctx, pgURL, postgres.ConnAttempts(10))
	require.NoError(t, err)
	_, err = pg.Pool.Exec(ctx, seed)
	require.NoError(t, err)
	pg.Close()

	cfg := &config.Config{}
	cfg.PG.URL = pgURL
	cfg.PG.ConnAttempts = 1
	cfg.Report.OutputPath = filepath.Join(t.TempDir(), "output.txt")
	cfg.Report.TopArticles = 3
	cfg.Report.ErrorThreshold = 1
	cfg.Report.SuccessStatus = "200 OK"

	var out bytes.Buffer
	require.NoError(t, run(ctx, cfg, &out))

	got, err := os.ReadFile(cfg.Report.OutputPath)
	require.NoError(t, err)

	want := "LOGS ANALYSIS PROJECT OUTPUT FILE\n" +
		"---------------------------------\n" +
		"\n" +
		"1. WHAT ARE THE MOST POPULAR THREE ARTICLES OF ALL TIME?\n" +
		"\n" +
		"    1.Foo Post - 2 views\n" +
		"    2.Bar Post - 1 views\n" +
		"\n" +
		"2. WHO ARE THE MOST POPULAR ARTICLE AUTHORS OF ALL TIME?\n" +
		"\n" +
		"    1.Anna Author - 3 views\n" +
		"\n" +
		"3. WHEN DID MORE THAN 1% OF REQUESTS LEAD TO ERRORS?\n" +
		"\n" +
		"    Date: 2016-07-01 - Errors: 33.33 %\n"
	assert.Equal(t, want, string(got))

	assert.Contains(t, out.String(), "Querying database...\n")
	assert.Contains(t, out.String(), "Writing results on file...\n")
	assert.Contains(t, out.String(), "Done!")
}
