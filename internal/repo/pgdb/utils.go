package pgdb

import (
	"fmt"
	"strings"

	"github.com/Egor213/LogsAnalysis/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/LogsAnalysis/pkg/errors"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const (
	ArticleRankingView = "article_ranking"
	DailyReportView    = "daily_report"

	DefaultSuccessStatus = "200 OK"
)

// slugMatch credits a log entry to the article whose slug ends its path.
const slugMatch = "log ON log.path LIKE CONCAT('%', articles.slug)"

// BuildArticleRankingSelect returns the body of the article_ranking view.
// With includeZeroViews the join becomes a LEFT JOIN and articles nobody
// requested are kept with zero views.
func BuildArticleRankingSelect(b sq.StatementBuilderType, includeZeroViews bool) sq.SelectBuilder {
	query := b.Select("articles.title", "articles.author").From("articles")

	if includeZeroViews {
		query = query.Column("count(log.path) AS views").LeftJoin(slugMatch)
	} else {
		query = query.Column("count(*) AS views").Join(slugMatch)
	}

	return query.
		GroupBy("articles.title", "articles.author").
		OrderBy("views DESC", "articles.title")
}

// BuildDailyReportSelect returns the body of the daily_report view. Every
// status other than successStatus counts as an error.
func BuildDailyReportSelect(b sq.StatementBuilderType, successStatus string) sq.SelectBuilder {
	errorsPercentage := fmt.Sprintf(
		"round(100.00 * sum(CASE log.status WHEN %s THEN 0 ELSE 1 END) / count(log.status), 2) AS errors_percentage",
		QuoteLiteral(successStatus),
	)

	return b.
		Select("date(log.time) AS day", errorsPercentage).
		From("log").
		GroupBy("day").
		OrderBy("errors_percentage DESC", "day")
}

func BuildCreateViewQuery(name string, body sq.SelectBuilder) sq.SelectBuilder {
	return body.Prefix("CREATE OR REPLACE VIEW " + pgx.Identifier{name}.Sanitize() + " AS")
}

func BuildTopArticlesQuery(b sq.StatementBuilderType, limit uint64) sq.SelectBuilder {
	return b.
		Select("title", "views").
		From(ArticleRankingView).
		OrderBy("views DESC", "title").
		Limit(limit)
}

// BuildAuthorTotalsQuery sums every ranked article of an author, so it does
// not depend on the Top-N limit.
func BuildAuthorTotalsQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.
		Select("authors.name", "sum(article_ranking.views)::bigint AS views").
		From(ArticleRankingView).
		Join("authors ON authors.id = article_ranking.author").
		GroupBy("authors.name").
		OrderBy("views DESC", "authors.name")
}

func BuildHighErrorDaysQuery(b sq.StatementBuilderType, threshold float64) sq.SelectBuilder {
	return b.
		Select("day", "errors_percentage").
		From(DailyReportView).
		Where(sq.Gt{"errors_percentage": threshold}).
		OrderBy("errors_percentage DESC", "day")
}

// QuoteLiteral renders s as a SQL string literal. DDL statements cannot take
// bind parameters, so view bodies carry their literals inline.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func classifyErr(err error) error {
	switch {
	case errorsUtils.IsUndefinedTable(err), errorsUtils.IsUndefinedColumn(err):
		return fmt.Errorf("%w: %w", repoerrs.ErrRelationMissing, err)
	case errorsUtils.IsSyntaxError(err):
		return fmt.Errorf("%w: %w", repoerrs.ErrBadStatement, err)
	default:
		return err
	}
}
