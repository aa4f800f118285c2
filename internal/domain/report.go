package domain

import (
	"time"

	"github.com/google/uuid"
)

// ArticleViews is a row of the article_ranking view.
type ArticleViews struct {
	Title string `db:"title" json:"title"`
	Views int64  `db:"views" json:"views"`
}

type AuthorViews struct {
	Name  string `db:"name" json:"name"`
	Views int64  `db:"views" json:"views"`
}

// ErrorDay is a row of the daily_report view. ErrorsPercentage is already
// rounded to two decimals by the database.
type ErrorDay struct {
	Day              time.Time `db:"day" json:"day"`
	ErrorsPercentage float64   `db:"errors_percentage" json:"errors_percentage"`
}

// Report holds the answers to the three questions of a single run.
type Report struct {
	RunID          uuid.UUID      `json:"run_id"`
	GeneratedAt    time.Time      `json:"generated_at"`
	TopLimit       uint64         `json:"top_limit"`
	ErrorThreshold float64        `json:"error_threshold"`
	Articles       []ArticleViews `json:"articles"`
	Authors        []AuthorViews  `json:"authors"`
	ErrorDays      []ErrorDay     `json:"error_days"`
}
