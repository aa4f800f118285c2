package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/Egor213/LogsAnalysis/internal/domain"
)

// Shape tells the formatter how to render the rows of a block. The caller
// always knows which query produced the rows and picks the shape.
type Shape int

const (
	ShapeViews Shape = iota
	ShapeErrors
)

const (
	indent     = "    "
	DateLayout = "2006-01-02"
)

type Row struct {
	Label   string
	Views   int64
	Day     time.Time
	Percent float64
}

type Block struct {
	Shape Shape
	Rows  []Row
}

func ArticlesBlock(articles []domain.ArticleViews) Block {
	rows := make([]Row, 0, len(articles))
	for _, a := range articles {
		rows = append(rows, Row{Label: a.Title, Views: a.Views})
	}
	return Block{Shape: ShapeViews, Rows: rows}
}

func AuthorsBlock(authors []domain.AuthorViews) Block {
	rows := make([]Row, 0, len(authors))
	for _, a := range authors {
		rows = append(rows, Row{Label: a.Name, Views: a.Views})
	}
	return Block{Shape: ShapeViews, Rows: rows}
}

func ErrorDaysBlock(days []domain.ErrorDay) Block {
	rows := make([]Row, 0, len(days))
	for _, d := range days {
		rows = append(rows, Row{Day: d.Day, Percent: d.ErrorsPercentage})
	}
	return Block{Shape: ShapeErrors, Rows: rows}
}

// Format renders the block preceded by a blank line, one indented line per
// row. View rows are numbered from 1; error rows are not numbered.
func (b Block) Format() string {
	var sb strings.Builder
	sb.WriteString("\n")

	for i, r := range b.Rows {
		switch b.Shape {
		case ShapeErrors:
			fmt.Fprintf(&sb, "%sDate: %s - Errors: %.2f %%\n", indent, r.Day.Format(DateLayout), r.Percent)
		default:
			fmt.Fprintf(&sb, "%s%d.%s - %d views\n", indent, i+1, r.Label, r.Views)
		}
	}

	return sb.String()
}
