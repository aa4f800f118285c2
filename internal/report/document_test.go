package report_test

import (
	"testing"
	"time"

	"github.com/Egor213/LogsAnalysis/internal/domain"
	"github.com/Egor213/LogsAnalysis/internal/report"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	rep := domain.Report{
		TopLimit:       3,
		ErrorThreshold: 1,
		Articles: []domain.ArticleViews{
			{Title: "Foo Post", Views: 2},
			{Title: "Bar Post", Views: 1},
		},
		Authors: []domain.AuthorViews{
			{Name: "Rudolf von Treppenwitz", Views: 3},
		},
		ErrorDays: []domain.ErrorDay{
			{Day: time.Date(2016, time.July, 1, 0, 0, 0, 0, time.UTC), ErrorsPercentage: 33.33},
		},
	}

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
		"    1.Rudolf von Treppenwitz - 3 views\n" +
		"\n" +
		"3. WHEN DID MORE THAN 1% OF REQUESTS LEAD TO ERRORS?\n" +
		"\n" +
		"    Date: 2016-07-01 - Errors: 33.33 %\n"

	assert.Equal(t, want, report.Render(rep))
}

func TestSections_QuestionFollowsParameters(t *testing.T) {
	sections := report.Sections(domain.Report{TopLimit: 25, ErrorThreshold: 2.5})

	assert.Len(t, sections, 3)
	assert.Equal(t, "What are the most popular 25 articles of all time?", sections[0].Question)
	assert.Equal(t, "When did more than 2.5% of requests lead to errors?", sections[2].Question)
	assert.Equal(t, report.ShapeViews, sections[0].Block.Shape)
	assert.Equal(t, report.ShapeViews, sections[1].Block.Shape)
	assert.Equal(t, report.ShapeErrors, sections[2].Block.Shape)
}
