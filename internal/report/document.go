package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Egor213/LogsAnalysis/internal/domain"
)

const Title = "LOGS ANALYSIS PROJECT OUTPUT FILE"

type Section struct {
	Question string
	Block    Block
}

var numberWords = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"}

func Sections(rep domain.Report) []Section {
	return []Section{
		{
			Question: fmt.Sprintf("What are the most popular %s articles of all time?", countWord(rep.TopLimit)),
			Block:    ArticlesBlock(rep.Articles),
		},
		{
			Question: "Who are the most popular article authors of all time?",
			Block:    AuthorsBlock(rep.Authors),
		},
		{
			Question: fmt.Sprintf("When did more than %s%% of requests lead to errors?",
				strconv.FormatFloat(rep.ErrorThreshold, 'f', -1, 64)),
			Block: ErrorDaysBlock(rep.ErrorDays),
		},
	}
}

// Render builds the whole output file: the title, its underline, then every
// question upper-cased and followed by its block.
func Render(rep domain.Report) string {
	var sb strings.Builder
	sb.WriteString(Title + "\n")
	sb.WriteString(strings.Repeat("-", len(Title)) + "\n")

	for i, s := range Sections(rep) {
		fmt.Fprintf(&sb, "\n%s\n", strings.ToUpper(fmt.Sprintf("%d. %s", i+1, s.Question)))
		sb.WriteString(s.Block.Format())
	}

	return sb.String()
}

func countWord(n uint64) string {
	if n < uint64(len(numberWords)) {
		return numberWords[n]
	}
	return strconv.FormatUint(n, 10)
}
