package report

import (
	"github.com/Egor213/LogsAnalysis/internal/domain"
	errorsUtils "github.com/Egor213/LogsAnalysis/pkg/errors"
	"github.com/goccy/go-json"
)

// EncodeJSON is the message body published for downstream consumers.
func EncodeJSON(rep domain.Report) ([]byte, error) {
	data, err := json.Marshal(rep)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return data, nil
}
