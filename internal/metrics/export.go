package metrics

import (
	"context"

	errorsUtils "github.com/Egor213/LogsAnalysis/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// WriteTextfile dumps the registry in the node_exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}

func (m *Metrics) Push(ctx context.Context, url, job string) error {
	err := push.New(url, job).
		Gatherer(m.Registry).
		PushContext(ctx)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}
