package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Gauge interface {
	Set(value float64, labels ...string)
}

type Metrics struct {
	Registry *prometheus.Registry

	ReportSteps Counter
	ReportRows  Gauge
	LastSuccess Gauge
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func NewPrometheusCounter(reg prometheus.Registerer, name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels),
	}
	reg.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

type PrometheusGauge struct {
	gauge *prometheus.GaugeVec
}

func NewPrometheusGauge(reg prometheus.Registerer, name, help string, labels []string) *PrometheusGauge {
	g := &PrometheusGauge{
		gauge: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: name,
			Help: help,
		}, labels),
	}
	reg.MustRegister(g.gauge)
	return g
}

func (p *PrometheusGauge) Set(value float64, labels ...string) {
	p.gauge.WithLabelValues(labels...).Set(value)
}

// New builds the run metrics on a private registry: a batch run exports only
// its own series, never the process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	return &Metrics{
		Registry: reg,
		ReportSteps: NewPrometheusCounter(
			reg,
			"logs_analysis_steps_total",
			"View creations and queries executed, by step and outcome",
			[]string{"step", "status"},
		),
		ReportRows: NewPrometheusGauge(
			reg,
			"logs_analysis_rows",
			"Rows returned by the last run, by step",
			[]string{"step"},
		),
		LastSuccess: NewPrometheusGauge(
			reg,
			"logs_analysis_last_success_timestamp_seconds",
			"Unix time of the last successful report",
			nil,
		),
	}
}
