// Package report pushes panelctl's own health to the local monitor agent and
// keeps the poll counters.
package report

import (
	"encoding/json"
	"time"

	"github.com/lodastack/log"
	"github.com/lodastack/models"
	"github.com/lodastack/sdk-go"
	"github.com/prometheus/client_golang/prometheus"
)

var Hostname string

const (
	PollMetric   = "panelctl.poll"
	HealthMetric = "panelctl.health"
)

type Reporter struct {
	ns     string
	enable bool
	post   func(ns string, data []byte) error

	pollTotal    *prometheus.CounterVec
	pollDuration prometheus.Histogram
}

func NewReporter(ns string, enable bool, reg prometheus.Registerer) *Reporter {
	r := &Reporter{
		ns:     ns,
		enable: enable,
		post:   sdk.Post,
		pollTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "panelctl_poll_total",
				Help: "Total number of poll cycles",
			},
			[]string{"result"},
		),
		pollDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "panelctl_poll_duration_seconds",
				Help:    "Poll cycle duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	reg.MustRegister(r.pollTotal, r.pollDuration)
	return r
}

// PollResult records one finished cycle.
func (r *Reporter) PollResult(d time.Duration, err error) {
	fields := map[string]float64{
		"alive":        1,
		"responseTime": d.Seconds(),
	}
	result := "ok"
	if err != nil {
		fields["alive"] = 0
		result = "failed"
	}
	r.pollTotal.WithLabelValues(result).Inc()
	r.pollDuration.Observe(d.Seconds())

	if r.enable {
		go func() {
			if err := r.Send(PollMetric, fields); err != nil {
				log.Errorf("report poll result failed: %s", err)
			}
		}()
	}
}

// Send pushes fields as <name>.<field> metrics to the monitor agent.
func (r *Reporter) Send(name string, fields map[string]float64) error {
	var ms []models.Metric
	now := time.Now().Unix()
	for k, v := range fields {
		m := models.Metric{
			Name:      name + "." + k,
			Timestamp: now,
			Tags: map[string]string{
				"host": Hostname,
			},
			Value: v,
		}
		ms = append(ms, m)
	}
	data, err := json.Marshal(ms)
	if err != nil {
		return err
	}
	return r.post(r.ns, data)
}
