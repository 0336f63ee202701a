package render

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PromDrawer exposes the latest point of every dataset as a gauge.
type PromDrawer struct {
	value  *prometheus.GaugeVec
	points *prometheus.GaugeVec
}

func NewPromDrawer(reg prometheus.Registerer) *PromDrawer {
	p := &PromDrawer{
		value: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "panelctl_chart_value",
				Help: "Latest value of a chart dataset",
			},
			[]string{"chart", "dataset"},
		),
		points: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "panelctl_chart_points",
				Help: "Number of points in the last render of a chart",
			},
			[]string{"chart"},
		),
	}
	reg.MustRegister(p.value, p.points)
	return p
}

func (p *PromDrawer) Draw(v View, mode Mode) {
	p.points.WithLabelValues(v.Name).Set(float64(len(v.Labels)))
	for _, ds := range v.Datasets {
		if n := len(ds.Data); n > 0 {
			p.value.WithLabelValues(v.Name, ds.Label).Set(ds.Data[n-1])
		} else {
			p.value.DeleteLabelValues(v.Name, ds.Label)
		}
	}
}
