package render

import (
	"sync"

	"github.com/lodastack/panelctl/series"

	"github.com/lodastack/log"
)

// chart names
const (
	ChartSystem        = "system"
	ChartVPN           = "vpn"
	ChartRegistrations = "registrations"
	ChartIncome        = "income"
)

// Outcome of a render call.
type Outcome int

const (
	Rendered Outcome = iota
	// Skipped means the chart was never constructed. Not an error.
	Skipped
)

func (o Outcome) String() string {
	if o == Skipped {
		return "skipped"
	}
	return "rendered"
}

// Board owns the chart instances of one dashboard.
type Board struct {
	mu      sync.RWMutex
	charts  map[string]*Chart
	drawers []Drawer
}

func NewBoard(drawers ...Drawer) *Board {
	return &Board{
		charts:  make(map[string]*Chart),
		drawers: drawers,
	}
}

// Init constructs a chart, replacing any chart with the same name.
func (b *Board) Init(name, title string, datasets []string) *Chart {
	c := NewChart(name, title, datasets, b.drawers...)
	b.mu.Lock()
	b.charts[name] = c
	b.mu.Unlock()
	return c
}

// InitDefault constructs the charts of the admin dashboard.
func (b *Board) InitDefault() {
	b.Init(ChartSystem, "System Metrics", series.Names(series.System))
	b.Init(ChartVPN, "VPN Metrics", series.Names(series.VPN))
	b.Init(ChartRegistrations, "Registrations", []string{"Registrations"})
	b.Init(ChartIncome, "Income", []string{"Income (₽)"})
}

func (b *Board) Chart(name string) (*Chart, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	c, ok := b.charts[name]
	return c, ok && c != nil
}

// Render replaces the chart data and redraws without animation.
func (b *Board) Render(name string, d series.Data) Outcome {
	c, ok := b.Chart(name)
	if !ok {
		log.Debugf("chart %s not initialized, skip render", name)
		return Skipped
	}
	c.SetData(d.Labels, d.Columns)
	c.Update(ModeNone)
	return Rendered
}
