package render

import (
	"sync"
)

// Mode is the redraw mode handed to drawers.
type Mode string

// ModeNone redraws without animation.
const ModeNone Mode = "none"

type Dataset struct {
	Label string
	Data  []float64
}

// View is a copy of a chart's state, safe to keep after the chart changes.
type View struct {
	Name     string
	Title    string
	Labels   []string
	Datasets []Dataset
}

type Drawer interface {
	Draw(v View, mode Mode)
}

// Chart is a stateful chart: its label and dataset arrays are replaced in
// place and every Update redraws through the drawers.
type Chart struct {
	mu       sync.RWMutex
	name     string
	title    string
	labels   []string
	datasets []Dataset
	updates  int
	lastMode Mode
	drawers  []Drawer
}

func NewChart(name, title string, datasets []string, drawers ...Drawer) *Chart {
	c := &Chart{
		name:     name,
		title:    title,
		datasets: make([]Dataset, len(datasets)),
		drawers:  drawers,
	}
	for i, label := range datasets {
		c.datasets[i].Label = label
	}
	return c
}

// SetData replaces labels and the data of dataset i with columns[i]. Extra
// columns are ignored, datasets without a column are emptied.
func (c *Chart) SetData(labels []string, columns [][]float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.labels = labels
	for i := range c.datasets {
		if i < len(columns) {
			c.datasets[i].Data = columns[i]
		} else {
			c.datasets[i].Data = nil
		}
	}
}

func (c *Chart) Update(mode Mode) {
	c.mu.Lock()
	c.updates++
	c.lastMode = mode
	v := c.view()
	c.mu.Unlock()

	for _, d := range c.drawers {
		d.Draw(v, mode)
	}
}

func (c *Chart) View() View {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.view()
}

// Updates returns the redraw count and the mode of the last redraw.
func (c *Chart) Updates() (int, Mode) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.updates, c.lastMode
}

func (c *Chart) view() View {
	v := View{
		Name:     c.name,
		Title:    c.title,
		Labels:   append([]string(nil), c.labels...),
		Datasets: make([]Dataset, len(c.datasets)),
	}
	for i, ds := range c.datasets {
		v.Datasets[i] = Dataset{Label: ds.Label, Data: append([]float64(nil), ds.Data...)}
	}
	return v
}
