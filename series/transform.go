// Package series turns panel metric rows into chart labels and columns.
package series

import (
	"math"
	"time"

	"github.com/lodastack/panelctl/panel"
)

// Kind fixes which row fields become columns and in which order. The order
// must match the dataset order of the chart the data is rendered into.
type Kind int

const (
	System Kind = iota
	VPN
)

const (
	LabelLayout = "15:04:05"
	// label for rows whose timestamp cannot be read
	NoLabel = "-"

	bytesPerMB = 1024 * 1024
)

// column describes one output column: the row field it reads and an optional
// conversion.
type column struct {
	Name    string
	Field   int
	Convert func(float64) float64
}

var kinds = map[Kind][]column{
	System: {
		{Name: "CPU %", Field: 1},
		{Name: "RAM %", Field: 2},
		{Name: "Disk %", Field: 3},
	},
	VPN: {
		{Name: "Active Connections", Field: 1},
		{Name: "Bandwidth (MB/s)", Field: 2, Convert: BytesToMB},
	},
}

type Data struct {
	Labels  []string
	Columns [][]float64
}

// Names lists the column names of a kind in dataset order.
func Names(k Kind) []string {
	cols := kinds[k]
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}

// Transform builds labels and columns for s. Every column has len(s) values.
func Transform(s panel.Series, k Kind, loc *time.Location) Data {
	cols := kinds[k]
	d := Data{
		Labels:  make([]string, len(s)),
		Columns: make([][]float64, len(cols)),
	}
	for i := range d.Columns {
		d.Columns[i] = make([]float64, len(s))
	}

	for i, row := range s {
		if ts, ok := row.Time(loc); ok {
			d.Labels[i] = ts.Format(LabelLayout)
		} else {
			d.Labels[i] = NoLabel
		}
		for j, c := range cols {
			v := row.Value(c.Field)
			if c.Convert != nil {
				v = c.Convert(v)
			}
			d.Columns[j][i] = v
		}
	}
	return d
}

// BytesToMB converts bytes/sec to MB/s rounded to two decimals.
func BytesToMB(v float64) float64 {
	return Round2(v / bytesPerMB)
}

// Round2 rounds half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Latest returns field of the last row. ok is false for an empty series.
func Latest(s panel.Series, field int) (float64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1].Value(field), true
}
