package render

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"text/tabwriter"
)

// TextDrawer prints the latest point of every dataset as a table.
type TextDrawer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTextDrawer(w io.Writer) *TextDrawer {
	return &TextDrawer{w: w}
}

func (t *TextDrawer) Draw(v View, mode Mode) {
	t.mu.Lock()
	defer t.mu.Unlock()

	last := "-"
	if n := len(v.Labels); n > 0 {
		last = v.Labels[n-1]
	}
	fmt.Fprintf(t.w, "== %s (%d points, last %s)\n", v.Title, len(v.Labels), last)

	tw := tabwriter.NewWriter(t.w, 0, 4, 2, ' ', 0)
	for _, ds := range v.Datasets {
		value := "-"
		if n := len(ds.Data); n > 0 {
			value = strconv.FormatFloat(ds.Data[n-1], 'f', -1, 64)
		}
		fmt.Fprintf(tw, "  %s\t%s\n", ds.Label, value)
	}
	tw.Flush()
}
