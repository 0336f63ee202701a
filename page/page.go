// Package page models the dashboard view: named text anchors looked up by a
// stable selector. An absent anchor is a normal state of a page, so lookups
// report it instead of failing.
package page

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

const (
	TotalUsers        = ".stat-card.bg-primary .card-text"
	ActiveSubs        = ".stat-card.bg-success .card-text"
	Income            = ".stat-card.bg-warning .card-text"
	ActiveConnections = "#active-connections"
	AuditLog          = "#audit-log tbody"
)

// Default lists the anchors of the full admin dashboard.
var Default = []string{TotalUsers, ActiveSubs, Income, ActiveConnections, AuditLog}

type Outcome int

const (
	Applied Outcome = iota
	// Missing means the anchor is not on this page.
	Missing
	// NoData means the source field was absent and the anchor was left as is.
	NoData
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Missing:
		return "missing"
	case NoData:
		return "nodata"
	}
	return "unknown"
}

type Node struct {
	mu   sync.RWMutex
	text string
}

func (n *Node) SetText(s string) {
	n.mu.Lock()
	n.text = s
	n.mu.Unlock()
}

func (n *Node) Text() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.text
}

// Lookup is the result of finding an anchor. Node is nil when Missing.
type Lookup struct {
	Selector string
	Node     *Node
	Missing  bool
}

type Page struct {
	mu    sync.RWMutex
	nodes map[string]*Node
}

func New(selectors ...string) *Page {
	p := &Page{nodes: make(map[string]*Node)}
	for _, sel := range selectors {
		p.Mount(sel)
	}
	return p
}

// Mount adds an anchor, keeping an existing one.
func (p *Page) Mount(sel string) *Node {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n, ok := p.nodes[sel]; ok {
		return n
	}
	n := new(Node)
	p.nodes[sel] = n
	return n
}

func (p *Page) Lookup(sel string) Lookup {
	p.mu.RLock()
	n, ok := p.nodes[sel]
	p.mu.RUnlock()
	return Lookup{Selector: sel, Node: n, Missing: !ok}
}

func (p *Page) SetText(sel string, s string) Outcome {
	l := p.Lookup(sel)
	if l.Missing {
		return Missing
	}
	l.Node.SetText(s)
	return Applied
}

func (p *Page) Text(sel string) (string, bool) {
	l := p.Lookup(sel)
	if l.Missing {
		return "", false
	}
	return l.Node.Text(), true
}

// Draw writes every anchor sorted by selector.
func (p *Page) Draw(w io.Writer) {
	p.mu.RLock()
	sels := make([]string, 0, len(p.nodes))
	for sel := range p.nodes {
		sels = append(sels, sel)
	}
	p.mu.RUnlock()
	sort.Strings(sels)

	for _, sel := range sels {
		text, _ := p.Text(sel)
		fmt.Fprintf(w, "%-36s %s\n", sel, text)
	}
}
