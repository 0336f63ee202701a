// Package dashboard wires one poll cycle: fetch, transform, render and count.
package dashboard

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lodastack/panelctl/notify"
	"github.com/lodastack/panelctl/page"
	"github.com/lodastack/panelctl/panel"
	"github.com/lodastack/panelctl/render"
	"github.com/lodastack/panelctl/report"
	"github.com/lodastack/panelctl/series"

	"github.com/lodastack/log"
)

const (
	MsgRefreshFailed = "Failed to refresh metrics"
	AuditTimeLayout  = "2006-01-02 15:04:05"
	AuditNoDetail    = "N/A"
)

type Fetcher interface {
	FetchAll(ctx context.Context) (*panel.Poll, error)
	Audit(ctx context.Context) ([]panel.AuditEntry, error)
}

type Dashboard struct {
	client    Fetcher
	board     *render.Board
	page      *page.Page
	notifier  *notify.Notifier
	reporter  *report.Reporter
	formatter *page.Formatter
	loc       *time.Location
	out       io.Writer
}

func New(c Fetcher, b *render.Board, p *page.Page, n *notify.Notifier, f *page.Formatter) *Dashboard {
	return &Dashboard{
		client:    c,
		board:     b,
		page:      p,
		notifier:  n,
		formatter: f,
		loc:       time.Local,
	}
}

// SetReporter records every cycle in r.
func (d *Dashboard) SetReporter(r *report.Reporter) {
	d.reporter = r
}

// SetLocation sets the zone chart labels are shown in.
func (d *Dashboard) SetLocation(loc *time.Location) {
	if loc != nil {
		d.loc = loc
	}
}

// SetOutput draws the page to w after every successful cycle.
func (d *Dashboard) SetOutput(w io.Writer) {
	d.out = w
}

// Refresh runs one poll cycle. Nothing is rendered unless all three reads
// succeed, a failed cycle shows exactly one notice.
func (d *Dashboard) Refresh(ctx context.Context) error {
	start := time.Now()
	p, err := d.client.FetchAll(ctx)
	if d.reporter != nil {
		d.reporter.PollResult(time.Since(start), err)
	}
	if err != nil {
		log.Errorf("refresh metrics failed: %s", err)
		d.notifier.Notify(MsgRefreshFailed, notify.Error)
		return err
	}

	d.apply(p)
	log.Infof("metrics refreshed in %s", time.Since(start))
	return nil
}

// Cycle is Refresh for the scheduler, errors are already reported.
func (d *Dashboard) Cycle(ctx context.Context) {
	d.Refresh(ctx)
}

func (d *Dashboard) apply(p *panel.Poll) {
	if p.System != nil {
		d.board.Render(render.ChartSystem, series.Transform(p.System, series.System, d.loc))
	}
	if p.VPN != nil {
		d.board.Render(render.ChartVPN, series.Transform(p.VPN, series.VPN, d.loc))
	}

	for _, r := range page.UpdateCounters(d.page, p.Stats, d.formatter) {
		if r.Outcome != page.Applied {
			log.Debugf("counter %s %s", r.Selector, r.Outcome)
		}
	}

	if v, ok := series.Latest(p.VPN, 1); ok {
		d.page.SetText(page.ActiveConnections, d.formatter.Number(v))
	}

	if d.out != nil {
		d.page.Draw(d.out)
	}
}

// RefreshAuditLog writes the audit log rows into the audit anchor. Failures
// are only logged.
func (d *Dashboard) RefreshAuditLog(ctx context.Context) error {
	logs, err := d.client.Audit(ctx)
	if err != nil {
		log.Errorf("refresh audit log failed: %s", err)
		return err
	}
	if d.page.Lookup(page.AuditLog).Missing {
		return nil
	}
	d.page.SetText(page.AuditLog, FormatAudit(logs, d.loc))
	return nil
}

// FormatAudit renders one row per entry: time | actor | action | detail.
func FormatAudit(logs []panel.AuditEntry, loc *time.Location) string {
	rows := make([]string, 0, len(logs))
	for _, e := range logs {
		ts := e.Field(0)
		if t, ok := e.Time(loc); ok {
			ts = t.Format(AuditTimeLayout)
		}
		detail := e.Field(3)
		if detail == "" {
			detail = AuditNoDetail
		}
		rows = append(rows, fmt.Sprintf("%s | %s | %s | %s", ts, e.Field(1), e.Field(2), detail))
	}
	return strings.Join(rows, "\n")
}
