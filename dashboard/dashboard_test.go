package dashboard

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lodastack/panelctl/notify"
	"github.com/lodastack/panelctl/page"
	"github.com/lodastack/panelctl/panel"
	"github.com/lodastack/panelctl/render"
	"github.com/lodastack/panelctl/requests"
)

type fakeFetcher struct {
	poll  *panel.Poll
	err   error
	audit []panel.AuditEntry
}

func (f *fakeFetcher) FetchAll(ctx context.Context) (*panel.Poll, error) {
	return f.poll, f.err
}

func (f *fakeFetcher) Audit(ctx context.Context) ([]panel.AuditEntry, error) {
	return f.audit, f.err
}

func newTestDashboard(f Fetcher) (*Dashboard, *render.Board, *page.Page, *notify.Notifier) {
	b := render.NewBoard()
	b.InitDefault()
	p := page.New(page.Default...)
	n := notify.New(time.Minute)
	d := New(f, b, p, n, page.NewFormatter("en"))
	d.SetLocation(time.UTC)
	return d, b, p, n
}

func samplePoll() *panel.Poll {
	return &panel.Poll{
		System: panel.Series{{float64(0), 10.0, 20.0, 30.0}},
		VPN:    panel.Series{{float64(0), 3.0, 1048576.0}, {float64(60000), 5.0, 2097152.0}},
		Stats: panel.Stats{
			TotalUsers: []byte(`10`),
			ActiveSubs: []byte(`4`),
			Income:     &panel.Income{Yookassa: []byte(`"100.50"`)},
		},
	}
}

func TestRefresh(t *testing.T) {
	var out bytes.Buffer
	d, b, p, n := newTestDashboard(&fakeFetcher{poll: samplePoll()})
	defer n.Close()
	d.SetOutput(&out)

	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %s", err)
	}

	vpn, _ := b.Chart(render.ChartVPN)
	v := vpn.View()
	if len(v.Labels) != 2 || v.Labels[1] != "00:01:00" {
		t.Fatalf("unexpected vpn labels: %v", v.Labels)
	}
	if v.Datasets[1].Data[1] != 2 {
		t.Fatalf("expect 2 MB/s, got %v", v.Datasets[1].Data[1])
	}
	if _, mode := vpn.Updates(); mode != render.ModeNone {
		t.Fatalf("expect redraw without animation, got %s", mode)
	}

	want := map[string]string{
		page.TotalUsers:        "10",
		page.ActiveSubs:        "4",
		page.Income:            "100.5 ₽",
		page.ActiveConnections: "5",
	}
	for sel, w := range want {
		if got, _ := p.Text(sel); got != w {
			t.Fatalf("%s: expect %q, got %q", sel, w, got)
		}
	}
	if len(n.Active()) != 0 {
		t.Fatalf("expect no notice on success")
	}
	if !strings.Contains(out.String(), "100.5 ₽") {
		t.Fatalf("expect page drawn, got %q", out.String())
	}
}

func TestRefreshFailureAppliesNothing(t *testing.T) {
	d, b, p, n := newTestDashboard(&fakeFetcher{err: errors.New("stats down")})
	defer n.Close()
	p.SetText(page.TotalUsers, "7")

	if err := d.Refresh(context.Background()); err == nil {
		t.Fatalf("expect refresh error")
	}

	for _, name := range []string{render.ChartSystem, render.ChartVPN} {
		c, _ := b.Chart(name)
		if updates, _ := c.Updates(); updates != 0 {
			t.Fatalf("chart %s must not redraw on failure", name)
		}
	}
	if got, _ := p.Text(page.TotalUsers); got != "7" {
		t.Fatalf("counter must not change on failure, got %q", got)
	}
	active := n.Active()
	if len(active) != 1 || active[0].Severity != notify.Error || active[0].Message != MsgRefreshFailed {
		t.Fatalf("expect exactly one failure notice, got %+v", active)
	}
}

func TestRefreshPartialPanelFailure(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case panel.SystemMetricsPath, panel.VPNMetricsPath:
			w.Write([]byte(`{"metrics": [[0, 1, 2, 3]]}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer s.Close()

	req, _ := requests.NewClient(s.URL, "", 0)
	d, b, _, n := newTestDashboard(panel.NewClient(s.URL, req))
	defer n.Close()

	d.Refresh(context.Background())
	c, _ := b.Chart(render.ChartSystem)
	if updates, _ := c.Updates(); updates != 0 {
		t.Fatalf("expect no render from a half completed cycle")
	}
	if len(n.Active()) != 1 {
		t.Fatalf("expect one failure notice, got %d", len(n.Active()))
	}
}

func TestRefreshWithoutCharts(t *testing.T) {
	p := page.New()
	n := notify.New(time.Minute)
	defer n.Close()
	d := New(&fakeFetcher{poll: samplePoll()}, render.NewBoard(), p, n, page.NewFormatter("en"))
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("expect missing charts and anchors to be tolerated: %s", err)
	}
}

func TestRefreshNullMetrics(t *testing.T) {
	poll := samplePoll()
	poll.System = nil
	d, b, _, n := newTestDashboard(&fakeFetcher{poll: poll})
	defer n.Close()

	d.Refresh(context.Background())
	c, _ := b.Chart(render.ChartSystem)
	if updates, _ := c.Updates(); updates != 0 {
		t.Fatalf("expect absent series to skip its chart")
	}
}

func TestRefreshAuditLog(t *testing.T) {
	f := &fakeFetcher{audit: []panel.AuditEntry{
		{float64(0), "admin", "restart", nil},
		{"2024-01-01 10:00:00", "root", "ban", "uid 5"},
	}}
	d, _, p, n := newTestDashboard(f)
	defer n.Close()

	if err := d.RefreshAuditLog(context.Background()); err != nil {
		t.Fatalf("refresh audit log failed: %s", err)
	}
	got, _ := p.Text(page.AuditLog)
	want := "1970-01-01 00:00:00 | admin | restart | N/A\n2024-01-01 10:00:00 | root | ban | uid 5"
	if got != want {
		t.Fatalf("unexpected audit rows:\n%s", got)
	}
}

func TestRefreshAuditLogFailure(t *testing.T) {
	d, _, _, n := newTestDashboard(&fakeFetcher{err: errors.New("down")})
	defer n.Close()
	if err := d.RefreshAuditLog(context.Background()); err == nil {
		t.Fatalf("expect error")
	}
	if len(n.Active()) != 0 {
		t.Fatalf("audit failures are only logged")
	}
}
