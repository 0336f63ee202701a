package panel

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/lodastack/panelctl/requests"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	SystemMetricsPath = "/admin/api/metrics/system"
	VPNMetricsPath    = "/admin/api/metrics/vpn"
	StatsPath         = "/admin/api/stats"
	AuditPath         = "/admin/api/system/audit"
	RestartPath       = "/admin/api/system/restart/%s"
	ExportPath        = "/admin/api/export/%s"
	HealthPath        = "/health"
)

// Client reads the panel admin API.
type Client struct {
	Addr string
	req  *requests.Client
}

func NewClient(addr string, req *requests.Client) *Client {
	return &Client{
		Addr: strings.TrimRight(addr, "/"),
		req:  req,
	}
}

// FetchAll runs the three reads of one cycle concurrently and waits for all
// of them. Any failure fails the whole poll.
func (c *Client) FetchAll(ctx context.Context) (*Poll, error) {
	var sys, vpn MetricsResp
	var stats Stats

	var g errgroup.Group
	g.Go(func() error { return c.getJSON(ctx, SystemMetricsPath, &sys) })
	g.Go(func() error { return c.getJSON(ctx, VPNMetricsPath, &vpn) })
	g.Go(func() error { return c.getJSON(ctx, StatsPath, &stats) })
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "fetch metrics")
	}

	return &Poll{
		System: sys.Metrics,
		VPN:    vpn.Metrics,
		Stats:  stats,
	}, nil
}

func (c *Client) Audit(ctx context.Context) ([]AuditEntry, error) {
	var resp AuditResp
	if err := c.getJSON(ctx, AuditPath, &resp); err != nil {
		return nil, errors.Wrap(err, "fetch audit log")
	}
	return resp.Logs, nil
}

// Restart asks the panel to restart a service. The response body is ignored.
func (c *Client) Restart(ctx context.Context, service string) error {
	endpoint := fmt.Sprintf(RestartPath, url.PathEscape(service))
	resp, err := c.req.Post(ctx, c.Addr+endpoint, nil)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	if !resp.OK() {
		return &StatusError{Endpoint: endpoint, Status: resp.Status}
	}
	return nil
}

func (c *Client) ExportURL(format string) string {
	return c.Addr + fmt.Sprintf(ExportPath, url.PathEscape(format))
}

func (c *Client) HealthURL() string {
	return c.Addr + HealthPath
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	resp, err := c.req.Get(ctx, c.Addr+endpoint)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	if !resp.OK() {
		return &StatusError{Endpoint: endpoint, Status: resp.Status}
	}
	if err := resp.Obj(out); err != nil {
		return &ParseError{Endpoint: endpoint, Err: err}
	}
	return nil
}
