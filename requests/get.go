package requests

import (
	"context"
	"net/http"
)

func (c *Client) Get(ctx context.Context, url string) (*Resp, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*Resp, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	rs := new(Resp)
	rs.Status = resp.StatusCode
	if bytes, err := getBytes(resp); err != nil {
		return nil, err
	} else {
		rs.Body = bytes
		return rs, nil
	}
}
