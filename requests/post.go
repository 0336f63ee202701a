package requests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// Post sends obj as JSON. A nil obj sends an empty body.
func (c *Client) Post(ctx context.Context, url string, obj interface{}) (*Resp, error) {
	if obj == nil {
		return c.doPost(ctx, url, nil)
	}
	data, err := getReader(obj)
	if err != nil {
		return nil, err
	}
	return c.doPost(ctx, url, data)
}

func (c *Client) doPost(ctx context.Context, url string, data io.Reader) (*Resp, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, data)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func getReader(obj interface{}) (io.Reader, error) {
	if bs, err := json.Marshal(obj); err != nil {
		return nil, err
	} else {
		rs := bytes.NewReader(bs)
		return rs, nil
	}
}
