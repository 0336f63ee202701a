package requests

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"golang.org/x/net/publicsuffix"
)

// panel session cookie name
const SessionCookie = "session"

type Client struct {
	http *http.Client
}

// NewClient builds a client with a cookie jar. timeout 0 keeps the
// transport default. A non-empty session is seeded for baseURL.
func NewClient(baseURL string, session string, timeout time.Duration) (*Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	if session != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, err
		}
		jar.SetCookies(u, []*http.Cookie{{Name: SessionCookie, Value: session, Path: "/"}})
	}
	return &Client{
		http: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
	}, nil
}
