package clients

import (
	"net/http"
	"time"
)

const DefaultTimeout = 60 * time.Second

type HTTP struct{ c *http.Client }

func NewHTTP() *HTTP { return NewHTTPWithTimeout(DefaultTimeout) }

func NewHTTPWithTimeout(d time.Duration) *HTTP {
	if d <= 0 {
		d = DefaultTimeout
	}
	return &HTTP{c: &http.Client{Timeout: d}}
}
