// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across components.
package httputil

import (
	"errors"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/pdiddy/textmill/pkg/types"
)

const (
	// DefaultConnectTimeout bounds connection setup and the arrival of
	// response headers.
	DefaultConnectTimeout = 10 * time.Second

	// DefaultRequestTimeout bounds the complete request, body transfer
	// included.
	DefaultRequestTimeout = 120 * time.Second
)

// NewClient builds an *http.Client enforcing the two independent timeouts
// from cfg: ConnectTimeout on dialing and response headers, and
// RequestTimeout on the whole exchange. Zero values fall back to the
// defaults above.
func NewClient(cfg types.HTTPConfig) *http.Client {
	connect := cfg.ConnectTimeout
	if connect <= 0 {
		connect = DefaultConnectTimeout
	}
	request := cfg.RequestTimeout
	if request <= 0 {
		request = DefaultRequestTimeout
	}

	return &http.Client{
		Timeout: request,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: connect,
			}).DialContext,
			TLSHandshakeTimeout:   connect,
			ResponseHeaderTimeout: connect,
		},
	}
}

// IsTransportError reports whether err came from the transport layer
// (DNS, dialing, timeouts) rather than from a decoded response. Callers
// use it to keep network failures distinct from server-reported errors.
func IsTransportError(err error) bool {
	if err == nil {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
