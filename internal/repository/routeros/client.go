// Package routeros implements network enforcement against a MikroTik
// router's REST management API: hotspot bypass entries for access and
// simple queues for bandwidth shaping.
package routeros

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gym-network-toolkit/portal/pkg/logger"
	"github.com/gym-network-toolkit/portal/pkg/portalerrors"
)

const _defaultTimeout = 10 * time.Second

// EnforcementError wraps any router API failure. Callers decide whether a
// given operation fails closed (grants) or is logged and ignored (revokes,
// telemetry reads).
type EnforcementError struct {
	Portal portalerrors.InternalError
}

func (e EnforcementError) Error() string {
	return e.Portal.Error()
}

func (e EnforcementError) Wrap(call, function string, err error) EnforcementError {
	e.Portal = e.Portal.Wrap(call, function, err)

	return e
}

var ErrEnforcement = EnforcementError{Portal: portalerrors.CreatePortalError("RouterOSClient")}

// Client talks to a single router's REST endpoint with a static credential
// pair. Every call is bounded by the configured timeout.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	log        logger.Interface
}

// NewClient -.
func NewClient(baseURL, username, password string, timeout time.Duration, log logger.Interface) *Client {
	if timeout <= 0 {
		timeout = _defaultTimeout
	}

	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// do issues one REST call and decodes the JSON response into out when
// out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return ErrEnforcement.Wrap("do", "json.Marshal", err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return ErrEnforcement.Wrap("do", "http.NewRequestWithContext", err)
	}

	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ErrEnforcement.Wrap("do", "httpClient.Do", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return ErrEnforcement.Wrap("do", method+" "+path,
			fmt.Errorf("router api status %d: %s", resp.StatusCode, strings.TrimSpace(string(data))))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return ErrEnforcement.Wrap("do", "json.Decode", err)
	}

	return nil
}

// find runs a property query ("?key=value") and returns matching objects.
func (c *Client) find(ctx context.Context, path string, query url.Values) ([]map[string]string, error) {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var items []map[string]string
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}

	return items, nil
}
