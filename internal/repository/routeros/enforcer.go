package routeros

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/gym-network-toolkit/portal/internal/entity"
)

const (
	_bindingPath = "/rest/ip/hotspot/ip-binding"
	_queuePath   = "/rest/queue/simple"

	_retryInterval = 250 * time.Millisecond
	_retryMax      = 2
)

// queueName derives the shaping rule name for a device. One queue per MAC
// keeps re-grants idempotent.
func queueName(mac string) string {
	return "portal-" + strings.ToLower(strings.ReplaceAll(mac, ":", ""))
}

// GrantAccess upserts the hotspot bypass entry and the shaping queue for a
// device. Rates and duration are tier-derived by the caller, never taken
// from the portal client. Safe under retry: existing entries are patched,
// not duplicated.
//
// The binding carries no router-side expiry: bypassed ip-bindings have no
// timeout field, so the end time only lands in the entry comment and
// revocation depends on the portal sweep running. A grant outlives its
// session if the portal process stays down past the session end.
func (c *Client) GrantAccess(ctx context.Context, mac, ip string, duration time.Duration, downloadMbps, uploadMbps int) error {
	comment := fmt.Sprintf("portal grant until %s", time.Now().Add(duration).UTC().Format(time.RFC3339))

	binding := map[string]string{
		"mac-address": mac,
		"address":     ip,
		"type":        "bypassed",
		"comment":     comment,
	}

	if err := c.upsert(ctx, _bindingPath, url.Values{"mac-address": {mac}}, binding); err != nil {
		return err
	}

	queue := map[string]string{
		"name":   queueName(mac),
		"target": ip + "/32",
		// max-limit is upload/download from the device's perspective
		"max-limit": fmt.Sprintf("%dM/%dM", uploadMbps, downloadMbps),
		"comment":   comment,
	}

	if err := c.upsert(ctx, _queuePath, url.Values{"name": {queueName(mac)}}, queue); err != nil {
		// Half-applied grants are revoked so the router never passes
		// unshaped traffic for an unconfirmed session.
		if rbErr := c.RevokeAccess(ctx, mac); rbErr != nil {
			c.log.Warn("routeros - GrantAccess - rollback failed for %s: %s", mac, rbErr)
		}

		return err
	}

	return nil
}

// RevokeAccess removes the hotspot entry and the shaping queue for a MAC.
// Entries already absent count as success.
func (c *Client) RevokeAccess(ctx context.Context, mac string) error {
	op := func() error {
		if err := c.removeAll(ctx, _bindingPath, url.Values{"mac-address": {mac}}); err != nil {
			return err
		}

		return c.removeAll(ctx, _queuePath, url.Values{"name": {queueName(mac)}})
	}

	return backoff.Retry(op, c.retryPolicy(ctx))
}

// GetUsage reads the queue byte counters for a MAC, converted to MB.
// Returns an EnforcementError when the device has no queue or the router
// is unreachable; callers treat that as "no update available".
func (c *Client) GetUsage(ctx context.Context, mac string) (entity.DataUsage, error) {
	var usage entity.DataUsage

	op := func() error {
		items, err := c.find(ctx, _queuePath, url.Values{"name": {queueName(mac)}})
		if err != nil {
			return err
		}

		if len(items) == 0 {
			return backoff.Permanent(ErrEnforcement.Wrap("GetUsage", "find",
				fmt.Errorf("no queue for mac %s", mac)))
		}

		usage = parseQueueBytes(items[0]["bytes"])

		return nil
	}

	if err := backoff.Retry(op, c.retryPolicy(ctx)); err != nil {
		return entity.DataUsage{}, err
	}

	return usage, nil
}

func (c *Client) retryPolicy(ctx context.Context) backoff.BackOffContext {
	return backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(_retryInterval), _retryMax), ctx)
}

// upsert patches the object matching query if present, otherwise creates it.
func (c *Client) upsert(ctx context.Context, path string, query url.Values, obj map[string]string) error {
	items, err := c.find(ctx, path, query)
	if err != nil {
		return err
	}

	if len(items) > 0 {
		id := items[0][".id"]

		return c.do(ctx, http.MethodPatch, path+"/"+id, obj, nil)
	}

	return c.do(ctx, http.MethodPut, path, obj, nil)
}

// removeAll deletes every object matching query; zero matches is success.
func (c *Client) removeAll(ctx context.Context, path string, query url.Values) error {
	items, err := c.find(ctx, path, query)
	if err != nil {
		return err
	}

	for _, item := range items {
		if err := c.do(ctx, http.MethodDelete, path+"/"+item[".id"], nil, nil); err != nil {
			return err
		}
	}

	return nil
}

// parseQueueBytes converts the router's "upBytes/downBytes" counter pair
// into MB. Malformed counters read as zero rather than failing the check.
func parseQueueBytes(raw string) entity.DataUsage {
	const bytesPerMB = 1024 * 1024

	parts := strings.Split(raw, "/")
	if len(parts) != 2 {
		return entity.DataUsage{}
	}

	up, _ := strconv.ParseFloat(parts[0], 64)
	down, _ := strconv.ParseFloat(parts[1], 64)

	return entity.DataUsage{
		DownloadMB: down / bytesPerMB,
		UploadMB:   up / bytesPerMB,
	}
}
