package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/haukened/rr-dnsctl/internal/dns/wire"
)

// CreateChange submits an atomic batch of record-set additions and
// deletions to a zone. The returned change carries the service-assigned ID
// and initial status, usually pending.
func (c *Client) CreateChange(ctx context.Context, zone string, change wire.Change) (*wire.Change, error) {
	var created wire.Change
	if err := c.do(ctx, http.MethodPost, zonePath(zone)+"/changes", change, &created); err != nil {
		return nil, err
	}
	c.log.Info(map[string]any{
		"zone":      zone,
		"change_id": created.ID,
		"additions": len(change.Additions),
		"deletions": len(change.Deletions),
		"status":    created.Status,
	}, "submitted change")
	return &created, nil
}

// GetChange fetches one change by ID.
func (c *Client) GetChange(ctx context.Context, zone, id string) (*wire.Change, error) {
	var change wire.Change
	path := fmt.Sprintf("%s/changes/%s", zonePath(zone), url.PathEscape(id))
	if err := c.do(ctx, http.MethodGet, path, nil, &change); err != nil {
		return nil, err
	}
	return &change, nil
}

// ListChanges returns the change history of a zone.
func (c *Client) ListChanges(ctx context.Context, zone string) ([]wire.Change, error) {
	var list wire.ChangeList
	if err := c.do(ctx, http.MethodGet, zonePath(zone)+"/changes", nil, &list); err != nil {
		return nil, err
	}
	return list.Changes, nil
}

// WaitChange polls a change until the service reports it done, or the
// context expires. The poll interval comes from the client options; the
// clock is injected so tests run without real waits.
func (c *Client) WaitChange(ctx context.Context, zone, id string) (*wire.Change, error) {
	for {
		change, err := c.GetChange(ctx, zone, id)
		if err != nil {
			return nil, err
		}
		if change.IsDone() {
			return change, nil
		}
		c.log.Debug(map[string]any{
			"zone":      zone,
			"change_id": id,
			"status":    change.Status,
		}, "change still pending")
		if err := c.clock.Sleep(ctx, c.pollInterval); err != nil {
			return nil, err
		}
	}
}
