package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/haukened/rr-dnsctl/internal/dns/wire"
)

// ListZones returns every managed zone the service knows about.
func (c *Client) ListZones(ctx context.Context) ([]wire.Zone, error) {
	var list wire.ZoneList
	if err := c.do(ctx, http.MethodGet, "/managedZones", nil, &list); err != nil {
		return nil, err
	}
	return list.ManagedZones, nil
}

// GetZone fetches one managed zone by name.
func (c *Client) GetZone(ctx context.Context, zone string) (*wire.Zone, error) {
	var z wire.Zone
	if err := c.do(ctx, http.MethodGet, zonePath(zone), nil, &z); err != nil {
		return nil, err
	}
	return &z, nil
}

// ZoneExists reports whether a managed zone exists. A 404 from the service
// maps to false; every other error is returned as-is.
func (c *Client) ZoneExists(ctx context.Context, zone string) (bool, error) {
	_, err := c.GetZone(ctx, zone)
	if err == nil {
		return true, nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
		return false, nil
	}
	return false, err
}

// CreateZone creates a managed zone and returns the created resource, which
// carries the service-assigned ID and name servers.
func (c *Client) CreateZone(ctx context.Context, z wire.Zone) (*wire.Zone, error) {
	var created wire.Zone
	if err := c.do(ctx, http.MethodPost, "/managedZones", z, &created); err != nil {
		return nil, err
	}
	c.log.Info(map[string]any{
		"zone":     created.Name,
		"dns_name": created.DNSName,
	}, "created managed zone")
	return &created, nil
}

// DeleteZone removes a managed zone. The service rejects deletion of
// non-empty zones; that error passes through unchanged.
func (c *Client) DeleteZone(ctx context.Context, zone string) error {
	if err := c.do(ctx, http.MethodDelete, zonePath(zone), nil, nil); err != nil {
		return err
	}
	c.log.Info(map[string]any{"zone": zone}, "deleted managed zone")
	return nil
}

func zonePath(zone string) string {
	return fmt.Sprintf("/managedZones/%s", url.PathEscape(zone))
}
