package upstream

import (
	"context"
	"net/http"

	"github.com/noah-isme/kindy-portal/internal/models"
)

// Organization-level endpoint paths.
const (
	PathPing   = "/ping"
	PathOrgFin = "/org/fin"
)

// OrgClient wraps the organization endpoints.
type OrgClient struct {
	c *Client
}

// NewOrgClient constructs an OrgClient.
func NewOrgClient(c *Client) *OrgClient {
	return &OrgClient{c: c}
}

// Ping checks backend reachability.
func (o *OrgClient) Ping(ctx context.Context) error {
	_, err := o.c.Do(ctx, http.MethodGet, PathPing, nil)
	return err
}

// FinancialInfo returns the organization's receiving account.
func (o *OrgClient) FinancialInfo(ctx context.Context) (models.OrgFinancialInfo, error) {
	res, err := o.c.Do(ctx, http.MethodGet, PathOrgFin, nil)
	if err != nil {
		return models.OrgFinancialInfo{}, err
	}
	return Data[models.OrgFinancialInfo](res)
}
