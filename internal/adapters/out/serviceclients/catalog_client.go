// Package serviceclients implements the outbound HTTP ports: the catalog
// service for locations and prices, and the identity service for token
// introspection and agent checks. Every call forwards the caller's own
// bearer token. The clients distinguish a negative answer (the service
// answered: not found) from an unreachable service.
package serviceclients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pizzadelivery/internal/pkg/errs"
)

const defaultTimeout = 5 * time.Second

// CatalogServiceClient implements ports.CatalogClient against the catalog
// service's REST API.
type CatalogServiceClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCatalogServiceClient creates a client for the catalog service. A nil
// httpClient gets a default with a 5 second timeout.
func NewCatalogServiceClient(baseURL string, httpClient *http.Client) *CatalogServiceClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &CatalogServiceClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// CheckLocation verifies the location code exists and is active.
func (c *CatalogServiceClient) CheckLocation(ctx context.Context, bearerToken, locationCode string) error {
	url := fmt.Sprintf("%s/api/v1/locations/%s", c.baseURL, locationCode)

	resp, err := c.get(ctx, url, bearerToken)
	if err != nil {
		return errs.NewUpstreamUnavailableErrorWithCause("catalog", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errs.NewObjectNotFoundError("locationCode", locationCode)
	case resp.StatusCode >= http.StatusMultipleChoices:
		return errs.NewUpstreamUnavailableErrorWithCause("catalog",
			fmt.Errorf("unexpected status %d checking location %s", resp.StatusCode, locationCode))
	}

	return nil
}

// GetItemPrice returns the current unit price for a catalog item.
func (c *CatalogServiceClient) GetItemPrice(
	ctx context.Context, bearerToken string, itemID int64,
) (float64, error) {
	url := fmt.Sprintf("%s/api/v1/items/%d", c.baseURL, itemID)

	resp, err := c.get(ctx, url, bearerToken)
	if err != nil {
		return 0, errs.NewUpstreamUnavailableErrorWithCause("catalog", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return 0, errs.NewObjectNotFoundError("itemID", itemID)
	case resp.StatusCode >= http.StatusMultipleChoices:
		return 0, errs.NewUpstreamUnavailableErrorWithCause("catalog",
			fmt.Errorf("unexpected status %d pricing item %d", resp.StatusCode, itemID))
	}

	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, errs.NewUpstreamUnavailableErrorWithCause("catalog", err)
	}

	return body.Price, nil
}

func (c *CatalogServiceClient) get(ctx context.Context, url, bearerToken string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+bearerToken)

	return c.httpClient.Do(req)
}
