package serviceclients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"pizzadelivery/internal/core/domain/model/identity"
	"pizzadelivery/internal/pkg/errs"
)

// IdentityServiceClient implements ports.IdentityClient against the identity
// service's REST API.
type IdentityServiceClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewIdentityServiceClient creates a client for the identity service. A nil
// httpClient gets a default with a 5 second timeout.
func NewIdentityServiceClient(baseURL string, httpClient *http.Client) *IdentityServiceClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &IdentityServiceClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

type introspectResponse struct {
	IsValid  bool   `json:"is_valid"`
	Email    string `json:"email"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Introspect validates a bearer token against the identity authority and
// returns the claims it carries. A rejected token comes back Unauthorized;
// an unreachable authority comes back UpstreamUnavailable, never a silent
// pass. A 200 body with is_valid false is still a rejection.
func (c *IdentityServiceClient) Introspect(ctx context.Context, token string) (identity.Claims, error) {
	url := c.baseURL + "/api/v1/auth/validate"

	resp, err := c.get(ctx, url, token)
	if err != nil {
		return identity.Claims{}, errs.NewUpstreamUnavailableErrorWithCause("identity", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return identity.Claims{}, errs.NewUnauthorizedError("token rejected by identity service")
	case resp.StatusCode >= http.StatusMultipleChoices:
		return identity.Claims{}, errs.NewUpstreamUnavailableErrorWithCause("identity",
			fmt.Errorf("unexpected status %d introspecting token", resp.StatusCode))
	}

	var body introspectResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return identity.Claims{}, errs.NewUpstreamUnavailableErrorWithCause("identity", err)
	}

	if !body.IsValid {
		return identity.Claims{}, errs.NewUnauthorizedError("token invalidated by identity service")
	}

	role, err := identity.ParseRole(body.Role)
	if err != nil {
		return identity.Claims{}, errs.NewUnauthorizedErrorWithCause("token carries unknown role", err)
	}

	subject := body.Email
	if subject == "" {
		subject = body.Username
	}

	claims := identity.Claims{
		Subject:  subject,
		UserID:   body.UserID,
		Username: body.Username,
		Role:     role,
	}
	if err := claims.Validate(); err != nil {
		return identity.Claims{}, errs.NewUnauthorizedErrorWithCause("incomplete identity assertion", err)
	}

	return claims, nil
}

// ValidateDeliveryAgent reports whether the candidate is an active identity
// with the delivery role.
func (c *IdentityServiceClient) ValidateDeliveryAgent(
	ctx context.Context, bearerToken string, agentID int64,
) (bool, error) {
	url := fmt.Sprintf("%s/api/v1/validate-user/%d", c.baseURL, agentID)

	resp, err := c.get(ctx, url, bearerToken)
	if err != nil {
		return false, errs.NewUpstreamUnavailableErrorWithCause("identity", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode >= http.StatusMultipleChoices:
		return false, errs.NewUpstreamUnavailableErrorWithCause("identity",
			fmt.Errorf("unexpected status %d validating agent %d", resp.StatusCode, agentID))
	}

	var body struct {
		IsValidDeliveryPerson bool `json:"is_valid_delivery_person"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, errs.NewUpstreamUnavailableErrorWithCause("identity", err)
	}

	return body.IsValidDeliveryPerson, nil
}

func (c *IdentityServiceClient) get(ctx context.Context, url, bearerToken string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+bearerToken)

	return c.httpClient.Do(req)
}
