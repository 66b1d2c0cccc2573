package ports

import (
	"context"

	"pizzadelivery/internal/core/domain/model/identity"
)

// CatalogClient reads prices and location data from the catalog service.
// Every call forwards the caller's own bearer token; the services delegate
// trust rather than sharing credentials. Implementations must distinguish a
// negative answer (not found) from an unreachable service (upstream
// unavailable).
type CatalogClient interface {
	// CheckLocation verifies the location code exists and is active.
	CheckLocation(ctx context.Context, bearerToken, locationCode string) error
	// GetItemPrice returns the current unit price for a catalog item.
	GetItemPrice(ctx context.Context, bearerToken string, itemID int64) (float64, error)
}

// IdentityClient talks to the central identity authority.
type IdentityClient interface {
	// Introspect validates a bearer token and returns the claims it carries.
	Introspect(ctx context.Context, token string) (identity.Claims, error)
	// ValidateDeliveryAgent reports whether the candidate is an active,
	// delivery-role identity. The caller's own bearer token authorizes the
	// lookup.
	ValidateDeliveryAgent(ctx context.Context, bearerToken string, agentID int64) (bool, error)
}
