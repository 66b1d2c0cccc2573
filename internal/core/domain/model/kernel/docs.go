// Package kernel contains shared value objects used across the order and
// delivery domains. The only member is UUID, the opaque token type behind
// order tokens and delivery tokens.
package kernel
