package identity

import "pizzadelivery/internal/pkg/errs"

// Claims is the decoded identity assertion returned by the authority's
// introspection endpoint. It lives only for the duration of a request.
type Claims struct {
	Subject  string
	UserID   int64
	Username string
	Role     Role
}

// Validate checks the assertion carries a subject and a known role.
func (c Claims) Validate() error {
	if c.Subject == "" {
		return errs.NewValueIsRequiredError("subject")
	}
	if c.UserID <= 0 {
		return errs.NewValueIsRequiredError("user_id")
	}
	return c.Role.Validate()
}
