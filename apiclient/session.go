package apiclient

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const unknownRole = "unknown"

// Roles that are allowed to manage users and delete records.
var privilegedRoles = []string{"super_admin", "admin"}

// Session is the authenticated state shared by every request after a successful login.
//
// The zero value is an unauthenticated session: no token, and a null user.
type Session struct {
	Token ldvalue.OptionalString
	User  ldvalue.Value
}

func (s Session) Authenticated() bool {
	return s.Token.IsDefined()
}

// Role returns the user's role as reported by the login response, or "unknown".
func (s Session) Role() string {
	if role := s.User.GetByKey("role"); role.IsString() {
		return role.StringValue()
	}
	return unknownRole
}

func (s Session) IsPrivileged() bool {
	role := s.Role()
	for _, r := range privilegedRoles {
		if role == r {
			return true
		}
	}
	return false
}
