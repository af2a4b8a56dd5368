// Package policy decides access for a caller independently of how the caller was authenticated.
package policy

import (
	"hotelbooking/constants"
	apperrors "hotelbooking/errors"
)

// Caller is the authenticated identity taken from the session token.
type Caller struct {
	UserID uint
	Role   string
}

func (c *Caller) IsAdmin() bool {
	return c != nil && c.Role == constants.RoleAdmin
}

type Decision int

const (
	Allow Decision = iota
	DenyUnauthenticated
	DenyForbidden
)

// Err converts a denial into the matching AppError, nil for Allow.
func (d Decision) Err() error {
	switch d {
	case DenyUnauthenticated:
		return apperrors.Unauthenticated("authentication required")
	case DenyForbidden:
		return apperrors.Forbidden("you are not allowed to perform this action")
	default:
		return nil
	}
}

func RequireAuthenticated(caller *Caller) Decision {
	if caller == nil || caller.UserID == 0 {
		return DenyUnauthenticated
	}
	return Allow
}

func RequireAdmin(caller *Caller) Decision {
	if d := RequireAuthenticated(caller); d != Allow {
		return d
	}
	if !caller.IsAdmin() {
		return DenyForbidden
	}
	return Allow
}

// RequireOwner allows only the user who owns the resource. Admins get no bypass.
func RequireOwner(caller *Caller, ownerID uint) Decision {
	if d := RequireAuthenticated(caller); d != Allow {
		return d
	}
	if caller.UserID != ownerID {
		return DenyForbidden
	}
	return Allow
}

// HasRole reports whether the caller's role is one of roles.
func HasRole(caller *Caller, roles ...string) bool {
	if caller == nil {
		return false
	}
	for _, r := range roles {
		if r == caller.Role {
			return true
		}
	}
	return false
}
