package domain

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrNotAuthorized      = errors.New("user not authorized")
	ErrForbidden          = errors.New("access denied: admin role required")
	ErrDuplicateEmail     = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// CanAccess is the single ownership decision shared by every operation that
// touches an owned record: admins may touch anything, everyone else only
// their own records. Callers must resolve the record first so that a missing
// id surfaces as ErrNotFound before any ownership verdict.
func CanAccess(actor *Claims, ownerID int) bool {
	if actor == nil {
		return false
	}
	return actor.Role == RoleAdmin || actor.UserID == ownerID
}

// RequireAdmin gates the admin-only operations (role changes, request status
// changes, global listings) with a verdict distinct from the ownership one.
func RequireAdmin(actor *Claims) error {
	if actor == nil || actor.Role != RoleAdmin {
		return ErrForbidden
	}
	return nil
}

// ScopeListing narrows a listing query to the actor's own rows unless the
// actor is an admin. Applied inside repositories before the query runs, so
// rows owned by others never leave storage.
func ScopeListing(actor *Claims, query *gorm.DB) *gorm.DB {
	if actor != nil && actor.Role == RoleAdmin {
		return query
	}
	if actor == nil {
		return query.Where("1 = 0")
	}
	return query.Where("user_id = ?", actor.UserID)
}
