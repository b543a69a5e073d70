package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanAccess(t *testing.T) {
	owner := &Claims{UserID: 7, Email: "owner@x.com", Role: RoleUser}
	stranger := &Claims{UserID: 8, Email: "other@x.com", Role: RoleUser}
	admin := &Claims{UserID: 1, Email: "admin@x.com", Role: RoleAdmin}

	assert.True(t, CanAccess(owner, 7), "owner may access their own record")
	assert.False(t, CanAccess(stranger, 7), "non-owner may not access the record")
	assert.True(t, CanAccess(admin, 7), "admin may access any record")
	assert.False(t, CanAccess(nil, 7), "missing actor never passes")
}

func TestRequireAdmin(t *testing.T) {
	admin := &Claims{UserID: 1, Role: RoleAdmin}
	user := &Claims{UserID: 2, Role: RoleUser}

	require.NoError(t, RequireAdmin(admin))

	err := RequireAdmin(user)
	require.ErrorIs(t, err, ErrForbidden)

	err = RequireAdmin(nil)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestErrorTaxonomyDistinct(t *testing.T) {
	errs := []error{ErrNotFound, ErrNotAuthorized, ErrForbidden, ErrDuplicateEmail, ErrInvalidCredentials, ErrStorageUnavailable}
	for i, a := range errs {
		for j, b := range errs {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b)
		}
	}
}
