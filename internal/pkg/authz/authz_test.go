package authz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthorize_Table(t *testing.T) {
	tests := []struct {
		role    string
		action  Action
		allowed bool
	}{
		// create-report: any authenticated role
		{RoleCitizen, ActionCreateReport, true},
		{RoleVerifier, ActionCreateReport, true},
		{RoleAnalyst, ActionCreateReport, true},
		{RoleAdmin, ActionCreateReport, true},

		// verify-report: verifier, analyst, admin
		{RoleCitizen, ActionVerifyReport, false},
		{RoleVerifier, ActionVerifyReport, true},
		{RoleAnalyst, ActionVerifyReport, true},
		{RoleAdmin, ActionVerifyReport, true},

		// list-users / get-user: admin only
		{RoleCitizen, ActionListUsers, false},
		{RoleVerifier, ActionListUsers, false},
		{RoleAnalyst, ActionListUsers, false},
		{RoleAdmin, ActionListUsers, true},
		{RoleCitizen, ActionGetUser, false},
		{RoleVerifier, ActionGetUser, false},
		{RoleAnalyst, ActionGetUser, false},
		{RoleAdmin, ActionGetUser, true},

		// view-analytics: analyst, admin
		{RoleCitizen, ActionViewAnalytics, false},
		{RoleVerifier, ActionViewAnalytics, false},
		{RoleAnalyst, ActionViewAnalytics, true},
		{RoleAdmin, ActionViewAnalytics, true},

		// access-own-resource without ownership: admin only
		{RoleCitizen, ActionAccessOwnResource, false},
		{RoleVerifier, ActionAccessOwnResource, false},
		{RoleAnalyst, ActionAccessOwnResource, false},
		{RoleAdmin, ActionAccessOwnResource, true},
	}

	for _, tt := range tests {
		d := Authorize(tt.role, tt.action)
		require.Equalf(t, tt.allowed, d.Allowed, "role=%s action=%s", tt.role, tt.action)
	}
}

func TestAuthorize_UnknownRoleAndAction(t *testing.T) {
	require.False(t, Authorize("", ActionVerifyReport).Allowed)
	require.False(t, Authorize("superuser", ActionVerifyReport).Allowed)
	require.False(t, Authorize(RoleAdmin, Action("drop-database")).Allowed)
}

func TestAuthorize_RequiredRolesDiagnostics(t *testing.T) {
	d := Authorize(RoleCitizen, ActionVerifyReport)
	require.False(t, d.Allowed)
	require.Equal(t, []string{RoleVerifier, RoleAnalyst, RoleAdmin}, d.RequiredRoles)
}

func TestAuthorizeOwner(t *testing.T) {
	// Owner may access their own resource
	require.True(t, AuthorizeOwner(RoleCitizen, "u1", "u1").Allowed)

	// Non-owner denied regardless of verifier/analyst role
	require.False(t, AuthorizeOwner(RoleCitizen, "u1", "u2").Allowed)
	require.False(t, AuthorizeOwner(RoleVerifier, "u1", "u2").Allowed)
	require.False(t, AuthorizeOwner(RoleAnalyst, "u1", "u2").Allowed)

	// Admin may access anything
	require.True(t, AuthorizeOwner(RoleAdmin, "u1", "u2").Allowed)

	// Empty ids never match each other
	require.False(t, AuthorizeOwner(RoleCitizen, "", "").Allowed)
}

func TestIsValidRole(t *testing.T) {
	for _, r := range []string{RoleCitizen, RoleVerifier, RoleAnalyst, RoleAdmin} {
		require.True(t, IsValidRole(r))
	}
	require.False(t, IsValidRole(""))
	require.False(t, IsValidRole("moderator"))
}
