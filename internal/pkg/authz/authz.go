// Package authz is the role-based access policy for the API. Decisions are
// a pure function of (role, action) plus, for owned resources, the owner and
// subject ids. It holds no state and touches no storage.
package authz

// Roles, ordered roughly by privilege. Every authenticated subject carries
// exactly one of these.
const (
	RoleCitizen  = "citizen"
	RoleVerifier = "verifier"
	RoleAnalyst  = "analyst"
	RoleAdmin    = "admin"
)

// Action identifies an operation gated by the policy engine.
type Action string

const (
	ActionCreateReport      Action = "create-report"
	ActionVerifyReport      Action = "verify-report"
	ActionListUsers         Action = "list-users"
	ActionGetUser           Action = "get-user"
	ActionViewAnalytics     Action = "view-analytics"
	ActionAccessOwnResource Action = "access-own-resource"
)

// Decision is the outcome of a policy check. RequiredRoles is included so
// callers can explain a denial without re-deriving the table.
type Decision struct {
	Allowed       bool
	RequiredRoles []string
}

var allRoles = []string{RoleCitizen, RoleVerifier, RoleAnalyst, RoleAdmin}

// requiredRoles maps each action to the roles allowed to perform it.
var requiredRoles = map[Action][]string{
	ActionCreateReport:  allRoles,
	ActionVerifyReport:  {RoleVerifier, RoleAnalyst, RoleAdmin},
	ActionListUsers:     {RoleAdmin},
	ActionGetUser:       {RoleAdmin},
	ActionViewAnalytics: {RoleAnalyst, RoleAdmin},

	// Only admins pass without ownership; AuthorizeOwner adds the owner path.
	ActionAccessOwnResource: {RoleAdmin},
}

// IsValidRole reports whether role is one of the known roles.
func IsValidRole(role string) bool {
	for _, r := range allRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Authorize decides whether a subject with the given role may perform action.
// Unknown actions and unknown roles are always denied.
func Authorize(role string, action Action) Decision {
	required, ok := requiredRoles[action]
	if !ok {
		return Decision{Allowed: false}
	}

	decision := Decision{RequiredRoles: required}
	for _, r := range required {
		if r == role {
			decision.Allowed = true
			break
		}
	}
	return decision
}

// AuthorizeOwner decides access to an owned resource: the owner themselves
// or an admin. Empty ids never match.
func AuthorizeOwner(role, ownerID, subjectID string) Decision {
	decision := Decision{RequiredRoles: []string{RoleAdmin}}

	if role == RoleAdmin {
		decision.Allowed = true
		return decision
	}
	if ownerID != "" && ownerID == subjectID {
		decision.Allowed = true
	}
	return decision
}
