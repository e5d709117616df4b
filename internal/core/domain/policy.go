package domain

// Authorization predicates. Pure functions so the policy table stays in one
// place and services only compose them.

// RoleIn reports whether role is one of allowed.
func RoleIn(role Role, allowed ...Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// IsOwner reports whether the principal owns the resource.
func IsOwner(p Principal, ownerID int64) bool {
	return p.UserID == ownerID
}

// CanCreateProject: admins and managers only.
func CanCreateProject(p Principal) bool {
	return RoleIn(p.Role, RoleAdmin, RoleManager)
}

// CanUpdateProject: the caller must be an admin or a manager, and a manager
// may only update projects they created.
func CanUpdateProject(p Principal, projectCreatorID int64) bool {
	if !RoleIn(p.Role, RoleAdmin, RoleManager) {
		return false
	}
	return p.Role == RoleAdmin || IsOwner(p, projectCreatorID)
}

// CanDeleteProject: admins only.
func CanDeleteProject(p Principal) bool {
	return p.Role == RoleAdmin
}

// CanCreateReport: workers may only file reports on projects they created.
func CanCreateReport(p Principal, projectCreatorID int64) bool {
	if p.Role != RoleWorker {
		return true
	}
	return IsOwner(p, projectCreatorID)
}
