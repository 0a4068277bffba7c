package model

// ScopeSet is the containment filter a staff member may act within. It is
// either unrestricted (admin) or pinned to one floor (musyrif) or one usroh
// (asisten). Repositories apply it to every resident-touching query so scope
// is an explicit input, never an ambient assumption.
type ScopeSet struct {
	Role         UserRole `json:"role"`
	FloorID      uint     `json:"floorId,omitempty"`
	StudyGroupID uint     `json:"studyGroupId,omitempty"`
}

// AdminScope matches every resident.
func AdminScope() ScopeSet {
	return ScopeSet{Role: RoleAdmin}
}

// FloorScope matches residents on one floor.
func FloorScope(floorID uint) ScopeSet {
	return ScopeSet{Role: RoleSupervisor, FloorID: floorID}
}

// GroupScope matches residents of one usroh.
func GroupScope(studyGroupID uint) ScopeSet {
	return ScopeSet{Role: RoleAssistant, StudyGroupID: studyGroupID}
}

// Unrestricted reports whether the scope matches every resident.
func (s ScopeSet) Unrestricted() bool {
	return s.Role == RoleAdmin
}

// Contains reports whether a resident with the given parents falls inside
// the scope.
func (s ScopeSet) Contains(studyGroupID, floorID uint) bool {
	switch s.Role {
	case RoleAdmin:
		return true
	case RoleSupervisor:
		return s.FloorID == floorID
	case RoleAssistant:
		return s.StudyGroupID == studyGroupID
	}
	return false
}
