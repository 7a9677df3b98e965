package auth

// Policy evaluation for document access. Every role check in the client goes
// through this file; no other package inspects Actor.Roles directly.

// ScopeKind enumerates the retrieval scoping strategies.
type ScopeKind int

const (
	// ScopeNone denies document retrieval entirely (no active session).
	ScopeNone ScopeKind = iota
	// ScopeAll covers every document (admin).
	ScopeAll
	// ScopeDepartments covers documents owned by the actor's departments.
	ScopeDepartments
	// ScopeOwn covers only documents the actor created.
	ScopeOwn
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeNone:
		return "none"
	case ScopeAll:
		return "all"
	case ScopeDepartments:
		return "departments"
	case ScopeOwn:
		return "own"
	default:
		return "unknown"
	}
}

// Scope is the scoping strategy a retrieval must apply.
type Scope struct {
	Kind ScopeKind
	// DepartmentIDs is populated for ScopeDepartments, exactly the actor's
	// memberships, never broader.
	DepartmentIDs []int64
	// UserID is populated for ScopeOwn.
	UserID int64
}

// DocumentScope maps the active session and its lazily loaded department
// memberships to a retrieval scope.
//
// Rules are evaluated in precedence order and evaluation stops at the first
// match: scopes never combine. An actor with department memberships does not
// additionally see their own documents outside those departments.
func DocumentScope(sess *Session, departmentIDs []int64) Scope {
	switch {
	case sess == nil:
		return Scope{Kind: ScopeNone}
	case sess.IsAdmin():
		return Scope{Kind: ScopeAll}
	case len(departmentIDs) > 0:
		return Scope{Kind: ScopeDepartments, DepartmentIDs: departmentIDs}
	default:
		return Scope{Kind: ScopeOwn, UserID: sess.Actor.ID}
	}
}

// CanManage reports whether management operations (user, department, and
// category administration) are permitted. Admin only; no session, no access.
func CanManage(sess *Session) bool {
	return sess != nil && sess.IsAdmin()
}

// CanUpload reports whether the actor may submit new documents.
// Any authenticated actor may upload; the form restricts the target
// department to the actor's memberships.
func CanUpload(sess *Session) bool {
	return sess != nil
}

// CanDelete reports whether the actor may delete a document created by
// createdBy. Admins delete anything; everyone else only their own documents.
func CanDelete(sess *Session, createdBy int64) bool {
	if sess == nil {
		return false
	}
	if sess.IsAdmin() {
		return true
	}
	return sess.Actor.ID == createdBy
}
