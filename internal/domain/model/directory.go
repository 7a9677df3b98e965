package model

// Department groups users and owns documents. Membership is many-to-many
// with users and determines document visibility for non-admins.
type Department struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Category is an orthogonal classification axis for documents, independent
// of department.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// User is a directory record as returned by the user service.
// Roles stay in wire form here; policy decisions happen on the session's
// actor, never on directory payloads.
type User struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles,omitempty"`
}

// SignUpRequest is the account-creation payload.
type SignUpRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles,omitempty"`
}

// AssignDepartmentsRequest replaces a user's department memberships.
type AssignDepartmentsRequest struct {
	UserID        int64   `json:"userId"`
	DepartmentIDs []int64 `json:"departmentIds"`
}

// DepartmentRequest is the create/update payload for departments.
type DepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryRequest is the create/update payload for categories.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
