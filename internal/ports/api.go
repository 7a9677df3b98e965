package ports

import (
	"context"

	"github.com/dms-platform/dms-cli/internal/domain/model"
)

// DocumentAPI covers the document service's query and mutation surface.
// Each method issues exactly one backend query; scoping is chosen by the
// caller, never widened here.
type DocumentAPI interface {
	All(ctx context.Context) ([]model.Document, error)
	ByID(ctx context.Context, id int64) (model.Document, error)
	ByDepartment(ctx context.Context, departmentID int64) ([]model.Document, error)
	ByDepartments(ctx context.Context, departmentIDs []int64) ([]model.Document, error)
	ByCategory(ctx context.Context, categoryID int64) ([]model.Document, error)
	ByUser(ctx context.Context, userID int64) ([]model.Document, error)
	Search(ctx context.Context, query string) ([]model.Document, error)
	SearchByDepartments(ctx context.Context, query string, departmentIDs []int64) ([]model.Document, error)
	Create(ctx context.Context, req model.CreateDocumentRequest) (model.Document, error)
	Update(ctx context.Context, id int64, req model.UpdateDocumentRequest) (model.Document, error)
	Delete(ctx context.Context, id int64) error
}

// StorageAPI is the binary upload collaborator (phase 1 of the two-phase
// document write). The contract exposes no delete, so an uploaded object
// cannot be compensated away client-side.
type StorageAPI interface {
	Upload(ctx context.Context, file model.DraftFile) (model.StoredFile, error)
	DownloadURL(ctx context.Context, fileKey string) (string, error)
}

// DirectoryAPI covers the user, department, and category management surface.
// These are thin pass-throughs: the screens over them are simple forms with
// no client-side invariants beyond policy gating.
type DirectoryAPI interface {
	Users(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, id int64) error
	UserDepartments(ctx context.Context, userID int64) ([]model.Department, error)
	AssignDepartments(ctx context.Context, req model.AssignDepartmentsRequest) error

	Departments(ctx context.Context) ([]model.Department, error)
	CreateDepartment(ctx context.Context, req model.DepartmentRequest) (model.Department, error)
	UpdateDepartment(ctx context.Context, id int64, req model.DepartmentRequest) (model.Department, error)
	DeleteDepartment(ctx context.Context, id int64) error
	DepartmentUsers(ctx context.Context, departmentID int64) ([]model.User, error)

	Categories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, req model.CategoryRequest) (model.Category, error)
	UpdateCategory(ctx context.Context, id int64, req model.CategoryRequest) (model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}
