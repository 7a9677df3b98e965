package service

import (
	"context"

	domainauth "github.com/dms-platform/dms-cli/internal/domain/auth"
	"github.com/dms-platform/dms-cli/internal/domain/model"
	apperrors "github.com/dms-platform/dms-cli/internal/errors"
	"github.com/dms-platform/dms-cli/internal/ports"
)

// DirectoryServiceOptions groups dependencies for DirectoryService.
type DirectoryServiceOptions struct {
	Directory ports.DirectoryAPI
	Session   SessionSource
}

// DirectoryService fronts the management surface (users, departments,
// categories). Mutations and the user directory are admin-gated locally;
// the backend enforces the same rule, the local check just avoids a doomed
// round trip. Department and category listings stay open to any signed-in
// actor because the upload and filter forms need them.
type DirectoryService struct {
	directory ports.DirectoryAPI
	session   SessionSource
}

// NewDirectoryService constructs a DirectoryService.
func NewDirectoryService(opts DirectoryServiceOptions) *DirectoryService {
	return &DirectoryService{directory: opts.Directory, session: opts.Session}
}

func (s *DirectoryService) requireSignIn() error {
	if s.session.Current() == nil {
		return apperrors.Denied("sign in first")
	}
	return nil
}

func (s *DirectoryService) requireAdmin() error {
	if !domainauth.CanManage(s.session.Current()) {
		return apperrors.Denied("administrator role required")
	}
	return nil
}

// Users lists directory users. Admin only.
func (s *DirectoryService) Users(ctx context.Context) ([]model.User, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return s.directory.Users(ctx)
}

// DeleteUser removes a user. Admin only.
func (s *DirectoryService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	return s.directory.DeleteUser(ctx, id)
}

// UserDepartments lists a user's department memberships. Admin only; actors
// inspecting their own memberships go through the browser's scope resolution
// instead.
func (s *DirectoryService) UserDepartments(ctx context.Context, userID int64) ([]model.Department, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return s.directory.UserDepartments(ctx, userID)
}

// AssignDepartments replaces a user's department memberships. Admin only.
func (s *DirectoryService) AssignDepartments(ctx context.Context, req model.AssignDepartmentsRequest) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	if req.UserID == 0 {
		return apperrors.Validation("user id is required")
	}
	return s.directory.AssignDepartments(ctx, req)
}

// Departments lists departments for any signed-in actor.
func (s *DirectoryService) Departments(ctx context.Context) ([]model.Department, error) {
	if err := s.requireSignIn(); err != nil {
		return nil, err
	}
	return s.directory.Departments(ctx)
}

// CreateDepartment creates a department. Admin only.
func (s *DirectoryService) CreateDepartment(ctx context.Context, req model.DepartmentRequest) (model.Department, error) {
	if err := s.requireAdmin(); err != nil {
		return model.Department{}, err
	}
	if req.Name == "" {
		return model.Department{}, apperrors.Validation("department name is required")
	}
	return s.directory.CreateDepartment(ctx, req)
}

// UpdateDepartment updates a department. Admin only.
func (s *DirectoryService) UpdateDepartment(ctx context.Context, id int64, req model.DepartmentRequest) (model.Department, error) {
	if err := s.requireAdmin(); err != nil {
		return model.Department{}, err
	}
	return s.directory.UpdateDepartment(ctx, id, req)
}

// DeleteDepartment removes a department. Admin only.
func (s *DirectoryService) DeleteDepartment(ctx context.Context, id int64) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	return s.directory.DeleteDepartment(ctx, id)
}

// DepartmentUsers lists the members of a department. Admin only.
func (s *DirectoryService) DepartmentUsers(ctx context.Context, departmentID int64) ([]model.User, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return s.directory.DepartmentUsers(ctx, departmentID)
}

// Categories lists categories for any signed-in actor.
func (s *DirectoryService) Categories(ctx context.Context) ([]model.Category, error) {
	if err := s.requireSignIn(); err != nil {
		return nil, err
	}
	return s.directory.Categories(ctx)
}

// CreateCategory creates a category. Admin only.
func (s *DirectoryService) CreateCategory(ctx context.Context, req model.CategoryRequest) (model.Category, error) {
	if err := s.requireAdmin(); err != nil {
		return model.Category{}, err
	}
	if req.Name == "" {
		return model.Category{}, apperrors.Validation("category name is required")
	}
	return s.directory.CreateCategory(ctx, req)
}

// UpdateCategory updates a category. Admin only.
func (s *DirectoryService) UpdateCategory(ctx context.Context, id int64, req model.CategoryRequest) (model.Category, error) {
	if err := s.requireAdmin(); err != nil {
		return model.Category{}, err
	}
	return s.directory.UpdateCategory(ctx, id, req)
}

// DeleteCategory removes a category. Admin only.
func (s *DirectoryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	return s.directory.DeleteCategory(ctx, id)
}
