package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dms-platform/dms-cli/internal/domain/model"
	"github.com/dms-platform/dms-cli/internal/ports"
)

var _ ports.DirectoryAPI = (*Client)(nil)

// Users lists directory users. The endpoint sits on the exemption list, so
// a permission failure here never forces a logout.
func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/users/%d", id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

// UserDepartments returns the departments a user belongs to. Memberships
// are loaded lazily through this call; they are never embedded in the
// session token.
func (c *Client) UserDepartments(ctx context.Context, userID int64) ([]model.Department, error) {
	var departments []model.Department
	path := fmt.Sprintf("/api/users/%d/departments", userID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

// AssignDepartments replaces a user's department memberships. Also exempt
// from forced logout.
func (c *Client) AssignDepartments(ctx context.Context, req model.AssignDepartmentsRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/api/users/assign-departments", nil, req, nil)
}

// Departments lists all departments.
func (c *Client) Departments(ctx context.Context) ([]model.Department, error) {
	var departments []model.Department
	if err := c.doJSON(ctx, http.MethodGet, "/api/departments", nil, nil, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

// CreateDepartment creates a department.
func (c *Client) CreateDepartment(ctx context.Context, req model.DepartmentRequest) (model.Department, error) {
	var dept model.Department
	if err := c.doJSON(ctx, http.MethodPost, "/api/departments", nil, req, &dept); err != nil {
		return model.Department{}, err
	}
	return dept, nil
}

// UpdateDepartment updates a department.
func (c *Client) UpdateDepartment(ctx context.Context, id int64, req model.DepartmentRequest) (model.Department, error) {
	var dept model.Department
	path := fmt.Sprintf("/api/departments/%d", id)
	if err := c.doJSON(ctx, http.MethodPut, path, nil, req, &dept); err != nil {
		return model.Department{}, err
	}
	return dept, nil
}

// DeleteDepartment removes a department.
func (c *Client) DeleteDepartment(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/departments/%d", id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

// DepartmentUsers lists the users belonging to a department.
func (c *Client) DepartmentUsers(ctx context.Context, departmentID int64) ([]model.User, error) {
	var users []model.User
	path := fmt.Sprintf("/api/departments/%d/users", departmentID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Categories lists all categories.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.doJSON(ctx, http.MethodGet, "/api/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, req model.CategoryRequest) (model.Category, error) {
	var category model.Category
	if err := c.doJSON(ctx, http.MethodPost, "/api/categories", nil, req, &category); err != nil {
		return model.Category{}, err
	}
	return category, nil
}

// UpdateCategory updates a category.
func (c *Client) UpdateCategory(ctx context.Context, id int64, req model.CategoryRequest) (model.Category, error) {
	var category model.Category
	path := fmt.Sprintf("/api/categories/%d", id)
	if err := c.doJSON(ctx, http.MethodPut, path, nil, req, &category); err != nil {
		return model.Category{}, err
	}
	return category, nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/categories/%d", id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}
