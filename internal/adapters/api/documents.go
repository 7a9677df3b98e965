package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dms-platform/dms-cli/internal/domain/model"
	"github.com/dms-platform/dms-cli/internal/ports"
)

var _ ports.DocumentAPI = (*Client)(nil)

// All returns every document. The backend applies no scoping here; callers
// must have chosen this query through the policy evaluator.
func (c *Client) All(ctx context.Context) ([]model.Document, error) {
	var docs []model.Document
	if err := c.doJSON(ctx, http.MethodGet, "/api/documents", nil, nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// ByID returns a single document.
func (c *Client) ByID(ctx context.Context, id int64) (model.Document, error) {
	var doc model.Document
	path := fmt.Sprintf("/api/documents/%d", id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &doc); err != nil {
		return model.Document{}, err
	}
	return doc, nil
}

// ByDepartment returns the documents owned by one department.
func (c *Client) ByDepartment(ctx context.Context, departmentID int64) ([]model.Document, error) {
	var docs []model.Document
	path := fmt.Sprintf("/api/documents/department/%d", departmentID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// ByDepartments returns the documents owned by any of the given departments.
func (c *Client) ByDepartments(ctx context.Context, departmentIDs []int64) ([]model.Document, error) {
	query := url.Values{"departmentIds": []string{joinIDs(departmentIDs)}}
	var docs []model.Document
	if err := c.doJSON(ctx, http.MethodGet, "/api/documents/departments", query, nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// ByCategory returns the documents in one category. Scoping for this query
// is performed server-side per category.
func (c *Client) ByCategory(ctx context.Context, categoryID int64) ([]model.Document, error) {
	var docs []model.Document
	path := fmt.Sprintf("/api/documents/category/%d", categoryID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// ByUser returns the documents created by one user.
func (c *Client) ByUser(ctx context.Context, userID int64) ([]model.Document, error) {
	var docs []model.Document
	path := fmt.Sprintf("/api/documents/user/%d", userID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Search performs a global free-text search.
func (c *Client) Search(ctx context.Context, query string) ([]model.Document, error) {
	values := url.Values{"query": []string{query}}
	var docs []model.Document
	if err := c.doJSON(ctx, http.MethodGet, "/api/documents/search", values, nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// SearchByDepartments performs a free-text search restricted to the given
// departments.
func (c *Client) SearchByDepartments(ctx context.Context, query string, departmentIDs []int64) ([]model.Document, error) {
	values := url.Values{
		"query":         []string{query},
		"departmentIds": []string{joinIDs(departmentIDs)},
	}
	var docs []model.Document
	if err := c.doJSON(ctx, http.MethodGet, "/api/documents/search/departments", values, nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Create stores document metadata (phase 2 of the two-phase upload).
func (c *Client) Create(ctx context.Context, req model.CreateDocumentRequest) (model.Document, error) {
	var doc model.Document
	if err := c.doJSON(ctx, http.MethodPost, "/api/documents", nil, req, &doc); err != nil {
		return model.Document{}, err
	}
	return doc, nil
}

// Update replaces document metadata.
func (c *Client) Update(ctx context.Context, id int64, req model.UpdateDocumentRequest) (model.Document, error) {
	var doc model.Document
	path := fmt.Sprintf("/api/documents/%d", id)
	if err := c.doJSON(ctx, http.MethodPut, path, nil, req, &doc); err != nil {
		return model.Document{}, err
	}
	return doc, nil
}

// Delete removes a document record.
func (c *Client) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/documents/%d", id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}
