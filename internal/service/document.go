package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	domainauth "github.com/dms-platform/dms-cli/internal/domain/auth"
	"github.com/dms-platform/dms-cli/internal/domain/model"
	apperrors "github.com/dms-platform/dms-cli/internal/errors"
	"github.com/dms-platform/dms-cli/internal/ports"
)

// SessionSource exposes the active session to the services that gate on it.
// *AuthService satisfies it.
type SessionSource interface {
	Current() *domainauth.Session
}

// BrowserOptions groups dependencies for DocumentBrowser.
type BrowserOptions struct {
	Documents ports.DocumentAPI
	Directory ports.DirectoryAPI
	Session   SessionSource
	Logger    *slog.Logger
}

// DocumentBrowser drives the document list view: it resolves the actor's
// retrieval scope, applies the current filter, and holds the result set.
// Filters override each other; selecting one replaces whatever was active
// before. Every refresh issues exactly one document query.
type DocumentBrowser struct {
	documents ports.DocumentAPI
	directory ports.DirectoryAPI
	session   SessionSource
	logger    *slog.Logger

	mu          sync.Mutex
	filterText  string
	categoryID  int64
	deptID      int64
	items       []model.Document
	memberships []int64
	membersFor  int64
}

// NewDocumentBrowser constructs a DocumentBrowser.
func NewDocumentBrowser(opts BrowserOptions) *DocumentBrowser {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentBrowser{
		documents: opts.Documents,
		directory: opts.Directory,
		session:   opts.Session,
		logger:    logger,
	}
}

// Documents returns the current result set. It reflects the last successful
// retrieval; a failed refresh leaves it untouched.
func (b *DocumentBrowser) Documents() []model.Document {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]model.Document, len(b.items))
	copy(out, b.items)
	return out
}

// Load clears any active filter and retrieves the scoped document list.
func (b *DocumentBrowser) Load(ctx context.Context) ([]model.Document, error) {
	b.mu.Lock()
	b.filterText = ""
	b.categoryID = 0
	b.deptID = 0
	b.mu.Unlock()
	return b.refresh(ctx)
}

// Search replaces the active filter with a text query and refreshes.
// A blank query is equivalent to Load.
func (b *DocumentBrowser) Search(ctx context.Context, query string) ([]model.Document, error) {
	b.mu.Lock()
	b.filterText = strings.TrimSpace(query)
	b.categoryID = 0
	b.deptID = 0
	b.mu.Unlock()
	return b.refresh(ctx)
}

// FilterByCategory replaces the active filter with a category and refreshes.
func (b *DocumentBrowser) FilterByCategory(ctx context.Context, categoryID int64) ([]model.Document, error) {
	b.mu.Lock()
	b.filterText = ""
	b.categoryID = categoryID
	b.deptID = 0
	b.mu.Unlock()
	return b.refresh(ctx)
}

// FilterByDepartment replaces the active filter with a department and
// refreshes. The backend scopes the department query to the actor's
// visibility; no membership check happens client-side.
func (b *DocumentBrowser) FilterByDepartment(ctx context.Context, departmentID int64) ([]model.Document, error) {
	b.mu.Lock()
	b.filterText = ""
	b.categoryID = 0
	b.deptID = departmentID
	b.mu.Unlock()
	return b.refresh(ctx)
}

// ClearFilters drops the active filter and refreshes.
func (b *DocumentBrowser) ClearFilters(ctx context.Context) ([]model.Document, error) {
	return b.Load(ctx)
}

// Get retrieves a single document by id.
func (b *DocumentBrowser) Get(ctx context.Context, id int64) (model.Document, error) {
	if b.session.Current() == nil {
		return model.Document{}, apperrors.Denied("sign in to view documents")
	}
	return b.documents.ByID(ctx, id)
}

// Delete removes a document after a local policy check. The backend enforces
// the same rule; the local check saves a doomed round trip and yields a
// deterministic message.
func (b *DocumentBrowser) Delete(ctx context.Context, id int64) error {
	sess := b.session.Current()
	if sess == nil {
		return apperrors.Denied("sign in to delete documents")
	}

	doc, err := b.documents.ByID(ctx, id)
	if err != nil {
		return err
	}
	if !domainauth.CanDelete(sess, doc.CreatedBy) {
		return apperrors.Denied("only the document's creator or an administrator may delete it")
	}

	if err := b.documents.Delete(ctx, id); err != nil {
		return err
	}

	b.mu.Lock()
	kept := b.items[:0]
	for _, item := range b.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	b.items = kept
	b.mu.Unlock()
	return nil
}

// refresh runs one scoped query for the current filter state and replaces
// the result set. On failure the previous result set is retained.
func (b *DocumentBrowser) refresh(ctx context.Context) ([]model.Document, error) {
	scope, err := b.resolveScope(ctx)
	if err != nil {
		return nil, err
	}
	if scope.Kind == domainauth.ScopeNone {
		return nil, apperrors.Denied("sign in to view documents")
	}

	b.mu.Lock()
	filterText, categoryID, deptID := b.filterText, b.categoryID, b.deptID
	b.mu.Unlock()

	items, err := b.query(ctx, scope, filterText, categoryID, deptID)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	b.items = items
	b.mu.Unlock()
	return b.Documents(), nil
}

// query picks the single backend call that matches the scope and filter.
// Category and department retrievals are scoped server-side; the client does
// not second-guess them.
func (b *DocumentBrowser) query(ctx context.Context, scope domainauth.Scope, filterText string, categoryID, deptID int64) ([]model.Document, error) {
	switch {
	case categoryID != 0:
		return b.documents.ByCategory(ctx, categoryID)
	case deptID != 0:
		return b.documents.ByDepartment(ctx, deptID)
	case filterText != "":
		return b.searchQuery(ctx, scope, filterText)
	default:
		return b.baseQuery(ctx, scope)
	}
}

func (b *DocumentBrowser) baseQuery(ctx context.Context, scope domainauth.Scope) ([]model.Document, error) {
	switch scope.Kind {
	case domainauth.ScopeAll:
		return b.documents.All(ctx)
	case domainauth.ScopeDepartments:
		return b.documents.ByDepartments(ctx, scope.DepartmentIDs)
	default:
		return b.documents.ByUser(ctx, scope.UserID)
	}
}

// searchQuery runs a text search inside the actor's scope. The backend has
// no creator-scoped search endpoint, so own-scoped actors fall back to their
// unfiltered creator query.
func (b *DocumentBrowser) searchQuery(ctx context.Context, scope domainauth.Scope, text string) ([]model.Document, error) {
	switch scope.Kind {
	case domainauth.ScopeAll:
		return b.documents.Search(ctx, text)
	case domainauth.ScopeDepartments:
		return b.documents.SearchByDepartments(ctx, text, scope.DepartmentIDs)
	default:
		return b.documents.ByUser(ctx, scope.UserID)
	}
}

// resolveScope maps the session to a retrieval scope, fetching department
// memberships once per actor and caching them for the browser's lifetime.
func (b *DocumentBrowser) resolveScope(ctx context.Context) (domainauth.Scope, error) {
	sess := b.session.Current()
	if sess == nil {
		return domainauth.Scope{Kind: domainauth.ScopeNone}, nil
	}
	if sess.IsAdmin() {
		return domainauth.DocumentScope(sess, nil), nil
	}

	depts, err := b.userDepartments(ctx, sess.Actor.ID)
	if err != nil {
		return domainauth.Scope{}, err
	}
	return domainauth.DocumentScope(sess, depts), nil
}

func (b *DocumentBrowser) userDepartments(ctx context.Context, userID int64) ([]int64, error) {
	b.mu.Lock()
	if b.membersFor == userID && b.memberships != nil {
		cached := b.memberships
		b.mu.Unlock()
		return cached, nil
	}
	b.mu.Unlock()

	depts, err := b.directory.UserDepartments(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeTransport, "load department memberships")
	}

	ids := make([]int64, 0, len(depts))
	for _, d := range depts {
		ids = append(ids, d.ID)
	}

	b.mu.Lock()
	b.membersFor = userID
	b.memberships = ids
	b.mu.Unlock()
	return ids, nil
}
