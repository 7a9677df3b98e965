package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	domainauth "github.com/dms-platform/dms-cli/internal/domain/auth"
	"github.com/dms-platform/dms-cli/internal/domain/model"
	apperrors "github.com/dms-platform/dms-cli/internal/errors"
	"github.com/dms-platform/dms-cli/internal/ports"
)

// UploadFormData is the reference data the upload form needs before it can
// render: the category list and the departments the actor may target.
type UploadFormData struct {
	Categories  []model.Category   `json:"categories"`
	Departments []model.Department `json:"departments"`
}

// RefDataOptions groups dependencies for RefDataLoader.
type RefDataOptions struct {
	Directory ports.DirectoryAPI
	Session   SessionSource
}

// RefDataLoader fetches form reference data. The two lists are independent,
// so they load concurrently; either failure fails the load.
type RefDataLoader struct {
	directory ports.DirectoryAPI
	session   SessionSource
}

// NewRefDataLoader constructs a RefDataLoader.
func NewRefDataLoader(opts RefDataOptions) *RefDataLoader {
	return &RefDataLoader{directory: opts.Directory, session: opts.Session}
}

// UploadForm loads categories plus the departments the actor may upload
// into: all departments for admins, the actor's memberships otherwise.
func (l *RefDataLoader) UploadForm(ctx context.Context) (UploadFormData, error) {
	sess := l.session.Current()
	if !domainauth.CanUpload(sess) {
		return UploadFormData{}, apperrors.Denied("sign in to upload documents")
	}

	var data UploadFormData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		categories, err := l.directory.Categories(gctx)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeTransport, "load categories")
		}
		data.Categories = categories
		return nil
	})

	g.Go(func() error {
		var (
			departments []model.Department
			err         error
		)
		if sess.IsAdmin() {
			departments, err = l.directory.Departments(gctx)
		} else {
			departments, err = l.directory.UserDepartments(gctx, sess.Actor.ID)
		}
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeTransport, "load departments")
		}
		data.Departments = departments
		return nil
	})

	if err := g.Wait(); err != nil {
		return UploadFormData{}, err
	}
	return data, nil
}
