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

// UploadState tracks the two-phase submission pipeline.
type UploadState int

const (
	// UploadIdle means no submission is in flight.
	UploadIdle UploadState = iota
	// UploadValidating means the draft is being checked for completeness.
	UploadValidating
	// UploadingFile means phase 1 (binary transfer to storage) is running.
	UploadingFile
	// UploadCreatingMetadata means phase 2 (metadata record) is running.
	UploadCreatingMetadata
	// UploadSucceeded means both phases completed.
	UploadSucceeded
	// UploadValidationFailed means the draft was incomplete; nothing was sent.
	UploadValidationFailed
	// UploadFailed means phase 1 was rejected; no stored object exists.
	UploadFailed
	// UploadMetadataFailed means phase 1 succeeded but phase 2 was rejected.
	// The stored object is orphaned: the storage contract exposes no delete,
	// so no compensation runs. A later resubmission uploads a fresh object.
	UploadMetadataFailed
)

func (s UploadState) String() string {
	switch s {
	case UploadIdle:
		return "idle"
	case UploadValidating:
		return "validating"
	case UploadingFile:
		return "uploading-file"
	case UploadCreatingMetadata:
		return "creating-metadata"
	case UploadSucceeded:
		return "succeeded"
	case UploadValidationFailed:
		return "validation-failed"
	case UploadFailed:
		return "upload-failed"
	case UploadMetadataFailed:
		return "metadata-failed"
	default:
		return "unknown"
	}
}

// UploadCoordinatorOptions groups dependencies for UploadCoordinator.
type UploadCoordinatorOptions struct {
	Storage   ports.StorageAPI
	Documents ports.DocumentAPI
	Session   SessionSource
	Logger    *slog.Logger
}

// UploadCoordinator runs the two-phase document submission: binary to the
// storage collaborator, then the metadata record to the document service.
// Failures are terminal for the attempt; Submit may be called again and
// re-runs the whole pipeline from validation.
type UploadCoordinator struct {
	storage   ports.StorageAPI
	documents ports.DocumentAPI
	session   SessionSource
	logger    *slog.Logger

	mu    sync.Mutex
	state UploadState
}

// NewUploadCoordinator constructs an UploadCoordinator.
func NewUploadCoordinator(opts UploadCoordinatorOptions) *UploadCoordinator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &UploadCoordinator{
		storage:   opts.Storage,
		documents: opts.Documents,
		session:   opts.Session,
		logger:    logger,
	}
}

// State returns the pipeline state of the last submission.
func (u *UploadCoordinator) State() UploadState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

func (u *UploadCoordinator) setState(s UploadState) {
	u.mu.Lock()
	u.state = s
	u.mu.Unlock()
}

// Submit runs the full pipeline for the draft. On success the created
// document is returned and the state resets to allow a fresh draft. On
// failure the state records which phase failed; a retry re-runs everything,
// including a fresh storage upload.
func (u *UploadCoordinator) Submit(ctx context.Context, draft model.UploadDraft) (model.Document, error) {
	if !domainauth.CanUpload(u.session.Current()) {
		return model.Document{}, apperrors.Denied("sign in to upload documents")
	}

	u.setState(UploadValidating)
	if fields, messages := draft.MissingFields(); len(fields) > 0 {
		u.setState(UploadValidationFailed)
		return model.Document{}, apperrors.ValidationFields(strings.Join(messages, "; "), fields...)
	}

	u.setState(UploadingFile)
	stored, err := u.storage.Upload(ctx, *draft.File)
	if err != nil {
		u.setState(UploadFailed)
		return model.Document{}, err
	}

	u.setState(UploadCreatingMetadata)
	doc, err := u.documents.Create(ctx, draft.MetadataRequest(stored))
	if err != nil {
		// The stored object stays behind; there is no storage delete to
		// call. The failure surfaces with the collaborator's message.
		u.logger.WarnContext(ctx, "metadata creation failed after upload",
			"fileKey", stored.FileKey, "error", err)
		u.setState(UploadMetadataFailed)
		return model.Document{}, apperrors.Wrap(err, apperrors.ErrCodePartialFailure,
			"file was stored but the document record was not created")
	}

	u.setState(UploadSucceeded)
	u.logger.InfoContext(ctx, "document created", "id", doc.ID, "fileKey", stored.FileKey)
	return doc, nil
}
