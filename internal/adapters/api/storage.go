package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/dms-platform/dms-cli/internal/domain/model"
	apperrors "github.com/dms-platform/dms-cli/internal/errors"
	"github.com/dms-platform/dms-cli/internal/ports"
)

var _ ports.StorageAPI = (*Client)(nil)

// Upload sends the raw file to the storage collaborator as multipart
// form-data (field name "file") and returns the stored-object handle.
func (c *Client) Upload(ctx context.Context, file model.DraftFile) (model.StoredFile, error) {
	if file.Open == nil {
		return model.StoredFile{}, apperrors.Validation("file content is required")
	}
	content, err := file.Open()
	if err != nil {
		return model.StoredFile{}, apperrors.Wrap(err, apperrors.ErrCodeValidation, "open file content")
	}
	defer content.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return model.StoredFile{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build multipart body")
	}
	if _, copyErr := io.Copy(part, content); copyErr != nil {
		return model.StoredFile{}, apperrors.Wrap(copyErr, apperrors.ErrCodeInternal, "read file content")
	}
	if closeErr := writer.Close(); closeErr != nil {
		return model.StoredFile{}, apperrors.Wrap(closeErr, apperrors.ErrCodeInternal, "finalize multipart body")
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/storage/upload", nil, &body)
	if err != nil {
		return model.StoredFile{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var stored model.StoredFile
	if sendErr := c.send(req, "/api/storage/upload", &stored); sendErr != nil {
		return model.StoredFile{}, sendErr
	}
	return stored, nil
}

// DownloadURL returns a time-limited URL for downloading the object behind
// fileKey. The storage service answers with a bare JSON string.
func (c *Client) DownloadURL(ctx context.Context, fileKey string) (string, error) {
	path := "/api/storage/download-url/" + url.PathEscape(fileKey)

	var downloadURL string
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &downloadURL); err != nil {
		return "", err
	}
	return downloadURL, nil
}
