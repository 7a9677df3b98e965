package model

import (
	"bytes"
	"io"
	"strings"
)

// StoredFile is the storage collaborator's response to a binary upload:
// the handle the metadata phase needs to reference the object.
type StoredFile struct {
	FileKey  string `json:"fileKey"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize"`
}

// DraftFile is the file selected for upload. Open yields a fresh stream of
// the binary; the draft never buffers the content itself, and a resubmitted
// draft re-opens rather than re-reading a drained stream.
type DraftFile struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// BytesDraftFile builds a DraftFile over an in-memory payload.
func BytesDraftFile(name string, content []byte) *DraftFile {
	return &DraftFile{
		Name: name,
		Size: int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(content)), nil
		},
	}
}

// UploadDraft is the transient client-side form state for a document upload.
// It exists only for the lifetime of the form and becomes a Document only
// after both upload phases succeed. It is never persisted.
type UploadDraft struct {
	Title        string
	CategoryID   int64
	DepartmentID int64
	File         *DraftFile
}

// MissingFields returns the names of required fields that are absent,
// paired with their user-facing messages. All failures are reported at once.
func (d UploadDraft) MissingFields() (fields []string, messages []string) {
	if strings.TrimSpace(d.Title) == "" {
		fields = append(fields, "title")
		messages = append(messages, "Title is required")
	}
	if d.CategoryID == 0 {
		fields = append(fields, "categoryId")
		messages = append(messages, "Category is required")
	}
	if d.DepartmentID == 0 {
		fields = append(fields, "departmentId")
		messages = append(messages, "Department is required")
	}
	if d.File == nil {
		fields = append(fields, "file")
		messages = append(messages, "File is required")
	}
	return fields, messages
}

// MetadataRequest builds the phase-2 payload from the draft and the
// phase-1 result, applying the wire defaults for omitted file attributes.
func (d UploadDraft) MetadataRequest(stored StoredFile) CreateDocumentRequest {
	return CreateDocumentRequest{
		Title:        strings.TrimSpace(d.Title),
		CategoryID:   d.CategoryID,
		DepartmentID: d.DepartmentID,
		FileKey:      stored.FileKey,
		FileName:     stored.FileName,
		FileType:     stored.FileType,
		FileSize:     stored.FileSize,
	}
}
