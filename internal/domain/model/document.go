// Package model holds the wire-facing domain records exchanged with the
// backend services. Field tags follow the backend's camelCase JSON.
package model

// Document is a read-through copy of a backend document record.
// The backend owns the canonical row; the client holds disposable copies
// with no caching guarantees beyond the current view.
type Document struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	// TranslatedTitle is populated asynchronously by the translation
	// collaborator and may be absent indefinitely. Absence is not an error.
	TranslatedTitle string `json:"translatedTitle,omitempty"`
	CategoryID      int64  `json:"categoryId"`
	DepartmentID    int64  `json:"departmentId"`
	CreatedBy       int64  `json:"createdBy"`
	FileKey         string `json:"fileKey"`
	FileName        string `json:"fileName"`
	FileType        string `json:"fileType"`
	FileSize        int64  `json:"fileSize"`
	DownloadURL     string `json:"downloadUrl,omitempty"`
}

// CreateDocumentRequest is the phase-2 metadata payload of the two-phase
// upload. Numeric fields are integers on the wire; FileName and FileType
// default to empty strings and FileSize to 0 when the storage collaborator
// omitted them.
type CreateDocumentRequest struct {
	Title        string `json:"title"`
	CategoryID   int64  `json:"categoryId"`
	DepartmentID int64  `json:"departmentId"`
	FileKey      string `json:"fileKey"`
	FileName     string `json:"fileName"`
	FileType     string `json:"fileType"`
	FileSize     int64  `json:"fileSize"`
}

// UpdateDocumentRequest carries a full replacement of the mutable document
// metadata fields.
type UpdateDocumentRequest struct {
	Title        string `json:"title"`
	CategoryID   int64  `json:"categoryId"`
	DepartmentID int64  `json:"departmentId"`
	FileKey      string `json:"fileKey"`
	FileName     string `json:"fileName"`
	FileType     string `json:"fileType"`
	FileSize     int64  `json:"fileSize"`
}
