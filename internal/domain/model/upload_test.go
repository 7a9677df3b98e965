package model

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDraft() UploadDraft {
	return UploadDraft{
		Title:        "Quarterly Report",
		CategoryID:   2,
		DepartmentID: 5,
		File:         BytesDraftFile("report.pdf", []byte("pdf")),
	}
}

func TestUploadDraft_MissingFields_Complete(t *testing.T) {
	fields, messages := completeDraft().MissingFields()
	assert.Empty(t, fields)
	assert.Empty(t, messages)
}

func TestUploadDraft_MissingFields_ReportsAll(t *testing.T) {
	fields, messages := UploadDraft{}.MissingFields()

	assert.Equal(t, []string{"title", "categoryId", "departmentId", "file"}, fields)
	assert.Equal(t, []string{
		"Title is required",
		"Category is required",
		"Department is required",
		"File is required",
	}, messages)
}

func TestUploadDraft_MissingFields_BlankTitle(t *testing.T) {
	draft := completeDraft()
	draft.Title = "   "

	fields, _ := draft.MissingFields()
	assert.Equal(t, []string{"title"}, fields)
}

func TestBytesDraftFile_OpensFreshStreamEachTime(t *testing.T) {
	file := BytesDraftFile("report.pdf", []byte("pdf"))
	assert.Equal(t, int64(3), file.Size)

	for i := 0; i < 2; i++ {
		r, err := file.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		require.NoError(t, r.Close())
		assert.Equal(t, "pdf", string(data))
	}
}

func TestUploadDraft_MetadataRequest(t *testing.T) {
	draft := completeDraft()
	draft.Title = "  Quarterly Report  "

	req := draft.MetadataRequest(StoredFile{
		FileKey:  "ab12.pdf",
		FileName: "report.pdf",
		FileType: "application/pdf",
		FileSize: 1024,
	})

	assert.Equal(t, CreateDocumentRequest{
		Title:        "Quarterly Report",
		CategoryID:   2,
		DepartmentID: 5,
		FileKey:      "ab12.pdf",
		FileName:     "report.pdf",
		FileType:     "application/pdf",
		FileSize:     1024,
	}, req)
}

func TestUploadDraft_MetadataRequest_StorageDefaults(t *testing.T) {
	// A storage response that omitted file attributes coerces to the wire
	// defaults: empty strings and size zero.
	req := completeDraft().MetadataRequest(StoredFile{FileKey: "ab12.pdf"})

	assert.Equal(t, "ab12.pdf", req.FileKey)
	assert.Equal(t, "", req.FileName)
	assert.Equal(t, "", req.FileType)
	assert.Equal(t, int64(0), req.FileSize)
}
