package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dms-platform/dms-cli/internal/domain/model"
	apperrors "github.com/dms-platform/dms-cli/internal/errors"
	"github.com/dms-platform/dms-cli/internal/mocks"
)

func newRefData(t *testing.T, sess staticSession) (*RefDataLoader, *mocks.MockDirectoryAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	dir := mocks.NewMockDirectoryAPI(ctrl)
	return NewRefDataLoader(RefDataOptions{Directory: dir, Session: sess}), dir
}

func TestRefData_UploadForm_Member(t *testing.T) {
	sess := userSession()
	loader, dir := newRefData(t, staticSession{sess: &sess})

	dir.EXPECT().Categories(gomock.Any()).
		Return([]model.Category{{ID: 1, Name: "Reports"}}, nil)
	dir.EXPECT().UserDepartments(gomock.Any(), sess.Actor.ID).
		Return([]model.Department{{ID: 3, Name: "Finance"}}, nil)

	data, err := loader.UploadForm(context.Background())
	require.NoError(t, err)

	require.Len(t, data.Categories, 1)
	require.Len(t, data.Departments, 1)
	assert.Equal(t, "Finance", data.Departments[0].Name)
}

func TestRefData_UploadForm_AdminSeesAllDepartments(t *testing.T) {
	sess := adminSession()
	loader, dir := newRefData(t, staticSession{sess: &sess})

	dir.EXPECT().Categories(gomock.Any()).Return(nil, nil)
	dir.EXPECT().Departments(gomock.Any()).
		Return([]model.Department{{ID: 1}, {ID: 2}}, nil)

	data, err := loader.UploadForm(context.Background())
	require.NoError(t, err)
	assert.Len(t, data.Departments, 2)
}

func TestRefData_UploadForm_EitherFailureFails(t *testing.T) {
	sess := userSession()
	loader, dir := newRefData(t, staticSession{sess: &sess})

	dir.EXPECT().Categories(gomock.Any()).Return(nil, nil).MaxTimes(1)
	dir.EXPECT().UserDepartments(gomock.Any(), sess.Actor.ID).
		Return(nil, apperrors.Transport("directory down"))

	_, err := loader.UploadForm(context.Background())

	require.Error(t, err)
	assert.True(t, apperrors.IsTransport(err))
}

func TestRefData_UploadForm_NoSession(t *testing.T) {
	loader, _ := newRefData(t, staticSession{})

	_, err := loader.UploadForm(context.Background())

	require.Error(t, err)
	assert.True(t, apperrors.IsDenied(err))
}
