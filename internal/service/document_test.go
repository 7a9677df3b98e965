package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/dms-platform/dms-cli/internal/domain/auth"
	"github.com/dms-platform/dms-cli/internal/domain/model"
	apperrors "github.com/dms-platform/dms-cli/internal/errors"
	"github.com/dms-platform/dms-cli/internal/mocks"
)

// staticSession satisfies SessionSource with a fixed session.
type staticSession struct {
	sess *domainauth.Session
}

func (s staticSession) Current() *domainauth.Session { return s.sess }

func memberOf(ids ...int64) []model.Department {
	depts := make([]model.Department, 0, len(ids))
	for _, id := range ids {
		depts = append(depts, model.Department{ID: id})
	}
	return depts
}

func newBrowser(t *testing.T, sess *domainauth.Session) (*DocumentBrowser, *mocks.MockDocumentAPI, *mocks.MockDirectoryAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	docs := mocks.NewMockDocumentAPI(ctrl)
	dir := mocks.NewMockDirectoryAPI(ctrl)
	browser := NewDocumentBrowser(BrowserOptions{
		Documents: docs,
		Directory: dir,
		Session:   staticSession{sess: sess},
	})
	return browser, docs, dir
}

func TestBrowser_Load_Admin_QueriesAll(t *testing.T) {
	sess := adminSession()
	browser, docs, _ := newBrowser(t, &sess)

	want := []model.Document{{ID: 1, Title: "Budget"}}
	docs.EXPECT().All(gomock.Any()).Return(want, nil)

	got, err := browser.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBrowser_Load_DepartmentMember_QueriesExactMemberships(t *testing.T) {
	sess := userSession()
	browser, docs, dir := newBrowser(t, &sess)

	dir.EXPECT().UserDepartments(gomock.Any(), sess.Actor.ID).Return(memberOf(3, 7), nil)
	docs.EXPECT().ByDepartments(gomock.Any(), []int64{3, 7}).Return([]model.Document{{ID: 2}}, nil)

	got, err := browser.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestBrowser_Load_NoDepartments_QueriesOwn(t *testing.T) {
	sess := userSession()
	browser, docs, dir := newBrowser(t, &sess)

	dir.EXPECT().UserDepartments(gomock.Any(), sess.Actor.ID).Return(nil, nil)
	docs.EXPECT().ByUser(gomock.Any(), sess.Actor.ID).Return(nil, nil)

	_, err := browser.Load(context.Background())
	require.NoError(t, err)
}

func TestBrowser_Load_NoSession_Denied(t *testing.T) {
	browser, _, _ := newBrowser(t, nil)

	_, err := browser.Load(context.Background())

	require.Error(t, err)
	assert.True(t, apperrors.IsDenied(err))
}

// Documents land in the uploader's department and are visible to members of
// that department, invisible to everyone else.
func TestBrowser_DepartmentVisibility(t *testing.T) {
	itDoc := model.Document{ID: 10, Title: "Network diagram", DepartmentID: 1, CreatedBy: 1}

	t.Run("member of another department does not see it", func(t *testing.T) {
		sess := userSession() // actor 2
		browser, docs, dir := newBrowser(t, &sess)

		dir.EXPECT().UserDepartments(gomock.Any(), int64(2)).Return(memberOf(2), nil)
		docs.EXPECT().ByDepartments(gomock.Any(), []int64{2}).Return(nil, nil)

		got, err := browser.Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("member of both departments sees it", func(t *testing.T) {
		sess := domainauth.Session{
			Actor: domainauth.Actor{ID: 3, Username: "lena", Roles: []domainauth.Role{domainauth.RoleUser}},
			Token: "t3",
		}
		browser, docs, dir := newBrowser(t, &sess)

		dir.EXPECT().UserDepartments(gomock.Any(), int64(3)).Return(memberOf(1, 2), nil)
		docs.EXPECT().ByDepartments(gomock.Any(), []int64{1, 2}).Return([]model.Document{itDoc}, nil)

		got, err := browser.Load(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(10), got[0].ID)
	})
}

func TestBrowser_Search_Admin(t *testing.T) {
	sess := adminSession()
	browser, docs, _ := newBrowser(t, &sess)

	docs.EXPECT().Search(gomock.Any(), "budget").Return([]model.Document{{ID: 4}}, nil)

	got, err := browser.Search(context.Background(), "  budget  ")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestBrowser_Search_DepartmentScoped(t *testing.T) {
	sess := userSession()
	browser, docs, dir := newBrowser(t, &sess)

	dir.EXPECT().UserDepartments(gomock.Any(), sess.Actor.ID).Return(memberOf(5), nil)
	docs.EXPECT().SearchByDepartments(gomock.Any(), "plan", []int64{5}).Return(nil, nil)

	_, err := browser.Search(context.Background(), "plan")
	require.NoError(t, err)
}

func TestBrowser_Search_OwnScopeFallsBackToCreatorQuery(t *testing.T) {
	sess := userSession()
	browser, docs, dir := newBrowser(t, &sess)

	dir.EXPECT().UserDepartments(gomock.Any(), sess.Actor.ID).Return(nil, nil)
	docs.EXPECT().ByUser(gomock.Any(), sess.Actor.ID).Return(nil, nil)

	_, err := browser.Search(context.Background(), "plan")
	require.NoError(t, err)
}

func TestBrowser_Search_Blank_EquivalentToLoad(t *testing.T) {
	sess := adminSession()
	browser, docs, _ := newBrowser(t, &sess)

	docs.EXPECT().All(gomock.Any()).Return(nil, nil)

	_, err := browser.Search(context.Background(), "   ")
	require.NoError(t, err)
}

func TestBrowser_CategoryFilterOverridesDepartmentFilter(t *testing.T) {
	sess := adminSession()
	browser, docs, _ := newBrowser(t, &sess)

	docs.EXPECT().ByDepartment(gomock.Any(), int64(2)).Return(nil, nil)
	// Selecting a category drops the department filter: exactly one query,
	// against the category endpoint only.
	docs.EXPECT().ByCategory(gomock.Any(), int64(9)).Return([]model.Document{{ID: 6}}, nil)

	_, err := browser.FilterByDepartment(context.Background(), 2)
	require.NoError(t, err)

	got, err := browser.FilterByCategory(context.Background(), 9)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestBrowser_SearchOverridesCategoryFilter(t *testing.T) {
	sess := adminSession()
	browser, docs, _ := newBrowser(t, &sess)

	docs.EXPECT().ByCategory(gomock.Any(), int64(9)).Return(nil, nil)
	docs.EXPECT().Search(gomock.Any(), "report").Return(nil, nil)

	_, err := browser.FilterByCategory(context.Background(), 9)
	require.NoError(t, err)

	_, err = browser.Search(context.Background(), "report")
	require.NoError(t, err)
}

func TestBrowser_FailureKeepsPreviousResults(t *testing.T) {
	sess := adminSession()
	browser, docs, _ := newBrowser(t, &sess)

	docs.EXPECT().All(gomock.Any()).Return([]model.Document{{ID: 1}}, nil)
	docs.EXPECT().Search(gomock.Any(), "x").Return(nil, apperrors.Transport("backend down"))

	_, err := browser.Load(context.Background())
	require.NoError(t, err)

	_, err = browser.Search(context.Background(), "x")
	require.Error(t, err)

	assert.Len(t, browser.Documents(), 1, "failed refresh keeps the previous result set")
}

func TestBrowser_MembershipsCachedAcrossRefreshes(t *testing.T) {
	sess := userSession()
	browser, docs, dir := newBrowser(t, &sess)

	dir.EXPECT().UserDepartments(gomock.Any(), sess.Actor.ID).Return(memberOf(3), nil).Times(1)
	docs.EXPECT().ByDepartments(gomock.Any(), []int64{3}).Return(nil, nil).Times(2)

	_, err := browser.Load(context.Background())
	require.NoError(t, err)
	_, err = browser.Load(context.Background())
	require.NoError(t, err)
}

func TestBrowser_Delete_Owner(t *testing.T) {
	sess := userSession()
	browser, docs, _ := newBrowser(t, &sess)

	docs.EXPECT().ByID(gomock.Any(), int64(5)).Return(model.Document{ID: 5, CreatedBy: sess.Actor.ID}, nil)
	docs.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

	require.NoError(t, browser.Delete(context.Background(), 5))
}

func TestBrowser_Delete_NotOwner_Denied(t *testing.T) {
	sess := userSession()
	browser, docs, _ := newBrowser(t, &sess)

	docs.EXPECT().ByID(gomock.Any(), int64(5)).Return(model.Document{ID: 5, CreatedBy: 99}, nil)

	err := browser.Delete(context.Background(), 5)

	require.Error(t, err)
	assert.True(t, apperrors.IsDenied(err))
}

func TestBrowser_Delete_AdminDeletesAnything(t *testing.T) {
	sess := adminSession()
	browser, docs, _ := newBrowser(t, &sess)

	docs.EXPECT().ByID(gomock.Any(), int64(5)).Return(model.Document{ID: 5, CreatedBy: 99}, nil)
	docs.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

	require.NoError(t, browser.Delete(context.Background(), 5))
}

func TestBrowser_Delete_RemovesFromResultSet(t *testing.T) {
	sess := adminSession()
	browser, docs, _ := newBrowser(t, &sess)

	docs.EXPECT().All(gomock.Any()).Return([]model.Document{{ID: 1}, {ID: 2}}, nil)
	docs.EXPECT().ByID(gomock.Any(), int64(1)).Return(model.Document{ID: 1}, nil)
	docs.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	_, err := browser.Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, browser.Delete(context.Background(), 1))

	remaining := browser.Documents()
	require.Len(t, remaining, 1)
	assert.Equal(t, int64(2), remaining[0].ID)
}

func TestBrowser_Delete_NoSession(t *testing.T) {
	browser, _, _ := newBrowser(t, nil)

	err := browser.Delete(context.Background(), 1)

	require.Error(t, err)
	assert.True(t, apperrors.IsDenied(err))
}
