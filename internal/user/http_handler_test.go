package user

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gamevault/internal/httpx"
	"gamevault/internal/platform/logging"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func withUser(r *http.Request, id, role string) *http.Request {
	return r.WithContext(httpx.ContextWithUser(r.Context(), id, role))
}

func TestHTTPHandler_GetCurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo, logging.Discard()))

	t.Run("unauthenticated", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetCurrentUser(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("hides password hash", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(User{ID: "user-1", Username: "player", PasswordHash: "secret-hash"}, nil)

		w := httptest.NewRecorder()
		handler.GetCurrentUser(w, withUser(httptest.NewRequest(http.MethodGet, "/me", nil), "user-1", RoleUser))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"player"`)
		assert.NotContains(t, w.Body.String(), "secret-hash")
	})

	t.Run("deleted user", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "gone").Return(User{}, ErrNotFound)

		w := httptest.NewRecorder()
		handler.GetCurrentUser(w, withUser(httptest.NewRequest(http.MethodGet, "/me", nil), "gone", RoleUser))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHTTPHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo, logging.Discard()))

	mockRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest(http.MethodGet, "/admin/users", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHTTPHandler_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo, logging.Discard()))

	newRequest := func(id, body string) *http.Request {
		r := httptest.NewRequest(http.MethodPatch, "/admin/users/"+id, strings.NewReader(body))
		r.SetPathValue("id", id)
		return withUser(r, "admin-1", RoleAdmin)
	}

	t.Run("approve", func(t *testing.T) {
		mockRepo.EXPECT().Update(gomock.Any(), "user-1", gomock.Any()).Return(User{ID: "user-1", IsApproved: true}, nil)

		w := httptest.NewRecorder()
		handler.Update(w, newRequest("user-1", `{"is_approved":true}`))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_approved":true`)
	})

	t.Run("unknown field", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Update(w, newRequest("user-1", `{"password":"x"}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid avatar", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Update(w, newRequest("user-1", `{"avatar_url":"not a url"}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("self demotion refused", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Update(w, newRequest("admin-1", `{"is_admin":false}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Update(gomock.Any(), "ghost", gomock.Any()).Return(User{}, ErrNotFound)

		w := httptest.NewRecorder()
		handler.Update(w, newRequest("ghost", `{"bio":"hi"}`))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
