package user_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsroomhq/newsroom/internal/core/user"
	"github.com/newsroomhq/newsroom/internal/platform/apperr"
)

type fakeRepository struct {
	users []user.User
}

func (fake *fakeRepository) ListUsers(_ context.Context) ([]user.User, error) {
	return fake.users, nil
}

func (fake *fakeRepository) GetUserByUsername(_ context.Context, username string) (*user.User, error) {
	for i := range fake.users {
		if fake.users[i].Username == username {
			return &fake.users[i], nil
		}
	}
	return nil, apperr.NotFound()
}

func newUserRouter(repo user.Repository) chi.Router {
	handler := user.NewHandler(user.NewService(repo, slog.New(slog.DiscardHandler)))
	router := chi.NewRouter()
	router.Route("/api/users", handler.RegisterRoutes)
	return router
}

func TestListUsers(t *testing.T) {
	repo := &fakeRepository{users: []user.User{
		{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://example.com/a.jpg"},
		{Username: "icellusedkars", Name: "sam", AvatarURL: "https://example.com/b.jpg"},
	}}
	router := newUserRouter(repo)

	request := httptest.NewRequest("GET", "/api/users", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Users []user.User `json:"users"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Users, 2)
	assert.Equal(t, "butter_bridge", body.Users[0].Username)
}

func TestGetUser(t *testing.T) {
	repo := &fakeRepository{users: []user.User{
		{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://example.com/a.jpg"},
	}}
	router := newUserRouter(repo)

	t.Run("found", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/api/users/butter_bridge", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			User user.User `json:"user"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "jonny", body.User.Name)
	})

	t.Run("unknown_username_is_404", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/api/users/nobody", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var envelope struct {
			Msg string `json:"msg"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.Equal(t, "Not Found", envelope.Msg)
	})
}
