package comment_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsroomhq/newsroom/internal/core/comment"
	"github.com/newsroomhq/newsroom/internal/platform/apperr"
)

// fakeRepository satisfies comment.Repository in memory. knownArticles stands
// in for the existence check the real store runs against the articles table.
type fakeRepository struct {
	comments      []comment.Comment
	knownArticles map[int]bool
	nextID        int
}

func (fake *fakeRepository) ListCommentsByArticle(_ context.Context, articleID int, limit, offset int) ([]comment.Comment, error) {
	if !fake.knownArticles[articleID] {
		return nil, apperr.NotFound()
	}

	matched := []comment.Comment{}
	for _, c := range fake.comments {
		if c.ArticleID == articleID {
			matched = append(matched, c)
		}
	}
	if offset >= len(matched) {
		return []comment.Comment{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (fake *fakeRepository) ListComments(_ context.Context, limit, offset int) ([]comment.Comment, error) {
	if offset >= len(fake.comments) {
		return []comment.Comment{}, nil
	}
	end := offset + limit
	if end > len(fake.comments) {
		end = len(fake.comments)
	}
	return fake.comments[offset:end], nil
}

func (fake *fakeRepository) CreateComment(_ context.Context, articleID int, input comment.CreateInput) (*comment.Comment, error) {
	if !fake.knownArticles[articleID] {
		return nil, apperr.NotFound()
	}

	fake.nextID++
	created := comment.Comment{
		CommentID: fake.nextID,
		ArticleID: articleID,
		Author:    input.Username,
		Body:      input.Body,
		CreatedAt: time.Now(),
	}
	fake.comments = append(fake.comments, created)
	return &created, nil
}

func (fake *fakeRepository) UpdateCommentVotes(_ context.Context, id int, delta int) (*comment.Comment, error) {
	for i := range fake.comments {
		if fake.comments[i].CommentID == id {
			fake.comments[i].Votes += delta
			return &fake.comments[i], nil
		}
	}
	return nil, apperr.NotFound()
}

func (fake *fakeRepository) DeleteComment(_ context.Context, id int) error {
	for i := range fake.comments {
		if fake.comments[i].CommentID == id {
			fake.comments = append(fake.comments[:i], fake.comments[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound()
}

func newCommentRouter(repo comment.Repository) chi.Router {
	handler := comment.NewHandler(comment.NewService(repo, slog.New(slog.DiscardHandler)))
	router := chi.NewRouter()
	router.Route("/api/comments", handler.RegisterRoutes)
	router.Route("/api/articles/{articleID}/comments", handler.RegisterArticleRoutes)
	return router
}

func doRequest(t *testing.T, router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func errorMsg(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Msg string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope.Msg
}

func decodeComments(t *testing.T, recorder *httptest.ResponseRecorder) []comment.Comment {
	t.Helper()
	var body struct {
		Comments []comment.Comment `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body.Comments
}

func seedRepo() *fakeRepository {
	repo := &fakeRepository{
		knownArticles: map[int]bool{1: true, 2: true},
		nextID:        3,
	}
	repo.comments = []comment.Comment{
		{CommentID: 1, ArticleID: 1, Author: "butter_bridge", Body: "Fascinating", Votes: 16,
			CreatedAt: time.Date(2020, 4, 6, 12, 17, 0, 0, time.UTC)},
		{CommentID: 2, ArticleID: 1, Author: "icellusedkars", Body: "I hate streaming noses", Votes: 0,
			CreatedAt: time.Date(2020, 11, 3, 21, 0, 0, 0, time.UTC)},
		{CommentID: 3, ArticleID: 2, Author: "butter_bridge", Body: "Superficially charming",
			CreatedAt: time.Date(2020, 1, 1, 3, 8, 0, 0, time.UTC)},
	}
	return repo
}

func TestListCommentsByArticle(t *testing.T) {
	t.Run("returns_only_that_articles_comments", func(t *testing.T) {
		router := newCommentRouter(seedRepo())

		recorder := doRequest(t, router, "GET", "/api/articles/1/comments", "")
		require.Equal(t, http.StatusOK, recorder.Code)

		comments := decodeComments(t, recorder)
		require.Len(t, comments, 2)
		for _, c := range comments {
			assert.Equal(t, 1, c.ArticleID)
		}
	})

	t.Run("article_without_comments_is_empty_200", func(t *testing.T) {
		repo := seedRepo()
		repo.knownArticles[7] = true
		router := newCommentRouter(repo)

		recorder := doRequest(t, router, "GET", "/api/articles/7/comments", "")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, decodeComments(t, recorder))
	})

	t.Run("unknown_article_is_404", func(t *testing.T) {
		router := newCommentRouter(seedRepo())

		recorder := doRequest(t, router, "GET", "/api/articles/999/comments", "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Not Found", errorMsg(t, recorder))
	})

	t.Run("non_numeric_article_id_is_400", func(t *testing.T) {
		router := newCommentRouter(seedRepo())

		recorder := doRequest(t, router, "GET", "/api/articles/bananas/comments", "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Bad Request", errorMsg(t, recorder))
	})

	t.Run("non_numeric_limit_is_400", func(t *testing.T) {
		router := newCommentRouter(seedRepo())

		recorder := doRequest(t, router, "GET", "/api/articles/1/comments?limit=lots", "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Invalid Limit", errorMsg(t, recorder))
	})
}

func TestListComments(t *testing.T) {
	router := newCommentRouter(seedRepo())

	recorder := doRequest(t, router, "GET", "/api/comments", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Len(t, decodeComments(t, recorder), 3)
}

func TestCreateComment(t *testing.T) {
	t.Run("created_with_201", func(t *testing.T) {
		router := newCommentRouter(seedRepo())

		recorder := doRequest(t, router, "POST", "/api/articles/2/comments",
			`{"username":"butter_bridge","body":"Great read"}`)
		require.Equal(t, http.StatusCreated, recorder.Code)

		var body struct {
			Comment comment.Comment `json:"comment"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, 2, body.Comment.ArticleID)
		assert.Equal(t, "butter_bridge", body.Comment.Author)
		assert.Equal(t, "Great read", body.Comment.Body)
		assert.Equal(t, 0, body.Comment.Votes)
	})

	t.Run("empty_body_is_400", func(t *testing.T) {
		router := newCommentRouter(seedRepo())

		recorder := doRequest(t, router, "POST", "/api/articles/1/comments", `{}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Bad Request", errorMsg(t, recorder))
	})

	t.Run("unknown_article_is_404", func(t *testing.T) {
		router := newCommentRouter(seedRepo())

		recorder := doRequest(t, router, "POST", "/api/articles/999/comments",
			`{"username":"butter_bridge","body":"Great read"}`)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Not Found", errorMsg(t, recorder))
	})
}

func TestPatchCommentVotes(t *testing.T) {
	t.Run("applies_signed_delta", func(t *testing.T) {
		router := newCommentRouter(seedRepo())

		recorder := doRequest(t, router, "PATCH", "/api/comments/1", `{"inc_votes":4}`)
		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Comment comment.Comment `json:"comment"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, 20, body.Comment.Votes)
	})

	t.Run("missing_inc_votes_is_400", func(t *testing.T) {
		router := newCommentRouter(seedRepo())

		recorder := doRequest(t, router, "PATCH", "/api/comments/1", `{}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unknown_comment_is_404", func(t *testing.T) {
		router := newCommentRouter(seedRepo())

		recorder := doRequest(t, router, "PATCH", "/api/comments/999", `{"inc_votes":1}`)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestDeleteComment(t *testing.T) {
	router := newCommentRouter(seedRepo())

	recorder := doRequest(t, router, "DELETE", "/api/comments/1", "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.Bytes())

	recorder = doRequest(t, router, "DELETE", "/api/comments/1", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Not Found", errorMsg(t, recorder))
}
