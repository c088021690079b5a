package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/newsroomhq/newsroom/internal/platform/request"
	"github.com/newsroomhq/newsroom/internal/platform/respond"
	"github.com/newsroomhq/newsroom/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the top-level comment endpoints (/api/comments).
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listComments)
	router.Patch("/{commentID}", handler.patchCommentVotes)
	router.Delete("/{commentID}", handler.deleteComment)
}

// RegisterArticleRoutes mounts the article-scoped comment endpoints
// (/api/articles/{articleID}/comments).
func (handler *Handler) RegisterArticleRoutes(router chi.Router) {
	router.Get("/", handler.listCommentsByArticle)
	router.Post("/", handler.createComment)
}

// GET /api/comments?limit=&p=
func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	params, err := pagination.FromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comments, err := handler.service.ListComments(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]any{"comments": comments})
}

// GET /api/articles/{articleID}/comments?limit=&p=
func (handler *Handler) listCommentsByArticle(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "articleID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params, err := pagination.FromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comments, err := handler.service.ListCommentsByArticle(request.Context(), articleID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]any{"comments": comments})
}

// POST /api/articles/{articleID}/comments
func (handler *Handler) createComment(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "articleID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateComment(request.Context(), articleID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, map[string]any{"comment": created})
}

// PATCH /api/comments/{commentID}
func (handler *Handler) patchCommentVotes(writer http.ResponseWriter, request *http.Request) {
	commentID, err := requestutil.IntParam(request, "commentID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input VotesInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateVotes(request.Context(), commentID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]any{"comment": updated})
}

// DELETE /api/comments/{commentID}
func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	commentID, err := requestutil.IntParam(request, "commentID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteComment(request.Context(), commentID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
