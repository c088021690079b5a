package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/newsroomhq/newsroom/internal/platform/request"
	"github.com/newsroomhq/newsroom/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listArticles)
	router.Post("/", handler.createArticle)
	router.Get("/{articleID}", handler.getArticle)
	router.Patch("/{articleID}", handler.patchArticleVotes)
	router.Delete("/{articleID}", handler.deleteArticle)
}

// GET /api/articles?topic=&sort_by=&order=&limit=&p=
func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	options, err := ParseListOptions(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	articles, totalCount, err := handler.service.ListArticles(request.Context(), options)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]any{
		"articles":    articles,
		"total_count": totalCount,
	})
}

// GET /api/articles/{articleID}
func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "articleID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.service.GetArticle(request.Context(), articleID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]any{"article": found})
}

// POST /api/articles
func (handler *Handler) createArticle(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateArticle(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, map[string]any{"article": created})
}

// PATCH /api/articles/{articleID}
func (handler *Handler) patchArticleVotes(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "articleID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input VotesInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateVotes(request.Context(), articleID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]any{"article": updated})
}

// DELETE /api/articles/{articleID}
func (handler *Handler) deleteArticle(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "articleID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteArticle(request.Context(), articleID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
