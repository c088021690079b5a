package topic

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
	router.Get("/", handler.listTopics)
	router.Post("/", handler.createTopic)
}

// GET /api/topics
func (handler *Handler) listTopics(writer http.ResponseWriter, request *http.Request) {
	topics, err := handler.service.ListTopics(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]any{"topics": topics})
}

// POST /api/topics
func (handler *Handler) createTopic(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateTopic(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, map[string]any{"topic": created})
}
