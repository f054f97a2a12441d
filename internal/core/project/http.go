// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package project

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/aqar/internal/platform/constants"
	"github.com/taibuivan/aqar/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/aqar/internal/platform/request"
	"github.com/taibuivan/aqar/internal/platform/respond"
	"github.com/taibuivan/aqar/pkg/pagination"
)

// Handler implements the HTTP layer for projects.
type Handler struct {
	service *Service
}

// NewHandler constructs a new project [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with project endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listProjects)
	router.Get("/{id}", handler.getProject)

	return router
}

/*
GET /api/v1/projects.

Response:
  - 200: []View with pagination meta
*/
func (handler *Handler) listProjects(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	locale := ctxutil.GetLocale(request.Context())

	views, total, err := handler.service.List(request.Context(), locale, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writer.Header().Set(constants.HeaderContentLang, locale)
	respond.Paginated(writer, views, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/projects/{id}.

Response:
  - 200: View including both name and location variants
  - 404: Unknown id
*/
func (handler *Handler) getProject(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64Param(request, "id", "Project")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	locale := ctxutil.GetLocale(request.Context())
	view, err := handler.service.Get(request.Context(), id, locale)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Localized(writer, locale, view)
}
