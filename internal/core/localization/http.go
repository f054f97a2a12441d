// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package localization

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/aqar/internal/platform/middleware"
	requestutil "github.com/taibuivan/aqar/internal/platform/request"
	"github.com/taibuivan/aqar/internal/platform/respond"
	"github.com/taibuivan/aqar/internal/platform/sec"
	"github.com/taibuivan/aqar/internal/platform/validate"
)

// # Handler Implementation

// Handler implements the HTTP layer for the translation dictionary.
type Handler struct {
	service *Service
}

// NewHandler constructs a new dictionary [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with dictionary endpoints.
// Writes require the editor role or above; reads are public to the panel.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listTranslations)
	router.Get("/lookup", handler.lookupTranslation)
	router.With(middleware.RequireRole(sec.RoleEditor)).Post("/", handler.addTranslation)

	return router
}

/*
GET /api/v1/translations.

Description: Returns the full dictionary in insertion order.

Response:
  - 200: []Entry
*/
func (handler *Handler) listTranslations(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.List())
}

/*
GET /api/v1/translations/lookup.

Description: Resolves a phrase through the exact and case-insensitive tiers.

Request:
  - phrase: string

Response:
  - 200: Entry
  - 400: Validation: phrase missing
  - 404: No entry matches
*/
func (handler *Handler) lookupTranslation(writer http.ResponseWriter, request *http.Request) {
	phrase := request.URL.Query().Get("phrase")

	v := &validate.Validator{}
	if err := v.Required("phrase", phrase).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.Lookup(phrase)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

/*
POST /api/v1/translations.

Description: Adds or overwrites a dictionary entry. Overwrites keep the
entry's position in the dictionary.

Request (Body):
  - source: string
  - target: string

Response:
  - 201: Entry
  - 400: Validation: empty or oversized phrases
  - 401/403: Missing token or role below editor
*/
func (handler *Handler) addTranslation(writer http.ResponseWriter, request *http.Request) {
	var input Entry
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.AddTranslation(request.Context(), input.Source, input.Target, requestutil.UserID(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}
