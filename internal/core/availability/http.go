// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package availability

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/aqar/internal/platform/constants"
	"github.com/taibuivan/aqar/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/aqar/internal/platform/request"
	"github.com/taibuivan/aqar/internal/platform/respond"
	"github.com/taibuivan/aqar/internal/platform/validate"
	"github.com/taibuivan/aqar/pkg/pagination"
	"github.com/taibuivan/aqar/pkg/query"
)

// # Handler Implementation

// Handler implements the HTTP layer for the availability listing.
type Handler struct {
	service *Service
}

// NewHandler constructs a new availability [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with availability endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listAvailability)
	router.Get("/summary", handler.getSummary)
	router.Get("/{id}", handler.getAvailability)

	return router
}

/*
GET /api/v1/availability.

Description: Lists the reconciled sales and units inventory.

Request:
  - source: sales|units
  - project: comma separated names (case-insensitive exact match)
  - unit_type, usage_type: string (case-insensitive exact match)
  - min_price, max_price: number (effective price)
  - sort: id|project|price|built_area|created_at|planned_delivery_date, "-" for descending
  - page, limit: int

Response:
  - 200: []Record with pagination meta
  - 400: Validation: unknown source or sort key, malformed price bounds
*/
func (handler *Handler) listAvailability(writer http.ResponseWriter, request *http.Request) {
	listQuery, err := parseQuery(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	locale := ctxutil.GetLocale(request.Context())
	records, total, err := handler.service.List(request.Context(), listQuery, locale)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writer.Header().Set(constants.HeaderContentLang, locale)
	respond.Paginated(writer, records, pagination.NewMeta(listQuery.Page.Page, listQuery.Page.Limit, total))
}

/*
GET /api/v1/availability/summary.

Response:
  - 200: Summary
*/
func (handler *Handler) getSummary(writer http.ResponseWriter, request *http.Request) {
	summary, err := handler.service.Summary(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary)
}

/*
GET /api/v1/availability/{id}.

Request:
  - id: string (canonical id, e.g. "s_12")

Response:
  - 200: Record
  - 404: Unknown id
*/
func (handler *Handler) getAvailability(writer http.ResponseWriter, request *http.Request) {
	locale := ctxutil.GetLocale(request.Context())

	record, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"), locale)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Localized(writer, locale, record)
}

// parseQuery reads and validates listing parameters.
func parseQuery(request *http.Request) (Query, error) {
	values := request.URL.Query()
	v := &validate.Validator{}

	parsed := Query{
		Source:    Source(strings.TrimSpace(values.Get("source"))),
		Projects:  query.StringSlice(values.Get("project")),
		UnitType:  strings.TrimSpace(values.Get("unit_type")),
		UsageType: strings.TrimSpace(values.Get("usage_type")),
		Sort:      strings.TrimSpace(values.Get("sort")),
		MinPrice:  requestutil.OptionalFloat(request, "min_price", v),
		MaxPrice:  requestutil.OptionalFloat(request, "max_price", v),
		Page:      pagination.FromRequest(request),
	}

	if parsed.Source != "" {
		v.OneOf("source", string(parsed.Source), string(SourceSales), string(SourceUnits))
	}
	if parsed.Sort != "" {
		key, _ := parseSort(parsed.Sort)
		v.OneOf("sort", key, SortKeys()...)
	}
	if parsed.MinPrice != nil && parsed.MaxPrice != nil {
		v.Custom("max_price", *parsed.MaxPrice < *parsed.MinPrice, "Must not be below min_price")
	}

	return parsed, v.Err()
}
