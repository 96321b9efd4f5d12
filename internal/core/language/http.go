// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/iso639/internal/platform/constants"
	"github.com/taibuivan/iso639/internal/platform/middleware"
	requestutil "github.com/taibuivan/iso639/internal/platform/request"
	"github.com/taibuivan/iso639/internal/platform/respond"
	"github.com/taibuivan/iso639/internal/platform/sec"
	"github.com/taibuivan/iso639/pkg/pagination"
)

// Handler implements the HTTP layer for language lookups.
type Handler struct {
	service *Service
}

// NewHandler constructs a new language [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the language endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

// RegisterRoutes mounts the language endpoints on router.
//
// Static segments are registered before {part3} so that "match", "batch",
// "by" and "stats" are never read as codes.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Browsing
	router.Get("/", handler.listLanguages)

	// Resolution
	router.Get("/match", handler.matchLanguage)
	router.Get("/batch", handler.matchBatch)
	router.Get("/by/{field}/{value}", handler.getLanguageBy)

	// Usage statistics
	router.With(middleware.RequireRole(sec.RoleOperator)).Get("/stats/popular", handler.popularLanguages)

	// Single record and relationships
	router.Get("/{part3}", handler.getLanguage)
	router.Get("/{part3}/members", handler.listMembers)
	router.Get("/{part3}/successor", handler.getSuccessor)
}

// # Browsing Endpoints

/*
GET /api/v1/languages.

Description: Pages through every record (active and retired) ordered by part3.

Request:
  - status: A | R (optional)
  - scope: I | M | S | C (optional)
  - type: A | C | E | H | L | S (optional)
  - page, limit: Pagination

Response:
  - 200: []Language + pagination meta
  - 400: Validation: Unknown classification code
*/
func (handler *Handler) listLanguages(writer http.ResponseWriter, request *http.Request) {
	values := request.URL.Query()
	filter := Filter{
		Status: Status(values.Get("status")),
		Scope:  Scope(values.Get("scope")),
		Type:   Type(values.Get("type")),
	}

	langs, meta, err := handler.service.List(request.Context(), filter, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, langs, meta)
}

// # Resolution Endpoints

/*
GET /api/v1/languages/match.

Description: Resolves any code or name in priority order.

Request:
  - q: Code or name
  - ignore_case: true to retry with lowercase and title-case forms

Response:
  - 200: Language
  - 400: Validation: Missing or oversized q
  - 404: NotFound: Nothing matched, including a blank q
*/
func (handler *Handler) matchLanguage(writer http.ResponseWriter, request *http.Request) {
	ignoreCase, err := requestutil.Bool(request, "ignore_case")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	lang, err := handler.service.Match(request.Context(), request.URL.Query().Get("q"), ignoreCase)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, lang)
}

/*
GET /api/v1/languages/batch.

Description: Resolves a comma-separated list of inputs; duplicates are dropped.

Response:
  - 200: BatchResult
  - 400: Validation: Empty or oversized batch
*/
func (handler *Handler) matchBatch(writer http.ResponseWriter, request *http.Request) {
	ignoreCase, err := requestutil.Bool(request, "ignore_case")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.MatchMany(request.Context(), requestutil.List(request, "q"), ignoreCase)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
GET /api/v1/languages/by/{field}/{value}.

Description: Resolves value against one kind of identifier only.

Response:
  - 200: Language
  - 400: Validation: Unknown field
  - 404: NotFound: Nothing matched
*/
func (handler *Handler) getLanguageBy(writer http.ResponseWriter, request *http.Request) {
	lang, err := handler.service.GetBy(request.Context(), requestutil.Param(request, "field"), requestutil.Param(request, "value"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, lang)
}

// # Record Endpoints

// getLanguage handles GET /api/v1/languages/{part3}.
func (handler *Handler) getLanguage(writer http.ResponseWriter, request *http.Request) {
	lang, err := handler.service.GetBy(request.Context(), "part3", requestutil.Param(request, "part3"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, lang)
}

// listMembers handles GET /api/v1/languages/{part3}/members.
func (handler *Handler) listMembers(writer http.ResponseWriter, request *http.Request) {
	members, err := handler.service.Members(request.Context(), requestutil.Param(request, "part3"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, members)
}

/*
GET /api/v1/languages/{part3}/successor.

Description: Follows retirement redirections to the active replacement.
An active code is its own successor.

Response:
  - 200: Language
  - 404: NotFound: Unknown code, or a retirement without a single replacement
*/
func (handler *Handler) getSuccessor(writer http.ResponseWriter, request *http.Request) {
	successor, err := handler.service.Successor(request.Context(), requestutil.Param(request, "part3"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, successor)
}

// # Statistics Endpoints

/*
GET /api/v1/languages/stats/popular.

Description: Ranks languages by successful resolutions.

Response:
  - 200: []Usage
  - 401/403: Operator token required
  - 503: Statistics disabled (no Redis configured)
*/
func (handler *Handler) popularLanguages(writer http.ResponseWriter, request *http.Request) {
	limit, err := requestutil.Int(request, "limit", constants.DefaultPopularLimit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	usages, err := handler.service.Popular(request.Context(), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, usages)
}
