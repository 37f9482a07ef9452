package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/scripta/internal/platform/apperr"
	"github.com/taibuivan/scripta/internal/platform/middleware"
	requestutil "github.com/taibuivan/scripta/internal/platform/request"
	"github.com/taibuivan/scripta/internal/platform/respond"
	"github.com/taibuivan/scripta/internal/platform/sec"
	"github.com/taibuivan/scripta/pkg/convert"
)

// # Handler Implementation

// Handler implements the HTTP layer of the operator surface.
type Handler struct {
	service *Service
}

// NewHandler constructs an admin [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the operator endpoints. Token
// issuance is open (it is the login); everything else requires an
// admin-role token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/token", handler.issueToken)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireRole(sec.RoleAdmin))

		protected.Delete("/cache", handler.flushCache)
		protected.Get("/audit", handler.auditTrail)
	})

	return router
}

/*
POST /api/v1/admin/token.

Description: Exchanges the operator API key for a short-lived JWT.

Request:
  - api_key: string

Response:
  - 200: {access_token, expires_in}
  - 401: Invalid key
*/
func (handler *Handler) issueToken(writer http.ResponseWriter, request *http.Request) {
	var payload struct {
		APIKey string `json:"api_key"`
	}

	// Decode request body
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if payload.APIKey == "" {
		respond.Error(writer, request, apperr.ValidationError("Missing 'api_key'"))
		return
	}

	token, ttl, err := handler.service.IssueToken(payload.APIKey)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]interface{}{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   int(ttl.Seconds()),
	})
}

/*
DELETE /api/v1/admin/cache.

Description: Flushes the cached modification instants.

Response:
  - 204: Cache cleared
*/
func (handler *Handler) flushCache(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.FlushCache(request.Context()); err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}
	respond.NoContent(writer)
}

/*
GET /api/v1/admin/audit.

Description: Lists recent audit entries for one entity, newest first.

Request:
  - family: string (CMS table name, e.g. "publications_thesis")
  - object_id: string
  - limit: int (Default 20)

Response:
  - 200: []Entry
  - 404: Unregistered entity family
*/
func (handler *Handler) auditTrail(writer http.ResponseWriter, request *http.Request) {
	values := request.URL.Query()

	family := values.Get("family")
	objectID := values.Get("object_id")
	if family == "" || objectID == "" {
		respond.Error(writer, request, apperr.ValidationError("Missing 'family' or 'object_id'"))
		return
	}

	entries, err := handler.service.AuditTrail(
		request.Context(),
		family,
		objectID,
		convert.ToIntD(values.Get("limit"), 20),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entries)
}
