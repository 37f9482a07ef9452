/*
Package reference provides the HTTP interface for browsing master data.

It serves the shared taxonomies (Languages, Tags) and researcher
profiles the bibliographic records reference. All endpoints are public
and read-only; the upstream CMS owns the write path.
*/
package reference

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/scripta/internal/platform/apperr"
	requestutil "github.com/taibuivan/scripta/internal/platform/request"
	"github.com/taibuivan/scripta/internal/platform/respond"
	"github.com/taibuivan/scripta/pkg/pagination"
)

// Handler implements the HTTP layer for reference and master data.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new reference [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the reference domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// # Languages Endpoints
	router.Get("/languages", handler.listLanguages)
	router.Get("/languages/{id}", handler.getLanguage)

	// # Tags Endpoints
	router.Get("/tags", handler.listTags)

	// # People Endpoints
	router.Get("/people/{id}", handler.getPerson)

	return router
}

/*
GET /api/v1/languages.

Description: Retrieves the complete list of catalog languages.

Response:
  - 200: []Language: Success
*/
func (handler *Handler) listLanguages(writer http.ResponseWriter, request *http.Request) {

	// Get all languages
	languages, err := handler.service.ListLanguages(request.Context())

	// Handle error
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.OK(writer, languages)
}

/*
GET /api/v1/languages/{id}.

Description: Retrieves one language by its primary key.

Response:
  - 200: Language: Success
  - 404: Language does not exist
*/
func (handler *Handler) getLanguage(writer http.ResponseWriter, request *http.Request) {

	// Parse the numeric identifier
	id, err := parseID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Look up the language
	row, err := handler.service.GetLanguage(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, row)
}

/*
GET /api/v1/tags.

Description: Retrieves one page of the subject tag list.

Request:
  - page: int (1-indexed)
  - limit: int (Clamped to the shared maximum)

Response:
  - 200: []Tag with pagination metadata
*/
func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	tags, total, err := handler.service.ListTags(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, tags, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/people/{id}.

Description: Retrieves one researcher profile by primary key.

Response:
  - 200: Person: Success
  - 404: Person does not exist
*/
func (handler *Handler) getPerson(writer http.ResponseWriter, request *http.Request) {

	// Parse the numeric identifier
	id, err := parseID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Look up the person
	row, err := handler.service.GetPerson(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, row)
}

// parseID extracts the {id} route parameter as an int64.
func parseID(request *http.Request) (int64, error) {
	id, err := strconv.ParseInt(requestutil.Param(request, "id"), 10, 64)
	if err != nil {
		return 0, apperr.ValidationError("Invalid numeric id")
	}
	return id, nil
}
