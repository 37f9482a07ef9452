package harvest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/scripta/internal/platform/apperr"
	"github.com/taibuivan/scripta/internal/platform/constants"
	"github.com/taibuivan/scripta/internal/platform/respond"
	"github.com/taibuivan/scripta/pkg/convert"
	"github.com/taibuivan/scripta/pkg/query"
)

// # Handler Implementation

// Handler implements the HTTP interface of the harvesting feed. It
// translates query parameters into a [Query] and renders pages as JSON;
// protocol framing (OAI-PMH XML or otherwise) belongs to consumers.
type Handler struct {
	service *Service
}

// NewHandler constructs a harvest [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the feed's endpoints. All three are
// public: the feed is read-only by construction.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/records", handler.listRecords)
	router.Get("/sets", handler.listSets)
	router.Get("/info", handler.info)

	return router
}

/*
GET /api/v1/harvest/records.

Description: Returns one page of the merged publication/thesis feed.

Request:
  - offset: int
  - batch_size: int (Clamped to the configured maximum)
  - from: string (RFC 3339 or date-only lower bound on modification time)
  - until: string (Upper bound, clamped to now)
  - identifier: string ("id/slug" single-record lookup)
  - needed_sets: string (Comma-separated set ids)
  - allowed_sets: string
  - disallowed_sets: string

Response:
  - 200: {records, count}
  - 400: Malformed date bounds
*/
func (handler *Handler) listRecords(writer http.ResponseWriter, request *http.Request) {
	values := request.URL.Query()

	harvestQuery := Query{
		Offset:         convert.ToIntD(values.Get("offset"), 0),
		BatchSize:      convert.ToIntD(values.Get("batch_size"), constants.DefaultHarvestBatchSize),
		NeededSets:     query.StringSlice(values.Get("needed_sets")),
		AllowedSets:    query.StringSlice(values.Get("allowed_sets")),
		DisallowedSets: query.StringSlice(values.Get("disallowed_sets")),
	}

	if identifier := values.Get("identifier"); identifier != "" {
		harvestQuery.Identifier = &identifier
	}

	from, err := parseBound(values.Get("from"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid 'from' date"))
		return
	}
	harvestQuery.From = from

	until, err := parseBound(values.Get("until"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid 'until' date"))
		return
	}
	harvestQuery.Until = until

	records, err := handler.service.Harvest(request.Context(), harvestQuery)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]interface{}{
		"records": records,
		"count":   len(records),
	})
}

/*
GET /api/v1/harvest/sets.

Description: Returns one page of the non-hidden set taxonomy.

Request:
  - offset: int
  - batch_size: int

Response:
  - 200: {sets, count}
*/
func (handler *Handler) listSets(writer http.ResponseWriter, request *http.Request) {
	values := request.URL.Query()

	sets := handler.service.ListSets(
		convert.ToIntD(values.Get("offset"), 0),
		convert.ToIntD(values.Get("batch_size"), constants.DefaultHarvestBatchSize),
	)

	respond.OK(writer, map[string]interface{}{
		"sets":  sets,
		"count": len(sets),
	})
}

/*
GET /api/v1/harvest/info.

Description: Feed discovery data: earliest datestamp and stream totals.

Response:
  - 200: {earliest_datestamp, publication_count, thesis_count, set_count}
*/
func (handler *Handler) info(writer http.ResponseWriter, request *http.Request) {
	earliest, err := handler.service.EarliestDatestamp(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	publicationCount, err := handler.service.CountPublications(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	thesisCount, err := handler.service.CountTheses(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]interface{}{
		"earliest_datestamp": formatDatestamp(earliest),
		"publication_count":  publicationCount,
		"thesis_count":       thesisCount,
		"set_count":          CountSets(),
	})
}

// parseBound parses a date bound, accepting full timestamps and bare
// dates. Empty input means no bound.
func parseBound(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	for _, layout := range []string{metadataDateLayout, time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			parsed = parsed.UTC()
			return &parsed, nil
		}
	}
	return nil, apperr.ValidationError("Unparseable date bound")
}
