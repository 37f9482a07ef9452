package harvest

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/scripta/internal/catalog/publication"
	"github.com/taibuivan/scripta/internal/catalog/thesis"
	"github.com/taibuivan/scripta/internal/platform/constants"
)

// # Service Layer

// Service is the top-level harvesting operation: it merges the
// publication and thesis streams into one offset-addressable page under
// the query's date, identifier, and set filters.
//
// Ordering is ascending primary key within each stream, publications
// always before theses. This is not a global chronological merge; it
// keeps pagination derivable from the query alone, at the cost of not
// ordering by modification time across the two streams.
type Service struct {
	publicationRepo publication.Repository
	thesisRepo      thesis.Repository
	tracker         *Tracker
	synthesizer     *Synthesizer
	logger          *slog.Logger
}

// NewService constructs a harvest [Service] with its collaborators.
func NewService(
	publicationRepo publication.Repository,
	thesisRepo thesis.Repository,
	tracker *Tracker,
	synthesizer *Synthesizer,
	logger *slog.Logger,
) *Service {
	return &Service{
		publicationRepo: publicationRepo,
		thesisRepo:      thesisRepo,
		tracker:         tracker,
		synthesizer:     synthesizer,
		logger:          logger,
	}
}

// streamFilter is the outcome of reducing the query's three set filters
// against the fixed taxonomy. ChildTypes lists the publication subtypes
// that remain in play; an empty list skips the publication scan.
type streamFilter struct {
	childTypes    []publication.ChildType
	includeTheses bool
}

// resolveSetFilters reduces needed, allowed, and disallowed set ids to a
// per-stream filter. Needed and allowed both intersect the remaining
// universe; disallowed subtracts from it. Unknown set ids match no
// records and therefore narrow (or no-op) rather than error.
func resolveSetFilters(needed, allowed, disallowed []string) streamFilter {
	universe := make(map[string]bool, len(taxonomy))
	for _, set := range taxonomy {
		universe[set.ID] = true
	}

	intersect := func(wanted []string) {
		if len(wanted) == 0 {
			return
		}
		keep := make(map[string]bool, len(wanted))
		for _, id := range wanted {
			keep[id] = true
		}
		for id := range universe {
			if !keep[id] {
				delete(universe, id)
			}
		}
	}

	intersect(needed)
	intersect(allowed)
	for _, id := range disallowed {
		delete(universe, id)
	}

	filter := streamFilter{includeTheses: universe[SetThesis]}
	for _, set := range taxonomy {
		if set.ID != SetThesis && universe[set.ID] {
			filter.childTypes = append(filter.childTypes, publication.ChildType(set.ID))
		}
	}
	return filter
}

/*
Harvest produces one page of the merged feed.

Description: The publication stream is enumerated in full (ascending id)
so each candidate's derived modification instant can be computed before
date filtering; the page window is then cut from the filtered list. The
thesis stream is windowed at the storage layer first and date-filtered
after, so a thesis page may under-fill even when more matching theses
exist beyond the window. Callers paginate until an empty page rather
than treating a short page as the end of data.

Parameters:
  - context: context.Context
  - query: Query

Returns:
  - []*Record: The page, publications before theses, never nil
  - error: Repository failures (fail-fast; no partial pages)
*/
func (service *Service) Harvest(context context.Context, query Query) ([]*Record, error) {
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}
	batchSize := query.BatchSize
	if batchSize <= 0 {
		batchSize = constants.DefaultHarvestBatchSize
	}
	if batchSize > constants.MaxHarvestBatchSize {
		batchSize = constants.MaxHarvestBatchSize
	}

	// ── 1. Clamp the date window ──────────────────────────────────────
	now := time.Now().UTC()
	until := now
	if query.Until != nil && query.Until.Before(now) {
		until = *query.Until
	}

	// ── 2. Identifier filter ──────────────────────────────────────────
	// An unparsable identifier drops the filter instead of failing the
	// call. Long-standing feed behavior; the log line is the only trace.
	var idFilter *int64
	var wantIdentifier *string
	if query.Identifier != nil {
		if id, _, ok := ParseIdentifier(*query.Identifier); ok {
			idFilter = &id
			wantIdentifier = query.Identifier
		} else {
			service.logger.Warn("harvest_identifier_malformed", "identifier", *query.Identifier)
		}
	}

	// ── 3. Set filters ────────────────────────────────────────────────
	filter := resolveSetFilters(query.NeededSets, query.AllowedSets, query.DisallowedSets)

	scope := NewScope()
	records := make([]*Record, 0, batchSize)

	// ── 4. Publication stream ─────────────────────────────────────────
	publicationsEmitted := 0
	totalMatched := 0
	if len(filter.childTypes) > 0 {
		candidates, err := service.publicationRepo.List(context, publication.Filter{
			ID:         idFilter,
			ChildTypes: filter.childTypes,
		})
		if err != nil {
			return nil, err
		}

		type matchedPublication struct {
			row      *publication.Publication
			modified time.Time
		}
		matched := make([]matchedPublication, 0, len(candidates))
		for _, candidate := range candidates {
			modified, err := service.tracker.PublicationModified(context, scope, candidate)
			if err != nil {
				return nil, err
			}
			if modified.After(until) {
				continue
			}
			if query.From != nil && modified.Before(*query.From) {
				continue
			}
			matched = append(matched, matchedPublication{row: candidate, modified: modified})
		}
		totalMatched = len(matched)

		if offset < totalMatched {
			end := offset + batchSize
			if end > totalMatched {
				end = totalMatched
			}
			for _, match := range matched[offset:end] {
				recordID := FormatIdentifier(match.row.ID, match.row.Slug)

				// An identifier lookup matches the full id/slug pair; the
				// numeric storage filter alone cannot tell two streams'
				// colliding keys apart.
				if wantIdentifier != nil && recordID != *wantIdentifier {
					continue
				}

				metadata, err := service.synthesizer.Publication(context, match.row)
				if err != nil {
					return nil, err
				}
				records = append(records, &Record{
					ID:       recordID,
					Modified: match.modified,
					Metadata: metadata,
					Sets:     []string{Classify(match.row.ChildType)},
				})
				if wantIdentifier != nil {
					return records, nil
				}
			}
			publicationsEmitted = len(records)
		}
	}

	// ── 5. Thesis stream ──────────────────────────────────────────────
	thesisLimit := batchSize - publicationsEmitted
	if thesisLimit < 0 || !filter.includeTheses {
		thesisLimit = 0
	}
	thesisOffset := 0
	if publicationsEmitted == 0 && offset > totalMatched {
		thesisOffset = offset - totalMatched
	}

	if thesisLimit > 0 {
		theses, err := service.thesisRepo.List(context, thesis.Filter{
			ID:     idFilter,
			Offset: thesisOffset,
			Limit:  thesisLimit,
		})
		if err != nil {
			return nil, err
		}

		for _, row := range theses {
			modified, err := service.tracker.ThesisModified(context, scope, row)
			if err != nil {
				return nil, err
			}
			if modified.After(until) {
				continue
			}
			if query.From != nil && modified.Before(*query.From) {
				continue
			}

			recordID := FormatIdentifier(row.ID, row.Slug)
			if wantIdentifier != nil && recordID != *wantIdentifier {
				continue
			}

			metadata, err := service.synthesizer.Thesis(context, row)
			if err != nil {
				return nil, err
			}
			records = append(records, &Record{
				ID:       recordID,
				Modified: modified,
				Metadata: metadata,
				Sets:     []string{SetThesis},
			})
			if wantIdentifier != nil {
				return records, nil
			}
		}
	}

	return records, nil
}

/*
ListSets returns one page of the non-hidden set taxonomy.

Parameters:
  - offset: int
  - limit: int

Returns:
  - []Set: The page, in fixed taxonomy order
*/
func (service *Service) ListSets(offset, limit int) []Set {
	return ListSets(offset, limit)
}

/*
EarliestDatestamp reports the feed's earliest possible modification
instant: January 1st of the earliest publication or thesis year, or
January 1st 1970 when the repository is empty.

Parameters:
  - context: context.Context

Returns:
  - time.Time: The earliest datestamp
  - error: Repository failures
*/
func (service *Service) EarliestDatestamp(context context.Context) (time.Time, error) {
	year := 1970

	publicationYear, err := service.publicationRepo.EarliestYear(context)
	if err != nil {
		return time.Time{}, err
	}
	thesisYear, err := service.thesisRepo.EarliestYear(context)
	if err != nil {
		return time.Time{}, err
	}

	if publicationYear != nil {
		year = *publicationYear
	}
	if thesisYear != nil && (publicationYear == nil || *thesisYear < year) {
		year = *thesisYear
	}

	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), nil
}

// CountPublications reports the total publication count.
func (service *Service) CountPublications(context context.Context) (int, error) {
	return service.publicationRepo.Count(context)
}

// CountTheses reports the total thesis count.
func (service *Service) CountTheses(context context.Context) (int, error) {
	return service.thesisRepo.Count(context)
}
