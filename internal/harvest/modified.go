package harvest

import (
	"context"
	"fmt"
	"time"

	"github.com/taibuivan/scripta/internal/audit"
	"github.com/taibuivan/scripta/internal/catalog/person"
	"github.com/taibuivan/scripta/internal/catalog/publication"
	"github.com/taibuivan/scripta/internal/catalog/tag"
	"github.com/taibuivan/scripta/internal/catalog/thesis"
	"github.com/taibuivan/scripta/internal/platform/constants"
)

// Tracker derives a record's authoritative last-modified instant from the
// audit log: the latest change event across the record itself and every
// entity it depends on, floored at January 1st of the record's year.
type Tracker struct {
	auditRepo  audit.Repository
	resolver   *publication.Resolver
	peopleRepo person.Repository
	tagRepo    tag.Repository
	thesisRepo thesis.Repository
	cache      ModifiedCache
}

// NewTracker constructs a [Tracker] with its required collaborators.
func NewTracker(
	auditRepo audit.Repository,
	resolver *publication.Resolver,
	peopleRepo person.Repository,
	tagRepo tag.Repository,
	thesisRepo thesis.Repository,
	cache ModifiedCache,
) *Tracker {
	return &Tracker{
		auditRepo:  auditRepo,
		resolver:   resolver,
		peopleRepo: peopleRepo,
		tagRepo:    tagRepo,
		thesisRepo: thesisRepo,
		cache:      cache,
	}
}

// Scope memoizes content-type registry lookups for the duration of one
// harvest call. The same handful of entity families recurs for every
// record on a page; without the scope each record would re-query the
// registry. It is created per call and discarded with it, never shared.
type Scope struct {
	contentTypes map[string]*audit.ContentType
}

// NewScope creates an empty per-call memoization scope.
func NewScope() *Scope {
	return &Scope{contentTypes: make(map[string]*audit.ContentType)}
}

// contentType resolves a CMS table name to its registry entry through the
// scope. A nil entry means the family is unregistered, which excludes it
// from the timestamp union without error.
func (tracker *Tracker) contentType(context context.Context, scope *Scope, tablename string) (*audit.ContentType, error) {
	if contentType, seen := scope.contentTypes[tablename]; seen {
		return contentType, nil
	}

	appLabel, model := audit.SplitFamily(tablename)
	contentType, err := tracker.auditRepo.ContentType(context, appLabel, model)
	if err != nil {
		return nil, err
	}

	scope.contentTypes[tablename] = contentType
	return contentType, nil
}

// familyRefs appends one audit ref per id for the given family, skipping
// the whole family when its content type is unregistered.
func (tracker *Tracker) familyRefs(context context.Context, scope *Scope, refs []audit.Ref, tablename string, ids []int64) ([]audit.Ref, error) {
	contentType, err := tracker.contentType(context, scope, tablename)
	if err != nil {
		return nil, err
	}
	if contentType == nil {
		return refs, nil
	}

	for _, id := range ids {
		refs = append(refs, audit.Ref{
			ContentTypeID: contentType.ID,
			ObjectID:      fmt.Sprintf("%d", id),
		})
	}
	return refs, nil
}

/*
PublicationModified computes the last-modified instant of a publication.

Description: The audit union covers the publication row, its resolved
container (under the record's own subtype family, keyed by the container's
primary key), its language (falling back to the default language id when
unset), every linked author, and every linked tag. The result is never
earlier than January 1st of the publication's year.

Parameters:
  - context: context.Context
  - scope: *Scope (Per-call memoization scope)
  - record: *publication.Publication

Returns:
  - time.Time: Naive instant carried as UTC
  - error: Repository failures
*/
func (tracker *Tracker) PublicationModified(context context.Context, scope *Scope, record *publication.Publication) (time.Time, error) {
	cacheKey := fmt.Sprintf("pub:%d", record.ID)
	if cached, hit := tracker.cache.Get(context, cacheKey); hit {
		return cached, nil
	}

	refs := make([]audit.Ref, 0, 8)

	// ── 1. The publication row itself ─────────────────────────────────
	refs, err := tracker.familyRefs(context, scope, refs, "publications_publication", []int64{record.ID})
	if err != nil {
		return time.Time{}, err
	}

	// ── 2. The resolved container, under the record's subtype family ──
	container, err := tracker.resolver.ResolveContainer(context, record.ChildType, record.ID)
	if err != nil {
		return time.Time{}, err
	}
	if container != nil {
		subtypeFamily := "publications_" + record.ChildType.ModelName()
		refs, err = tracker.familyRefs(context, scope, refs, subtypeFamily, []int64{container.PublicationID})
		if err != nil {
			return time.Time{}, err
		}
	}

	// ── 3. Language, defaulting when the reference is unset ───────────
	var languageID int64 = constants.DefaultLanguageID
	if record.LanguageID != nil {
		languageID = *record.LanguageID
	}
	refs, err = tracker.familyRefs(context, scope, refs, "utils_language", []int64{languageID})
	if err != nil {
		return time.Time{}, err
	}

	// ── 4. Authors ─────────────────────────────────────────────────────
	authors, err := tracker.peopleRepo.ListByPublication(context, record.ID)
	if err != nil {
		return time.Time{}, err
	}
	authorIDs := make([]int64, 0, len(authors))
	for _, author := range authors {
		authorIDs = append(authorIDs, author.ID)
	}
	refs, err = tracker.familyRefs(context, scope, refs, "persons_person", authorIDs)
	if err != nil {
		return time.Time{}, err
	}

	// ── 5. Tags ────────────────────────────────────────────────────────
	tags, err := tracker.tagRepo.ListByPublication(context, record.ID)
	if err != nil {
		return time.Time{}, err
	}
	tagIDs := make([]int64, 0, len(tags))
	for _, linkedTag := range tags {
		tagIDs = append(tagIDs, linkedTag.ID)
	}
	refs, err = tracker.familyRefs(context, scope, refs, "utils_tag", tagIDs)
	if err != nil {
		return time.Time{}, err
	}

	modified, err := tracker.latest(context, record.Year, refs)
	if err != nil {
		return time.Time{}, err
	}

	tracker.cache.Set(context, cacheKey, modified)
	return modified, nil
}

/*
ThesisModified computes the last-modified instant of a thesis.

Description: The audit union covers the thesis row, its main language
(with the default-language fallback), its author and advisor, and every
abstract row. The result is never earlier than January 1st of the
thesis's year.

Parameters:
  - context: context.Context
  - scope: *Scope
  - record: *thesis.Thesis

Returns:
  - time.Time: Naive instant carried as UTC
  - error: Repository failures
*/
func (tracker *Tracker) ThesisModified(context context.Context, scope *Scope, record *thesis.Thesis) (time.Time, error) {
	cacheKey := fmt.Sprintf("th:%d", record.ID)
	if cached, hit := tracker.cache.Get(context, cacheKey); hit {
		return cached, nil
	}

	refs := make([]audit.Ref, 0, 6)

	refs, err := tracker.familyRefs(context, scope, refs, "publications_thesis", []int64{record.ID})
	if err != nil {
		return time.Time{}, err
	}

	var languageID int64 = constants.DefaultLanguageID
	if record.MainLanguageID != nil {
		languageID = *record.MainLanguageID
	}
	refs, err = tracker.familyRefs(context, scope, refs, "utils_language", []int64{languageID})
	if err != nil {
		return time.Time{}, err
	}

	refs, err = tracker.familyRefs(context, scope, refs, "persons_person", []int64{record.AuthorID, record.AdvisorID})
	if err != nil {
		return time.Time{}, err
	}

	abstracts, err := tracker.thesisRepo.Abstracts(context, record.ID)
	if err != nil {
		return time.Time{}, err
	}
	abstractIDs := make([]int64, 0, len(abstracts))
	for _, abstract := range abstracts {
		abstractIDs = append(abstractIDs, abstract.ID)
	}
	refs, err = tracker.familyRefs(context, scope, refs, "publications_thesisabstract", abstractIDs)
	if err != nil {
		return time.Time{}, err
	}

	modified, err := tracker.latest(context, record.Year, refs)
	if err != nil {
		return time.Time{}, err
	}

	tracker.cache.Set(context, cacheKey, modified)
	return modified, nil
}

// latest reduces the ref union to one instant: the most recent audit
// action time, stripped to a naive instant, as long as it beats the
// year floor.
func (tracker *Tracker) latest(context context.Context, year int, refs []audit.Ref) (time.Time, error) {
	floor := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	if len(refs) == 0 {
		return floor, nil
	}

	latest, err := tracker.auditRepo.LatestAction(context, refs)
	if err != nil {
		return time.Time{}, err
	}
	if latest == nil {
		return floor, nil
	}

	stripped := stripZone(*latest)
	if stripped.After(floor) {
		return stripped, nil
	}
	return floor, nil
}

// stripZone discards the timezone component of an audit timestamp,
// keeping its wall-clock fields as a naive instant carried in UTC. The
// audit source records offsets inconsistently; comparing wall clocks
// matches how the feed has always ordered changes.
func stripZone(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
