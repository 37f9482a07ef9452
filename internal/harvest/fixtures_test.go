package harvest_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/taibuivan/scripta/internal/audit"
	"github.com/taibuivan/scripta/internal/catalog/language"
	"github.com/taibuivan/scripta/internal/catalog/person"
	"github.com/taibuivan/scripta/internal/catalog/publication"
	"github.com/taibuivan/scripta/internal/catalog/tag"
	"github.com/taibuivan/scripta/internal/catalog/thesis"
	"github.com/taibuivan/scripta/internal/harvest"
	"github.com/taibuivan/scripta/pkg/slug"
)

// In-memory repositories backing the harvest tests. They honor the same
// contracts as the Postgres implementations: ascending-id ordering,
// (nil, nil) on expected misses, and window arithmetic for theses.

func ptr[T any](v T) *T { return &v }

// # Publication repository

type fakePublicationRepo struct {
	rows       []*publication.Publication
	containers map[int64]*publication.Container
	children   map[int64]*publication.Child
}

func (repo *fakePublicationRepo) List(_ context.Context, filter publication.Filter) ([]*publication.Publication, error) {
	types := make(map[publication.ChildType]bool, len(filter.ChildTypes))
	for _, childType := range filter.ChildTypes {
		types[childType] = true
	}

	var out []*publication.Publication
	for _, row := range repo.rows {
		if filter.ID != nil && row.ID != *filter.ID {
			continue
		}
		if len(types) > 0 && !types[row.ChildType] {
			continue
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (repo *fakePublicationRepo) Count(context.Context) (int, error) {
	return len(repo.rows), nil
}

func (repo *fakePublicationRepo) EarliestYear(context.Context) (*int, error) {
	if len(repo.rows) == 0 {
		return nil, nil
	}
	year := repo.rows[0].Year
	for _, row := range repo.rows {
		if row.Year < year {
			year = row.Year
		}
	}
	return &year, nil
}

func (repo *fakePublicationRepo) ContainerRow(_ context.Context, childType publication.ChildType, id int64) (*publication.Container, error) {
	if !childType.IsContainer() {
		return nil, publication.ErrUnregisteredType(childType)
	}
	row := repo.containers[id]
	if row == nil || row.Type != childType {
		return nil, nil
	}
	return row, nil
}

func (repo *fakePublicationRepo) ChildRow(_ context.Context, childType publication.ChildType, id int64) (*publication.Child, error) {
	if !childType.Registered() || childType.IsContainer() {
		return nil, publication.ErrUnregisteredType(childType)
	}
	row := repo.children[id]
	if row == nil || row.Type != childType {
		return nil, nil
	}
	return row, nil
}

// # Thesis repository

type fakeThesisRepo struct {
	rows      []*thesis.Thesis
	abstracts map[int64][]*thesis.Abstract
}

func (repo *fakeThesisRepo) List(_ context.Context, filter thesis.Filter) ([]*thesis.Thesis, error) {
	var out []*thesis.Thesis
	for _, row := range repo.rows {
		if filter.ID != nil && row.ID != *filter.ID {
			continue
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit >= 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (repo *fakeThesisRepo) Count(context.Context) (int, error) {
	return len(repo.rows), nil
}

func (repo *fakeThesisRepo) EarliestYear(context.Context) (*int, error) {
	if len(repo.rows) == 0 {
		return nil, nil
	}
	year := repo.rows[0].Year
	for _, row := range repo.rows {
		if row.Year < year {
			year = row.Year
		}
	}
	return &year, nil
}

func (repo *fakeThesisRepo) Abstracts(_ context.Context, thesisID int64) ([]*thesis.Abstract, error) {
	return repo.abstracts[thesisID], nil
}

// # People, tags, languages

type fakePersonRepo struct {
	people        map[int64]*person.Person
	byPublication map[int64][]int64
}

func (repo *fakePersonRepo) Get(_ context.Context, id int64) (*person.Person, error) {
	return repo.people[id], nil
}

func (repo *fakePersonRepo) ListByPublication(_ context.Context, publicationID int64) ([]*person.Person, error) {
	var out []*person.Person
	for _, id := range repo.byPublication[publicationID] {
		if row := repo.people[id]; row != nil {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeTagRepo struct {
	tags          map[int64]*tag.Tag
	byPublication map[int64][]int64
}

func (repo *fakeTagRepo) List(context.Context) ([]*tag.Tag, error) {
	var out []*tag.Tag
	for _, row := range repo.tags {
		out = append(out, row)
	}
	return out, nil
}

func (repo *fakeTagRepo) ListByPublication(_ context.Context, publicationID int64) ([]*tag.Tag, error) {
	var out []*tag.Tag
	for _, id := range repo.byPublication[publicationID] {
		if row := repo.tags[id]; row != nil {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeLanguageRepo struct {
	languages map[int64]*language.Language
}

func (repo *fakeLanguageRepo) Get(_ context.Context, id int64) (*language.Language, error) {
	return repo.languages[id], nil
}

func (repo *fakeLanguageRepo) List(context.Context) ([]*language.Language, error) {
	var out []*language.Language
	for _, row := range repo.languages {
		out = append(out, row)
	}
	return out, nil
}

// # Audit repository

type fakeAuditRepo struct {
	contentTypes map[string]*audit.ContentType
	entries      []*audit.Entry
}

func (repo *fakeAuditRepo) ContentType(_ context.Context, appLabel, model string) (*audit.ContentType, error) {
	return repo.contentTypes[appLabel+"."+model], nil
}

func (repo *fakeAuditRepo) LatestAction(_ context.Context, refs []audit.Ref) (*time.Time, error) {
	var latest *time.Time
	for _, entry := range repo.entries {
		for _, ref := range refs {
			if entry.ContentTypeID != ref.ContentTypeID || entry.ObjectID != ref.ObjectID {
				continue
			}
			if latest == nil || entry.ActionTime.After(*latest) {
				actionTime := entry.ActionTime
				latest = &actionTime
			}
		}
	}
	return latest, nil
}

func (repo *fakeAuditRepo) EntriesFor(_ context.Context, ref audit.Ref, limit int) ([]*audit.Entry, error) {
	var out []*audit.Entry
	for _, entry := range repo.entries {
		if entry.ContentTypeID == ref.ContentTypeID && entry.ObjectID == ref.ObjectID {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ActionTime.After(out[j].ActionTime) })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// # Harness

// harness bundles a harvest service wired onto empty in-memory
// repositories. Tests populate the repositories directly, then call the
// service.
type harness struct {
	publications *fakePublicationRepo
	theses       *fakeThesisRepo
	people       *fakePersonRepo
	tags         *fakeTagRepo
	languages    *fakeLanguageRepo
	audits       *fakeAuditRepo

	tracker     *harvest.Tracker
	synthesizer *harvest.Synthesizer
	service     *harvest.Service
}

// cmsContentTypes registers the entity families the CMS audit log knows
// about, mirroring the production registry.
func cmsContentTypes() map[string]*audit.ContentType {
	families := []string{
		"publications.publication",
		"publications.thesis",
		"publications.thesisabstract",
		"publications.journal",
		"publications.journalarticle",
		"publications.proceedings",
		"publications.conferencepaper",
		"publications.magazine",
		"publications.magazinearticle",
		"publications.book",
		"publications.booksection",
		"utils.language",
		"utils.tag",
		"persons.person",
	}

	registry := make(map[string]*audit.ContentType, len(families))
	for index, family := range families {
		appLabel, model, _ := strings.Cut(family, ".")
		registry[family] = &audit.ContentType{
			ID:       int64(index + 1),
			AppLabel: appLabel,
			Model:    model,
		}
	}
	return registry
}

func newHarness() *harness {
	h := &harness{
		publications: &fakePublicationRepo{
			containers: make(map[int64]*publication.Container),
			children:   make(map[int64]*publication.Child),
		},
		theses: &fakeThesisRepo{abstracts: make(map[int64][]*thesis.Abstract)},
		people: &fakePersonRepo{
			people:        make(map[int64]*person.Person),
			byPublication: make(map[int64][]int64),
		},
		tags: &fakeTagRepo{
			tags:          make(map[int64]*tag.Tag),
			byPublication: make(map[int64][]int64),
		},
		languages: &fakeLanguageRepo{languages: make(map[int64]*language.Language)},
		audits:    &fakeAuditRepo{contentTypes: cmsContentTypes()},
	}

	resolver := publication.NewResolver(h.publications)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	h.tracker = harvest.NewTracker(h.audits, resolver, h.people, h.tags, h.theses, harvest.NopModifiedCache{})
	h.synthesizer = harvest.NewSynthesizer(resolver, h.languages, h.people, h.tags, h.theses)
	h.service = harvest.NewService(h.publications, h.theses, h.tracker, h.synthesizer, logger)

	return h
}

// contentTypeID resolves a registered family's id, panicking on typos so
// fixture mistakes fail loudly.
func (h *harness) contentTypeID(family string) int64 {
	contentType := h.audits.contentTypes[family]
	if contentType == nil {
		panic(fmt.Sprintf("fixture references unregistered family %q", family))
	}
	return contentType.ID
}

// logEntry appends one audit event for the given family and object.
func (h *harness) logEntry(family string, objectID int64, actionTime time.Time) {
	h.audits.entries = append(h.audits.entries, &audit.Entry{
		ID:            int64(len(h.audits.entries) + 1),
		ActionTime:    actionTime,
		ContentTypeID: h.contentTypeID(family),
		ObjectID:      fmt.Sprintf("%d", objectID),
		ActionFlag:    "2",
	})
}

// addJournalArticle inserts a journal article publication with optional
// container linkage, returning the row.
func (h *harness) addJournalArticle(id int64, slug string, year int, parentID *int64) *publication.Publication {
	row := &publication.Publication{
		ID:        id,
		Title:     fmt.Sprintf("Article %d", id),
		Slug:      slug,
		Year:      year,
		ChildType: publication.TypeJournalArticle,
		Published: ptr(time.Date(year, time.March, 10, 9, 0, 0, 0, time.UTC)),
	}
	h.publications.rows = append(h.publications.rows, row)
	h.publications.children[id] = &publication.Child{
		PublicationID: id,
		Type:          publication.TypeJournalArticle,
		ParentID:      parentID,
	}
	return row
}

// tagFixture builds a tag row.
func tagFixture(id int64, name string) *tag.Tag {
	return &tag.Tag{ID: id, Name: name, Slug: slug.From(name)}
}

// journalFixture builds a journal container row.
func journalFixture(id int64, publisher string) *publication.Container {
	return &publication.Container{
		PublicationID: id,
		Type:          publication.TypeJournal,
		Publisher:     ptr(publisher),
	}
}

// thesisAbstracts builds abstract rows for a thesis in the given id order.
func thesisAbstracts(thesisID int64, ids ...int64) []*thesis.Abstract {
	out := make([]*thesis.Abstract, 0, len(ids))
	for _, id := range ids {
		out = append(out, &thesis.Abstract{
			ID:         id,
			ThesisID:   thesisID,
			LanguageID: 1,
			Text:       fmt.Sprintf("Abstract %d", id),
		})
	}
	return out
}

// addThesis inserts a thesis row with an author person.
func (h *harness) addThesis(id int64, slug string, year int, authorID int64) *thesis.Thesis {
	if h.people.people[authorID] == nil {
		h.people.people[authorID] = &person.Person{
			ID:       authorID,
			FullName: fmt.Sprintf("Author %d", authorID),
		}
	}
	row := &thesis.Thesis{
		ID:        id,
		Title:     fmt.Sprintf("Thesis %d", id),
		Slug:      slug,
		Year:      year,
		AuthorID:  authorID,
		AdvisorID: authorID,
	}
	h.theses.rows = append(h.theses.rows, row)
	return row
}
