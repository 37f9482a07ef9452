package reference

import (
	"context"

	"github.com/taibuivan/scripta/internal/catalog/language"
	"github.com/taibuivan/scripta/internal/catalog/person"
	"github.com/taibuivan/scripta/internal/catalog/tag"
	"github.com/taibuivan/scripta/internal/platform/apperr"
	"github.com/taibuivan/scripta/pkg/pagination"
)

// # Service Layer

// Service exposes the catalog's master data for browsing: languages,
// tags, and people. It reads the same repositories the harvesting
// engine uses; nothing here writes.
type Service struct {
	languageRepo language.Repository
	tagRepo      tag.Repository
	peopleRepo   person.Repository
}

// NewService constructs a reference [Service] with its repositories.
func NewService(languageRepo language.Repository, tagRepo tag.Repository, peopleRepo person.Repository) *Service {
	return &Service{
		languageRepo: languageRepo,
		tagRepo:      tagRepo,
		peopleRepo:   peopleRepo,
	}
}

/*
ListLanguages retrieves every language in the catalog.

Parameters:
  - context: context.Context

Returns:
  - []*language.Language: All languages
  - error: Repository failures
*/
func (service *Service) ListLanguages(context context.Context) ([]*language.Language, error) {
	return service.languageRepo.List(context)
}

/*
GetLanguage fetches one language by primary key.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *language.Language: The language
  - error: apperr.NotFound when no row exists
*/
func (service *Service) GetLanguage(context context.Context, id int64) (*language.Language, error) {
	row, err := service.languageRepo.Get(context, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperr.NotFound("Language")
	}
	return row, nil
}

/*
ListTags retrieves one page of the subject tag list.

The tag table is the only reference table large enough to need paging,
so it windows in the service after the repository read.

Parameters:
  - context: context.Context
  - params: pagination.Params

Returns:
  - []*tag.Tag: The requested page
  - int: Total tag count across all pages
  - error: Repository failures
*/
func (service *Service) ListTags(context context.Context, params pagination.Params) ([]*tag.Tag, int, error) {
	rows, err := service.tagRepo.List(context)
	if err != nil {
		return nil, 0, err
	}

	total := len(rows)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}

	return rows[start:end], total, nil
}

/*
GetPerson fetches one person by primary key.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *person.Person: The person
  - error: apperr.NotFound when no row exists
*/
func (service *Service) GetPerson(context context.Context, id int64) (*person.Person, error) {
	row, err := service.peopleRepo.Get(context, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperr.NotFound("Person")
	}
	return row, nil
}
