package harvest

import (
	"context"
	"time"

	"github.com/taibuivan/scripta/internal/catalog/language"
	"github.com/taibuivan/scripta/internal/catalog/person"
	"github.com/taibuivan/scripta/internal/catalog/publication"
	"github.com/taibuivan/scripta/internal/catalog/tag"
	"github.com/taibuivan/scripta/internal/catalog/thesis"
	"github.com/taibuivan/scripta/internal/platform/constants"
	"github.com/taibuivan/scripta/pkg/sanitize"
)

// metadataDateLayout is the wire format for the date key.
const metadataDateLayout = "2006-01-02T15:04:05Z"

// Synthesizer assembles the attribute-list metadata of one record from
// the catalog tables. Every free-text value passes through
// [sanitize.Text] before insertion; the synthesizer does no further
// escaping, so missing that step would leak raw control characters into
// the feed.
type Synthesizer struct {
	resolver     *publication.Resolver
	languageRepo language.Repository
	peopleRepo   person.Repository
	tagRepo      tag.Repository
	thesisRepo   thesis.Repository
}

// NewSynthesizer constructs a [Synthesizer] with its required collaborators.
func NewSynthesizer(
	resolver *publication.Resolver,
	languageRepo language.Repository,
	peopleRepo person.Repository,
	tagRepo tag.Repository,
	thesisRepo thesis.Repository,
) *Synthesizer {
	return &Synthesizer{
		resolver:     resolver,
		languageRepo: languageRepo,
		peopleRepo:   peopleRepo,
		tagRepo:      tagRepo,
		thesisRepo:   thesisRepo,
	}
}

/*
Publication synthesizes the metadata record of a publication.

Description: Keys with no applicable values are omitted entirely. The
language key defaults to the fallback tag when the publication has no
language reference; a reference whose language row or tag is missing
omits the key instead.

Parameters:
  - context: context.Context
  - record: *publication.Publication

Returns:
  - Metadata: The synthesized attribute list
  - error: Repository failures
*/
func (synthesizer *Synthesizer) Publication(context context.Context, record *publication.Publication) (Metadata, error) {
	metadata := Metadata{
		"title":  {sanitize.Text(record.Title)},
		"format": {"digital"},
		"type":   {string(record.ChildType)},
	}

	if record.Published != nil {
		metadata["date"] = []string{record.Published.UTC().Format(metadataDateLayout)}
	}

	publisher, err := synthesizer.resolver.Publisher(context, record.ChildType, record.ID)
	if err != nil {
		return nil, err
	}
	if publisher != nil {
		metadata["publisher"] = []string{*publisher}
	}

	if record.Abstract != nil {
		metadata["description"] = []string{sanitize.Text(*record.Abstract)}
	}

	if record.LanguageID != nil {
		recordLanguage, err := synthesizer.languageRepo.Get(context, *record.LanguageID)
		if err != nil {
			return nil, err
		}
		if recordLanguage != nil && recordLanguage.LanguageTag != nil {
			metadata["language"] = []string{*recordLanguage.LanguageTag}
		}
	} else {
		metadata["language"] = []string{constants.FallbackLanguageTag}
	}

	authors, err := synthesizer.peopleRepo.ListByPublication(context, record.ID)
	if err != nil {
		return nil, err
	}
	if len(authors) > 0 {
		creators := make([]string, 0, len(authors))
		for _, author := range authors {
			creators = append(creators, author.FullName)
		}
		metadata["creator"] = creators
	}

	tags, err := synthesizer.tagRepo.ListByPublication(context, record.ID)
	if err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		subjects := make([]string, 0, len(tags))
		for _, linkedTag := range tags {
			subjects = append(subjects, linkedTag.Name)
		}
		metadata["subject"] = subjects
	}

	return metadata, nil
}

/*
Thesis synthesizes the metadata record of a thesis.

Description: Every thesis is typed as a doctoral dissertation. The date
key comes from the registration date and is omitted when unset; the
description key carries all abstracts, normalized, in retrieval order.

Parameters:
  - context: context.Context
  - record: *thesis.Thesis

Returns:
  - Metadata: The synthesized attribute list
  - error: Repository failures
*/
func (synthesizer *Synthesizer) Thesis(context context.Context, record *thesis.Thesis) (Metadata, error) {
	metadata := Metadata{
		"type":   {"doctoral dissertation"},
		"format": {"digital"},
		"title":  {sanitize.Text(record.Title)},
	}

	if record.RegistrationDate != nil {
		metadata["date"] = []string{record.RegistrationDate.UTC().Format(metadataDateLayout)}
	}

	author, err := synthesizer.peopleRepo.Get(context, record.AuthorID)
	if err != nil {
		return nil, err
	}
	if author != nil {
		metadata["creator"] = []string{author.FullName}
	}

	if record.MainLanguageID != nil {
		mainLanguage, err := synthesizer.languageRepo.Get(context, *record.MainLanguageID)
		if err != nil {
			return nil, err
		}
		if mainLanguage != nil && mainLanguage.LanguageTag != nil {
			metadata["language"] = []string{*mainLanguage.LanguageTag}
		}
	}

	abstracts, err := synthesizer.thesisRepo.Abstracts(context, record.ID)
	if err != nil {
		return nil, err
	}
	if len(abstracts) > 0 {
		descriptions := make([]string, 0, len(abstracts))
		for _, abstract := range abstracts {
			descriptions = append(descriptions, sanitize.Text(abstract.Text))
		}
		metadata["description"] = descriptions
	}

	return metadata, nil
}

// formatDatestamp renders an earliest-datestamp instant for feed
// discovery responses.
func formatDatestamp(t time.Time) string {
	return t.UTC().Format(metadataDateLayout)
}
