package publication

import (
	"fmt"
	"strings"
)

// ChildType is the discriminator stored in the publication base table. The
// nine recognized values are fixed by the upstream CMS; any other value is
// a data contract violation, not a supported state.
type ChildType string

const (
	TypeProceedings     ChildType = "Proceedings"
	TypeConferencePaper ChildType = "ConferencePaper"
	TypeMagazine        ChildType = "Magazine"
	TypeMagazineArticle ChildType = "MagazineArticle"
	TypeJournal         ChildType = "Journal"
	TypeJournalArticle  ChildType = "JournalArticle"
	TypeBook            ChildType = "Book"
	TypeBookSection     ChildType = "BookSection"
)

// Container is a row of one of the four container subtype tables
// (Proceedings, Magazine, Journal, Book).
type Container struct {
	PublicationID int64   `json:"publication_id"`
	Type          ChildType `json:"type"`
	Publisher     *string `json:"publisher,omitempty"`
	Place         *string `json:"place,omitempty"`
	Volume        *string `json:"volume,omitempty"`
}

// Child is a row of one of the four child subtype tables (ConferencePaper,
// MagazineArticle, JournalArticle, BookSection). ParentID references the
// container subtype row and may legitimately be absent.
type Child struct {
	PublicationID int64   `json:"publication_id"`
	Type          ChildType `json:"type"`
	Pages         *string `json:"pages,omitempty"`
	ShortTitle    *string `json:"short_title,omitempty"`
	ParentID      *int64  `json:"parent_id,omitempty"`
}

// Subtype is the resolved concrete subtype of a publication: exactly one of
// Container or Child is set, matching IsContainer of the Type.
type Subtype struct {
	Type      ChildType  `json:"type"`
	Container *Container `json:"container,omitempty"`
	Child     *Child     `json:"child,omitempty"`
}

// descriptor drives the subtype dispatch. Child types name the container
// type their parent foreign key references.
type descriptor struct {
	container bool
	parent    ChildType
}

var registry = map[ChildType]descriptor{
	TypeProceedings:     {container: true},
	TypeConferencePaper: {parent: TypeProceedings},
	TypeMagazine:        {container: true},
	TypeMagazineArticle: {parent: TypeMagazine},
	TypeJournal:         {container: true},
	TypeJournalArticle:  {parent: TypeJournal},
	TypeBook:            {container: true},
	TypeBookSection:     {parent: TypeBook},
}

// Registered reports whether t is one of the eight recognized subtypes.
func (t ChildType) Registered() bool {
	_, ok := registry[t]
	return ok
}

// IsContainer reports whether t is a container subtype.
func (t ChildType) IsContainer() bool {
	return registry[t].container
}

// ParentType returns the container type a child subtype references, and
// false for container subtypes and unregistered values.
func (t ChildType) ParentType() (ChildType, bool) {
	d, ok := registry[t]
	if !ok || d.container {
		return "", false
	}
	return d.parent, true
}

// ModelName returns the lowercase model identifier the audit log's
// content-type registry uses for this subtype (the table name with its
// app prefix removed).
func (t ChildType) ModelName() string {
	return strings.ToLower(string(t))
}

// ErrUnregisteredType reports a child_type value outside the registry.
// It signals a schema/data contract violation and is never swallowed.
func ErrUnregisteredType(t ChildType) error {
	return fmt.Errorf("publication: unregistered child_type %q", t)
}
