package schema

// PublicationsPublicationTagTable represents the
// 'publications_publicationtag' join table (unordered).
type PublicationsPublicationTagTable struct {
	Table         string
	ID            string
	TagID         string
	PublicationID string
}

// PublicationsPublicationTag is the schema definition for publications_publicationtag
var PublicationsPublicationTag = PublicationsPublicationTagTable{
	Table:         "publications_publicationtag",
	ID:            "id",
	TagID:         "tag_id",
	PublicationID: "publication_id",
}
