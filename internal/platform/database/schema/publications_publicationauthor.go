package schema

// PublicationsPublicationAuthorTable represents the
// 'publications_publicationauthor' join table. Position carries the
// author order as entered upstream, not an alphabetic order.
type PublicationsPublicationAuthorTable struct {
	Table         string
	ID            string
	AuthorID      string
	PublicationID string
	Position      string
}

// PublicationsPublicationAuthor is the schema definition for publications_publicationauthor
var PublicationsPublicationAuthor = PublicationsPublicationAuthorTable{
	Table:         "publications_publicationauthor",
	ID:            "id",
	AuthorID:      "author_id",
	PublicationID: "publication_id",
	Position:      "position",
}
