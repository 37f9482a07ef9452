package schema

// The eight publication subtype tables come in two shapes. Container tables
// (proceedings, magazine, journal, book) carry the venue fields the harvester
// reads: publisher, place, volume. Child tables (conferencepaper,
// magazinearticle, journalarticle, booksection) carry pages, a short title,
// and the foreign key to their container. Columns not read by this service
// (isbn/issn, series, edition, ...) are intentionally not declared.

// ContainerSubtypeTable describes one of the four container subtype tables.
type ContainerSubtypeTable struct {
	Table            string
	PublicationPtrID string
	Publisher        string
	Place            string
	Volume           string
}

// ChildSubtypeTable describes one of the four child subtype tables.
type ChildSubtypeTable struct {
	Table            string
	PublicationPtrID string
	Pages            string
	ShortTitle       string
	ParentID         string
}

var PublicationsProceedings = ContainerSubtypeTable{
	Table:            "publications_proceedings",
	PublicationPtrID: "publication_ptr_id",
	Publisher:        "publisher",
	Place:            "place",
	Volume:           "volume",
}

var PublicationsMagazine = ContainerSubtypeTable{
	Table:            "publications_magazine",
	PublicationPtrID: "publication_ptr_id",
	Publisher:        "publisher",
	Place:            "place",
	Volume:           "volume",
}

var PublicationsJournal = ContainerSubtypeTable{
	Table:            "publications_journal",
	PublicationPtrID: "publication_ptr_id",
	Publisher:        "publisher",
	Place:            "place",
	Volume:           "volume",
}

var PublicationsBook = ContainerSubtypeTable{
	Table:            "publications_book",
	PublicationPtrID: "publication_ptr_id",
	Publisher:        "publisher",
	Place:            "place",
	Volume:           "volume",
}

var PublicationsConferencePaper = ChildSubtypeTable{
	Table:            "publications_conferencepaper",
	PublicationPtrID: "publication_ptr_id",
	Pages:            "pages",
	ShortTitle:       "short_title",
	ParentID:         "parent_proceedings_id",
}

var PublicationsMagazineArticle = ChildSubtypeTable{
	Table:            "publications_magazinearticle",
	PublicationPtrID: "publication_ptr_id",
	Pages:            "pages",
	ShortTitle:       "short_title",
	ParentID:         "parent_magazine_id",
}

var PublicationsJournalArticle = ChildSubtypeTable{
	Table:            "publications_journalarticle",
	PublicationPtrID: "publication_ptr_id",
	Pages:            "pages",
	ShortTitle:       "short_title",
	ParentID:         "parent_journal_id",
}

var PublicationsBookSection = ChildSubtypeTable{
	Table:            "publications_booksection",
	PublicationPtrID: "publication_ptr_id",
	Pages:            "pages",
	ShortTitle:       "short_title",
	ParentID:         "parent_book_id",
}
