package schema

// PublicationsPublicationTable represents the 'publications_publication' table.
//
// ChildType is the discriminator column of the upstream CMS's multi-table
// inheritance: for every row here, exactly one row exists in the subtype
// table named by child_type, sharing the same primary key value.
type PublicationsPublicationTable struct {
	Table      string
	ID         string
	Title      string
	Slug       string
	Abstract   string
	DOI        string
	PDF        string
	LanguageID string
	Published  string
	Year       string
	Bibtex     string
	ChildType  string
	ZoteroKey  string
}

// PublicationsPublication is the schema definition for publications_publication
var PublicationsPublication = PublicationsPublicationTable{
	Table:      "publications_publication",
	ID:         "id",
	Title:      "title",
	Slug:       "slug",
	Abstract:   "abstract",
	DOI:        "doi",
	PDF:        "pdf",
	LanguageID: "language_id",
	Published:  "published",
	Year:       "year",
	Bibtex:     "bibtex",
	ChildType:  "child_type",
	ZoteroKey:  "zotero_key",
}

func (t PublicationsPublicationTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.Abstract, t.DOI, t.PDF, t.LanguageID,
		t.Published, t.Year, t.Bibtex, t.ChildType, t.ZoteroKey,
	}
}
