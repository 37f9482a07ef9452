package schema

// PublicationsThesisAbstractTable represents the
// 'publications_thesisabstract' table — one row per (thesis, language).
type PublicationsThesisAbstractTable struct {
	Table      string
	ID         string
	ThesisID   string
	LanguageID string
	Abstract   string
}

// PublicationsThesisAbstract is the schema definition for publications_thesisabstract
var PublicationsThesisAbstract = PublicationsThesisAbstractTable{
	Table:      "publications_thesisabstract",
	ID:         "id",
	ThesisID:   "thesis_id",
	LanguageID: "language_id",
	Abstract:   "abstract",
}
