package schema

// PublicationsThesisTable represents the 'publications_thesis' table
type PublicationsThesisTable struct {
	Table            string
	ID               string
	Title            string
	AuthorID         string
	Slug             string
	AdvisorID        string
	RegistrationDate string
	Year             string
	MainLanguageID   string
	PDF              string
	NumberOfPages    string
	VivaDate         string
	VivaOutcome      string
	SpecialMention   string
}

// PublicationsThesis is the schema definition for publications_thesis
var PublicationsThesis = PublicationsThesisTable{
	Table:            "publications_thesis",
	ID:               "id",
	Title:            "title",
	AuthorID:         "author_id",
	Slug:             "slug",
	AdvisorID:        "advisor_id",
	RegistrationDate: "registration_date",
	Year:             "year",
	MainLanguageID:   "main_language_id",
	PDF:              "pdf",
	NumberOfPages:    "number_of_pages",
	VivaDate:         "viva_date",
	VivaOutcome:      "viva_outcome",
	SpecialMention:   "special_mention",
}

func (t PublicationsThesisTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.AuthorID, t.Slug, t.AdvisorID, t.RegistrationDate,
		t.Year, t.MainLanguageID, t.PDF, t.NumberOfPages, t.VivaDate,
		t.VivaOutcome, t.SpecialMention,
	}
}
