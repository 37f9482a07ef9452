package thesis

import "time"

// Thesis represents one row of the thesis table. Theses are keyed
// independently from publications; the harvester merges both streams.
type Thesis struct {
	ID               int64      `json:"id"`
	Title            string     `json:"title"`
	AuthorID         int64      `json:"author_id"`
	Slug             string     `json:"slug"`
	AdvisorID        int64      `json:"advisor_id"`
	RegistrationDate *time.Time `json:"registration_date,omitempty"`
	Year             int        `json:"year"`
	MainLanguageID   *int64     `json:"main_language_id,omitempty"`
	PDF              *string    `json:"-"`
	NumberOfPages    *int       `json:"number_of_pages,omitempty"`
	VivaDate         time.Time  `json:"viva_date"`
	VivaOutcome      string     `json:"viva_outcome"`
	SpecialMention   *string    `json:"special_mention,omitempty"`
}

// Abstract is one multilingual abstract attached to a thesis.
type Abstract struct {
	ID         int64  `json:"id"`
	ThesisID   int64  `json:"thesis_id"`
	LanguageID int64  `json:"language_id"`
	Text       string `json:"abstract"`
}

// Filter narrows and windows a thesis scan. Offset/Limit apply at the
// storage layer in ascending id order; Limit < 0 means no limit.
type Filter struct {
	ID     *int64
	Offset int
	Limit  int
}
