package publication

import "time"

// Publication represents one row of the publication base table. Every row
// has exactly one concrete subtype row (same primary key) in the table
// named by ChildType; see subtype.go for the registry.
type Publication struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Slug       string     `json:"slug"`
	Abstract   *string    `json:"abstract,omitempty"`
	DOI        *string    `json:"doi,omitempty"`
	PDF        *string    `json:"-"`
	LanguageID *int64     `json:"language_id,omitempty"`
	Published  *time.Time `json:"published,omitempty"`
	Year       int        `json:"year"`
	Bibtex     *string    `json:"-"`
	ChildType  ChildType  `json:"child_type"`
	ZoteroKey  *string    `json:"-"`
}

// Filter narrows a publication scan. A nil ID matches every row; an empty
// ChildTypes slice matches every subtype.
type Filter struct {
	ID         *int64
	ChildTypes []ChildType
}
