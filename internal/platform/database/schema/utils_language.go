// Package schema declares descriptor structs for every table the service
// reads. The tables belong to the upstream content-management system and
// follow its <app>_<model> naming convention; this service never writes to
// them. Queries are assembled from these descriptors so that a column rename
// upstream is a one-line change here.
package schema

// UtilsLanguageTable represents the 'utils_language' table
type UtilsLanguageTable struct {
	Table       string
	ID          string
	Name        string
	Slug        string
	LanguageTag string
}

// UtilsLanguage is the schema definition for utils_language
var UtilsLanguage = UtilsLanguageTable{
	Table:       "utils_language",
	ID:          "id",
	Name:        "name",
	Slug:        "slug",
	LanguageTag: "language_tag",
}

func (t UtilsLanguageTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.LanguageTag}
}
