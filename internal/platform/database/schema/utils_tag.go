package schema

// UtilsTagTable represents the 'utils_tag' table
type UtilsTagTable struct {
	Table string
	ID    string
	Name  string
	Slug  string
}

// UtilsTag is the schema definition for utils_tag
var UtilsTag = UtilsTagTable{
	Table: "utils_tag",
	ID:    "id",
	Name:  "name",
	Slug:  "slug",
}

func (t UtilsTagTable) Columns() []string { return []string{t.ID, t.Name, t.Slug} }
