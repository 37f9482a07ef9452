package harvest

import "github.com/taibuivan/scripta/internal/catalog/publication"

// Set is one entry of the fixed feed taxonomy. Hidden sets exist for
// internal classification and are excluded from discovery listings.
type Set struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Hidden      bool   `json:"-"`
}

// SetThesis is the set id carried by every thesis record. Publication
// records carry the set id equal to their subtype discriminator.
const SetThesis = "Thesis"

// taxonomy is the fixed nine-entry set table, loaded once and never
// mutated. Order here is the order ListSets pages through.
var taxonomy = []Set{
	{ID: string(publication.TypeProceedings), Name: "Proceedings", Description: "Conference proceedings volumes"},
	{ID: string(publication.TypeConferencePaper), Name: "Conference papers", Description: "Papers published in conference proceedings"},
	{ID: string(publication.TypeMagazine), Name: "Magazines", Description: "Magazine issues"},
	{ID: string(publication.TypeMagazineArticle), Name: "Magazine articles", Description: "Articles published in magazines"},
	{ID: string(publication.TypeJournal), Name: "Journals", Description: "Academic journal issues"},
	{ID: string(publication.TypeJournalArticle), Name: "Journal articles", Description: "Articles published in academic journals"},
	{ID: string(publication.TypeBook), Name: "Books", Description: "Monographs and edited volumes"},
	{ID: string(publication.TypeBookSection), Name: "Book sections", Description: "Chapters and sections of books"},
	{ID: SetThesis, Name: "Theses", Description: "Doctoral dissertations"},
}

// Classify returns the set id for a publication subtype. The discriminator
// is validated by the subtype registry before any record reaches this
// point, so an unregistered value here is a programming error and panics.
func Classify(childType publication.ChildType) string {
	if !childType.Registered() {
		panic(publication.ErrUnregisteredType(childType))
	}
	return string(childType)
}

// ListSets returns one page of the non-hidden taxonomy in fixed order.
// Offsets past the end yield an empty page.
func ListSets(offset, limit int) []Set {
	visible := make([]Set, 0, len(taxonomy))
	for _, set := range taxonomy {
		if !set.Hidden {
			visible = append(visible, set)
		}
	}

	if offset < 0 {
		offset = 0
	}
	if offset >= len(visible) || limit <= 0 {
		return []Set{}
	}
	end := offset + limit
	if end > len(visible) {
		end = len(visible)
	}
	return visible[offset:end]
}

// CountSets returns the total number of sets in the taxonomy, hidden
// entries included.
func CountSets() int {
	return len(taxonomy)
}
