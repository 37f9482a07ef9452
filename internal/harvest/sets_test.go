package harvest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/scripta/internal/catalog/publication"
	"github.com/taibuivan/scripta/internal/harvest"
)

/*
TestSets_ClassifyCoversAllSubtypes verifies that every registered
publication subtype maps to a set id equal to its discriminator.
*/
func TestSets_ClassifyCoversAllSubtypes(t *testing.T) {
	subtypes := []publication.ChildType{
		publication.TypeProceedings,
		publication.TypeConferencePaper,
		publication.TypeMagazine,
		publication.TypeMagazineArticle,
		publication.TypeJournal,
		publication.TypeJournalArticle,
		publication.TypeBook,
		publication.TypeBookSection,
	}

	for _, subtype := range subtypes {
		assert.Equal(t, string(subtype), harvest.Classify(subtype))
	}
}

/*
TestSets_ClassifyPanicsOnUnregistered verifies that an unknown
discriminator fails loudly instead of being silently classified.
*/
func TestSets_ClassifyPanicsOnUnregistered(t *testing.T) {
	assert.Panics(t, func() {
		harvest.Classify(publication.ChildType("Podcast"))
	})
}

/*
TestSets_ListSetsWindow verifies pagination over the fixed taxonomy.
*/
func TestSets_ListSetsWindow(t *testing.T) {
	t.Run("full listing", func(t *testing.T) {
		sets := harvest.ListSets(0, 100)
		assert.Len(t, sets, 9)
		assert.Equal(t, string(publication.TypeProceedings), sets[0].ID)
		assert.Equal(t, harvest.SetThesis, sets[8].ID)
	})

	t.Run("window inside the taxonomy", func(t *testing.T) {
		sets := harvest.ListSets(2, 3)
		assert.Len(t, sets, 3)
		assert.Equal(t, string(publication.TypeMagazine), sets[0].ID)
	})

	t.Run("window past the end", func(t *testing.T) {
		assert.Empty(t, harvest.ListSets(9, 5))
		assert.Empty(t, harvest.ListSets(100, 5))
	})

	t.Run("window clipped at the end", func(t *testing.T) {
		sets := harvest.ListSets(7, 20)
		assert.Len(t, sets, 2)
	})

	t.Run("degenerate limits", func(t *testing.T) {
		assert.Empty(t, harvest.ListSets(0, 0))
		assert.Empty(t, harvest.ListSets(0, -1))
	})
}

/*
TestSets_Count verifies the taxonomy size.
*/
func TestSets_Count(t *testing.T) {
	assert.Equal(t, 9, harvest.CountSets())
}
