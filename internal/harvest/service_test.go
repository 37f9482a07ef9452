package harvest_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scripta/internal/harvest"
)

// seedMixedFeed populates five publications and three theses, all quiet
// in the audit log so their modified instants fall back to year floors
// safely in the past.
func seedMixedFeed(h *harness) {
	h.addJournalArticle(1, "article-one", 2015, nil)
	h.addJournalArticle(2, "article-two", 2016, nil)
	h.addJournalArticle(3, "article-three", 2017, nil)
	h.addJournalArticle(4, "article-four", 2018, nil)
	h.addJournalArticle(5, "article-five", 2019, nil)

	h.addThesis(1, "thesis-one", 2015, 90)
	h.addThesis(2, "thesis-two", 2016, 91)
	h.addThesis(3, "thesis-three", 2017, 92)
}

// harvestIDs runs one harvest call and returns the emitted identifiers.
func harvestIDs(t *testing.T, h *harness, query harvest.Query) []string {
	t.Helper()

	records, err := h.service.Harvest(context.Background(), query)
	require.NoError(t, err)

	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}
	return ids
}

/*
TestHarvest_PublicationsBeforeTheses verifies the fixed stream order and
ascending ids within each stream.
*/
func TestHarvest_PublicationsBeforeTheses(t *testing.T) {
	h := newHarness()
	seedMixedFeed(h)

	ids := harvestIDs(t, h, harvest.Query{BatchSize: 100})

	assert.Equal(t, []string{
		"1/article-one",
		"2/article-two",
		"3/article-three",
		"4/article-four",
		"5/article-five",
		"1/thesis-one",
		"2/thesis-two",
		"3/thesis-three",
	}, ids)
}

/*
TestHarvest_PaginationCoverage verifies that paging until an empty page
yields exactly the full-feed set, without duplicates, across the stream
boundary.
*/
func TestHarvest_PaginationCoverage(t *testing.T) {
	h := newHarness()
	seedMixedFeed(h)

	full := harvestIDs(t, h, harvest.Query{BatchSize: 100})

	for _, batchSize := range []int{1, 2, 3, 5, 8} {
		var paged []string
		for offset := 0; ; offset += batchSize {
			page := harvestIDs(t, h, harvest.Query{Offset: offset, BatchSize: batchSize})
			if len(page) == 0 {
				break
			}
			paged = append(paged, page...)
		}
		assert.Equal(t, full, paged, "batch size %d", batchSize)
	}
}

/*
TestHarvest_IdentifierLookup verifies the single-record identifier
filter: at most one record, matching the requested id/slug pair, at any
offset and batch size.
*/
func TestHarvest_IdentifierLookup(t *testing.T) {
	h := newHarness()
	seedMixedFeed(h)

	t.Run("publication hit", func(t *testing.T) {
		ids := harvestIDs(t, h, harvest.Query{BatchSize: 100, Identifier: ptr("3/article-three")})
		assert.Equal(t, []string{"3/article-three"}, ids)
	})

	t.Run("thesis hit despite key collision", func(t *testing.T) {
		// Publication 3 and thesis 3 share a numeric key; the slug picks
		// the thesis.
		ids := harvestIDs(t, h, harvest.Query{BatchSize: 100, Identifier: ptr("3/thesis-three")})
		assert.Equal(t, []string{"3/thesis-three"}, ids)
	})

	t.Run("unknown id", func(t *testing.T) {
		assert.Empty(t, harvestIDs(t, h, harvest.Query{BatchSize: 100, Identifier: ptr("999/ghost")}))
	})

	t.Run("malformed identifier drops the filter", func(t *testing.T) {
		ids := harvestIDs(t, h, harvest.Query{BatchSize: 100, Identifier: ptr("not-an-identifier")})
		assert.Len(t, ids, 8)
	})
}

/*
TestHarvest_SetFilters verifies needed/allowed/disallowed set algebra
across the two streams.
*/
func TestHarvest_SetFilters(t *testing.T) {
	h := newHarness()
	seedMixedFeed(h)

	t.Run("needed excludes the thesis stream", func(t *testing.T) {
		ids := harvestIDs(t, h, harvest.Query{
			BatchSize:  100,
			NeededSets: []string{"JournalArticle"},
		})
		assert.Len(t, ids, 5)
		for _, id := range ids {
			assert.NotContains(t, id, "thesis")
		}
	})

	t.Run("needed thesis only", func(t *testing.T) {
		ids := harvestIDs(t, h, harvest.Query{
			BatchSize:  100,
			NeededSets: []string{harvest.SetThesis},
		})
		assert.Equal(t, []string{"1/thesis-one", "2/thesis-two", "3/thesis-three"}, ids)
	})

	t.Run("disallowed removes one stream", func(t *testing.T) {
		ids := harvestIDs(t, h, harvest.Query{
			BatchSize:      100,
			DisallowedSets: []string{harvest.SetThesis},
		})
		assert.Len(t, ids, 5)
	})

	t.Run("allowed intersects with needed", func(t *testing.T) {
		ids := harvestIDs(t, h, harvest.Query{
			BatchSize:   100,
			NeededSets:  []string{"JournalArticle", harvest.SetThesis},
			AllowedSets: []string{harvest.SetThesis},
		})
		assert.Equal(t, []string{"1/thesis-one", "2/thesis-two", "3/thesis-three"}, ids)
	})

	t.Run("unknown set id matches nothing", func(t *testing.T) {
		assert.Empty(t, harvestIDs(t, h, harvest.Query{
			BatchSize:  100,
			NeededSets: []string{"Podcast"},
		}))
	})
}

/*
TestHarvest_DateWindow verifies from/until filtering against derived
modified instants, including the until clamp to now.
*/
func TestHarvest_DateWindow(t *testing.T) {
	h := newHarness()
	seedMixedFeed(h)

	// Floors: publications 2015..2019, theses 2015..2017, all Jan 1st.
	t.Run("from bound", func(t *testing.T) {
		ids := harvestIDs(t, h, harvest.Query{
			BatchSize: 100,
			From:      ptr(time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC)),
		})
		assert.Equal(t, []string{
			"3/article-three",
			"4/article-four",
			"5/article-five",
			"3/thesis-three",
		}, ids)
	})

	t.Run("until bound", func(t *testing.T) {
		ids := harvestIDs(t, h, harvest.Query{
			BatchSize: 100,
			Until:     ptr(time.Date(2016, time.June, 1, 0, 0, 0, 0, time.UTC)),
		})
		assert.Equal(t, []string{
			"1/article-one",
			"2/article-two",
			"1/thesis-one",
			"2/thesis-two",
		}, ids)
	})

	t.Run("future until clamps to now", func(t *testing.T) {
		ids := harvestIDs(t, h, harvest.Query{
			BatchSize: 100,
			Until:     ptr(time.Now().UTC().Add(24 * time.Hour)),
		})
		assert.Len(t, ids, 8)
	})
}

/*
TestHarvest_ThesisUnderFill verifies that date filtering after the
storage window can shorten a thesis page even when more matching theses
exist beyond it.
*/
func TestHarvest_ThesisUnderFill(t *testing.T) {
	h := newHarness()
	h.addThesis(1, "thesis-one", 2015, 90)
	h.addThesis(2, "thesis-two", 2016, 91)
	h.addThesis(3, "thesis-three", 2017, 92)

	// The window selects theses 1 and 2 but the from bound strikes
	// thesis 1, so the page holds a single record even though thesis 3
	// also matches the date range.
	ids := harvestIDs(t, h, harvest.Query{
		BatchSize: 2,
		From:      ptr(time.Date(2016, time.January, 1, 0, 0, 0, 0, time.UTC)),
	})
	assert.Equal(t, []string{"2/thesis-two"}, ids)

	// The next window surfaces the remaining match.
	ids = harvestIDs(t, h, harvest.Query{
		Offset:    2,
		BatchSize: 2,
		From:      ptr(time.Date(2016, time.January, 1, 0, 0, 0, 0, time.UTC)),
	})
	assert.Equal(t, []string{"3/thesis-three"}, ids)
}

/*
TestHarvest_OffsetSpansStreams verifies the thesis offset arithmetic
when the window starts beyond the publication stream.
*/
func TestHarvest_OffsetSpansStreams(t *testing.T) {
	h := newHarness()
	seedMixedFeed(h)

	t.Run("window straddles the boundary", func(t *testing.T) {
		ids := harvestIDs(t, h, harvest.Query{Offset: 4, BatchSize: 2})
		assert.Equal(t, []string{"5/article-five", "1/thesis-one"}, ids)
	})

	t.Run("window entirely inside theses", func(t *testing.T) {
		ids := harvestIDs(t, h, harvest.Query{Offset: 6, BatchSize: 2})
		assert.Equal(t, []string{"2/thesis-two", "3/thesis-three"}, ids)
	})

	t.Run("window past the end", func(t *testing.T) {
		assert.Empty(t, harvestIDs(t, h, harvest.Query{Offset: 8, BatchSize: 2}))
	})
}

/*
TestHarvest_EarliestDatestamp verifies the discovery datestamp: the
minimum year across both streams, or 1970 on an empty repository.
*/
func TestHarvest_EarliestDatestamp(t *testing.T) {
	t.Run("empty repository", func(t *testing.T) {
		h := newHarness()
		earliest, err := h.service.EarliestDatestamp(context.Background())
		require.NoError(t, err)
		assert.Equal(t, time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC), earliest)
	})

	t.Run("thesis year older than publications", func(t *testing.T) {
		h := newHarness()
		h.addJournalArticle(1, "article-one", 2015, nil)
		h.addThesis(1, "thesis-one", 1998, 90)

		earliest, err := h.service.EarliestDatestamp(context.Background())
		require.NoError(t, err)
		assert.Equal(t, time.Date(1998, time.January, 1, 0, 0, 0, 0, time.UTC), earliest)
	})
}

/*
TestHarvest_Counts verifies the stream totals surface unfiltered.
*/
func TestHarvest_Counts(t *testing.T) {
	h := newHarness()
	seedMixedFeed(h)

	publicationCount, err := h.service.CountPublications(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, publicationCount)

	thesisCount, err := h.service.CountTheses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, thesisCount)
}
