package harvest_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scripta/internal/harvest"
)

/*
TestTracker_YearFloor verifies that a record with no audit entries is
stamped with January 1st of its year.
*/
func TestTracker_YearFloor(t *testing.T) {
	h := newHarness()
	article := h.addJournalArticle(11, "quiet-article", 2019, nil)

	modified, err := h.tracker.PublicationModified(context.Background(), harvest.NewScope(), article)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC), modified)
}

/*
TestTracker_LatestAuditEntryWins verifies that the most recent action
time across the record's dependency union becomes the modified instant.
*/
func TestTracker_LatestAuditEntryWins(t *testing.T) {
	h := newHarness()
	article := h.addJournalArticle(11, "busy-article", 2019, nil)
	h.tags.tags[3] = tagFixture(3, "nlp")
	h.tags.byPublication[11] = []int64{3}

	h.logEntry("publications.publication", 11, time.Date(2020, time.April, 2, 10, 0, 0, 0, time.UTC))
	h.logEntry("utils.tag", 3, time.Date(2021, time.June, 5, 8, 30, 0, 0, time.UTC))

	modified, err := h.tracker.PublicationModified(context.Background(), harvest.NewScope(), article)
	require.NoError(t, err)

	// The tag edit is newer than the publication edit.
	assert.Equal(t, time.Date(2021, time.June, 5, 8, 30, 0, 0, time.UTC), modified)
}

/*
TestTracker_FloorBeatsOlderEntries verifies the floor applies even when
audit entries exist but predate the record's year.
*/
func TestTracker_FloorBeatsOlderEntries(t *testing.T) {
	h := newHarness()
	article := h.addJournalArticle(11, "reissued-article", 2022, nil)

	h.logEntry("publications.publication", 11, time.Date(2020, time.April, 2, 10, 0, 0, 0, time.UTC))

	modified, err := h.tracker.PublicationModified(context.Background(), harvest.NewScope(), article)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC), modified)
}

/*
TestTracker_ZoneStripped verifies that audit timestamps with an offset
contribute their wall-clock fields, not their UTC instant.
*/
func TestTracker_ZoneStripped(t *testing.T) {
	h := newHarness()
	article := h.addJournalArticle(11, "offset-article", 2019, nil)

	// 23:30 at +02:00 is 21:30 UTC; the feed keeps the 23:30 wall clock.
	zone := time.FixedZone("CEST", 2*60*60)
	h.logEntry("publications.publication", 11, time.Date(2020, time.July, 1, 23, 30, 0, 0, zone))

	modified, err := h.tracker.PublicationModified(context.Background(), harvest.NewScope(), article)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2020, time.July, 1, 23, 30, 0, 0, time.UTC), modified)
}

/*
TestTracker_ContainerContributes verifies that edits to a linked
container, logged under the child's subtype family with the container's
key, move the child's modified instant.
*/
func TestTracker_ContainerContributes(t *testing.T) {
	h := newHarness()
	h.publications.containers[50] = journalFixture(50, "Elsevier")
	article := h.addJournalArticle(11, "contained-article", 2019, ptr(int64(50)))

	h.logEntry("publications.journalarticle", 50, time.Date(2023, time.February, 14, 12, 0, 0, 0, time.UTC))

	modified, err := h.tracker.PublicationModified(context.Background(), harvest.NewScope(), article)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2023, time.February, 14, 12, 0, 0, 0, time.UTC), modified)
}

/*
TestTracker_UnregisteredFamilySkipped verifies that a family missing from
the content-type registry is excluded from the union without error.
*/
func TestTracker_UnregisteredFamilySkipped(t *testing.T) {
	h := newHarness()
	article := h.addJournalArticle(11, "orphan-family-article", 2019, nil)

	// Deregister the publication family after logging an edit; the entry
	// becomes unreachable and only the floor remains.
	h.logEntry("publications.publication", 11, time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC))
	delete(h.audits.contentTypes, "publications.publication")

	modified, err := h.tracker.PublicationModified(context.Background(), harvest.NewScope(), article)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC), modified)
}

/*
TestTracker_ThesisUnion verifies the thesis dependency union: the newest
edit among the thesis, its people, and its abstracts wins.
*/
func TestTracker_ThesisUnion(t *testing.T) {
	h := newHarness()
	row := h.addThesis(7, "thesis-seven", 2018, 90)
	h.theses.abstracts[7] = thesisAbstracts(7, 301, 302)

	h.logEntry("publications.thesis", 7, time.Date(2019, time.May, 1, 0, 0, 0, 0, time.UTC))
	h.logEntry("persons.person", 90, time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC))
	h.logEntry("publications.thesisabstract", 302, time.Date(2021, time.May, 1, 0, 0, 0, 0, time.UTC))

	modified, err := h.tracker.ThesisModified(context.Background(), harvest.NewScope(), row)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2021, time.May, 1, 0, 0, 0, 0, time.UTC), modified)
}
