package harvest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/scripta/internal/harvest"
)

/*
TestIdentifier_RoundTrip verifies that a formatted identifier parses back
to its original primary key and slug.
*/
func TestIdentifier_RoundTrip(t *testing.T) {
	cases := []struct {
		id   int64
		slug string
	}{
		{42, "some-slug"},
		{1, "a"},
		{987654321, "deep-learning-for-question-answering"},
		{7, "slug/with/slashes"},
	}

	for _, testCase := range cases {
		identifier := harvest.FormatIdentifier(testCase.id, testCase.slug)

		id, slug, ok := harvest.ParseIdentifier(identifier)
		assert.True(t, ok, identifier)
		assert.Equal(t, testCase.id, id)
		assert.Equal(t, testCase.slug, slug)
	}
}

/*
TestIdentifier_Malformed verifies that identifiers without a numeric
prefix or separator are rejected.
*/
func TestIdentifier_Malformed(t *testing.T) {
	cases := []string{
		"",
		"no-separator",
		"abc/slug",
		"/slug",
		"12.5/slug",
	}

	for _, identifier := range cases {
		_, _, ok := harvest.ParseIdentifier(identifier)
		assert.False(t, ok, identifier)
	}
}
