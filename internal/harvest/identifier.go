package harvest

import (
	"strconv"
	"strings"
)

// FormatIdentifier builds a record's feed identifier from its primary key
// and slug: "1234/some-slug".
func FormatIdentifier(id int64, slug string) string {
	return strconv.FormatInt(id, 10) + "/" + slug
}

// ParseIdentifier splits a feed identifier on its first slash and parses
// the leading segment as the primary key. It reports ok=false when the
// slash is missing or the leading segment is not numeric; slugs may
// themselves contain slashes, so only the first one splits.
func ParseIdentifier(identifier string) (id int64, slug string, ok bool) {
	head, tail, found := strings.Cut(identifier, "/")
	if !found {
		return 0, "", false
	}
	id, err := strconv.ParseInt(head, 10, 64)
	if err != nil {
		return 0, "", false
	}
	return id, tail, true
}
