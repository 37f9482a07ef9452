package language

// Language represents a written language referenced by publications and
// theses. LanguageTag is the IETF tag (e.g. "en", "pt") and may be absent;
// records whose language has no tag simply omit the metadata language key.
type Language struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	LanguageTag *string `json:"language_tag,omitempty"`
}
