// Package harvest implements the selective-harvesting feed over the
// bibliographic catalog: publications and theses exposed as one offset
// addressable sequence of metadata records, filterable by modification
// date range, identifier, and set membership.
//
// The feed is stateless between calls. Every page is re-derived from its
// query parameters; callers layering a resumption protocol on top encode
// offset and date range themselves.
package harvest

import "time"

// Metadata is the synthesized attribute list of one record: Dublin-Core
// style keys mapped to ordered value lists. Keys with no values are
// absent, never empty.
type Metadata map[string][]string

// Record is the unit of feed output.
//
// Deleted is always false: the upstream CMS hard-deletes rows, so the
// feed has no tombstone to report. The field exists because harvesting
// clients expect it on the wire.
type Record struct {
	ID       string    `json:"id"`
	Deleted  bool      `json:"deleted"`
	Modified time.Time `json:"modified"`
	Metadata Metadata  `json:"metadata"`
	Sets     []string  `json:"sets"`
}

// Query carries one harvest call's parameters.
//
// NeededSets, AllowedSets and DisallowedSets hold set ids from the fixed
// taxonomy; unknown ids simply match nothing. From and Until bound the
// derived modification instant, not any stored column. Identifier, when
// set, constrains both streams to a single primary key.
type Query struct {
	Offset         int
	BatchSize      int
	NeededSets     []string
	AllowedSets    []string
	DisallowedSets []string
	From           *time.Time
	Until          *time.Time
	Identifier     *string
}
