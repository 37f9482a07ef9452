// Package audit reads the upstream CMS's change history: the append-only
// admin log plus the content-type registry that scopes each entry to an
// entity family. The harvester derives every record's authoritative
// last-modified instant from these two tables; nothing here is written.
package audit

import (
	"strings"
	"time"
)

// ContentType identifies an entity family in the audit log, looked up from
// an (app label, model) pair.
type ContentType struct {
	ID       int64  `json:"id"`
	AppLabel string `json:"app_label"`
	Model    string `json:"model"`
}

// Entry is one change event. ObjectID is text in the log regardless of the
// referenced entity's key type.
type Entry struct {
	ID            int64     `json:"id"`
	ActionTime    time.Time `json:"action_time"`
	UserID        int64     `json:"user_id"`
	ContentTypeID int64     `json:"content_type_id"`
	ObjectID      string    `json:"object_id"`
	ObjectRepr    string    `json:"object_repr"`
	ActionFlag    string    `json:"action_flag"`
	ChangeMessage string    `json:"change_message"`
}

// Ref addresses one entity instance in the log.
type Ref struct {
	ContentTypeID int64
	ObjectID      string
}

// SplitFamily decomposes a CMS table name into the (app label, model) pair
// the content-type registry is keyed by: "publications_thesis" →
// ("publications", "thesis"). Only the first underscore splits; CMS model
// names never contain one.
func SplitFamily(tablename string) (appLabel, model string) {
	appLabel, model, found := strings.Cut(tablename, "_")
	if !found {
		return tablename, ""
	}
	return appLabel, model
}
