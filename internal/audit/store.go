package audit

import (
	"context"
	"time"
)

// Repository defines the read contract against the change history.
//
// ContentType returns (nil, nil) when the family is not registered — an
// unregistered family is excluded from timestamp computation, never an
// error. LatestAction answers the disjunction query: the most recent
// action time across all given refs, nil when no entry matches.
type Repository interface {
	ContentType(context context.Context, appLabel, model string) (*ContentType, error)
	LatestAction(context context.Context, refs []Ref) (*time.Time, error)
	EntriesFor(context context.Context, ref Ref, limit int) ([]*Entry, error)
}
