package tag

import "context"

// Repository defines the data access contract.
//
// ListByPublication resolves the publication's tag links in one query.
// Links pointing at deleted tags are dropped, never errors. Order is
// unspecified (the join table carries no position).
type Repository interface {
	List(context context.Context) ([]*Tag, error)
	ListByPublication(context context.Context, publicationID int64) ([]*Tag, error)
}
