package person

import "context"

// Repository defines the data access contract.
//
// Get returns (nil, nil) when no row exists. ListByPublication returns the
// publication's authors ordered by their position column.
type Repository interface {
	Get(context context.Context, id int64) (*Person, error)
	ListByPublication(context context.Context, publicationID int64) ([]*Person, error)
}
