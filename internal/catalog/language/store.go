package language

import "context"

// Repository defines the data access contract.
//
// Get returns (nil, nil) when no row exists: a dangling language reference
// narrows the harvested metadata instead of failing the record.
type Repository interface {
	Get(context context.Context, id int64) (*Language, error)
	List(context context.Context) ([]*Language, error)
}
