package thesis

import "context"

// Repository defines the data access contract.
//
// List windows at the storage layer (the harvester date-filters the fetched
// window afterwards, a documented behavior of the feed). Abstracts returns
// rows in retrieval order, which is the order their texts are emitted.
type Repository interface {
	List(context context.Context, filter Filter) ([]*Thesis, error)
	Count(context context.Context) (int, error)
	EarliestYear(context context.Context) (*int, error)
	Abstracts(context context.Context, thesisID int64) ([]*Abstract, error)
}
