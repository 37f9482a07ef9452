package publication

import "context"

// Repository defines the data access contract.
//
// List returns matching rows in ascending id order without a window: the
// harvester derives each record's modified instant before it can filter, so
// windowing happens above this layer.
//
// ContainerRow and ChildRow return (nil, nil) when the subtype row is
// absent; both reject types of the wrong shape via ErrUnregisteredType.
type Repository interface {
	List(context context.Context, filter Filter) ([]*Publication, error)
	Count(context context.Context) (int, error)
	EarliestYear(context context.Context) (*int, error)
	ContainerRow(context context.Context, childType ChildType, id int64) (*Container, error)
	ChildRow(context context.Context, childType ChildType, id int64) (*Child, error)
}
