package publication

import "context"

// Resolver walks the polymorphic subtype hierarchy: it maps a publication's
// discriminator to its concrete subtype row, and for child subtypes follows
// the parent foreign key to the container row.
type Resolver struct {
	repo Repository
}

func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// ResolveConcrete fetches the subtype row named by childType for the given
// publication id. It returns (nil, nil) when the row does not exist and
// ErrUnregisteredType for a discriminator outside the registry.
func (resolver *Resolver) ResolveConcrete(context context.Context, childType ChildType, id int64) (*Subtype, error) {
	d, ok := registry[childType]
	if !ok {
		return nil, ErrUnregisteredType(childType)
	}

	if d.container {
		row, err := resolver.repo.ContainerRow(context, childType, id)
		if err != nil || row == nil {
			return nil, err
		}
		return &Subtype{Type: childType, Container: row}, nil
	}

	row, err := resolver.repo.ChildRow(context, childType, id)
	if err != nil || row == nil {
		return nil, err
	}
	return &Subtype{Type: childType, Child: row}, nil
}

// ResolveContainer returns the container row for a publication: the row
// itself for container subtypes, the parent row for child subtypes. A
// missing child row, an unset parent link, or a dangling parent reference
// all yield (nil, nil).
func (resolver *Resolver) ResolveContainer(context context.Context, childType ChildType, id int64) (*Container, error) {
	d, ok := registry[childType]
	if !ok {
		return nil, ErrUnregisteredType(childType)
	}

	if d.container {
		return resolver.repo.ContainerRow(context, childType, id)
	}

	child, err := resolver.repo.ChildRow(context, childType, id)
	if err != nil || child == nil || child.ParentID == nil {
		return nil, err
	}
	return resolver.repo.ContainerRow(context, d.parent, *child.ParentID)
}

// Publisher returns the resolved container's publisher. A publication
// without a resolvable container has no publisher, which is valid.
func (resolver *Resolver) Publisher(context context.Context, childType ChildType, id int64) (*string, error) {
	container, err := resolver.ResolveContainer(context, childType, id)
	if err != nil || container == nil {
		return nil, err
	}
	return container.Publisher, nil
}
