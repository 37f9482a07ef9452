package publication_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scripta/internal/catalog/publication"
)

// fakeRepository serves subtype rows from maps keyed by (type, id).
type fakeRepository struct {
	publication.Repository

	containers map[publication.ChildType]map[int64]*publication.Container
	children   map[publication.ChildType]map[int64]*publication.Child
}

func (f *fakeRepository) ContainerRow(_ context.Context, t publication.ChildType, id int64) (*publication.Container, error) {
	if !t.IsContainer() {
		return nil, publication.ErrUnregisteredType(t)
	}
	return f.containers[t][id], nil
}

func (f *fakeRepository) ChildRow(_ context.Context, t publication.ChildType, id int64) (*publication.Child, error) {
	return f.children[t][id], nil
}

func ptr[T any](v T) *T { return &v }

func newFixtureRepository() *fakeRepository {
	return &fakeRepository{
		containers: map[publication.ChildType]map[int64]*publication.Container{
			publication.TypeJournal: {
				10: {PublicationID: 10, Type: publication.TypeJournal, Publisher: ptr("Springer")},
			},
			publication.TypeProceedings: {
				20: {PublicationID: 20, Type: publication.TypeProceedings},
			},
		},
		children: map[publication.ChildType]map[int64]*publication.Child{
			publication.TypeJournalArticle: {
				11: {PublicationID: 11, Type: publication.TypeJournalArticle, ParentID: ptr(int64(10))},
				12: {PublicationID: 12, Type: publication.TypeJournalArticle}, // no container linked
				13: {PublicationID: 13, Type: publication.TypeJournalArticle, ParentID: ptr(int64(99))}, // dangling
			},
		},
	}
}

/*
TestResolver_ResolveConcrete covers container rows, child rows, missing
rows, and the unregistered discriminator contract violation.
*/
func TestResolver_ResolveConcrete(t *testing.T) {
	resolver := publication.NewResolver(newFixtureRepository())
	ctx := context.Background()

	t.Run("container_subtype", func(t *testing.T) {
		subtype, err := resolver.ResolveConcrete(ctx, publication.TypeJournal, 10)
		require.NoError(t, err)
		require.NotNil(t, subtype)
		require.NotNil(t, subtype.Container)
		assert.Nil(t, subtype.Child)
		assert.Equal(t, "Springer", *subtype.Container.Publisher)
	})

	t.Run("child_subtype", func(t *testing.T) {
		subtype, err := resolver.ResolveConcrete(ctx, publication.TypeJournalArticle, 11)
		require.NoError(t, err)
		require.NotNil(t, subtype)
		require.NotNil(t, subtype.Child)
		assert.Nil(t, subtype.Container)
	})

	t.Run("missing_row", func(t *testing.T) {
		subtype, err := resolver.ResolveConcrete(ctx, publication.TypeJournal, 404)
		require.NoError(t, err)
		assert.Nil(t, subtype)
	})

	t.Run("unregistered_type", func(t *testing.T) {
		_, err := resolver.ResolveConcrete(ctx, publication.ChildType("Preprint"), 1)
		assert.Error(t, err)
	})
}

/*
TestResolver_ResolveContainer covers the parent-chain walk: the container
itself, a child's parent, an unlinked child, and a dangling parent link.
*/
func TestResolver_ResolveContainer(t *testing.T) {
	resolver := publication.NewResolver(newFixtureRepository())
	ctx := context.Background()

	tests := []struct {
		name      string
		childType publication.ChildType
		id        int64
		wantNil   bool
	}{
		{"container_returns_itself", publication.TypeJournal, 10, false},
		{"child_follows_parent", publication.TypeJournalArticle, 11, false},
		{"child_without_parent_link", publication.TypeJournalArticle, 12, true},
		{"child_with_dangling_parent", publication.TypeJournalArticle, 13, true},
		{"missing_child_row", publication.TypeJournalArticle, 404, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container, err := resolver.ResolveContainer(ctx, tt.childType, tt.id)
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, container)
			} else {
				require.NotNil(t, container)
				assert.Equal(t, int64(10), container.PublicationID)
			}
		})
	}
}

/*
TestResolver_Publisher verifies that a missing container resolves to
"no publisher" instead of an error.
*/
func TestResolver_Publisher(t *testing.T) {
	resolver := publication.NewResolver(newFixtureRepository())
	ctx := context.Background()

	publisher, err := resolver.Publisher(ctx, publication.TypeJournalArticle, 11)
	require.NoError(t, err)
	require.NotNil(t, publisher)
	assert.Equal(t, "Springer", *publisher)

	publisher, err = resolver.Publisher(ctx, publication.TypeJournalArticle, 12)
	require.NoError(t, err)
	assert.Nil(t, publisher)

	// A container row with a null publisher column is also "no publisher".
	publisher, err = resolver.Publisher(ctx, publication.TypeProceedings, 20)
	require.NoError(t, err)
	assert.Nil(t, publisher)
}
