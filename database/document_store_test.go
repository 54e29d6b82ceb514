package database

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/docusage/docusage-be/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	return store, dir
}

func TestFileStore_EmptyList(t *testing.T) {
	store, _ := newTestStore(t)

	docs, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestFileStore_AppendRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	input := types.DocumentInput{
		Source:  types.SourceNotion,
		Name:    "Vacation Policy",
		Content: "Employees accrue 1.5 days per month.",
	}
	doc, err := store.Append(ctx, input)
	require.NoError(t, err)
	require.NotEmpty(t, doc.ID)
	require.NotZero(t, doc.LastIndexed)

	got, err := store.Get(ctx, doc.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, input.Source, got.Source)
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Content, got.Content)
	assert.Equal(t, doc.ID, got.ID)
}

func TestFileStore_GetAbsent(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Get(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileStore_ListIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Append(ctx, types.DocumentInput{Source: types.SourceNotion, Name: "A", Content: "a"})
	require.NoError(t, err)
	_, err = store.Append(ctx, types.DocumentInput{Source: types.SourceConfluence, Name: "B", Content: "b"})
	require.NoError(t, err)

	first, err := store.ListAll(ctx)
	require.NoError(t, err)
	second, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// insertion order preserved
	require.Len(t, first, 2)
	assert.Equal(t, "A", first[0].Name)
	assert.Equal(t, "B", first[1].Name)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	store, dir := newTestStore(t)
	ctx := context.Background()

	doc, err := store.Append(ctx, types.DocumentInput{Source: types.SourceGoogleDocs, Name: "Handbook", Content: "text"})
	require.NoError(t, err)

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	got, err := reopened.Get(ctx, doc.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Handbook", got.Name)
}

func TestFileStore_ReplaceAll(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Append(ctx, types.DocumentInput{Source: types.SourceNotion, Name: "Old", Content: "old"})
	require.NoError(t, err)

	err = store.ReplaceAll(ctx, []types.DocumentInput{
		{Source: types.SourceNotion, Name: "New 1", Content: "n1"},
		{Source: types.SourceConfluence, Name: "New 2", Content: "n2"},
	})
	require.NoError(t, err)

	docs, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "New 1", docs[0].Name)
	assert.Equal(t, "New 2", docs[1].Name)
	assert.NotEqual(t, docs[0].ID, docs[1].ID)
}

func TestFileStore_ConcurrentAppend(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	const writers = 10
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			_, err := store.Append(ctx, types.DocumentInput{Source: types.SourceNotion, Name: "Doc", Content: "body"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	docs, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, docs, writers)

	seen := make(map[string]bool, writers)
	for _, doc := range docs {
		assert.False(t, seen[doc.ID], "duplicate id %s", doc.ID)
		seen[doc.ID] = true
	}
}

func TestFileStore_UnavailableMedium(t *testing.T) {
	dir := t.TempDir()
	// Occupy the data dir path with a regular file so MkdirAll fails.
	blocked := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0644))

	_, err := NewFileStore(blocked)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrStorage)
}
