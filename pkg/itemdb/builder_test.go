package itemdb

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/gw2tracker/pkg/domain"
	"github.com/umputun/gw2tracker/pkg/itemdb/mocks"
)

// pagedClient returns a mock serving total items split by pages
func pagedClient(total int) *mocks.ClientMock {
	return &mocks.ClientMock{
		ItemCountFunc: func(ctx context.Context, locale domain.Locale) (int, error) {
			return total, nil
		},
		ItemsPageFunc: func(ctx context.Context, locale domain.Locale, page, pageSize int) ([]domain.ItemEntry, error) {
			var res []domain.ItemEntry
			for id := page * pageSize; id < min(total, (page+1)*pageSize); id++ {
				res = append(res, domain.ItemEntry{ID: id, Name: fmt.Sprintf("item %d %s", id, locale),
					Rarity: domain.RarityFine, Level: id % 80})
			}
			return res, nil
		},
	}
}

func TestBuilder_Rebuild(t *testing.T) {
	tbl := []struct {
		total, pageSize, workers, pages int
	}{
		{total: 1050, pageSize: 100, workers: 4, pages: 11},
		{total: 1000, pageSize: 100, workers: 4, pages: 10},
		{total: 1, pageSize: 200, workers: 0, pages: 1},
		{total: 0, pageSize: 200, workers: 2, pages: 0},
		{total: 57, pageSize: 5, workers: 1, pages: 12},
	}

	for _, tt := range tbl {
		t.Run(fmt.Sprintf("%d items by %d", tt.total, tt.pageSize), func(t *testing.T) {
			store := NewFileStore(t.TempDir())
			db := NewDatabase(store)
			client := pagedClient(tt.total)
			b := NewBuilder(BuilderParams{Client: client, Store: store, Database: db,
				PageSize: tt.pageSize, Workers: tt.workers})

			var progress, completed atomic.Int32
			completedItems := -1
			pages, err := b.Rebuild(context.Background(), "de", Callbacks{
				OnPage:     func() { progress.Add(1) },
				OnComplete: func(n int) { completed.Add(1); completedItems = n },
			})
			require.NoError(t, err)
			assert.Equal(t, tt.pages, pages)
			require.NoError(t, b.Wait())

			assert.Equal(t, int32(tt.pages), progress.Load(), "one progress call per page")
			assert.Equal(t, int32(1), completed.Load())
			assert.Equal(t, tt.total, completedItems)
			assert.Len(t, client.ItemsPageCalls(), tt.pages)
			assert.False(t, b.Running())

			assert.True(t, store.Exists("de"))
			assert.Equal(t, domain.Locale("de"), db.Locale())
			assert.Equal(t, tt.total, db.Len())
			if tt.total > 0 {
				name, ok := db.Name(tt.total - 1)
				require.True(t, ok)
				assert.Equal(t, fmt.Sprintf("item %d de", tt.total-1), name)
			}

			loaded, err := store.Load("de")
			require.NoError(t, err)
			assert.Len(t, loaded, tt.total)
		})
	}
}

func TestBuilder_CancelMidRebuild(t *testing.T) {
	store := NewFileStore(t.TempDir())
	db := NewDatabase(store)
	b := NewBuilder(BuilderParams{Client: pagedClient(1000), Store: store, Database: db, PageSize: 100, Workers: 1})

	var progress atomic.Int32
	completed := false
	pages, err := b.Rebuild(context.Background(), "en", Callbacks{
		OnPage: func() {
			if progress.Add(1) == 1 {
				b.Cancel()
			}
		},
		OnComplete: func(int) { completed = true },
	})
	require.NoError(t, err)
	assert.Equal(t, 10, pages)

	err = b.Wait()
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(1), progress.Load())
	assert.False(t, completed, "completion callback must not run")
	assert.False(t, store.Exists("en"), "nothing persisted")
	assert.Zero(t, db.Len())
}

func TestBuilder_CancelByContext(t *testing.T) {
	store := NewFileStore(t.TempDir())
	started := make(chan struct{})
	client := &mocks.ClientMock{
		ItemCountFunc: func(ctx context.Context, locale domain.Locale) (int, error) { return 400, nil },
		ItemsPageFunc: func(ctx context.Context, locale domain.Locale, page, pageSize int) ([]domain.ItemEntry, error) {
			if page == 0 {
				close(started)
			}
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	b := NewBuilder(BuilderParams{Client: client, Store: store, Database: NewDatabase(store), PageSize: 100, Workers: 1})

	ctx, cancel := context.WithCancel(context.Background())
	completed := false
	_, err := b.Rebuild(ctx, "fr", Callbacks{OnComplete: func(int) { completed = true }})
	require.NoError(t, err)

	<-started
	cancel()
	assert.ErrorIs(t, b.Wait(), context.Canceled)
	assert.False(t, completed)
	assert.False(t, store.Exists("fr"))
}

func TestBuilder_PageFailure(t *testing.T) {
	store := NewFileStore(t.TempDir())
	client := pagedClient(500)
	pageFn := client.ItemsPageFunc
	client.ItemsPageFunc = func(ctx context.Context, locale domain.Locale, page, pageSize int) ([]domain.ItemEntry, error) {
		if page == 2 {
			return nil, errors.New("bad gateway")
		}
		return pageFn(ctx, locale, page, pageSize)
	}
	b := NewBuilder(BuilderParams{Client: client, Store: store, Database: NewDatabase(store), PageSize: 100, Workers: 2})

	completed := false
	_, err := b.Rebuild(context.Background(), "en", Callbacks{OnComplete: func(int) { completed = true }})
	require.NoError(t, err)

	err = b.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch page 2")
	assert.Contains(t, err.Error(), "bad gateway")
	assert.False(t, completed)
	assert.False(t, store.Exists("en"))
}

func TestBuilder_CountFailure(t *testing.T) {
	client := &mocks.ClientMock{
		ItemCountFunc: func(ctx context.Context, locale domain.Locale) (int, error) { return 0, errors.New("timeout") },
	}
	store := NewFileStore(t.TempDir())
	b := NewBuilder(BuilderParams{Client: client, Store: store, Database: NewDatabase(store)})

	_, err := b.Rebuild(context.Background(), "en", Callbacks{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get item count")
	assert.False(t, b.Running())
	assert.Error(t, b.Wait())
}

func TestBuilder_DuplicateItems(t *testing.T) {
	client := &mocks.ClientMock{
		ItemCountFunc: func(ctx context.Context, locale domain.Locale) (int, error) { return 4, nil },
		ItemsPageFunc: func(ctx context.Context, locale domain.Locale, page, pageSize int) ([]domain.ItemEntry, error) {
			if page == 0 {
				return []domain.ItemEntry{{ID: 1, Name: "first"}, {ID: 2, Name: "second"}}, nil
			}
			return []domain.ItemEntry{{ID: 2, Name: "dup"}, {ID: 3, Name: "third"}}, nil
		},
	}
	store := NewFileStore(t.TempDir())
	db := NewDatabase(store)
	b := NewBuilder(BuilderParams{Client: client, Store: store, Database: db, PageSize: 2, Workers: 1})

	var items int
	_, err := b.Rebuild(context.Background(), "en", Callbacks{OnComplete: func(n int) { items = n }})
	require.NoError(t, err)
	require.NoError(t, b.Wait())

	assert.Equal(t, 3, items)
	name, ok := db.Name(2)
	require.True(t, ok)
	assert.Equal(t, "second", name, "first inserted entry wins")
}

func TestBuilder_SingleJob(t *testing.T) {
	release := make(chan struct{})
	client := &mocks.ClientMock{
		ItemCountFunc: func(ctx context.Context, locale domain.Locale) (int, error) { return 10, nil },
		ItemsPageFunc: func(ctx context.Context, locale domain.Locale, page, pageSize int) ([]domain.ItemEntry, error) {
			<-release
			return []domain.ItemEntry{{ID: page, Name: "x"}}, nil
		},
	}
	store := NewFileStore(t.TempDir())
	b := NewBuilder(BuilderParams{Client: client, Store: store, Database: NewDatabase(store), PageSize: 10})

	_, err := b.Rebuild(context.Background(), "en", Callbacks{})
	require.NoError(t, err)
	assert.True(t, b.Running())

	_, err = b.Rebuild(context.Background(), "de", Callbacks{})
	assert.ErrorIs(t, err, ErrRebuildInProgress)

	close(release)
	require.NoError(t, b.Wait())
	assert.False(t, b.Running())

	// a new job is allowed once the previous one is done
	client.ItemsPageFunc = func(ctx context.Context, locale domain.Locale, page, pageSize int) ([]domain.ItemEntry, error) {
		return nil, nil
	}
	_, err = b.Rebuild(context.Background(), "de", Callbacks{})
	require.NoError(t, err)
	require.NoError(t, b.Wait())
}

func TestBuilder_Defaults(t *testing.T) {
	b := NewBuilder(BuilderParams{})
	assert.Equal(t, DefaultPageSize, b.pageSize)
	assert.Positive(t, b.workers)
	assert.Equal(t, 0, b.PageCount(0))
	assert.Equal(t, 1, b.PageCount(1))
	assert.Equal(t, 2, b.PageCount(201))

	// cancel without a job is a no-op
	b.Cancel()
	require.NoError(t, b.Wait())
}
