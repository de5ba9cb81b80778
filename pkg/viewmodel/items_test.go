package viewmodel

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/gw2tracker/pkg/domain"
	"github.com/umputun/gw2tracker/pkg/itemdb"
	itemmocks "github.com/umputun/gw2tracker/pkg/itemdb/mocks"
	"github.com/umputun/gw2tracker/pkg/viewmodel/mocks"
)

// fakeJob drives builder callbacks from the test
type fakeJob struct {
	cb     itemdb.Callbacks
	result chan error
}

func newBuilderMock(pages int) (*mocks.ItemBuilderMock, chan *fakeJob) {
	jobs := make(chan *fakeJob, 1)
	var mu sync.Mutex
	var current *fakeJob
	m := &mocks.ItemBuilderMock{
		RebuildFunc: func(ctx context.Context, locale domain.Locale, cb itemdb.Callbacks) (int, error) {
			j := &fakeJob{cb: cb, result: make(chan error, 1)}
			mu.Lock()
			current = j
			mu.Unlock()
			jobs <- j
			return pages, nil
		},
		WaitFunc: func() error {
			mu.Lock()
			j := current
			mu.Unlock()
			return <-j.result
		},
		CancelFunc: func() {
			mu.Lock()
			j := current
			mu.Unlock()
			j.result <- context.Canceled
		},
	}
	return m, jobs
}

func TestItemsViewModel_Rebuild(t *testing.T) {
	builder, jobs := newBuilderMock(3)
	settings := &mocks.SettingStoreMock{
		SetSettingFunc: func(ctx context.Context, key, value string) error { return nil },
	}
	vm := NewItemsViewModel(builder, &mocks.ItemLookupMock{}, settings)

	var mu sync.Mutex
	var props []string
	vm.Subscribe(func(p string) {
		mu.Lock()
		props = append(props, p)
		mu.Unlock()
	})

	assert.True(t, vm.CanRebuild())
	require.NoError(t, vm.RebuildCommand(context.Background(), "de"))
	job := <-jobs

	p := vm.Progress()
	assert.True(t, p.Running)
	assert.Equal(t, domain.Locale("de"), p.Locale)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 0, p.Percent())
	assert.False(t, vm.CanRebuild())

	err := vm.RebuildCommand(context.Background(), "en")
	require.ErrorIs(t, err, itemdb.ErrRebuildInProgress)
	assert.Len(t, builder.RebuildCalls(), 1)

	job.cb.OnPage()
	job.cb.OnPage()
	assert.Equal(t, 2, vm.Progress().CompletedPages)
	assert.Equal(t, 66, vm.Progress().Percent())
	job.cb.OnPage()
	job.cb.OnComplete(512)
	job.result <- nil

	p = vm.Wait()
	assert.False(t, p.Running)
	assert.Equal(t, 3, p.CompletedPages)
	assert.Equal(t, 512, p.Items)
	assert.Empty(t, p.LastError)
	assert.False(t, p.FinishedAt.IsZero())
	assert.Equal(t, 100, p.Percent())

	require.Len(t, settings.SetSettingCalls(), 1)
	assert.Equal(t, "items.de.rebuilt_at", settings.SetSettingCalls()[0].Key)

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, props, PropItems)
	assert.Contains(t, props, PropProgress)
}

func TestItemsViewModel_Cancel(t *testing.T) {
	builder, jobs := newBuilderMock(10)
	vm := NewItemsViewModel(builder, &mocks.ItemLookupMock{}, nil)

	require.NoError(t, vm.RebuildCommand(context.Background(), "en"))
	job := <-jobs
	job.cb.OnPage()
	vm.CancelCommand()

	p := vm.Wait()
	assert.False(t, p.Running)
	assert.Equal(t, "canceled", p.LastError)
	assert.Equal(t, 1, p.CompletedPages)
	assert.Zero(t, p.Items)
	assert.Len(t, builder.CancelCalls(), 1)
	assert.True(t, vm.CanRebuild())
}

func TestItemsViewModel_Failures(t *testing.T) {
	t.Run("start failure", func(t *testing.T) {
		builder := &mocks.ItemBuilderMock{
			RebuildFunc: func(context.Context, domain.Locale, itemdb.Callbacks) (int, error) {
				return 0, errors.New("api down")
			},
		}
		vm := NewItemsViewModel(builder, &mocks.ItemLookupMock{}, nil)
		err := vm.RebuildCommand(context.Background(), "fr")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api down")
		p := vm.Wait()
		assert.False(t, p.Running)
		assert.Equal(t, "api down", p.LastError)
	})

	t.Run("job failure", func(t *testing.T) {
		builder, jobs := newBuilderMock(2)
		vm := NewItemsViewModel(builder, &mocks.ItemLookupMock{}, nil)
		require.NoError(t, vm.RebuildCommand(context.Background(), "fr"))
		job := <-jobs
		job.result <- errors.New("fetch page 1: bad status 500")
		p := vm.Wait()
		assert.False(t, p.Running)
		assert.Contains(t, p.LastError, "bad status 500")
	})

	t.Run("canceled while counting items", func(t *testing.T) {
		counting := make(chan struct{})
		client := &itemmocks.ClientMock{
			ItemCountFunc: func(ctx context.Context, locale domain.Locale) (int, error) {
				close(counting)
				<-ctx.Done()
				return 0, ctx.Err()
			},
		}
		dir := t.TempDir()
		store := itemdb.NewFileStore(dir)
		builder := itemdb.NewBuilder(itemdb.BuilderParams{Client: client, Store: store, Database: itemdb.NewDatabase(store)})
		vm := NewItemsViewModel(builder, &mocks.ItemLookupMock{}, nil)

		errCh := make(chan error, 1)
		go func() { errCh <- vm.RebuildCommand(context.Background(), "fr") }()
		<-counting
		vm.CancelCommand()

		err := <-errCh
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		p := vm.Wait()
		assert.False(t, p.Running)
		assert.Equal(t, "canceled", p.LastError)
		assert.NoFileExists(t, store.Path("fr"))
	})
}

func TestItemsViewModel_Lookup(t *testing.T) {
	lookup := &mocks.ItemLookupMock{
		EntryFunc: func(id int) (domain.ItemEntry, bool) {
			if id == 19721 {
				return domain.ItemEntry{ID: id, Name: "Glob of Ectoplasm", Rarity: domain.RarityExotic, Level: 0}, true
			}
			return domain.ItemEntry{}, false
		},
		LocaleFunc: func() domain.Locale { return "en" },
		LenFunc:    func() int { return 1 },
	}
	vm := NewItemsViewModel(&mocks.ItemBuilderMock{}, lookup, nil)

	assert.Equal(t, "Glob of Ectoplasm", vm.ItemName(19721))
	assert.Equal(t, "item #1", vm.ItemName(1))
	e, ok := vm.Item(19721)
	require.True(t, ok)
	assert.Equal(t, domain.RarityExotic, e.Rarity)

	loc, n := vm.Loaded()
	assert.Equal(t, domain.Locale("en"), loc)
	assert.Equal(t, 1, n)

	ts, err := vm.LastRebuild(context.Background(), "en")
	require.NoError(t, err)
	assert.True(t, ts.IsZero(), "no settings store")
}

func TestItemsViewModel_LastRebuild(t *testing.T) {
	settings := &mocks.SettingStoreMock{
		GetSettingFunc: func(ctx context.Context, key string) (string, error) {
			switch key {
			case "items.en.rebuilt_at":
				return "2024-05-10T12:00:00Z", nil
			case "items.de.rebuilt_at":
				return "garbage", nil
			}
			return "", nil
		},
	}
	vm := NewItemsViewModel(&mocks.ItemBuilderMock{}, &mocks.ItemLookupMock{}, settings)

	ts, err := vm.LastRebuild(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, 2024, ts.Year())

	ts, err = vm.LastRebuild(context.Background(), "fr")
	require.NoError(t, err)
	assert.True(t, ts.IsZero())

	_, err = vm.LastRebuild(context.Background(), "de")
	require.Error(t, err)
}
