package itemdb

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/gw2tracker/pkg/domain"
)

//go:generate moq -out mocks/client.go -pkg mocks -skip-ensure -fmt goimports . Client

// DefaultPageSize is the largest page the remote API serves
const DefaultPageSize = 200

// ErrRebuildInProgress returned when a rebuild is requested while another one is running
var ErrRebuildInProgress = errors.New("item database rebuild in progress")

// Client provides paginated item listings of the remote API
type Client interface {
	ItemCount(ctx context.Context, locale domain.Locale) (int, error)
	ItemsPage(ctx context.Context, locale domain.Locale, page, pageSize int) ([]domain.ItemEntry, error)
}

// Callbacks receive rebuild job progress. Both are optional and may be called from worker goroutines.
type Callbacks struct {
	OnPage     func()          // called once per completed page
	OnComplete func(items int) // called after the database file is written, never on cancel or failure
}

// Builder rebuilds the item database of a locale from the remote API.
// Pages are fetched concurrently, merged, written to the locale file and swapped into Database.
type Builder struct {
	client   Client
	store    *FileStore
	db       *Database
	pageSize int
	workers  int

	mu      sync.Mutex
	job     *job
	lastErr error
}

// BuilderParams defines dependencies and settings of Builder
type BuilderParams struct {
	Client   Client
	Store    *FileStore
	Database *Database
	PageSize int // DefaultPageSize if 0
	Workers  int // runtime.GOMAXPROCS(0) if 0
}

// job is a single running rebuild
type job struct {
	locale domain.Locale
	cancel context.CancelFunc
	done   chan struct{}
}

// NewBuilder makes a rebuild builder
func NewBuilder(params BuilderParams) *Builder {
	if params.PageSize <= 0 {
		params.PageSize = DefaultPageSize
	}
	if params.Workers <= 0 {
		params.Workers = runtime.GOMAXPROCS(0)
	}
	return &Builder{
		client:   params.Client,
		store:    params.Store,
		db:       params.Database,
		pageSize: params.PageSize,
		workers:  params.Workers,
	}
}

// Rebuild starts a background rebuild of the locale database and returns the number of pages it will fetch.
// The job lives until ctx is done, Cancel is called or it finishes. On cancellation nothing is persisted
// and OnComplete is not called.
func (b *Builder) Rebuild(ctx context.Context, locale domain.Locale, cb Callbacks) (int, error) {
	jobCtx, cancel := context.WithCancel(ctx)
	j := &job{locale: locale, cancel: cancel, done: make(chan struct{})}

	b.mu.Lock()
	if b.job != nil {
		b.mu.Unlock()
		cancel()
		return 0, ErrRebuildInProgress
	}
	b.job = j
	b.lastErr = nil
	b.mu.Unlock()

	total, err := b.client.ItemCount(jobCtx, locale)
	if err != nil {
		err = fmt.Errorf("get item count for %s: %w", locale, err)
		b.finish(j, err)
		return 0, err
	}
	pages := b.PageCount(total)
	lgr.Printf("[INFO] rebuilding item database for %s, %d items in %d pages", locale, total, pages)

	go func() {
		err := b.run(jobCtx, locale, pages, cb)
		b.finish(j, err)
	}()
	return pages, nil
}

// Cancel stops the running rebuild, if any. It doesn't wait for workers to exit, use Wait for that.
func (b *Builder) Cancel() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.job != nil {
		lgr.Printf("[INFO] canceling item database rebuild for %s", b.job.locale)
		b.job.cancel()
	}
}

// Running tells if a rebuild job is active
func (b *Builder) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.job != nil
}

// Wait blocks until the running job, if any, is done and returns the result of the last job.
// Canceled job reports context.Canceled.
func (b *Builder) Wait() error {
	b.mu.Lock()
	j := b.job
	b.mu.Unlock()
	if j != nil {
		<-j.done
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastErr
}

// PageCount returns how many pages a database of total items takes
func (b *Builder) PageCount(total int) int {
	return (total + b.pageSize - 1) / b.pageSize
}

func (b *Builder) finish(j *job, err error) {
	j.cancel()
	b.mu.Lock()
	b.job = nil
	b.lastErr = err
	b.mu.Unlock()
	close(j.done)
}

// run fetches all pages, merges them and persists the result
func (b *Builder) run(ctx context.Context, locale domain.Locale, pages int, cb Callbacks) error {
	started := time.Now()
	acc := newAccumulator(pages * b.pageSize)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for page := 0; page < pages; page++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entries, err := b.client.ItemsPage(gctx, locale, page, b.pageSize)
			if err != nil {
				return fmt.Errorf("fetch page %d: %w", page, err)
			}
			if err := gctx.Err(); err != nil {
				return err
			}
			acc.add(entries)
			pagesFetched.WithLabelValues(string(locale)).Inc()
			if cb.OnPage != nil {
				cb.OnPage()
			}
			return nil
		})
	}

	err := g.Wait()
	if ctx.Err() != nil {
		rebuilds.WithLabelValues("canceled").Inc()
		lgr.Printf("[INFO] item database rebuild for %s canceled", locale)
		return ctx.Err()
	}
	if err != nil {
		rebuilds.WithLabelValues("failed").Inc()
		lgr.Printf("[WARN] item database rebuild for %s failed: %v", locale, err)
		return fmt.Errorf("rebuild items for %s: %w", locale, err)
	}

	entries := acc.snapshot()
	if err := b.store.Save(locale, entries); err != nil {
		rebuilds.WithLabelValues("failed").Inc()
		lgr.Printf("[WARN] failed to save item database for %s: %v", locale, err)
		return fmt.Errorf("save items for %s: %w", locale, err)
	}
	if b.db != nil {
		b.db.replace(locale, entries)
	}
	rebuilds.WithLabelValues("completed").Inc()
	lgr.Printf("[INFO] item database for %s rebuilt, %d items in %v", locale, len(entries), time.Since(started).Round(time.Millisecond))

	if cb.OnComplete != nil {
		cb.OnComplete(len(entries))
	}
	return nil
}

// accumulator merges pages fetched by concurrent workers
type accumulator struct {
	mu      sync.Mutex
	entries map[int]domain.ItemEntry
}

func newAccumulator(size int) *accumulator {
	return &accumulator{entries: make(map[int]domain.ItemEntry, size)}
}

// add inserts entries, keeping the first one on duplicate id
func (a *accumulator) add(entries []domain.ItemEntry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, e := range entries {
		if _, ok := a.entries[e.ID]; ok {
			lgr.Printf("[WARN] duplicate item %d (%s) ignored", e.ID, e.Name)
			continue
		}
		a.entries[e.ID] = e
	}
}

func (a *accumulator) snapshot() map[int]domain.ItemEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	res := make(map[int]domain.ItemEntry, len(a.entries))
	for k, v := range a.entries {
		res[k] = v
	}
	return res
}
