package viewmodel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/gw2tracker/pkg/domain"
	"github.com/umputun/gw2tracker/pkg/itemdb"
)

//go:generate moq -out mocks/item_builder.go -pkg mocks -skip-ensure -fmt goimports . ItemBuilder
//go:generate moq -out mocks/item_lookup.go -pkg mocks -skip-ensure -fmt goimports . ItemLookup
//go:generate moq -out mocks/setting_store.go -pkg mocks -skip-ensure -fmt goimports . SettingStore

// ItemBuilder runs item database rebuild jobs
type ItemBuilder interface {
	Rebuild(ctx context.Context, locale domain.Locale, cb itemdb.Callbacks) (int, error)
	Cancel()
	Wait() error
}

// ItemLookup reads the loaded item database
type ItemLookup interface {
	Entry(id int) (domain.ItemEntry, bool)
	Locale() domain.Locale
	Len() int
}

// SettingStore keeps small metadata values
type SettingStore interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Progress is a snapshot of the item database rebuild
type Progress struct {
	Running        bool          `json:"running"`
	Locale         domain.Locale `json:"locale,omitempty"`
	TotalPages     int           `json:"total_pages"`
	CompletedPages int           `json:"completed_pages"`
	Items          int           `json:"items"`
	StartedAt      time.Time     `json:"started_at,omitzero"`
	FinishedAt     time.Time     `json:"finished_at,omitzero"`
	LastError      string        `json:"last_error,omitempty"`
}

// Percent returns completion in 0..100
func (p Progress) Percent() int {
	if p.TotalPages == 0 {
		if p.Running {
			return 0
		}
		return 100
	}
	return p.CompletedPages * 100 / p.TotalPages
}

// ItemsViewModel exposes item lookups and the rebuild command with its progress
type ItemsViewModel struct {
	notifier
	builder  ItemBuilder
	lookup   ItemLookup
	settings SettingStore // optional

	mu       sync.Mutex
	progress Progress
	done     chan struct{} // closed when the current rebuild progress is final
}

// NewItemsViewModel makes items view-model, settings is optional
func NewItemsViewModel(builder ItemBuilder, lookup ItemLookup, settings SettingStore) *ItemsViewModel {
	return &ItemsViewModel{builder: builder, lookup: lookup, settings: settings}
}

// CanRebuild tells if the rebuild command is available
func (vm *ItemsViewModel) CanRebuild() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return !vm.progress.Running
}

// RebuildCommand starts a background rebuild of the item database for locale.
// Progress is updated on every fetched page, completion or failure.
func (vm *ItemsViewModel) RebuildCommand(ctx context.Context, locale domain.Locale) error {
	vm.mu.Lock()
	if vm.progress.Running {
		vm.mu.Unlock()
		return itemdb.ErrRebuildInProgress
	}
	vm.progress = Progress{Running: true, Locale: locale, StartedAt: time.Now().UTC()}
	done := make(chan struct{})
	vm.done = done
	vm.mu.Unlock()
	vm.notify(PropProgress)

	cb := itemdb.Callbacks{
		OnPage: func() {
			vm.update(func(p *Progress) { p.CompletedPages++ })
		},
		OnComplete: func(items int) {
			vm.update(func(p *Progress) { p.Items = items })
			vm.recordRebuild(ctx, locale)
			vm.notify(PropItems)
		},
	}

	pages, err := vm.builder.Rebuild(ctx, locale, cb)
	if err != nil {
		vm.update(func(p *Progress) {
			p.Running = false
			p.FinishedAt = time.Now().UTC()
			p.LastError = err.Error()
			if errors.Is(err, context.Canceled) {
				p.LastError = "canceled"
			}
		})
		close(done)
		return fmt.Errorf("start rebuild: %w", err)
	}
	vm.update(func(p *Progress) { p.TotalPages = pages })

	go func() {
		err := vm.builder.Wait()
		vm.update(func(p *Progress) {
			p.Running = false
			p.FinishedAt = time.Now().UTC()
			switch {
			case err == nil:
			case errors.Is(err, context.Canceled):
				p.LastError = "canceled"
			default:
				p.LastError = err.Error()
			}
		})
		close(done)
	}()
	return nil
}

// CancelCommand stops the running rebuild
func (vm *ItemsViewModel) CancelCommand() {
	vm.builder.Cancel()
}

// Wait blocks until the running rebuild, if any, ends and the progress is final
func (vm *ItemsViewModel) Wait() Progress {
	vm.mu.Lock()
	done := vm.done
	vm.mu.Unlock()
	if done != nil {
		<-done
	}
	return vm.Progress()
}

// Progress returns current rebuild progress
func (vm *ItemsViewModel) Progress() Progress {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.progress
}

// Item returns item entry by id
func (vm *ItemsViewModel) Item(id int) (domain.ItemEntry, bool) {
	return vm.lookup.Entry(id)
}

// ItemName returns item display name, or a placeholder with the id if unknown
func (vm *ItemsViewModel) ItemName(id int) string {
	if e, ok := vm.lookup.Entry(id); ok {
		return e.Name
	}
	return fmt.Sprintf("item #%d", id)
}

// Loaded returns locale and size of the loaded item database
func (vm *ItemsViewModel) Loaded() (domain.Locale, int) {
	return vm.lookup.Locale(), vm.lookup.Len()
}

// LastRebuild returns time of the last completed rebuild for locale, zero if unknown
func (vm *ItemsViewModel) LastRebuild(ctx context.Context, locale domain.Locale) (time.Time, error) {
	if vm.settings == nil {
		return time.Time{}, nil
	}
	v, err := vm.settings.GetSetting(ctx, rebuiltAtKey(locale))
	if err != nil || v == "" {
		return time.Time{}, err
	}
	ts, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad rebuild time %q: %w", v, err)
	}
	return ts, nil
}

func (vm *ItemsViewModel) recordRebuild(ctx context.Context, locale domain.Locale) {
	if vm.settings == nil {
		return
	}
	// job context may be already done by now
	ctx = context.WithoutCancel(ctx)
	if err := vm.settings.SetSetting(ctx, rebuiltAtKey(locale), time.Now().UTC().Format(time.RFC3339)); err != nil {
		lgr.Printf("[WARN] failed to record item database rebuild time for %s: %v", locale, err)
	}
}

func (vm *ItemsViewModel) update(fn func(p *Progress)) {
	vm.mu.Lock()
	fn(&vm.progress)
	vm.mu.Unlock()
	vm.notify(PropProgress)
}

func rebuiltAtKey(locale domain.Locale) string {
	return "items." + string(locale) + ".rebuilt_at"
}
