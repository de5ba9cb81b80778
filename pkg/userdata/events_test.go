package userdata

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/gw2tracker/pkg/userdata/mocks"
)

func TestEventsUserData_SavesOncePerChange(t *testing.T) {
	persister := &mocks.PersisterMock{SaveFunc: func(v any) error { return nil }}
	d := NewEventsUserData(persister)
	id := uuid.New()

	tbl := []struct {
		name  string
		op    func() error
		saves int
	}{
		{"hide event", func() error { return d.HideEvent(id) }, 1},
		{"hide same event again", func() error { return d.HideEvent(id) }, 0},
		{"unhide event", func() error { return d.UnhideEvent(id) }, 1},
		{"unhide missing event", func() error { return d.UnhideEvent(id) }, 0},
		{"inactive visible off", func() error { return d.SetInactiveEventsVisible(false) }, 1},
		{"inactive visible same", func() error { return d.SetInactiveEventsVisible(false) }, 0},
		{"warmup notification off", func() error { return d.SetNotifyOnWarmup(false) }, 1},
		{"last reset", func() error { return d.SetLastResetDateTime(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) }, 1},
		{"last reset same", func() error { return d.SetLastResetDateTime(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) }, 0},
		{"clear empty hidden", d.ClearHiddenEvents, 0},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			before := len(persister.SaveCalls())
			require.NoError(t, tt.op())
			assert.Equal(t, tt.saves, len(persister.SaveCalls())-before)
		})
	}
}

func TestEventsUserData_ResetIsSingleSave(t *testing.T) {
	persister := &mocks.PersisterMock{SaveFunc: func(v any) error { return nil }}
	d := NewEventsUserData(persister)
	require.NoError(t, d.HideEvent(uuid.New()))
	require.NoError(t, d.HideEvent(uuid.New()))

	var changed []string
	d.OnChange(func(p string) { changed = append(changed, p) })

	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, d.Reset(at))
	assert.Len(t, persister.SaveCalls(), 3)
	assert.Empty(t, d.HiddenEvents())
	assert.Equal(t, at, d.LastResetDateTime())
	assert.Equal(t, []string{PropHiddenEvents, PropLastResetDateTime}, changed)

	saved, ok := persister.SaveCalls()[2].V.(eventsDoc)
	require.True(t, ok)
	assert.Empty(t, saved.HiddenEvents)
	assert.Equal(t, at, saved.LastResetDateTime)
}

func TestEventsUserData_AutoSaveSwitch(t *testing.T) {
	persister := &mocks.PersisterMock{SaveFunc: func(v any) error { return nil }}
	d := NewEventsUserData(persister)

	d.DisableAutoSave()
	require.NoError(t, d.HideEvent(uuid.New()))
	assert.Empty(t, persister.SaveCalls())

	d.EnableAutoSave()
	require.NoError(t, d.HideEvent(uuid.New()))
	assert.Len(t, persister.SaveCalls(), 1)
}

func TestEventsUserData_SaveError(t *testing.T) {
	persister := &mocks.PersisterMock{SaveFunc: func(v any) error { return errors.New("disk full") }}
	d := NewEventsUserData(persister)

	notified := 0
	d.OnChange(func(string) { notified++ })

	id := uuid.New()
	err := d.HideEvent(id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.True(t, d.IsEventHidden(id), "in-memory change kept")
	assert.Equal(t, 1, notified)
}

func TestEventsUserData_NilPersister(t *testing.T) {
	d := NewEventsUserData(nil)
	d.EnableAutoSave() // no persister, stays off
	require.NoError(t, d.HideEvent(uuid.New()))
	assert.Len(t, d.HiddenEvents(), 1)
}

func TestLoadEventsUserData(t *testing.T) {
	t.Run("missing file gives defaults", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "events.json"))
		d, err := LoadEventsUserData(store)
		require.NoError(t, err)
		assert.True(t, d.AreInactiveEventsVisible())
		assert.True(t, d.NotifyOnWarmup())
		assert.Empty(t, d.HiddenEvents())
		assert.True(t, d.LastResetDateTime().IsZero())
	})

	t.Run("round trip through file", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "sub", "events.json"))
		d, err := LoadEventsUserData(store)
		require.NoError(t, err)

		id1, id2 := uuid.New(), uuid.New()
		require.NoError(t, d.HideEvent(id1))
		require.NoError(t, d.HideEvent(id2))
		require.NoError(t, d.SetInactiveEventsVisible(false))
		at := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
		require.NoError(t, d.SetLastResetDateTime(at))

		loaded, err := LoadEventsUserData(store)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{id1, id2}, loaded.HiddenEvents())
		assert.False(t, loaded.AreInactiveEventsVisible())
		assert.True(t, loaded.NotifyOnWarmup())
		assert.Equal(t, at, loaded.LastResetDateTime())
	})
}
