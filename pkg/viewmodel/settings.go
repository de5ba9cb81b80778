package viewmodel

import (
	"github.com/umputun/gw2tracker/pkg/userdata"
)

// Settings are the user visibility and notification switches
type Settings struct {
	InactiveEventsVisible bool `json:"inactive_events_visible"`
	NotifyOnWarmup        bool `json:"notify_on_warmup"`
	CompletedPathsVisible bool `json:"completed_paths_visible"`
}

// SettingsPatch is a partial settings update, nil fields are left unchanged
type SettingsPatch struct {
	InactiveEventsVisible *bool `json:"inactive_events_visible"`
	NotifyOnWarmup        *bool `json:"notify_on_warmup"`
	CompletedPathsVisible *bool `json:"completed_paths_visible"`
}

// SettingsViewModel exposes user switches of both trackers
type SettingsViewModel struct {
	events   *userdata.EventsUserData
	dungeons *userdata.DungeonsUserData
}

// NewSettingsViewModel makes settings view-model
func NewSettingsViewModel(events *userdata.EventsUserData, dungeons *userdata.DungeonsUserData) *SettingsViewModel {
	return &SettingsViewModel{events: events, dungeons: dungeons}
}

// Settings returns current switches
func (vm *SettingsViewModel) Settings() Settings {
	return Settings{
		InactiveEventsVisible: vm.events.AreInactiveEventsVisible(),
		NotifyOnWarmup:        vm.events.NotifyOnWarmup(),
		CompletedPathsVisible: vm.dungeons.AreCompletedPathsVisible(),
	}
}

// Update applies patch and returns the resulting switches. Each changed switch is saved by its user data.
func (vm *SettingsViewModel) Update(p SettingsPatch) (Settings, error) {
	if p.InactiveEventsVisible != nil {
		if err := vm.events.SetInactiveEventsVisible(*p.InactiveEventsVisible); err != nil {
			return vm.Settings(), err
		}
	}
	if p.NotifyOnWarmup != nil {
		if err := vm.events.SetNotifyOnWarmup(*p.NotifyOnWarmup); err != nil {
			return vm.Settings(), err
		}
	}
	if p.CompletedPathsVisible != nil {
		if err := vm.dungeons.SetCompletedPathsVisible(*p.CompletedPathsVisible); err != nil {
			return vm.Settings(), err
		}
	}
	return vm.Settings(), nil
}
