package viewmodel

import (
	"time"

	"github.com/google/uuid"

	"github.com/umputun/gw2tracker/pkg/domain"
	"github.com/umputun/gw2tracker/pkg/tracker"
	"github.com/umputun/gw2tracker/pkg/userdata"
)

// EventsViewModel binds world event commands and the event list to the events controller
type EventsViewModel struct {
	notifier
	ctrl *tracker.EventsController
	now  func() time.Time
}

// NewEventsViewModel makes events view-model and subscribes it to user data changes
func NewEventsViewModel(ctrl *tracker.EventsController) *EventsViewModel {
	res := &EventsViewModel{ctrl: ctrl, now: time.Now}
	ctrl.UserData().OnChange(func(property string) {
		switch property {
		case userdata.PropHiddenEvents, userdata.PropAreInactiveEventsVisible:
			res.notify(PropEvents)
		case userdata.PropNotifyOnWarmup:
			res.notify(PropSettings)
		}
	})
	return res
}

// Events returns the visible event list at the current time
func (vm *EventsViewModel) Events() []domain.EventStatus {
	return vm.ctrl.VisibleEvents(vm.now())
}

// AllEvents returns all events including hidden and inactive ones
func (vm *EventsViewModel) AllEvents() []domain.EventStatus {
	return vm.ctrl.Events(vm.now())
}

// HideCommand hides event until the next daily reset
func (vm *EventsViewModel) HideCommand(id uuid.UUID) error { return vm.ctrl.Hide(id) }

// UnhideCommand shows hidden event
func (vm *EventsViewModel) UnhideCommand(id uuid.UUID) error { return vm.ctrl.Unhide(id) }

// ResetHiddenCommand shows all hidden events
func (vm *EventsViewModel) ResetHiddenCommand() error { return vm.ctrl.ResetHidden() }

// NextReset returns time of the next daily reset
func (vm *EventsViewModel) NextReset() time.Time { return tracker.NextDailyReset(vm.now()) }
