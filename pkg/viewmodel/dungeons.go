package viewmodel

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/umputun/gw2tracker/pkg/domain"
	"github.com/umputun/gw2tracker/pkg/tracker"
	"github.com/umputun/gw2tracker/pkg/userdata"
)

// DungeonsViewModel binds dungeon commands and the dungeon list to the dungeons controller
type DungeonsViewModel struct {
	notifier
	ctrl *tracker.DungeonsController
}

// NewDungeonsViewModel makes dungeons view-model and subscribes it to user data changes
func NewDungeonsViewModel(ctrl *tracker.DungeonsController) *DungeonsViewModel {
	res := &DungeonsViewModel{ctrl: ctrl}
	ctrl.UserData().OnChange(func(property string) {
		switch property {
		case userdata.PropCompletedPaths, userdata.PropHiddenDungeons, userdata.PropAreCompletedPathsVisible:
			res.notify(PropDungeons)
		}
	})
	return res
}

// Dungeons returns the visible dungeon list
func (vm *DungeonsViewModel) Dungeons(ctx context.Context) ([]domain.DungeonStatus, error) {
	return vm.ctrl.VisibleDungeons(ctx)
}

// AllDungeons returns all dungeons including hidden ones and completed paths
func (vm *DungeonsViewModel) AllDungeons(ctx context.Context) ([]domain.DungeonStatus, error) {
	return vm.ctrl.Dungeons(ctx)
}

// TogglePathCommand flips path completion and returns the new state
func (vm *DungeonsViewModel) TogglePathCommand(id uuid.UUID) (bool, error) {
	return vm.ctrl.TogglePath(id)
}

// CompletePathCommand marks path completed and records a timed run
func (vm *DungeonsViewModel) CompletePathCommand(ctx context.Context, id uuid.UUID, d time.Duration) (*domain.PathRun, error) {
	run, err := vm.ctrl.CompletePath(ctx, id, d)
	if err != nil {
		return nil, err
	}
	if run != nil {
		vm.notify(PropDungeons) // best time may change without a user data change
	}
	return run, nil
}

// RunsCommand returns recorded runs of a path
func (vm *DungeonsViewModel) RunsCommand(ctx context.Context, id uuid.UUID, limit int) ([]domain.PathRun, error) {
	return vm.ctrl.Runs(ctx, id, limit)
}

// ClearRunsCommand removes recorded runs of a path
func (vm *DungeonsViewModel) ClearRunsCommand(ctx context.Context, id uuid.UUID) (int64, error) {
	n, err := vm.ctrl.ClearRuns(ctx, id)
	if err == nil && n > 0 {
		vm.notify(PropDungeons)
	}
	return n, err
}

// HideDungeonCommand hides or shows a dungeon
func (vm *DungeonsViewModel) HideDungeonCommand(id uuid.UUID, hidden bool) error {
	return vm.ctrl.SetDungeonHidden(id, hidden)
}

// ResetCommand unmarks all completed paths
func (vm *DungeonsViewModel) ResetCommand() error { return vm.ctrl.ResetCompletedPaths() }
