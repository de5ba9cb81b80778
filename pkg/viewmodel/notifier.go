// Package viewmodel binds commands and collections to the tracker controllers and the item database.
// View-models are safe for concurrent use and report changed properties to subscribers.
package viewmodel

import (
	"slices"
	"sync"
)

// property names reported by view-models
const (
	PropProgress = "Progress"
	PropItems    = "Items"
	PropEvents   = "Events"
	PropDungeons = "Dungeons"
	PropSettings = "Settings"
)

// notifier fans out property changes to subscribers
type notifier struct {
	mu   sync.Mutex
	subs []func(property string)
}

// Subscribe adds fn to property change subscribers
func (n *notifier) Subscribe(fn func(property string)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = append(n.subs, fn)
}

func (n *notifier) notify(props ...string) {
	n.mu.Lock()
	subs := slices.Clone(n.subs)
	n.mu.Unlock()
	for _, fn := range subs {
		for _, p := range props {
			fn(p)
		}
	}
}
