package barplot

import (
	"sync"
	"time"
)

// Notifier carries focus and highlight signals from scene interactions
// to whatever panel layer is listening, without tying the engine to a
// UI framework. The highlight timer is cosmetic: it restarts on every
// signal and emits a clearing event when it expires.
type Notifier struct {
	mu    sync.Mutex
	subs  []func(FocusTarget)
	timer *time.Timer
}

// None is the clearing target emitted when a highlight expires.
var None = FocusTarget{Key: "", Index: -1}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers a listener. Listeners are invoked synchronously
// on Focus and from the timer goroutine on highlight expiry.
func (n *Notifier) Subscribe(fn func(FocusTarget)) {
	if fn == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = append(n.subs, fn)
}

// Focus reports a direct interaction with a scene element.
func (n *Notifier) Focus(t FocusTarget) {
	n.mu.Lock()
	subs := make([]func(FocusTarget), len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()
	for _, fn := range subs {
		fn(t)
	}
}

// Highlight reports an interaction and schedules the clearing event.
// A pending expiry is restarted, never stacked.
func (n *Notifier) Highlight(t FocusTarget, ttl time.Duration) {
	n.Focus(t)
	if ttl <= 0 {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(ttl, func() {
		n.Focus(None)
	})
}

// Stop cancels a pending highlight expiry.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
