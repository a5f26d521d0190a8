package heightmgr

import "time"

// revertState is the reversion sub-machine's state.
type revertState int

const (
	revertIdle revertState = iota
	revertTimerArmed
	revertKeyArmed
)

// reverter schedules the end of an activation episode: a one-shot
// timer, optionally handing off to a one-shot key watch once the timer
// has fired. At most one timer and one key watch exist at a time;
// arming always cancels whatever was outstanding first.
type reverter struct {
	host    Host
	state   revertState
	timer   Timer
	unwatch func()
	epoch   uint64 // invalidates callbacks from cancelled arms
}

// arm cancels any outstanding timer or key watch and starts a fresh
// timer. When it fires, onTimer runs immediately unless removeOnKey is
// set, in which case the reverter switches to watching for the next
// input event and runs onKey when it arrives.
func (r *reverter) arm(d time.Duration, removeOnKey bool, onTimer, onKey func()) {
	r.cancel()
	r.state = revertTimerArmed
	epoch := r.epoch
	r.timer = r.host.AfterFunc(d, func() {
		if r.epoch != epoch || r.state != revertTimerArmed {
			return
		}
		r.timer = nil
		if removeOnKey {
			r.state = revertKeyArmed
			r.unwatch = r.host.WatchKeys(func() {
				if r.epoch != epoch || r.state != revertKeyArmed {
					return
				}
				r.unwatch = nil
				r.state = revertIdle
				onKey()
			})
			return
		}
		r.state = revertIdle
		onTimer()
	})
}

// cancel stops the timer and uninstalls the key watch. Idempotent.
func (r *reverter) cancel() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	if r.unwatch != nil {
		r.unwatch()
		r.unwatch = nil
	}
	r.state = revertIdle
	r.epoch++
}

func (r *reverter) idle() bool {
	return r.state == revertIdle
}
