// Package mysync provides a test-and-set spin lock.
package mysync

import (
	"runtime"
	"sync/atomic"
)

// TASLock is a test-and-set lock: Lock spins (yielding the processor) until
// it swaps the state from unlocked to locked.
// The zero value is an unlocked lock.
type TASLock struct {
	state atomic.Bool
}

// Lock locks the TASLock.
func (lock *TASLock) Lock() {
	for lock.state.Swap(true) {
		runtime.Gosched()
	}
}

// TryLock locks the TASLock if it is free and reports whether it did.
func (lock *TASLock) TryLock() bool {
	return !lock.state.Swap(true)
}

// Unlock unlocks the TASLock.
func (lock *TASLock) Unlock() {
	lock.state.Store(false)
}
