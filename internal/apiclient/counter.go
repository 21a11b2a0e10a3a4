package apiclient

import "sync"

// LoadingCounter tracks in-flight requests and drives a blocking loading
// indicator. The show callback fires only on the 0→1 transition and hide
// only on 1→0, so overlapping requests toggle the indicator once.
type LoadingCounter struct {
	mu       sync.Mutex
	inflight int
	show     func()
	hide     func()
}

// NewLoadingCounter creates a counter with the given boundary callbacks.
// Either callback may be nil.
func NewLoadingCounter(show, hide func()) *LoadingCounter {
	return &LoadingCounter{show: show, hide: hide}
}

// Add records a dispatched request.
func (l *LoadingCounter) Add() {
	l.mu.Lock()
	l.inflight++
	crossed := l.inflight == 1
	l.mu.Unlock()
	if crossed && l.show != nil {
		l.show()
	}
}

// Done records a settled request, success or failure. An unpaired Done at
// zero is a no-op; hide fires only when a real decrement reaches zero.
func (l *LoadingCounter) Done() {
	l.mu.Lock()
	crossed := false
	if l.inflight > 0 {
		l.inflight--
		crossed = l.inflight == 0
	}
	l.mu.Unlock()
	if crossed && l.hide != nil {
		l.hide()
	}
}

// Inflight returns the number of requests currently counted.
func (l *LoadingCounter) Inflight() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inflight
}
