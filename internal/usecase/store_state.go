package usecase

import "sync"

// storeState carries the per-store loading flag and current error string the
// UI boundary reads. Every store action runs through begin/finish so loading
// can never stay stuck after a failed call, and a new action always clears
// the previous error before touching storage.
//
// The mutex guards only the in-memory state. Overlapping actions are not
// serialized: two concurrent creates can still read the same collection and
// collide on the local backend, which is the accepted last-write-wins
// limitation of that backend.
type storeState struct {
	mu      sync.RWMutex
	loading bool
	errMsg  string
}

func (s *storeState) begin() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *storeState) finish() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *storeState) fail(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
}

// Loading reports whether an action is in flight.
func (s *storeState) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the display message of the last failed action, or "" when the
// last action succeeded.
func (s *storeState) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}
