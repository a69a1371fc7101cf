package settings

import (
	"sync"

	"github.com/corkboard/corkboard/pkg/canvas"
)

// Backend names used for configuration and hook reporting.
const (
	BackendStatic = "static"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Static is an in-memory policy provider. Unlike the other backends it is
// safe for concurrent use, because the interactive board mutates it from key
// handlers while drag updates read it.
type Static struct {
	mu     sync.RWMutex
	policy canvas.GridPolicy
}

// NewStatic creates a static provider with the given initial policy.
func NewStatic(policy canvas.GridPolicy) *Static {
	return &Static{policy: policy}
}

// GridPolicy implements canvas.PolicyProvider.
func (s *Static) GridPolicy() canvas.GridPolicy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy
}

// SetGridPolicy replaces the stored policy.
func (s *Static) SetGridPolicy(policy canvas.GridPolicy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policy = policy
}

// ToggleSnap flips the snap flag and returns the resulting policy.
func (s *Static) ToggleSnap() canvas.GridPolicy {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policy.SnapToGrid = !s.policy.SnapToGrid
	return s.policy
}
