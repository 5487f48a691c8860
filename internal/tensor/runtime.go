package tensor

import "sync"

// Process-global runtime configuration: seed control and deterministic
// mode for reproducible execution.

var runtimeCfg struct {
	mu            sync.Mutex
	seed          uint64
	deterministic bool
}

// SetSeed sets the global seed and enables deterministic mode.
func SetSeed(seed uint64) {
	runtimeCfg.mu.Lock()
	runtimeCfg.seed = seed
	runtimeCfg.deterministic = true
	runtimeCfg.mu.Unlock()
}

// Seed returns the current global seed.
func Seed() uint64 {
	runtimeCfg.mu.Lock()
	defer runtimeCfg.mu.Unlock()
	return runtimeCfg.seed
}

// Deterministic reports whether deterministic mode is enabled.
func Deterministic() bool {
	runtimeCfg.mu.Lock()
	defer runtimeCfg.mu.Unlock()
	return runtimeCfg.deterministic
}

// SetDeterministic toggles deterministic mode without changing the
// seed.
func SetDeterministic(enabled bool) {
	runtimeCfg.mu.Lock()
	runtimeCfg.deterministic = enabled
	runtimeCfg.mu.Unlock()
}
