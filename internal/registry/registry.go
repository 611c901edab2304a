// Package registry tracks which conversation contexts have translation
// turned on and with which language pair.
package registry

import (
	"fmt"
	"sync"

	"github.com/linguarelay/linguarelay/internal/langs"
)

// Key identifies one conversation surface by exact string equality.
type Key struct {
	Network string
	Channel string
}

// Pair is an active source/target language pair for a context.
type Pair struct {
	Source string
	Target string
}

// Registry maps conversation contexts to their active language pairs. It is
// the single source of truth for "is translation on here". Safe for
// concurrent use; callers never see the backing map.
type Registry struct {
	mu sync.RWMutex
	m  map[Key]Pair
}

func New() *Registry {
	return &Registry{m: make(map[Key]Pair)}
}

// Activate turns translation on for key, overwriting any previous pair.
// Both codes must be supported and must differ; on rejection the registry
// is left unchanged.
func (r *Registry) Activate(key Key, source, target string) error {
	if !langs.IsCode(source) {
		return fmt.Errorf("unsupported source language %q", source)
	}
	if !langs.IsCode(target) {
		return fmt.Errorf("unsupported target language %q", target)
	}
	if source == target {
		return fmt.Errorf("source and target languages must differ")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[key] = Pair{Source: source, Target: target}
	return nil
}

// Deactivate turns translation off for key. Removing an absent key is a
// no-op.
func (r *Registry) Deactivate(key Key) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, key)
}

// Lookup returns the active pair for key. Absence means translation is off
// for that context.
func (r *Registry) Lookup(key Key) (Pair, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.m[key]
	return p, ok
}
