// SPDX-License-Identifier: EPL-2.0

package output

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry maps sink names to openers.
type Registry struct {
	mu      sync.RWMutex
	openers map[string]Opener
}

func NewRegistry() *Registry {
	return &Registry{openers: make(map[string]Opener)}
}

// Register adds or replaces the opener for name. Names are case-insensitive.
func (r *Registry) Register(name string, o Opener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.openers[strings.ToLower(name)] = o
}

func (r *Registry) Get(name string) (Opener, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.openers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSink, name)
	}
	return o, nil
}

// Names lists registered sinks in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.openers))
	for name := range r.openers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
