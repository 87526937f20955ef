package plot

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"
)

// Slot names a chart position owned by a controller.
type Slot string

// Registry owns at most one live Handle per slot. All operations on the
// registry are serialised, so a replacement is atomic with respect to any
// other access to the same slot.
type Registry struct {
	mu      sync.Mutex
	handles map[Slot]Handle
}

func NewRegistry() *Registry {
	return &Registry{handles: make(map[Slot]Handle)}
}

// Replace destroys the slot's current handle, then builds and stores the
// new one. When build fails the slot is left empty.
func (r *Registry) Replace(slot Slot, build func() (Handle, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.dispose(slot); err != nil {
		return err
	}

	handle, err := build()
	if err != nil {
		return fmt.Errorf("failed to build %s: %w", slot, err)
	}
	r.handles[slot] = handle
	return nil
}

// Get returns the live handle of a slot.
func (r *Registry) Get(slot Slot) (Handle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.handles[slot]
	return h, ok
}

// Dispose destroys and forgets the handles of the given slots.
func (r *Registry) Dispose(slots ...Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for _, slot := range slots {
		errs = append(errs, r.dispose(slot))
	}
	return errors.Join(errs...)
}

// Slots lists the occupied slots in name order.
func (r *Registry) Slots() []Slot {
	r.mu.Lock()
	defer r.mu.Unlock()

	slots := lo.Keys(r.handles)
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}

// Close destroys every handle.
func (r *Registry) Close() error {
	return r.Dispose(r.Slots()...)
}

func (r *Registry) dispose(slot Slot) error {
	h, ok := r.handles[slot]
	if !ok {
		return nil
	}

	delete(r.handles, slot)
	if err := h.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy %s: %w", slot, err)
	}
	return nil
}
