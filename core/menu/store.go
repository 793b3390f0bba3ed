package menu

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Persister receives the full menu after every mutation.
type Persister interface {
	// Persist stores the given dishes. It must not retain the slice.
	Persist(ctx context.Context, dishes []string) error
}

// Store holds the active menu of a single session.
type Store struct {
	dishes    []string
	persister Persister
}

// NewStore creates a store seeded with the given dishes.
// The seed is sanitized so the store starts out honoring its invariants.
func NewStore(dishes []string, persister Persister) *Store {
	return &Store{
		dishes:    Sanitize(dishes),
		persister: persister,
	}
}

// List returns a copy of the current dishes in menu order.
func (s *Store) List() []string {
	return slices.Clone(s.dishes)
}

// Len returns the number of dishes.
func (s *Store) Len() int {
	return len(s.dishes)
}

// Contains reports whether name is on the menu.
func (s *Store) Contains(name string) bool {
	return slices.Contains(s.dishes, name)
}

// Add appends a dish to the end of the menu.
func (s *Store) Add(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if s.Contains(name) {
		return fmt.Errorf("add %q: %w", name, ErrAlreadyExists)
	}

	return s.apply(ctx, append(slices.Clone(s.dishes), name))
}

// Delete removes every occurrence of name. The menu is persisted even when
// name was not present.
func (s *Store) Delete(ctx context.Context, name string) error {
	next := slices.DeleteFunc(slices.Clone(s.dishes), func(d string) bool {
		return d == name
	})
	return s.apply(ctx, next)
}

// Rename replaces oldName with newName in place.
// Renaming a dish to itself succeeds without touching the menu.
func (s *Store) Rename(ctx context.Context, oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrEmptyName
	}
	if newName == oldName {
		return nil
	}
	if s.Contains(newName) {
		return fmt.Errorf("rename to %q: %w", newName, ErrAlreadyExists)
	}

	idx := slices.Index(s.dishes, oldName)
	if idx == -1 {
		return fmt.Errorf("rename %q: %w", oldName, ErrNotFound)
	}

	next := slices.Clone(s.dishes)
	next[idx] = newName
	return s.apply(ctx, next)
}

// Replace swaps the whole menu, e.g. after a reset to the baseline.
// It does not persist.
func (s *Store) Replace(dishes []string) {
	s.dishes = Sanitize(dishes)
}

// apply persists next and only then makes it the active menu.
func (s *Store) apply(ctx context.Context, next []string) error {
	if s.persister != nil {
		if err := s.persister.Persist(ctx, slices.Clone(next)); err != nil {
			return fmt.Errorf("failed to persist menu: %w", err)
		}
	}
	s.dishes = next
	return nil
}

// Sanitize trims names and drops empty and repeated entries, keeping the first
// occurrence of each name.
func Sanitize(dishes []string) []string {
	out := make([]string, 0, len(dishes))
	seen := make(map[string]struct{}, len(dishes))
	for _, d := range dishes {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
