// Package menu owns the canonical list of dish names.
//
// The Store keeps an ordered, duplicate-free sequence of dish names and exposes the
// read-modify-write operations on it. Every mutation is handed to a Persister before
// the call returns, so callers can rely on the write being durably queued.
//
// # Invariants
//
//   - Dish names are trimmed and never empty.
//   - Names are unique, compared case-sensitively.
//   - Insertion order is preserved; Rename keeps the position of the renamed dish.
//
// # Usage
//
//	store := menu.NewStore(initial, coordinator)
//	if err := store.Add(ctx, "  Kung Pao  "); errors.Is(err, menu.ErrAlreadyExists) {
//	    // report to the user
//	}
package menu
