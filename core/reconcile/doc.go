// Package reconcile decides which menu snapshot is authoritative for a session.
//
// Two snapshots compete when a session starts:
//
//  1. Baseline: the menu document fetched from the baseline source (object storage or a
//     file). It is the durable, operator-committed state.
//  2. Staged: the pending changes kept in the staging store under a single key.
//
// # State Machine
//
// Load fetches the baseline through a short-lived cache and compares it with the staged
// snapshot:
//
//   - no staged snapshot, or staged equal to baseline: BaselineActive (baseline is shown)
//   - staged differs from baseline: Divergent (staged is shown, the caller prompts the user)
//
// The comparison is order-sensitive: a reordered menu counts as divergent.
//
// From Divergent the user can Sync (promote the staged menu to the new baseline and export
// the document for manual commit) or Reset (drop the staged snapshot). Every mutation made
// through the menu store is persisted to staging and moves the coordinator to LocalActive;
// divergence is not re-evaluated until the next Load.
//
// A failed fetch is never fatal: the baseline degrades to an empty menu. Corrupt staged
// data is treated as absent.
//
// # Modes
//
//   - source: the behavior above.
//   - local: the fetch is skipped and the staging store is the baseline. An empty store
//     is seeded with the configured default dishes.
//
// # Usage
//
//	coord, err := reconcile.NewCoordinator(cfg.Reconcile, src, exporter, stagingStore, logger)
//	res := coord.Load(ctx)
//	store := menu.NewStore(res.Active.Dishes, coord)
//	if res.Divergent {
//	    result, err := coord.Sync(ctx)
//	}
//
// A Coordinator is not safe for concurrent use; callers serialize access.
package reconcile
