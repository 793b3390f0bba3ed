package reconcile

import (
	"errors"
	"slices"
	"time"

	"menu-manager/core/baseline"
)

var (
	// ErrFetchFailed marks a baseline fetch failure. It is reported, never fatal.
	ErrFetchFailed = errors.New("baseline fetch failed")
	// ErrMalformedStorage marks staged data that could not be decoded.
	ErrMalformedStorage = errors.New("malformed staged data")
	// ErrNothingToSync is returned by Sync and Reset when no staged changes are active.
	ErrNothingToSync = errors.New("no staged changes to reconcile")
	// ErrLocalOnly is returned by Sync and Reset in local mode.
	ErrLocalOnly = errors.New("not available in local mode")
)

// State is the coordinator's view of which snapshot is current.
type State string

const (
	// StateInit is the state before the first Load.
	StateInit State = "init"
	// StateBaselineActive means the baseline is the active menu.
	StateBaselineActive State = "baseline_active"
	// StateLocalActive means the active menu was changed during this session.
	StateLocalActive State = "local_active"
	// StateDivergent means staged changes found at load time differ from the baseline.
	StateDivergent State = "divergent"
)

// HasPendingChanges reports whether Sync and Reset are available in this state.
func (s State) HasPendingChanges() bool {
	return s == StateDivergent || s == StateLocalActive
}

// SnapshotSource tags where a snapshot came from.
type SnapshotSource string

const (
	SourceLocal    SnapshotSource = "local"
	SourceBaseline SnapshotSource = "baseline"
)

// Snapshot is an immutable copy of a menu.
type Snapshot struct {
	// Source is where the snapshot came from.
	Source SnapshotSource `json:"source"`
	// Dishes is the ordered list of dish names.
	Dishes []string `json:"dishes"`
	// LastUpdated is the baseline's timestamp. Zero for local snapshots.
	LastUpdated time.Time `json:"last_updated"`
}

// Equal reports whether both snapshots hold the same dishes in the same order.
func (s Snapshot) Equal(other Snapshot) bool {
	return slices.Equal(s.Dishes, other.Dishes)
}

func (s Snapshot) clone() Snapshot {
	s.Dishes = slices.Clone(s.Dishes)
	if s.Dishes == nil {
		s.Dishes = []string{}
	}
	return s
}

// Resolution is the outcome of Load.
type Resolution struct {
	// State is the resolved state.
	State State `json:"state"`
	// Active is the snapshot the session should work on.
	Active Snapshot `json:"active"`
	// Baseline is the baseline snapshot (empty when the fetch failed).
	Baseline Snapshot `json:"baseline"`
	// BaselineAvailable is false when the fetch failed.
	BaselineAvailable bool `json:"baseline_available"`
	// BaselineErr wraps ErrFetchFailed when the fetch failed.
	BaselineErr error `json:"-"`
	// Divergent is true when the user should be prompted to reconcile.
	Divergent bool `json:"divergent"`
}

// SyncResult is the outcome of Sync.
type SyncResult struct {
	// Document is the updated baseline document for the operator to commit.
	Document *baseline.Document `json:"document"`
	// Location is where the exporter published the document, if anywhere.
	Location string `json:"location,omitempty"`
	// Active is the new active (baseline) snapshot.
	Active Snapshot `json:"active"`
}

// Status summarizes the coordinator for display.
type Status struct {
	Mode              string         `json:"mode"`
	State             State          `json:"state"`
	DataSource        SnapshotSource `json:"data_source"`
	HasStagedChanges  bool           `json:"has_staged_changes"`
	BaselineAvailable bool           `json:"baseline_available"`
	BaselineUpdated   time.Time      `json:"baseline_updated"`
}
