package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"menu-manager/core/baseline"
	"menu-manager/core/menu"
	"menu-manager/core/staging"

	"go.uber.org/zap"
)

// Coordinator reconciles the baseline with staged changes for one session.
// It implements menu.Persister: every menu mutation is written to staging.
type Coordinator struct {
	mode       string
	source     baseline.Source
	exporter   baseline.Exporter
	staging    staging.Store
	stagingKey string
	defaults   []string
	cache      *baselineCache
	logger     *zap.Logger
	now        func() time.Time

	state             State
	baseline          Snapshot
	baselineAvailable bool
	hasStaged         bool
}

var _ menu.Persister = (*Coordinator)(nil)

// NewCoordinator creates a Coordinator. The source may be nil in local mode.
// A nil exporter hands documents back without publishing them.
func NewCoordinator(cfg Config, source baseline.Source, exporter baseline.Exporter, store staging.Store, logger *zap.Logger) (*Coordinator, error) {
	if !cfg.IsValidMode() {
		return nil, fmt.Errorf("invalid reconcile mode: %q", cfg.Mode)
	}
	if store == nil {
		return nil, fmt.Errorf("staging store is required")
	}
	if cfg.Mode == ModeSource && source == nil {
		return nil, fmt.Errorf("baseline source is required in %s mode", ModeSource)
	}
	if cfg.StagingKey == "" {
		return nil, fmt.Errorf("staging key is required")
	}
	if exporter == nil {
		exporter = baseline.NopExporter{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Coordinator{
		mode:       cfg.Mode,
		source:     source,
		exporter:   exporter,
		staging:    store,
		stagingKey: cfg.StagingKey,
		defaults:   menu.Sanitize(cfg.Defaults),
		cache:      newBaselineCache(cfg.CacheTTL),
		logger:     logger.With(zap.String("mode", cfg.Mode)),
		now:        time.Now,
		state:      StateInit,
		baseline:   Snapshot{Source: SourceBaseline, Dishes: []string{}},
	}, nil
}

// Load resolves the active snapshot. It never fails: fetch and storage errors
// degrade to an empty baseline or an absent staged snapshot.
func (c *Coordinator) Load(ctx context.Context) Resolution {
	if c.mode == ModeLocal {
		return c.loadLocal(ctx)
	}

	res := Resolution{}

	doc, err := c.cache.get(ctx, c.source)
	if err != nil {
		res.BaselineErr = fmt.Errorf("%w: %v", ErrFetchFailed, err)
		c.logger.Warn("Baseline unavailable, continuing with an empty menu", zap.Error(res.BaselineErr))
		c.baseline = Snapshot{Source: SourceBaseline, Dishes: []string{}}
		c.baselineAvailable = false
	} else {
		c.baseline = Snapshot{
			Source:      SourceBaseline,
			Dishes:      menu.Sanitize(doc.Menu),
			LastUpdated: doc.LastUpdated,
		}
		c.baselineAvailable = true
	}

	res.Baseline = c.baseline.clone()
	res.BaselineAvailable = c.baselineAvailable

	staged, ok := c.readStaged(ctx)
	c.hasStaged = ok

	switch {
	case !ok:
		c.state = StateBaselineActive
		res.Active = c.baseline.clone()
	case staged.Equal(c.baseline):
		c.state = StateBaselineActive
		res.Active = c.baseline.clone()
	default:
		c.state = StateDivergent
		res.Active = staged
		res.Divergent = true
		c.logger.Info("Staged menu differs from baseline",
			zap.Int("staged", len(staged.Dishes)),
			zap.Int("baseline", len(c.baseline.Dishes)))
	}

	res.State = c.state
	return res
}

func (c *Coordinator) loadLocal(ctx context.Context) Resolution {
	staged, ok := c.readStaged(ctx)
	if !ok || len(staged.Dishes) == 0 {
		staged = Snapshot{Source: SourceLocal, Dishes: menu.Sanitize(c.defaults)}
		if err := c.writeStaged(ctx, staged.Dishes); err != nil {
			c.logger.Warn("Failed to persist default menu", zap.Error(err))
		} else {
			ok = true
		}
		c.logger.Info("Seeded menu with defaults", zap.Int("dishes", len(staged.Dishes)))
	}

	c.baseline = staged
	c.baselineAvailable = true
	c.hasStaged = ok
	c.state = StateBaselineActive

	return Resolution{
		State:             c.state,
		Active:            staged.clone(),
		Baseline:          staged.clone(),
		BaselineAvailable: true,
	}
}

// Persist writes dishes to the staging store and marks the session as LocalActive.
func (c *Coordinator) Persist(ctx context.Context, dishes []string) error {
	if err := c.writeStaged(ctx, dishes); err != nil {
		return err
	}
	c.hasStaged = true

	if c.mode == ModeLocal {
		c.baseline = Snapshot{Source: SourceLocal, Dishes: menu.Sanitize(dishes)}
		c.state = StateBaselineActive
		return nil
	}

	c.state = StateLocalActive
	return nil
}

// Sync promotes the staged menu to be the new baseline. The staged content stays in
// staging as the pending baseline update until the operator commits the exported
// document to the baseline source.
func (c *Coordinator) Sync(ctx context.Context) (*SyncResult, error) {
	if c.mode == ModeLocal {
		return nil, ErrLocalOnly
	}
	if !c.state.HasPendingChanges() {
		return nil, ErrNothingToSync
	}

	staged, ok := c.readStaged(ctx)
	if !ok {
		return nil, ErrNothingToSync
	}

	doc := baseline.NewDocument(staged.Dishes, c.now())

	if err := c.writeStaged(ctx, staged.Dishes); err != nil {
		return nil, err
	}

	location, err := c.exporter.Export(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to export menu document: %w", err)
	}

	c.cache.set(doc)
	c.baseline = Snapshot{
		Source:      SourceBaseline,
		Dishes:      staged.Dishes,
		LastUpdated: doc.LastUpdated,
	}
	c.hasStaged = true
	c.state = StateBaselineActive

	c.logger.Info("Staged menu promoted to baseline",
		zap.Int("dishes", len(doc.Menu)),
		zap.String("location", location))

	return &SyncResult{
		Document: doc,
		Location: location,
		Active:   c.baseline.clone(),
	}, nil
}

// Reset discards the staged snapshot and returns the baseline as the active menu.
func (c *Coordinator) Reset(ctx context.Context) (Snapshot, error) {
	if c.mode == ModeLocal {
		return Snapshot{}, ErrLocalOnly
	}
	if !c.state.HasPendingChanges() {
		return Snapshot{}, ErrNothingToSync
	}

	if err := c.staging.Delete(ctx, c.stagingKey); err != nil {
		return Snapshot{}, fmt.Errorf("failed to discard staged menu: %w", err)
	}

	c.hasStaged = false
	c.state = StateBaselineActive
	c.logger.Info("Staged menu discarded", zap.Int("baseline", len(c.baseline.Dishes)))

	return c.baseline.clone(), nil
}

// Export builds the baseline document for dishes stamped with the current time.
// It does not publish the document or change state.
func (c *Coordinator) Export(dishes []string) *baseline.Document {
	return baseline.NewDocument(dishes, c.now())
}

// InvalidateBaseline forces the next Load to fetch the baseline again.
func (c *Coordinator) InvalidateBaseline() {
	c.cache.invalidate()
}

// State returns the current state.
func (c *Coordinator) State() State {
	return c.state
}

// Mode returns the configured mode.
func (c *Coordinator) Mode() string {
	return c.mode
}

// Status summarizes the coordinator.
func (c *Coordinator) Status() Status {
	source := SourceBaseline
	if c.mode == ModeLocal || c.state.HasPendingChanges() {
		source = SourceLocal
	}

	return Status{
		Mode:              c.mode,
		State:             c.state,
		DataSource:        source,
		HasStagedChanges:  c.hasStaged,
		BaselineAvailable: c.baselineAvailable,
		BaselineUpdated:   c.baseline.LastUpdated,
	}
}

func (c *Coordinator) readStaged(ctx context.Context) (Snapshot, bool) {
	data, ok, err := c.staging.Get(ctx, c.stagingKey)
	if err != nil {
		c.logger.Warn("Failed to read staged menu, ignoring it", zap.Error(err))
		return Snapshot{}, false
	}
	if !ok {
		return Snapshot{}, false
	}

	var dishes []string
	if err := json.Unmarshal(data, &dishes); err != nil {
		c.logger.Warn("Staged menu is corrupt, ignoring it", zap.Error(fmt.Errorf("%w: %v", ErrMalformedStorage, err)))
		return Snapshot{}, false
	}

	return Snapshot{Source: SourceLocal, Dishes: menu.Sanitize(dishes)}, true
}

func (c *Coordinator) writeStaged(ctx context.Context, dishes []string) error {
	if dishes == nil {
		dishes = []string{}
	}
	data, err := json.Marshal(dishes)
	if err != nil {
		return fmt.Errorf("failed to encode staged menu: %w", err)
	}
	if err := c.staging.Set(ctx, c.stagingKey, data); err != nil {
		return fmt.Errorf("failed to stage menu: %w", err)
	}
	return nil
}
