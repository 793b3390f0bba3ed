package menu

import (
	"context"
	"sync"

	"menu-manager/core/baseline"
	"menu-manager/core/menu"
	"menu-manager/core/reconcile"
	"menu-manager/core/selector"

	"go.uber.org/zap"
)

// View is the active menu together with its sync status.
type View struct {
	Dishes    []string `json:"dishes"`
	Divergent bool     `json:"divergent"`
	reconcile.Status
}

// Service handles menu operations for a single session.
type Service struct {
	mu          sync.Mutex
	coordinator *reconcile.Coordinator
	selector    *selector.Selector
	store       *menu.Store
	logger      *zap.Logger
}

// NewService creates a new menu service. Call Load before serving requests;
// operations load lazily otherwise.
func NewService(coordinator *reconcile.Coordinator, sel *selector.Selector, logger *zap.Logger) *Service {
	if sel == nil {
		sel = selector.New(nil)
	}
	return &Service{
		coordinator: coordinator,
		selector:    sel,
		logger:      logger,
	}
}

// Load resolves the active menu, as on a fresh page load.
func (s *Service) Load(ctx context.Context) reconcile.Resolution {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *Service) load(ctx context.Context) reconcile.Resolution {
	res := s.coordinator.Load(ctx)
	s.store = menu.NewStore(res.Active.Dishes, s.coordinator)

	s.logger.Info("Menu loaded",
		zap.String("state", string(res.State)),
		zap.Int("dishes", len(res.Active.Dishes)),
		zap.Bool("baseline_available", res.BaselineAvailable))
	return res
}

func (s *Service) ensureLoaded(ctx context.Context) {
	if s.store == nil {
		s.load(ctx)
	}
}

func (s *Service) view() View {
	status := s.coordinator.Status()
	return View{
		Dishes:    s.store.List(),
		Divergent: status.State == reconcile.StateDivergent,
		Status:    status,
	}
}

// Get returns the active menu.
func (s *Service) Get(ctx context.Context) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.view()
}

// Status returns the sync status.
func (s *Service) Status(ctx context.Context) reconcile.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.coordinator.Status()
}

// Add adds a dish.
func (s *Service) Add(ctx context.Context, name string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	if err := s.store.Add(ctx, name); err != nil {
		return View{}, err
	}
	return s.view(), nil
}

// Rename renames a dish.
func (s *Service) Rename(ctx context.Context, oldName, newName string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	if err := s.store.Rename(ctx, oldName, newName); err != nil {
		return View{}, err
	}
	return s.view(), nil
}

// Delete deletes a dish.
func (s *Service) Delete(ctx context.Context, name string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	if err := s.store.Delete(ctx, name); err != nil {
		return View{}, err
	}
	return s.view(), nil
}

// Sample draws count random dishes from the active menu.
func (s *Service) Sample(ctx context.Context, count int) (selector.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	return s.selector.Sample(s.store.List(), count)
}

// Sync promotes staged changes to the baseline and exports the document.
func (s *Service) Sync(ctx context.Context) (*reconcile.SyncResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	result, err := s.coordinator.Sync(ctx)
	if err != nil {
		return nil, err
	}
	s.store.Replace(result.Active.Dishes)
	return result, nil
}

// Reset discards staged changes.
func (s *Service) Reset(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	snap, err := s.coordinator.Reset(ctx)
	if err != nil {
		return View{}, err
	}
	s.store.Replace(snap.Dishes)
	return s.view(), nil
}

// Export returns the baseline document for the active menu.
func (s *Service) Export(ctx context.Context) *baseline.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	return s.coordinator.Export(s.store.List())
}

// InvalidateBaseline drops the cached baseline so the next load refetches it.
func (s *Service) InvalidateBaseline() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coordinator.InvalidateBaseline()
}
