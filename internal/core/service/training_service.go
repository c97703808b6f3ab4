package service

import (
	"context"
	"sync"

	"github.com/exportbase/marketplace-api/internal/core/domain"
)

// TrainingService tracks per-user progress through the training modules.
// Module content is a fixture set; progress lives in memory for the process
// lifetime, keyed by user ID.
type TrainingService struct {
	modules []*domain.TrainingModule

	mu        sync.RWMutex
	completed map[string]map[string]bool // user ID → module ID → done
}

func NewTrainingService(modules []*domain.TrainingModule) *TrainingService {
	return &TrainingService{
		modules:   modules,
		completed: make(map[string]map[string]bool),
	}
}

// List returns all modules annotated with the user's state. A module with
// unmet requirements is locked; a completed one stays completed.
func (s *TrainingService) List(_ context.Context, userID string) []*domain.ModuleProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	done := s.completed[userID]
	out := make([]*domain.ModuleProgress, 0, len(s.modules))
	for _, m := range s.modules {
		state := s.stateLocked(m, done)
		out = append(out, &domain.ModuleProgress{
			TrainingModule: *m,
			State:          state,
			Progress:       progressFor(state),
		})
	}
	return out
}

// Modules returns the raw module catalog without per-user state.
func (s *TrainingService) Modules(_ context.Context) []*domain.TrainingModule {
	return s.modules
}

// Complete marks a module done for the user, unlocking its dependents.
// Completing a locked module is rejected; completing an already completed
// one is a no-op.
func (s *TrainingService) Complete(_ context.Context, userID, moduleID string) (*domain.ModuleProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	module := s.find(moduleID)
	if module == nil {
		return nil, domain.ErrModuleNotFound
	}

	done := s.completed[userID]
	if s.stateLocked(module, done) == domain.ModuleLocked {
		return nil, domain.ErrModuleLocked
	}

	if done == nil {
		done = make(map[string]bool)
		s.completed[userID] = done
	}
	done[moduleID] = true

	return &domain.ModuleProgress{
		TrainingModule: *module,
		State:          domain.ModuleCompleted,
		Progress:       100,
	}, nil
}

func (s *TrainingService) find(id string) *domain.TrainingModule {
	for _, m := range s.modules {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// stateLocked computes a module's state from the completion set. Callers
// hold at least the read lock.
func (s *TrainingService) stateLocked(m *domain.TrainingModule, done map[string]bool) domain.ModuleState {
	if done[m.ID] {
		return domain.ModuleCompleted
	}
	for _, req := range m.Requires {
		if !done[req] {
			return domain.ModuleLocked
		}
	}
	return domain.ModuleAvailable
}

func progressFor(state domain.ModuleState) int {
	if state == domain.ModuleCompleted {
		return 100
	}
	return 0
}
