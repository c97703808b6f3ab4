package service

import (
	"context"
	"strings"

	"github.com/exportbase/marketplace-api/internal/core/domain"
)

// DirectoryService serves the public factory directory from fixtures.
type DirectoryService struct {
	factories []*domain.FactoryProfile
}

func NewDirectoryService(factories []*domain.FactoryProfile) *DirectoryService {
	return &DirectoryService{factories: factories}
}

// List returns directory entries matching the optional category and search
// filters. Search matches name and location, case-insensitively.
func (s *DirectoryService) List(_ context.Context, category, search string) []*domain.FactoryProfile {
	out := make([]*domain.FactoryProfile, 0, len(s.factories))
	for _, f := range s.factories {
		if category != "" && !hasCategory(f, category) {
			continue
		}
		if search != "" && !matchesSearch(f, search) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func (s *DirectoryService) Get(_ context.Context, id string) (*domain.FactoryProfile, error) {
	for _, f := range s.factories {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, domain.ErrFactoryNotFound
}

func hasCategory(f *domain.FactoryProfile, category string) bool {
	for _, c := range f.Categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

func matchesSearch(f *domain.FactoryProfile, search string) bool {
	q := strings.ToLower(search)
	return strings.Contains(strings.ToLower(f.Name), q) ||
		strings.Contains(strings.ToLower(f.Location), q)
}
