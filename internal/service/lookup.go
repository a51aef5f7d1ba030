package service

import (
	"context"
	"strings"

	"github.com/deppfellow/procurement-cms/internal/errs"
	"github.com/deppfellow/procurement-cms/internal/model"
	"github.com/deppfellow/procurement-cms/internal/repository"
)

// LookupService manages the id/value tables behind dropdowns.
type LookupService struct {
	repo *repository.LookupRepository
}

func NewLookupService(repo *repository.LookupRepository) *LookupService {
	return &LookupService{repo: repo}
}

func (s *LookupService) List(ctx context.Context, name string) ([]model.LookupItem, error) {
	return s.repo.List(ctx, name)
}

// Add trims value and rejects blanks before inserting.
func (s *LookupService) Add(ctx context.Context, name, value string) (model.LookupItem, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		code := "LOOKUP_VALUE_REQUIRED"
		return model.LookupItem{}, errs.NewBadRequestError("value is required", true, &code, nil, nil)
	}
	return s.repo.Add(ctx, name, value)
}
