package project

import (
	"context"
	"fmt"

	"github.com/princepatel/folio/internal/domain/project"
)

type ListFeaturedProjectsUseCase struct {
	projectRepo project.Repository
}

func NewListFeaturedProjectsUseCase(repo project.Repository) *ListFeaturedProjectsUseCase {
	return &ListFeaturedProjectsUseCase{projectRepo: repo}
}

type ListFeaturedProjectsOutput struct {
	Projects []*project.Project
}

// The featured query caps the result at 6 documents, newest first; no
// truncation happens here.
func (uc *ListFeaturedProjectsUseCase) Execute(ctx context.Context) (*ListFeaturedProjectsOutput, error) {
	projects, err := uc.projectRepo.ListFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("get featured projects failed: %w", err)
	}
	return &ListFeaturedProjectsOutput{Projects: projects}, nil
}
