package project

import (
	"context"
	"fmt"

	"github.com/princepatel/folio/internal/domain/project"
	"github.com/princepatel/folio/internal/domain/tag"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
}

func NewListProjectsUseCase(repo project.Repository) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: repo}
}

type ListProjectsInput struct {
	// Category filters the listing when non-empty.
	Category string
}

type ListProjectsOutput struct {
	Projects []*project.Project
	// Categories holds the de-duplicated category labels across all projects,
	// first-seen casing preserved, for the filter control.
	Categories []string
}

var enumCategories = map[string]struct{}{
	project.CategoryWeb:    {},
	project.CategoryMobile: {},
	project.CategoryDesign: {},
	project.CategoryOther:  {},
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	projects, err := uc.projectRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get project list failed: %w", err)
	}

	labels := make([]string, 0, len(projects))
	for _, p := range projects {
		if p.Category != "" {
			labels = append(labels, p.Category)
		}
	}
	out := &ListProjectsOutput{Categories: tag.Dedupe(labels)}

	if input.Category == "" {
		out.Projects = projects
		return out, nil
	}

	// Enum-era documents can be filtered inside the store; free-text-era
	// categories need the same normalization the filter control uses.
	if _, ok := enumCategories[input.Category]; ok {
		out.Projects, err = uc.projectRepo.ListByCategory(ctx, input.Category)
		if err != nil {
			return nil, fmt.Errorf("get projects by category failed: %w", err)
		}
		return out, nil
	}

	out.Projects = make([]*project.Project, 0, len(projects))
	for _, p := range projects {
		if tag.Normalize(p.Category) == tag.Normalize(input.Category) {
			out.Projects = append(out.Projects, p)
		}
	}
	return out, nil
}
