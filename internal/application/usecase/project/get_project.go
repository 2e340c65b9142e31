package project

import (
	"context"

	"go.uber.org/zap"

	"github.com/princepatel/folio/internal/application/service"
	"github.com/princepatel/folio/internal/domain/project"
	"github.com/princepatel/folio/pkg/logger"
)

type GetProjectUseCase struct {
	projectRepo project.Repository
	views       service.ViewPublisher
	logger      logger.Logger
}

func NewGetProjectUseCase(repo project.Repository, views service.ViewPublisher, log logger.Logger) *GetProjectUseCase {
	return &GetProjectUseCase{projectRepo: repo, views: views, logger: log}
}

type GetProjectInput struct {
	Slug string
}

type GetProjectOutput struct {
	Project *project.Project
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, input GetProjectInput) (*GetProjectOutput, error) {
	p, err := uc.projectRepo.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}

	if uc.views != nil {
		if err := uc.views.PublishView(ctx, "project", p.Slug); err != nil {
			uc.logger.Warn("Failed to publish project view event", zap.String("slug", p.Slug), zap.Error(err))
		}
	}

	return &GetProjectOutput{Project: p}, nil
}
