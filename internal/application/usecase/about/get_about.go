package about

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/princepatel/folio/internal/domain/about"
	"github.com/princepatel/folio/internal/domain/timeline"
	"github.com/princepatel/folio/pkg/logger"
)

type GetAboutUseCase struct {
	aboutRepo    about.Repository
	timelineRepo timeline.Repository
	logger       logger.Logger
}

func NewGetAboutUseCase(aRepo about.Repository, tRepo timeline.Repository, log logger.Logger) *GetAboutUseCase {
	return &GetAboutUseCase{aboutRepo: aRepo, timelineRepo: tRepo, logger: log}
}

type GetAboutOutput struct {
	About    *about.About
	Timeline []*timeline.Entry
}

func (uc *GetAboutUseCase) Execute(ctx context.Context) (*GetAboutOutput, error) {
	a, err := uc.aboutRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get about failed: %w", err)
	}

	// The experience chronology is a secondary section of the about view; a
	// failed timeline fetch leaves it empty instead of failing the page.
	entries, err := uc.timelineRepo.List(ctx)
	if err != nil {
		uc.logger.Warn("Failed to list timeline entries for about view", zap.Error(err))
		entries = nil
	}

	return &GetAboutOutput{About: a, Timeline: entries}, nil
}
