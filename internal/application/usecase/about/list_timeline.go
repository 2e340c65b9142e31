package about

import (
	"context"
	"fmt"

	"github.com/princepatel/folio/internal/domain/timeline"
)

type ListTimelineUseCase struct {
	timelineRepo timeline.Repository
}

func NewListTimelineUseCase(repo timeline.Repository) *ListTimelineUseCase {
	return &ListTimelineUseCase{timelineRepo: repo}
}

type ListTimelineOutput struct {
	Entries []*timeline.Entry
}

func (uc *ListTimelineUseCase) Execute(ctx context.Context) (*ListTimelineOutput, error) {
	entries, err := uc.timelineRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("get timeline failed: %w", err)
	}
	return &ListTimelineOutput{Entries: entries}, nil
}
