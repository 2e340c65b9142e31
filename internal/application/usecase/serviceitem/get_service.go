package serviceitem

import (
	"context"

	"github.com/princepatel/folio/internal/domain/service"
)

type GetServiceUseCase struct {
	serviceRepo service.Repository
}

func NewGetServiceUseCase(repo service.Repository) *GetServiceUseCase {
	return &GetServiceUseCase{serviceRepo: repo}
}

type GetServiceInput struct {
	Slug string
}

type GetServiceOutput struct {
	Service *service.Service
}

func (uc *GetServiceUseCase) Execute(ctx context.Context, input GetServiceInput) (*GetServiceOutput, error) {
	s, err := uc.serviceRepo.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}
	return &GetServiceOutput{Service: s}, nil
}
