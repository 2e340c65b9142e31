package serviceitem

import (
	"context"
	"fmt"

	"github.com/princepatel/folio/internal/domain/service"
)

type ListServicesUseCase struct {
	serviceRepo service.Repository
}

func NewListServicesUseCase(repo service.Repository) *ListServicesUseCase {
	return &ListServicesUseCase{serviceRepo: repo}
}

type ListServicesInput struct {
	FeaturedOnly bool
}

type ListServicesOutput struct {
	Services []*service.Service
}

func (uc *ListServicesUseCase) Execute(ctx context.Context, input ListServicesInput) (*ListServicesOutput, error) {
	var (
		services []*service.Service
		err      error
	)
	if input.FeaturedOnly {
		services, err = uc.serviceRepo.ListFeatured(ctx)
	} else {
		services, err = uc.serviceRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("get service list failed: %w", err)
	}
	return &ListServicesOutput{Services: services}, nil
}
