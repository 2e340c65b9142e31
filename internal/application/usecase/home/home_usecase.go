package home

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/princepatel/folio/internal/domain/post"
	"github.com/princepatel/folio/internal/domain/project"
	"github.com/princepatel/folio/internal/domain/service"
	"github.com/princepatel/folio/pkg/logger"
)

type HomeUseCase struct {
	projectRepo project.Repository
	postRepo    post.Repository
	serviceRepo service.Repository
	logger      logger.Logger
}

func NewHomeUseCase(projRepo project.Repository, postRepo post.Repository, svcRepo service.Repository, log logger.Logger) *HomeUseCase {
	return &HomeUseCase{
		projectRepo: projRepo,
		postRepo:    postRepo,
		serviceRepo: svcRepo,
		logger:      log,
	}
}

// Section carries one home-view section plus whether its fetch failed.
// Sections are independent: a failed one renders as an "unable to load"
// block while the rest of the page stays intact.
type Section[T any] struct {
	Items  []T
	Failed bool
}

type HomeOutput struct {
	FeaturedProjects Section[*project.Project]
	RecentPosts      Section[*post.Post]
	FeaturedServices Section[*service.Service]
}

func (uc *HomeUseCase) Execute(ctx context.Context) (*HomeOutput, error) {
	out := &HomeOutput{}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		projects, err := uc.projectRepo.ListFeatured(ctx)
		if err != nil {
			uc.logger.Warn("Home: featured projects fetch failed", zap.Error(err))
			out.FeaturedProjects.Failed = true
			return
		}
		out.FeaturedProjects.Items = projects
	}()

	go func() {
		defer wg.Done()
		posts, err := uc.postRepo.ListRecent(ctx)
		if err != nil {
			uc.logger.Warn("Home: recent posts fetch failed", zap.Error(err))
			out.RecentPosts.Failed = true
			return
		}
		out.RecentPosts.Items = posts
	}()

	go func() {
		defer wg.Done()
		services, err := uc.serviceRepo.ListFeatured(ctx)
		if err != nil {
			uc.logger.Warn("Home: featured services fetch failed", zap.Error(err))
			out.FeaturedServices.Failed = true
			return
		}
		out.FeaturedServices.Items = services
	}()

	wg.Wait()
	return out, nil
}
