package post

import (
	"context"

	"go.uber.org/zap"

	"github.com/princepatel/folio/internal/application/service"
	"github.com/princepatel/folio/internal/domain/post"
	"github.com/princepatel/folio/pkg/logger"
)

type GetPostUseCase struct {
	postRepo post.Repository
	views    service.ViewPublisher
	logger   logger.Logger
}

func NewGetPostUseCase(repo post.Repository, views service.ViewPublisher, log logger.Logger) *GetPostUseCase {
	return &GetPostUseCase{postRepo: repo, views: views, logger: log}
}

type GetPostInput struct {
	Slug string
}

type GetPostOutput struct {
	Post *post.Post
}

func (uc *GetPostUseCase) Execute(ctx context.Context, input GetPostInput) (*GetPostOutput, error) {
	p, err := uc.postRepo.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}

	if uc.views != nil {
		if err := uc.views.PublishView(ctx, "post", p.Slug); err != nil {
			uc.logger.Warn("Failed to publish post view event", zap.String("slug", p.Slug), zap.Error(err))
		}
	}

	return &GetPostOutput{Post: p}, nil
}
