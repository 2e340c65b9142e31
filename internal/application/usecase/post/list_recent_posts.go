package post

import (
	"context"
	"fmt"

	"github.com/princepatel/folio/internal/domain/post"
)

type ListRecentPostsUseCase struct {
	postRepo post.Repository
}

func NewListRecentPostsUseCase(repo post.Repository) *ListRecentPostsUseCase {
	return &ListRecentPostsUseCase{postRepo: repo}
}

type ListRecentPostsOutput struct {
	Posts []*post.Post
}

func (uc *ListRecentPostsUseCase) Execute(ctx context.Context) (*ListRecentPostsOutput, error) {
	posts, err := uc.postRepo.ListRecent(ctx)
	if err != nil {
		return nil, fmt.Errorf("get recent posts failed: %w", err)
	}
	return &ListRecentPostsOutput{Posts: posts}, nil
}
