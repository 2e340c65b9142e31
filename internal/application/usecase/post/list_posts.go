package post

import (
	"context"
	"fmt"

	"github.com/princepatel/folio/internal/domain/post"
	"github.com/princepatel/folio/internal/domain/tag"
)

type ListPostsUseCase struct {
	postRepo post.Repository
}

func NewListPostsUseCase(repo post.Repository) *ListPostsUseCase {
	return &ListPostsUseCase{postRepo: repo}
}

type ListPostsInput struct {
	// Tag filters the listing when non-empty, compared under normalization.
	Tag string
}

type ListPostsOutput struct {
	Posts []*post.Post
	// Tags holds the de-duplicated tag labels across all posts, first-seen
	// casing preserved, for the filter control.
	Tags []string
}

func (uc *ListPostsUseCase) Execute(ctx context.Context, input ListPostsInput) (*ListPostsOutput, error) {
	posts, err := uc.postRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get post list failed: %w", err)
	}

	var labels []string
	for _, p := range posts {
		labels = append(labels, p.Tags...)
	}
	out := &ListPostsOutput{Tags: tag.Dedupe(labels)}

	if input.Tag == "" {
		out.Posts = posts
		return out, nil
	}

	out.Posts = make([]*post.Post, 0, len(posts))
	for _, p := range posts {
		if tag.Contains(p.Tags, input.Tag) {
			out.Posts = append(out.Posts, p)
		}
	}
	return out, nil
}
