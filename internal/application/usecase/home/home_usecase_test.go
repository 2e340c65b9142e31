package home

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princepatel/folio/internal/domain/post"
	"github.com/princepatel/folio/internal/domain/project"
	"github.com/princepatel/folio/internal/domain/service"
	"github.com/princepatel/folio/pkg/logger"
)

type fakeProjectRepo struct {
	projects []*project.Project
	err      error
}

func (f *fakeProjectRepo) ListAll(ctx context.Context) ([]*project.Project, error) {
	return f.projects, f.err
}
func (f *fakeProjectRepo) ListFeatured(ctx context.Context) ([]*project.Project, error) {
	return f.projects, f.err
}
func (f *fakeProjectRepo) ListByCategory(ctx context.Context, category string) ([]*project.Project, error) {
	return f.projects, f.err
}
func (f *fakeProjectRepo) GetBySlug(ctx context.Context, slug string) (*project.Project, error) {
	return nil, f.err
}

type fakePostRepo struct {
	posts []*post.Post
	err   error
}

func (f *fakePostRepo) ListAll(ctx context.Context) ([]*post.Post, error)    { return f.posts, f.err }
func (f *fakePostRepo) ListRecent(ctx context.Context) ([]*post.Post, error) { return f.posts, f.err }
func (f *fakePostRepo) GetBySlug(ctx context.Context, slug string) (*post.Post, error) {
	return nil, f.err
}

type fakeServiceRepo struct {
	services []*service.Service
	err      error
}

func (f *fakeServiceRepo) ListAll(ctx context.Context) ([]*service.Service, error) {
	return f.services, f.err
}
func (f *fakeServiceRepo) ListFeatured(ctx context.Context) ([]*service.Service, error) {
	return f.services, f.err
}
func (f *fakeServiceRepo) GetBySlug(ctx context.Context, slug string) (*service.Service, error) {
	return nil, f.err
}

func TestHome_AllSectionsLoad(t *testing.T) {
	uc := NewHomeUseCase(
		&fakeProjectRepo{projects: []*project.Project{{Slug: "p"}}},
		&fakePostRepo{posts: []*post.Post{{Slug: "b"}}},
		&fakeServiceRepo{services: []*service.Service{{Slug: "s"}}},
		logger.NewNop(),
	)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, out.FeaturedProjects.Failed)
	assert.Len(t, out.FeaturedProjects.Items, 1)
	assert.Len(t, out.RecentPosts.Items, 1)
	assert.Len(t, out.FeaturedServices.Items, 1)
}

func TestHome_OneFailedSectionLeavesOthersIntact(t *testing.T) {
	uc := NewHomeUseCase(
		&fakeProjectRepo{err: errors.New("store down")},
		&fakePostRepo{posts: []*post.Post{{Slug: "b"}}},
		&fakeServiceRepo{services: []*service.Service{{Slug: "s"}}},
		logger.NewNop(),
	)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, out.FeaturedProjects.Failed)
	assert.Empty(t, out.FeaturedProjects.Items)
	assert.False(t, out.RecentPosts.Failed)
	assert.Len(t, out.RecentPosts.Items, 1)
	assert.False(t, out.FeaturedServices.Failed)
	assert.Len(t, out.FeaturedServices.Items, 1)
}
