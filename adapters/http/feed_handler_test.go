package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feedUC "github.com/princepatel/folio/internal/application/usecase/feed"
	"github.com/princepatel/folio/internal/domain/post"
	"github.com/princepatel/folio/internal/domain/project"
	"github.com/princepatel/folio/pkg/logger"
)

type fakePostRepo struct {
	posts []*post.Post
	err   error
}

func (f *fakePostRepo) ListAll(ctx context.Context) ([]*post.Post, error)    { return f.posts, f.err }
func (f *fakePostRepo) ListRecent(ctx context.Context) ([]*post.Post, error) { return f.posts, f.err }
func (f *fakePostRepo) GetBySlug(ctx context.Context, slug string) (*post.Post, error) {
	return nil, f.err
}

func newFeedRouter(projects *fakeProjectRepo, posts *fakePostRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewFeedHandler(
		feedUC.NewSitemapUseCase(projects, posts, "https://example.dev", logger.NewNop()),
		feedUC.NewRSSUseCase(posts, "https://example.dev", "Example Blog", logger.NewNop()),
	)
	router := gin.New()
	router.GET("/sitemap.xml", handler.GetSitemap)
	router.GET("/rss.xml", handler.GetRSS)
	return router
}

func TestFeedHandler_SitemapListsStaticAndContentRoutes(t *testing.T) {
	published := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	router := newFeedRouter(
		&fakeProjectRepo{projects: []*project.Project{{Slug: "folio", PublishedAt: published}}},
		&fakePostRepo{posts: []*post.Post{{Slug: "first-post", PublishedAt: published}}},
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
	assert.Contains(t, body, "<loc>https://example.dev/about</loc>")
	assert.Contains(t, body, "<loc>https://example.dev/projects/folio</loc>")
	assert.Contains(t, body, "<loc>https://example.dev/blog/first-post</loc>")
	assert.Contains(t, body, "<lastmod>2024-05-10</lastmod>")
}

func TestFeedHandler_SitemapSurvivesContentFetchFailure(t *testing.T) {
	router := newFeedRouter(
		&fakeProjectRepo{err: assert.AnError},
		&fakePostRepo{err: assert.AnError},
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<loc>https://example.dev/contact</loc>")
}

func TestFeedHandler_RSS(t *testing.T) {
	router := newFeedRouter(
		&fakeProjectRepo{},
		&fakePostRepo{posts: []*post.Post{{
			Slug:        "first-post",
			Title:       "First Post",
			Excerpt:     "An opening note.",
			PublishedAt: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		}}},
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rss.xml", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/rss+xml; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "<title>First Post</title>")
	assert.Contains(t, body, "https://example.dev/blog/first-post")
}
