package feed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/princepatel/folio/internal/domain/post"
	"github.com/princepatel/folio/internal/domain/project"
	"github.com/princepatel/folio/pkg/logger"
)

type SitemapUseCase struct {
	projectRepo project.Repository
	postRepo    post.Repository
	siteURL     string
	logger      logger.Logger
}

func NewSitemapUseCase(projRepo project.Repository, postRepo post.Repository, siteURL string, log logger.Logger) *SitemapUseCase {
	return &SitemapUseCase{
		projectRepo: projRepo,
		postRepo:    postRepo,
		siteURL:     siteURL,
		logger:      log,
	}
}

type SitemapEntry struct {
	URL             string
	LastModified    time.Time
	ChangeFrequency string
	Priority        float64
}

var staticRoutes = []struct {
	path     string
	freq     string
	priority float64
}{
	{"", "weekly", 1.0},
	{"/about", "monthly", 0.8},
	{"/projects", "weekly", 0.9},
	{"/blog", "weekly", 0.9},
	{"/services", "monthly", 0.8},
	{"/documents", "monthly", 0.6},
	{"/contact", "monthly", 0.7},
}

// Execute lists the static routes plus one route per project and post. A
// failed content fetch drops that group from the sitemap instead of failing
// the whole feed.
func (uc *SitemapUseCase) Execute(ctx context.Context) ([]SitemapEntry, error) {
	now := time.Now()
	entries := make([]SitemapEntry, 0, len(staticRoutes))
	for _, route := range staticRoutes {
		entries = append(entries, SitemapEntry{
			URL:             uc.siteURL + route.path,
			LastModified:    now,
			ChangeFrequency: route.freq,
			Priority:        route.priority,
		})
	}

	projects, err := uc.projectRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Warn("Sitemap: project fetch failed", zap.Error(err))
	}
	for _, p := range projects {
		entries = append(entries, SitemapEntry{
			URL:             fmt.Sprintf("%s/projects/%s", uc.siteURL, p.Slug),
			LastModified:    lastModified(p.PublishedAt, now),
			ChangeFrequency: "monthly",
			Priority:        0.7,
		})
	}

	posts, err := uc.postRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Warn("Sitemap: post fetch failed", zap.Error(err))
	}
	for _, p := range posts {
		entries = append(entries, SitemapEntry{
			URL:             fmt.Sprintf("%s/blog/%s", uc.siteURL, p.Slug),
			LastModified:    lastModified(p.PublishedAt, now),
			ChangeFrequency: "weekly",
			Priority:        0.8,
		})
	}

	return entries, nil
}

func lastModified(publishedAt, fallback time.Time) time.Time {
	if publishedAt.IsZero() {
		return fallback
	}
	return publishedAt
}
