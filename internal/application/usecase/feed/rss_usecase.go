package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/princepatel/folio/internal/domain/post"
	"github.com/princepatel/folio/pkg/logger"
)

type RSSUseCase struct {
	postRepo post.Repository
	siteURL  string
	title    string
	logger   logger.Logger
}

func NewRSSUseCase(postRepo post.Repository, siteURL, title string, log logger.Logger) *RSSUseCase {
	return &RSSUseCase{
		postRepo: postRepo,
		siteURL:  siteURL,
		title:    title,
		logger:   log,
	}
}

func (uc *RSSUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	feed := &feeds.Feed{
		Title:       uc.title,
		Link:        &feeds.Link{Href: uc.siteURL + "/blog"},
		Description: "Insights and stories from the blog.",
		Created:     time.Now(),
	}

	posts, err := uc.postRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to list posts for RSS", err)
		return nil, err
	}

	items := make([]*feeds.Item, 0, len(posts))
	for _, p := range posts {
		item := &feeds.Item{
			Title:       p.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/blog/%s", uc.siteURL, p.Slug)},
			Description: p.Excerpt,
			Created:     p.PublishedAt,
		}
		if p.Author != nil {
			item.Author = &feeds.Author{Name: p.Author.Name}
		}
		items = append(items, item)
	}

	feed.Items = items
	uc.logger.Info("RSS feed generated", zap.Int("item_count", len(feed.Items)))
	return feed, nil
}
