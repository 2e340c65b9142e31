package post

import (
	"context"
	"time"

	"github.com/princepatel/folio/internal/domain/richtext"
)

type Author struct {
	Name        string            `json:"name"`
	ImageURL    string            `json:"image_url"`
	Bio         string            `json:"bio,omitempty"`
	SocialLinks map[string]string `json:"social_links,omitempty"`
}

type Post struct {
	ID           string           `json:"id"`
	Slug         string           `json:"slug"`
	Title        string           `json:"title"`
	Excerpt      string           `json:"excerpt"`
	Content      []richtext.Block `json:"content,omitempty"`
	MainImageURL string           `json:"main_image_url"`
	Tags         []string         `json:"tags"`
	ReadingTime  int              `json:"reading_time"`
	Author       *Author          `json:"author,omitempty"`
	PublishedAt  time.Time        `json:"published_at"`
}

// The author join is resolved inside the content store query, so a Post
// arrives with its Author already expanded (or nil when the reference is
// dangling).
type Repository interface {
	ListAll(ctx context.Context) ([]*Post, error)
	ListRecent(ctx context.Context) ([]*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
}
