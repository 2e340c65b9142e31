package project

import (
	"context"
	"time"

	"github.com/princepatel/folio/internal/domain/richtext"
)

// Category values predate the switch to free-text categories in the studio;
// documents may carry any string, so these are hints for the filter UI, not
// an exhaustive set.
const (
	CategoryWeb    = "web"
	CategoryMobile = "mobile"
	CategoryDesign = "design"
	CategoryOther  = "other"
)

type Project struct {
	ID           string           `json:"id"`
	Slug         string           `json:"slug"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Content      []richtext.Block `json:"content,omitempty"`
	MainImageURL string           `json:"main_image_url"`
	ImageURLs    []string         `json:"image_urls,omitempty"`
	Category     string           `json:"category"`
	Technologies []string         `json:"technologies"`
	LiveURL      *string          `json:"live_url,omitempty"`
	SourceURL    *string          `json:"source_url,omitempty"`
	Featured     bool             `json:"featured"`
	PublishedAt  time.Time        `json:"published_at"`
}

// Repository is the read-only view of the content store. A slug that matches
// no document yields apperror.ErrNotFound, which callers treat as an
// expected outcome.
type Repository interface {
	ListAll(ctx context.Context) ([]*Project, error)
	ListFeatured(ctx context.Context) ([]*Project, error)
	ListByCategory(ctx context.Context, category string) ([]*Project, error)
	GetBySlug(ctx context.Context, slug string) (*Project, error)
}
