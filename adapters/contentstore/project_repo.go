package contentstore

import (
	"context"
	"time"

	"github.com/princepatel/folio/internal/domain/project"
	"github.com/princepatel/folio/internal/domain/richtext"
	"github.com/princepatel/folio/pkg/logger"
)

type contentProjectRepo struct {
	client   *Client
	resolver *AssetResolver
	logger   logger.Logger
}

func NewContentProjectRepo(client *Client, resolver *AssetResolver, log logger.Logger) project.Repository {
	return &contentProjectRepo{client: client, resolver: resolver, logger: log}
}

type projectDoc struct {
	ID           string           `json:"_id"`
	Title        string           `json:"title"`
	Slug         slugField        `json:"slug"`
	MainImage    assetField       `json:"mainImage"`
	Images       []assetField     `json:"images"`
	Description  string           `json:"description"`
	Content      []richtext.Block `json:"content"`
	Category     string           `json:"category"`
	Technologies []string         `json:"technologies"`
	Featured     bool             `json:"featured"`
	PublishedAt  time.Time        `json:"publishedAt"`
	LiveURL      *string          `json:"liveUrl"`
	GithubURL    *string          `json:"githubUrl"`
}

func (r *contentProjectRepo) toDomain(doc projectDoc) *project.Project {
	p := &project.Project{
		ID:           doc.ID,
		Slug:         doc.Slug.Current,
		Title:        doc.Title,
		Description:  doc.Description,
		Content:      doc.Content,
		MainImageURL: imageURL(r.resolver, doc.MainImage, r.logger),
		Category:     doc.Category,
		Technologies: orEmpty(doc.Technologies),
		LiveURL:      doc.LiveURL,
		SourceURL:    doc.GithubURL,
		Featured:     doc.Featured,
		PublishedAt:  doc.PublishedAt,
	}
	for _, img := range doc.Images {
		if u := imageURL(r.resolver, img, r.logger); u != "" {
			p.ImageURLs = append(p.ImageURLs, u)
		}
	}
	return p
}

func (r *contentProjectRepo) list(ctx context.Context, query string, params map[string]any) ([]*project.Project, error) {
	docs := make([]projectDoc, 0)
	if err := r.client.Fetch(ctx, query, params, &docs); err != nil {
		return nil, err
	}
	projects := make([]*project.Project, len(docs))
	for i, doc := range docs {
		projects[i] = r.toDomain(doc)
	}
	return projects, nil
}

func (r *contentProjectRepo) ListAll(ctx context.Context) ([]*project.Project, error) {
	return r.list(ctx, queryAllProjects, nil)
}

func (r *contentProjectRepo) ListFeatured(ctx context.Context) ([]*project.Project, error) {
	return r.list(ctx, queryFeaturedProjects, nil)
}

func (r *contentProjectRepo) ListByCategory(ctx context.Context, category string) ([]*project.Project, error) {
	return r.list(ctx, queryProjectsByCategory, map[string]any{"category": category})
}

func (r *contentProjectRepo) GetBySlug(ctx context.Context, slug string) (*project.Project, error) {
	var doc projectDoc
	if err := r.client.FetchOne(ctx, queryProjectBySlug, map[string]any{"slug": slug}, "project", slug, &doc); err != nil {
		return nil, err
	}
	return r.toDomain(doc), nil
}
