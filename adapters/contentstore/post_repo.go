package contentstore

import (
	"context"
	"time"

	"github.com/princepatel/folio/internal/domain/post"
	"github.com/princepatel/folio/internal/domain/richtext"
	"github.com/princepatel/folio/internal/domain/tag"
	"github.com/princepatel/folio/pkg/logger"
)

type contentPostRepo struct {
	client   *Client
	resolver *AssetResolver
	logger   logger.Logger
}

func NewContentPostRepo(client *Client, resolver *AssetResolver, log logger.Logger) post.Repository {
	return &contentPostRepo{client: client, resolver: resolver, logger: log}
}

type authorDoc struct {
	Name        string            `json:"name"`
	Image       assetField        `json:"image"`
	Bio         string            `json:"bio"`
	SocialLinks map[string]string `json:"socialLinks"`
}

type postDoc struct {
	ID          string           `json:"_id"`
	Title       string           `json:"title"`
	Slug        slugField        `json:"slug"`
	MainImage   assetField       `json:"mainImage"`
	Excerpt     string           `json:"excerpt"`
	Content     []richtext.Block `json:"content"`
	Tags        []string         `json:"tags"`
	PublishedAt time.Time        `json:"publishedAt"`
	ReadingTime int              `json:"readingTime"`
	Author      *authorDoc       `json:"author"`
}

func (r *contentPostRepo) toDomain(doc postDoc) *post.Post {
	p := &post.Post{
		ID:           doc.ID,
		Slug:         doc.Slug.Current,
		Title:        doc.Title,
		Excerpt:      doc.Excerpt,
		Content:      doc.Content,
		MainImageURL: imageURL(r.resolver, doc.MainImage, r.logger),
		Tags:         tag.Dedupe(doc.Tags),
		ReadingTime:  doc.ReadingTime,
		PublishedAt:  doc.PublishedAt,
	}
	if p.Excerpt == "" {
		p.Excerpt = richtext.Excerpt(doc.Content, 200)
	}
	if doc.Author != nil {
		p.Author = &post.Author{
			Name:        doc.Author.Name,
			ImageURL:    imageURL(r.resolver, doc.Author.Image, r.logger),
			Bio:         doc.Author.Bio,
			SocialLinks: doc.Author.SocialLinks,
		}
	}
	return p
}

func (r *contentPostRepo) list(ctx context.Context, query string) ([]*post.Post, error) {
	docs := make([]postDoc, 0)
	if err := r.client.Fetch(ctx, query, nil, &docs); err != nil {
		return nil, err
	}
	posts := make([]*post.Post, len(docs))
	for i, doc := range docs {
		posts[i] = r.toDomain(doc)
	}
	return posts, nil
}

func (r *contentPostRepo) ListAll(ctx context.Context) ([]*post.Post, error) {
	return r.list(ctx, queryAllPosts)
}

func (r *contentPostRepo) ListRecent(ctx context.Context) ([]*post.Post, error) {
	return r.list(ctx, queryRecentPosts)
}

func (r *contentPostRepo) GetBySlug(ctx context.Context, slug string) (*post.Post, error) {
	var doc postDoc
	if err := r.client.FetchOne(ctx, queryPostBySlug, map[string]any{"slug": slug}, "post", slug, &doc); err != nil {
		return nil, err
	}
	return r.toDomain(doc), nil
}
