package contentstore

import (
	"context"

	"github.com/princepatel/folio/internal/domain/richtext"
	"github.com/princepatel/folio/internal/domain/service"
	"github.com/princepatel/folio/pkg/logger"
)

type contentServiceRepo struct {
	client *Client
	logger logger.Logger
}

func NewContentServiceRepo(client *Client, log logger.Logger) service.Repository {
	return &contentServiceRepo{client: client, logger: log}
}

type serviceDoc struct {
	ID                  string           `json:"_id"`
	Title               string           `json:"title"`
	Slug                slugField        `json:"slug"`
	Icon                string           `json:"icon"`
	Description         string           `json:"description"`
	DetailedDescription []richtext.Block `json:"detailedDescription"`
	KeyPoints           []string         `json:"keyPoints"`
	Order               int              `json:"order"`
	Featured            bool             `json:"featured"`
}

func toDomainService(doc serviceDoc) *service.Service {
	return &service.Service{
		ID:                  doc.ID,
		Slug:                doc.Slug.Current,
		Title:               doc.Title,
		Icon:                doc.Icon,
		Description:         doc.Description,
		DetailedDescription: doc.DetailedDescription,
		KeyPoints:           orEmpty(doc.KeyPoints),
		Order:               doc.Order,
		Featured:            doc.Featured,
	}
}

func (r *contentServiceRepo) list(ctx context.Context, query string) ([]*service.Service, error) {
	docs := make([]serviceDoc, 0)
	if err := r.client.Fetch(ctx, query, nil, &docs); err != nil {
		return nil, err
	}
	services := make([]*service.Service, len(docs))
	for i, doc := range docs {
		services[i] = toDomainService(doc)
	}
	return services, nil
}

func (r *contentServiceRepo) ListAll(ctx context.Context) ([]*service.Service, error) {
	return r.list(ctx, queryAllServices)
}

func (r *contentServiceRepo) ListFeatured(ctx context.Context) ([]*service.Service, error) {
	return r.list(ctx, queryFeaturedServices)
}

func (r *contentServiceRepo) GetBySlug(ctx context.Context, slug string) (*service.Service, error) {
	var doc serviceDoc
	if err := r.client.FetchOne(ctx, queryServiceBySlug, map[string]any{"slug": slug}, "service", slug, &doc); err != nil {
		return nil, err
	}
	return toDomainService(doc), nil
}
