package contentstore

import (
	"context"
	"time"

	"github.com/princepatel/folio/internal/domain/document"
	"github.com/princepatel/folio/pkg/logger"
)

type contentDocumentRepo struct {
	client   *Client
	resolver *AssetResolver
	logger   logger.Logger
}

func NewContentDocumentRepo(client *Client, resolver *AssetResolver, log logger.Logger) document.Repository {
	return &contentDocumentRepo{client: client, resolver: resolver, logger: log}
}

type documentDoc struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	File        assetField `json:"file"`
	Order       int        `json:"order"`
	PublishedAt time.Time  `json:"publishedAt"`
}

func (r *contentDocumentRepo) list(ctx context.Context, query string, params map[string]any) ([]*document.Document, error) {
	docs := make([]documentDoc, 0)
	if err := r.client.Fetch(ctx, query, params, &docs); err != nil {
		return nil, err
	}
	documents := make([]*document.Document, len(docs))
	for i, doc := range docs {
		documents[i] = &document.Document{
			ID:          doc.ID,
			Title:       doc.Title,
			Description: doc.Description,
			Category:    document.Category(doc.Category),
			FileURL:     fileURL(r.resolver, doc.File, r.logger),
			Order:       doc.Order,
			PublishedAt: doc.PublishedAt,
		}
	}
	return documents, nil
}

func (r *contentDocumentRepo) List(ctx context.Context) ([]*document.Document, error) {
	return r.list(ctx, queryAllDocuments, nil)
}

func (r *contentDocumentRepo) ListByCategory(ctx context.Context, category document.Category) ([]*document.Document, error) {
	return r.list(ctx, queryDocumentsByCategory, map[string]any{"category": string(category)})
}
