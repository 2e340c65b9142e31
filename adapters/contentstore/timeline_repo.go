package contentstore

import (
	"context"

	"github.com/princepatel/folio/internal/domain/timeline"
	"github.com/princepatel/folio/pkg/logger"
)

type contentTimelineRepo struct {
	client *Client
	logger logger.Logger
}

func NewContentTimelineRepo(client *Client, log logger.Logger) timeline.Repository {
	return &contentTimelineRepo{client: client, logger: log}
}

type timelineDoc struct {
	ID          string `json:"_id"`
	Year        string `json:"year"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

func (r *contentTimelineRepo) List(ctx context.Context) ([]*timeline.Entry, error) {
	docs := make([]timelineDoc, 0)
	if err := r.client.Fetch(ctx, queryTimeline, nil, &docs); err != nil {
		return nil, err
	}
	entries := make([]*timeline.Entry, len(docs))
	for i, doc := range docs {
		entries[i] = &timeline.Entry{
			ID:          doc.ID,
			Year:        doc.Year,
			Title:       doc.Title,
			Company:     doc.Company,
			Description: doc.Description,
			Order:       doc.Order,
		}
	}
	return entries, nil
}
