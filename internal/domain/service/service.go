package service

import (
	"context"

	"github.com/princepatel/folio/internal/domain/richtext"
)

type Service struct {
	ID                  string           `json:"id"`
	Slug                string           `json:"slug"`
	Title               string           `json:"title"`
	Icon                string           `json:"icon"`
	Description         string           `json:"description"`
	DetailedDescription []richtext.Block `json:"detailed_description,omitempty"`
	KeyPoints           []string         `json:"key_points"`
	Order               int              `json:"order"`
	Featured            bool             `json:"featured"`
}

// Lists come back sorted by the explicit order field, ties broken by
// insertion order in the store.
type Repository interface {
	ListAll(ctx context.Context) ([]*Service, error)
	ListFeatured(ctx context.Context) ([]*Service, error)
	GetBySlug(ctx context.Context, slug string) (*Service, error)
}
