package document

import (
	"context"
	"time"
)

type Category string

const (
	CategoryResume           Category = "resume"
	CategoryExperienceLetter Category = "experience-letter"
	CategoryCertificate      Category = "certificate"
	CategoryDegree           Category = "degree"
	CategoryOther            Category = "other"
)

// Document is an official, downloadable file (resume, certificate, ...).
// FileURL is resolved from the stored file reference at the repository
// boundary; when resolution fails it is empty and the frontend shows a
// placeholder.
type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    Category  `json:"category"`
	FileURL     string    `json:"file_url"`
	Order       int       `json:"order"`
	PublishedAt time.Time `json:"published_at"`
}

type Repository interface {
	List(ctx context.Context) ([]*Document, error)
	ListByCategory(ctx context.Context, category Category) ([]*Document, error)
}
