package contact

import (
	"context"

	"github.com/google/uuid"
)

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type Info struct {
	Email       string       `json:"email"`
	Phone       string       `json:"phone,omitempty"`
	Address     string       `json:"address,omitempty"`
	SocialLinks []SocialLink `json:"social_links"`
}

// Submission is an outbound contact-form message. It is relayed to the forms
// service and never persisted locally.
type Submission struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
}

// Info is a singleton shape, same as About.
type Repository interface {
	GetInfo(ctx context.Context) (*Info, error)
}
