package contentstore

import (
	"context"

	"github.com/princepatel/folio/internal/domain/contact"
	"github.com/princepatel/folio/pkg/logger"
)

type contentContactRepo struct {
	client *Client
	logger logger.Logger
}

func NewContentContactRepo(client *Client, log logger.Logger) contact.Repository {
	return &contentContactRepo{client: client, logger: log}
}

type contactDoc struct {
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	SocialLinks []struct {
		Platform string `json:"platform"`
		URL      string `json:"url"`
	} `json:"socialLinks"`
}

func (r *contentContactRepo) GetInfo(ctx context.Context) (*contact.Info, error) {
	var doc contactDoc
	if err := r.client.FetchOne(ctx, queryContact, nil, "contact", "singleton", &doc); err != nil {
		return nil, err
	}

	info := &contact.Info{
		Email:       doc.Email,
		Phone:       doc.Phone,
		Address:     doc.Address,
		SocialLinks: make([]contact.SocialLink, 0, len(doc.SocialLinks)),
	}
	for _, link := range doc.SocialLinks {
		info.SocialLinks = append(info.SocialLinks, contact.SocialLink{Platform: link.Platform, URL: link.URL})
	}
	return info, nil
}
