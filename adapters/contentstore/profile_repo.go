package contentstore

import (
	"context"

	"github.com/princepatel/folio/internal/domain/about"
	"github.com/princepatel/folio/internal/domain/richtext"
	"github.com/princepatel/folio/pkg/logger"
)

type contentAboutRepo struct {
	client   *Client
	resolver *AssetResolver
	logger   logger.Logger
}

func NewContentAboutRepo(client *Client, resolver *AssetResolver, log logger.Logger) about.Repository {
	return &contentAboutRepo{client: client, resolver: resolver, logger: log}
}

type aboutDoc struct {
	Name         string           `json:"name"`
	Role         string           `json:"role"`
	ProfileImage assetField       `json:"profileImage"`
	ShortBio     string           `json:"shortBio"`
	FullBio      []richtext.Block `json:"fullBio"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	Location     string           `json:"location"`
	SocialLinks  struct {
		LinkedIn  string `json:"linkedin"`
		GitHub    string `json:"github"`
		Twitter   string `json:"twitter"`
		Instagram string `json:"instagram"`
	} `json:"socialLinks"`
	Skills []struct {
		Name        string `json:"name"`
		Proficiency int    `json:"proficiency"`
	} `json:"skills"`
	ResumeURL assetField `json:"resumeURL"`
}

func (r *contentAboutRepo) Get(ctx context.Context) (*about.About, error) {
	var doc aboutDoc
	if err := r.client.FetchOne(ctx, queryAbout, nil, "about", "singleton", &doc); err != nil {
		return nil, err
	}

	a := &about.About{
		Name:            doc.Name,
		Role:            doc.Role,
		ProfileImageURL: imageURL(r.resolver, doc.ProfileImage, r.logger),
		ShortBio:        doc.ShortBio,
		FullBio:         doc.FullBio,
		Email:           doc.Email,
		Phone:           doc.Phone,
		Location:        doc.Location,
		SocialLinks: about.SocialLinks{
			LinkedIn:  doc.SocialLinks.LinkedIn,
			GitHub:    doc.SocialLinks.GitHub,
			Twitter:   doc.SocialLinks.Twitter,
			Instagram: doc.SocialLinks.Instagram,
		},
		Skills:    make([]about.Skill, 0, len(doc.Skills)),
		ResumeURL: fileURL(r.resolver, doc.ResumeURL, r.logger),
	}
	for _, s := range doc.Skills {
		a.Skills = append(a.Skills, about.Skill{Name: s.Name, Proficiency: s.Proficiency})
	}
	return a, nil
}
