package http

import (
	"time"

	"github.com/princepatel/folio/internal/application/usecase/home"
	"github.com/princepatel/folio/internal/domain/about"
	"github.com/princepatel/folio/internal/domain/contact"
	"github.com/princepatel/folio/internal/domain/document"
	"github.com/princepatel/folio/internal/domain/post"
	"github.com/princepatel/folio/internal/domain/project"
	"github.com/princepatel/folio/internal/domain/richtext"
	"github.com/princepatel/folio/internal/domain/service"
	"github.com/princepatel/folio/internal/domain/timeline"
)

// Project DTOs

type ProjectSummaryDTO struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	MainImageURL string    `json:"main_image_url"`
	Category     string    `json:"category"`
	Technologies []string  `json:"technologies"`
	Featured     bool      `json:"featured"`
	PublishedAt  time.Time `json:"published_at"`
}

type ProjectDTO struct {
	ProjectSummaryDTO
	ImageURLs []string         `json:"image_urls"`
	Content   []richtext.Block `json:"content"`
	LiveURL   *string          `json:"live_url,omitempty"`
	SourceURL *string          `json:"source_url,omitempty"`
}

func ToProjectSummaryDTO(p *project.Project) ProjectSummaryDTO {
	return ProjectSummaryDTO{
		ID:           p.ID,
		Slug:         p.Slug,
		Title:        p.Title,
		Description:  p.Description,
		MainImageURL: p.MainImageURL,
		Category:     p.Category,
		Technologies: p.Technologies,
		Featured:     p.Featured,
		PublishedAt:  p.PublishedAt,
	}
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	return ProjectDTO{
		ProjectSummaryDTO: ToProjectSummaryDTO(p),
		ImageURLs:         p.ImageURLs,
		Content:           p.Content,
		LiveURL:           p.LiveURL,
		SourceURL:         p.SourceURL,
	}
}

func ToProjectSummaryDTOs(projects []*project.Project) []ProjectSummaryDTO {
	dtos := make([]ProjectSummaryDTO, len(projects))
	for i, p := range projects {
		dtos[i] = ToProjectSummaryDTO(p)
	}
	return dtos
}

// Post DTOs

type AuthorDTO struct {
	Name        string            `json:"name"`
	ImageURL    string            `json:"image_url"`
	Bio         string            `json:"bio,omitempty"`
	SocialLinks map[string]string `json:"social_links,omitempty"`
}

type PostSummaryDTO struct {
	ID           string     `json:"id"`
	Slug         string     `json:"slug"`
	Title        string     `json:"title"`
	Excerpt      string     `json:"excerpt"`
	MainImageURL string     `json:"main_image_url"`
	Tags         []string   `json:"tags"`
	ReadingTime  int        `json:"reading_time"`
	Author       *AuthorDTO `json:"author,omitempty"`
	PublishedAt  time.Time  `json:"published_at"`
}

type PostDTO struct {
	PostSummaryDTO
	Content []richtext.Block `json:"content"`
}

func toAuthorDTO(a *post.Author) *AuthorDTO {
	if a == nil {
		return nil
	}
	return &AuthorDTO{
		Name:        a.Name,
		ImageURL:    a.ImageURL,
		Bio:         a.Bio,
		SocialLinks: a.SocialLinks,
	}
}

func ToPostSummaryDTO(p *post.Post) PostSummaryDTO {
	return PostSummaryDTO{
		ID:           p.ID,
		Slug:         p.Slug,
		Title:        p.Title,
		Excerpt:      p.Excerpt,
		MainImageURL: p.MainImageURL,
		Tags:         p.Tags,
		ReadingTime:  p.ReadingTime,
		Author:       toAuthorDTO(p.Author),
		PublishedAt:  p.PublishedAt,
	}
}

func ToPostDTO(p *post.Post) PostDTO {
	return PostDTO{
		PostSummaryDTO: ToPostSummaryDTO(p),
		Content:        p.Content,
	}
}

func ToPostSummaryDTOs(posts []*post.Post) []PostSummaryDTO {
	dtos := make([]PostSummaryDTO, len(posts))
	for i, p := range posts {
		dtos[i] = ToPostSummaryDTO(p)
	}
	return dtos
}

// Service DTOs

type ServiceDTO struct {
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

func ToServiceDTO(s *service.Service) ServiceDTO {
	return ServiceDTO{
		ID:                  s.ID,
		Slug:                s.Slug,
		Title:               s.Title,
		Icon:                s.Icon,
		Description:         s.Description,
		DetailedDescription: s.DetailedDescription,
		KeyPoints:           s.KeyPoints,
		Order:               s.Order,
		Featured:            s.Featured,
	}
}

func ToServiceDTOs(services []*service.Service) []ServiceDTO {
	dtos := make([]ServiceDTO, len(services))
	for i, s := range services {
		dtos[i] = ToServiceDTO(s)
	}
	return dtos
}

// About / timeline DTOs

type SkillDTO struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

type TimelineEntryDTO struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

type AboutDTO struct {
	Name            string             `json:"name"`
	Role            string             `json:"role"`
	ProfileImageURL string             `json:"profile_image_url"`
	ShortBio        string             `json:"short_bio"`
	FullBio         []richtext.Block   `json:"full_bio,omitempty"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone,omitempty"`
	Location        string             `json:"location,omitempty"`
	SocialLinks     about.SocialLinks  `json:"social_links"`
	Skills          []SkillDTO         `json:"skills"`
	ResumeURL       string             `json:"resume_url,omitempty"`
	Timeline        []TimelineEntryDTO `json:"timeline"`
}

func ToAboutDTO(a *about.About, entries []*timeline.Entry) AboutDTO {
	dto := AboutDTO{
		Name:            a.Name,
		Role:            a.Role,
		ProfileImageURL: a.ProfileImageURL,
		ShortBio:        a.ShortBio,
		FullBio:         a.FullBio,
		Email:           a.Email,
		Phone:           a.Phone,
		Location:        a.Location,
		SocialLinks:     a.SocialLinks,
		Skills:          make([]SkillDTO, len(a.Skills)),
		ResumeURL:       a.ResumeURL,
		Timeline:        make([]TimelineEntryDTO, len(entries)),
	}
	for i, s := range a.Skills {
		dto.Skills[i] = SkillDTO{Name: s.Name, Proficiency: s.Proficiency}
	}
	for i, e := range entries {
		dto.Timeline[i] = TimelineEntryDTO{
			Year:        e.Year,
			Title:       e.Title,
			Company:     e.Company,
			Description: e.Description,
		}
	}
	return dto
}

// Contact DTOs

type ContactInfoDTO struct {
	Email       string               `json:"email"`
	Phone       string               `json:"phone,omitempty"`
	Address     string               `json:"address,omitempty"`
	SocialLinks []contact.SocialLink `json:"social_links"`
}

func ToContactInfoDTO(info *contact.Info) ContactInfoDTO {
	return ContactInfoDTO{
		Email:       info.Email,
		Phone:       info.Phone,
		Address:     info.Address,
		SocialLinks: info.SocialLinks,
	}
}

type SubmitContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// Document DTOs

type DocumentDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	FileURL     string    `json:"file_url"`
	PublishedAt time.Time `json:"published_at"`
}

func ToDocumentDTOs(docs []*document.Document) []DocumentDTO {
	dtos := make([]DocumentDTO, len(docs))
	for i, d := range docs {
		dtos[i] = DocumentDTO{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			Category:    string(d.Category),
			FileURL:     d.FileURL,
			PublishedAt: d.PublishedAt,
		}
	}
	return dtos
}

// Home DTO

type HomeSectionDTO[T any] struct {
	Items  []T  `json:"items"`
	Failed bool `json:"failed,omitempty"`
}

type HomeDTO struct {
	FeaturedProjects HomeSectionDTO[ProjectSummaryDTO] `json:"featured_projects"`
	RecentPosts      HomeSectionDTO[PostSummaryDTO]    `json:"recent_posts"`
	FeaturedServices HomeSectionDTO[ServiceDTO]        `json:"featured_services"`
}

func ToHomeDTO(out *home.HomeOutput) HomeDTO {
	return HomeDTO{
		FeaturedProjects: HomeSectionDTO[ProjectSummaryDTO]{
			Items:  ToProjectSummaryDTOs(out.FeaturedProjects.Items),
			Failed: out.FeaturedProjects.Failed,
		},
		RecentPosts: HomeSectionDTO[PostSummaryDTO]{
			Items:  ToPostSummaryDTOs(out.RecentPosts.Items),
			Failed: out.RecentPosts.Failed,
		},
		FeaturedServices: HomeSectionDTO[ServiceDTO]{
			Items:  ToServiceDTOs(out.FeaturedServices.Items),
			Failed: out.FeaturedServices.Failed,
		},
	}
}
