package about

import (
	"context"

	"github.com/princepatel/folio/internal/domain/richtext"
)

// Proficiency levels as authored in the studio (1–4).
const (
	ProficiencyBeginner     = 1
	ProficiencyIntermediate = 2
	ProficiencyAdvanced     = 3
	ProficiencyExpert       = 4
)

type Skill struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

type SocialLinks struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type About struct {
	Name            string           `json:"name"`
	Role            string           `json:"role"`
	ProfileImageURL string           `json:"profile_image_url"`
	ShortBio        string           `json:"short_bio"`
	FullBio         []richtext.Block `json:"full_bio,omitempty"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone,omitempty"`
	Location        string           `json:"location,omitempty"`
	SocialLinks     SocialLinks      `json:"social_links"`
	Skills          []Skill          `json:"skills"`
	ResumeURL       string           `json:"resume_url,omitempty"`
}

// About is a singleton shape: the query takes the first document and there
// is no defensive handling of duplicates.
type Repository interface {
	Get(ctx context.Context) (*About, error)
}
