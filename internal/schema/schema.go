package schema

import "fmt"

// Declarative manifest of the content shapes the studio edits. Validation
// here is advisory: required-ness and enums are enforced by the studio at
// authoring time, and the read path must still tolerate documents that
// predate a schema change.

type EnumValue struct {
	Title string `json:"title"`
	Value any    `json:"value"`
}

type Field struct {
	Name     string      `json:"name"`
	Title    string      `json:"title"`
	Type     string      `json:"type"`
	Required bool        `json:"required,omitempty"`
	Of       string      `json:"of,omitempty"`
	Enum     []EnumValue `json:"enum,omitempty"`
}

type Preview struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Media    string `json:"media,omitempty"`
}

type Shape struct {
	Name      string  `json:"name"`
	Title     string  `json:"title"`
	Singleton bool    `json:"singleton,omitempty"`
	Fields    []Field `json:"fields"`
	Preview   Preview `json:"preview"`
}

var projectCategories = []EnumValue{
	{Title: "Web Development", Value: "web"},
	{Title: "Mobile App", Value: "mobile"},
	{Title: "UI/UX Design", Value: "design"},
	{Title: "Other", Value: "other"},
}

var documentCategories = []EnumValue{
	{Title: "Resume", Value: "resume"},
	{Title: "Experience Letter", Value: "experience-letter"},
	{Title: "Certificate", Value: "certificate"},
	{Title: "Degree", Value: "degree"},
	{Title: "Other", Value: "other"},
}

var proficiencyLevels = []EnumValue{
	{Title: "Beginner", Value: 1},
	{Title: "Intermediate", Value: 2},
	{Title: "Advanced", Value: 3},
	{Title: "Expert", Value: 4},
}

var shapes = []Shape{
	{
		Name:  "project",
		Title: "Project",
		Fields: []Field{
			{Name: "title", Title: "Title", Type: "string", Required: true},
			{Name: "slug", Title: "Slug", Type: "slug", Required: true},
			{Name: "mainImage", Title: "Main Image", Type: "image", Required: true},
			{Name: "images", Title: "Additional Images", Type: "array", Of: "image"},
			{Name: "category", Title: "Category", Type: "string", Required: true, Enum: projectCategories},
			{Name: "technologies", Title: "Technologies", Type: "array", Of: "string", Required: true},
			{Name: "description", Title: "Short Description", Type: "text", Required: true},
			{Name: "content", Title: "Content", Type: "array", Of: "block"},
			{Name: "liveUrl", Title: "Live URL", Type: "url"},
			{Name: "githubUrl", Title: "Source URL", Type: "url"},
			{Name: "featured", Title: "Featured Project", Type: "boolean"},
			{Name: "publishedAt", Title: "Published At", Type: "datetime", Required: true},
		},
		Preview: Preview{Title: "title", Subtitle: "category", Media: "mainImage"},
	},
	{
		Name:  "post",
		Title: "Post",
		Fields: []Field{
			{Name: "title", Title: "Title", Type: "string", Required: true},
			{Name: "slug", Title: "Slug", Type: "slug", Required: true},
			{Name: "mainImage", Title: "Main Image", Type: "image"},
			{Name: "author", Title: "Author", Type: "reference", Of: "author"},
			{Name: "excerpt", Title: "Excerpt", Type: "text"},
			{Name: "content", Title: "Content", Type: "array", Of: "block"},
			{Name: "tags", Title: "Tags", Type: "array", Of: "string"},
			{Name: "readingTime", Title: "Reading Time (minutes)", Type: "number"},
			{Name: "publishedAt", Title: "Published At", Type: "datetime", Required: true},
		},
		Preview: Preview{Title: "title", Subtitle: "publishedAt", Media: "mainImage"},
	},
	{
		Name:  "author",
		Title: "Author",
		Fields: []Field{
			{Name: "name", Title: "Name", Type: "string", Required: true},
			{Name: "image", Title: "Image", Type: "image"},
			{Name: "bio", Title: "Bio", Type: "text"},
			{Name: "socialLinks", Title: "Social Links", Type: "object"},
		},
		Preview: Preview{Title: "name", Media: "image"},
	},
	{
		Name:  "service",
		Title: "Service",
		Fields: []Field{
			{Name: "title", Title: "Title", Type: "string", Required: true},
			{Name: "slug", Title: "Slug", Type: "slug", Required: true},
			{Name: "icon", Title: "Icon", Type: "string", Required: true},
			{Name: "description", Title: "Short Description", Type: "text", Required: true},
			{Name: "detailedDescription", Title: "Detailed Description", Type: "array", Of: "block", Required: true},
			{Name: "keyPoints", Title: "Key Points", Type: "array", Of: "string"},
			{Name: "order", Title: "Display Order", Type: "number", Required: true},
			{Name: "featured", Title: "Featured Service", Type: "boolean"},
		},
		Preview: Preview{Title: "title", Subtitle: "description"},
	},
	{
		Name:      "about",
		Title:     "About",
		Singleton: true,
		Fields: []Field{
			{Name: "name", Title: "Full Name", Type: "string", Required: true},
			{Name: "role", Title: "Professional Role", Type: "string", Required: true},
			{Name: "profileImage", Title: "Profile Image", Type: "image", Required: true},
			{Name: "shortBio", Title: "Short Bio", Type: "text", Required: true},
			{Name: "fullBio", Title: "Full Bio", Type: "array", Of: "block", Required: true},
			{Name: "email", Title: "Email Address", Type: "email", Required: true},
			{Name: "phone", Title: "Phone Number", Type: "string"},
			{Name: "location", Title: "Location", Type: "string"},
			{Name: "socialLinks", Title: "Social Links", Type: "object"},
			{Name: "skills", Title: "Skills", Type: "array", Of: "object", Enum: proficiencyLevels},
			{Name: "resumeURL", Title: "Resume/CV", Type: "file"},
		},
		Preview: Preview{Title: "name", Subtitle: "role", Media: "profileImage"},
	},
	{
		Name:      "contact",
		Title:     "Contact",
		Singleton: true,
		Fields: []Field{
			{Name: "email", Title: "Email", Type: "email", Required: true},
			{Name: "phone", Title: "Phone", Type: "string"},
			{Name: "address", Title: "Address", Type: "text"},
			{Name: "socialLinks", Title: "Social Links", Type: "array", Of: "object"},
		},
		Preview: Preview{Title: "email"},
	},
	{
		Name:  "timeline",
		Title: "Timeline",
		Fields: []Field{
			{Name: "year", Title: "Year", Type: "string", Required: true},
			{Name: "title", Title: "Title", Type: "string", Required: true},
			{Name: "company", Title: "Company", Type: "string", Required: true},
			{Name: "description", Title: "Description", Type: "text", Required: true},
			{Name: "order", Title: "Order", Type: "number", Required: true},
		},
		Preview: Preview{Title: "title", Subtitle: "company"},
	},
	{
		Name:  "officialDocument",
		Title: "Official Document",
		Fields: []Field{
			{Name: "title", Title: "Document Title", Type: "string", Required: true},
			{Name: "description", Title: "Description", Type: "text"},
			{Name: "category", Title: "Category", Type: "string", Required: true, Enum: documentCategories},
			{Name: "file", Title: "Document File", Type: "file", Required: true},
			{Name: "order", Title: "Display Order", Type: "number"},
			{Name: "publishedAt", Title: "Published at", Type: "datetime", Required: true},
		},
		Preview: Preview{Title: "title", Subtitle: "category", Media: "file"},
	},
}

// Manifest returns the full set of shape declarations.
func Manifest() []Shape {
	return shapes
}

// Lookup returns the shape with the given name.
func Lookup(name string) (Shape, bool) {
	for _, s := range shapes {
		if s.Name == name {
			return s, true
		}
	}
	return Shape{}, false
}

// Verify reports, without rejecting, the declared-required fields a raw
// document is missing. Documents published before a schema change routinely
// fail this check and must still render.
func Verify(shapeName string, doc map[string]any) ([]string, error) {
	shape, ok := Lookup(shapeName)
	if !ok {
		return nil, fmt.Errorf("unknown content shape %q", shapeName)
	}

	var missing []string
	for _, field := range shape.Fields {
		if !field.Required {
			continue
		}
		value, present := doc[field.Name]
		if !present || value == nil || value == "" {
			missing = append(missing, field.Name)
		}
	}
	return missing, nil
}
