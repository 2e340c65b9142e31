package contentstore

// The query catalogue: one canonical projection per content shape and view.
// Earlier revisions of the studio accumulated duplicate queries with drifted
// field sets; these consolidate them.

const projectListFields = `{
  _id,
  title,
  slug,
  mainImage,
  description,
  category,
  technologies,
  featured,
  publishedAt
}`

const (
	queryAllProjects = `*[_type == "project"] | order(publishedAt desc) ` + projectListFields

	queryFeaturedProjects = `*[_type == "project" && featured == true] | order(publishedAt desc)[0...6] ` + projectListFields

	queryProjectsByCategory = `*[_type == "project" && category == $category] | order(publishedAt desc) ` + projectListFields

	queryProjectBySlug = `*[_type == "project" && slug.current == $slug][0] {
  _id,
  title,
  slug,
  mainImage,
  images,
  description,
  content,
  category,
  technologies,
  featured,
  publishedAt,
  liveUrl,
  githubUrl
}`
)

const postListFields = `{
  _id,
  title,
  slug,
  mainImage,
  excerpt,
  content,
  tags,
  publishedAt,
  readingTime,
  author->{
    name,
    image
  }
}`

const (
	queryAllPosts = `*[_type == "post"] | order(publishedAt desc) ` + postListFields

	queryRecentPosts = `*[_type == "post"] | order(publishedAt desc)[0...3] ` + postListFields

	queryPostBySlug = `*[_type == "post" && slug.current == $slug][0] {
  _id,
  title,
  slug,
  mainImage,
  excerpt,
  content,
  tags,
  publishedAt,
  readingTime,
  author->{
    name,
    image,
    bio,
    socialLinks
  }
}`
)

const serviceFields = `{
  _id,
  title,
  slug,
  icon,
  description,
  detailedDescription,
  keyPoints,
  order,
  featured
}`

const (
	queryAllServices = `*[_type == "service"] | order(order asc) ` + serviceFields

	queryFeaturedServices = `*[_type == "service" && featured == true] | order(order asc) ` + serviceFields

	queryServiceBySlug = `*[_type == "service" && slug.current == $slug][0] ` + serviceFields
)

const (
	queryAbout = `*[_type == "about"][0]`

	queryContact = `*[_type == "contact"][0]`

	queryTimeline = `*[_type == "timeline"] | order(order asc) {
  _id,
  year,
  title,
  company,
  description,
  order
}`
)

const documentFields = `{
  _id,
  title,
  description,
  category,
  file,
  order,
  publishedAt
}`

const (
	queryAllDocuments = `*[_type == "officialDocument"] | order(order asc, publishedAt desc) ` + documentFields

	queryDocumentsByCategory = `*[_type == "officialDocument" && category == $category] | order(order asc, publishedAt desc) ` + documentFields
)
