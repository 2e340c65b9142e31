package contentstore

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princepatel/folio/pkg/logger"
)

func TestContentPostRepo_ListAll_DedupesTagsAndFillsExcerpt(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": [
			{
				"_id": "b1",
				"title": "Shipping Under Pressure",
				"slug": {"current": "shipping-under-pressure"},
				"tags": ["Career Growth", "career growth ", "Mindset"],
				"content": [
					{"_type": "block", "children": [
						{"_type": "span", "text": "Deadlines teach you what actually matters."}
					]}
				]
			}
		]}`))
	})
	repo := NewContentPostRepo(client, NewAssetResolver("projid", "production"), logger.NewNop())

	posts, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)

	p := posts[0]
	assert.Equal(t, []string{"Career Growth", "Mindset"}, p.Tags)
	assert.Equal(t, "Deadlines teach you what actually matters.", p.Excerpt)
}

func TestContentPostRepo_ListAll_KeepsAuthoredExcerpt(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": [
			{
				"_id": "b1",
				"title": "Post",
				"slug": {"current": "post"},
				"excerpt": "Hand-written summary.",
				"content": [
					{"_type": "block", "children": [{"_type": "span", "text": "Body text."}]}
				]
			}
		]}`))
	})
	repo := NewContentPostRepo(client, NewAssetResolver("projid", "production"), logger.NewNop())

	posts, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Hand-written summary.", posts[0].Excerpt)
}

func TestContentPostRepo_GetBySlug_MapsAuthorJoin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": {
			"_id": "b1",
			"title": "Post",
			"slug": {"current": "post"},
			"author": {
				"name": "Prince Patel",
				"image": {"asset": {"_ref": "image-face123-100x100-webp"}},
				"bio": "Builds things.",
				"socialLinks": {"github": "https://github.com/princepatel"}
			}
		}}`))
	})
	repo := NewContentPostRepo(client, NewAssetResolver("projid", "production"), logger.NewNop())

	p, err := repo.GetBySlug(context.Background(), "post")
	require.NoError(t, err)
	require.NotNil(t, p.Author)
	assert.Equal(t, "Prince Patel", p.Author.Name)
	assert.Equal(t, "https://cdn.sanity.io/images/projid/production/face123-100x100.webp", p.Author.ImageURL)
	assert.Equal(t, "https://github.com/princepatel", p.Author.SocialLinks["github"])
}
