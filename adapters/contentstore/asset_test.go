package contentstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetResolver_ImageURL(t *testing.T) {
	r := NewAssetResolver("projid", "production")

	u, err := r.ImageURL("image-abc123def-800x600-jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.sanity.io/images/projid/production/abc123def-800x600.jpg", u)
	assert.Contains(t, u, "abc123def")
}

func TestAssetResolver_FileURL(t *testing.T) {
	r := NewAssetResolver("projid", "production")

	u, err := r.FileURL("file-abc123def456-pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.sanity.io/files/projid/production/abc123def456.pdf", u)
}

func TestAssetResolver_PassesThroughURLs(t *testing.T) {
	r := NewAssetResolver("projid", "production")

	u, err := r.ImageURL("https://cdn.sanity.io/images/projid/production/x.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.sanity.io/images/projid/production/x.png", u)
}

func TestAssetResolver_BadRefs(t *testing.T) {
	r := NewAssetResolver("projid", "production")

	for _, ref := range []string{"", "file-nodashes", "image-", "file-abc-"} {
		_, err := r.FileURL(ref)
		assert.ErrorIs(t, err, ErrBadAssetRef, "ref %q", ref)
	}
}
