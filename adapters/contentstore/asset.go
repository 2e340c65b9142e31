package contentstore

import (
	"errors"
	"fmt"
	"strings"
)

// Asset references are opaque strings of the form
// image-<id>-<dims>-<ext> or file-<id>-<ext>, resolved against the CDN of
// the configured project/dataset. Refs that are already absolute URLs pass
// through untouched.

var ErrBadAssetRef = errors.New("unparsable asset reference")

type AssetResolver struct {
	projectID string
	dataset   string
}

func NewAssetResolver(projectID, dataset string) *AssetResolver {
	return &AssetResolver{projectID: projectID, dataset: dataset}
}

func (r *AssetResolver) ImageURL(ref string) (string, error) {
	return r.resolve(ref, "image-", "images")
}

func (r *AssetResolver) FileURL(ref string) (string, error) {
	return r.resolve(ref, "file-", "files")
}

func (r *AssetResolver) resolve(ref, prefix, kind string) (string, error) {
	if ref == "" {
		return "", ErrBadAssetRef
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, nil
	}

	withoutPrefix := strings.TrimPrefix(ref, prefix)
	lastDash := strings.LastIndex(withoutPrefix, "-")
	if lastDash <= 0 {
		return "", ErrBadAssetRef
	}

	id := withoutPrefix[:lastDash]
	ext := withoutPrefix[lastDash+1:]
	if ext == "" {
		return "", ErrBadAssetRef
	}

	return fmt.Sprintf("https://cdn.sanity.io/%s/%s/%s/%s.%s", kind, r.projectID, r.dataset, id, ext), nil
}
