package contentstore

import (
	"go.uber.org/zap"

	"github.com/princepatel/folio/pkg/logger"
)

// Raw wire shapes shared by the repositories. Fields declared required in
// the studio schema can still be absent on documents that predate a schema
// change, so everything decodes as optional and defaulting happens here,
// once, at the repository boundary.

type slugField struct {
	Current string `json:"current"`
}

type assetField struct {
	Asset struct {
		Ref string `json:"_ref"`
		URL string `json:"url"`
	} `json:"asset"`
}

// imageURL resolves an image field to a display URL. A bad reference
// degrades to the empty string; a missing image is cosmetic, never an error.
func imageURL(r *AssetResolver, img assetField, log logger.Logger) string {
	if img.Asset.URL != "" {
		return img.Asset.URL
	}
	if img.Asset.Ref == "" {
		return ""
	}
	u, err := r.ImageURL(img.Asset.Ref)
	if err != nil {
		log.Warn("Cannot resolve image reference", zap.String("ref", img.Asset.Ref), zap.Error(err))
		return ""
	}
	return u
}

func fileURL(r *AssetResolver, file assetField, log logger.Logger) string {
	if file.Asset.URL != "" {
		return file.Asset.URL
	}
	if file.Asset.Ref == "" {
		return ""
	}
	u, err := r.FileURL(file.Asset.Ref)
	if err != nil {
		log.Warn("Cannot resolve file reference", zap.String("ref", file.Asset.Ref), zap.Error(err))
		return ""
	}
	return u
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
