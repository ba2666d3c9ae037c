// Package util is a set of utility variables or methods
package util

import (
	"path/filepath"

	mapset "github.com/deckarep/golang-set/v2"
)

var SupportedImageExt = mapset.NewSet(
	".jpeg", ".jpg", ".JPEG", ".JPG",
	".png", ".PNG",
	".webp", ".WEBP",
)

var SupportedVideoExt = mapset.NewSet(
	".mp4", ".MP4",
	".webm", ".WEBM",
	".mov", ".MOV",
)

// MediaKind classifies a filename by extension: "image", "video" or "".
func MediaKind(name string) string {
	ext := filepath.Ext(name)
	switch {
	case SupportedImageExt.Contains(ext):
		return "image"
	case SupportedVideoExt.Contains(ext):
		return "video"
	default:
		return ""
	}
}
