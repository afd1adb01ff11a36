package services

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/gosimple/slug"
)

const maxSlugBase = 64

// SlugOf derives a stable, URL-safe slug from a storage path. The same path
// always yields the same slug.
func SlugOf(path string) string {
	base := []rune(slug.Make(path))
	if len(base) > maxSlugBase {
		base = base[:maxSlugBase]
	}
	trimmed := strings.Trim(string(base), "-")

	sum := sha256.Sum256([]byte(path))
	suffix := hex.EncodeToString(sum[:4])
	if trimmed == "" {
		return suffix
	}
	return trimmed + "-" + suffix
}
