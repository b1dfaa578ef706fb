package catalog

import (
	"strings"

	"github.com/goliatone/go-slug"
)

// resolveSlug picks the record's slug: an explicit slug is normalized, an
// omitted one is derived from the English name. Arabic-only records fall back
// to the Arabic name, which the normalizer transliterates best effort.
func resolveSlug(explicit, en, ar string) (string, error) {
	source := strings.TrimSpace(explicit)
	if source == "" {
		source = strings.TrimSpace(en)
	}
	if source == "" {
		source = strings.TrimSpace(ar)
	}
	return slug.Normalize(source)
}
