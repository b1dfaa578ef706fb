package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// SectionUUID derives the identity of a page section from its business key.
// Saving the same (page_key, section_key) pair therefore converges on one
// row, which is what makes section saves upserts.
func SectionUUID(pageKey, sectionKey string) uuid.UUID {
	page := strings.ToLower(strings.TrimSpace(pageKey))
	section := strings.ToLower(strings.TrimSpace(sectionKey))
	return UUID("campus-cms:section:" + page + ":" + section)
}
