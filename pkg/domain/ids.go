package domain

import (
	"strings"

	dErrors "fact/pkg/domain-errors"
)

// maxSlugLength bounds slugs accepted at the HTTP boundary.
const maxSlugLength = 200

// Slug is the public, URL-safe identifier of a court.
type Slug string

func (s Slug) String() string { return string(s) }

// ParseSlug validates a court slug: lower-case ASCII letters, digits and
// single hyphens, not starting or ending with a hyphen.
func ParseSlug(raw string) (Slug, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", dErrors.New(dErrors.CodeValidation, "slug is required")
	}
	if len(s) > maxSlugLength {
		return "", dErrors.New(dErrors.CodeValidation, "slug is too long")
	}
	prevHyphen := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			prevHyphen = false
		case c == '-':
			if prevHyphen {
				return "", dErrors.New(dErrors.CodeValidation, "slug has an invalid format")
			}
			prevHyphen = true
		default:
			return "", dErrors.New(dErrors.CodeValidation, "slug has an invalid format")
		}
	}
	if prevHyphen {
		return "", dErrors.New(dErrors.CodeValidation, "slug has an invalid format")
	}
	return Slug(s), nil
}

// SlugFromName derives a slug from a court name: lower-cased, with every
// run of non-alphanumeric characters collapsed to one hyphen.
//
//	SlugFromName("Aberystwyth Justice Centre") // "aberystwyth-justice-centre"
func SlugFromName(name string) (Slug, error) {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return ParseSlug(b.String())
}
