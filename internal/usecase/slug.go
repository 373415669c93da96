package usecase

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"studio-site/internal/domain"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s, collapses every run of non-alphanumerics into one
// hyphen and trims hyphens at both ends.
func Slugify(s string) string {
	return strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// NormalizeCategory maps user input onto a technology category. It accepts
// any casing and the AI-ML spelling.
func NormalizeCategory(s string) (domain.TechCategory, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "-", "/")
	for _, c := range domain.TechCategories {
		if strings.ToLower(string(c)) == key {
			return c, true
		}
	}
	return "", false
}

// TitleCase normalizes free-form labels such as blog categories. Casers
// are stateful, so one is built per call.
func TitleCase(s string) string {
	return cases.Title(language.English).String(strings.Join(strings.Fields(s), " "))
}
