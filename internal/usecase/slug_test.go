package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"studio-site/internal/domain"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World":          "hello-world",
		"  --Already-Slug--  ": "already-slug",
		"Vue.js":               "vue-js",
		"C++ & Go!":            "c-go",
		"Ünïcode Title":        "n-code-title",
		"":                     "",
	}
	for in, want := range cases {
		require.Equal(t, want, Slugify(in), "input=%q", in)
	}
}

func TestNormalizeCategory(t *testing.T) {
	c, ok := NormalizeCategory("ai/ml")
	require.True(t, ok)
	require.Equal(t, domain.CategoryAIML, c)

	c, ok = NormalizeCategory(" AI-ML ")
	require.True(t, ok)
	require.Equal(t, domain.CategoryAIML, c)

	c, ok = NormalizeCategory("FRONTEND")
	require.True(t, ok)
	require.Equal(t, domain.CategoryFrontend, c)

	_, ok = NormalizeCategory("cloud")
	require.False(t, ok)
}

func TestTitleCase(t *testing.T) {
	require.Equal(t, "Machine Learning", TitleCase("  machine   learning "))
	require.Equal(t, "Web Development", TitleCase("WEB development"))
	require.Equal(t, "", TitleCase(""))
}
