// Package blogimport turns markdown files with YAML frontmatter into blog
// posts.
package blogimport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"studio-site/internal/domain"
	"studio-site/internal/usecase"
)

const excerptLength = 160

// Frontmatter is the header block of an imported post.
type Frontmatter struct {
	Title    string   `yaml:"title"`
	Slug     string   `yaml:"slug"`
	Excerpt  string   `yaml:"excerpt"`
	Author   string   `yaml:"author"`
	Date     string   `yaml:"date"`
	ReadTime string   `yaml:"readTime"`
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
	Featured bool     `yaml:"featured"`
	Hidden   bool     `yaml:"hidden"`
}

type BlogSaver interface {
	GetBlogBySlug(ctx context.Context, slug string, includeHidden bool) (domain.BlogPost, error)
	SaveBlog(ctx context.Context, b domain.BlogPost) (domain.BlogPost, error)
}

type Importer struct {
	md    goldmark.Markdown
	saver BlogSaver
}

func New(saver BlogSaver) (*Importer, error) {
	if saver == nil {
		return nil, errors.New("blogimport: blog saver must not be nil")
	}
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
	return &Importer{md: md, saver: saver}, nil
}

// ImportFile parses path and saves the resulting post. A post that already
// has the same slug is updated in place.
func (im *Importer) ImportFile(ctx context.Context, path string) (domain.BlogPost, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.BlogPost{}, fmt.Errorf("blogimport: open %s: %w", path, err)
	}
	defer f.Close()

	post, err := im.Parse(f, path)
	if err != nil {
		return domain.BlogPost{}, err
	}

	post.Slug = usecase.Slugify(post.Slug)
	if post.Slug == "" {
		post.Slug = usecase.Slugify(post.Title)
	}
	existing, err := im.saver.GetBlogBySlug(ctx, post.Slug, true)
	switch {
	case err == nil:
		post.ID = existing.ID
	case usecase.CodeOf(err) != usecase.ErrorNotFound:
		return domain.BlogPost{}, fmt.Errorf("blogimport: look up %s: %w", post.Slug, err)
	}
	saved, err := im.saver.SaveBlog(ctx, post)
	if err != nil {
		return domain.BlogPost{}, fmt.Errorf("blogimport: save %s: %w", path, err)
	}
	return saved, nil
}

// Parse reads one markdown document. name is used to derive a title when
// the frontmatter has none.
func (im *Importer) Parse(r io.Reader, name string) (domain.BlogPost, error) {
	var fm Frontmatter
	body, err := frontmatter.Parse(r, &fm)
	if err != nil {
		return domain.BlogPost{}, fmt.Errorf("blogimport: frontmatter of %s: %w", name, err)
	}

	var html bytes.Buffer
	if err := im.md.Convert(body, &html); err != nil {
		return domain.BlogPost{}, fmt.Errorf("blogimport: render %s: %w", name, err)
	}

	title := strings.TrimSpace(fm.Title)
	if title == "" {
		base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
		title = usecase.TitleCase(strings.NewReplacer("-", " ", "_", " ").Replace(base))
	}

	date, err := normalizeDate(fm.Date)
	if err != nil {
		return domain.BlogPost{}, fmt.Errorf("blogimport: date of %s: %w", name, err)
	}

	excerpt := strings.TrimSpace(fm.Excerpt)
	if excerpt == "" {
		excerpt = firstParagraph(body)
	}

	tags := make([]string, 0, len(fm.Tags))
	for _, t := range fm.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	return domain.BlogPost{
		Title:    title,
		Slug:     fm.Slug,
		Excerpt:  excerpt,
		Content:  html.String(),
		Author:   strings.TrimSpace(fm.Author),
		Date:     date,
		ReadTime: strings.TrimSpace(fm.ReadTime),
		Category: usecase.TitleCase(fm.Category),
		Tags:     tags,
		Featured: fm.Featured,
		Hidden:   fm.Hidden,
	}, nil
}

// normalizeDate accepts a plain date or an RFC 3339 timestamp and returns
// the date part. Empty stays empty.
func normalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.Format(time.DateOnly), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return "", fmt.Errorf("unrecognized date %q", s)
	}
	return t.UTC().Format(time.DateOnly), nil
}

var (
	markdownLink   = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)
	markdownSyntax = regexp.MustCompile("[*_`>#]+")
)

// firstParagraph returns the first prose paragraph of a markdown body as
// plain text, cut to excerptLength runes.
func firstParagraph(body []byte) string {
	var para []string
	inFence := false
	for _, line := range strings.Split(string(body), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if trimmed == "" {
			if len(para) > 0 {
				break
			}
			continue
		}
		if strings.HasPrefix(trimmed, "#") && len(para) == 0 {
			continue
		}
		para = append(para, trimmed)
	}

	text := strings.Join(para, " ")
	text = markdownLink.ReplaceAllString(text, "$1")
	text = strings.Join(strings.Fields(markdownSyntax.ReplaceAllString(text, "")), " ")

	r := []rune(text)
	if len(r) <= excerptLength {
		return text
	}
	return strings.TrimSpace(string(r[:excerptLength-1])) + "…"
}
