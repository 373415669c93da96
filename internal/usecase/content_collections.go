package usecase

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"studio-site/internal/domain"
)

const (
	defaultBlogAuthor = "intelleeo"
	wordsPerMinute    = 200
	previewLength     = 100
)

var (
	projects = collection[domain.Project]{
		key:      domain.KeyProjects,
		defaults: defaultProjects,
		idOf:     func(v domain.Project) string { return v.ID },
	}
	technologies = collection[domain.Technology]{
		key:      domain.KeyTechnologies,
		defaults: defaultTechnologies,
		idOf:     func(v domain.Technology) string { return v.ID },
	}
	team = collection[domain.TeamMember]{
		key:      domain.KeyTeam,
		defaults: defaultTeam,
		idOf:     func(v domain.TeamMember) string { return v.ID },
	}
	testimonials = collection[domain.Testimonial]{
		key:      domain.KeyTestimonials,
		defaults: defaultTestimonials,
		idOf:     func(v domain.Testimonial) string { return v.ID },
	}
	services = collection[domain.Service]{
		key:      domain.KeyServices,
		defaults: defaultServices,
		idOf:     func(v domain.Service) string { return v.ID },
	}
	blogs = collection[domain.BlogPost]{
		key:      domain.KeyBlogs,
		defaults: func() []domain.BlogPost { return []domain.BlogPost{} },
		idOf:     func(v domain.BlogPost) string { return v.ID },
	}
	messages = collection[domain.ContactMessage]{
		key:      domain.KeyMessages,
		defaults: func() []domain.ContactMessage { return []domain.ContactMessage{} },
		idOf:     func(v domain.ContactMessage) string { return v.ID },
	}
	summaries = collection[domain.ChatSummary]{
		key:      domain.KeyChatSummary,
		defaults: func() []domain.ChatSummary { return []domain.ChatSummary{} },
		idOf:     func(v domain.ChatSummary) string { return v.ID },
	}
)

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return newError(ErrorInvalidInput, field+" is required", nil)
	}
	return nil
}

// ---- Projects ----

func (s *ContentService) GetProjects(ctx context.Context) ([]domain.Project, error) {
	return projects.list(ctx, s)
}

func normalizeProject(p domain.Project) (domain.Project, error) {
	if err := required("title", p.Title); err != nil {
		return p, err
	}
	p.ID = ensureID(p.ID)
	p.Slug = Slugify(p.Slug)
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	return p, nil
}

// SaveProjects replaces the whole collection in one atomic write and
// returns the projects as stored.
func (s *ContentService) SaveProjects(ctx context.Context, items []domain.Project) ([]domain.Project, error) {
	normalized := make([]domain.Project, 0, len(items))
	for _, p := range items {
		n, err := normalizeProject(p)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, n)
	}
	if err := projects.replace(ctx, s, normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

func (s *ContentService) SaveProject(ctx context.Context, p domain.Project) (domain.Project, error) {
	p, err := normalizeProject(p)
	if err != nil {
		return p, err
	}
	return p, projects.put(ctx, s, p)
}

func (s *ContentService) DeleteProject(ctx context.Context, id string) error {
	return projects.delete(ctx, s, id)
}

func (s *ContentService) GetProjectBySlug(ctx context.Context, slug string) (domain.Project, error) {
	all, err := s.GetProjects(ctx)
	if err != nil {
		return domain.Project{}, err
	}
	for _, p := range all {
		if p.Slug == slug {
			return p, nil
		}
	}
	return domain.Project{}, newError(ErrorNotFound, "project not found", nil)
}

func (s *ContentService) GetProjectsByTag(ctx context.Context, tag string) ([]domain.Project, error) {
	all, err := s.GetProjects(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Project, 0, len(all))
	for _, p := range all {
		if slices.Contains(p.Tags, tag) {
			out = append(out, p)
		}
	}
	return out, nil
}

// ---- Technologies ----

func (s *ContentService) GetTechnologies(ctx context.Context, includeHidden bool) ([]domain.Technology, error) {
	all, err := technologies.list(ctx, s)
	if err != nil {
		return nil, err
	}
	if includeHidden {
		return all, nil
	}
	out := make([]domain.Technology, 0, len(all))
	for _, t := range all {
		if t.IsVisible() {
			out = append(out, t)
		}
	}
	return out, nil
}

func normalizeTechnology(t domain.Technology) (domain.Technology, error) {
	if err := required("name", t.Name); err != nil {
		return t, err
	}
	category, ok := NormalizeCategory(string(t.Category))
	if !ok {
		return t, newError(ErrorInvalidInput, fmt.Sprintf("unknown technology category %q", t.Category), nil)
	}
	t.Category = category
	t.ID = ensureID(t.ID)
	return t, nil
}

func (s *ContentService) SaveTechnologies(ctx context.Context, items []domain.Technology) ([]domain.Technology, error) {
	normalized := make([]domain.Technology, 0, len(items))
	for _, t := range items {
		n, err := normalizeTechnology(t)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, n)
	}
	if err := technologies.replace(ctx, s, normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

func (s *ContentService) SaveTechnology(ctx context.Context, t domain.Technology) (domain.Technology, error) {
	t, err := normalizeTechnology(t)
	if err != nil {
		return t, err
	}
	return t, technologies.put(ctx, s, t)
}

func (s *ContentService) DeleteTechnology(ctx context.Context, id string) error {
	return technologies.delete(ctx, s, id)
}

func (s *ContentService) GetTechnologiesByCategory(ctx context.Context, category string) ([]domain.Technology, error) {
	c, ok := NormalizeCategory(category)
	if !ok {
		return nil, newError(ErrorInvalidInput, fmt.Sprintf("unknown technology category %q", category), nil)
	}
	visible, err := s.GetTechnologies(ctx, false)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Technology, 0, len(visible))
	for _, t := range visible {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out, nil
}

// GetTechnologyCategories returns the categories that have at least one
// visible technology, in display order.
func (s *ContentService) GetTechnologyCategories(ctx context.Context) ([]domain.TechCategory, error) {
	visible, err := s.GetTechnologies(ctx, false)
	if err != nil {
		return nil, err
	}
	present := make(map[domain.TechCategory]bool, len(domain.TechCategories))
	for _, t := range visible {
		present[t.Category] = true
	}
	out := make([]domain.TechCategory, 0, len(present))
	for _, c := range domain.TechCategories {
		if present[c] {
			out = append(out, c)
		}
	}
	return out, nil
}

// ---- Team ----

func (s *ContentService) GetTeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	return team.list(ctx, s)
}

func (s *ContentService) GetCXOTeam(ctx context.Context) ([]domain.TeamMember, error) {
	all, err := s.GetTeamMembers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.TeamMember, 0, len(all))
	for _, m := range all {
		if m.IsCXO {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *ContentService) SaveTeamMember(ctx context.Context, m domain.TeamMember) (domain.TeamMember, error) {
	if err := required("name", m.Name); err != nil {
		return m, err
	}
	m.ID = ensureID(m.ID)
	return m, team.put(ctx, s, m)
}

func (s *ContentService) DeleteTeamMember(ctx context.Context, id string) error {
	return team.delete(ctx, s, id)
}

// ---- Testimonials ----

func (s *ContentService) GetTestimonials(ctx context.Context, includeHidden bool) ([]domain.Testimonial, error) {
	all, err := testimonials.list(ctx, s)
	if err != nil {
		return nil, err
	}
	if includeHidden {
		return all, nil
	}
	out := make([]domain.Testimonial, 0, len(all))
	for _, t := range all {
		if t.Visible {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *ContentService) SaveTestimonial(ctx context.Context, t domain.Testimonial) (domain.Testimonial, error) {
	if err := required("clientName", t.ClientName); err != nil {
		return t, err
	}
	if t.Rating < 1 || t.Rating > 5 {
		return t, newError(ErrorInvalidInput, "rating must be between 1 and 5", nil)
	}
	t.ID = ensureID(t.ID)
	return t, testimonials.put(ctx, s, t)
}

func (s *ContentService) DeleteTestimonial(ctx context.Context, id string) error {
	return testimonials.delete(ctx, s, id)
}

// ---- Services ----

// GetServices returns services sorted by Order; equal orders keep their
// insertion order.
func (s *ContentService) GetServices(ctx context.Context, includeHidden bool) ([]domain.Service, error) {
	all, err := services.list(ctx, s)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Service, 0, len(all))
	for _, svc := range all {
		if includeHidden || svc.Visible {
			out = append(out, svc)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (s *ContentService) SaveService(ctx context.Context, svc domain.Service) (domain.Service, error) {
	if err := required("title", svc.Title); err != nil {
		return svc, err
	}
	svc.ID = ensureID(svc.ID)
	return svc, services.put(ctx, s, svc)
}

func (s *ContentService) DeleteService(ctx context.Context, id string) error {
	return services.delete(ctx, s, id)
}

// ---- Blogs ----

// GetBlogs returns posts newest first by date.
func (s *ContentService) GetBlogs(ctx context.Context, includeHidden bool) ([]domain.BlogPost, error) {
	all, err := blogs.list(ctx, s)
	if err != nil {
		return nil, err
	}
	out := make([]domain.BlogPost, 0, len(all))
	for _, b := range reverse(all) {
		if includeHidden || !b.Hidden {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (s *ContentService) GetBlogBySlug(ctx context.Context, slug string, includeHidden bool) (domain.BlogPost, error) {
	all, err := s.GetBlogs(ctx, includeHidden)
	if err != nil {
		return domain.BlogPost{}, err
	}
	for _, b := range all {
		if b.Slug == slug {
			return b, nil
		}
	}
	return domain.BlogPost{}, newError(ErrorNotFound, "blog post not found", nil)
}

// SaveBlog fills slug, author, date and read time when they are empty.
func (s *ContentService) SaveBlog(ctx context.Context, b domain.BlogPost) (domain.BlogPost, error) {
	if err := required("title", b.Title); err != nil {
		return b, err
	}
	b.ID = ensureID(b.ID)
	b.Slug = Slugify(b.Slug)
	if b.Slug == "" {
		b.Slug = Slugify(b.Title)
	}
	if strings.TrimSpace(b.Author) == "" {
		b.Author = defaultBlogAuthor
	}
	if strings.TrimSpace(b.Date) == "" {
		b.Date = s.now().UTC().Format(time.DateOnly)
	}
	if strings.TrimSpace(b.ReadTime) == "" {
		b.ReadTime = readTime(b.Content)
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	return b, blogs.put(ctx, s, b)
}

func (s *ContentService) DeleteBlog(ctx context.Context, id string) error {
	return blogs.delete(ctx, s, id)
}

func readTime(content string) string {
	minutes := (len(strings.Fields(content)) + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// ---- Contact messages ----

// GetContactMessages returns messages newest first.
func (s *ContentService) GetContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	all, err := messages.list(ctx, s)
	if err != nil {
		return nil, err
	}
	return reverse(all), nil
}

func (s *ContentService) SaveContactMessage(ctx context.Context, m domain.ContactMessage) (domain.ContactMessage, error) {
	if err := required("name", m.Name); err != nil {
		return m, err
	}
	if !validEmail(m.Email) {
		return m, newError(ErrorInvalidInput, "a valid email is required", nil)
	}
	if err := required("message", m.Message); err != nil {
		return m, err
	}
	m.ID = ensureID(m.ID)
	m.Email = strings.TrimSpace(m.Email)
	m.Timestamp = s.timestamp()
	m.Read = false
	return m, messages.put(ctx, s, m)
}

func (s *ContentService) MarkMessageAsRead(ctx context.Context, id string) error {
	m, ok, err := messages.get(ctx, s, id)
	if err != nil {
		return err
	}
	if !ok {
		return newError(ErrorNotFound, "message not found", nil)
	}
	m.Read = true
	return messages.put(ctx, s, m)
}

func (s *ContentService) DeleteContactMessage(ctx context.Context, id string) error {
	return messages.delete(ctx, s, id)
}

// ---- Chat summaries ----

// GetChatSummaries returns summaries newest first.
func (s *ContentService) GetChatSummaries(ctx context.Context) ([]domain.ChatSummary, error) {
	all, err := summaries.list(ctx, s)
	if err != nil {
		return nil, err
	}
	return reverse(all), nil
}

// SaveChatSummary records a closed chat session. Summaries are immutable, so
// every call creates a new record.
func (s *ContentService) SaveChatSummary(ctx context.Context, transcript []domain.ChatMessage) (domain.ChatSummary, error) {
	if len(transcript) == 0 {
		return domain.ChatSummary{}, newError(ErrorInvalidInput, "messages must not be empty", nil)
	}
	summary := domain.ChatSummary{
		ID:        newUUID(),
		Timestamp: s.timestamp(),
		Messages:  len(transcript),
		Preview:   preview(transcript[len(transcript)-1].Content),
	}
	return summary, summaries.put(ctx, s, summary)
}

func (s *ContentService) DeleteChatSummary(ctx context.Context, id string) error {
	return summaries.delete(ctx, s, id)
}

func preview(content string) string {
	r := []rune(content)
	if len(r) <= previewLength {
		return content
	}
	return string(r[:previewLength])
}
