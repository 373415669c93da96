package domain

import (
	"encoding/json"
	"time"
)

// Record is the persisted form of one content entity. Data holds the entity
// JSON at SchemaVersion; Seq is the insertion order within a collection and
// never changes once assigned.
type Record struct {
	Collection    string
	ID            string
	Data          json.RawMessage
	SchemaVersion int
	Seq           int64
	UpdatedAt     time.Time
}

// Collection keys.
const (
	KeyHero         = "admin_hero_content"
	KeyAbout        = "admin_about_content"
	KeyContact      = "admin_contact_info"
	KeyChatConfig   = "admin_chat_config"
	KeySocialLinks  = "admin_social_links"
	KeyProjects     = "admin_projects"
	KeyTechnologies = "admin_technologies"
	KeyTeam         = "intelleeo_team"
	KeyTestimonials = "admin_testimonials"
	KeyServices     = "admin_services"
	KeyBlogs        = "admin_blogs"
	KeyNewsletter   = "admin_newsletter_subscribers"
	KeyMessages     = "intelleeo_contact_messages"
	KeyChatSummary  = "intelleeo_chat_summaries"
)
