package domain

// HeroContent is the landing page hero block.
type HeroContent struct {
	Title            string `json:"title"`
	Tagline          string `json:"tagline"`
	Subtext          string `json:"subtext"`
	CTAPrimaryText   string `json:"cta_primary_text"`
	CTASecondaryText string `json:"cta_secondary_text"`
}

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Value struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AboutContent backs the about page.
type AboutContent struct {
	Mission     string  `json:"mission"`
	Vision      string  `json:"vision"`
	WhyChooseUs string  `json:"why_choose_us"`
	Stats       []Stat  `json:"stats"`
	Values      []Value `json:"values"`
}

// ContactInfo is the public contact block and footer links.
type ContactInfo struct {
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	ResponseTime string `json:"response_time"`
	LinkedIn     string `json:"linkedin"`
	GitHub       string `json:"github"`
	Twitter      string `json:"twitter"`
}

// SocialLinks are the floating social buttons.
type SocialLinks struct {
	WhatsApp  string `json:"whatsapp"`
	Messenger string `json:"messenger"`
	Upwork    string `json:"upwork"`
	Telegram  string `json:"telegram"`
}

type Project struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Problem     string   `json:"problem"`
	Solution    string   `json:"solution"`
	Role        string   `json:"role"`
	Timeline    string   `json:"timeline"`
	TechStack   []string `json:"tech_stack"`
	Tags        []string `json:"tags"`
	Screenshot  string   `json:"screenshot"`
	Images      []string `json:"images,omitempty"`
	DemoVideo   string   `json:"demo_video,omitempty"`
	LiveLink    string   `json:"live_link,omitempty"`
	SourceCode  string   `json:"source_code,omitempty"`
	AIHighlight string   `json:"ai_highlight,omitempty"`
}

// TechCategory is one of the fixed technology groupings.
type TechCategory string

const (
	CategoryFrontend TechCategory = "Frontend"
	CategoryBackend  TechCategory = "Backend"
	CategoryAIML     TechCategory = "AI/ML"
	CategoryMobile   TechCategory = "Mobile"
	CategoryDatabase TechCategory = "Database"
	CategoryTools    TechCategory = "Tools"
)

// TechCategories is the display order of categories.
var TechCategories = []TechCategory{
	CategoryFrontend,
	CategoryBackend,
	CategoryAIML,
	CategoryMobile,
	CategoryDatabase,
	CategoryTools,
}

type Technology struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Category TechCategory `json:"category"`
	Icon     string       `json:"icon"`
	Color    string       `json:"color"`
	Visible  *bool        `json:"visible,omitempty"`
}

// IsVisible treats a missing flag as visible.
func (t Technology) IsVisible() bool {
	return t.Visible == nil || *t.Visible
}

type TeamMember struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Position        string   `json:"position"`
	Image           string   `json:"image"`
	Bio             string   `json:"bio"`
	CertificationID string   `json:"certificationId"`
	Skills          []string `json:"skills"`
	Email           string   `json:"email"`
	IsCXO           bool     `json:"isCXO"`
}

type Testimonial struct {
	ID         string `json:"id"`
	ClientName string `json:"clientName"`
	Company    string `json:"company"`
	Position   string `json:"position"`
	Quote      string `json:"quote"`
	Rating     int    `json:"rating"`
	ImageURL   string `json:"imageUrl"`
	Visible    bool   `json:"visible"`
}

type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
	PriceHint   string   `json:"priceHint"`
	Order       int      `json:"order"`
	Visible     bool     `json:"visible"`
}

type BlogPost struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	Date     string   `json:"date"`
	ReadTime string   `json:"readTime"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Featured bool     `json:"featured"`
	Hidden   bool     `json:"hidden"`
}

// NewsletterSubscriber is never physically removed; unsubscribing sets
// UnsubscribedAt.
type NewsletterSubscriber struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	SubscribedAt   string  `json:"subscribedAt"`
	UnsubscribedAt *string `json:"unsubscribedAt"`
}

// Active reports whether the subscriber is currently subscribed.
func (s NewsletterSubscriber) Active() bool {
	return s.UnsubscribedAt == nil
}

type ContactMessage struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	ProjectType string `json:"projectType"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Read        bool   `json:"read"`
}
