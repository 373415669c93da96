package httpapi

import (
	"github.com/gin-gonic/gin"

	"studio-site/internal/domain"
)

type ContentRoutes struct {
	handler *ContentHandler
	auth    gin.HandlerFunc
}

func NewContentRoutes(handler *ContentHandler, auth gin.HandlerFunc) *ContentRoutes {
	return &ContentRoutes{handler: handler, auth: auth}
}

func (r *ContentRoutes) RegisterRoutes(router *gin.RouterGroup) {
	svc := r.handler.svc

	// Public routes
	content := router.Group("/content")
	{
		content.GET("/hero", getHandler(svc.GetHero, "Failed to load hero"))
		content.GET("/about", getHandler(svc.GetAbout, "Failed to load about"))
		content.GET("/contact", getHandler(svc.GetContact, "Failed to load contact info"))
		content.GET("/social-links", getHandler(svc.GetSocialLinks, "Failed to load social links"))
	}
	router.GET("/projects", r.handler.ListProjects)
	router.GET("/projects/:slug", r.handler.GetProject)
	router.GET("/technologies", r.handler.ListTechnologies)
	router.GET("/technology-categories", getHandler(svc.GetTechnologyCategories, "Failed to load categories"))
	router.GET("/team", r.handler.ListTeam)
	router.GET("/testimonials", getHandler(withHidden(svc.GetTestimonials, false), "Failed to load testimonials"))
	router.GET("/services", getHandler(withHidden(svc.GetServices, false), "Failed to load services"))
	router.GET("/blogs", getHandler(withHidden(svc.GetBlogs, false), "Failed to load blogs"))
	router.GET("/blogs/:slug", r.handler.GetBlog)
	router.POST("/newsletter/subscribe", r.handler.Subscribe)
	router.POST("/newsletter/unsubscribe", r.handler.Unsubscribe)
	router.POST("/contact-messages", r.handler.SubmitContactMessage)
	router.POST("/chat-summaries", r.handler.SaveChatSummary)

	// Protected routes
	admin := router.Group("/admin")
	admin.Use(r.auth)
	{
		admin.PUT("/content/hero", putSingletonHandler(svc.SaveHero, "Hero"))
		admin.PUT("/content/about", putSingletonHandler(svc.SaveAbout, "About"))
		admin.PUT("/content/contact", putSingletonHandler(svc.SaveContact, "Contact info"))
		admin.PUT("/content/social-links", putSingletonHandler(svc.SaveSocialLinks, "Social links"))

		admin.GET("/chat-config", getHandler(svc.GetChatConfig, "Failed to load chat config"))
		admin.PUT("/chat-config", r.handler.SaveChatConfig)
		admin.GET("/chat-models", r.handler.ChatModels)

		admin.GET("/projects", getHandler(svc.GetProjects, "Failed to load projects"))
		admin.PUT("/projects", replaceHandler(svc.SaveProjects, "Projects"))
		admin.POST("/projects", saveItemHandler(svc.SaveProject, func(p *domain.Project, id string) { p.ID = id }, "Project"))
		admin.PUT("/projects/:id", saveItemHandler(svc.SaveProject, func(p *domain.Project, id string) { p.ID = id }, "Project"))
		admin.DELETE("/projects/:id", deleteHandler(svc.DeleteProject, "Project"))

		admin.GET("/technologies", getHandler(withHidden(svc.GetTechnologies, true), "Failed to load technologies"))
		admin.PUT("/technologies", replaceHandler(svc.SaveTechnologies, "Technologies"))
		admin.POST("/technologies", saveItemHandler(svc.SaveTechnology, func(t *domain.Technology, id string) { t.ID = id }, "Technology"))
		admin.PUT("/technologies/:id", saveItemHandler(svc.SaveTechnology, func(t *domain.Technology, id string) { t.ID = id }, "Technology"))
		admin.DELETE("/technologies/:id", deleteHandler(svc.DeleteTechnology, "Technology"))

		admin.GET("/team", getHandler(svc.GetTeamMembers, "Failed to load team"))
		admin.POST("/team", saveItemHandler(svc.SaveTeamMember, func(m *domain.TeamMember, id string) { m.ID = id }, "Team member"))
		admin.PUT("/team/:id", saveItemHandler(svc.SaveTeamMember, func(m *domain.TeamMember, id string) { m.ID = id }, "Team member"))
		admin.DELETE("/team/:id", deleteHandler(svc.DeleteTeamMember, "Team member"))

		admin.GET("/testimonials", getHandler(withHidden(svc.GetTestimonials, true), "Failed to load testimonials"))
		admin.POST("/testimonials", saveItemHandler(svc.SaveTestimonial, func(t *domain.Testimonial, id string) { t.ID = id }, "Testimonial"))
		admin.PUT("/testimonials/:id", saveItemHandler(svc.SaveTestimonial, func(t *domain.Testimonial, id string) { t.ID = id }, "Testimonial"))
		admin.DELETE("/testimonials/:id", deleteHandler(svc.DeleteTestimonial, "Testimonial"))

		admin.GET("/services", getHandler(withHidden(svc.GetServices, true), "Failed to load services"))
		admin.POST("/services", saveItemHandler(svc.SaveService, func(s *domain.Service, id string) { s.ID = id }, "Service"))
		admin.PUT("/services/:id", saveItemHandler(svc.SaveService, func(s *domain.Service, id string) { s.ID = id }, "Service"))
		admin.DELETE("/services/:id", deleteHandler(svc.DeleteService, "Service"))

		admin.GET("/blogs", getHandler(withHidden(svc.GetBlogs, true), "Failed to load blogs"))
		admin.POST("/blogs", saveItemHandler(svc.SaveBlog, func(b *domain.BlogPost, id string) { b.ID = id }, "Blog post"))
		admin.PUT("/blogs/:id", saveItemHandler(svc.SaveBlog, func(b *domain.BlogPost, id string) { b.ID = id }, "Blog post"))
		admin.DELETE("/blogs/:id", deleteHandler(svc.DeleteBlog, "Blog post"))

		admin.GET("/contact-messages", getHandler(svc.GetContactMessages, "Failed to load messages"))
		admin.PATCH("/contact-messages/:id/read", r.handler.MarkMessageAsRead)
		admin.DELETE("/contact-messages/:id", deleteHandler(svc.DeleteContactMessage, "Message"))

		admin.GET("/chat-summaries", getHandler(svc.GetChatSummaries, "Failed to load chat summaries"))
		admin.DELETE("/chat-summaries/:id", deleteHandler(svc.DeleteChatSummary, "Chat summary"))

		admin.GET("/newsletter/subscribers", getHandler(svc.GetNewsletterSubscribers, "Failed to load subscribers"))
	}
}

type AuthRoutes struct {
	handler *AuthHandler
	auth    gin.HandlerFunc
}

func NewAuthRoutes(handler *AuthHandler, auth gin.HandlerFunc) *AuthRoutes {
	return &AuthRoutes{handler: handler, auth: auth}
}

func (r *AuthRoutes) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		// Public routes
		admin.POST("/login", r.handler.Login)

		// Protected routes
		protected := admin.Group("/")
		protected.Use(r.auth)
		protected.GET("/session", r.handler.Session)
		protected.POST("/logout", r.handler.Logout)
	}
}

type ChatRoutes struct {
	handler *ChatHandler
}

func NewChatRoutes(handler *ChatHandler) *ChatRoutes {
	return &ChatRoutes{handler: handler}
}

func (r *ChatRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/chat", r.handler.Chat)
	router.OPTIONS("/chat", r.handler.Chat)
}
