package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"studio-site/internal/domain"
	"studio-site/internal/usecase"
)

// ContentHandler serves the content store over HTTP.
type ContentHandler struct {
	svc *usecase.ContentService
}

func NewContentHandler(svc *usecase.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// ---- generic helpers ----

func getHandler[T any](load func(context.Context) (T, error), failMsg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := load(c.Request.Context())
		if err != nil {
			failWith(c, err, failMsg)
			return
		}
		success(c, http.StatusOK, v, "")
	}
}

func putSingletonHandler[T any](save func(context.Context, T) error, what string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var v T
		if err := c.ShouldBindJSON(&v); err != nil {
			fail(c, http.StatusBadRequest, err, "Invalid request body")
			return
		}
		if err := save(c.Request.Context(), v); err != nil {
			failWith(c, err, "Failed to save "+what)
			return
		}
		success(c, http.StatusOK, v, what+" saved")
	}
}

// saveItemHandler upserts one collection item. When the route carries an
// :id it wins over the body.
func saveItemHandler[T any](save func(context.Context, T) (T, error), setID func(*T, string), what string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var v T
		if err := c.ShouldBindJSON(&v); err != nil {
			fail(c, http.StatusBadRequest, err, "Invalid request body")
			return
		}
		status := http.StatusCreated
		if id := c.Param("id"); id != "" {
			setID(&v, id)
			status = http.StatusOK
		}
		saved, err := save(c.Request.Context(), v)
		if err != nil {
			failWith(c, err, "Failed to save "+what)
			return
		}
		success(c, status, saved, what+" saved")
	}
}

func replaceHandler[T any](save func(context.Context, []T) ([]T, error), what string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []T
		if err := c.ShouldBindJSON(&items); err != nil {
			fail(c, http.StatusBadRequest, err, "Invalid request body")
			return
		}
		saved, err := save(c.Request.Context(), items)
		if err != nil {
			failWith(c, err, "Failed to save "+what)
			return
		}
		success(c, http.StatusOK, saved, what+" saved")
	}
}

func deleteHandler(del func(context.Context, string) error, what string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := del(c.Request.Context(), c.Param("id")); err != nil {
			failWith(c, err, "Failed to delete "+what)
			return
		}
		success(c, http.StatusOK, nil, what+" deleted")
	}
}

func withHidden[T any](list func(context.Context, bool) (T, error), includeHidden bool) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		return list(ctx, includeHidden)
	}
}

// ---- handlers needing query or path parameters ----

// ListProjects serves GET /projects[?tag=].
func (h *ContentHandler) ListProjects(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		projects []domain.Project
		err      error
	)
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		projects, err = h.svc.GetProjectsByTag(ctx, tag)
	} else {
		projects, err = h.svc.GetProjects(ctx)
	}
	if err != nil {
		failWith(c, err, "Failed to load projects")
		return
	}
	success(c, http.StatusOK, projects, "")
}

func (h *ContentHandler) GetProject(c *gin.Context) {
	p, err := h.svc.GetProjectBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		failWith(c, err, "Failed to load project")
		return
	}
	success(c, http.StatusOK, p, "")
}

// ListTechnologies serves GET /technologies[?category=].
func (h *ContentHandler) ListTechnologies(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		techs []domain.Technology
		err   error
	)
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		techs, err = h.svc.GetTechnologiesByCategory(ctx, category)
	} else {
		techs, err = h.svc.GetTechnologies(ctx, false)
	}
	if err != nil {
		failWith(c, err, "Failed to load technologies")
		return
	}
	success(c, http.StatusOK, techs, "")
}

// ListTeam serves GET /team[?cxo=true].
func (h *ContentHandler) ListTeam(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		members []domain.TeamMember
		err     error
	)
	if strings.EqualFold(c.Query("cxo"), "true") {
		members, err = h.svc.GetCXOTeam(ctx)
	} else {
		members, err = h.svc.GetTeamMembers(ctx)
	}
	if err != nil {
		failWith(c, err, "Failed to load team")
		return
	}
	success(c, http.StatusOK, members, "")
}

func (h *ContentHandler) GetBlog(c *gin.Context) {
	post, err := h.svc.GetBlogBySlug(c.Request.Context(), c.Param("slug"), false)
	if err != nil {
		failWith(c, err, "Failed to load blog post")
		return
	}
	success(c, http.StatusOK, post, "")
}

type emailRequest struct {
	Email string `json:"email"`
}

func (h *ContentHandler) Subscribe(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	created, err := h.svc.SubscribeNewsletter(c.Request.Context(), req.Email)
	if err != nil {
		failWith(c, err, "Failed to subscribe")
		return
	}
	if !created {
		success(c, http.StatusOK, gin.H{"subscribed": false}, "Already subscribed")
		return
	}
	success(c, http.StatusCreated, gin.H{"subscribed": true}, "Subscribed")
}

func (h *ContentHandler) Unsubscribe(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	if err := h.svc.UnsubscribeNewsletter(c.Request.Context(), req.Email); err != nil {
		failWith(c, err, "Failed to unsubscribe")
		return
	}
	success(c, http.StatusOK, nil, "Unsubscribed")
}

func (h *ContentHandler) SubmitContactMessage(c *gin.Context) {
	var m domain.ContactMessage
	if err := c.ShouldBindJSON(&m); err != nil {
		fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	// Visitors never choose the id.
	m.ID = ""
	saved, err := h.svc.SaveContactMessage(c.Request.Context(), m)
	if err != nil {
		failWith(c, err, "Failed to send message")
		return
	}
	success(c, http.StatusCreated, saved, "Message received")
}

func (h *ContentHandler) MarkMessageAsRead(c *gin.Context) {
	if err := h.svc.MarkMessageAsRead(c.Request.Context(), c.Param("id")); err != nil {
		failWith(c, err, "Failed to update message")
		return
	}
	success(c, http.StatusOK, nil, "Message marked as read")
}

type chatSummaryRequest struct {
	Messages []domain.ChatMessage `json:"messages"`
}

func (h *ContentHandler) SaveChatSummary(c *gin.Context) {
	var req chatSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	summary, err := h.svc.SaveChatSummary(c.Request.Context(), req.Messages)
	if err != nil {
		failWith(c, err, "Failed to save chat summary")
		return
	}
	success(c, http.StatusCreated, summary, "Chat summary saved")
}

func (h *ContentHandler) SaveChatConfig(c *gin.Context) {
	var in domain.ProviderConfig
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	cfg, err := h.svc.SaveChatConfig(c.Request.Context(), in)
	if err != nil {
		failWith(c, err, "Failed to save chat config")
		return
	}
	success(c, http.StatusOK, cfg, "Chat config saved")
}

func (h *ContentHandler) ChatModels(c *gin.Context) {
	success(c, http.StatusOK, domain.ProviderModels, "")
}
