package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/isebirbax/portfolio/internal/store"
	"github.com/isebirbax/portfolio/internal/tokens"
	"github.com/isebirbax/portfolio/pkg/logger"
	"github.com/isebirbax/portfolio/pkg/middleware"
)

// Options configures admin tokens and the contact-form limiter.
type Options struct {
	Secret   []byte
	TokenTTL time.Duration
	// ContactLimiter guards POST /api/messages; nil means unlimited.
	ContactLimiter gin.HandlerFunc
	// Now is used for token timestamps; defaults to time.Now.
	Now func() time.Time
}

type handler struct {
	st   *store.Store
	opts Options
}

// RegisterRoutes mounts the public gallery API and the admin console API.
func RegisterRoutes(r *gin.Engine, st *store.Store, o Options) {
	if o.TokenTTL <= 0 {
		o.TokenTTL = time.Hour
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	h := &handler{st: st, opts: o}

	api := r.Group("/api")
	api.GET("/gallery", h.gallery)
	api.GET("/services", h.listServices)
	contact := []gin.HandlerFunc{h.submitMessage}
	if o.ContactLimiter != nil {
		contact = append([]gin.HandlerFunc{o.ContactLimiter}, contact...)
	}
	api.POST("/messages", contact...)
	api.POST("/admin/login", h.login)

	admin := api.Group("/admin", middleware.AuthMiddleware(tokens.NewVerifier(o.Secret)))
	admin.GET("/documents", h.listDocuments)
	admin.POST("/documents", h.createDocument)
	admin.PATCH("/documents/:id", h.updateDocument)
	admin.PUT("/documents/:id/status", h.setDocumentStatus)
	admin.DELETE("/documents/:id", h.hardDeleteDocument)

	admin.GET("/services", h.listServices)
	admin.POST("/services", h.createService)
	admin.PATCH("/services/:id", h.updateService)
	admin.DELETE("/services/:id", h.deleteService)

	admin.GET("/messages", h.listMessages)
	admin.PUT("/messages/:id/status", h.setMessageStatus)
	admin.DELETE("/messages/:id", h.deleteMessage)

	admin.PUT("/credentials", h.updateCredentials)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidDocument),
		errors.Is(err, store.ErrInvalidStatus),
		errors.Is(err, store.ErrInvalidCategory),
		errors.Is(err, store.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
	default:
		logger.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// found turns an (ok, err) mutation result into a response.
func found(c *gin.Context, ok bool, err error, id string) {
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *handler) gallery(c *gin.Context) {
	c.JSON(http.StatusOK, h.st.VisibleDocuments(c.Request.Context()))
}

func (h *handler) login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.st.CheckCredentials(c.Request.Context(), req.Username, req.Password) {
		logger.Warnf("admin login rejected for %q from %s", req.Username, c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	tok, err := tokens.GenerateAdminToken(h.opts.Secret, req.Username, h.opts.TokenTTL, h.opts.Now())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tok, "expiresIn": int(h.opts.TokenTTL.Seconds())})
}

func (h *handler) updateCredentials(c *gin.Context) {
	var req store.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.st.UpdateCredentials(c.Request.Context(), req); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
