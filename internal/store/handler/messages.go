package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/isebirbax/portfolio/internal/store"
)

func (h *handler) submitMessage(c *gin.Context) {
	var req store.NewMessage
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.st.AddMessage(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": m.ID})
}

func (h *handler) listMessages(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{"messages": h.st.Messages(ctx), "unread": h.st.UnreadCount(ctx)})
}

func (h *handler) setMessageStatus(c *gin.Context) {
	var req struct {
		Status store.MessageStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	ok, err := h.st.SetMessageStatus(c.Request.Context(), id, req.Status)
	found(c, ok, err, id)
}

func (h *handler) deleteMessage(c *gin.Context) {
	ok, err := h.st.DeleteMessage(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
