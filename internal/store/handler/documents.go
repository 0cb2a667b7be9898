package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/isebirbax/portfolio/internal/store"
)

func (h *handler) listDocuments(c *gin.Context) {
	c.JSON(http.StatusOK, h.st.Documents(c.Request.Context()))
}

func (h *handler) createDocument(c *gin.Context) {
	var req store.NewDocument
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := h.st.AddDocument(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *handler) updateDocument(c *gin.Context) {
	var req store.DocumentPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	ok, err := h.st.UpdateDocument(c.Request.Context(), id, req)
	found(c, ok, err, id)
}

func (h *handler) setDocumentStatus(c *gin.Context) {
	var req struct {
		Status store.Status `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	ok, err := h.st.SetDocumentStatus(c.Request.Context(), id, req.Status)
	found(c, ok, err, id)
}

func (h *handler) hardDeleteDocument(c *gin.Context) {
	ok, err := h.st.HardDeleteDocument(c.Request.Context(), c.Param("id"))
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
