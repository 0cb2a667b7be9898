package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/isebirbax/portfolio/internal/store"
)

func (h *handler) listServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.st.Services(c.Request.Context()))
}

func (h *handler) createService(c *gin.Context) {
	var req store.NewService
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc, err := h.st.AddService(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (h *handler) updateService(c *gin.Context) {
	var req store.ServicePatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	ok, err := h.st.UpdateService(c.Request.Context(), id, req)
	found(c, ok, err, id)
}

func (h *handler) deleteService(c *gin.Context) {
	ok, err := h.st.DeleteService(c.Request.Context(), c.Param("id"))
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
