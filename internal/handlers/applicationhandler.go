package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: apps}
}

// UpdateStatus is PUT /api/applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	claims := caller(c)
	if claims == nil {
		return
	}
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req dtos.StatusUpdateRequest
	if !bind(c, &req, "New status is required") {
		return
	}

	app, err := h.Applications.UpdateStatus(c.Request.Context(), id, claims.UserID, req.Status)
	if err != nil {
		fromError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{
		"message":     "Application status updated to " + app.Status,
		"application": app,
	})
}

// GetApplication is GET /api/applications/:id
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	claims := caller(c)
	if claims == nil {
		return
	}
	id, valid := pathID(c, "id")
	if !valid {
		return
	}

	detail, err := h.Applications.GetApplication(c.Request.Context(), id, claims.UserType, claims.UserID)
	if err != nil {
		fromError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"application": detail})
}
