package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/geo"
	"github.com/justsurfingit/job-board/internal/services"
)

type JobHandler struct {
	Jobs         *services.JobService
	Applications *services.ApplicationService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(jobs *services.JobService, apps *services.ApplicationService) *JobHandler {
	return &JobHandler{
		Jobs:         jobs,
		Applications: apps,
	}
}

// ListJobs is GET /api/jobs
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListJobs(c.Request.Context(), c.Query("status"))
	if err != nil {
		fromError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"jobs": jobs})
}

// NearbyJobs is GET /api/jobs/nearby?lat=&lng=&radius=
func (h *JobHandler) NearbyJobs(c *gin.Context) {
	q, err := geo.ParseQuery(c.Query("lat"), c.Query("lng"), c.Query("radius"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid location parameters")
		return
	}

	jobs, err := h.Jobs.NearbyJobs(c.Request.Context(), q)
	if err != nil {
		fromError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"jobs": jobs, "count": len(jobs)})
}

// CreateJob is POST /api/jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	claims := caller(c)
	if claims == nil {
		return
	}
	var req dtos.JobCreationRequest
	if !bind(c, &req, "") {
		return
	}
	if !sameUser(c, claims, req.EmployerID, "employer_id") {
		return
	}

	job, err := h.Jobs.CreateJob(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		fromError(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{
		"message": "Job created successfully",
		"jobId":   job.ID,
	})
}

// GetJob is GET /api/jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}

	job, err := h.Jobs.GetJob(c.Request.Context(), id)
	if err != nil {
		fromError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"job": job})
}

// UpdateJob is PUT /api/jobs/:id
func (h *JobHandler) UpdateJob(c *gin.Context) {
	claims := caller(c)
	if claims == nil {
		return
	}
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req dtos.JobUpdateRequest
	if !bind(c, &req, "") {
		return
	}

	job, err := h.Jobs.UpdateJob(c.Request.Context(), id, claims.UserID, &req)
	if err != nil {
		fromError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{
		"message": "Job updated successfully",
		"job":     job,
	})
}

// DeleteJob is DELETE /api/jobs/:id. The job's applications go with it.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	claims := caller(c)
	if claims == nil {
		return
	}
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req dtos.JobDeletionRequest
	if !bindOptional(c, &req) {
		return
	}
	if !sameUser(c, claims, req.EmployerID, "employer_id") {
		return
	}

	removed, err := h.Jobs.DeleteJob(c.Request.Context(), id, claims.UserID)
	if err != nil {
		fromError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{
		"message":             "Job deleted successfully",
		"applicationsDeleted": removed,
	})
}

// Apply is POST /api/jobs/:id/apply
func (h *JobHandler) Apply(c *gin.Context) {
	claims := caller(c)
	if claims == nil {
		return
	}
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req dtos.ApplyRequest
	if !bindOptional(c, &req) {
		return
	}
	if !sameUser(c, claims, req.EmployeeID, "employee_id") {
		return
	}

	app, err := h.Applications.Apply(c.Request.Context(), id, claims.UserID, req.CoverLetter)
	if err != nil {
		fromError(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{
		"message":       "Application submitted successfully",
		"applicationId": app.ID,
	})
}
